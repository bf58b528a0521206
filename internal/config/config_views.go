// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
)

// ServerConfig is the todo server view of [StructuredConfig].
type ServerConfig struct {
	App     App
	Storage Storage
	Server  Server
	Metrics Metrics
}

// ClientConfig is the terminal client view of [StructuredConfig].
type ClientConfig struct {
	App     App
	Storage Storage
	Adapter Adapter
	List    List
	Workers Workers
	Metrics Metrics
	Log     Log
}

// GetServerConfig loads the structured config and projects the fields used by
// the server.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := cfg.ServerView()
	return serverCfg, serverCfg.validate()
}

// GetClientConfig loads the structured config and projects the fields used by
// the client.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.ClientView()
	return clientCfg, clientCfg.validate()
}

// ServerView projects cfg onto a [ServerConfig].
func (cfg *StructuredConfig) ServerView() *ServerConfig {
	return &ServerConfig{
		App:     cfg.App,
		Storage: cfg.Storage,
		Server:  cfg.Server,
		Metrics: cfg.Metrics,
	}
}

// ClientView projects cfg onto a [ClientConfig], applying client defaults.
func (cfg *StructuredConfig) ClientView() *ClientConfig {
	clientCfg := &ClientConfig{
		App:     cfg.App,
		Storage: cfg.Storage,
		Adapter: cfg.Adapter,
		List:    cfg.List,
		Workers: cfg.Workers,
		Metrics: cfg.Metrics,
		Log:     cfg.Log,
	}
	if clientCfg.Adapter.Mode == "" {
		clientCfg.Adapter.Mode = AdapterModeRemote
	}

	return clientCfg
}
