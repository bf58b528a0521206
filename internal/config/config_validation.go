// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks the merged config. Per-binary rules live on the views.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.Mode != "" && cfg.Adapter.Mode != AdapterModeRemote && cfg.Adapter.Mode != AdapterModeLocal {
		return ErrInvalidAdapterConfigs
	}
	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	switch cfg.Adapter.Mode {
	case AdapterModeRemote:
		if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
			return ErrInvalidAdapterConfigs
		}
	case AdapterModeLocal:
		if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
			return ErrInvalidStorageConfigs
		}
	default:
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.ResyncInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.List.StoreTimeout < 0 {
		return ErrInvalidListConfigs
	}

	return nil
}
