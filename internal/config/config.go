// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging environment variables, command-line flags and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds the database settings used by the server and by the
	// client in local mode.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener settings of the todo server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings of the client's store adapter.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// List holds the synced list settings.
	List List `envPrefix:"LIST_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Metrics holds the prometheus endpoint settings.
	Metrics Metrics `envPrefix:"METRICS_"`

	// Log holds log output settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file merged
	// on top of env and flags.
	// Env: CONFIG, flags: -c / -config
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level values.
type App struct {
	// Version is exposed via GET /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups storage backend settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the database connection string. A "postgres://" or
// "postgresql://" DSN selects PostgreSQL; anything else is a SQLite file path.
type DB struct {
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds the inbound HTTP settings.
type Server struct {
	// HTTPAddress in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter modes.
const (
	// AdapterModeRemote makes the client store todos on the todo server.
	AdapterModeRemote = "remote"
	// AdapterModeLocal makes the client store todos in its own database.
	AdapterModeLocal = "local"
)

// Adapter configures the store adapter of the client.
type Adapter struct {
	// Mode is AdapterModeRemote or AdapterModeLocal.
	// Env: ADAPTER_MODE
	Mode string `env:"MODE"`

	// HTTPAddress of the todo server, "host:port" or a URL.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout for outbound requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// List configures the synced todo list.
type List struct {
	// StoreTimeout bounds every store call issued by the list.
	// Env: LIST_STORE_TIMEOUT
	StoreTimeout time.Duration `env:"STORE_TIMEOUT"`
}

// Workers holds background job settings.
type Workers struct {
	// ResyncInterval is how often out-of-sync todos are pushed again.
	// Env: WORKERS_RESYNC_INTERVAL
	ResyncInterval time.Duration `env:"RESYNC_INTERVAL"`
}

// Metrics holds the prometheus endpoint settings.
type Metrics struct {
	// Address of the /metrics listener; empty disables it.
	// Env: METRICS_ADDRESS
	Address string `env:"ADDRESS"`
}

// Log holds log output settings.
type Log struct {
	// File is the client log file path.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads and merges the configuration from environment
// variables, command-line flags and the JSON file (later sources override
// earlier non-zero fields).
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
