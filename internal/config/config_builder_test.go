// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func newTestBuilder(args ...string) *configBuilder {
	b := newConfigBuilder()
	b.flagSet = flag.NewFlagSet("test", flag.ContinueOnError)
	b.args = args
	return b
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newTestBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newTestBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}, Storage: Storage{DB: DB{DSN: "env.db"}}},
		&StructuredConfig{App: App{Version: "2.0.0"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "env.db", cfg.Storage.DB.DSN)
}

func TestBuild_RejectsUnknownAdapterMode(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{Adapter: Adapter{Mode: "carrier-pigeon"}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

// ── sources ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("ADAPTER_MODE", "local")
	t.Setenv("LIST_STORE_TIMEOUT", "3s")
	t.Setenv("WORKERS_RESYNC_INTERVAL", "1m")

	b := newTestBuilder().withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, AdapterModeLocal, b.configs[0].Adapter.Mode)
	assert.Equal(t, 3*time.Second, b.configs[0].List.StoreTimeout)
	assert.Equal(t, time.Minute, b.configs[0].Workers.ResyncInterval)
}

func TestWithEnv_InvalidDuration(t *testing.T) {
	t.Setenv("LIST_STORE_TIMEOUT", "soon")

	b := newTestBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithFlags_ParsesArgs(t *testing.T) {
	b := newTestBuilder("-a", "localhost:8080", "-d", "todos.db", "-server", "http://todo:8080",
		"-store-timeout", "2s", "-mode", "remote")
	b.withFlags()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	cfg := b.configs[0]
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "todos.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "http://todo:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 2*time.Second, cfg.List.StoreTimeout)
	assert.Equal(t, AdapterModeRemote, cfg.Adapter.Mode)
}

func TestWithFlags_InvalidAddress(t *testing.T) {
	b := newTestBuilder("-a", "nohost")
	b.withFlags()
	assert.Error(t, b.err)
}

func TestWithJSON_NoOpWhenNoPathSet(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "last-wins"
	path := writeTempJSONConfig(t, payload)

	b := newTestBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/nonexistent.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Version)
}

func TestWithJSON_FileNotFound(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestFullChain_JSONOverridesEnv(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Adapter.HTTPAddress = "json-server:8080"
	path := writeTempJSONConfig(t, payload)

	t.Setenv("ADAPTER_ADDRESS", "env-server:8080")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "5s")

	cfg, err := newTestBuilder("-c", path).withEnv().withFlags().withJSON().build()
	require.NoError(t, err)

	assert.Equal(t, "json-server:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
}
