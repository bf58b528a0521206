// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/mock"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/internal/workers"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// stubUI records how it was run.
type stubUI struct {
	err        error
	serverInfo *models.AppBuildInfo
	traceID    string
	ran        bool
}

func (u *stubUI) Run(ctx context.Context) error {
	u.ran = true
	u.traceID, _ = utils.GetTraceIDFromContext(ctx)
	return u.err
}

func (u *stubUI) SetServerInfo(info models.AppBuildInfo) {
	u.serverInfo = &info
}

func newTestApp(t *testing.T, ui UI) *App {
	t.Helper()
	todos := mock.NewMockClientTodoService(gomock.NewController(t))
	todos.EXPECT().OutOfSync().Return(nil).AnyTimes()

	return &App{
		services: &service.ClientServices{TodoService: todos},
		ui:       ui,
		workers:  workers.NewWorkers(workers.NewResyncJob(todos, time.Hour, logger.Nop())),
		logger:   logger.Nop(),
	}
}

// ── newTodoStore ─────────────────────────────

func TestNewTodoStore_Remote(t *testing.T) {
	cfg := &config.ClientConfig{Adapter: config.Adapter{
		Mode:           config.AdapterModeRemote,
		HTTPAddress:    "localhost:8080",
		RequestTimeout: time.Second,
	}}

	todoStore, closeFn, err := newTodoStore(context.Background(), cfg, logger.Nop())

	require.NoError(t, err)
	assert.Nil(t, closeFn)
	assert.Implements(t, (*adapter.VersionReporter)(nil), todoStore)
}

func TestNewTodoStore_RemoteInvalidAddress(t *testing.T) {
	cfg := &config.ClientConfig{Adapter: config.Adapter{Mode: config.AdapterModeRemote}}

	_, _, err := newTodoStore(context.Background(), cfg, logger.Nop())

	assert.Error(t, err)
}

func TestNewTodoStore_Local(t *testing.T) {
	cfg := &config.ClientConfig{
		Adapter: config.Adapter{Mode: config.AdapterModeLocal},
		Storage: config.Storage{DB: config.DB{DSN: filepath.Join(t.TempDir(), "todos.db")}},
	}

	todoStore, closeFn, err := newTodoStore(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, closeFn)
	t.Cleanup(func() { _ = closeFn() })

	todos, err := todoStore.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, todos)

	_, isReporter := todoStore.(adapter.VersionReporter)
	assert.False(t, isReporter)
}

func TestNewTodoStore_UnknownMode(t *testing.T) {
	cfg := &config.ClientConfig{Adapter: config.Adapter{Mode: "carrier-pigeon"}}

	_, _, err := newTodoStore(context.Background(), cfg, logger.Nop())

	assert.ErrorIs(t, err, ErrUnknownAdapterMode)
}

func TestNewApp_UnknownModeFails(t *testing.T) {
	app, err := NewApp(context.Background(), &config.ClientConfig{}, models.AppBuildInfo{}, logger.Nop())

	assert.ErrorIs(t, err, ErrUnknownAdapterMode)
	assert.Nil(t, app)
}

func TestNewApp_RemoteWithMetrics(t *testing.T) {
	cfg := &config.ClientConfig{
		Adapter: config.Adapter{Mode: config.AdapterModeRemote, HTTPAddress: "localhost:8080", RequestTimeout: time.Second},
		Metrics: config.Metrics{Address: "127.0.0.1:0"},
	}

	app, err := NewApp(context.Background(), cfg, models.AppBuildInfo{Version: "v1"}, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, app.version)
	assert.NotNil(t, app.metricsServer)
	assert.NotNil(t, app.services.TodoService)
	assert.Empty(t, app.closers)
}

// ── Run ──────────────────────────────────────

func TestRun_ReturnsWhenUIExits(t *testing.T) {
	ui := &stubUI{}
	app := newTestApp(t, ui)
	closed := false
	app.closers = append(app.closers, func() error { closed = true; return nil })

	require.NoError(t, app.Run(context.Background()))

	assert.True(t, ui.ran)
	assert.NotEmpty(t, ui.traceID, "run context carries a trace id")
	assert.True(t, closed)
	assert.Nil(t, ui.serverInfo)
}

func TestRun_PropagatesUIError(t *testing.T) {
	uiErr := errors.New("terminal gone")
	app := newTestApp(t, &stubUI{err: uiErr})

	assert.ErrorIs(t, app.Run(context.Background()), uiErr)
}

func TestRun_ReportsServerVersion(t *testing.T) {
	ui := &stubUI{}
	app := newTestApp(t, ui)
	reporter := mock.NewMockVersionReporter(gomock.NewController(t))
	info := models.AppBuildInfo{Version: "v2.0.0", Commit: "abc"}
	reporter.EXPECT().Version(gomock.Any()).Return(info, nil)
	app.version = reporter

	require.NoError(t, app.Run(context.Background()))

	require.NotNil(t, ui.serverInfo)
	assert.Equal(t, info, *ui.serverInfo)
}

func TestRun_VersionFailureIsNotFatal(t *testing.T) {
	ui := &stubUI{}
	app := newTestApp(t, ui)
	reporter := mock.NewMockVersionReporter(gomock.NewController(t))
	reporter.EXPECT().Version(gomock.Any()).Return(models.AppBuildInfo{}, adapter.ErrServiceUnavailable)
	app.version = reporter

	require.NoError(t, app.Run(context.Background()))

	assert.True(t, ui.ran)
	assert.Nil(t, ui.serverInfo)
}

func TestRun_StopsMetricsServer(t *testing.T) {
	app := newTestApp(t, &stubUI{})
	app.metricsServer = &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}

	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * shutdownTimeout):
		t.Fatal("Run did not return after the UI exited")
	}
}
