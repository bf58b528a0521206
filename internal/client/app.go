// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/metrics"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/syncedlist"
	"github.com/MKhiriev/go-todo-keeper/internal/tui"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/internal/workers"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	versionRequestTimeout = 3 * time.Second
	shutdownTimeout       = 5 * time.Second
)

type App struct {
	services *service.ClientServices
	ui       UI
	workers  *workers.Workers

	// version is set in remote mode only.
	version adapter.VersionReporter
	// metricsServer is nil when metrics are disabled.
	metricsServer *http.Server

	closers []func() error
	logger  *logger.Logger
}

// NewApp wires the client from cfg. The returned App owns the store
// connection and releases it when Run returns.
func NewApp(ctx context.Context, cfg *config.ClientConfig, info models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	app := &App{logger: logger}

	todoStore, closeStore, err := newTodoStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	if closeStore != nil {
		app.closers = append(app.closers, closeStore)
	}
	if reporter, ok := todoStore.(adapter.VersionReporter); ok {
		app.version = reporter
	}

	var hooks []syncedlist.StoreCallHook
	if cfg.Metrics.Address != "" {
		reg := metrics.NewRegistry()
		hooks = append(hooks, metrics.NewStoreMetrics(reg).Hook())
		app.metricsServer = &http.Server{
			Addr:              cfg.Metrics.Address,
			Handler:           metrics.Handler(reg),
			ReadHeaderTimeout: 5 * time.Second,
		}
	}

	app.services = service.NewClientServices(todoStore, cfg.List.StoreTimeout, logger, hooks...)
	app.ui = tui.New(app.services.TodoService, info, cfg.Adapter.Mode, logger)
	app.workers = workers.NewWorkers(
		workers.NewResyncJob(app.services.TodoService, cfg.Workers.ResyncInterval, logger),
	)

	return app, nil
}

// newTodoStore builds the store adapter for cfg.Adapter.Mode. The returned
// close function is nil when there is nothing to release.
func newTodoStore(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger) (adapter.TodoStore, func() error, error) {
	switch cfg.Adapter.Mode {
	case config.AdapterModeRemote:
		remote, err := adapter.NewRemoteTodoStore(cfg.Adapter, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("error creating remote todo store: %w", err)
		}
		return remote, nil, nil
	case config.AdapterModeLocal:
		storages, err := store.NewStorages(ctx, cfg.Storage, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("error creating local storage: %w", err)
		}
		return adapter.NewLocalTodoStore(storages.TodoRepository, logger), storages.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownAdapterMode, cfg.Adapter.Mode)
	}
}

// Run blocks until the UI exits or ctx is cancelled. All requests made during
// one run carry the same trace ID.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	runCtx, cancel := context.WithCancel(utils.WithTraceID(ctx, uuid.NewString()))
	defer cancel()

	a.reportServerVersion(runCtx)

	g, gctx := errgroup.WithContext(runCtx)

	if a.metricsServer != nil {
		g.Go(a.serveMetrics)
		g.Go(func() error {
			<-gctx.Done()
			a.shutdownMetrics()
			return nil
		})
	}

	a.workers.Start(gctx)
	defer a.workers.Stop()

	g.Go(func() error {
		defer cancel()
		return a.ui.Run(gctx)
	})

	return g.Wait()
}

func (a *App) reportServerVersion(ctx context.Context) {
	if a.version == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, versionRequestTimeout)
	defer cancel()

	info, err := a.version.Version(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "*App.reportServerVersion").Msg("todo server did not report its version")
		return
	}

	a.logger.Info().Str("server_version", info.Version).Str("server_commit", info.Commit).Msg("connected to todo server")
	a.ui.SetServerInfo(info)
}

func (a *App) serveMetrics() error {
	a.logger.Info().Str("address", a.metricsServer.Addr).Msg("launching metrics server")

	if err := a.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics server ListenAndServe: %w", err)
	}
	return nil
}

func (a *App) shutdownMetrics() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.metricsServer.Shutdown(ctx); err != nil {
		a.logger.Err(err).Str("func", "*App.shutdownMetrics").Msg("metrics server Shutdown")
	}
}

func (a *App) close() {
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			a.logger.Err(err).Str("func", "*App.close").Msg("error releasing client resources")
		}
	}
}

var _ Client = (*App)(nil)
