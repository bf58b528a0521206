// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/handler"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"golang.org/x/sync/errgroup"
)

type server struct {
	httpServer    *httpServer
	metricsServer *httpServer
	logger        *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, metricsCfg config.Metrics, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	servers := &server{
		httpServer: newHTTPServer("api", handlers.HTTP.Init(), cfg.HTTPAddress, cfg.RequestTimeout, logger),
		logger:     logger,
	}

	if handlers.Metrics != nil && metricsCfg.Address != "" {
		servers.metricsServer = newHTTPServer("metrics", handlers.Metrics, metricsCfg.Address, 0, logger)
	}

	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.serve(ctx); err != nil {
		s.logger.Err(err).Str("func", "*server.RunServer").Msg("error running server")
		return
	}
	s.logger.Info().Msg("server Shutdown gracefully")
}

func (s *server) Shutdown() {
	if s.metricsServer != nil {
		s.metricsServer.Shutdown()
	}
	s.httpServer.Shutdown()
}

// serve runs every listener until ctx is done or one of them fails, then
// shuts all of them down.
func (s *server) serve(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(s.httpServer.RunServer)
	if s.metricsServer != nil {
		g.Go(s.metricsServer.RunServer)
	}

	g.Go(func() error {
		<-gctx.Done()
		s.Shutdown()
		return nil
	})

	return g.Wait()
}
