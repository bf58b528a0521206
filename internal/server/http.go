// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

const shutdownTimeout = 5 * time.Second

type httpServer struct {
	name   string
	server *http.Server
	logger *logger.Logger
}

// newHTTPServer builds a listener for handler. A zero requestTimeout leaves
// read and write timeouts unset.
func newHTTPServer(name string, handler http.Handler, address string, requestTimeout time.Duration, logger *logger.Logger) *httpServer {
	return &httpServer{
		name: name,
		server: &http.Server{
			Addr:              address,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       requestTimeout,
			WriteTimeout:      requestTimeout,
		},
		logger: logger,
	}
}

// RunServer blocks until the listener fails or is shut down. A regular
// shutdown is not an error.
func (h *httpServer) RunServer() error {
	h.logger.Info().Str("server", h.name).Str("address", h.server.Addr).Msg("launching HTTP server")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s server ListenAndServe: %w", h.name, err)
	}
	return nil
}

func (h *httpServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Str("func", "*httpServer.Shutdown").Str("server", h.name).Msg("HTTP server Shutdown")
	}
}
