// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	nethttp "net/http"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/handler/http"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/metrics"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	// Metrics serves the prometheus registry. Nil when metrics are disabled.
	Metrics nethttp.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, metricsCfg config.Metrics, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	handlers := &Handlers{}

	var httpMetrics *metrics.HTTPMetrics
	if metricsCfg.Address != "" {
		reg := metrics.NewRegistry()
		httpMetrics = metrics.NewHTTPMetrics(reg)
		handlers.Metrics = metrics.Handler(reg)
	}

	handlers.HTTP = http.NewHandler(services, httpMetrics, logger)

	return handlers, nil
}
