// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/metrics"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.HTTPMetrics

	logger *logger.Logger
}

// NewHandler creates the todo API handler. httpMetrics may be nil, in which
// case requests are not instrumented.
func NewHandler(services *service.Services, httpMetrics *metrics.HTTPMetrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  httpMetrics,
		logger:   logger,
	}
}
