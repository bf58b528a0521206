// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/handler"
	handlerhttp "github.com/MKhiriev/go-todo-keeper/internal/handler/http"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandlers(withMetrics bool) *handler.Handlers {
	h := &handler.Handlers{
		HTTP: handlerhttp.NewHandler(&service.Services{}, nil, logger.Nop()),
	}
	if withMetrics {
		h.Metrics = http.NotFoundHandler()
	}
	return h
}

func TestNewServer_NoHTTPAddress(t *testing.T) {
	s, err := NewServer(newTestHandlers(false), config.Server{}, config.Metrics{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_NilHandlers(t *testing.T) {
	_, err := NewServer(nil, config.Server{HTTPAddress: ":0"}, config.Metrics{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_MetricsListener(t *testing.T) {
	tests := []struct {
		name        string
		withMetrics bool
		address     string
		want        bool
	}{
		{"no metrics handler", false, ":9100", false},
		{"no metrics address", true, "", false},
		{"metrics enabled", true, ":9100", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewServer(newTestHandlers(tt.withMetrics),
				config.Server{HTTPAddress: ":8080", RequestTimeout: time.Second},
				config.Metrics{Address: tt.address},
				logger.Nop(),
			)
			require.NoError(t, err)

			srv := s.(*server)
			assert.Equal(t, tt.want, srv.metricsServer != nil)
			assert.Equal(t, time.Second, srv.httpServer.server.ReadTimeout)
		})
	}
}

func TestServe_StopsOnContextCancel(t *testing.T) {
	s, err := NewServer(newTestHandlers(true),
		config.Server{HTTPAddress: "127.0.0.1:0"},
		config.Metrics{Address: "127.0.0.1:0"},
		logger.Nop(),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.(*server).serve(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * shutdownTimeout):
		t.Fatal("serve did not return after cancel")
	}
}

func TestServe_ListenErrorStopsEverything(t *testing.T) {
	s, err := NewServer(newTestHandlers(true),
		config.Server{HTTPAddress: "127.0.0.1:0"},
		config.Metrics{Address: "not-an-address"},
		logger.Nop(),
	)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- s.(*server).serve(context.Background()) }()

	select {
	case err := <-done:
		assert.ErrorContains(t, err, "metrics server ListenAndServe")
	case <-time.After(2 * shutdownTimeout):
		t.Fatal("serve did not return after listen error")
	}
}
