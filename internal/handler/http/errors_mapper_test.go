// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest},
		{"empty title wrapped", fmt.Errorf("validate: %w", validators.ErrEmptyTitle), http.StatusBadRequest},
		{"invalid id", validators.ErrInvalidID, http.StatusBadRequest},
		{"nil value", validators.ErrNilValue, http.StatusBadRequest},
		{"not found", store.ErrTodoNotFound, http.StatusNotFound},
		{"already exists", store.ErrTodoAlreadyExists, http.StatusConflict},
		{"unavailable", store.ErrStoreUnavailable, http.StatusServiceUnavailable},
		{"query error", store.ErrScanningRows, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
		{
			"classified error wins over query error",
			fmt.Errorf("%w: %w", store.ErrTodoAlreadyExists, store.ErrExecutingQuery),
			http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
