// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_TodoList(t *testing.T) {
	w := httptest.NewRecorder()
	resp := models.TodoListResponse{
		Todos:  []models.Todo{{ID: "a", Title: "buy milk", Position: 1}},
		Length: 1,
	}

	n, err := WriteJSON(w, resp, http.StatusOK)

	require.NoError(t, err)
	assert.Equal(t, w.Body.Len(), n)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t,
		`{"todos":[{"id":"a","title":"buy milk","completed":false,"position":1}],"length":1}`,
		w.Body.String())
}

func TestWriteJSON_Created(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, models.Todo{ID: "a", Title: "x"}, http.StatusCreated)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestWriteJSON_EmptyList(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, models.TodoListResponse{Todos: []models.Todo{}}, http.StatusOK)

	require.NoError(t, err)
	assert.JSONEq(t, `{"todos":[],"length":0}`, w.Body.String())
}

func TestWriteJSON_Unencodable(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteJSON(w, make(chan int), http.StatusOK)

	assert.Error(t, err)
	assert.Zero(t, n)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEqual(t, "application/json", w.Header().Get("Content-Type"))
}
