// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/internal/app"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/go-chi/chi/v5"
)

const todoIDParam = "id"

func (h *Handler) listTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.services.TodoService.List(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listTodos", err)
		return
	}
	if todos == nil {
		todos = []models.Todo{}
	}

	h.writeJSON(w, r, models.TodoListResponse{Todos: todos, Length: len(todos)}, http.StatusOK)
}

func (h *Handler) createTodo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createTodo").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	created, err := h.services.TodoService.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.createTodo", err)
		return
	}

	h.writeJSON(w, r, created, http.StatusCreated)
}

func (h *Handler) updateTodo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, todoIDParam)

	var req models.UpdateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.updateTodo").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.TodoService.Update(r.Context(), id, req); err != nil {
		writeError(w, r, "*Handler.updateTodo", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, todoIDParam)

	if err := h.services.TodoService.Delete(r.Context(), id); err != nil {
		writeError(w, r, "*Handler.deleteTodo", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteAllTodos(w http.ResponseWriter, r *http.Request) {
	if err := h.services.TodoService.DeleteAll(r.Context()); err != nil {
		writeError(w, r, "*Handler.deleteAllTodos", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeJSON").Msg("error writing response")
	}
}
