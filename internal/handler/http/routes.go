// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	if h.metrics != nil {
		router.Use(h.withMetrics)
	}

	router.Route("/api/todos", func(r chi.Router) {
		r.Get("/", h.listTodos)
		r.Post("/", h.createTodo)
		r.Delete("/", h.deleteAllTodos)

		r.Put("/{id}", h.updateTodo)
		r.Delete("/{id}", h.deleteTodo)
	})

	router.Get("/api/version/", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
