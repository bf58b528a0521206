// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/syncedlist"
	"github.com/MKhiriev/go-todo-keeper/models"
)

type ClientServices struct {
	TodoService ClientTodoService
}

// NewClientServices wires the client services over todoStore. hooks observe
// every store call made by the todo list.
func NewClientServices(todoStore adapter.TodoStore, storeTimeout time.Duration, logger *logger.Logger, hooks ...syncedlist.StoreCallHook) *ClientServices {
	opts := []syncedlist.Option[*models.Todo]{
		syncedlist.WithStoreTimeout[*models.Todo](storeTimeout),
	}
	for _, hook := range hooks {
		opts = append(opts, syncedlist.WithStoreCallHook[*models.Todo](hook))
	}

	return &ClientServices{
		TodoService: NewClientTodoService(todoStore, logger, opts...),
	}
}
