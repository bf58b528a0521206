// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/internal/syncedlist"
	"github.com/MKhiriev/go-todo-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientTodoService is the client-side todo list. Every change is applied to
// an in-memory synced list and mirrored to the configured store.
//
// All methods except Load and Subscribe fail with [ErrListNotLoaded] until
// Load succeeded.
type ClientTodoService interface {
	// Load replaces the in-memory list with the store's contents without
	// writing anything back. Subscribers first get a Reset, then one
	// ItemAdded per loaded todo.
	//
	// Load waits for running operations to finish. Unsaved changes are
	// resynced first; if some still fail, the list is kept and the error
	// matches ErrUnsavedChanges.
	Load(ctx context.Context) error

	// Add validates title and appends a new todo. The returned todo is the
	// store's version with ID and timestamps.
	Add(ctx context.Context, title string) (*models.Todo, error)

	// Toggle flips Completed of the todo with the given ID. When the store
	// rejects the update the local change is kept and a
	// *syncedlist.StaleItemError is returned; Resync retries it.
	//
	// Todos are addressed by ID and looked up when the operation reaches the
	// list, so earlier queued operations cannot shift the target. A todo that
	// is gone by then fails with ErrTodoNotFound.
	Toggle(ctx context.Context, id string) error

	// Rename replaces the title of the todo with the given ID. Same failure
	// semantics as Toggle.
	Rename(ctx context.Context, id, title string) error

	Remove(ctx context.Context, id string) error
	Clear(ctx context.Context) error

	// List returns copies of the todos in order.
	List() []*models.Todo

	// Subscribe registers obs for list changes. It may be called before Load.
	Subscribe(obs syncedlist.Observer[*models.Todo]) (unsubscribe func())

	// Resync retries the store update of every out-of-sync todo.
	Resync(ctx context.Context) error

	// OutOfSync returns the indexes of todos whose last update failed.
	OutOfSync() []int
}
