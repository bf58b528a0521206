// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the stores a synced todo list mirrors its
// changes to: a remote todo server reached over HTTP and a local database.
//
// Transport errors are mapped to the sentinels in errors.go so callers can
// match them with [errors.Is] regardless of the backend.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/internal/syncedlist"
	"github.com/MKhiriev/go-todo-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/todo_store_mock.go -package=mock

// TodoStore is the persistence side of a synced todo list.
type TodoStore interface {
	syncedlist.Store[*models.Todo]

	// Load returns the stored todos in list order. The result is never nil
	// on success.
	Load(ctx context.Context) ([]*models.Todo, error)
}

// VersionReporter is implemented by stores that can report the version of
// the backend they talk to.
type VersionReporter interface {
	Version(ctx context.Context) (models.AppBuildInfo, error)
}
