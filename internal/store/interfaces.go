// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// TodoRepository persists todos in position order.
type TodoRepository interface {
	// Create stores todo at the end of the list and returns the stored
	// version with ID, position and timestamps filled in. A todo that
	// already carries an ID keeps it.
	Create(ctx context.Context, todo models.Todo) (models.Todo, error)
	// GetAll returns every todo ordered by position.
	GetAll(ctx context.Context) ([]models.Todo, error)
	// Update overwrites title and completion of the todo with the same ID.
	// Returns [ErrTodoNotFound] when nothing matched.
	Update(ctx context.Context, todo models.Todo) error
	// Delete removes one todo by ID. Returns [ErrTodoNotFound] when nothing matched.
	Delete(ctx context.Context, id string) error
	// DeleteAll removes every todo.
	DeleteAll(ctx context.Context) error
}

// ErrorClassificator decides how a driver error should be treated.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	// IsUniqueViolation reports whether err is a primary key or unique
	// constraint violation.
	IsUniqueViolation(err error) bool
}
