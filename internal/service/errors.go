// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-todo-keeper/internal/syncedlist"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
)

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrListNotLoaded is returned by client todo operations before Load succeeded.
	ErrListNotLoaded = errors.New("todo list is not loaded")

	// ErrUnsavedChanges is returned by a reload that would drop local changes
	// the store has not accepted.
	ErrUnsavedChanges = errors.New("todo list has unsaved changes")

	// ErrTodoNotFound is returned for a todo that is no longer in the list.
	ErrTodoNotFound = syncedlist.ErrItemNotFound

	// ErrEmptyTitle is returned when a todo would be stored without a title.
	ErrEmptyTitle = validators.ErrEmptyTitle
)
