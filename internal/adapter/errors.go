// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Errors mapped from HTTP status codes by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

var (
	// ErrNilTodo is returned when a store method receives a nil todo.
	ErrNilTodo = errors.New("todo is nil")

	// ErrMissingTodoID is returned for remove/update of a todo that was never persisted.
	ErrMissingTodoID = errors.New("todo has no id")

	// ErrUnexpectedResponse is returned when the server response cannot be used.
	ErrUnexpectedResponse = errors.New("unexpected server response")
)
