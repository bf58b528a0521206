// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrTodoAlreadyExists is returned when a todo with the same ID is
	// already stored.
	ErrTodoAlreadyExists = errors.New("todo already exists")

	// ErrTodoNotFound is returned when an update or delete targets a todo
	// that does not exist.
	ErrTodoNotFound = errors.New("todo was not found")

	// ErrStoreUnavailable wraps driver errors classified as [Retryable].
	ErrStoreUnavailable = errors.New("store is temporarily unavailable")

	// ErrUnsupportedDSN is returned by [NewConnect] for an empty DSN.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to executing statement")
	ErrScanningRow          = errors.New("failed to scan todo row")
	ErrScanningRows         = errors.New("failed to scan todo rows")
)
