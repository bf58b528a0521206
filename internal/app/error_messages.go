// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// todo server handlers and middleware.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies or log entries.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgEmptyTitle is returned when a todo is created or renamed without a title.
	MsgEmptyTitle = "title is required"

	// MsgTitleTooLong is returned when a title exceeds the accepted length.
	MsgTitleTooLong = "title is too long"

	// MsgTitleNotUTF8 is returned when a title is not valid UTF-8 text.
	MsgTitleNotUTF8 = "title is not valid utf-8"

	// MsgInvalidTodoID is returned when the {id} path segment is not a todo ID.
	MsgInvalidTodoID = "invalid todo id"

	// MsgTodoNotFound is returned when an update or delete targets a todo
	// that does not exist.
	MsgTodoNotFound = "todo not found"

	// MsgTodoAlreadyExists is returned when a todo with the same ID is
	// already stored.
	MsgTodoAlreadyExists = "todo already exists"

	// MsgStoreUnavailable is returned when the database reported a
	// transient failure. The client may retry.
	MsgStoreUnavailable = "store temporarily unavailable, retry later"

	MsgMethodNotAllowed = "method not allowed"
)
