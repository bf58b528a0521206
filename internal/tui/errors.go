// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/syncedlist"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
)

const (
	msgStoreUnavailable = "store is unavailable, nothing was changed"
	msgStale            = "changed locally but not saved, press s to retry"
)

// describeError turns an operation error into a one-line message for the
// status area.
func describeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, validators.ErrEmptyTitle):
		return "title is required"
	case errors.Is(err, validators.ErrTitleTooLong):
		return "title is too long"
	case errors.Is(err, validators.ErrTitleNotUTF8):
		return "title contains invalid characters"
	case errors.Is(err, service.ErrListNotLoaded):
		return "todos are not loaded yet, press r to reload"
	case errors.Is(err, service.ErrTodoNotFound), errors.Is(err, syncedlist.ErrIndexOutOfRange):
		return "that todo no longer exists"
	case errors.Is(err, service.ErrUnsavedChanges):
		return "some changes are still not saved, reload cancelled"
	case errors.Is(err, syncedlist.ErrStaleItem):
		return msgStale
	case errors.Is(err, adapter.ErrNotFound):
		return "todo was deleted on the server, press r to reload"
	case isUnavailable(err):
		return msgStoreUnavailable
	}

	return err.Error()
}

func isUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, adapter.ErrServiceUnavailable) ||
		errors.Is(err, adapter.ErrBadGateway) {
		return true
	}

	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout")
}
