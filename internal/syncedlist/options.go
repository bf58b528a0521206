// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package syncedlist

import (
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

// StoreCallHook is invoked after every store call with its duration and result.
type StoreCallHook func(op Op, elapsed time.Duration, err error)

type options[T any] struct {
	logger       *logger.Logger
	storeTimeout time.Duration
	observers    []Observer[T]
	hooks        []StoreCallHook
}

// Option configures a [List].
type Option[T any] func(*options[T])

// WithLogger sets the logger used for store failures. Defaults to [logger.Nop].
func WithLogger[T any](l *logger.Logger) Option[T] {
	return func(o *options[T]) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithStoreTimeout bounds every store call. Zero disables the bound.
func WithStoreTimeout[T any](d time.Duration) Option[T] {
	return func(o *options[T]) {
		o.storeTimeout = d
	}
}

// WithObserver subscribes obs before the list is seeded, so it also receives
// the notifications produced by [NewFromSnapshot].
func WithObserver[T any](obs Observer[T]) Option[T] {
	return func(o *options[T]) {
		if obs != nil {
			o.observers = append(o.observers, obs)
		}
	}
}

// WithStoreCallHook registers a hook called after every store call.
func WithStoreCallHook[T any](hook StoreCallHook) Option[T] {
	return func(o *options[T]) {
		if hook != nil {
			o.hooks = append(o.hooks, hook)
		}
	}
}
