// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package syncedlist

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned by [NewFromSnapshot] for an absent (nil)
	// snapshot.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupportedOperation is returned when an insert targets any position
	// other than the tail.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrIndexOutOfRange is returned when a positional operation addresses an
	// index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrItemNotFound is returned when no item satisfies the match of a
	// lookup-based mutation.
	ErrItemNotFound = errors.New("no matching item")

	// ErrStoreFailure matches every error caused by a failed store call.
	ErrStoreFailure = errors.New("store failure")

	// ErrStaleItem matches a [*StaleItemError]: the local item was changed but
	// the store was not updated.
	ErrStaleItem = errors.New("item is out of sync with store")
)

// StoreError reports a failed gating store call. The list is unchanged.
type StoreError struct {
	Op Op
	// Index is the affected position, or -1 when the operation has none
	// (append before insertion, clear).
	Index int
	Err   error
}

func (e *StoreError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("store %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("store %s failed at index %d: %v", e.Op, e.Index, e.Err)
}

// Unwrap exposes both [ErrStoreFailure] and the store's own error.
func (e *StoreError) Unwrap() []error {
	return []error{ErrStoreFailure, e.Err}
}

// StaleItemError reports a failed trailing update. The item at Index keeps its
// local change and is flagged dirty until a later [List.Resync] succeeds.
type StaleItemError[T any] struct {
	Index int
	Item  T
	Err   error
}

func (e *StaleItemError[T]) Error() string {
	return fmt.Sprintf("item at index %d is out of sync with store: %v", e.Index, e.Err)
}

func (e *StaleItemError[T]) Unwrap() []error {
	return []error{ErrStaleItem, ErrStoreFailure, e.Err}
}
