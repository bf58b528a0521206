// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package syncedlist

import "context"

// Store is the persistence capability a [List] fronts. Implementations must
// honour ctx cancellation: the list relies on it to bound store calls.
type Store[T any] interface {
	// Append persists item and returns its canonical form. The returned value,
	// not the submitted one, becomes the list entry.
	Append(ctx context.Context, item T) (T, error)

	// Remove deletes item from the store.
	Remove(ctx context.Context, item T) error

	// Clear deletes every item from the store.
	Clear(ctx context.Context) error

	// Update persists the current state of an item that was changed in place.
	Update(ctx context.Context, item T) error
}

// Op names a store operation.
type Op string

const (
	OpAppend Op = "append"
	OpRemove Op = "remove"
	OpClear  Op = "clear"
	OpUpdate Op = "update"
)

// String implements fmt.Stringer.
func (o Op) String() string {
	return string(o)
}
