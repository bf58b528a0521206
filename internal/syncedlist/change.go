// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package syncedlist

// ChangeKind identifies the kind of mutation a [Change] describes.
type ChangeKind int

const (
	// ItemAdded is emitted after an item is appended at Index.
	ItemAdded ChangeKind = iota
	// ItemRemoved is emitted after the item at Index is removed.
	ItemRemoved
	// ItemChanged is emitted after the item at Index was changed in place.
	ItemChanged
	// Reset is emitted once after the list was cleared. Index is -1.
	Reset
)

func (k ChangeKind) String() string {
	switch k {
	case ItemAdded:
		return "added"
	case ItemRemoved:
		return "removed"
	case ItemChanged:
		return "changed"
	case Reset:
		return "reset"
	default:
		return "unknown"
	}
}

// Change is a notification about one locally applied mutation.
type Change[T any] struct {
	Kind  ChangeKind
	Index int
	// Item is the affected element. For ItemRemoved it is the removed element;
	// for Reset it is the zero value.
	Item T
}

// Observer receives change notifications. Observers are called in operation
// order from the goroutine applying the mutation, after the list lock has been
// released, so they may read the list. The next queued mutation waits until
// every observer returned, so observers must not block for long and must not
// call a blocking mutation of the same list: it would wait for itself forever.
// Use the Async forms without waiting if an observer has to mutate the list.
type Observer[T any] func(Change[T])
