// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package syncedlist

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

type entry[T any] struct {
	value T
	dirty bool
}

// List is an ordered collection whose mutations are mirrored to a [Store].
// It is safe for concurrent use.
type List[T any] struct {
	store        Store[T]
	logger       *logger.Logger
	storeTimeout time.Duration
	hooks        []StoreCallHook

	mu      sync.RWMutex
	items   []entry[T]
	loading bool

	obsMu     sync.RWMutex
	observers []subscription[T]
	nextObsID uint64

	// queueMu guards tail, the completion channel of the last queued operation.
	queueMu sync.Mutex
	tail    chan struct{}
}

type subscription[T any] struct {
	id  uint64
	obs Observer[T]
}

// New returns an empty list backed by store.
func New[T any](store Store[T], opts ...Option[T]) *List[T] {
	o := options[T]{logger: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	l := &List[T]{
		store:        store,
		logger:       o.logger,
		storeTimeout: o.storeTimeout,
		hooks:        o.hooks,
	}
	for _, obs := range o.observers {
		l.Subscribe(obs)
	}

	return l
}

// NewFromSnapshot returns a list seeded with items, which are assumed to be
// persisted already. Every item produces one ItemAdded notification for the
// observers given via [WithObserver]; no store call is made.
//
// A nil snapshot fails with [ErrInvalidArgument]. An empty one is valid.
func NewFromSnapshot[T any](store Store[T], items []T, opts ...Option[T]) (*List[T], error) {
	if items == nil {
		return nil, fmt.Errorf("%w: snapshot items must not be nil", ErrInvalidArgument)
	}

	l := New(store, opts...)

	l.mu.Lock()
	l.loading = true
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		l.loading = false
		l.mu.Unlock()
	}()

	for _, item := range items {
		if _, err := l.appendItem(context.Background(), item); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// Len returns the number of locally applied items.
func (l *List[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// At returns the item at index i.
func (l *List[T]) At(i int) (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, false
	}
	return l.items[i].value, true
}

// Items returns a copy of the current items in order.
func (l *List[T]) Items() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]T, len(l.items))
	for i, e := range l.items {
		out[i] = e.value
	}
	return out
}

// All iterates over a snapshot of the list taken when iteration starts.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range l.Items() {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Dirty returns the indexes of items whose last in-place change has not
// reached the store.
func (l *List[T]) Dirty() []int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var idx []int
	for i, e := range l.items {
		if e.dirty {
			idx = append(idx, i)
		}
	}
	return idx
}

// Loading reports whether the list is being seeded from a snapshot.
func (l *List[T]) Loading() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loading
}

// Subscribe registers obs and returns a function removing it.
func (l *List[T]) Subscribe(obs Observer[T]) (unsubscribe func()) {
	l.obsMu.Lock()
	defer l.obsMu.Unlock()

	id := l.nextObsID
	l.nextObsID++
	l.observers = append(l.observers, subscription[T]{id: id, obs: obs})

	return func() {
		l.obsMu.Lock()
		defer l.obsMu.Unlock()
		l.observers = slices.DeleteFunc(l.observers, func(s subscription[T]) bool {
			return s.id == id
		})
	}
}

// AppendAsync queues an append of item and returns immediately.
func (l *List[T]) AppendAsync(ctx context.Context, item T) *Pending[T] {
	return l.enqueue(ctx, func(ctx context.Context) (T, error) {
		return l.appendItem(ctx, item)
	})
}

// Append appends item after the store accepted it and returns the canonical
// item now stored at the tail.
func (l *List[T]) Append(ctx context.Context, item T) (T, error) {
	return l.AppendAsync(ctx, item).await()
}

// InsertAtAsync queues an insert at index. Only the tail position is
// supported; any other index fails with [ErrUnsupportedOperation] before the
// store is called.
func (l *List[T]) InsertAtAsync(ctx context.Context, index int, item T) *Pending[T] {
	return l.enqueue(ctx, func(ctx context.Context) (T, error) {
		if n := l.Len(); index != n {
			var zero T
			return zero, fmt.Errorf("%w: insert at %d with length %d: only append is supported", ErrUnsupportedOperation, index, n)
		}
		return l.appendItem(ctx, item)
	})
}

// InsertAt is the blocking form of [List.InsertAtAsync].
func (l *List[T]) InsertAt(ctx context.Context, index int, item T) (T, error) {
	return l.InsertAtAsync(ctx, index, item).await()
}

// RemoveAtAsync queues the removal of the item at index.
func (l *List[T]) RemoveAtAsync(ctx context.Context, index int) *Pending[T] {
	return l.enqueue(ctx, func(ctx context.Context) (T, error) {
		return l.removeItem(ctx, index)
	})
}

// RemoveAt removes the item at index after the store removed it and returns
// the removed item. An index outside the list skips the store and fails with
// [ErrIndexOutOfRange].
func (l *List[T]) RemoveAt(ctx context.Context, index int) (T, error) {
	return l.RemoveAtAsync(ctx, index).await()
}

// ClearAsync queues a clear.
func (l *List[T]) ClearAsync(ctx context.Context) *Pending[T] {
	return l.enqueue(ctx, func(ctx context.Context) (T, error) {
		var zero T
		return zero, l.clearItems(ctx)
	})
}

// Clear clears the store, even when the list is already empty, then removes
// every local item.
func (l *List[T]) Clear(ctx context.Context) error {
	_, err := l.ClearAsync(ctx).await()
	return err
}

// MarkChangedAsync queues the propagation of an in-place change of the item
// at index.
func (l *List[T]) MarkChangedAsync(ctx context.Context, index int) *Pending[T] {
	return l.enqueue(ctx, func(ctx context.Context) (T, error) {
		return l.propagateChange(ctx, index, nil)
	})
}

// MarkChanged signals that the item at index was mutated in place (for
// pointer element types). Observers are notified first, then the store is
// updated. A failed update returns a [*StaleItemError] and leaves the item
// dirty; the local change is kept.
func (l *List[T]) MarkChanged(ctx context.Context, index int) (T, error) {
	return l.MarkChangedAsync(ctx, index).await()
}

// ModifyAsync queues an in-place change of the item at index.
func (l *List[T]) ModifyAsync(ctx context.Context, index int, fn func(T) T) *Pending[T] {
	return l.enqueue(ctx, func(ctx context.Context) (T, error) {
		return l.propagateChange(ctx, index, fn)
	})
}

// Modify replaces the item at index with fn(item) and propagates the change
// like [List.MarkChanged].
func (l *List[T]) Modify(ctx context.Context, index int, fn func(T) T) (T, error) {
	return l.ModifyAsync(ctx, index, fn).await()
}

// IndexFunc returns the index of the first item satisfying match, or -1.
func (l *List[T]) IndexFunc(match func(T) bool) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return slices.IndexFunc(l.items, func(e entry[T]) bool {
		return match(e.value)
	})
}

// RemoveFuncAsync queues the removal of the first item satisfying match. The
// item is looked up when the operation runs, after every earlier mutation has
// been applied. No match fails with [ErrItemNotFound] and skips the store.
func (l *List[T]) RemoveFuncAsync(ctx context.Context, match func(T) bool) *Pending[T] {
	return l.enqueue(ctx, func(ctx context.Context) (T, error) {
		index, err := l.find(match)
		if err != nil {
			var zero T
			return zero, err
		}
		return l.removeItem(ctx, index)
	})
}

// RemoveFunc is the blocking form of [List.RemoveFuncAsync].
func (l *List[T]) RemoveFunc(ctx context.Context, match func(T) bool) (T, error) {
	return l.RemoveFuncAsync(ctx, match).await()
}

// ModifyFuncAsync queues an in-place change of the first item satisfying
// match. Lookup happens when the operation runs, as for [List.RemoveFuncAsync].
func (l *List[T]) ModifyFuncAsync(ctx context.Context, match func(T) bool, fn func(T) T) *Pending[T] {
	return l.enqueue(ctx, func(ctx context.Context) (T, error) {
		index, err := l.find(match)
		if err != nil {
			var zero T
			return zero, err
		}
		return l.propagateChange(ctx, index, fn)
	})
}

// ModifyFunc is the blocking form of [List.ModifyFuncAsync].
func (l *List[T]) ModifyFunc(ctx context.Context, match func(T) bool, fn func(T) T) (T, error) {
	return l.ModifyFuncAsync(ctx, match, fn).await()
}

// Resync retries the store update of every dirty item in order. Items whose
// update succeeds are no longer dirty; the others are reported as joined
// [*StaleItemError] values.
func (l *List[T]) Resync(ctx context.Context) error {
	_, err := l.enqueue(ctx, func(ctx context.Context) (T, error) {
		var zero T
		return zero, l.resyncDirty(ctx)
	}).await()
	return err
}

// enqueue chains run behind every previously queued operation. The chain is
// what keeps store calls in request order.
func (l *List[T]) enqueue(ctx context.Context, run func(ctx context.Context) (T, error)) *Pending[T] {
	p := newPending[T]()
	done := make(chan struct{})

	l.queueMu.Lock()
	prev := l.tail
	l.tail = done
	l.queueMu.Unlock()

	go func() {
		defer close(done)

		var zero T
		if prev != nil {
			select {
			case <-prev:
			case <-ctx.Done():
				p.resolve(zero, ctx.Err())
				// successors must still wait for the predecessor
				<-prev
				return
			}
		}

		if err := ctx.Err(); err != nil {
			p.resolve(zero, err)
			return
		}

		p.resolve(run(ctx))
	}()

	return p
}

func (l *List[T]) find(match func(T) bool) (int, error) {
	index := l.IndexFunc(match)
	if index < 0 {
		return -1, ErrItemNotFound
	}
	return index, nil
}

func (l *List[T]) appendItem(ctx context.Context, item T) (T, error) {
	var zero T

	canonical := item
	if !l.Loading() {
		err := l.callStore(ctx, OpAppend, func(ctx context.Context) error {
			var err error
			canonical, err = l.store.Append(ctx, item)
			return err
		})
		if err != nil {
			l.logger.Err(err).Str("func", "List.appendItem").Msg("store append failed, item not added")
			return zero, &StoreError{Op: OpAppend, Index: -1, Err: err}
		}
	}

	l.mu.Lock()
	index := len(l.items)
	l.items = append(l.items, entry[T]{value: canonical})
	l.mu.Unlock()

	l.notify(Change[T]{Kind: ItemAdded, Index: index, Item: canonical})
	return canonical, nil
}

func (l *List[T]) removeItem(ctx context.Context, index int) (T, error) {
	var zero T

	item, ok := l.At(index)
	if !ok {
		return zero, fmt.Errorf("%w: remove at %d with length %d", ErrIndexOutOfRange, index, l.Len())
	}

	err := l.callStore(ctx, OpRemove, func(ctx context.Context) error {
		return l.store.Remove(ctx, item)
	})
	if err != nil {
		l.logger.Err(err).Str("func", "List.removeItem").Int("index", index).Msg("store remove failed, item kept")
		return zero, &StoreError{Op: OpRemove, Index: index, Err: err}
	}

	l.mu.Lock()
	l.items = slices.Delete(l.items, index, index+1)
	l.mu.Unlock()

	l.notify(Change[T]{Kind: ItemRemoved, Index: index, Item: item})
	return item, nil
}

func (l *List[T]) clearItems(ctx context.Context) error {
	err := l.callStore(ctx, OpClear, l.store.Clear)
	if err != nil {
		l.logger.Err(err).Str("func", "List.clearItems").Msg("store clear failed, list kept")
		return &StoreError{Op: OpClear, Index: -1, Err: err}
	}

	l.mu.Lock()
	l.items = nil
	l.mu.Unlock()

	l.notify(Change[T]{Kind: Reset, Index: -1})
	return nil
}

// propagateChange applies fn (if any), notifies observers and then updates
// the store. The store update trails the local change and never rolls it back.
func (l *List[T]) propagateChange(ctx context.Context, index int, fn func(T) T) (T, error) {
	var zero T

	l.mu.Lock()
	if index < 0 || index >= len(l.items) {
		n := len(l.items)
		l.mu.Unlock()
		return zero, fmt.Errorf("%w: change at %d with length %d", ErrIndexOutOfRange, index, n)
	}
	if fn != nil {
		l.items[index].value = fn(l.items[index].value)
	}
	item := l.items[index].value
	l.mu.Unlock()

	l.notify(Change[T]{Kind: ItemChanged, Index: index, Item: item})

	err := l.callStore(ctx, OpUpdate, func(ctx context.Context) error {
		return l.store.Update(ctx, item)
	})

	l.mu.Lock()
	l.items[index].dirty = err != nil
	l.mu.Unlock()

	if err != nil {
		l.logger.Warn().Err(err).Str("func", "List.propagateChange").Int("index", index).
			Msg("store update failed, item is out of sync")
		return item, &StaleItemError[T]{Index: index, Item: item, Err: err}
	}

	return item, nil
}

func (l *List[T]) resyncDirty(ctx context.Context) error {
	var errs []error

	for _, index := range l.Dirty() {
		item, _ := l.At(index)

		err := l.callStore(ctx, OpUpdate, func(ctx context.Context) error {
			return l.store.Update(ctx, item)
		})
		if err != nil {
			errs = append(errs, &StaleItemError[T]{Index: index, Item: item, Err: err})
			continue
		}

		l.mu.Lock()
		l.items[index].dirty = false
		l.mu.Unlock()
	}

	if len(errs) > 0 {
		l.logger.Warn().Int("stale", len(errs)).Str("func", "List.resyncDirty").Msg("resync left items out of sync")
	}

	return errors.Join(errs...)
}

func (l *List[T]) callStore(ctx context.Context, op Op, call func(ctx context.Context) error) error {
	if l.storeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.storeTimeout)
		defer cancel()
	}

	start := time.Now()
	err := call(ctx)
	elapsed := time.Since(start)

	for _, hook := range l.hooks {
		hook(op, elapsed, err)
	}

	return err
}

func (l *List[T]) notify(c Change[T]) {
	l.obsMu.RLock()
	subs := slices.Clone(l.observers)
	l.obsMu.RUnlock()

	for _, s := range subs {
		s.obs(c)
	}
}
