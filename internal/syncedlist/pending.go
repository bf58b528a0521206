// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package syncedlist

import "context"

// Pending is the result of a queued mutation.
type Pending[T any] struct {
	done chan struct{}
	item T
	err  error
}

func newPending[T any]() *Pending[T] {
	return &Pending[T]{done: make(chan struct{})}
}

func (p *Pending[T]) resolve(item T, err error) {
	p.item = item
	p.err = err
	close(p.done)
}

// Done is closed once the mutation has finished, successfully or not.
func (p *Pending[T]) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the mutation finished or ctx is done. A ctx error only
// stops the wait; the mutation itself keeps its place in the queue and may
// still succeed. Use [Pending.Done] afterwards to learn the real outcome.
//
// The returned item depends on the operation: the canonical item for append,
// the removed item for remove, the current item for in-place changes and the
// zero value for clear.
func (p *Pending[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.item, p.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// await blocks until the mutation finished and returns its outcome. The
// blocking List methods use it: the caller's ctx already bounds the queue wait
// and the store call, so the result is never replaced by ctx.Err() after the
// mutation went through.
func (p *Pending[T]) await() (T, error) {
	<-p.done
	return p.item, p.err
}
