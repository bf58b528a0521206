// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package syncedlist provides [List], an ordered in-memory collection that
// mirrors every mutation to an injected [Store].
//
// Append, remove and clear are gated by the store: the local change is applied
// only after the matching store call succeeds, so a failed store call leaves
// the list untouched and is reported to the caller as a [*StoreError].
//
// In-place changes are the exception. The element has already been mutated by
// the time [List.MarkChanged] (or [List.Modify]) is called, so the store update
// trails the local change. A failed update cannot be rolled back: the entry is
// flagged dirty, the caller receives a [*StaleItemError] naming the index and
// item, and [List.Resync] retries every dirty entry later.
//
// All mutations of a list go through one FIFO operation chain. Store calls are
// issued and complete in the order the mutations were requested, regardless of
// how many goroutines submit them. Every mutation has an async form returning a
// [Pending] result and a blocking form that waits on it. A blocking form always
// reports what actually happened: cancelling its ctx while the store call runs
// is passed to the store, and the store's answer is returned.
//
// Positions shift while mutations are queued. Callers that identify items by
// key rather than position use [List.RemoveFunc] and [List.ModifyFunc], which
// resolve the position when the operation reaches the head of the queue.
//
// A list created by [NewFromSnapshot] is seeded in loading mode: the snapshot
// is assumed to be persisted already, so no store calls are issued for it.
package syncedlist
