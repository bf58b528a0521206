// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the client's background jobs.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers together.
package workers

import "context"

// Worker is a background job. Start must not block; Stop blocks until the
// job has fully exited and is a no-op when the job is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Resyncer is the part of the todo service the resync job drives.
type Resyncer interface {
	Resync(ctx context.Context) error
	OutOfSync() []int
}
