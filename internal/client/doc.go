// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client runtime.
//
// It builds the store adapter selected by configuration, the synced todo
// list on top of it, the background resync job, the optional metrics
// listener and the terminal UI, and runs them as one process lifecycle.
package client
