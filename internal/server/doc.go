// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the todo server's listeners.
//
// It serves the REST API and, when configured, the prometheus metrics
// endpoint, and shuts both down gracefully on SIGTERM, SIGINT or SIGQUIT.
package server
