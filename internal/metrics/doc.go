// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the prometheus instrumentation: store call metrics
// fed by the synced list hook and HTTP request metrics for the server.
//
// Collectors are registered on an explicit registry so that tests and
// several components in one process do not collide on the default one.
package metrics
