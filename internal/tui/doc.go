// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal view of the client todo list.
//
// The view subscribes to list changes and redraws from the service's
// snapshot on every change, so updates coming from the background resync
// job show up without user input.
package tui
