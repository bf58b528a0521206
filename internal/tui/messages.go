// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-todo-keeper/internal/syncedlist"

// changeMsg carries a list change from the subscriber into the event loop.
type changeMsg struct {
	kind  syncedlist.ChangeKind
	index int
}

type loadedMsg struct {
	err error
}

// opDoneMsg reports the end of a list operation started by a key press.
type opDoneMsg struct {
	status string
	err    error
}
