// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Todo is a single entry of the todo list.
type Todo struct {
	// ID is assigned by the store when the todo is first persisted.
	// Empty until then.
	ID string `json:"id"`

	// Title is the user-visible text of the todo. Required.
	Title string `json:"title"`

	// Completed reports whether the todo is done.
	Completed bool `json:"completed"`

	// Position is the zero-based place of the todo in the list at the time
	// it was created. Used to restore list order on load.
	Position int64 `json:"position"`

	// CreatedAt is set by the store on creation.
	CreatedAt *time.Time `json:"created_at,omitempty"`

	// UpdatedAt is set by the store on every write.
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// Clone returns a copy of t that shares no pointers with it.
func (t *Todo) Clone() *Todo {
	if t == nil {
		return nil
	}

	c := *t
	if t.CreatedAt != nil {
		createdAt := *t.CreatedAt
		c.CreatedAt = &createdAt
	}
	if t.UpdatedAt != nil {
		updatedAt := *t.UpdatedAt
		c.UpdatedAt = &updatedAt
	}
	return &c
}
