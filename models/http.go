// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CreateTodoRequest is the body of POST /api/todos/.
type CreateTodoRequest struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// UpdateTodoRequest is the body of PUT /api/todos/{id}.
type UpdateTodoRequest struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// TodoListResponse is the body of GET /api/todos/.
type TodoListResponse struct {
	Todos []Todo `json:"todos"`
	// Length is len(Todos), provided so clients can validate the response.
	Length int `json:"length"`
}
