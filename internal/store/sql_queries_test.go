// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-todo-keeper/models"
)

var (
	sqliteBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Question)
	postgresBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
)

func Test_buildSelectAllTodosQuery(t *testing.T) {
	query, args, err := buildSelectAllTodosQuery(sqliteBuilder)
	require.NoError(t, err)

	assert.Empty(t, args)
	assert.Equal(t, "SELECT id, title, completed, position, created_at, updated_at FROM todos ORDER BY position ASC", query)
}

func Test_buildInsertTodoQuery_PlaceholdersPerDialect(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	todo := models.Todo{ID: "id-1", Title: "buy milk", Position: 2, CreatedAt: &now, UpdatedAt: &now}

	query, args, err := buildInsertTodoQuery(sqliteBuilder, todo)
	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO todos")
	assert.Contains(t, query, "(?,?,?,?,?,?)")
	require.Len(t, args, 6)
	assert.Equal(t, "id-1", args[0])
	assert.Equal(t, "buy milk", args[1])
	assert.Equal(t, false, args[2])
	assert.Equal(t, int64(2), args[3])

	query, _, err = buildInsertTodoQuery(postgresBuilder, todo)
	require.NoError(t, err)
	assert.Contains(t, query, "($1,$2,$3,$4,$5,$6)")
}

func Test_buildUpdateTodoQuery(t *testing.T) {
	now := time.Now().UTC()
	todo := models.Todo{ID: "id-7", Title: "walk", Completed: true}

	query, args, err := buildUpdateTodoQuery(postgresBuilder, todo, now)
	require.NoError(t, err)

	assert.Equal(t, "UPDATE todos SET title = $1, completed = $2, updated_at = $3 WHERE id = $4", query)
	assert.Equal(t, []any{"walk", true, now, "id-7"}, args)
}

func Test_buildDeleteQueries(t *testing.T) {
	query, args, err := buildDeleteTodoQuery(sqliteBuilder, "id-3")
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM todos WHERE id = ?", query)
	assert.Equal(t, []any{"id-3"}, args)

	query, args, err = buildDeleteAllTodosQuery(sqliteBuilder)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM todos", query)
	assert.Empty(t, args)
}

func Test_buildNextPositionQuery(t *testing.T) {
	query, _, err := buildNextPositionQuery(postgresBuilder)
	require.NoError(t, err)
	assert.Equal(t, "SELECT COALESCE(MAX(position), -1) + 1 FROM todos", query)
}
