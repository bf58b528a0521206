// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-todo-keeper/models"
)

const todosTable = "todos"

var todoColumns = []string{"id", "title", "completed", "position", "created_at", "updated_at"}

func buildNextPositionQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("COALESCE(MAX(position), -1) + 1").From(todosTable).ToSql()
}

func buildInsertTodoQuery(b sq.StatementBuilderType, todo models.Todo) (string, []any, error) {
	return b.Insert(todosTable).
		Columns(todoColumns...).
		Values(todo.ID, todo.Title, todo.Completed, todo.Position, todo.CreatedAt, todo.UpdatedAt).
		ToSql()
}

func buildSelectAllTodosQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(todoColumns...).From(todosTable).OrderBy("position ASC").ToSql()
}

func buildUpdateTodoQuery(b sq.StatementBuilderType, todo models.Todo, updatedAt time.Time) (string, []any, error) {
	return b.Update(todosTable).
		Set("title", todo.Title).
		Set("completed", todo.Completed).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": todo.ID}).
		ToSql()
}

func buildDeleteTodoQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Delete(todosTable).Where(sq.Eq{"id": id}).ToSql()
}

func buildDeleteAllTodosQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Delete(todosTable).ToSql()
}
