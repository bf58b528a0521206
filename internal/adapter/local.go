// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// localTodoStore keeps todos in a database on this machine.
type localTodoStore struct {
	repo   store.TodoRepository
	logger *logger.Logger
}

// NewLocalTodoStore constructs a [TodoStore] backed by repo.
func NewLocalTodoStore(repo store.TodoRepository, log *logger.Logger) *localTodoStore {
	return &localTodoStore{repo: repo, logger: log}
}

func (s *localTodoStore) Append(ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	if todo == nil {
		return nil, ErrNilTodo
	}

	created, err := s.repo.Create(ctx, models.Todo{Title: todo.Title, Completed: todo.Completed})
	if err != nil {
		s.logger.Err(err).Str("func", "localTodoStore.Append").Msg("failed to create todo")
		return nil, fmt.Errorf("create todo: %w", err)
	}
	return &created, nil
}

func (s *localTodoStore) Remove(ctx context.Context, todo *models.Todo) error {
	if err := checkPersisted(todo); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, todo.ID); err != nil {
		return fmt.Errorf("delete todo %s: %w", todo.ID, err)
	}
	return nil
}

func (s *localTodoStore) Clear(ctx context.Context) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("delete all todos: %w", err)
	}
	return nil
}

func (s *localTodoStore) Update(ctx context.Context, todo *models.Todo) error {
	if err := checkPersisted(todo); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, *todo); err != nil {
		return fmt.Errorf("update todo %s: %w", todo.ID, err)
	}
	return nil
}

func (s *localTodoStore) Load(ctx context.Context) ([]*models.Todo, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "localTodoStore.Load").Msg("failed to load todos")
		return nil, fmt.Errorf("load todos: %w", err)
	}

	todos := make([]*models.Todo, 0, len(all))
	for i := range all {
		todos = append(todos, &all[i])
	}
	return todos, nil
}

var _ TodoStore = (*localTodoStore)(nil)
