// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/models"
)

type todoService struct {
	repo   store.TodoRepository
	logger *logger.Logger
}

func NewTodoService(repo store.TodoRepository, logger *logger.Logger) TodoService {
	return &todoService{repo: repo, logger: logger}
}

func (s *todoService) List(ctx context.Context) ([]models.Todo, error) {
	todos, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing todos: %w", err)
	}
	return todos, nil
}

// Create stores a new todo at the end of the list.
func (s *todoService) Create(ctx context.Context, req models.CreateTodoRequest) (models.Todo, error) {
	created, err := s.repo.Create(ctx, models.Todo{
		Title:     strings.TrimSpace(req.Title),
		Completed: req.Completed,
	})
	if err != nil {
		return models.Todo{}, fmt.Errorf("error creating todo: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "todoService.Create").
		Str("todo_id", created.ID).
		Int64("position", created.Position).
		Msg("todo created")

	return created, nil
}

func (s *todoService) Update(ctx context.Context, id string, req models.UpdateTodoRequest) error {
	err := s.repo.Update(ctx, models.Todo{
		ID:        id,
		Title:     strings.TrimSpace(req.Title),
		Completed: req.Completed,
	})
	if err != nil {
		return fmt.Errorf("error updating todo %s: %w", id, err)
	}
	return nil
}

func (s *todoService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting todo %s: %w", id, err)
	}
	return nil
}

func (s *todoService) DeleteAll(ctx context.Context) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("error deleting all todos: %w", err)
	}
	return nil
}
