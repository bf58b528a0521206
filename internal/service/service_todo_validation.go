// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// TodoServiceWrapper decorates a TodoService, for example with validation.
type TodoServiceWrapper interface {
	Wrap(TodoService) TodoService
}

// TodoValidationService rejects invalid input before it reaches the wrapped
// [TodoService].
type TodoValidationService struct {
	inner     TodoService
	validator validators.Validator
}

func NewTodoValidationService() TodoServiceWrapper {
	return &TodoValidationService{
		validator: validators.NewTodoValidator(),
	}
}

func (v *TodoValidationService) List(ctx context.Context) ([]models.Todo, error) {
	return v.inner.List(ctx)
}

func (v *TodoValidationService) Create(ctx context.Context, req models.CreateTodoRequest) (models.Todo, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Todo{}, fmt.Errorf("error during todo validation before saving: %w", err)
	}
	return v.inner.Create(ctx, req)
}

func (v *TodoValidationService) Update(ctx context.Context, id string, req models.UpdateTodoRequest) error {
	todo := models.Todo{ID: id, Title: req.Title, Completed: req.Completed}
	if err := v.validator.Validate(ctx, todo); err != nil {
		return fmt.Errorf("error during todo validation before update: %w", err)
	}
	return v.inner.Update(ctx, id, req)
}

func (v *TodoValidationService) Delete(ctx context.Context, id string) error {
	if err := v.validator.Validate(ctx, models.Todo{ID: id}, validators.FieldID); err != nil {
		return fmt.Errorf("error during todo validation before delete: %w", err)
	}
	return v.inner.Delete(ctx, id)
}

func (v *TodoValidationService) DeleteAll(ctx context.Context) error {
	return v.inner.DeleteAll(ctx)
}

func (v *TodoValidationService) Wrap(wrapped TodoService) TodoService {
	v.inner = wrapped
	return v
}
