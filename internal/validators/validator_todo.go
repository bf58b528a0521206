// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-todo-keeper/models"
)

const (
	FieldID    = "id"
	FieldTitle = "title"
)

// MaxTitleLength is the longest accepted title, in runes.
const MaxTitleLength = 500

type TodoValidator struct {
}

func NewTodoValidator() Validator {
	return &TodoValidator{}
}

// Validate accepts models.Todo, models.CreateTodoRequest and
// models.UpdateTodoRequest, by value or by pointer.
func (v *TodoValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Todo:
		return v.validateTodo(value, fields...)
	case *models.Todo:
		if value == nil {
			return ErrNilValue
		}
		return v.validateTodo(*value, fields...)

	case models.CreateTodoRequest:
		return v.validateRequestTitle(value.Title, fields...)
	case *models.CreateTodoRequest:
		if value == nil {
			return ErrNilValue
		}
		return v.validateRequestTitle(value.Title, fields...)

	case models.UpdateTodoRequest:
		return v.validateRequestTitle(value.Title, fields...)
	case *models.UpdateTodoRequest:
		if value == nil {
			return ErrNilValue
		}
		return v.validateRequestTitle(value.Title, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *TodoValidator) validateTodo(todo models.Todo, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if err := uuid.Validate(todo.ID); err != nil {
				return ErrInvalidID
			}
		case FieldTitle:
			if err := validateTitle(todo.Title); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *TodoValidator) validateRequestTitle(title string, fields ...string) error {
	for _, f := range fields {
		if f != FieldTitle {
			return ErrUnknownField
		}
	}
	return validateTitle(title)
}

func validateTitle(title string) error {
	if !utf8.ValidString(title) {
		return ErrTitleNotUTF8
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}
