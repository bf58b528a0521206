// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-todo-keeper/models"
)

const validID = "0192f0c5-7a9b-7cde-8f01-23456789abcd"

func TestNewTodoValidator(t *testing.T) {
	v := NewTodoValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// Todo
// ---------------------------------------------------------------------------

func TestValidate_Todo(t *testing.T) {
	v := NewTodoValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{name: "valid", obj: models.Todo{ID: validID, Title: "buy milk"}},
		{name: "valid pointer", obj: &models.Todo{ID: validID, Title: "buy milk"}},
		{name: "nil pointer", obj: (*models.Todo)(nil), wantErr: ErrNilValue},
		{name: "empty title", obj: models.Todo{ID: validID, Title: "   "}, wantErr: ErrEmptyTitle},
		{name: "bad id", obj: models.Todo{ID: "not-a-uuid", Title: "x"}, wantErr: ErrInvalidID},
		{name: "empty id", obj: models.Todo{Title: "x"}, wantErr: ErrInvalidID},
		{name: "title only skips id", obj: models.Todo{Title: "x"}, fields: []string{FieldTitle}},
		{name: "id only skips title", obj: models.Todo{ID: validID}, fields: []string{FieldID}},
		{name: "unknown field", obj: models.Todo{ID: validID, Title: "x"}, fields: []string{"position"}, wantErr: ErrUnknownField},
		{
			name:    "title too long",
			obj:     models.Todo{ID: validID, Title: strings.Repeat("ж", MaxTitleLength+1)},
			wantErr: ErrTitleTooLong,
		},
		{name: "invalid utf-8", obj: models.Todo{ID: validID, Title: "buy \xffmilk"}, wantErr: ErrTitleNotUTF8},
		{
			name:    "invalid utf-8 under the rune limit",
			obj:     models.Todo{ID: validID, Title: strings.Repeat("\xff", MaxTitleLength)},
			wantErr: ErrTitleNotUTF8,
		},
		{
			name: "title at limit",
			obj:  models.Todo{ID: validID, Title: strings.Repeat("ж", MaxTitleLength)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj, tt.fields...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

func TestValidate_Requests(t *testing.T) {
	v := NewTodoValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.CreateTodoRequest{Title: "a"}))
	assert.NoError(t, v.Validate(ctx, &models.UpdateTodoRequest{Title: "b", Completed: true}))
	assert.NoError(t, v.Validate(ctx, models.UpdateTodoRequest{Title: "b"}, FieldTitle))

	assert.ErrorIs(t, v.Validate(ctx, models.CreateTodoRequest{}), ErrEmptyTitle)
	assert.ErrorIs(t, v.Validate(ctx, &models.CreateTodoRequest{Title: "\t"}), ErrEmptyTitle)
	assert.ErrorIs(t, v.Validate(ctx, (*models.UpdateTodoRequest)(nil)), ErrNilValue)
	assert.ErrorIs(t, v.Validate(ctx, models.CreateTodoRequest{Title: "a"}, FieldID), ErrUnknownField)
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewTodoValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), "title"), ErrUnsupportedType)
}
