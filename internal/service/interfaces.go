// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TodoService is the server-side todo API backing the HTTP handler.
type TodoService interface {
	List(ctx context.Context) ([]models.Todo, error)
	Create(ctx context.Context, req models.CreateTodoRequest) (models.Todo, error)
	Update(ctx context.Context, id string, req models.UpdateTodoRequest) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}
