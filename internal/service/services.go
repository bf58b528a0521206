// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// Services are the server-side services.
type Services struct {
	TodoService    TodoService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, info models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(info, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	todoService := NewTodoValidationService().Wrap(NewTodoService(storages.TodoRepository, logger))

	return &Services{
		TodoService:    todoService,
		AppInfoService: appInfo,
	}, nil
}
