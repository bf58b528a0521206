// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	todosPath   = "/api/todos/"
	todoPath    = "/api/todos/{id}"
	versionPath = "/api/version/"
)

// remoteTodoStore talks to the todo server REST API.
type remoteTodoStore struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewRemoteTodoStore constructs an HTTP implementation of [TodoStore].
// The base URL comes from cfg.HTTPAddress, which may omit the scheme.
func NewRemoteTodoStore(cfg config.Adapter, log *logger.Logger) (*remoteTodoStore, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &remoteTodoStore{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Append POSTs the todo and returns the server's stored version of it.
func (s *remoteTodoStore) Append(ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	if todo == nil {
		return nil, ErrNilTodo
	}

	var created models.Todo
	resp, err := s.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CreateTodoRequest{Title: todo.Title, Completed: todo.Completed}).
		SetResult(&created).
		Post(todosPath)
	if err != nil {
		return nil, fmt.Errorf("create todo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		s.logger.Err(err).Str("func", "remoteTodoStore.Append").Msg("server rejected todo")
		return nil, err
	}
	if created.ID == "" {
		return nil, fmt.Errorf("%w: created todo has no id", ErrUnexpectedResponse)
	}

	return &created, nil
}

func (s *remoteTodoStore) Remove(ctx context.Context, todo *models.Todo) error {
	if err := checkPersisted(todo); err != nil {
		return err
	}

	resp, err := s.request(ctx).
		SetPathParam("id", todo.ID).
		Delete(todoPath)
	if err != nil {
		return fmt.Errorf("delete todo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		s.logger.Err(err).Str("func", "remoteTodoStore.Remove").Str("todo_id", todo.ID).Msg("server failed to delete todo")
		return err
	}

	return nil
}

func (s *remoteTodoStore) Clear(ctx context.Context) error {
	resp, err := s.request(ctx).
		Delete(todosPath)
	if err != nil {
		return fmt.Errorf("clear todos request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		s.logger.Err(err).Str("func", "remoteTodoStore.Clear").Msg("server failed to clear todos")
		return err
	}

	return nil
}

func (s *remoteTodoStore) Update(ctx context.Context, todo *models.Todo) error {
	if err := checkPersisted(todo); err != nil {
		return err
	}

	resp, err := s.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", todo.ID).
		SetBody(models.UpdateTodoRequest{Title: todo.Title, Completed: todo.Completed}).
		Put(todoPath)
	if err != nil {
		return fmt.Errorf("update todo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		s.logger.Err(err).Str("func", "remoteTodoStore.Update").Str("todo_id", todo.ID).Msg("server failed to update todo")
		return err
	}

	return nil
}

// Load GETs the full list from the server.
func (s *remoteTodoStore) Load(ctx context.Context) ([]*models.Todo, error) {
	var list models.TodoListResponse
	resp, err := s.request(ctx).
		SetResult(&list).
		Get(todosPath)
	if err != nil {
		return nil, fmt.Errorf("list todos request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	if list.Length != len(list.Todos) {
		return nil, fmt.Errorf("%w: length %d but got %d todos", ErrUnexpectedResponse, list.Length, len(list.Todos))
	}

	todos := make([]*models.Todo, 0, len(list.Todos))
	for i := range list.Todos {
		todos = append(todos, &list.Todos[i])
	}
	return todos, nil
}

// Version implements [VersionReporter].
func (s *remoteTodoStore) Version(ctx context.Context) (models.AppBuildInfo, error) {
	var info models.AppBuildInfo
	resp, err := s.request(ctx).
		SetResult(&info).
		Get(versionPath)
	if err != nil {
		return models.AppBuildInfo{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppBuildInfo{}, err
	}
	return info, nil
}

// request starts a resty request bound to ctx. The trace ID carried by ctx,
// if any, is forwarded so server logs can be correlated with the client.
func (s *remoteTodoStore) request(ctx context.Context) *resty.Request {
	req := s.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(utils.TraceIDHeader, traceID)
	}
	return req
}

func checkPersisted(todo *models.Todo) error {
	if todo == nil {
		return ErrNilTodo
	}
	if todo.ID == "" {
		return ErrMissingTodoID
	}
	return nil
}

var (
	_ TodoStore       = (*remoteTodoStore)(nil)
	_ VersionReporter = (*remoteTodoStore)(nil)
)
