// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/syncedlist"
	"github.com/MKhiriev/go-todo-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	todos   service.ClientTodoService
	info    buildInfo
	options []tea.ProgramOption

	logger *logger.Logger
}

// New creates the terminal view of todos. mode names the store the list is
// mirrored to and is shown on the about screen.
func New(todos service.ClientTodoService, clientInfo models.AppBuildInfo, mode string, logger *logger.Logger, options ...tea.ProgramOption) *TUI {
	return &TUI{
		todos:   todos,
		info:    buildInfo{Client: clientInfo, Mode: mode},
		options: options,
		logger:  logger,
	}
}

// SetServerInfo adds the remote server's build info to the about screen.
func (t *TUI) SetServerInfo(info models.AppBuildInfo) {
	t.info.Server = &info
}

// Run blocks until the user quits or ctx is cancelled. Cancellation is not
// an error.
func (t *TUI) Run(ctx context.Context) error {
	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, t.options...)
	program := tea.NewProgram(newModel(ctx, t.todos, t.info), opts...)

	unsubscribe := t.todos.Subscribe(func(c syncedlist.Change[*models.Todo]) {
		program.Send(changeMsg{kind: c.Kind, index: c.Index})
	})
	defer unsubscribe()

	t.logger.Info().Msg("starting terminal ui")

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("error running terminal ui: %w", err)
	}
	return nil
}
