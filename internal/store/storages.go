// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

// Storages bundles the repositories built on one database connection.
type Storages struct {
	TodoRepository TodoRepository

	db *DB
}

// NewStorages connects to cfg.DB, applies migrations and builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("connecting storage: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return &Storages{
		TodoRepository: NewTodoRepository(db, log),
		db:             db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
