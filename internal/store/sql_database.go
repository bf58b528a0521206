// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/migrations"
)

// DB is a database/sql connection together with the dialect specific
// pieces the repository needs.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens a database for cfg.DSN. DSNs starting with postgres://
// or postgresql:// are opened with pgx; anything else is a SQLite file.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case cfg.DSN == "":
		log.Error().Str("func", "NewConnect").Msg("empty database dsn")
		return nil, ErrUnsupportedDSN
	case isPostgresDSN(cfg.DSN):
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return NewConnectSQLite(ctx, cfg, log)
	}
}

// Migrate applies the embedded migrations using this connection's dialect.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB, db.dialect); err != nil {
		db.logger.Err(err).Str("func", "DB.Migrate").Str("dialect", db.dialect).Msg("migration failed")
		return fmt.Errorf("migrating %s database: %w", db.dialect, err)
	}
	return nil
}

// Dialect returns the goose dialect of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}

// classify wraps retryable driver errors with [ErrStoreUnavailable] and
// constraint violations with [ErrTodoAlreadyExists].
func (db *DB) classify(err error) error {
	if db.errorClassificator == nil {
		return err
	}
	if db.errorClassificator.IsUniqueViolation(err) {
		return fmt.Errorf("%w: %w", ErrTodoAlreadyExists, err)
	}
	if db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return err
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
