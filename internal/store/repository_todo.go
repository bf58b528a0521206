// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
)

type idGenerator interface {
	Generate() string
}

// todoRepository is the database/sql implementation of [TodoRepository].
// Queries are built with squirrel using the placeholder format of the
// underlying dialect.
type todoRepository struct {
	*DB
	ids    idGenerator
	logger *logger.Logger
	now    func() time.Time
}

func NewTodoRepository(db *DB, log *logger.Logger) TodoRepository {
	return &todoRepository{
		DB:     db,
		ids:    utils.NewUUIDGenerator(),
		logger: log,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Create appends todo after the current last position inside one transaction.
func (r *todoRepository) Create(ctx context.Context, todo models.Todo) (models.Todo, error) {
	log := logger.FromContext(ctx)

	if todo.ID == "" {
		todo.ID = r.ids.Generate()
	}
	now := r.now()
	todo.CreatedAt = &now
	todo.UpdatedAt = &now

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "todoRepository.Create").Msg("failed to begin transaction")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, r.classify(err))
	}
	defer tx.Rollback() //nolint:errcheck

	posQuery, posArgs, err := buildNextPositionQuery(r.builder())
	if err != nil {
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if err = tx.QueryRowContext(ctx, posQuery, posArgs...).Scan(&todo.Position); err != nil {
		log.Err(err).Str("func", "todoRepository.Create").Msg("failed to read next position")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrExecutingQuery, r.classify(err))
	}

	query, args, err := buildInsertTodoQuery(r.builder(), todo)
	if err != nil {
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "todoRepository.Create").
			Str("todo_id", todo.ID).
			Msg("failed to insert todo")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrExecutingStatement, r.classify(err))
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "todoRepository.Create").Msg("failed to commit transaction")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, r.classify(err))
	}

	return todo, nil
}

func (r *todoRepository) GetAll(ctx context.Context) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllTodosQuery(r.builder())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "todoRepository.GetAll").Msg("failed to select todos")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.classify(err))
	}
	defer rows.Close()

	todos := make([]models.Todo, 0, 32)
	for rows.Next() {
		var todo models.Todo
		if err = rows.Scan(
			&todo.ID,
			&todo.Title,
			&todo.Completed,
			&todo.Position,
			&todo.CreatedAt,
			&todo.UpdatedAt,
		); err != nil {
			log.Err(err).Str("func", "todoRepository.GetAll").Msg("failed to scan todo row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		todos = append(todos, todo)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "todoRepository.GetAll").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return todos, nil
}

func (r *todoRepository) Update(ctx context.Context, todo models.Todo) error {
	query, args, err := buildUpdateTodoQuery(r.builder(), todo, r.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.execAffectingOne(ctx, "todoRepository.Update", todo.ID, query, args)
}

func (r *todoRepository) Delete(ctx context.Context, id string) error {
	query, args, err := buildDeleteTodoQuery(r.builder(), id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.execAffectingOne(ctx, "todoRepository.Delete", id, query, args)
}

func (r *todoRepository) DeleteAll(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAllTodosQuery(r.builder())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "todoRepository.DeleteAll").Msg("failed to delete todos")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.classify(err))
	}

	if n, err := res.RowsAffected(); err == nil {
		log.Debug().Str("func", "todoRepository.DeleteAll").Int64("deleted", n).Msg("todos deleted")
	}
	return nil
}

// execAffectingOne runs a statement that must touch the row identified by id.
func (r *todoRepository) execAffectingOne(ctx context.Context, funcName, id, query string, args []any) error {
	log := logger.FromContext(ctx)

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Str("todo_id", id).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.classify(err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Debug().Str("func", funcName).Str("todo_id", id).Msg("todo not found")
		return ErrTodoNotFound
	}

	return nil
}
