// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/migrations"
	"github.com/MKhiriev/go-todo-keeper/models"
)

type fixedIDs string

func (f fixedIDs) Generate() string { return string(f) }

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newTestRepo(t *testing.T, db *sql.DB, classifier ErrorClassificator, placeholder sq.PlaceholderFormat) *todoRepository {
	t.Helper()
	return &todoRepository{
		DB: &DB{
			DB:                 db,
			dialect:            migrations.DialectSQLite,
			placeholder:        placeholder,
			errorClassificator: classifier,
			logger:             logger.Nop(),
		},
		ids:    fixedIDs("generated-id"),
		logger: logger.Nop(),
		now:    func() time.Time { return fixedNow },
	}
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestTodoRepository_Create_AssignsIDPositionAndTimestamps(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db, NewSQLiteErrorClassifier(), sq.Question)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(MAX(position), -1) + 1 FROM todos")).
		WillReturnRows(sqlmock.NewRows([]string{"next"}).AddRow(int64(3)))
	mock.ExpectExec("INSERT INTO todos").
		WithArgs("generated-id", "buy milk", false, int64(3), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	got, err := repo.Create(testContext(), models.Todo{Title: "buy milk"})
	require.NoError(t, err)

	assert.Equal(t, "generated-id", got.ID)
	assert.Equal(t, int64(3), got.Position)
	require.NotNil(t, got.CreatedAt)
	require.NotNil(t, got.UpdatedAt)
	assert.True(t, got.CreatedAt.Equal(fixedNow))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepository_Create_KeepsProvidedID(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db, NewSQLiteErrorClassifier(), sq.Question)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COALESCE").
		WillReturnRows(sqlmock.NewRows([]string{"next"}).AddRow(int64(0)))
	mock.ExpectExec("INSERT INTO todos").
		WithArgs("client-id", "call mom", true, int64(0), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	got, err := repo.Create(testContext(), models.Todo{ID: "client-id", Title: "call mom", Completed: true})
	require.NoError(t, err)
	assert.Equal(t, "client-id", got.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepository_Create_DuplicateSQLite(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db, NewSQLiteErrorClassifier(), sq.Question)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COALESCE").
		WillReturnRows(sqlmock.NewRows([]string{"next"}).AddRow(int64(1)))
	mock.ExpectExec("INSERT INTO todos").
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey})
	mock.ExpectRollback()

	_, err := repo.Create(testContext(), models.Todo{ID: "dup", Title: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTodoAlreadyExists)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepository_Create_DuplicatePostgres(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db, NewPostgresErrorClassifier(), sq.Dollar)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COALESCE").
		WillReturnRows(sqlmock.NewRows([]string{"next"}).AddRow(int64(1)))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO todos (id,title,completed,position,created_at,updated_at) VALUES ($1,$2,$3,$4,$5,$6)")).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
	mock.ExpectRollback()

	_, err := repo.Create(testContext(), models.Todo{ID: "dup", Title: "x"})
	assert.ErrorIs(t, err, ErrTodoAlreadyExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepository_Create_BeginFails(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db, NewSQLiteErrorClassifier(), sq.Question)

	mock.ExpectBegin().WillReturnError(errors.New("db down"))

	_, err := repo.Create(testContext(), models.Todo{Title: "x"})
	assert.ErrorIs(t, err, ErrBeginningTransaction)
	require.NoError(t, mock.ExpectationsWereMet())
}

// ── GetAll ───────────────────────────────────────────────────────────────────

func TestTodoRepository_GetAll_OrderedRows(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db, NewSQLiteErrorClassifier(), sq.Question)

	rows := sqlmock.NewRows(todoColumns).
		AddRow("a", "first", false, int64(0), fixedNow, fixedNow).
		AddRow("b", "second", true, int64(4), fixedNow, fixedNow)
	mock.ExpectQuery(regexp.QuoteMeta("FROM todos ORDER BY position ASC")).WillReturnRows(rows)

	todos, err := repo.GetAll(testContext())
	require.NoError(t, err)
	require.Len(t, todos, 2)

	assert.Equal(t, "a", todos[0].ID)
	assert.Equal(t, "second", todos[1].Title)
	assert.True(t, todos[1].Completed)
	assert.Equal(t, int64(4), todos[1].Position)
	require.NotNil(t, todos[0].CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepository_GetAll_EmptyIsNotNil(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db, NewSQLiteErrorClassifier(), sq.Question)

	mock.ExpectQuery("SELECT (.+) FROM todos").WillReturnRows(sqlmock.NewRows(todoColumns))

	todos, err := repo.GetAll(testContext())
	require.NoError(t, err)
	assert.NotNil(t, todos)
	assert.Empty(t, todos)
}

func TestTodoRepository_GetAll_QueryErrorRetryable(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db, NewSQLiteErrorClassifier(), sq.Question)

	mock.ExpectQuery("SELECT (.+) FROM todos").WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})

	_, err := repo.GetAll(testContext())
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestTodoRepository_GetAll_RowError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db, NewSQLiteErrorClassifier(), sq.Question)

	rows := sqlmock.NewRows(todoColumns).
		AddRow("a", "first", false, int64(0), fixedNow, fixedNow).
		RowError(0, errors.New("broken row"))
	mock.ExpectQuery("SELECT (.+) FROM todos").WillReturnRows(rows)

	_, err := repo.GetAll(testContext())
	assert.ErrorIs(t, err, ErrScanningRows)
}

// ── Update / Delete ──────────────────────────────────────────────────────────

func TestTodoRepository_Update(t *testing.T) {
	tests := []struct {
		name    string
		result  execOutcome
		wantErr error
	}{
		{name: "updated", result: execOutcome{affected: 1}},
		{name: "not found", result: execOutcome{affected: 0}, wantErr: ErrTodoNotFound},
		{name: "exec error", result: execOutcome{err: errors.New("boom")}, wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := newTestRepo(t, db, NewSQLiteErrorClassifier(), sq.Question)

			exp := mock.ExpectExec(regexp.QuoteMeta("UPDATE todos SET title = ?, completed = ?, updated_at = ? WHERE id = ?")).
				WithArgs("renamed", true, fixedNow, "id-1")
			tt.result.apply(exp)

			err := repo.Update(testContext(), models.Todo{ID: "id-1", Title: "renamed", Completed: true})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTodoRepository_Delete(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db, NewSQLiteErrorClassifier(), sq.Question)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM todos WHERE id = ?")).
		WithArgs("id-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM todos WHERE id = ?")).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(testContext(), "id-1"))
	assert.ErrorIs(t, repo.Delete(testContext(), "missing"), ErrTodoNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepository_DeleteAll(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db, NewSQLiteErrorClassifier(), sq.Question)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM todos")).WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, repo.DeleteAll(testContext()))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM todos")).WillReturnError(errors.New("disk full"))
	assert.ErrorIs(t, repo.DeleteAll(testContext()), ErrExecutingStatement)
	require.NoError(t, mock.ExpectationsWereMet())
}

type execOutcome struct {
	affected int64
	err      error
}

func (d execOutcome) apply(exp *sqlmock.ExpectedExec) {
	if d.err != nil {
		exp.WillReturnError(d.err)
		return
	}
	exp.WillReturnResult(sqlmock.NewResult(0, d.affected))
}
