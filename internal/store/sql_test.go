// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build !nosql

package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-config-access/models"
)

func newMockSQLBackend(t *testing.T) (*Backend, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return newSQLBackend(db, DialectPostgres, nil), mock
}

// ── sqlmock ─────────────────────────────────────────────────────────────────

func TestSQL_Get(t *testing.T) {
	ctx := context.Background()
	b, mock := newMockSQLBackend(t)

	mock.ExpectQuery("SELECT value FROM config_entries WHERE path = $1").
		WithArgs("db/host").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("localhost"))
	mock.ExpectQuery("SELECT value FROM config_entries WHERE path = $1").
		WithArgs("db/port").
		WillReturnError(sql.ErrNoRows)

	value, ok, err := b.GetString(ctx, "db/host")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "localhost", value)

	_, ok, err = b.GetString(ctx, "db/port")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_Put(t *testing.T) {
	ctx := context.Background()
	b, mock := newMockSQLBackend(t)
	require.NoError(t, b.SetPrefix(ctx, "app"))

	mock.ExpectExec("INSERT INTO config_entries (path,value) VALUES ($1,$2) ON CONFLICT (path) DO UPDATE SET value = excluded.value").
		WithArgs("app/name", "demo").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, b.PutString(ctx, "name", "demo"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_Exists(t *testing.T) {
	ctx := context.Background()
	b, mock := newMockSQLBackend(t)

	mock.ExpectQuery("SELECT 1 FROM config_entries WHERE path = $1").
		WithArgs("a").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectQuery("SELECT 1 FROM config_entries WHERE path = $1").
		WithArgs("b").
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	ok, err := b.Exists(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = b.Exists(ctx, "b")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_DriverError(t *testing.T) {
	ctx := context.Background()
	b, mock := newMockSQLBackend(t)
	pgErr := &pgconn.PgError{Code: pgerrcode.ConnectionFailure}

	mock.ExpectExec("INSERT INTO config_entries (path,value) VALUES ($1,$2) ON CONFLICT (path) DO UPDATE SET value = excluded.value").
		WithArgs("a", "b").
		WillReturnError(pgErr)

	err := b.PutString(ctx, "a", "b")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrBackendFailure)

	var got *pgconn.PgError
	require.True(t, errors.As(err, &got))
	assert.Equal(t, Retryable, ClassifyError(err))
}

func TestSQL_ListFiltersSiblings(t *testing.T) {
	ctx := context.Background()
	b, mock := newMockSQLBackend(t)

	mock.ExpectQuery(`SELECT path, value FROM config_entries WHERE (path = $1 OR path LIKE $2 ESCAPE '\') ORDER BY path`).
		WithArgs("app", "app/%").
		WillReturnRows(sqlmock.NewRows([]string{"path", "value"}).
			AddRow("app", "root").
			AddRow("app/db/host", "h"))

	got, err := b.GetRecursiveMap(ctx, "app")
	require.NoError(t, err)
	assert.Equal(t, models.KeyValueMap{"app": "root", "app/db/host": "h"}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── sqlite ──────────────────────────────────────────────────────────────────

func TestSQL_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "config.db")

	b, err := NewSQL(ctx, DialectSQLite, dsn, nil)
	require.NoError(t, err)

	require.NoError(t, b.PutString(ctx, "db/host", "localhost"))
	require.NoError(t, b.PutString(ctx, "db/host", "db.internal"))
	require.NoError(t, b.PutString(ctx, "db_x/host", "other"))
	require.NoError(t, b.PutString(ctx, "db/port", "5432"))
	require.NoError(t, b.Close())

	reopened, err := NewSQL(ctx, DialectSQLite, dsn, nil)
	require.NoError(t, err)
	defer reopened.Close()

	value, ok, err := reopened.GetString(ctx, "db/host")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "db.internal", value)

	got, err := reopened.GetRecursiveMap(ctx, "db")
	require.NoError(t, err)
	assert.Equal(t, models.KeyValueMap{"db/host": "db.internal", "db/port": "5432"}, got)

	exists, err := reopened.Exists(ctx, "db_x/host")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestNewSQL_UnknownDialect(t *testing.T) {
	_, err := NewSQL(context.Background(), "oracle", "dsn", nil)
	assert.ErrorIs(t, err, models.ErrUnrecognizedBackend)
}

// ── ClassifyError ───────────────────────────────────────────────────────────

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"plain", errors.New("x"), NonRetryable},
		{"pg deadlock", &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, Retryable},
		{"pg serialization", &pgconn.PgError{Code: pgerrcode.SerializationFailure}, Retryable},
		{"pg unique", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, NonRetryable},
		{"pg syntax", &pgconn.PgError{Code: pgerrcode.SyntaxError}, NonRetryable},
		{"sqlite busy", sqlite3.Error{Code: sqlite3.ErrBusy}, Retryable},
		{"sqlite constraint", sqlite3.Error{Code: sqlite3.ErrConstraint}, NonRetryable},
		{"wrapped", failure("pg", "put", &pgconn.PgError{Code: pgerrcode.CannotConnectNow}), Retryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyError(tt.err))
		})
	}

	assert.Equal(t, "retryable", Retryable.String())
	assert.Equal(t, "non-retryable", NonRetryable.String())
}
