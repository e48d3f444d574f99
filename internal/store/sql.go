// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build !nosql

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-config-access/internal/logger"
	"github.com/MKhiriev/go-config-access/migrations"
	"github.com/MKhiriev/go-config-access/models"
)

// SQLEnabled reports whether the SQL back ends are compiled in.
const SQLEnabled = true

// Supported SQL dialects.
const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

// sqlStore keeps configuration keys as rows of the config_entries table.
type sqlStore struct {
	db      *sql.DB
	source  string
	queries queryBuilder
	logger  *logger.Logger
}

// NewSQL opens dsn with the driver of dialect, migrates the schema and
// returns a backend over it. For SQLite the DSN is the database file; it is
// created when missing.
func NewSQL(ctx context.Context, dialect, dsn string, log *logger.Logger) (*Backend, error) {
	var driver, gooseDialect string
	switch dialect {
	case DialectSQLite:
		driver, gooseDialect = "sqlite3", migrations.DialectSQLite
	case DialectPostgres:
		driver, gooseDialect = "pgx", migrations.DialectPostgres
	default:
		return nil, fmt.Errorf("%w: sql dialect %q", models.ErrUnrecognizedBackend, dialect)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, failure(dialect, "open", err)
	}

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, failure(dialect, "ping", err)
	}

	if err = migrations.Migrate(db, gooseDialect); err != nil {
		_ = db.Close()
		return nil, failure(dialect, "migrate", err)
	}

	return newSQLBackend(db, dialect, log), nil
}

func newSQLBackend(db *sql.DB, dialect string, log *logger.Logger) *Backend {
	if log == nil {
		log = logger.Nop()
	}
	s := &sqlStore{
		db:      db,
		source:  dialect,
		queries: newQueryBuilder(dialect),
		logger:  log.Component(dialect),
	}
	return newBackend(dialect, dialect, s, log)
}

func (s *sqlStore) get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := s.queries.buildGetQuery(key)
	if err != nil {
		return "", false, failure(s.source, "build query", err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, s.fail("get "+key, err)
	}
	return value, true, nil
}

func (s *sqlStore) exists(ctx context.Context, key string) (bool, error) {
	query, args, err := s.queries.buildExistsQuery(key)
	if err != nil {
		return false, failure(s.source, "build query", err)
	}

	var one int
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, s.fail("exists "+key, err)
	}
	return true, nil
}

func (s *sqlStore) put(ctx context.Context, key, value string) error {
	query, args, err := s.queries.buildUpsertQuery(key, value)
	if err != nil {
		return failure(s.source, "build query", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		return s.fail("put "+key, err)
	}
	return nil
}

func (s *sqlStore) list(ctx context.Context, prefix string) (map[string]string, error) {
	query, args, err := s.queries.buildListQuery(prefix)
	if err != nil {
		return nil, failure(s.source, "build query", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, s.fail("list "+prefix, err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err = rows.Scan(&key, &value); err != nil {
			return nil, s.fail("scan", err)
		}
		out[key] = value
	}
	if err = rows.Err(); err != nil {
		return nil, s.fail("list "+prefix, err)
	}

	return out, nil
}

func (s *sqlStore) close() error {
	return s.db.Close()
}

// fail logs the retry classification of a driver error and wraps it.
func (s *sqlStore) fail(op string, err error) error {
	s.logger.Err(err).Str("func", "*sqlStore."+op).Stringer("class", ClassifyError(err)).Msg("sql statement failed")
	return failure(s.source, op, err)
}
