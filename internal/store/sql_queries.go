// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build !nosql

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

const (
	entriesTable = "config_entries"
	pathColumn   = "path"
	valueColumn  = "value"

	upsertSuffix = "ON CONFLICT (path) DO UPDATE SET value = excluded.value"
)

// queryBuilder renders the few statements the SQL back end needs with the
// placeholder style of its dialect.
type queryBuilder struct {
	sq.StatementBuilderType
}

func newQueryBuilder(dialect string) queryBuilder {
	var format sq.PlaceholderFormat = sq.Question
	if dialect == DialectPostgres {
		format = sq.Dollar
	}
	return queryBuilder{sq.StatementBuilder.PlaceholderFormat(format)}
}

func (q queryBuilder) buildGetQuery(key string) (string, []any, error) {
	return q.Select(valueColumn).
		From(entriesTable).
		Where(sq.Eq{pathColumn: key}).
		ToSql()
}

func (q queryBuilder) buildExistsQuery(key string) (string, []any, error) {
	return q.Select("1").
		From(entriesTable).
		Where(sq.Eq{pathColumn: key}).
		ToSql()
}

func (q queryBuilder) buildUpsertQuery(key, value string) (string, []any, error) {
	return q.Insert(entriesTable).
		Columns(pathColumn, valueColumn).
		Values(key, value).
		Suffix(upsertSuffix).
		ToSql()
}

// buildListQuery selects prefix itself and every key below it. The empty
// prefix selects the whole table.
func (q queryBuilder) buildListQuery(prefix string) (string, []any, error) {
	query := q.Select(pathColumn, valueColumn).From(entriesTable).OrderBy(pathColumn)
	if prefix != "" {
		query = query.Where(sq.Or{
			sq.Eq{pathColumn: prefix},
			sq.Expr(pathColumn+` LIKE ? ESCAPE '\'`, escapeLike(prefix)+keySeparator+"%"),
		})
	}
	return query.ToSql()
}

// escapeLike quotes LIKE wildcards with a backslash.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
