// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build nosql

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-config-access/internal/logger"
	"github.com/MKhiriev/go-config-access/models"
)

// SQLEnabled reports whether the SQL back ends are compiled in.
const SQLEnabled = false

// Supported SQL dialects.
const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

// NewSQL always fails: the binary was built with the nosql tag.
func NewSQL(_ context.Context, dialect, _ string, _ *logger.Logger) (*Backend, error) {
	return nil, fmt.Errorf("%w: %s", models.ErrBackendNotEnabled, dialect)
}
