// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-config-access/models"
)

// Driver-level failures. Each is returned wrapped together with
// [models.ErrBackendFailure] and the source (file name or endpoint), so
// callers can match either the category or the concrete cause with
// [errors.Is].
var (
	// ErrPathConflict is returned by document back ends when a write would
	// descend through, or overwrite, a value of the wrong shape (e.g. writing
	// "a/b" while "a" holds a scalar, or writing "a" while "a" holds a map).
	ErrPathConflict = errors.New("path conflicts with existing value")

	// ErrDocumentRoot is returned when a JSON or YAML document does not have
	// a mapping at its root.
	ErrDocumentRoot = errors.New("document root is not a mapping")
)

// failure wraps err as a backend failure on source during op.
func failure(source, op string, err error) error {
	return fmt.Errorf("%w: %s: %s: %w", models.ErrBackendFailure, source, op, err)
}
