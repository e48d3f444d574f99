// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configuration

import (
	"context"

	"github.com/MKhiriev/go-config-access/internal/store"
	"github.com/MKhiriev/go-config-access/models"
)

//go:generate mockgen -source=configuration.go -destination=../internal/mock/configuration_mock.go -package=mock

// Configuration is implemented by every backend.
type Configuration interface {
	// PutString stores value at path.
	PutString(ctx context.Context, path, value string) error

	// GetString returns the value at path. A missing key yields ok == false
	// and a nil error.
	GetString(ctx context.Context, path string) (value string, ok bool, err error)

	// Exists reports whether path holds a value. Depending on the backend
	// this costs as much as a full read; callers that need the value should
	// use GetString and its ok result.
	Exists(ctx context.Context, path string) (bool, error)

	// SetPrefix makes all following paths relative to prefix. The prefix is
	// always "/"-separated. An empty prefix clears it.
	SetPrefix(ctx context.Context, prefix string) error

	// SetPathSeparator changes the separator of put and get paths. The prefix
	// keeps using "/".
	SetPathSeparator(sep rune)

	// ResetPathSeparator restores the "/" separator.
	ResetPathSeparator()

	// GetRecursive returns the subtree rooted at path with node names
	// relative to it.
	GetRecursive(ctx context.Context, path string) (*models.Node, error)

	// GetRecursiveMap returns every value at or below path, keyed by the path
	// GetString on this instance would accept.
	GetRecursiveMap(ctx context.Context, path string) (models.KeyValueMap, error)

	// Close releases the connection or file handle of the backend.
	Close() error
}

// IntPutter is implemented by backends that store integers natively.
type IntPutter interface {
	PutInt(ctx context.Context, path string, n int) error
}

// FloatPutter is implemented by backends that store floats natively.
type FloatPutter interface {
	PutFloat(ctx context.Context, path string, f float64) error
}

var (
	_ Configuration = (*store.Backend)(nil)
	_ Configuration = (*store.DocumentBackend)(nil)
	_ IntPutter     = (*store.DocumentBackend)(nil)
	_ FloatPutter   = (*store.DocumentBackend)(nil)
)
