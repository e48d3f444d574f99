// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to a remote config server over its REST API.
//
// [ServerAdapter] hides the protocol from the HTTP configuration back end.
// HTTP status codes are mapped by mapHTTPError onto the sentinel errors of
// errors.go, so callers use [errors.Is] (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-config-access/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the client side of the config server API. Keys are
// canonical "/"-joined paths.
type ServerAdapter interface {
	// Get returns the value at key; ok is false when the server answers 404.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Exists asks the server with a HEAD request whether key holds a value.
	Exists(ctx context.Context, key string) (bool, error)

	// Put stores value at key. Servers with authentication enabled reject
	// writes without a valid bearer token.
	Put(ctx context.Context, key, value string) error

	// List returns every value at or below scope keyed by canonical path.
	List(ctx context.Context, scope string) (models.KeyValueMap, error)

	// Version returns the server version and the kind of backend it serves.
	Version(ctx context.Context) (models.VersionResponse, error)
}
