// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the config server and its
// clients: context keys, JSON response writing, the resty client wrapper and
// JWT generation and validation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, so keys never collide with
// string keys of other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// WriterCtxKey stores the subject of the token that authorised a write.
var WriterCtxKey = contextKey("writer")

// GetWriterFromContext returns the writer stored by the auth middleware.
func GetWriterFromContext(ctx context.Context) (string, bool) {
	writer, ok := ctx.Value(WriterCtxKey).(string)
	return writer, ok
}
