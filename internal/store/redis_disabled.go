// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build noredis

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-config-access/internal/logger"
	"github.com/MKhiriev/go-config-access/models"
)

// RedisEnabled reports whether the Redis back end is compiled in.
const RedisEnabled = false

// NewRedis always fails: the binary was built with the noredis tag.
func NewRedis(context.Context, string, string, time.Duration, *logger.Logger) (*Backend, error) {
	return nil, fmt.Errorf("%w: redis", models.ErrBackendNotEnabled)
}
