// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build noconsul

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-config-access/internal/logger"
	"github.com/MKhiriev/go-config-access/models"
)

// ConsulEnabled reports whether the Consul back end is compiled in.
const ConsulEnabled = false

// NewConsul always fails: the binary was built with the noconsul tag.
func NewConsul(context.Context, string, time.Duration, *logger.Logger) (*Backend, error) {
	return nil, fmt.Errorf("%w: consul", models.ErrBackendNotEnabled)
}
