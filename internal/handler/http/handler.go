// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-config-access/configuration"
	"github.com/MKhiriev/go-config-access/internal/logger"
)

// Settings parameterise a [Handler].
type Settings struct {
	// Version and Backend are reported by the version route.
	Version string
	Backend string

	// TokenSignKey enables bearer-token authentication of writes. Reads are
	// never authenticated.
	TokenSignKey string
	TokenIssuer  string

	// RequestTimeout cancels the request context of slow requests.
	RequestTimeout time.Duration
}

// Handler serves one configuration backend. Backends are meant for a single
// owner, so every backend call runs under mu.
type Handler struct {
	conf     configuration.Configuration
	mu       sync.Mutex
	settings Settings

	logger *logger.Logger
}

func NewHandler(conf configuration.Configuration, settings Settings, logger *logger.Logger) *Handler {
	logger.Info().
		Str("backend", settings.Backend).
		Bool("auth", settings.TokenSignKey != "").
		Msg("http handler created")

	return &Handler{
		conf:     conf,
		settings: settings,
		logger:   logger,
	}
}
