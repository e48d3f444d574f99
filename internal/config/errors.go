// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidBackendConfigs indicates a missing backend URI or a negative
	// backend timeout.
	ErrInvalidBackendConfigs = errors.New("invalid backend configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or a
	// negative request timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates inconsistent token settings, e.g. a
	// sign key without an issuer.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
