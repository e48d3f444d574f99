// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configuration

import (
	"github.com/MKhiriev/go-config-access/internal/store"
	"github.com/MKhiriev/go-config-access/models"
)

// Error categories.
var (
	ErrMalformedInput     = models.ErrMalformedInput
	ErrUnsupportedBackend = models.ErrUnsupportedBackend
	ErrBackendFailure     = models.ErrBackendFailure
)

// Concrete errors, each wrapping one category.
var (
	ErrIllFormedURI        = models.ErrIllFormedURI
	ErrConversion          = models.ErrConversion
	ErrInvalidPath         = models.ErrInvalidPath
	ErrUnrecognizedBackend = models.ErrUnrecognizedBackend
	ErrBackendNotEnabled   = models.ErrBackendNotEnabled
	ErrUnsupportedFileType = models.ErrUnsupportedFileType

	// ErrPathConflict is wrapped by document back ends when a write would
	// replace a nested section with a scalar or descend through a scalar.
	ErrPathConflict = store.ErrPathConflict
)
