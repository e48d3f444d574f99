// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// Error categories. Every error produced by the configuration layer wraps
// exactly one of these, so callers can branch on the category with
// [errors.Is] without knowing the concrete failure.
//
// A missing key is never reported as an error: getters return ok == false.
var (
	// ErrMalformedInput marks input the layer cannot interpret: a URI without
	// a scheme, an empty path, or a stored value that is not a valid
	// representation of the requested type.
	ErrMalformedInput = errors.New("malformed input")

	// ErrUnsupportedBackend marks a URI scheme that is unknown or whose
	// backend was compiled out of the binary.
	ErrUnsupportedBackend = errors.New("unsupported backend")

	// ErrBackendFailure marks a failure reported by the underlying medium:
	// file not found or unparsable, connection refused, remote error.
	ErrBackendFailure = errors.New("backend failure")
)

// Concrete failures, each wrapping its category.
var (
	// ErrIllFormedURI is returned by the factory when the URI has no scheme.
	ErrIllFormedURI = fmt.Errorf("ill-formed URI: %w", ErrMalformedInput)

	// ErrConversion is returned by typed getters when the stored string cannot
	// be parsed as the requested type.
	ErrConversion = fmt.Errorf("value conversion: %w", ErrMalformedInput)

	// ErrInvalidPath is returned when a path resolves to no segments at all.
	ErrInvalidPath = fmt.Errorf("invalid path: %w", ErrMalformedInput)

	// ErrUnrecognizedBackend is returned for a scheme the factory does not know.
	ErrUnrecognizedBackend = fmt.Errorf("unrecognized backend: %w", ErrUnsupportedBackend)

	// ErrBackendNotEnabled is returned for a known scheme whose backend was
	// excluded from the build with a build tag.
	ErrBackendNotEnabled = fmt.Errorf("backend not enabled: %w", ErrUnsupportedBackend)

	// ErrUnsupportedFileType is returned by the file scheme when the file name
	// carries neither the .ini nor the .cfg suffix.
	ErrUnsupportedFileType = fmt.Errorf("invalid type in file name: %w", ErrUnsupportedBackend)
)
