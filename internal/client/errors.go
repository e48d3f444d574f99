// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"

	"github.com/MKhiriev/go-config-access/internal/app"
)

var (
	// ErrUsage is returned for an unknown command or a wrong operand count.
	ErrUsage = errors.New("usage error")

	// ErrKeyNotFound is returned by the get commands for a path that holds
	// no value.
	ErrKeyNotFound = errors.New(app.MsgKeyNotFound)

	// ErrNoBackendURI is returned when a command needs a backend and none was
	// configured.
	ErrNoBackendURI = errors.New(app.MsgNoBackendURI)
)
