// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the config server handlers
// and the confctl command line.
//
// Msg* constants end up in HTTP error bodies, log entries and CLI output.
// Keeping them in one place keeps the wording identical on both sides of the
// wire.
package app

const (
	// MsgKeyNotFound is returned when a read targets a path that holds no
	// value.
	MsgKeyNotFound = "key not found"

	// MsgInvalidRequestBody is returned when a write request body cannot be
	// decoded.
	MsgInvalidRequestBody = "invalid request body"

	// MsgInternalServerError is returned for failures the caller cannot
	// resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token fails
	// verification.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoBackendURI is printed by confctl when a command needs a backend
	// and no URI was configured.
	MsgNoBackendURI = "no backend URI configured (use -uri or BACKEND_URI)"

	// MsgUnknownCommand is printed by confctl for a command it does not know.
	MsgUnknownCommand = "unknown command"

	// MsgWrongArguments is printed by confctl when a command gets the wrong
	// number of operands.
	MsgWrongArguments = "wrong number of arguments"
)
