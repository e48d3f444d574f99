// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Entry is one key/value pair as returned by GET /api/v1/kv/{key}. Key is
// the canonical "/"-joined path.
type Entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// PutRequest is the body of PUT /api/v1/kv/{key}.
type PutRequest struct {
	Value string `json:"value"`
}

// EntriesResponse is returned by GET /api/v1/tree/{scope}: every value at
// or below scope keyed by canonical path.
type EntriesResponse struct {
	Scope   string      `json:"scope"`
	Entries KeyValueMap `json:"entries"`
}

// VersionResponse is returned by GET /api/version.
type VersionResponse struct {
	Version string `json:"version"`
	Backend string `json:"backend"`
}

// ErrorResponse carries the message of a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Config server routes. Keys follow the kv and tree routes with every
// segment path-escaped.
const (
	KVRoute      = "/api/v1/kv/"
	TreeRoute    = "/api/v1/tree/"
	VersionRoute = "/api/version"
)
