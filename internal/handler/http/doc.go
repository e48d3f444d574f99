// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the config server.
//
// It exposes a single configuration backend over the kv, tree and version
// routes declared in the models package. Request tracing, access logging,
// response compression and write authentication are handled here before
// requests reach the backend.
package http
