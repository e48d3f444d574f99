// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements confctl, the command line front end of the
// configuration layer.
//
// An [App] opens the backend named by the client configuration, runs one
// command against it and writes the result to its output. Commands that do
// not touch configuration (token, version, help) never open a backend.
package client
