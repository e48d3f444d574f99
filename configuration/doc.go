// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package configuration reads and writes key/value configuration data through
// one API, whatever medium holds it.
//
// A backend is selected by the scheme of a URI:
//
//	file:///etc/app.ini           INI file (.ini or .cfg)
//	json:///etc/app.json          JSON document
//	yaml:///etc/app.yaml          YAML document
//	consul://localhost:8500/app   Consul KV, "app" becomes the prefix
//	redis://:secret@localhost/app Redis strings
//	sqlite:///var/lib/app.db      SQLite table
//	postgres://user@host/db       PostgreSQL table
//	http://:token@host:8080/app   remote config server
//
// Paths are sequences of segments separated by "/" (or by the separator
// given to SetPathSeparator). Empty segments are ignored, so "/a//b/" and
// "a/b" address the same key. Every instance carries a prefix that is
// prepended to all paths.
//
// A missing key is not an error: getters report it with ok == false. Every
// error wraps one of [ErrMalformedInput], [ErrUnsupportedBackend] or
// [ErrBackendFailure].
//
// Instances are meant for a single owner and are not safe for concurrent
// use.
package configuration
