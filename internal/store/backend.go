// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the configuration back ends: INI files, JSON and
// YAML documents, Consul, Redis, SQL databases and the remote config server.
//
// Every medium is a small driver ([kvStore]) that only knows canonical
// "/"-joined keys. [Backend] layers the per-instance prefix, the custom path
// separator and the recursive-get assembly on top of any driver, so the
// behaviour callers see is identical whichever medium answers.
package store

import (
	"context"

	"github.com/MKhiriev/go-config-access/internal/logger"
	"github.com/MKhiriev/go-config-access/models"
)

// kvStore is the contract between [Backend] and a storage medium.
// Keys are canonical: non-empty segments joined with "/".
type kvStore interface {
	// get returns the value stored at key; ok is false when it is absent.
	get(ctx context.Context, key string) (value string, ok bool, err error)

	// put stores value at key.
	put(ctx context.Context, key, value string) error

	// list returns at least every key equal to prefix or below it. Drivers
	// may return extra keys sharing the string prefix; [Backend] filters
	// them. The empty prefix lists everything.
	list(ctx context.Context, prefix string) (map[string]string, error)

	close() error
}

// existsChecker is implemented by drivers that answer existence checks
// without transferring the value.
type existsChecker interface {
	exists(ctx context.Context, key string) (bool, error)
}

// Backend implements the configuration contract on top of a driver.
//
// A Backend is meant for a single owner: prefix and separator are plain
// fields mutated without synchronisation.
type Backend struct {
	name   string
	source string
	store  kvStore
	paths  paths
	logger *logger.Logger
}

func newBackend(name, source string, store kvStore, log *logger.Logger) *Backend {
	if log == nil {
		log = logger.Nop()
	}
	return &Backend{
		name:   name,
		source: source,
		store:  store,
		paths:  newPaths(),
		logger: log.Component(name),
	}
}

// Name returns the backend kind ("ini", "json", "consul", ...).
func (b *Backend) Name() string { return b.name }

// Source returns the file path or endpoint the backend reads from.
func (b *Backend) Source() string { return b.source }

// PutString stores value at path.
func (b *Backend) PutString(ctx context.Context, path, value string) error {
	key, err := b.paths.key(path)
	if err != nil {
		return err
	}

	if err = b.store.put(ctx, key, value); err != nil {
		b.logger.Err(err).Str("func", "*Backend.PutString").Str("key", key).Msg("error storing value")
		return err
	}

	b.logger.Debug().Str("key", key).Msg("value stored")
	return nil
}

// GetString returns the value stored at path. A missing key yields
// ok == false and a nil error.
func (b *Backend) GetString(ctx context.Context, path string) (string, bool, error) {
	key, err := b.paths.key(path)
	if err != nil {
		return "", false, err
	}

	value, ok, err := b.store.get(ctx, key)
	if err != nil {
		b.logger.Err(err).Str("func", "*Backend.GetString").Str("key", key).Msg("error reading value")
		return "", false, err
	}

	return value, ok, nil
}

// Exists reports whether a value is stored at path. Depending on the driver
// this costs a full read; callers that want the value should use GetString
// and its ok result instead.
func (b *Backend) Exists(ctx context.Context, path string) (bool, error) {
	key, err := b.paths.key(path)
	if err != nil {
		return false, err
	}

	if checker, ok := b.store.(existsChecker); ok {
		return checker.exists(ctx, key)
	}

	_, ok, err := b.store.get(ctx, key)
	return ok, err
}

// SetPrefix makes every following path relative to prefix. The prefix is
// always split on "/", whatever the active separator.
func (b *Backend) SetPrefix(_ context.Context, prefix string) error {
	b.paths.setPrefix(prefix)
	b.logger.Debug().Str("prefix", prefix).Msg("prefix set")
	return nil
}

// SetPathSeparator changes the separator used to split put/get paths.
func (b *Backend) SetPathSeparator(sep rune) {
	b.paths.setSeparator(sep)
}

// ResetPathSeparator restores the default "/" separator.
func (b *Backend) ResetPathSeparator() {
	b.paths.resetSeparator()
}

// GetRecursiveMap returns every value at or below path keyed by the path a
// caller of this instance would pass to GetString.
func (b *Backend) GetRecursiveMap(ctx context.Context, path string) (models.KeyValueMap, error) {
	scope, entries, err := b.list(ctx, path)
	if err != nil {
		return nil, err
	}

	out := make(models.KeyValueMap, len(entries))
	for key, value := range entries {
		if !within(key, scope) {
			continue
		}
		if external, ok := b.paths.external(key); ok {
			out[external] = value
		}
	}

	return out, nil
}

// GetRecursive returns the subtree rooted at path. Node names are the key
// segments below path; a value stored at path itself lands on the root.
func (b *Backend) GetRecursive(ctx context.Context, path string) (*models.Node, error) {
	scope, entries, err := b.list(ctx, path)
	if err != nil {
		return nil, err
	}

	rel := make(models.KeyValueMap, len(entries))
	for key, value := range entries {
		if within(key, scope) {
			rel[relative(key, scope)] = value
		}
	}

	return models.BuildTree(rel, DefaultSeparator), nil
}

func (b *Backend) list(ctx context.Context, path string) (string, map[string]string, error) {
	scope := b.paths.scope(path)

	entries, err := b.store.list(ctx, scope)
	if err != nil {
		b.logger.Err(err).Str("func", "*Backend.list").Str("scope", scope).Msg("error listing values")
		return "", nil, err
	}

	return scope, entries, nil
}

// Close releases the driver's connection or file handle.
func (b *Backend) Close() error {
	return b.store.close()
}
