// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-config-access/internal/adapter"
	"github.com/MKhiriev/go-config-access/internal/logger"
)

// remoteStore forwards every operation to a config server.
type remoteStore struct {
	baseURL string
	server  adapter.ServerAdapter
}

// NewHTTP connects to the config server at baseURL and checks that it
// answers its version endpoint. token, when set, authorises writes.
func NewHTTP(ctx context.Context, baseURL, token string, timeout time.Duration, log *logger.Logger) (*Backend, error) {
	server, err := adapter.NewHTTPServerAdapter(baseURL, token, timeout, log)
	if err != nil {
		return nil, failure(baseURL, "create client", err)
	}

	version, err := server.Version(ctx)
	if err != nil {
		return nil, failure(baseURL, "connect", err)
	}

	b := newRemoteBackend(baseURL, server, log)
	b.logger.Debug().Str("version", version.Version).Str("remote_backend", version.Backend).Msg("connected to config server")
	return b, nil
}

func newRemoteBackend(baseURL string, server adapter.ServerAdapter, log *logger.Logger) *Backend {
	return newBackend("http", baseURL, &remoteStore{baseURL: baseURL, server: server}, log)
}

func (s *remoteStore) get(ctx context.Context, key string) (string, bool, error) {
	value, ok, err := s.server.Get(ctx, key)
	if err != nil {
		return "", false, failure(s.baseURL, "get "+key, err)
	}
	return value, ok, nil
}

func (s *remoteStore) exists(ctx context.Context, key string) (bool, error) {
	ok, err := s.server.Exists(ctx, key)
	if err != nil {
		return false, failure(s.baseURL, "exists "+key, err)
	}
	return ok, nil
}

func (s *remoteStore) put(ctx context.Context, key, value string) error {
	if err := s.server.Put(ctx, key, value); err != nil {
		return failure(s.baseURL, "put "+key, err)
	}
	return nil
}

func (s *remoteStore) list(ctx context.Context, prefix string) (map[string]string, error) {
	entries, err := s.server.List(ctx, prefix)
	if err != nil {
		return nil, failure(s.baseURL, "list "+prefix, err)
	}
	return entries, nil
}

func (s *remoteStore) close() error { return nil }
