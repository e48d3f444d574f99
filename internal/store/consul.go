// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build !noconsul

package store

import (
	"context"
	"net/http"
	"time"

	"github.com/hashicorp/consul/api"

	"github.com/MKhiriev/go-config-access/internal/logger"
)

// ConsulEnabled reports whether the Consul back end is compiled in.
const ConsulEnabled = true

// consulStore keeps every key in the Consul KV store, one Consul key per
// configuration key.
type consulStore struct {
	address string
	kv      *api.KV
}

// NewConsul connects to the Consul agent at address (host:port) and checks
// that it answers before returning.
func NewConsul(ctx context.Context, address string, timeout time.Duration, log *logger.Logger) (*Backend, error) {
	conf := api.DefaultConfig()
	conf.Address = address
	conf.HttpClient = &http.Client{Timeout: timeout}

	client, err := api.NewClient(conf)
	if err != nil {
		return nil, failure(address, "create consul client", err)
	}

	if _, err = client.Status().LeaderWithQueryOptions((&api.QueryOptions{}).WithContext(ctx)); err != nil {
		return nil, failure(address, "connect", err)
	}

	return newBackend("consul", address, &consulStore{address: address, kv: client.KV()}, log), nil
}

func (s *consulStore) get(ctx context.Context, key string) (string, bool, error) {
	pair, _, err := s.kv.Get(key, (&api.QueryOptions{}).WithContext(ctx))
	if err != nil {
		return "", false, failure(s.address, "get "+key, err)
	}
	if pair == nil {
		return "", false, nil
	}
	return string(pair.Value), true, nil
}

func (s *consulStore) put(ctx context.Context, key, value string) error {
	pair := &api.KVPair{Key: key, Value: []byte(value)}
	if _, err := s.kv.Put(pair, (&api.WriteOptions{}).WithContext(ctx)); err != nil {
		return failure(s.address, "put "+key, err)
	}
	return nil
}

func (s *consulStore) list(ctx context.Context, prefix string) (map[string]string, error) {
	pairs, _, err := s.kv.List(prefix, (&api.QueryOptions{}).WithContext(ctx))
	if err != nil {
		return nil, failure(s.address, "list "+prefix, err)
	}

	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		out[pair.Key] = string(pair.Value)
	}
	return out, nil
}

func (s *consulStore) close() error { return nil }
