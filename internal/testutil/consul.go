// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package testutil holds test doubles shared by the store and configuration
// tests.
package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
)

// FakeConsul serves the subset of the Consul HTTP API the KV client uses:
// the leader status and single-key or recursive KV reads and writes.
type FakeConsul struct {
	mu    sync.Mutex
	data  map[string][]byte
	index uint64
}

type consulPair struct {
	Key         string
	Value       []byte
	Flags       uint64
	CreateIndex uint64
	ModifyIndex uint64
	LockIndex   uint64
}

// NewFakeConsul starts a fake agent for the duration of t and returns it
// together with its host:port.
func NewFakeConsul(t testing.TB) (*FakeConsul, string) {
	t.Helper()
	f := &FakeConsul{data: make(map[string][]byte), index: 1}
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	return f, strings.TrimPrefix(srv.URL, "http://")
}

// Set stores value at key as if written by another client.
func (f *FakeConsul) Set(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.index++
	f.data[key] = []byte(value)
}

// Get returns the raw value stored at key.
func (f *FakeConsul) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	return string(v), ok
}

func (f *FakeConsul) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	// the client refuses responses without query metadata
	w.Header().Set("X-Consul-Index", "1")
	w.Header().Set("X-Consul-LastContact", "0")
	w.Header().Set("X-Consul-KnownLeader", "true")
	w.Header().Set("Content-Type", "application/json")

	if r.URL.Path == "/v1/status/leader" {
		_, _ = io.WriteString(w, `"127.0.0.1:8300"`)
		return
	}

	if !strings.HasPrefix(r.URL.Path, "/v1/kv/") {
		http.NotFound(w, r)
		return
	}
	key := strings.TrimPrefix(r.URL.Path, "/v1/kv/")

	switch r.Method {
	case http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		f.index++
		f.data[key] = body
		_, _ = io.WriteString(w, "true")
	case http.MethodGet:
		var pairs []consulPair
		if _, recurse := r.URL.Query()["recurse"]; recurse {
			for k, v := range f.data {
				if strings.HasPrefix(k, key) {
					pairs = append(pairs, consulPair{Key: k, Value: v, CreateIndex: 1, ModifyIndex: f.index})
				}
			}
			sort.Slice(pairs, func(i, j int) bool { return pairs[i].Key < pairs[j].Key })
		} else if v, ok := f.data[key]; ok {
			pairs = append(pairs, consulPair{Key: key, Value: v, CreateIndex: 1, ModifyIndex: f.index})
		}
		if len(pairs) == 0 {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(pairs)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
