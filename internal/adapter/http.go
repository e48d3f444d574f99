// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-config-access/internal/logger"
	"github.com/MKhiriev/go-config-access/internal/utils"
	"github.com/MKhiriev/go-config-access/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of
// [ServerAdapter] for the server at baseURL. A non-empty token is sent as a
// bearer token with every request.
//
// Returns an error if baseURL is empty or is not an absolute URL.
func NewHTTPServerAdapter(baseURL, token string, timeout time.Duration, log *logger.Logger) (ServerAdapter, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid config server address: %w", err)
	}
	if log == nil {
		log = logger.Nop()
	}

	client := utils.NewHTTPClient(normalized, timeout)
	if token = strings.TrimSpace(token); token != "" {
		client.SetAuthToken(token)
	}

	return &httpServerAdapter{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// escapeKey path-escapes every segment of a canonical key.
func escapeKey(key string) string {
	segs := strings.Split(key, "/")
	for i, seg := range segs {
		segs[i] = url.PathEscape(seg)
	}
	return strings.Join(segs, "/")
}

// Get implements [ServerAdapter] with GET /api/v1/kv/{key}.
func (h *httpServerAdapter) Get(ctx context.Context, key string) (string, bool, error) {
	var entry models.Entry

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&entry).
		Get(models.KVRoute + escapeKey(key))
	if err != nil {
		return "", false, fmt.Errorf("get request: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return "", false, nil
	}
	if err = mapHTTPError(resp); err != nil {
		return "", false, err
	}

	return entry.Value, true, nil
}

// Exists implements [ServerAdapter] with HEAD /api/v1/kv/{key}.
func (h *httpServerAdapter) Exists(ctx context.Context, key string) (bool, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Head(models.KVRoute + escapeKey(key))
	if err != nil {
		return false, fmt.Errorf("exists request: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return false, nil
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return true, nil
}

// Put implements [ServerAdapter] with PUT /api/v1/kv/{key}.
func (h *httpServerAdapter) Put(ctx context.Context, key, value string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.PutRequest{Value: value}).
		Put(models.KVRoute + escapeKey(key))
	if err != nil {
		return fmt.Errorf("put request: %w", err)
	}

	return mapHTTPError(resp)
}

// List implements [ServerAdapter] with GET /api/v1/tree/{scope}.
func (h *httpServerAdapter) List(ctx context.Context, scope string) (models.KeyValueMap, error) {
	var entries models.EntriesResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&entries).
		Get(models.TreeRoute + escapeKey(scope))
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if entries.Entries == nil {
		entries.Entries = models.KeyValueMap{}
	}
	h.logger.Debug().Str("scope", scope).Int("entries", len(entries.Entries)).Msg("listed remote entries")
	return entries.Entries, nil
}

// Version implements [ServerAdapter] with GET /api/version.
func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&version).
		Get(models.VersionRoute)
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return version, nil
}
