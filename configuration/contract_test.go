// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configuration_test

import (
	"context"
	"math"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-config-access/configuration"
	handler "github.com/MKhiriev/go-config-access/internal/handler/http"
	"github.com/MKhiriev/go-config-access/internal/logger"
	"github.com/MKhiriev/go-config-access/internal/store"
	"github.com/MKhiriev/go-config-access/internal/testutil"
	"github.com/MKhiriev/go-config-access/models"
)

// backendCase yields URIs of one fresh store. Every call of open returns a
// new instance over the same store.
type backendCase struct {
	name    string
	enabled bool
	uri     func(t *testing.T) string
}

func tempFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func backendCases() []backendCase {
	return []backendCase{
		{"file", true, func(t *testing.T) string {
			return "file://" + tempFile(t, "config.ini", "")
		}},
		{"json", true, func(t *testing.T) string {
			return "json://" + tempFile(t, "config.json", "{}")
		}},
		{"yaml", true, func(t *testing.T) string {
			return "yaml://" + tempFile(t, "config.yaml", "")
		}},
		{"redis", store.RedisEnabled, func(t *testing.T) string {
			return "redis://" + miniredis.RunT(t).Addr()
		}},
		{"sqlite", store.SQLEnabled, func(t *testing.T) string {
			return "sqlite://" + filepath.Join(t.TempDir(), "config.db")
		}},
		{"consul", store.ConsulEnabled, func(t *testing.T) string {
			_, addr := testutil.NewFakeConsul(t)
			return "consul://" + addr
		}},
		{"http", true, func(t *testing.T) string {
			served := open(t, "json://"+tempFile(t, "served.json", "{}"))
			h := handler.NewHandler(served, handler.Settings{Backend: "json"}, logger.Nop())
			srv := httptest.NewServer(h.Init())
			t.Cleanup(srv.Close)
			return srv.URL
		}},
	}
}

func open(t *testing.T, uri string) configuration.Configuration {
	t.Helper()
	c, err := configuration.GetConfiguration(context.Background(), uri)
	require.NoError(t, err, uri)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

// forEachBackend runs fn against a fresh store of every enabled backend.
func forEachBackend(t *testing.T, fn func(t *testing.T, uri string)) {
	for _, bc := range backendCases() {
		t.Run(bc.name, func(t *testing.T) {
			if !bc.enabled {
				t.Skipf("%s backend not compiled in", bc.name)
			}
			fn(t, bc.uri(t))
		})
	}
}

// ── absent keys ──────────────────────────────────────────────────────────────

func TestContract_AbsentKey(t *testing.T) {
	forEachBackend(t, func(t *testing.T, uri string) {
		ctx := context.Background()
		c := open(t, uri)

		value, ok, err := c.GetString(ctx, "never/written")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, value)

		exists, err := c.Exists(ctx, "never/written")
		require.NoError(t, err)
		assert.False(t, exists)

		n, ok, err := configuration.GetInt(ctx, c, "never/written")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Zero(t, n)
	})
}

// ── string round trip ────────────────────────────────────────────────────────

func TestContract_StringRoundTrip(t *testing.T) {
	values := map[string]string{
		"db/host":        "localhost",
		"db/user":        "with spaces",
		"service/url":    "http://example.com/x?y=1",
		"deeply/n/e/s/t": "v",
		"q/double":       `"x"`,
		"q/single":       `'x'`,
		"q/padded":       "  x  ",
		"q/backslash":    `x\`,
		"q/comment":      "a ; b # c",
	}

	forEachBackend(t, func(t *testing.T, uri string) {
		ctx := context.Background()
		c := open(t, uri)

		for path, value := range values {
			require.NoError(t, c.PutString(ctx, path, value), path)
		}
		for path, value := range values {
			got, ok, err := c.GetString(ctx, path)
			require.NoError(t, err, path)
			assert.True(t, ok, path)
			assert.Equal(t, value, got, path)

			exists, err := c.Exists(ctx, path)
			require.NoError(t, err, path)
			assert.True(t, exists, path)
		}

		// overwrite
		require.NoError(t, c.PutString(ctx, "db/host", "db.internal"))
		got, _, err := c.GetString(ctx, "db/host")
		require.NoError(t, err)
		assert.Equal(t, "db.internal", got)

		// a second instance over the same store sees the writes
		other := open(t, uri)
		for path, value := range values {
			if path == "db/host" {
				value = "db.internal"
			}
			got, ok, err := other.GetString(ctx, path)
			require.NoError(t, err, path)
			assert.True(t, ok, path)
			assert.Equal(t, value, got, path)
		}
	})
}

// ── numeric round trip ───────────────────────────────────────────────────────

func TestContract_NumericRoundTrip(t *testing.T) {
	ints := []int{0, 1, -1, 42, math.MaxInt64, math.MinInt64}
	floats := []float64{0, 0.1, -2.5, 1e-300, 3.141592653589793, math.MaxFloat64, math.SmallestNonzeroFloat64}

	forEachBackend(t, func(t *testing.T, uri string) {
		ctx := context.Background()
		c := open(t, uri)

		for _, n := range ints {
			require.NoError(t, configuration.PutInt(ctx, c, "num/int", n))
			got, ok, err := configuration.GetInt(ctx, c, "num/int")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, n, got)
		}

		for _, f := range floats {
			require.NoError(t, configuration.Put(ctx, c, "num/float", f))
			got, ok, err := configuration.Get[float64](ctx, c, "num/float")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, f, got)
		}

		// an integer reads back as a float too
		require.NoError(t, configuration.Put(ctx, c, "num/int", 7))
		f, ok, err := configuration.GetFloat(ctx, c, "num/int")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 7.0, f)
	})
}

// ── conversion failures ──────────────────────────────────────────────────────

func TestContract_ConversionError(t *testing.T) {
	forEachBackend(t, func(t *testing.T, uri string) {
		ctx := context.Background()
		c := open(t, uri)

		require.NoError(t, c.PutString(ctx, "db/port", "not-a-number"))
		require.NoError(t, c.PutString(ctx, "db/ratio", "1.5"))

		n, ok, err := configuration.Get[int](ctx, c, "db/port")
		assert.ErrorIs(t, err, configuration.ErrConversion)
		assert.ErrorIs(t, err, configuration.ErrMalformedInput)
		assert.False(t, ok)
		assert.Zero(t, n)

		_, _, err = configuration.GetFloat(ctx, c, "db/port")
		assert.ErrorIs(t, err, configuration.ErrConversion)

		// no silent truncation
		_, _, err = configuration.GetInt(ctx, c, "db/ratio")
		assert.ErrorIs(t, err, configuration.ErrConversion)
	})
}

// ── prefix ───────────────────────────────────────────────────────────────────

func TestContract_Prefix(t *testing.T) {
	forEachBackend(t, func(t *testing.T, uri string) {
		ctx := context.Background()
		prefixed := open(t, uri)
		require.NoError(t, prefixed.SetPrefix(ctx, "app"))

		require.NoError(t, prefixed.PutString(ctx, "x", "value"))

		got, ok, err := prefixed.GetString(ctx, "x")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "value", got)

		plain := open(t, uri)
		got, ok, err = plain.GetString(ctx, "app/x")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "value", got)

		// the prefix is not applied twice and can be cleared
		require.NoError(t, prefixed.SetPrefix(ctx, ""))
		got, ok, err = prefixed.GetString(ctx, "app/x")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "value", got)
	})
}

// ── separator ────────────────────────────────────────────────────────────────

func TestContract_Separator(t *testing.T) {
	forEachBackend(t, func(t *testing.T, uri string) {
		ctx := context.Background()
		c := open(t, uri)

		require.NoError(t, c.PutString(ctx, "a/b", "slash"))

		c.SetPathSeparator('|')
		got, ok, err := c.GetString(ctx, "a|b")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "slash", got)

		require.NoError(t, c.PutString(ctx, "a|c", "pipe"))

		c.ResetPathSeparator()
		got, ok, err = c.GetString(ctx, "a/c")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "pipe", got)

		_, ok, err = c.GetString(ctx, "a|c")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

// ── recursive get ────────────────────────────────────────────────────────────

func TestContract_Recursive(t *testing.T) {
	pairs := models.KeyValueMap{
		"app/db/host": "localhost",
		"app/db/port": "5432",
		"app/name":    "svc",
	}

	forEachBackend(t, func(t *testing.T, uri string) {
		ctx := context.Background()
		c := open(t, uri)

		for path, value := range pairs {
			require.NoError(t, c.PutString(ctx, path, value))
		}
		require.NoError(t, c.PutString(ctx, "apple", "not below app"))

		got, err := c.GetRecursiveMap(ctx, "app")
		require.NoError(t, err)
		assert.Equal(t, pairs, got)

		tree, err := c.GetRecursive(ctx, "app")
		require.NoError(t, err)
		assert.Equal(t, []string{"db", "name"}, tree.Children())

		db, ok := tree.Child("db")
		require.True(t, ok)
		assert.Equal(t, []string{"host", "port"}, db.Children())
		host, _ := db.Get("host", '/')
		port, _ := db.Get("port", '/')
		assert.Equal(t, "localhost", host)
		assert.Equal(t, "5432", port)

		name, ok := tree.Child("name")
		require.True(t, ok)
		assert.True(t, name.IsLeaf())
		value, _ := name.Value()
		assert.Equal(t, "svc", value)

		missing, err := c.GetRecursiveMap(ctx, "nothing/here")
		require.NoError(t, err)
		assert.Empty(t, missing)
	})
}

// TestContract_RecursiveWithPrefixAndSeparator verifies that map keys are
// the paths the same instance accepts.
func TestContract_RecursiveWithPrefixAndSeparator(t *testing.T) {
	forEachBackend(t, func(t *testing.T, uri string) {
		ctx := context.Background()
		c := open(t, uri)
		require.NoError(t, c.SetPrefix(ctx, "svc"))
		c.SetPathSeparator('.')

		require.NoError(t, c.PutString(ctx, "db.host", "h"))
		require.NoError(t, c.PutString(ctx, "db.port", "1"))

		got, err := c.GetRecursiveMap(ctx, "db")
		require.NoError(t, err)
		assert.Equal(t, models.KeyValueMap{"db.host": "h", "db.port": "1"}, got)

		for path, want := range got {
			value, ok, err := c.GetString(ctx, path)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, want, value)
		}
	})
}

// ── invalid paths ────────────────────────────────────────────────────────────

func TestContract_EmptyPath(t *testing.T) {
	forEachBackend(t, func(t *testing.T, uri string) {
		ctx := context.Background()
		c := open(t, uri)

		err := c.PutString(ctx, "//", "x")
		assert.ErrorIs(t, err, configuration.ErrInvalidPath)

		_, _, err = c.GetString(ctx, "")
		assert.ErrorIs(t, err, configuration.ErrMalformedInput)
	})
}
