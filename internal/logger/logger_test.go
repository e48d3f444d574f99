// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capture redirects l to a buffer and returns a function decoding the last
// entry written.
func capture(t *testing.T, l *Logger) func() map[string]any {
	t.Helper()

	var buf bytes.Buffer
	l.Logger = l.Output(&buf)

	return func() map[string]any {
		t.Helper()
		lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
		var entry map[string]any
		require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
		return entry
	}
}

// ── NewLogger ────────────────────────────────────────────────────────────────

func TestNewLogger_Fields(t *testing.T) {
	l := NewLogger("confserver")
	last := capture(t, l)

	l.Info().Msg("listening")

	entry := last()
	assert.Equal(t, "confserver", entry["role"])
	assert.Equal(t, "listening", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
}

func TestNewLogger_Globals(t *testing.T) {
	NewLogger("confserver")

	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

// ── child loggers ────────────────────────────────────────────────────────────

func TestGetChildLogger(t *testing.T) {
	parent := NewLogger("confserver")
	last := capture(t, parent)

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)

	child.Logger = child.With().Str("trace_id", "abc").Logger()
	child.Debug().Msg("request")
	entry := last()
	assert.Equal(t, "confserver", entry["role"])
	assert.Equal(t, "abc", entry["trace_id"])

	parent.Debug().Msg("parent untouched")
	assert.NotContains(t, last(), "trace_id")
}

func TestComponent(t *testing.T) {
	parent := NewLogger("confctl")
	last := capture(t, parent)

	parent.Component("redis").Warn().Msg("slow ping")

	entry := last()
	assert.Equal(t, "redis", entry["component"])
	assert.Equal(t, "confctl", entry["role"])
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("dropped")
	l.Component("consul").Info().Msg("dropped too")

	assert.Empty(t, buf.String())
}

// ── context lookup ───────────────────────────────────────────────────────────

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	attached := zerolog.New(&buf).With().Str("trace_id", "t-1").Logger()

	FromContext(attached.WithContext(context.Background())).Info().Msg("ctx")
	assert.Contains(t, buf.String(), `"trace_id":"t-1"`)

	require.NotNil(t, FromContext(context.Background()))
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	attached := zerolog.New(&buf).With().Str("trace_id", "t-2").Logger()

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	require.NotNil(t, FromRequest(req))

	req = req.WithContext(attached.WithContext(req.Context()))
	FromRequest(req).Info().Msg("req")
	assert.Contains(t, buf.String(), `"trace_id":"t-2"`)
}

// ── console logger ───────────────────────────────────────────────────────────

func TestNewConsoleLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := newConsoleLogger(&buf, "cli", zerolog.WarnLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	l.Info().Msg("hidden")
	l.Warn().Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "role=cli")
}
