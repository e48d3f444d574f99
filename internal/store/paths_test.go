// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-config-access/models"
)

// ── key ─────────────────────────────────────────────────────────────────────

func TestPaths_Key(t *testing.T) {
	tests := []struct {
		name      string
		prefix    string
		separator rune
		path      string
		want      string
	}{
		{"plain", "", '/', "db/host", "db/host"},
		{"leading and doubled separators", "", '/', "//db//host/", "db/host"},
		{"with prefix", "/app/", '/', "db/host", "app/db/host"},
		{"nested prefix", "svc/app", '/', "name", "svc/app/name"},
		{"custom separator", "", '|', "db|host", "db/host"},
		{"custom separator with prefix", "app", '|', "|db||host", "app/db/host"},
		{"slash inside custom segment", "", '.', "a/b.c", "a/b/c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPaths()
			p.setPrefix(tt.prefix)
			p.setSeparator(tt.separator)

			got, err := p.key(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPaths_Key_Invalid(t *testing.T) {
	for _, path := range []string{"", "/", "///"} {
		p := newPaths()
		p.setPrefix("app")

		_, err := p.key(path)
		assert.ErrorIs(t, err, models.ErrInvalidPath, "path %q", path)
		assert.ErrorIs(t, err, models.ErrMalformedInput, "path %q", path)
	}

	p := newPaths()
	p.setSeparator('|')
	_, err := p.key("||")
	assert.ErrorIs(t, err, models.ErrInvalidPath)
}

func TestPaths_ResetSeparator(t *testing.T) {
	p := newPaths()
	p.setSeparator('|')
	p.resetSeparator()

	got, err := p.key("a/b")
	require.NoError(t, err)
	assert.Equal(t, "a/b", got)
	assert.Equal(t, DefaultSeparator, p.separator)
}

func TestPaths_PrefixIgnoresCustomSeparator(t *testing.T) {
	p := newPaths()
	p.setSeparator('|')
	p.setPrefix("a|b/c")

	got, err := p.key("x")
	require.NoError(t, err)
	assert.Equal(t, "a|b/c/x", got)
}

// ── scope / external ────────────────────────────────────────────────────────

func TestPaths_Scope(t *testing.T) {
	p := newPaths()
	assert.Equal(t, "", p.scope(""))
	assert.Equal(t, "db", p.scope("/db/"))

	p.setPrefix("app")
	assert.Equal(t, "app", p.scope(""))
	assert.Equal(t, "app/db", p.scope("db"))
}

func TestPaths_External(t *testing.T) {
	p := newPaths()
	p.setPrefix("app")

	got, ok := p.external("app/db/host")
	require.True(t, ok)
	assert.Equal(t, "db/host", got)

	p.setSeparator('|')
	got, ok = p.external("app/db/host")
	require.True(t, ok)
	assert.Equal(t, "db|host", got)

	_, ok = p.external("other/db")
	assert.False(t, ok)
	_, ok = p.external("")
	assert.False(t, ok)
}

// ── within / relative ───────────────────────────────────────────────────────

func TestWithin(t *testing.T) {
	assert.True(t, within("app", "app"))
	assert.True(t, within("app/x", "app"))
	assert.True(t, within("anything", ""))
	assert.False(t, within("apple", "app"))
	assert.False(t, within("ap", "app"))
}

func TestRelative(t *testing.T) {
	assert.Equal(t, "x/y", relative("app/x/y", "app"))
	assert.Equal(t, "", relative("app", "app"))
	assert.Equal(t, "app/x", relative("app/x", ""))
}
