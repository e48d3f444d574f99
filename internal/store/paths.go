// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-config-access/models"
)

// DefaultSeparator separates path segments unless a backend instance was
// given another one with SetPathSeparator. Prefixes and URIs always use it.
const DefaultSeparator = '/'

// keySeparator joins segments into the canonical key handed to drivers.
const keySeparator = "/"

// paths holds the per-instance prefix and separator and turns caller paths
// into canonical driver keys: the caller path is split on the active
// separator, empty segments are dropped, the prefix segments are prepended and
// the result is joined with "/".
type paths struct {
	prefix    []string
	separator rune
}

func newPaths() paths {
	return paths{separator: DefaultSeparator}
}

func (p *paths) setPrefix(prefix string) {
	p.prefix = models.SplitPath(prefix, DefaultSeparator)
}

func (p *paths) setSeparator(sep rune) {
	p.separator = sep
}

func (p *paths) resetSeparator() {
	p.separator = DefaultSeparator
}

// callerSegments splits a caller path on the active separator.
func (p *paths) callerSegments(path string) []string {
	var segs []string
	for _, seg := range models.SplitPath(path, p.separator) {
		// a caller segment may still contain "/" under a custom separator;
		// keys never carry it inside a segment
		segs = append(segs, models.SplitPath(seg, DefaultSeparator)...)
	}
	return segs
}

func (p *paths) join(caller []string) string {
	segs := make([]string, 0, len(p.prefix)+len(caller))
	segs = append(segs, p.prefix...)
	segs = append(segs, caller...)
	return strings.Join(segs, keySeparator)
}

// key resolves a put/get path. A path without segments addresses nothing.
func (p *paths) key(path string) (string, error) {
	caller := p.callerSegments(path)
	if len(caller) == 0 {
		return "", fmt.Errorf("%w: %q", models.ErrInvalidPath, path)
	}
	return p.join(caller), nil
}

// scope resolves a recursive-get path; the empty scope covers every key.
func (p *paths) scope(path string) string {
	return p.join(p.callerSegments(path))
}

// external converts a canonical key back to the path a caller of this
// instance would use: prefix stripped, segments joined with the active
// separator. ok is false for keys outside the prefix.
func (p *paths) external(key string) (string, bool) {
	segs := models.SplitPath(key, DefaultSeparator)
	if len(segs) < len(p.prefix) {
		return "", false
	}
	for i, seg := range p.prefix {
		if segs[i] != seg {
			return "", false
		}
	}
	return strings.Join(segs[len(p.prefix):], string(p.separator)), true
}

func joinKey(segs []string) string {
	return strings.Join(segs, keySeparator)
}

// within reports whether key equals scope or lies below it segment-wise, so
// that scope "app" matches "app" and "app/x" but not "apple".
func within(key, scope string) bool {
	if scope == "" {
		return true
	}
	return key == scope || strings.HasPrefix(key, scope+keySeparator)
}

// relative strips scope from a key known to be within it.
func relative(key, scope string) string {
	return strings.TrimPrefix(strings.TrimPrefix(key, scope), keySeparator)
}
