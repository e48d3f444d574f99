// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/go-config-access/internal/logger"
	"github.com/MKhiriev/go-config-access/models"
)

// codec converts a structured document file to and from a generic tree of
// map[string]any, []any and scalar leaves.
type codec interface {
	name() string
	decode(data []byte) (map[string]any, error)
	encode(doc map[string]any) ([]byte, error)
	// number returns the native representation of a numeric value.
	number(v models.Value) any
}

// documentStore keeps a whole JSON or YAML document in memory, addressing
// nested mappings by key segments and sequences by decimal index. Every
// write rewrites the file.
type documentStore struct {
	mu    sync.Mutex
	path  string
	codec codec
	root  map[string]any
}

// DocumentBackend is a [Backend] over a JSON or YAML document. Numbers
// written with PutInt and PutFloat are stored as native document numbers
// rather than strings.
type DocumentBackend struct {
	*Backend
	doc *documentStore
}

func newDocument(path string, c codec, log *logger.Logger) (*DocumentBackend, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, failure(path, "read", err)
	}

	root := make(map[string]any)
	if len(bytes.TrimSpace(data)) > 0 {
		if root, err = c.decode(data); err != nil {
			return nil, failure(path, "parse "+c.name(), err)
		}
	}

	doc := &documentStore{path: path, codec: c, root: root}
	return &DocumentBackend{
		Backend: newBackend(c.name(), path, doc, log),
		doc:     doc,
	}, nil
}

// PutInt stores n as a native number.
func (d *DocumentBackend) PutInt(ctx context.Context, path string, n int) error {
	return d.putNumber(ctx, path, models.IntValue(n))
}

// PutFloat stores f as a native number.
func (d *DocumentBackend) PutFloat(ctx context.Context, path string, f float64) error {
	return d.putNumber(ctx, path, models.FloatValue(f))
}

func (d *DocumentBackend) putNumber(_ context.Context, path string, v models.Value) error {
	key, err := d.paths.key(path)
	if err != nil {
		return err
	}
	return d.doc.set(key, d.doc.codec.number(v))
}

func (s *documentStore) get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	node, ok := s.lookup(models.SplitPath(key, DefaultSeparator))
	if !ok {
		return "", false, nil
	}
	return scalarString(node)
}

func (s *documentStore) put(_ context.Context, key, value string) error {
	return s.set(key, value)
}

func (s *documentStore) set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.assign(models.SplitPath(key, DefaultSeparator), value); err != nil {
		return failure(s.path, "put "+strconv.Quote(key), err)
	}

	data, err := s.codec.encode(s.root)
	if err != nil {
		return failure(s.path, "encode "+s.codec.name(), err)
	}
	if err = os.WriteFile(s.path, data, 0o600); err != nil {
		return failure(s.path, "write", err)
	}
	return nil
}

func (s *documentStore) list(_ context.Context, prefix string) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	segs := models.SplitPath(prefix, DefaultSeparator)
	out := make(map[string]string)

	node, ok := s.lookup(segs)
	if !ok {
		return out, nil
	}
	flattenDocument(node, segs, out)
	return out, nil
}

func (s *documentStore) close() error { return nil }

// lookup walks segs from the root.
func (s *documentStore) lookup(segs []string) (any, bool) {
	var node any = s.root
	for _, seg := range segs {
		switch n := node.(type) {
		case map[string]any:
			child, ok := n[seg]
			if !ok {
				return nil, false
			}
			node = child
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(n) {
				return nil, false
			}
			node = n[i]
		default:
			return nil, false
		}
	}
	return node, true
}

// assign stores value at segs, creating intermediate mappings. It refuses to
// replace a container with a scalar or to descend through a scalar.
func (s *documentStore) assign(segs []string, value any) error {
	parent, last := any(s.root), len(segs)-1
	for i, seg := range segs[:last] {
		switch n := parent.(type) {
		case map[string]any:
			child, ok := n[seg]
			if !ok || child == nil {
				child = make(map[string]any)
				n[seg] = child
			}
			parent = child
		case []any:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= len(n) {
				return fmt.Errorf("%w: no element %q in sequence at %v", ErrPathConflict, seg, segs[:i])
			}
			parent = n[idx]
		default:
			return fmt.Errorf("%w: scalar at %v", ErrPathConflict, segs[:i])
		}
	}

	name := segs[last]
	switch n := parent.(type) {
	case map[string]any:
		if isContainer(n[name]) {
			return fmt.Errorf("%w: %v holds a nested document", ErrPathConflict, segs)
		}
		n[name] = value
	case []any:
		idx, err := strconv.Atoi(name)
		if err != nil || idx < 0 || idx >= len(n) {
			return fmt.Errorf("%w: no element %q in sequence", ErrPathConflict, name)
		}
		if isContainer(n[idx]) {
			return fmt.Errorf("%w: %v holds a nested document", ErrPathConflict, segs)
		}
		n[idx] = value
	default:
		return fmt.Errorf("%w: scalar at %v", ErrPathConflict, segs[:last])
	}
	return nil
}

func isContainer(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return true
	default:
		return false
	}
}

// flattenDocument collects every scalar below node keyed by its canonical
// path.
func flattenDocument(node any, segs []string, out map[string]string) {
	switch n := node.(type) {
	case map[string]any:
		for name, child := range n {
			flattenDocument(child, append(segs[:len(segs):len(segs)], name), out)
		}
	case []any:
		for i, child := range n {
			flattenDocument(child, append(segs[:len(segs):len(segs)], strconv.Itoa(i)), out)
		}
	default:
		if len(segs) == 0 {
			return
		}
		if value, ok, _ := scalarString(n); ok {
			out[joinKey(segs)] = value
		}
	}
}

// scalarString renders a document leaf in its canonical string form.
// Containers and nulls are not values.
func scalarString(node any) (string, bool, error) {
	switch v := node.(type) {
	case nil, map[string]any, []any:
		return "", false, nil
	case string:
		return v, true, nil
	case time.Time:
		return v.Format(time.RFC3339Nano), true, nil
	case fmt.Stringer:
		// json.Number
		return v.String(), true, nil
	case bool:
		return strconv.FormatBool(v), true, nil
	case int:
		return strconv.Itoa(v), true, nil
	case int64:
		return strconv.FormatInt(v, 10), true, nil
	case uint64:
		return strconv.FormatUint(v, 10), true, nil
	case float64:
		return models.FloatValue(v).String(), true, nil
	default:
		return fmt.Sprint(v), true, nil
	}
}
