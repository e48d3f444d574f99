// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-config-access/internal/logger"
	"github.com/MKhiriev/go-config-access/models"
)

// NewYAML opens the YAML document at path. The file must exist; an empty
// file is treated as an empty mapping.
func NewYAML(path string, log *logger.Logger) (*DocumentBackend, error) {
	return newDocument(path, yamlCodec{}, log)
}

type yamlCodec struct{}

func (yamlCodec) name() string { return "yaml" }

func (yamlCodec) decode(data []byte) (map[string]any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		// yaml errors already carry "line N"
		return nil, err
	}
	if doc == nil {
		return make(map[string]any), nil
	}

	root, ok := normalizeYAML(doc).(map[string]any)
	if !ok {
		return nil, ErrDocumentRoot
	}
	return root, nil
}

func (yamlCodec) encode(doc map[string]any) ([]byte, error) {
	return yaml.Marshal(doc)
}

func (yamlCodec) number(v models.Value) any {
	if v.Kind() == models.KindInt {
		n, _ := v.Int()
		return n
	}
	f, _ := v.Float()
	return f
}

// normalizeYAML converts mappings with non-string keys, which yaml.v3
// produces for keys such as 1 or true, into map[string]any.
func normalizeYAML(node any) any {
	switch n := node.(type) {
	case map[string]any:
		for k, v := range n {
			n[k] = normalizeYAML(v)
		}
		return n
	case map[any]any:
		out := make(map[string]any, len(n))
		for k, v := range n {
			out[fmt.Sprint(k)] = normalizeYAML(v)
		}
		return out
	case []any:
		for i, v := range n {
			n[i] = normalizeYAML(v)
		}
		return n
	default:
		return n
	}
}
