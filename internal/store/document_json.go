// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/MKhiriev/go-config-access/internal/logger"
	"github.com/MKhiriev/go-config-access/models"
)

// NewJSON opens the JSON document at path. The file must exist; an empty
// file is treated as an empty object.
func NewJSON(path string, log *logger.Logger) (*DocumentBackend, error) {
	return newDocument(path, jsonCodec{}, log)
}

type jsonCodec struct{}

func (jsonCodec) name() string { return "json" }

func (jsonCodec) decode(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, withJSONLine(data, err)
	}

	root, ok := doc.(map[string]any)
	if !ok {
		return nil, ErrDocumentRoot
	}
	return root, nil
}

func (jsonCodec) encode(doc map[string]any) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (jsonCodec) number(v models.Value) any {
	// JSON has no literal for these
	if f, _ := v.Float(); math.IsNaN(f) || math.IsInf(f, 0) {
		return v.String()
	}
	return json.Number(v.String())
}

// withJSONLine turns the byte offset of a syntax error into a line number.
func withJSONLine(data []byte, err error) error {
	var syntaxErr *json.SyntaxError
	if !errors.As(err, &syntaxErr) {
		return err
	}

	offset := min(int(syntaxErr.Offset), len(data))
	line := bytes.Count(data[:offset], []byte("\n")) + 1
	return fmt.Errorf("line %d: %w", line, err)
}
