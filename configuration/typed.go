// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configuration

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-config-access/models"
)

// Scalar lists the value types the generic accessors accept. Any other
// type argument is a compile error.
type Scalar interface {
	string | int | float64
}

// PutInt stores n in base 10, or natively when c implements [IntPutter].
func PutInt(ctx context.Context, c Configuration, path string, n int) error {
	if p, ok := c.(IntPutter); ok {
		return p.PutInt(ctx, path, n)
	}
	return c.PutString(ctx, path, models.IntValue(n).String())
}

// PutFloat stores f in its shortest round-trip form, or natively when c
// implements [FloatPutter].
func PutFloat(ctx context.Context, c Configuration, path string, f float64) error {
	if p, ok := c.(FloatPutter); ok {
		return p.PutFloat(ctx, path, f)
	}
	return c.PutString(ctx, path, models.FloatValue(f).String())
}

// GetInt reads path as a base-10 integer. A stored value that is not one
// fails with [ErrConversion].
func GetInt(ctx context.Context, c Configuration, path string) (int, bool, error) {
	v, ok, err := GetValue(ctx, c, path, models.KindInt)
	if err != nil || !ok {
		return 0, ok, err
	}
	n, _ := v.Int()
	return n, true, nil
}

// GetFloat reads path as a floating point number.
func GetFloat(ctx context.Context, c Configuration, path string) (float64, bool, error) {
	v, ok, err := GetValue(ctx, c, path, models.KindFloat)
	if err != nil || !ok {
		return 0, ok, err
	}
	f, _ := v.Float()
	return f, true, nil
}

// GetValue reads path and converts it to kind.
func GetValue(ctx context.Context, c Configuration, path string, kind models.Kind) (models.Value, bool, error) {
	s, ok, err := c.GetString(ctx, path)
	if err != nil || !ok {
		return models.Value{}, false, err
	}

	v, err := models.ParseValue(s, kind)
	if err != nil {
		return models.Value{}, false, fmt.Errorf("%s: %w", path, err)
	}
	return v, true, nil
}

// PutValue stores v with the typed writer matching its kind.
func PutValue(ctx context.Context, c Configuration, path string, v models.Value) error {
	switch v.Kind() {
	case models.KindInt:
		n, _ := v.Int()
		return PutInt(ctx, c, path, n)
	case models.KindFloat:
		f, _ := v.Float()
		return PutFloat(ctx, c, path, f)
	default:
		return c.PutString(ctx, path, v.String())
	}
}

// Put stores value with the writer matching T.
func Put[T Scalar](ctx context.Context, c Configuration, path string, value T) error {
	switch v := any(value).(type) {
	case int:
		return PutInt(ctx, c, path, v)
	case float64:
		return PutFloat(ctx, c, path, v)
	default:
		return c.PutString(ctx, path, v.(string))
	}
}

// Get reads path and converts it to T.
func Get[T Scalar](ctx context.Context, c Configuration, path string) (T, bool, error) {
	var (
		zero T
		out  any
		ok   bool
		err  error
	)

	switch any(zero).(type) {
	case int:
		out, ok, err = GetInt(ctx, c, path)
	case float64:
		out, ok, err = GetFloat(ctx, c, path)
	default:
		out, ok, err = c.GetString(ctx, path)
	}
	if err != nil || !ok {
		return zero, false, err
	}

	return out.(T), true, nil
}
