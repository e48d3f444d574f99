// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"math"
	"strconv"
)

// Kind identifies which alternative a [Value] holds.
type Kind int

const (
	// KindString is a plain string value.
	KindString Kind = iota + 1

	// KindInt is a signed integer value.
	KindInt

	// KindFloat is a double precision floating point value.
	KindFloat
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Value is a configuration scalar: exactly one of string, int or float64.
//
// Back ends store every value as its canonical string form (see
// [Value.String]); typed reads go through [ParseValue], which is strict and
// never silently truncates.
type Value struct {
	kind Kind
	s    string
	i    int
	f    float64
}

// StringValue wraps s.
func StringValue(s string) Value { return Value{kind: KindString, s: s} }

// IntValue wraps n.
func IntValue(n int) Value { return Value{kind: KindInt, i: n} }

// FloatValue wraps f.
func FloatValue(f float64) Value { return Value{kind: KindFloat, f: f} }

// Kind reports which alternative v holds.
func (v Value) Kind() Kind { return v.kind }

// String returns the canonical string form of v: the string itself, a base-10
// integer, or the shortest float representation that parses back to the
// same float64.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.Itoa(v.i)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	default:
		return v.s
	}
}

// Int returns the integer held by v. Strings are parsed strictly; floats are
// accepted only when they carry no fractional part.
func (v Value) Int() (int, error) {
	switch v.kind {
	case KindInt:
		return v.i, nil
	case KindFloat:
		if v.f != math.Trunc(v.f) || v.f < math.MinInt64 || v.f >= math.MaxInt64 {
			return 0, fmt.Errorf("%w: %v is not an integer", ErrConversion, v.f)
		}
		return int(v.f), nil
	default:
		n, err := strconv.Atoi(v.s)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not an integer: %v", ErrConversion, v.s, err)
		}
		return n, nil
	}
}

// Float returns the floating point number held by v.
func (v Value) Float() (float64, error) {
	switch v.kind {
	case KindInt:
		return float64(v.i), nil
	case KindFloat:
		return v.f, nil
	default:
		f, err := strconv.ParseFloat(v.s, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a floating point number: %v", ErrConversion, v.s, err)
		}
		return f, nil
	}
}

// ParseValue converts the stored string s to a Value of the requested kind.
func ParseValue(s string, kind Kind) (Value, error) {
	raw := StringValue(s)
	switch kind {
	case KindString:
		return raw, nil
	case KindInt:
		n, err := raw.Int()
		if err != nil {
			return Value{}, err
		}
		return IntValue(n), nil
	case KindFloat:
		f, err := raw.Float()
		if err != nil {
			return Value{}, err
		}
		return FloatValue(f), nil
	default:
		return Value{}, fmt.Errorf("%w: unknown kind %d", ErrConversion, kind)
	}
}
