package column

import (
	"bytes"
	"fmt"
)

// StorageClass is the SQLite storage class held by an AnyValue.
type StorageClass uint8

const (
	StorageInteger StorageClass = iota
	StorageReal
	StorageText
	StorageBlob
)

func (s StorageClass) String() string {
	switch s {
	case StorageInteger:
		return "integer"
	case StorageReal:
		return "real"
	case StorageText:
		return "text"
	case StorageBlob:
		return "blob"
	default:
		return "unknown"
	}
}

// AnyValue is the native value of an ANY column: exactly one of an integer, a
// real, a text or a blob. The zero value is the integer 0.
type AnyValue struct {
	class StorageClass
	i     int64
	f     float64
	s     string
	b     []byte
}

// AnyInteger returns an AnyValue holding an integer.
func AnyInteger(v int64) AnyValue { return AnyValue{class: StorageInteger, i: v} }

// AnyReal returns an AnyValue holding a real.
func AnyReal(v float64) AnyValue { return AnyValue{class: StorageReal, f: v} }

// AnyText returns an AnyValue holding text.
func AnyText(v string) AnyValue { return AnyValue{class: StorageText, s: v} }

// AnyBlob returns an AnyValue holding a copy of v.
func AnyBlob(v []byte) AnyValue { return AnyValue{class: StorageBlob, b: bytes.Clone(v)} }

// Class reports which variant v holds.
func (v AnyValue) Class() StorageClass { return v.class }

// Int64 returns the integer variant.
func (v AnyValue) Int64() (int64, bool) { return v.i, v.class == StorageInteger }

// Float64 returns the real variant.
func (v AnyValue) Float64() (float64, bool) { return v.f, v.class == StorageReal }

// Text returns the text variant.
func (v AnyValue) Text() (string, bool) { return v.s, v.class == StorageText }

// Blob returns a copy of the blob variant.
func (v AnyValue) Blob() ([]byte, bool) {
	if v.class != StorageBlob {
		return nil, false
	}
	return bytes.Clone(v.b), true
}

// Value returns the held variant as int64, float64, string or []byte.
func (v AnyValue) Value() any {
	switch v.class {
	case StorageReal:
		return v.f
	case StorageText:
		return v.s
	case StorageBlob:
		return bytes.Clone(v.b)
	default:
		return v.i
	}
}

func (v AnyValue) String() string {
	switch v.class {
	case StorageBlob:
		return fmt.Sprintf("blob(%d bytes)", len(v.b))
	default:
		return fmt.Sprint(v.Value())
	}
}

// NumberValue is the native value of a NUMERIC column: an integer or a real.
// The zero value is the integer 0.
type NumberValue struct {
	isReal bool
	i      int64
	f      float64
}

// NumberInt returns a NumberValue holding an integer.
func NumberInt(v int64) NumberValue { return NumberValue{i: v} }

// NumberReal returns a NumberValue holding a real.
func NumberReal(v float64) NumberValue { return NumberValue{isReal: true, f: v} }

// IsReal reports whether v holds a real.
func (v NumberValue) IsReal() bool { return v.isReal }

// Int64 returns the integer variant.
func (v NumberValue) Int64() (int64, bool) { return v.i, !v.isReal }

// Float64 returns v as a float64, converting the integer variant.
func (v NumberValue) Float64() float64 {
	if v.isReal {
		return v.f
	}
	return float64(v.i)
}

// Value returns the held variant as int64 or float64.
func (v NumberValue) Value() any {
	if v.isReal {
		return v.f
	}
	return v.i
}

func (v NumberValue) String() string { return fmt.Sprint(v.Value()) }
