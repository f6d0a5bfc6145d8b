package column

import (
	"bytes"
	"fmt"
	"strings"
)

// base is the data a column accumulates while it is being built. None of its
// fields depend on the state tags, so every transition carries it over as is.
type base[T any] struct {
	name string
	mode Mode

	uniqueName string
	value      T
	fn         func() (T, error)
}

// Column is a column declaration under construction. Values are immutable:
// transitions return a new Column of a different type and leave the argument
// untouched.
type Column[T any, K Kind, P PrimaryKey, N Nullability, U Uniqueness, A AutoincrementMode, D DefaultMode] struct {
	b base[T]
}

// Per-kind column types.
type (
	IntegerColumn[P PrimaryKey, N Nullability, U Uniqueness, A AutoincrementMode, D DefaultMode] = Column[int64, IntegerKind, P, N, U, A, D]
	RealColumn[P PrimaryKey, N Nullability, U Uniqueness, D DefaultMode]                     = Column[float64, RealKind, P, N, U, NotAutoIncremented, D]
	TextColumn[P PrimaryKey, N Nullability, U Uniqueness, D DefaultMode]                     = Column[string, TextKind, P, N, U, NotAutoIncremented, D]
	BlobColumn[P PrimaryKey, N Nullability, U Uniqueness, D DefaultMode]                     = Column[[]byte, BlobKind, P, N, U, NotAutoIncremented, D]
	AnyColumn[P PrimaryKey, N Nullability, U Uniqueness, D DefaultMode]                      = Column[AnyValue, AnyKind, P, N, U, NotAutoIncremented, D]
	NumberColumn[P PrimaryKey, N Nullability, U Uniqueness, D DefaultMode]                   = Column[NumberValue, NumberKind, P, N, U, NotAutoIncremented, D]
)

// Integer starts an INTEGER column.
func Integer(name string, mode IntegerMode) IntegerColumn[NotPrimary, Nullable, NotUnique, NotAutoIncremented, NoDefault] {
	return IntegerColumn[NotPrimary, Nullable, NotUnique, NotAutoIncremented, NoDefault]{b: base[int64]{name: name, mode: mode}}
}

// Real starts a REAL column.
func Real(name string) RealColumn[NotPrimary, Nullable, NotUnique, NoDefault] {
	return RealColumn[NotPrimary, Nullable, NotUnique, NoDefault]{b: base[float64]{name: name, mode: NoMode{}}}
}

// Text starts a TEXT column.
func Text(name string, mode TextMode) TextColumn[NotPrimary, Nullable, NotUnique, NoDefault] {
	return TextColumn[NotPrimary, Nullable, NotUnique, NoDefault]{b: base[string]{name: name, mode: mode}}
}

// Blob starts a BLOB column.
func Blob(name string) BlobColumn[NotPrimary, Nullable, NotUnique, NoDefault] {
	return BlobColumn[NotPrimary, Nullable, NotUnique, NoDefault]{b: base[[]byte]{name: name, mode: NoMode{}}}
}

// Any starts an ANY column.
func Any(name string) AnyColumn[NotPrimary, Nullable, NotUnique, NoDefault] {
	return AnyColumn[NotPrimary, Nullable, NotUnique, NoDefault]{b: base[AnyValue]{name: name, mode: NoMode{}}}
}

// Number starts a NUMERIC column.
func Number(name string) NumberColumn[NotPrimary, Nullable, NotUnique, NoDefault] {
	return NumberColumn[NotPrimary, Nullable, NotUnique, NoDefault]{b: base[NumberValue]{name: name, mode: NoMode{}}}
}

// Name returns the unquoted column name.
func (c Column[T, K, P, N, U, A, D]) Name() string { return c.b.name }

// Ident returns the column name quoted as an SQL identifier.
func (c Column[T, K, P, N, U, A, D]) Ident() string { return quoteIdent(c.b.name) }

// Mode returns the interpretation mode chosen at construction.
func (c Column[T, K, P, N, U, A, D]) Mode() Mode { return c.b.mode }

// SQLType returns the SQL type keyword of the column's kind.
func (c Column[T, K, P, N, U, A, D]) SQLType() string {
	var k K
	return k.SQLType()
}

func (c Column[T, K, P, N, U, A, D]) IsPrimaryKey() bool {
	var p P
	return p.primary()
}

func (c Column[T, K, P, N, U, A, D]) IsNotNull() bool {
	var n N
	return n.notNull()
}

// UniqueName returns the UNIQUE constraint name and whether the column is
// unique at all. The name may be empty for an anonymous constraint.
func (c Column[T, K, P, N, U, A, D]) UniqueName() (string, bool) {
	var u U
	if !u.unique() {
		return "", false
	}
	return c.b.uniqueName, true
}

func (c Column[T, K, P, N, U, A, D]) IsAutoincrement() bool {
	var a A
	return a.autoincrement()
}

// DefaultLiteral returns the literal default, if the column has one.
func (c Column[T, K, P, N, U, A, D]) DefaultLiteral() (T, bool) {
	var d D
	if d.defaultSource() != sourceLiteral {
		var zero T
		return zero, false
	}
	return cloneNative(c.b.value), true
}

// DefaultFunc returns the default-producing function, if the column has one.
func (c Column[T, K, P, N, U, A, D]) DefaultFunc() (func() (T, error), bool) {
	var d D
	if d.defaultSource() != sourceFunc {
		return nil, false
	}
	return c.b.fn, true
}

// ResolveDefault produces the value an insert should use when the column is
// omitted. ok is false when the column has no default. A computed default is
// invoked on every call; its failure is returned wrapped with the column name.
func (c Column[T, K, P, N, U, A, D]) ResolveDefault() (v T, ok bool, err error) {
	var d D
	switch d.defaultSource() {
	case sourceLiteral:
		return cloneNative(c.b.value), true, nil
	case sourceFunc:
		if c.b.fn == nil {
			return v, true, fmt.Errorf("column %s: default function is nil", c.b.name)
		}
		v, err = c.b.fn()
		if err != nil {
			var zero T
			return zero, true, fmt.Errorf("column %s: default: %w", c.b.name, err)
		}
		return v, true, nil
	default:
		return v, false, nil
	}
}

// DefaultValue is ResolveDefault with the value boxed, for consumers that hold
// columns of different kinds side by side.
func (c Column[T, K, P, N, U, A, D]) DefaultValue() (any, bool, error) {
	v, ok, err := c.ResolveDefault()
	if !ok || err != nil {
		return nil, ok, err
	}
	return v, true, nil
}

func quoteIdent(id string) string {
	return `"` + strings.ReplaceAll(id, `"`, `""`) + `"`
}

// cloneNative copies the byte slices a native value may share with its caller.
func cloneNative[T any](v T) T {
	switch x := any(v).(type) {
	case []byte:
		if x == nil {
			return v
		}
		return any(bytes.Clone(x)).(T)
	case AnyValue:
		if x.class == StorageBlob {
			x.b = bytes.Clone(x.b)
			return any(x).(T)
		}
	}
	return v
}
