// Package predicate builds WHERE-clause conditions from columns declared with
// package column.
//
// Every comparison constructor is bounded by the comparability relation
// declared in package column, so comparing, say, a TEXT column with an int64
// or a BLOB column with a string does not compile. A column is exactly as
// comparable before NotNull/Primary/Unique/Default as after: the bounds only
// look at the column's kind.
//
// Conditions render with "?" placeholders and carry their arguments in order:
//
//	cond := predicate.And(
//	    predicate.Int64(users.ID, predicate.Gt, 10),
//	    predicate.String(users.Email, predicate.Eq, "a@example.com"),
//	)
//	cond.SQL()  // ("id" > ? AND "email" = ?)
//	cond.Args() // [10 a@example.com]
package predicate

import (
	"bytes"
	"reflect"
	"strings"

	"typedcol/pkg/column"
)

// Op is a comparison operator.
type Op uint8

const (
	Eq Op = iota
	Ne
	Lt
	Le
	Gt
	Ge
)

func (o Op) String() string {
	switch o {
	case Eq:
		return "="
	case Ne:
		return "<>"
	case Lt:
		return "<"
	case Le:
		return "<="
	case Gt:
		return ">"
	case Ge:
		return ">="
	default:
		return "?op?"
	}
}

// Condition is a rendered boolean SQL expression and its bound arguments.
// The zero Condition is empty and is skipped by And and Or.
type Condition struct {
	sql  string
	args []any
}

// SQL returns the expression text.
func (c Condition) SQL() string { return c.sql }

// Args returns a copy of the bound arguments in placeholder order. Byte slice
// arguments are copied too, so the Condition cannot be changed through them.
func (c Condition) Args() []any {
	if len(c.args) == 0 {
		return nil
	}
	out := make([]any, len(c.args))
	for i, a := range c.args {
		if b, ok := a.([]byte); ok {
			a = bytes.Clone(b)
		}
		out[i] = a
	}
	return out
}

// IsZero reports whether c is the empty condition.
func (c Condition) IsZero() bool { return c.sql == "" }

func (c Condition) String() string { return c.sql }

// Identifier is anything that renders as a quoted SQL identifier. Every
// column.Column satisfies it.
type Identifier interface {
	Ident() string
}

func compare(left string, op Op, right string, args ...any) Condition {
	return Condition{sql: left + " " + op.String() + " " + right, args: args}
}

// Int64 compares a column with an int64 value.
func Int64[T any, K column.Int64Comparable, P column.PrimaryKey, N column.Nullability, U column.Uniqueness, A column.AutoincrementMode, D column.DefaultMode](
	c column.Column[T, K, P, N, U, A, D], op Op, v int64,
) Condition {
	return compare(c.Ident(), op, "?", v)
}

// Float64 compares a column with a float64 value.
func Float64[T any, K column.Float64Comparable, P column.PrimaryKey, N column.Nullability, U column.Uniqueness, A column.AutoincrementMode, D column.DefaultMode](
	c column.Column[T, K, P, N, U, A, D], op Op, v float64,
) Condition {
	return compare(c.Ident(), op, "?", v)
}

// String compares a column with a string value.
func String[T any, K column.StringComparable, P column.PrimaryKey, N column.Nullability, U column.Uniqueness, A column.AutoincrementMode, D column.DefaultMode](
	c column.Column[T, K, P, N, U, A, D], op Op, v string,
) Condition {
	return compare(c.Ident(), op, "?", v)
}

// Int64Column compares an int64 value with a column, the value on the left.
func Int64Column[T any, K column.Int64Comparable, P column.PrimaryKey, N column.Nullability, U column.Uniqueness, A column.AutoincrementMode, D column.DefaultMode](
	v int64, op Op, c column.Column[T, K, P, N, U, A, D],
) Condition {
	return compare("?", op, c.Ident(), v)
}

// Float64Column compares a float64 value with a column, the value on the left.
func Float64Column[T any, K column.Float64Comparable, P column.PrimaryKey, N column.Nullability, U column.Uniqueness, A column.AutoincrementMode, D column.DefaultMode](
	v float64, op Op, c column.Column[T, K, P, N, U, A, D],
) Condition {
	return compare("?", op, c.Ident(), v)
}

// StringColumn compares a string value with a column, the value on the left.
func StringColumn[T any, K column.StringComparable, P column.PrimaryKey, N column.Nullability, U column.Uniqueness, A column.AutoincrementMode, D column.DefaultMode](
	v string, op Op, c column.Column[T, K, P, N, U, A, D],
) Condition {
	return compare("?", op, c.Ident(), v)
}

// Bytes compares a column with a byte slice. The slice is copied.
func Bytes[T any, K column.BytesComparable, P column.PrimaryKey, N column.Nullability, U column.Uniqueness, A column.AutoincrementMode, D column.DefaultMode](
	c column.Column[T, K, P, N, U, A, D], op Op, v []byte,
) Condition {
	return compare(c.Ident(), op, "?", bytes.Clone(v))
}

// BytesColumn compares a byte slice with a column, the value on the left.
func BytesColumn[T any, K column.BytesComparable, P column.PrimaryKey, N column.Nullability, U column.Uniqueness, A column.AutoincrementMode, D column.DefaultMode](
	v []byte, op Op, c column.Column[T, K, P, N, U, A, D],
) Condition {
	return compare("?", op, c.Ident(), bytes.Clone(v))
}

// Columns compares two columns of the same kind, whatever state either one is
// in.
func Columns[T any, K column.Kind,
	P1 column.PrimaryKey, N1 column.Nullability, U1 column.Uniqueness, A1 column.AutoincrementMode, D1 column.DefaultMode,
	P2 column.PrimaryKey, N2 column.Nullability, U2 column.Uniqueness, A2 column.AutoincrementMode, D2 column.DefaultMode](
	l column.Column[T, K, P1, N1, U1, A1, D1], op Op, r column.Column[T, K, P2, N2, U2, A2, D2],
) Condition {
	return compare(l.Ident(), op, r.Ident())
}

// Int64Value compares two values, an int64 on the left. An untyped integer
// constant on the right is an int and is bound as int64.
func Int64Value[R column.Int64Operand](l int64, op Op, r R) Condition {
	return compare("?", op, "?", l, numeric(r))
}

// Float64Value compares two values, a float64 on the left.
func Float64Value[R column.Float64Operand](l float64, op Op, r R) Condition {
	return compare("?", op, "?", l, numeric(r))
}

// StringValue compares two strings.
func StringValue[R column.StringOperand](l string, op Op, r R) Condition {
	return compare("?", op, "?", l, string(r))
}

// BytesValue compares two byte slices.
func BytesValue[R column.BytesOperand](l []byte, op Op, r R) Condition {
	return compare("?", op, "?", bytes.Clone(l), bytes.Clone([]byte(r)))
}

// numeric strips a named numeric type down to int64 or float64 so drivers see
// a plain value.
func numeric(v any) any {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int64:
		return rv.Int()
	case reflect.Float64:
		return rv.Float()
	default:
		return v
	}
}

// IsNull tests a column for NULL.
func IsNull(c Identifier) Condition {
	return Condition{sql: c.Ident() + " IS NULL"}
}

// IsNotNull tests a column for a non-NULL value.
func IsNotNull(c Identifier) Condition {
	return Condition{sql: c.Ident() + " IS NOT NULL"}
}

// And joins conditions with AND. Empty conditions are skipped; a single
// remaining condition is returned unwrapped.
func And(conds ...Condition) Condition { return join("AND", conds) }

// Or joins conditions with OR, with the same rules as And.
func Or(conds ...Condition) Condition { return join("OR", conds) }

// Not negates c. The negation of the empty condition is empty.
func Not(c Condition) Condition {
	if c.IsZero() {
		return c
	}
	return Condition{sql: "NOT (" + c.sql + ")", args: c.args}
}

func join(op string, conds []Condition) Condition {
	parts := make([]string, 0, len(conds))
	var args []any
	for _, c := range conds {
		if c.IsZero() {
			continue
		}
		parts = append(parts, c.sql)
		args = append(args, c.args...)
	}
	switch len(parts) {
	case 0:
		return Condition{}
	case 1:
		return Condition{sql: parts[0], args: args}
	default:
		return Condition{sql: "(" + strings.Join(parts, " "+op+" ") + ")", args: args}
	}
}
