// Package column declares SQLite table columns through a statically checked
// builder and renders them to column-definition DDL.
//
// A column is a value of type Column[T, K, P, N, U, A, D]:
//
//   - T is the native Go type of the column's values (int64, float64, string,
//     []byte, AnyValue, NumberValue).
//   - K is the kind marker (IntegerKind, RealKind, ...), which fixes the SQL
//     type keyword.
//   - P, N, U, A and D are state tags, one per builder dimension: primary key,
//     nullability, uniqueness, autoincrement and default source.
//
// Kind constructors (Integer, Real, Text, Blob, Any, Number) return a column
// with every dimension unset. Transitions (Primary, NotNull, Unique,
// Autoincrement, Default, DefaultFn) accept only the instantiation in which
// their dimension is still unset and return a new value with that dimension
// set, so an illegal sequence does not compile:
//
//	id := column.Autoincrement(column.Primary(column.Integer("id", column.IntegerNumber)))
//	id.SQL() // "id" INTEGER PRIMARY KEY AUTOINCREMENT
//
//	n := column.Default(column.Integer("n", column.IntegerNumber), 42)
//	column.DefaultFn(n, gen) // compile error: n already has a default
//
// Columns are immutable values; reading or rendering them never changes them,
// and a finished column may be shared between goroutines. A computed default
// is only invoked through ResolveDefault/DefaultValue and must be safe to call
// concurrently if the column is shared.
//
// The comparability relation used by query predicates lives in compare.go as a
// set of constraint interfaces over kinds and native operand types; see the
// predicate package for its consumer.
package column
