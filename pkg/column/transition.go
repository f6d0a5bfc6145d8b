package column

// Transitions. Each function accepts only the instantiation in which its
// dimension is still unset, so repeating a transition or combining exclusive
// ones fails to type-check instead of failing at run time. All other tags and
// all accumulated data are carried over unchanged.

// Primary declares the column as the table's PRIMARY KEY. It does not imply
// NOT NULL; call NotNull for that.
func Primary[T any, K Kind, N Nullability, U Uniqueness, A AutoincrementMode, D DefaultMode](
	c Column[T, K, NotPrimary, N, U, A, D],
) Column[T, K, IsPrimary, N, U, A, D] {
	return Column[T, K, IsPrimary, N, U, A, D]{b: c.b}
}

// NotNull declares the column NOT NULL.
func NotNull[T any, K Kind, P PrimaryKey, U Uniqueness, A AutoincrementMode, D DefaultMode](
	c Column[T, K, P, Nullable, U, A, D],
) Column[T, K, P, NotNullable, U, A, D] {
	return Column[T, K, P, NotNullable, U, A, D]{b: c.b}
}

// Unique attaches a UNIQUE constraint named name (empty for an anonymous
// constraint). Calling it again replaces the name. It is not available on
// AUTOINCREMENT columns, whose PRIMARY KEY clause a UNIQUE constraint would
// suppress.
func Unique[T any, K Kind, P PrimaryKey, N Nullability, U Uniqueness, D DefaultMode](
	c Column[T, K, P, N, U, NotAutoIncremented, D],
	name string,
) Column[T, K, P, N, IsUnique, NotAutoIncremented, D] {
	b := c.b
	b.uniqueName = name
	return Column[T, K, P, N, IsUnique, NotAutoIncremented, D]{b: b}
}

// Autoincrement declares AUTOINCREMENT. It exists only for INTEGER columns
// that are already the primary key and not unique, the only place SQLite
// accepts the keyword.
func Autoincrement[N Nullability, D DefaultMode](
	c Column[int64, IntegerKind, IsPrimary, N, NotUnique, NotAutoIncremented, D],
) Column[int64, IntegerKind, IsPrimary, N, NotUnique, IsAutoIncremented, D] {
	return Column[int64, IntegerKind, IsPrimary, N, NotUnique, IsAutoIncremented, D]{b: c.b}
}

// Default gives the column a literal default of its native type.
func Default[T any, K Kind, P PrimaryKey, N Nullability, U Uniqueness, A AutoincrementMode](
	c Column[T, K, P, N, U, A, NoDefault],
	value T,
) Column[T, K, P, N, U, A, HasDefault] {
	b := c.b
	b.value = cloneNative(value)
	return Column[T, K, P, N, U, A, HasDefault]{b: b}
}

// DefaultFn gives the column a default computed at insert time. fn may fail;
// the error reaches whoever resolves the default, never the builder.
func DefaultFn[T any, K Kind, P PrimaryKey, N Nullability, U Uniqueness, A AutoincrementMode](
	c Column[T, K, P, N, U, A, NoDefault],
	fn func() (T, error),
) Column[T, K, P, N, U, A, HasDefaultFn] {
	b := c.b
	b.fn = fn
	return Column[T, K, P, N, U, A, HasDefaultFn]{b: b}
}
