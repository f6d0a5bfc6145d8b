package column

// The comparability relation. Each declared pair is a constraint interface;
// the predicate package uses them as type-parameter bounds so that an
// undeclared comparison fails to type-check. Comparability depends on the
// column kind only, never on the builder's state tags, and each direction is
// declared on its own.

// Int64Comparable is the set of kinds whose columns compare with int64 values.
type Int64Comparable interface {
	Kind
	IntegerKind
}

// Float64Comparable is the set of kinds whose columns compare with float64
// values.
type Float64Comparable interface {
	Kind
	IntegerKind | RealKind | AnyKind | NumberKind
}

// StringComparable is the set of kinds whose columns compare with strings.
type StringComparable interface {
	Kind
	TextKind
}

// BytesComparable is the set of kinds whose columns compare with byte slices,
// with the column on either side.
type BytesComparable interface {
	Kind
	BlobKind
}

// Native operand relation: the right-hand types a native left operand may be
// compared with.

// Int64Operand is what an int64 compares with: integers and floats. int is
// admitted so an untyped integer constant can be the operand.
type Int64Operand interface {
	~int64 | ~int | ~float64
}

// Float64Operand is what a float64 compares with: floats and integers.
type Float64Operand interface {
	~float64 | ~int64 | ~int
}

// StringOperand is what a string compares with.
type StringOperand interface {
	~string
}

// BytesOperand is what a byte slice compares with.
type BytesOperand interface {
	~[]byte
}
