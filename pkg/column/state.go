package column

// State tags. Each builder dimension has a closed set of empty marker types
// and a constraint interface that admits exactly that set. The unexported
// methods give the renderer the compile-time truth value of a tag.

// NotPrimary marks a column that is not the table's primary key.
type NotPrimary struct{}

// IsPrimary marks a column declared PRIMARY KEY.
type IsPrimary struct{}

func (NotPrimary) primary() bool { return false }
func (IsPrimary) primary() bool  { return true }

// PrimaryKey is the primary-key dimension.
type PrimaryKey interface {
	NotPrimary | IsPrimary
	primary() bool
}

// Nullable marks a column that accepts NULL.
type Nullable struct{}

// NotNullable marks a column declared NOT NULL.
type NotNullable struct{}

func (Nullable) notNull() bool    { return false }
func (NotNullable) notNull() bool { return true }

// Nullability is the NOT NULL dimension.
type Nullability interface {
	Nullable | NotNullable
	notNull() bool
}

// NotUnique marks a column without a UNIQUE constraint.
type NotUnique struct{}

// IsUnique marks a column carrying a (possibly named) UNIQUE constraint. The
// constraint name itself is data held by the column.
type IsUnique struct{}

func (NotUnique) unique() bool { return false }
func (IsUnique) unique() bool  { return true }

// Uniqueness is the UNIQUE dimension.
type Uniqueness interface {
	NotUnique | IsUnique
	unique() bool
}

// NotAutoIncremented marks a column without AUTOINCREMENT. Every non-integer
// kind is fixed to this tag.
type NotAutoIncremented struct{}

// IsAutoIncremented marks an INTEGER PRIMARY KEY AUTOINCREMENT column.
type IsAutoIncremented struct{}

func (NotAutoIncremented) autoincrement() bool { return false }
func (IsAutoIncremented) autoincrement() bool  { return true }

// AutoincrementMode is the AUTOINCREMENT dimension.
type AutoincrementMode interface {
	NotAutoIncremented | IsAutoIncremented
	autoincrement() bool
}

type defaultSource uint8

const (
	sourceNone defaultSource = iota
	sourceLiteral
	sourceFunc
)

// NoDefault marks a column without a default.
type NoDefault struct{}

// HasDefault marks a column with a literal default value.
type HasDefault struct{}

// HasDefaultFn marks a column whose default is computed by a function at
// insert time.
type HasDefaultFn struct{}

func (NoDefault) defaultSource() defaultSource    { return sourceNone }
func (HasDefault) defaultSource() defaultSource   { return sourceLiteral }
func (HasDefaultFn) defaultSource() defaultSource { return sourceFunc }

// DefaultMode is the default dimension. Literal and computed defaults are two
// values of one dimension, so a column can never carry both.
type DefaultMode interface {
	NoDefault | HasDefault | HasDefaultFn
	defaultSource() defaultSource
}
