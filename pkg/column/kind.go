package column

// IntegerKind identifies INTEGER columns (native type int64).
type IntegerKind struct{}

// RealKind identifies REAL columns (native type float64).
type RealKind struct{}

// TextKind identifies TEXT columns (native type string).
type TextKind struct{}

// BlobKind identifies BLOB columns (native type []byte).
type BlobKind struct{}

// AnyKind identifies ANY columns (native type AnyValue).
type AnyKind struct{}

// NumberKind identifies NUMERIC columns (native type NumberValue).
type NumberKind struct{}

func (IntegerKind) SQLType() string { return "INTEGER" }
func (RealKind) SQLType() string    { return "REAL" }
func (TextKind) SQLType() string    { return "TEXT" }
func (BlobKind) SQLType() string    { return "BLOB" }
func (AnyKind) SQLType() string     { return "ANY" }
func (NumberKind) SQLType() string  { return "NUMERIC" }

// Kind is the set of column kinds. The kind fixes the logical SQL type and,
// together with the native type, never changes across transitions.
type Kind interface {
	IntegerKind | RealKind | TextKind | BlobKind | AnyKind | NumberKind
	SQLType() string
}

// Mode refines how the values of a column are interpreted. It is fixed when
// the column is constructed.
type Mode interface {
	String() string
	isMode()
}

// IntegerMode is the interpretation of an INTEGER column.
type IntegerMode uint8

const (
	// IntegerNumber is a plain number.
	IntegerNumber IntegerMode = iota
	// IntegerTimestamp is a Unix timestamp in seconds.
	IntegerTimestamp
	// IntegerTimestampMS is a Unix timestamp in milliseconds.
	IntegerTimestampMS
	// IntegerBoolean stores 0 or 1.
	IntegerBoolean
)

func (IntegerMode) isMode() {}

func (m IntegerMode) String() string {
	switch m {
	case IntegerNumber:
		return "number"
	case IntegerTimestamp:
		return "timestamp"
	case IntegerTimestampMS:
		return "timestamp_ms"
	case IntegerBoolean:
		return "boolean"
	default:
		return "unknown"
	}
}

// TextMode is the interpretation of a TEXT column.
type TextMode uint8

const (
	// TextString is plain text.
	TextString TextMode = iota
	// TextEnum holds one of a closed set of values.
	TextEnum
	// TextJSON holds a JSON document.
	TextJSON
)

func (TextMode) isMode() {}

func (m TextMode) String() string {
	switch m {
	case TextString:
		return "string"
	case TextEnum:
		return "enum"
	case TextJSON:
		return "json"
	default:
		return "unknown"
	}
}

// NoMode is the mode of kinds that have no interpretation variants.
type NoMode struct{}

func (NoMode) isMode()        {}
func (NoMode) String() string { return "none" }
