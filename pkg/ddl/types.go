package ddl

import "strings"

// Definition is one column of a table definition. Every finished
// column.Column satisfies it, as does RawColumn.
type Definition interface {
	Name() string
	SQLType() string
	SQL() string
}

// Defaulter is implemented by columns that can produce the value an insert
// should use when the column is omitted.
type Defaulter interface {
	DefaultValue() (any, bool, error)
}

// RawColumn is a hand-written column for the cases the typed builder does not
// cover. Its fields are emitted with little interpretation:
//
//   - ColumnName: unquoted column name; quoting happens at render time
//   - Type: SQL type keyword (e.g. INTEGER, TEXT, INT)
//   - Nullable: whether NULL is allowed
//   - PrimaryKey: whether the column is the table's primary key
//   - Default: raw default expression (e.g. 'anon', CURRENT_TIMESTAMP)
type RawColumn struct {
	ColumnName string
	Type       string
	Nullable   bool
	PrimaryKey bool
	Default    string
}

func (c RawColumn) Name() string    { return c.ColumnName }
func (c RawColumn) SQLType() string { return c.Type }

func (c RawColumn) IsPrimaryKey() bool    { return c.PrimaryKey }
func (c RawColumn) IsAutoincrement() bool { return false }

// SQL renders the column as:
//
//	"name" TYPE [PRIMARY KEY] [NOT NULL] [DEFAULT expr]
func (c RawColumn) SQL() string {
	var sb strings.Builder
	sb.WriteString(quoteIdent(strings.TrimSpace(c.ColumnName)))
	sb.WriteByte(' ')
	sb.WriteString(strings.TrimSpace(c.Type))

	if c.PrimaryKey {
		sb.WriteString(" PRIMARY KEY")
	}
	if !c.Nullable {
		sb.WriteString(" NOT NULL")
	}
	if def := strings.TrimSpace(c.Default); def != "" {
		// Default is emitted as a raw SQL expression.
		sb.WriteString(" DEFAULT ")
		sb.WriteString(def)
	}
	return sb.String()
}

// TableDef holds the table name and its ordered columns. FQN may be dotted
// ("main.events"); each segment is quoted separately.
type TableDef struct {
	FQN     string
	Columns []Definition

	// IfNotExists emits CREATE TABLE IF NOT EXISTS.
	IfNotExists bool
	// Strict declares a STRICT table; every column type must then be one of
	// INT, INTEGER, REAL, TEXT, BLOB or ANY.
	Strict bool
	// WithoutRowID declares a WITHOUT ROWID table, which needs a primary key.
	WithoutRowID bool
}

// Columns is a convenience for building TableDef.Columns from columns of
// different kinds.
func Columns(defs ...Definition) []Definition { return defs }
