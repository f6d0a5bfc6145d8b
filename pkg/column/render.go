package column

import (
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SQL renders the column definition:
//
//	"name" TYPE [PRIMARY KEY] [AUTOINCREMENT] [NOT NULL] [CONSTRAINT "u" UNIQUE] [DEFAULT literal]
//
// PRIMARY KEY is left out when the column is also unique, so only one key
// constraint is emitted. Computed defaults have no SQL form and are not
// rendered. The output depends only on the column's state and is byte-identical
// across calls.
func (c Column[T, K, P, N, U, A, D]) SQL() string {
	var (
		k K
		p P
		n N
		u U
		a A
		d D
	)

	parts := make([]string, 0, 8)
	parts = append(parts, quoteIdent(c.b.name), k.SQLType())

	if p.primary() && !u.unique() {
		parts = append(parts, "PRIMARY KEY")
	}
	if a.autoincrement() {
		parts = append(parts, "AUTOINCREMENT")
	}
	if n.notNull() {
		parts = append(parts, "NOT NULL")
	}
	if u.unique() {
		if c.b.uniqueName != "" {
			parts = append(parts, "CONSTRAINT", quoteIdent(c.b.uniqueName))
		}
		parts = append(parts, "UNIQUE")
	}
	if d.defaultSource() == sourceLiteral {
		parts = append(parts, "DEFAULT", literal(c.b.value))
	}

	return strings.Join(parts, " ")
}

// String implements fmt.Stringer with the rendered definition.
func (c Column[T, K, P, N, U, A, D]) String() string { return c.SQL() }

// literal renders a native value as an SQLite literal.
func literal(v any) string {
	switch x := v.(type) {
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return realLiteral(x)
	case string:
		return textLiteral(x)
	case []byte:
		return blobLiteral(x)
	case AnyValue:
		switch x.class {
		case StorageReal:
			return realLiteral(x.f)
		case StorageText:
			return textLiteral(x.s)
		case StorageBlob:
			return blobLiteral(x.b)
		default:
			return strconv.FormatInt(x.i, 10)
		}
	case NumberValue:
		if x.isReal {
			return realLiteral(x.f)
		}
		return strconv.FormatInt(x.i, 10)
	default:
		return textLiteral(fmt.Sprint(v))
	}
}

func realLiteral(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NULL"
	case math.IsInf(f, 1):
		return "9e999"
	case math.IsInf(f, -1):
		return "-9e999"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	// Keep REAL defaults recognisable as reals.
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

func textLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func blobLiteral(b []byte) string {
	return "X'" + strings.ToUpper(hex.EncodeToString(b)) + "'"
}
