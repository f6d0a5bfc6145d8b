// Package ddl assembles finished columns into SQLite CREATE TABLE statements.
//
// Columns of different kinds and states are held side by side through the
// Definition interface. The builder here:
//
//   - Quotes the table name per dotted segment: "main"."events".
//   - Emits each column's own definition verbatim, one per line.
//   - Optionally emits IF NOT EXISTS and the STRICT and WITHOUT ROWID table
//     options.
//   - Rejects definitions SQLite would refuse or silently misread, naming the
//     offending table or column.
package ddl

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// BuildCreateTableSQL returns a CREATE TABLE statement for t:
//
//	CREATE TABLE [IF NOT EXISTS] "table" (
//	  "col1" TYPE ...,
//	  "col2" TYPE ...
//	)[ STRICT][, WITHOUT ROWID];
//
// The output is deterministic for a given TableDef.
func BuildCreateTableSQL(t TableDef) (string, error) {
	fqn := strings.TrimSpace(t.FQN)
	if fqn == "" || quoteFQN(fqn) == "" {
		return "", fmt.Errorf("ddl: table FQN must not be empty")
	}
	if len(t.Columns) == 0 {
		return "", fmt.Errorf("ddl: at least one column is required in table %s", fqn)
	}

	cols := make([]string, 0, len(t.Columns))
	seen := make(map[string]string, len(t.Columns))
	var pks []string

	for _, c := range t.Columns {
		if c == nil {
			return "", fmt.Errorf("ddl: nil column in table %s", fqn)
		}
		name := strings.TrimSpace(c.Name())
		if name == "" {
			return "", fmt.Errorf("ddl: column with empty name in table %s", fqn)
		}
		typ := strings.ToUpper(strings.TrimSpace(c.SQLType()))
		if typ == "" {
			return "", fmt.Errorf("ddl: column %s missing SQLType", name)
		}

		key := columnKey(name)
		if prev, ok := seen[key]; ok {
			return "", fmt.Errorf("ddl: duplicate column %s in table %s (conflicts with %s)", name, fqn, prev)
		}
		seen[key] = name

		if t.Strict && !strictTypes[typ] {
			return "", fmt.Errorf("ddl: column %s has type %s, not allowed in STRICT table %s", name, typ, fqn)
		}
		if rendersPrimaryKey(c) {
			pks = append(pks, name)
		}
		if t.WithoutRowID && isAutoincrement(c) {
			return "", fmt.Errorf("ddl: column %s is AUTOINCREMENT, not allowed in WITHOUT ROWID table %s", name, fqn)
		}

		cols = append(cols, c.SQL())
	}

	if len(pks) > 1 {
		return "", fmt.Errorf("ddl: table %s has more than one primary key column: %s", fqn, strings.Join(pks, ", "))
	}
	if t.WithoutRowID && len(pks) == 0 {
		return "", fmt.Errorf("ddl: WITHOUT ROWID table %s has no primary key", fqn)
	}

	var sb strings.Builder
	sb.WriteString("CREATE TABLE ")
	if t.IfNotExists {
		sb.WriteString("IF NOT EXISTS ")
	}
	sb.WriteString(quoteFQN(fqn))
	sb.WriteString(" (\n  ")
	sb.WriteString(strings.Join(cols, ",\n  "))
	sb.WriteString("\n)")

	var opts []string
	if t.Strict {
		opts = append(opts, "STRICT")
	}
	if t.WithoutRowID {
		opts = append(opts, "WITHOUT ROWID")
	}
	if len(opts) > 0 {
		sb.WriteByte(' ')
		sb.WriteString(strings.Join(opts, ", "))
	}
	sb.WriteByte(';')

	return sb.String(), nil
}

// BuildSchemaSQL renders several tables, separated by a blank line, in the
// order given.
func BuildSchemaSQL(tables []TableDef) (string, error) {
	stmts := make([]string, 0, len(tables))
	for _, t := range tables {
		stmt, err := BuildCreateTableSQL(t)
		if err != nil {
			return "", err
		}
		stmts = append(stmts, stmt)
	}
	return strings.Join(stmts, "\n\n"), nil
}

// strictTypes are the column types a STRICT table accepts.
var strictTypes = map[string]bool{
	"INT":     true,
	"INTEGER": true,
	"REAL":    true,
	"TEXT":    true,
	"BLOB":    true,
	"ANY":     true,
}

// rendersPrimaryKey reports whether c's definition carries an inline PRIMARY
// KEY clause. A unique column drops its PRIMARY KEY clause when rendered.
func rendersPrimaryKey(c Definition) bool {
	p, ok := c.(interface{ IsPrimaryKey() bool })
	if !ok || !p.IsPrimaryKey() {
		return false
	}
	if u, ok := c.(interface{ UniqueName() (string, bool) }); ok {
		if _, unique := u.UniqueName(); unique {
			return false
		}
	}
	return true
}

// columnKey is the key two column names collide on. SQLite folds only ASCII
// letters when comparing identifiers, so "Name" and "name" collide while "Ä"
// and "ä" do not. Names are NFC-normalized first: composed and decomposed
// spellings of one name are distinct to SQLite but render identically, and
// are rejected as duplicates.
func columnKey(name string) string {
	return strings.Map(func(r rune) rune {
		if 'A' <= r && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, norm.NFC.String(name))
}

func isAutoincrement(c Definition) bool {
	a, ok := c.(interface{ IsAutoincrement() bool })
	return ok && a.IsAutoincrement()
}

func quoteIdent(id string) string {
	return `"` + strings.ReplaceAll(id, `"`, `""`) + `"`
}

func quoteFQN(fqn string) string {
	parts := strings.Split(fqn, ".")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, quoteIdent(p))
	}
	return strings.Join(out, ".")
}
