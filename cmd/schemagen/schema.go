package main

import (
	"fmt"

	"typedcol/pkg/column"
	"typedcol/pkg/ddl"
	"typedcol/pkg/defaults"
)

// exampleSchema is the built-in schema schemagen renders: a small account
// system with users, their sessions, uploaded attachments and sensor
// readings. clock feeds the computed timestamp defaults.
func exampleSchema(clock defaults.Clock) []ddl.TableDef {
	users := ddl.TableDef{FQN: "users", Columns: ddl.Columns(
		column.Autoincrement(column.Primary(column.Integer("id", column.IntegerNumber))),
		column.Unique(column.NotNull(column.Text("email", column.TextString)), "users_email_key"),
		column.NotNull(column.Text("display_name", column.TextString)),
		column.Default(column.NotNull(column.Integer("is_admin", column.IntegerBoolean)), 0),
		column.Default(column.NotNull(column.Text("profile", column.TextJSON)), "{}"),
		column.DefaultFn(column.NotNull(column.Integer("created_at", column.IntegerTimestamp)), defaults.UnixSeconds(clock)),
	)}

	sessions := ddl.TableDef{FQN: "sessions", WithoutRowID: true, Columns: ddl.Columns(
		column.DefaultFn(column.NotNull(column.Primary(column.Text("id", column.TextString))), defaults.UUID()),
		column.NotNull(column.Integer("user_id", column.IntegerNumber)),
		column.DefaultFn(column.Unique(column.NotNull(column.Blob("token")), "sessions_token_key"), defaults.UUIDBytes()),
		column.Default(column.NotNull(column.Real("ttl_seconds")), 3600),
		column.DefaultFn(column.NotNull(column.Integer("expires_at", column.IntegerTimestampMS)), defaults.UnixMillis(clock)),
	)}

	attachments := ddl.TableDef{FQN: "attachments", Columns: ddl.Columns(
		column.Primary(column.Integer("id", column.IntegerNumber)),
		column.NotNull(column.Text("session_id", column.TextString)),
		column.Default(column.NotNull(column.Text("kind", column.TextEnum)), "file"),
		column.Default(column.Blob("content"), []byte{}),
		column.Default(column.Any("meta"), column.AnyText("")),
	)}

	readings := ddl.TableDef{FQN: "readings", Columns: ddl.Columns(
		column.Autoincrement(column.Primary(column.Integer("id", column.IntegerNumber))),
		column.NotNull(column.Text("sensor", column.TextString)),
		column.NotNull(column.Real("value")),
		column.Any("raw"),
		column.Default(column.Number("calibrated"), column.NumberReal(0)),
		column.DefaultFn(column.NotNull(column.Integer("taken_at", column.IntegerTimestampMS)), defaults.UnixMillis(clock)),
	)}

	return []ddl.TableDef{users, sessions, attachments, readings}
}

// selectTables returns the tables named in names, in that order. An empty
// names selects every table in schema order.
func selectTables(all []ddl.TableDef, names []string) ([]ddl.TableDef, error) {
	if len(names) == 0 {
		return all, nil
	}
	byName := make(map[string]ddl.TableDef, len(all))
	for _, t := range all {
		byName[t.FQN] = t
	}
	out := make([]ddl.TableDef, 0, len(names))
	for _, n := range names {
		t, ok := byName[n]
		if !ok {
			return nil, fmt.Errorf("schemagen: unknown table %q", n)
		}
		out = append(out, t)
	}
	return out, nil
}
