package ddl

import (
	"context"
	"fmt"
)

// Execer runs a single SQL statement. internal/storage/sqlite.Repository
// implements it.
type Execer interface {
	Exec(ctx context.Context, sql string) error
}

// EnsureTable renders t and executes the statement on db. Build errors are
// returned without touching db.
func EnsureTable(ctx context.Context, db Execer, t TableDef) error {
	stmt, err := BuildCreateTableSQL(t)
	if err != nil {
		return err
	}
	if err := db.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("ddl: ensure table %s: %w", t.FQN, err)
	}
	return nil
}
