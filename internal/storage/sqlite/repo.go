// Package sqlite is a small SQLite-backed repository used to apply rendered
// DDL and to insert rows whose omitted columns take their defaults.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Config holds SQLite repository configuration.
type Config struct {
	// DSN is a SQLite connection string or file path, e.g.:
	//   "file:schema.db?cache=shared"
	//   ":memory:"
	DSN string

	// PingTimeout bounds the initial connectivity check. Zero means 5s.
	PingTimeout time.Duration
}

// Repository wraps a database/sql handle opened with the modernc driver.
type Repository struct {
	db *sql.DB
}

// Open opens a database/sql handle on dsn with the modernc driver. An
// in-memory database is private to a connection, so the pool is pinned to a
// single connection for ":memory:".
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	if dsn == ":memory:" {
		db.SetMaxOpenConns(1)
	}
	return db, nil
}

// New wraps an already opened handle.
func New(db *sql.DB) *Repository { return &Repository{db: db} }

// NewRepository opens a connection for cfg.DSN, checks it and returns a
// Repository plus a Close function for cleanup.
func NewRepository(ctx context.Context, cfg Config) (*Repository, func(), error) {
	if strings.TrimSpace(cfg.DSN) == "" {
		return nil, nil, fmt.Errorf("sqlite: DSN must not be empty")
	}

	db, err := Open(cfg.DSN)
	if err != nil {
		return nil, nil, err
	}

	timeout := cfg.PingTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("sqlite: ping: %w", err)
	}

	// Enable foreign keys by default; ignore error if driver doesn't support it.
	_, _ = db.ExecContext(ctx, "PRAGMA foreign_keys = ON;")

	closeFn := func() { db.Close() }
	return &Repository{db: db}, closeFn, nil
}

// DB exposes the underlying handle for queries the repository does not wrap.
func (r *Repository) DB() *sql.DB { return r.db }

// Exec executes an arbitrary SQL statement (typically DDL).
func (r *Repository) Exec(ctx context.Context, sql string) error {
	if strings.TrimSpace(sql) == "" {
		return nil
	}
	if _, err := r.db.ExecContext(ctx, sql); err != nil {
		return fmt.Errorf("sqlite: exec: %w", err)
	}
	return nil
}

// Insert inserts one row into table. Columns absent from row are omitted from
// the statement so SQLite applies their declared defaults. An empty row
// inserts DEFAULT VALUES. It returns the rowid of the new row.
func (r *Repository) Insert(ctx context.Context, table string, row map[string]any) (int64, error) {
	if strings.TrimSpace(table) == "" {
		return 0, fmt.Errorf("sqlite: insert: table must not be empty")
	}

	var stmt string
	var args []any
	if len(row) == 0 {
		stmt = fmt.Sprintf("INSERT INTO %s DEFAULT VALUES", quoteIdent(table))
	} else {
		cols := make([]string, 0, len(row))
		for c := range row {
			cols = append(cols, c)
		}
		sort.Strings(cols)

		quoted := make([]string, len(cols))
		placeholders := make([]string, len(cols))
		args = make([]any, len(cols))
		for i, c := range cols {
			quoted[i] = quoteIdent(c)
			placeholders[i] = "?"
			args[i] = row[c]
		}
		stmt = fmt.Sprintf(
			"INSERT INTO %s (%s) VALUES (%s)",
			quoteIdent(table),
			strings.Join(quoted, ", "),
			strings.Join(placeholders, ", "),
		)
	}

	res, err := r.db.ExecContext(ctx, stmt, args...)
	if err != nil {
		return 0, fmt.Errorf("sqlite: insert into %s: %w", table, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("sqlite: insert into %s: last insert id: %w", table, err)
	}
	return id, nil
}

// Schema returns the CREATE statement SQLite stored for table.
func (r *Repository) Schema(ctx context.Context, table string) (string, error) {
	var ddl string
	err := r.db.QueryRowContext(ctx,
		"SELECT sql FROM sqlite_master WHERE type = 'table' AND name = ?", table,
	).Scan(&ddl)
	if err != nil {
		return "", fmt.Errorf("sqlite: schema of %s: %w", table, err)
	}
	return ddl, nil
}

// Close releases the underlying handle.
func (r *Repository) Close() error { return r.db.Close() }

func quoteIdent(id string) string {
	return `"` + strings.ReplaceAll(id, `"`, `""`) + `"`
}
