// Command schemagen renders the built-in example schema, declared with the
// typed column builder, as SQLite DDL and optionally creates the tables in a
// SQLite database.
//
// Design goals:
//   - Keep main() tiny and delegate to run() for testability.
//   - All side effects (output file, database) are injected via Deps.
//   - Render every statement before writing any, so a bad table produces no
//     partial output.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"typedcol/internal/config"
	"typedcol/internal/storage/sqlite"
	"typedcol/pkg/ddl"
	"typedcol/pkg/defaults"
)

// Deps holds the injectable boundaries of run.
type Deps struct {
	Stdout io.Writer
	Create func(name string) (io.WriteCloser, error)

	// OpenRepository opens the database the tables are created in.
	OpenRepository func(ctx context.Context, cfg sqlite.Config) (ddl.Execer, func(), error)

	Clock  defaults.Clock
	Logger *log.Logger
}

// defaultDeps wires production implementations. Tests inject fakes.
func defaultDeps() Deps {
	return Deps{
		Stdout: os.Stdout,
		Create: func(name string) (io.WriteCloser, error) { return os.Create(name) },
		OpenRepository: func(ctx context.Context, cfg sqlite.Config) (ddl.Execer, func(), error) {
			return sqlite.NewRepository(ctx, cfg)
		},
		Logger: log.New(os.Stderr, "schemagen: ", log.LstdFlags),
	}
}

// run renders the selected tables, writes them to the configured output and,
// when a DSN is set, creates them in that database.
func run(ctx context.Context, cfg *config.Config, deps Deps) error {
	logf := func(format string, args ...any) {
		if cfg.Verbose && deps.Logger != nil {
			deps.Logger.Printf(format, args...)
		}
	}

	tables, err := selectTables(exampleSchema(deps.Clock), cfg.Tables)
	if err != nil {
		return err
	}
	for i := range tables {
		tables[i].IfNotExists = cfg.IfNotExists
		tables[i].Strict = cfg.Strict
	}

	var sb strings.Builder
	for i, t := range tables {
		stmt, err := ddl.BuildCreateTableSQL(t)
		if err != nil {
			return fmt.Errorf("schemagen: %w", err)
		}
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(stmt)
		sb.WriteString("\n")
		if cfg.Fingerprint {
			fp, err := ddl.FingerprintHex(t)
			if err != nil {
				return fmt.Errorf("schemagen: %w", err)
			}
			fmt.Fprintf(&sb, "-- fingerprint %s: %s\n", t.FQN, fp)
		}
		logf("rendered table %s (%d columns)", t.FQN, len(t.Columns))
	}

	if err := writeOutput(cfg.Out, sb.String(), deps); err != nil {
		return err
	}
	logf("wrote %d tables to %s", len(tables), cfg.Out)

	if cfg.DSN == "" {
		return nil
	}
	db, closeFn, err := deps.OpenRepository(ctx, sqlite.Config{DSN: cfg.DSN})
	if err != nil {
		return fmt.Errorf("schemagen: open %s: %w", cfg.DSN, err)
	}
	defer closeFn()

	for _, t := range tables {
		if err := ddl.EnsureTable(ctx, db, t); err != nil {
			return fmt.Errorf("schemagen: %w", err)
		}
		logf("created table %s", t.FQN)
	}
	return nil
}

func writeOutput(path, text string, deps Deps) error {
	if path == "" || path == "-" {
		if _, err := io.WriteString(deps.Stdout, text); err != nil {
			return fmt.Errorf("schemagen: write stdout: %w", err)
		}
		return nil
	}

	f, err := deps.Create(path)
	if err != nil {
		return fmt.Errorf("schemagen: create %s: %w", path, err)
	}
	if _, err := io.WriteString(f, text); err != nil {
		f.Close()
		return fmt.Errorf("schemagen: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("schemagen: close %s: %w", path, err)
	}
	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	if err := run(ctx, cfg, defaultDeps()); err != nil {
		log.Fatal(err)
	}
}
