// Package config centralizes schemagen configuration. Every setting is a
// command-line flag whose default is seeded from an environment variable, so
// `-help` shows all knobs and a CI job can configure the tool through env.
//
// Typical usage:
//
//	cfg, err := config.Load() // reads os.Args and os.Environ
//
// For tests, prefer LoadFromArgs to keep them hermetic:
//
//	fs := flag.NewFlagSet("test", flag.ContinueOnError)
//	getenv := func(k string) string { return testEnv[k] }
//	cfg, err := config.LoadFromArgs(fs, getenv, []string{"-strict"})
package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds the CLI configuration. All fields are plain values so the
// struct can be copied freely after construction.
type Config struct {
	// Out is the output file; empty or "-" means stdout.
	Out string
	// Tables restricts output to these tables, in this order. Empty means all.
	Tables []string

	// Table options applied to every rendered table.
	IfNotExists bool
	Strict      bool

	// Fingerprint appends an xxh3 fingerprint comment after each statement.
	Fingerprint bool

	// DSN, when set, names a SQLite database the rendered tables are
	// created in.
	DSN string
	// Timeout bounds the whole run. Zero means no limit.
	Timeout time.Duration

	Verbose bool
}

// LoadFromArgs defines the flags on fs, seeds each default from getenv and
// parses args.
//
// Precedence:
//  1. Environment values seed each flag's default.
//  2. Explicit CLI flags (in args) override the seeded defaults.
func LoadFromArgs(fs *flag.FlagSet, getenv func(string) string, args []string) (*Config, error) {
	cfg := &Config{}

	envOrDefaultFn := func(k, d string) string {
		if v := getenv(k); v != "" {
			return v
		}
		return d
	}
	boolEnvOrDefaultFn := func(k string, d bool) bool {
		if v := strings.ToLower(getenv(k)); v != "" {
			switch v {
			case "1", "true", "yes", "on":
				return true
			case "0", "false", "no", "off":
				return false
			}
		}
		return d
	}
	durationEnvOrDefaultFn := func(k string, d time.Duration) time.Duration {
		if v := getenv(k); v != "" {
			if dur, err := time.ParseDuration(v); err == nil {
				return dur
			}
		}
		return d
	}

	var tables string
	fs.StringVar(&cfg.Out, "out", envOrDefaultFn("SCHEMAGEN_OUT", "-"), "Output file ('-' for stdout)")
	fs.StringVar(&tables, "tables", getenv("SCHEMAGEN_TABLES"), "Comma-separated tables to render (default all)")
	fs.BoolVar(&cfg.IfNotExists, "if-not-exists", boolEnvOrDefaultFn("SCHEMAGEN_IF_NOT_EXISTS", false), "Emit CREATE TABLE IF NOT EXISTS")
	fs.BoolVar(&cfg.Strict, "strict", boolEnvOrDefaultFn("SCHEMAGEN_STRICT", false), "Declare STRICT tables")
	fs.BoolVar(&cfg.Fingerprint, "fingerprint", boolEnvOrDefaultFn("SCHEMAGEN_FINGERPRINT", false), "Append an xxh3 fingerprint comment per table")
	fs.StringVar(&cfg.DSN, "dsn", getenv("SCHEMAGEN_DSN"), "SQLite DSN to create the tables in (optional)")
	fs.DurationVar(&cfg.Timeout, "timeout", durationEnvOrDefaultFn("SCHEMAGEN_TIMEOUT", 30*time.Second), "Overall timeout (0 for none)")
	fs.BoolVar(&cfg.Verbose, "v", boolEnvOrDefaultFn("SCHEMAGEN_VERBOSE", false), "Log progress to stderr")

	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("config: unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	cfg.Tables = splitList(tables)
	if cfg.Out == "" {
		cfg.Out = "-"
	}
	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("config: timeout must not be negative: %s", cfg.Timeout)
	}
	return cfg, nil
}

// Load is the production entry point: flag.CommandLine, os.Getenv and
// os.Args[1:].
func Load() (*Config, error) {
	return LoadFromArgs(flag.CommandLine, os.Getenv, os.Args[1:])
}

// splitList splits a comma-separated list, trimming blanks and dropping
// empty and repeated entries.
func splitList(s string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" || seen[part] {
			continue
		}
		seen[part] = true
		out = append(out, part)
	}
	return out
}
