// Package typecheck type-checks small probe programs from source. Tests use it
// to prove that a builder or predicate call sequence is rejected by the
// compiler, which an ordinary test cannot express.
package typecheck

import (
	"errors"
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"strings"
)

// ErrImporterUnavailable is returned when the probe's imports could not be
// loaded from source, e.g. when the go command is not on PATH.
var ErrImporterUnavailable = errors.New("typecheck: source importer unavailable")

// Check type-checks src as a single file of package probe located in dir and
// returns the type errors it contains. Imports are resolved from source
// relative to dir, so dir should be a directory inside the module.
func Check(dir, src string) ([]types.Error, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("typecheck: %w", err)
	}

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filepath.Join(abs, "probe.go"), src, 0)
	if err != nil {
		return nil, fmt.Errorf("typecheck: parse probe: %w", err)
	}

	var errs []types.Error
	conf := types.Config{
		Importer: importer.ForCompiler(fset, "source", nil),
		Error: func(err error) {
			if te, ok := err.(types.Error); ok {
				errs = append(errs, te)
			}
		},
	}
	_, _ = conf.Check("probe", fset, []*ast.File{f}, nil)

	for _, e := range errs {
		if strings.Contains(e.Msg, "could not import") {
			return nil, fmt.Errorf("%w: %s", ErrImporterUnavailable, e.Msg)
		}
	}
	return errs, nil
}

// Program wraps body in a function of a probe file importing the given
// packages.
func Program(imports []string, body string) string {
	var b strings.Builder
	b.WriteString("package probe\n\nimport (\n")
	for _, imp := range imports {
		fmt.Fprintf(&b, "\t%q\n", imp)
	}
	b.WriteString(")\n\nfunc probe() {\n")
	b.WriteString(body)
	b.WriteString("\n}\n")
	return b.String()
}
