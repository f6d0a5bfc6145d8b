package ddl

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ResolveDefaults evaluates the default of every column in cols and returns
// the values keyed by column name. Columns without a default, and columns
// that do not implement Defaulter, are left out. Computed defaults run
// concurrently; the first failure cancels ctx for the rest and is returned
// wrapped with the failing column's name.
func ResolveDefaults(ctx context.Context, cols []Definition) (map[string]any, error) {
	type resolved struct {
		value any
		ok    bool
	}
	out := make([]resolved, len(cols))

	g, ctx := errgroup.WithContext(ctx)
	for i, c := range cols {
		d, ok := c.(Defaulter)
		if !ok {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, ok, err := d.DefaultValue()
			if err != nil {
				return fmt.Errorf("ddl: resolve default: %w", err)
			}
			out[i] = resolved{value: v, ok: ok}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	values := make(map[string]any, len(cols))
	for i, r := range out {
		if r.ok {
			values[cols[i].Name()] = r.value
		}
	}
	return values, nil
}
