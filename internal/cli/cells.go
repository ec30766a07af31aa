package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ngmap/builder"
	"github.com/katalvlaran/ngmap/core"
)

// ErrBadStrip indicates strip parameters that cannot be glued.
var ErrBadStrip = errors.New("cli: invalid strip")

// glueDim is the dimension along which neighbouring polygons are sewn.
const glueDim = 2

// newCellsCmd creates the cells command: a strip of polygons where the last
// edge of each polygon is 2-sewn to the first edge of the next one.
func newCellsCmd() *cobra.Command {
	var opts shapeFlags
	var polygons int

	cmd := &cobra.Command{
		Use:   "cells",
		Short: "Build a strip of polygons glued by 2-sewing and report its cells",
		Example: `  # Three squares in a row
  ngmap cells --polygons 3

  # Five triangles, with engine debug output
  ngmap cells -v --polygons 5 --edges 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.resolve(cmd)
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			m, err := core.New[string](cfg.Dimension, core.WithLogger(logger))
			if err != nil {
				return err
			}
			if err := buildStrip(m, polygons, cfg.Edges); err != nil {
				return err
			}
			prog.done("strip built", "polygons", polygons, "darts", m.Len())

			r, err := newReport(fmt.Sprintf("strip of %d %d-gons", polygons, cfg.Edges), m)
			if err != nil {
				return err
			}
			r.Render(cmd.OutOrStdout())
			return r.Valid
		},
	}
	opts.register(cmd)
	cmd.Flags().IntVarP(&polygons, "polygons", "p", 1, "number of polygons in the strip")

	return cmd
}

// buildStrip adds the polygons to m and glues each one to the next.
func buildStrip[A any](m *core.Map[A], polygons, edges int) error {
	if polygons < 1 {
		return fmt.Errorf("polygons=%d < 1: %w", polygons, ErrBadStrip)
	}
	if polygons > 1 && edges < 2 {
		return fmt.Errorf("edges=%d: gluing needs at least 2 edges per polygon: %w", edges, ErrBadStrip)
	}
	if polygons > 1 && m.Dimension() < glueDim {
		return fmt.Errorf("dimension=%d: gluing needs dimension %d: %w", m.Dimension(), glueDim, ErrBadStrip)
	}

	var prev []builder.Edge
	for k := 0; k < polygons; k++ {
		loop, err := builder.AddPolygonEdges(m, edges)
		if err != nil {
			return fmt.Errorf("polygon %d: %w", k, err)
		}
		if prev != nil {
			last := prev[len(prev)-1]
			if err := m.Sew(last.First, loop[0].First, glueDim); err != nil {
				return fmt.Errorf("glue polygon %d to %d: %w", k-1, k, err)
			}
		}
		prev = loop
	}
	return nil
}
