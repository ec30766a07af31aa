package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ngmap/builder"
	"github.com/katalvlaran/ngmap/core"
)

// newPolygonCmd creates the polygon command: one closed polygon.
func newPolygonCmd() *cobra.Command {
	var opts shapeFlags

	cmd := &cobra.Command{
		Use:   "polygon",
		Short: "Build a closed polygon and report its cells",
		Example: `  # A square in a 2-map
  ngmap polygon

  # A hexagon in a 3-map
  ngmap polygon --edges 6 --dimension 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.resolve(cmd)
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			m, err := core.New[string](cfg.Dimension, core.WithLogger(logger))
			if err != nil {
				return err
			}
			logger.Debug("building polygon", "edges", cfg.Edges, "dim", cfg.Dimension)
			if _, err := builder.AddConvexPolygon(m, cfg.Edges); err != nil {
				return err
			}
			prog.done("polygon built", "darts", m.Len())

			r, err := newReport(fmt.Sprintf("%d-gon", cfg.Edges), m)
			if err != nil {
				return err
			}
			r.Render(cmd.OutOrStdout())
			return r.Valid
		},
	}
	opts.register(cmd)

	return cmd
}

// shapeFlags are the flags shared by the shape commands; unset flags fall
// back to the resolved Config.
type shapeFlags struct {
	edges     int
	dimension int
}

func (f *shapeFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.edges, "edges", "e", defaultEdges, "edges per polygon")
	cmd.Flags().IntVarP(&f.dimension, "dimension", "d", defaultDimension, "dimension of the map")
}

// resolve overlays explicitly set flags on the config from the context.
func (f *shapeFlags) resolve(cmd *cobra.Command) Config {
	cfg := configFromContext(cmd.Context())
	if cmd.Flags().Changed("edges") {
		cfg.Edges = f.edges
	}
	if cmd.Flags().Changed("dimension") {
		cfg.Dimension = f.dimension
	}
	return cfg
}
