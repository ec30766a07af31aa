package cli

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// version is injected via ldflags at build time.
var version = "dev"

// NewRootCommand creates the root cobra command with all subcommands
// registered.
//
// Before any subcommand runs, the root resolves the Config (defaults, then
// the --config file) and the log level (config, then --verbose), and attaches
// both, with a logger writing to the command's stderr, to the context.
func NewRootCommand() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "ngmap",
		Short:        "ngmap builds generalized maps and reports their cells",
		Long:         `ngmap builds small n-dimensional generalized maps out of polygons and reports how many i-cells they have, checking every structural invariant on the way.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := DefaultConfig()
			if configPath != "" {
				loaded, err := LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			level, err := cfg.Level()
			if err != nil {
				return err
			}
			if verbose {
				level = log.DebugLevel
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = withLogger(ctx, newLogger(cmd.ErrOrStderr(), level))
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML config file")

	root.AddCommand(newPolygonCmd())
	root.AddCommand(newCellsCmd())

	return root
}

// Execute runs the ngmap CLI with ctx and returns the first command error.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
