package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with
// values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the heatpath CLI under ctx and returns an error if any
// command fails. Cancellation of ctx (e.g. SIGINT) aborts a running search.
//
// The function sets up the root command with all subcommands (path, route,
// gen, compare), loads the optional heatpath.toml defaults, and configures
// logging based on the --verbose flag. Both the logger and the file config
// travel on the command context.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:           "heatpath",
		Short:         "heatpath finds minimum-cost routes through heatmap images",
		Long:          `heatpath reads grayscale heatmaps — single images or ordered frame sequences — and finds minimum-cost routes through them using Dijkstra, A*, or Fringe search. Found routes are drawn back onto the frames and serialized as a route.txt sidecar.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmdCtx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(withConfig(cmdCtx, cfg))

			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("heatpath %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "TOML config file (default heatpath.toml when present)")

	root.AddCommand(newPathCmd())
	root.AddCommand(newRouteCmd())
	root.AddCommand(newGenCmd())
	root.AddCommand(newCompareCmd())

	return root.ExecuteContext(ctx)
}
