package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heatpath/heatpath/grid"
	"github.com/heatpath/heatpath/heatmap"
	"github.com/heatpath/heatpath/overlay"
	"github.com/heatpath/heatpath/search"
)

// defaultOutDir receives annotated frames and sidecars when neither the
// --out flag nor the config file names a directory.
const defaultOutDir = "out"

// pathOpts holds the command-line flags for the path command.
type pathOpts struct {
	algo      string // search strategy name
	start     string // start position "x,y"
	end       string // end position "x,y"
	threshold int64  // impassable cost threshold, 0 = none
	out       string // output directory for the annotated image
}

// newPathCmd creates the path command: a single-image search between two
// explicit positions, with the found route drawn back onto a copy of the
// image.
func newPathCmd() *cobra.Command {
	var opts pathOpts

	cmd := &cobra.Command{
		Use:   "path [image]",
		Short: "Find a minimum-cost route through one heatmap image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPath(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.algo, "algo", "astar", "search strategy: astar, dijkstra or fringe")
	cmd.Flags().StringVar(&opts.start, "start", "", `start position "x,y" (required)`)
	cmd.Flags().StringVar(&opts.end, "end", "", `end position "x,y" (required)`)
	cmd.Flags().Int64Var(&opts.threshold, "threshold", 0, "treat cells at or above this cost as walls (0 = none)")
	cmd.Flags().StringVar(&opts.out, "out", "", "output directory (default \"out\")")

	return cmd
}

// runPath decodes the image, searches it, and writes the annotated copy.
func runPath(cmd *cobra.Command, input string, opts *pathOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	if opts.start == "" || opts.end == "" {
		return fmt.Errorf("path: --start and --end are required")
	}
	start, err := parseXY(opts.start)
	if err != nil {
		return err
	}
	end, err := parseXY(opts.end)
	if err != nil {
		return err
	}
	algo, err := search.ParseAlgorithm(resolveString(cmd, "algo", opts.algo, cfg.Algorithm))
	if err != nil {
		return err
	}

	field, err := heatmap.DecodeFile(input)
	if err != nil {
		return err
	}
	logger.Debugf("Decoded %s: %d×%d cells", input, field.Width(), field.Height())

	searchOpts := []search.Option{search.WithAlgorithm(algo), search.WithContext(ctx)}
	if threshold := resolveInt64(cmd, "threshold", opts.threshold, cfg.Threshold); threshold > 0 {
		searchOpts = append(searchOpts, search.WithThreshold(threshold))
	}

	track := newProgress(logger)
	route, err := search.FindPath(field, start, end, searchOpts...)
	if err != nil {
		return err
	}
	track.done(fmt.Sprintf("Found %s route: cost %d over %d cells (%d expansions)",
		algo, route.Cost, len(route.Points), route.Expanded))

	outPath, err := writeMarkedImage(input, resolveOut(cmd, opts.out, cfg), route.Points, markerStyle(cfg))
	if err != nil {
		return err
	}
	logger.Infof("Saved %s", outPath)
	fmt.Fprintf(cmd.OutOrStdout(), "cost=%d length=%d\n", route.Cost, len(route.Points))

	return nil
}

// resolveOut applies the flag/config/default chain for the output directory.
func resolveOut(cmd *cobra.Command, flagVal string, cfg fileConfig) string {
	out := resolveString(cmd, "out", flagVal, cfg.Out)
	if out == "" {
		out = defaultOutDir
	}

	return out
}

// markerStyle builds the overlay style, honoring a configured radius.
func markerStyle(cfg fileConfig) overlay.Style {
	style := overlay.DefaultStyle()
	if cfg.Marker.Radius > 0 {
		style.Radius = cfg.Marker.Radius
	}

	return style
}

// writeMarkedImage draws the route onto a copy of the source image and
// writes it as a PNG under dir, returning the written path. The output name
// keeps the source base name with a .png extension.
func writeMarkedImage(input, dir string, points []grid.Point, style overlay.Style) (string, error) {
	img, err := overlay.LoadImage(input)
	if err != nil {
		return "", err
	}
	marked := overlay.MarkRoute(img, points, style)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create dir %s: %w", dir, err)
	}
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + ".png"
	outPath := filepath.Join(dir, base)
	if err := overlay.SavePNG(outPath, marked); err != nil {
		return "", fmt.Errorf("save %s: %w", outPath, err)
	}

	return outPath, nil
}
