package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/heatpath/heatpath/grid"
	"github.com/heatpath/heatpath/heatmap"
	"github.com/heatpath/heatpath/overlay"
	"github.com/heatpath/heatpath/search"
)

// routeOpts holds the command-line flags for the route command.
type routeOpts struct {
	algo      string // search strategy name (fringe is rejected for volumes)
	reach     int    // lateral reach per step
	axis      string // forward axis: x, y or t
	start     string // optional start position "x,y" on the first frame
	end       string // optional end position "x,y" on the last frame
	threshold int64  // impassable cost threshold, 0 = none
	out       string // output directory for annotated frames and route.txt
}

// newRouteCmd creates the route command: a temporal search across an ordered
// frame sequence. Frames are given either as an explicit file list or as one
// directory, whose *.png files are taken in name order.
//
// Without --start/--end the search considers every position on the first
// frame a start and every position on the last frame an end.
func newRouteCmd() *cobra.Command {
	var opts routeOpts

	cmd := &cobra.Command{
		Use:   "route [frames...]",
		Short: "Find a minimum-cost route through an ordered frame sequence",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoute(cmd, args, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.algo, "algo", "astar", "search strategy: astar or dijkstra")
	cmd.Flags().IntVar(&opts.reach, "reach", 1, "lateral cells reachable per forward step")
	cmd.Flags().StringVar(&opts.axis, "axis", "t", "forward axis: x, y or t")
	cmd.Flags().StringVar(&opts.start, "start", "", `optional start "x,y" on the first frame`)
	cmd.Flags().StringVar(&opts.end, "end", "", `optional end "x,y" on the last frame`)
	cmd.Flags().Int64Var(&opts.threshold, "threshold", 0, "treat cells at or above this cost as walls (0 = none)")
	cmd.Flags().StringVar(&opts.out, "out", "", "output directory (default \"out\")")

	return cmd
}

// runRoute loads the frame stack, searches it, and writes the annotated
// frames plus the route.txt sidecar.
func runRoute(cmd *cobra.Command, args []string, opts *routeOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	paths, err := expandFrames(args)
	if err != nil {
		return err
	}

	algo, err := search.ParseAlgorithm(resolveString(cmd, "algo", opts.algo, cfg.Algorithm))
	if err != nil {
		return err
	}
	axis, err := parseAxis(resolveString(cmd, "axis", opts.axis, cfg.Axis))
	if err != nil {
		return err
	}

	volume, err := heatmap.LoadVolume(paths)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded %d frames of %d×%d cells", volume.Frames(), volume.Width(), volume.Height())

	searchOpts := []search.Option{
		search.WithAlgorithm(algo),
		search.WithReach(resolveInt(cmd, "reach", opts.reach, cfg.Reach)),
		search.WithAxis(axis),
		search.WithContext(ctx),
	}
	if threshold := resolveInt64(cmd, "threshold", opts.threshold, cfg.Threshold); threshold > 0 {
		searchOpts = append(searchOpts, search.WithThreshold(threshold))
	}
	searchOpts, err = appendEndpoints(searchOpts, opts, axis, volume.Frames())
	if err != nil {
		return err
	}

	track := newProgress(logger)
	route, err := search.FindRoute(volume, searchOpts...)
	if err != nil {
		return err
	}
	track.done(fmt.Sprintf("Found %s route: cost %d over %d positions (%d expansions)",
		algo, route.Cost, len(route.Points), route.Expanded))

	out := resolveOut(cmd, opts.out, cfg)
	if err := writeRouteOutputs(out, paths, volume.Frames(), route, markerStyle(cfg)); err != nil {
		return err
	}
	logger.Infof("Saved %d annotated frames and route.txt to %s", len(paths), out)
	fmt.Fprintf(cmd.OutOrStdout(), "cost=%d length=%d\n", route.Cost, len(route.Points))

	return nil
}

// expandFrames turns the positional arguments into an ordered frame list.
// A single directory argument expands to its *.png files in name order;
// anything else is used verbatim. Temporal routing needs at least two
// frames — single images belong to the path command.
func expandFrames(args []string) ([]string, error) {
	paths := args
	if len(args) == 1 {
		if info, err := os.Stat(args[0]); err == nil && info.IsDir() {
			paths, err = filepath.Glob(filepath.Join(args[0], "*.png"))
			if err != nil {
				return nil, err
			}
			sort.Strings(paths)
		}
	}
	if len(paths) < 2 {
		return nil, fmt.Errorf("need at least 2 frames, got %d (use \"path\" for single images)", len(paths))
	}

	return paths, nil
}

// appendEndpoints pins the start/end sets when the flags are given. Explicit
// endpoints name a position on the first and last frame, which only makes
// sense when the forward axis is time.
func appendEndpoints(searchOpts []search.Option, opts *routeOpts, axis grid.Axis, frames int) ([]search.Option, error) {
	if opts.start == "" && opts.end == "" {
		return searchOpts, nil
	}
	if axis != grid.AxisT {
		return nil, fmt.Errorf("route: --start/--end require --axis t")
	}

	if opts.start != "" {
		p, err := parseXY(opts.start)
		if err != nil {
			return nil, err
		}
		searchOpts = append(searchOpts, search.WithStarts(grid.Pt3(p.X, p.Y, 0)))
	}
	if opts.end != "" {
		p, err := parseXY(opts.end)
		if err != nil {
			return nil, err
		}
		searchOpts = append(searchOpts, search.WithEnds(grid.Pt3(p.X, p.Y, frames-1)))
	}

	return searchOpts, nil
}

// writeRouteOutputs writes route.txt plus one annotated PNG per source frame
// into dir.
func writeRouteOutputs(dir string, framePaths []string, frames int, route *search.Route, style overlay.Style) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir %s: %w", dir, err)
	}

	sidecar, err := os.Create(filepath.Join(dir, "route.txt"))
	if err != nil {
		return fmt.Errorf("create route.txt: %w", err)
	}
	err = overlay.WriteRouteTxt(sidecar, frames, route.Points, route.Cost)
	if cerr := sidecar.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write route.txt: %w", err)
	}

	for t, framePath := range framePaths {
		if _, err := writeMarkedImage(framePath, dir, framePoints(route.Points, t), style); err != nil {
			return err
		}
	}

	return nil
}

// framePoints selects the route positions that fall on frame t, in route order.
func framePoints(points []grid.Point, t int) []grid.Point {
	var out []grid.Point
	for _, p := range points {
		if p.T == t {
			out = append(out, p)
		}
	}

	return out
}
