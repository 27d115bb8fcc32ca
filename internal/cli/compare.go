package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/heatpath/heatpath/heatmap"
	"github.com/heatpath/heatpath/search"
)

// compareOpts holds the command-line flags for the compare command.
type compareOpts struct {
	start     string
	end       string
	reach     int
	threshold int64
	runs      int
	out       string
}

// newCompareCmd creates the compare command, which times every applicable
// search strategy on the same input and writes a JSON report plus a timing
// chart. A single image file compares dijkstra, astar and fringe; a frame
// sequence compares dijkstra and astar (fringe is planar-only).
func newCompareCmd() *cobra.Command {
	var opts compareOpts

	cmd := &cobra.Command{
		Use:   "compare [image | frames...]",
		Short: "Time every search strategy on the same input",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, args, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.start, "start", "", `start cell "x,y" (single image)`)
	cmd.Flags().StringVar(&opts.end, "end", "", `end cell "x,y" (single image)`)
	cmd.Flags().IntVar(&opts.reach, "reach", 1, "lateral cells reachable per forward step (frame sequences)")
	cmd.Flags().Int64Var(&opts.threshold, "threshold", 0, "treat cells at or above this cost as walls (0 = none)")
	cmd.Flags().IntVar(&opts.runs, "runs", 5, "timed runs per strategy")
	cmd.Flags().StringVar(&opts.out, "out", "compare", "output directory")

	return cmd
}

// runCompare measures the strategies, then writes report.json and
// timings.png into the output directory and prints the summary table.
func runCompare(cmd *cobra.Command, args []string, opts *compareOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	if opts.runs < 1 {
		return fmt.Errorf("compare: --runs must be at least 1, got %d", opts.runs)
	}

	planar := len(args) == 1
	if planar {
		if info, err := os.Stat(args[0]); err == nil && info.IsDir() {
			planar = false
		}
	}

	threshold := resolveInt64(cmd, "threshold", opts.threshold, cfg.Threshold)

	var (
		samples map[string][]runSample
		kind    string
		err     error
	)
	if planar {
		kind = "planar"
		samples, err = comparePlanar(ctx, args[0], opts, threshold)
	} else {
		kind = "volume"
		reach := resolveInt(cmd, "reach", opts.reach, cfg.Reach)
		samples, err = compareVolume(ctx, args, opts, threshold, reach)
	}
	if err != nil {
		return err
	}

	report := buildReport(strings.Join(args, " "), kind, samples)
	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		return fmt.Errorf("create dir %s: %w", opts.out, err)
	}
	if err := writeReportJSON(filepath.Join(opts.out, "report.json"), report); err != nil {
		return err
	}
	if err := writeTimingChart(filepath.Join(opts.out, "timings.png"), samples); err != nil {
		return err
	}
	logger.Infof("Wrote report.json and timings.png to %s", opts.out)

	for _, a := range report.Algorithms {
		fmt.Fprintf(cmd.OutOrStdout(), "%-8s cost=%d mean=%.2fms stddev=%.2fms expanded=%.0f\n",
			a.Algorithm, a.Cost, a.MeanMillis, a.StddevMillis, a.MeanExpanded)
	}

	return nil
}

// comparePlanar times all three strategies between fixed endpoints on one
// image.
func comparePlanar(ctx context.Context, path string, opts *compareOpts, threshold int64) (map[string][]runSample, error) {
	if opts.start == "" || opts.end == "" {
		return nil, fmt.Errorf("compare: --start and --end are required for single images")
	}
	start, err := parseXY(opts.start)
	if err != nil {
		return nil, err
	}
	end, err := parseXY(opts.end)
	if err != nil {
		return nil, err
	}

	field, err := heatmap.DecodeFile(path)
	if err != nil {
		return nil, err
	}

	logger := loggerFromContext(ctx)
	samples := make(map[string][]runSample)
	for _, algo := range []search.Algorithm{search.Dijkstra, search.AStar, search.Fringe} {
		logger.Debugf("Timing %s ×%d", algo, opts.runs)
		runs, err := measure(algo.String(), opts.runs, func() (*search.Route, error) {
			return search.FindPath(field, start, end, baseSearchOpts(ctx, algo, threshold)...)
		})
		if err != nil {
			return nil, err
		}
		samples[algo.String()] = runs
	}

	return samples, nil
}

// compareVolume times dijkstra and astar across a frame sequence with open
// endpoints: any first-frame cell to any last-frame cell.
func compareVolume(ctx context.Context, args []string, opts *compareOpts, threshold int64, reach int) (map[string][]runSample, error) {
	paths, err := expandFrames(args)
	if err != nil {
		return nil, err
	}
	volume, err := heatmap.LoadVolume(paths)
	if err != nil {
		return nil, err
	}

	logger := loggerFromContext(ctx)
	samples := make(map[string][]runSample)
	for _, algo := range []search.Algorithm{search.Dijkstra, search.AStar} {
		logger.Debugf("Timing %s ×%d", algo, opts.runs)
		searchOpts := append(baseSearchOpts(ctx, algo, threshold), search.WithReach(reach))
		runs, err := measure(algo.String(), opts.runs, func() (*search.Route, error) {
			return search.FindRoute(volume, searchOpts...)
		})
		if err != nil {
			return nil, err
		}
		samples[algo.String()] = runs
	}

	return samples, nil
}

// baseSearchOpts builds the option set shared by both comparison modes.
func baseSearchOpts(ctx context.Context, algo search.Algorithm, threshold int64) []search.Option {
	searchOpts := []search.Option{
		search.WithAlgorithm(algo),
		search.WithContext(ctx),
	}
	if threshold > 0 {
		searchOpts = append(searchOpts, search.WithThreshold(threshold))
	}

	return searchOpts
}

// measure runs fn the requested number of times, timing each run.
func measure(name string, runs int, fn func() (*search.Route, error)) ([]runSample, error) {
	out := make([]runSample, 0, runs)
	for run := 0; run < runs; run++ {
		began := time.Now()
		route, err := fn()
		if err != nil {
			return nil, fmt.Errorf("%s run %d: %w", name, run+1, err)
		}
		out = append(out, runSample{
			Millis:   float64(time.Since(began)) / float64(time.Millisecond),
			Expanded: route.Expanded,
			Cost:     route.Cost,
		})
	}

	return out, nil
}
