package cli

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// runSample is one timed search invocation.
type runSample struct {
	Millis   float64
	Expanded int
	Cost     int64
}

// algoReport summarises the timed runs of one strategy on the shared input.
// Cost is a single value because the strategies are deterministic: every
// run of the same strategy returns the same route.
type algoReport struct {
	Algorithm    string  `json:"algorithm"`
	Runs         int     `json:"runs"`
	Cost         int64   `json:"cost"`
	MeanExpanded float64 `json:"mean_expanded"`
	MeanMillis   float64 `json:"mean_millis"`
	StddevMillis float64 `json:"stddev_millis"`
}

// compareReport is the JSON document written by the compare command.
type compareReport struct {
	RunID      string       `json:"run_id"`
	Input      string       `json:"input"`
	Kind       string       `json:"kind"`
	Generated  time.Time    `json:"generated"`
	Algorithms []algoReport `json:"algorithms"`
}

// buildReport folds the raw samples into per-strategy statistics, ordered by
// strategy name so repeated runs diff cleanly.
func buildReport(input, kind string, samples map[string][]runSample) compareReport {
	report := compareReport{
		RunID:     uuid.New().String(),
		Input:     input,
		Kind:      kind,
		Generated: time.Now().UTC(),
	}

	for _, name := range sortedNames(samples) {
		runs := samples[name]
		millis := make([]float64, len(runs))
		expanded := make([]float64, len(runs))
		for i, s := range runs {
			millis[i] = s.Millis
			expanded[i] = float64(s.Expanded)
		}

		// Sample stddev needs n ≥ 2; a single run reports 0, not NaN.
		var stddev float64
		if len(millis) > 1 {
			stddev = stat.StdDev(millis, nil)
		}

		report.Algorithms = append(report.Algorithms, algoReport{
			Algorithm:    name,
			Runs:         len(runs),
			Cost:         runs[0].Cost,
			MeanExpanded: stat.Mean(expanded, nil),
			MeanMillis:   stat.Mean(millis, nil),
			StddevMillis: stddev,
		})
	}

	return report
}

// writeReportJSON writes the report as indented JSON.
func writeReportJSON(path string, report compareReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// chartPalette colors one line per strategy.
var chartPalette = []color.Color{
	color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}, // blue
	color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}, // red
	color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}, // green
}

// writeTimingChart plots per-run wall time, one line per strategy.
func writeTimingChart(path string, samples map[string][]runSample) error {
	p := plot.New()
	p.Title.Text = "Search timings"
	p.X.Label.Text = "Run"
	p.Y.Label.Text = "Milliseconds"
	p.Legend.Top = true

	for i, name := range sortedNames(samples) {
		runs := samples[name]
		pts := make(plotter.XYs, len(runs))
		for j, s := range runs {
			pts[j].X = float64(j + 1)
			pts[j].Y = s.Millis
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("chart line for %s: %w", name, err)
		}
		line.Width = vg.Points(1)
		line.Color = chartPalette[i%len(chartPalette)]
		p.Add(line)
		p.Legend.Add(name, line)
	}

	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}

// sortedNames returns the strategy names in deterministic order.
func sortedNames(samples map[string][]runSample) []string {
	names := make([]string, 0, len(samples))
	for name := range samples {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
