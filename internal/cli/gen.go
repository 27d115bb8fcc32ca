package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heatpath/heatpath/fieldgen"
	"github.com/heatpath/heatpath/grid"
	"github.com/heatpath/heatpath/heatmap"
)

// genOpts holds the command-line flags for the gen command.
type genOpts struct {
	kind   string
	width  int
	height int
	frames int
	seed   int64
	radius int
	inner  uint8
	edge   uint8
	bg     uint8
	blob   uint8
	out    string
}

// newGenCmd creates the gen command, which writes synthetic cost fields so
// the search commands have something to chew on without real sensor data.
//
// border and random produce a single PNG; drift and volume produce a frame
// directory suitable for the route command.
func newGenCmd() *cobra.Command {
	var opts genOpts

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate synthetic cost fields and frame sequences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGen(cmd, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.kind, "kind", "drift", "field kind: border, random, drift or volume")
	cmd.Flags().IntVar(&opts.width, "width", 100, "field width in cells")
	cmd.Flags().IntVar(&opts.height, "height", 100, "field height in cells")
	cmd.Flags().IntVar(&opts.frames, "frames", 10, "frame count (drift, volume)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 42, "random seed (random, volume)")
	cmd.Flags().IntVar(&opts.radius, "radius", 3, "blob radius in cells (drift)")
	cmd.Flags().Uint8Var(&opts.inner, "inner", 10, "interior cell cost (border)")
	cmd.Flags().Uint8Var(&opts.edge, "edge", 200, "rim cell cost (border)")
	cmd.Flags().Uint8Var(&opts.bg, "bg", 255, "background cell cost (drift)")
	cmd.Flags().Uint8Var(&opts.blob, "blob", 1, "blob cell cost (drift)")
	cmd.Flags().StringVar(&opts.out, "out", "", `output file or directory (default "field.png" or "frames")`)

	return cmd
}

// runGen builds the requested field and writes it out. The output path is
// printed on stdout so shells can feed it straight into path or route.
func runGen(cmd *cobra.Command, opts *genOpts) error {
	logger := loggerFromContext(cmd.Context())

	switch opts.kind {
	case "border", "random":
		out := opts.out
		if out == "" {
			out = "field.png"
		}
		var (
			field *grid.Field
			err   error
		)
		if opts.kind == "border" {
			field, err = fieldgen.Border(opts.width, opts.height, opts.inner, opts.edge)
		} else {
			field, err = fieldgen.Random(opts.width, opts.height, opts.seed)
		}
		if err != nil {
			return err
		}
		if err := heatmap.EncodeFile(out, field); err != nil {
			return err
		}
		logger.Infof("Wrote %d×%d %s field to %s", field.Width(), field.Height(), opts.kind, out)
		fmt.Fprintln(cmd.OutOrStdout(), out)

	case "drift", "volume":
		out := opts.out
		if out == "" {
			out = "frames"
		}
		var (
			volume *grid.Volume
			err    error
		)
		if opts.kind == "drift" {
			volume, err = fieldgen.Drift(opts.width, opts.height, opts.frames, opts.radius, opts.bg, opts.blob)
		} else {
			volume, err = fieldgen.RandomVolume(opts.width, opts.height, opts.frames, opts.seed)
		}
		if err != nil {
			return err
		}
		paths, err := heatmap.WriteFrames(out, volume)
		if err != nil {
			return err
		}
		logger.Infof("Wrote %d %s frames to %s", len(paths), opts.kind, out)
		fmt.Fprintln(cmd.OutOrStdout(), out)

	default:
		return fmt.Errorf("gen: unknown kind %q (want border, random, drift or volume)", opts.kind)
	}

	return nil
}
