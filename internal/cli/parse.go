package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heatpath/heatpath/grid"
)

// parseXY parses a planar coordinate of the form "x,y" (e.g. "12,34").
func parseXY(s string) (grid.Point, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 2 {
		return grid.Point{}, fmt.Errorf("invalid coordinate %q: want \"x,y\"", s)
	}

	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return grid.Point{}, fmt.Errorf("invalid coordinate %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return grid.Point{}, fmt.Errorf("invalid coordinate %q: %w", s, err)
	}

	return grid.Pt(x, y), nil
}

// parseAxis maps the axis spellings accepted on the command line — "x", "y",
// "t" or their numeric forms 0, 1, 2 — onto a grid.Axis.
func parseAxis(s string) (grid.Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x", "0":
		return grid.AxisX, nil
	case "y", "1":
		return grid.AxisY, nil
	case "t", "2", "time":
		return grid.AxisT, nil
	default:
		return 0, fmt.Errorf("invalid axis %q: want x, y or t", s)
	}
}

// Flag/config resolution: an explicitly set flag beats the config file,
// which beats the built-in default already stored in the flag value.

func resolveString(cmd *cobra.Command, flag, flagVal, cfgVal string) string {
	if !cmd.Flags().Changed(flag) && cfgVal != "" {
		return cfgVal
	}

	return flagVal
}

func resolveInt(cmd *cobra.Command, flag string, flagVal, cfgVal int) int {
	if !cmd.Flags().Changed(flag) && cfgVal != 0 {
		return cfgVal
	}

	return flagVal
}

func resolveInt64(cmd *cobra.Command, flag string, flagVal, cfgVal int64) int64 {
	if !cmd.Flags().Changed(flag) && cfgVal != 0 {
		return cfgVal
	}

	return flagVal
}
