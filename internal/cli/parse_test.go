package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heatpath/heatpath/grid"
)

func TestParseXY(t *testing.T) {
	cases := []struct {
		in   string
		want grid.Point
		ok   bool
	}{
		{"3,4", grid.Pt(3, 4), true},
		{"0,0", grid.Pt(0, 0), true},
		{" 12 , 7 ", grid.Pt(12, 7), true},
		{"3", grid.Point{}, false},
		{"3,4,5", grid.Point{}, false},
		{"a,b", grid.Point{}, false},
		{"3,", grid.Point{}, false},
		{"", grid.Point{}, false},
	}
	for _, tc := range cases {
		got, err := parseXY(tc.in)
		if !tc.ok {
			assert.Error(t, err, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestParseAxis(t *testing.T) {
	cases := []struct {
		in   string
		want grid.Axis
		ok   bool
	}{
		{"x", grid.AxisX, true},
		{"X", grid.AxisX, true},
		{"0", grid.AxisX, true},
		{"y", grid.AxisY, true},
		{"1", grid.AxisY, true},
		{"t", grid.AxisT, true},
		{"T", grid.AxisT, true},
		{"time", grid.AxisT, true},
		{"2", grid.AxisT, true},
		{"z", 0, false},
		{"3", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := parseAxis(tc.in)
		if !tc.ok {
			assert.Error(t, err, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}
