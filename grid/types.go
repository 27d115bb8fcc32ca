// Package grid defines the position type, axis selectors, and sentinel
// errors shared by the planar and volumetric cost lattices.
package grid

import (
	"errors"
)

// Sentinel errors for lattice construction and access.
var (
	// ErrEmpty indicates a zero extent or missing cell data.
	ErrEmpty = errors.New("grid: extents must be positive and cells non-empty")
	// ErrSize indicates cell data whose length disagrees with the extents.
	ErrSize = errors.New("grid: cell data length does not match extents")
	// ErrRagged indicates rows or stacked fields of differing shapes.
	ErrRagged = errors.New("grid: rows must share one length and fields one shape")
	// ErrBounds indicates a position outside the declared extents.
	ErrBounds = errors.New("grid: position out of bounds")
)

// Axis selects one dimension of a Volume: X (columns), Y (rows), or T (frames).
type Axis int

const (
	// AxisX addresses the horizontal (column) dimension.
	AxisX Axis = iota
	// AxisY addresses the vertical (row) dimension.
	AxisY
	// AxisT addresses the frame (time) dimension.
	AxisT
)

// Point is an integer position inside a Field or Volume.
// Planar positions leave T at zero; volumetric positions use all three components.
type Point struct {
	X, Y, T int
}

// Pt returns a planar position (x, y).
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Pt3 returns a volumetric position (x, y, t).
func Pt3(x, y, t int) Point { return Point{X: x, Y: y, T: t} }

// Coord returns the component of p addressed by axis.
func (p Point) Coord(axis Axis) int {
	switch axis {
	case AxisX:
		return p.X
	case AxisY:
		return p.Y
	default:
		return p.T
	}
}
