// Package grid implements the Field and Volume cost lattices on top of one
// shared row-major storage core, so bounds logic and indexing exist once.
package grid

import (
	"fmt"
)

// lattice is the storage core behind Field and Volume: extents, row-major
// cells, and the precomputed minimum cell cost used by search heuristics.
// Depth is 1 for planar fields.
type lattice struct {
	w, h, d int
	cells   []byte
	min     byte
}

// newLattice validates the extents against the supplied cells and deep-copies
// them so later mutation of the caller's slice cannot leak in.
func newLattice(w, h, d int, cells []byte) (lattice, error) {
	if w <= 0 || h <= 0 || d <= 0 || len(cells) == 0 {
		return lattice{}, ErrEmpty
	}
	if len(cells) != w*h*d {
		return lattice{}, fmt.Errorf("%w: have %d cells, want %d×%d×%d=%d", ErrSize, len(cells), w, h, d, w*h*d)
	}
	// Deep copy to prevent external mutation.
	cp := make([]byte, len(cells))
	copy(cp, cells)
	// The cheapest cell is scanned once here; heuristics scale remaining step
	// counts by it on every expansion.
	minCost := cp[0]
	for _, c := range cp[1:] {
		if c < minCost {
			minCost = c
		}
	}

	return lattice{w: w, h: h, d: d, cells: cp, min: minCost}, nil
}

// index maps (x,y,t) to a row-major index: (t*h+y)*w + x. Complexity: O(1).
func (l *lattice) index(x, y, t int) int {
	return (t*l.h+y)*l.w + x
}

// coordinate converts a row-major index back to (x,y,t). Complexity: O(1).
func (l *lattice) coordinate(idx int) (x, y, t int) {
	x = idx % l.w
	idx /= l.w

	return x, idx % l.h, idx / l.h
}

// inBounds reports whether (x,y,t) lies within the extents. Complexity: O(1).
func (l *lattice) inBounds(x, y, t int) bool {
	return x >= 0 && x < l.w && y >= 0 && y < l.h && t >= 0 && t < l.d
}

// Field is a planar byte-cost grid, width×height, immutable once built.
// Cells are stored row-major: index = y*Width + x.
type Field struct {
	lat lattice
}

// NewField constructs a Field from row-major cells (height rows of width
// bytes each). The data is deep-copied to ensure immutability.
// Returns ErrEmpty for non-positive extents or no data,
// ErrSize when len(cells) != width*height.
// Complexity: O(W×H) time and memory.
func NewField(width, height int, cells []byte) (*Field, error) {
	lat, err := newLattice(width, height, 1, cells)
	if err != nil {
		return nil, err
	}

	return &Field{lat: lat}, nil
}

// FieldFromRows constructs a Field from a non-empty, rectangular [][]byte,
// rows[0] being the y=0 row. Returns ErrEmpty if there are no rows or no
// columns, ErrRagged if any row length differs.
func FieldFromRows(rows [][]byte) (*Field, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}
	h, w := len(rows), len(rows[0])
	cells := make([]byte, 0, w*h)
	for _, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row of %d cells, want %d", ErrRagged, len(row), w)
		}
		cells = append(cells, row...)
	}

	return NewField(w, h, cells)
}

// Width returns the horizontal extent.
func (f *Field) Width() int { return f.lat.w }

// Height returns the vertical extent.
func (f *Field) Height() int { return f.lat.h }

// Len returns the total number of cells (Width×Height).
func (f *Field) Len() int { return len(f.lat.cells) }

// InBounds reports whether (x,y) lies within the field. Complexity: O(1).
func (f *Field) InBounds(x, y int) bool {
	return f.lat.inBounds(x, y, 0)
}

// At returns the cost stored at (x,y), or ErrBounds when the position lies
// outside the field.
func (f *Field) At(x, y int) (byte, error) {
	if !f.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrBounds, x, y)
	}

	return f.lat.cells[f.lat.index(x, y, 0)], nil
}

// Cost returns the cost at a valid row-major index produced by Index.
// The index is not re-checked; this is the hot-path accessor for searches.
func (f *Field) Cost(idx int) byte { return f.lat.cells[idx] }

// Impassable reports whether the cell at idx is excluded by threshold:
// true iff its cost is at or above it.
func (f *Field) Impassable(idx int, threshold int64) bool {
	return int64(f.lat.cells[idx]) >= threshold
}

// Index maps (x,y) to a row-major index: y*Width + x. Complexity: O(1).
func (f *Field) Index(x, y int) int { return f.lat.index(x, y, 0) }

// Coordinate converts a row-major index back to a position. Complexity: O(1).
func (f *Field) Coordinate(idx int) Point {
	x, y, _ := f.lat.coordinate(idx)

	return Pt(x, y)
}

// MinCost returns the smallest cell cost in the field, precomputed at build time.
func (f *Field) MinCost() byte { return f.lat.min }

// Volume is a temporal byte-cost lattice: frames of height×width cells,
// frames ordered by ascending T, immutable once built.
// Cells are stored frame-major: index = (t*Height + y)*Width + x.
type Volume struct {
	lat lattice
}

// NewVolume constructs a Volume from frame-major cells: frames blocks of
// height×width bytes each, the T=0 frame first. The data is deep-copied.
// Returns ErrEmpty for non-positive extents or no data,
// ErrSize when len(cells) != width*height*frames.
// Complexity: O(W×H×F) time and memory.
func NewVolume(width, height, frames int, cells []byte) (*Volume, error) {
	lat, err := newLattice(width, height, frames, cells)
	if err != nil {
		return nil, err
	}

	return &Volume{lat: lat}, nil
}

// VolumeFromFields stacks equally shaped fields into a Volume, fields[0]
// becoming the T=0 frame. Returns ErrEmpty when no fields are given (or one
// is nil), ErrRagged when shapes differ.
func VolumeFromFields(fields []*Field) (*Volume, error) {
	if len(fields) == 0 || fields[0] == nil {
		return nil, ErrEmpty
	}
	w, h := fields[0].Width(), fields[0].Height()
	cells := make([]byte, 0, w*h*len(fields))
	for _, f := range fields {
		if f == nil {
			return nil, ErrEmpty
		}
		if f.Width() != w || f.Height() != h {
			return nil, fmt.Errorf("%w: field %d×%d, want %d×%d", ErrRagged, f.Width(), f.Height(), w, h)
		}
		cells = append(cells, f.lat.cells...)
	}

	return NewVolume(w, h, len(fields), cells)
}

// Width returns the horizontal extent of every frame.
func (v *Volume) Width() int { return v.lat.w }

// Height returns the vertical extent of every frame.
func (v *Volume) Height() int { return v.lat.h }

// Frames returns the number of stacked frames (the T extent).
func (v *Volume) Frames() int { return v.lat.d }

// Len returns the total number of cells (Width×Height×Frames).
func (v *Volume) Len() int { return len(v.lat.cells) }

// Extent returns the length of the dimension addressed by axis.
func (v *Volume) Extent(axis Axis) int {
	switch axis {
	case AxisX:
		return v.lat.w
	case AxisY:
		return v.lat.h
	default:
		return v.lat.d
	}
}

// InBounds reports whether (x,y,t) lies within the volume. Complexity: O(1).
func (v *Volume) InBounds(x, y, t int) bool {
	return v.lat.inBounds(x, y, t)
}

// At returns the cost stored at (x,y,t), or ErrBounds when the position lies
// outside the volume.
func (v *Volume) At(x, y, t int) (byte, error) {
	if !v.lat.inBounds(x, y, t) {
		return 0, fmt.Errorf("%w: (%d,%d,%d)", ErrBounds, x, y, t)
	}

	return v.lat.cells[v.lat.index(x, y, t)], nil
}

// Cost returns the cost at a valid row-major index produced by Index.
// The index is not re-checked; this is the hot-path accessor for searches.
func (v *Volume) Cost(idx int) byte { return v.lat.cells[idx] }

// Impassable reports whether the cell at idx is excluded by threshold:
// true iff its cost is at or above it.
func (v *Volume) Impassable(idx int, threshold int64) bool {
	return int64(v.lat.cells[idx]) >= threshold
}

// Index maps (x,y,t) to a row-major index: (t*Height+y)*Width + x.
// Complexity: O(1).
func (v *Volume) Index(x, y, t int) int { return v.lat.index(x, y, t) }

// Coordinate converts a row-major index back to a position. Complexity: O(1).
func (v *Volume) Coordinate(idx int) Point {
	x, y, t := v.lat.coordinate(idx)

	return Pt3(x, y, t)
}

// MinCost returns the smallest cell cost in the volume, precomputed at build time.
func (v *Volume) MinCost() byte { return v.lat.min }
