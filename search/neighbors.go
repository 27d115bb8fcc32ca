// Neighbor generation for both lattice ranks.
//
// Planar fields use the fixed 8-neighborhood: every unit offset in {-1,0,1}²
// except the zero offset. Volumes advance the designated axis by exactly one
// unit per step — the axis is never skipped, however large the reach — while
// the two lateral coordinates independently range over [−reach, +reach].
// Both generators filter candidates to in-bounds, passable cells.
package search

import (
	"github.com/heatpath/heatpath/grid"
)

// planarOffsets is the 8-connected neighborhood in clockwise order starting
// north. Precomputed once; shared by every planar search.
var planarOffsets = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// neighborGen produces the successor cells of one expansion. Implementations
// append candidate linear indices to buf and return the extended slice, so
// the engine can reuse one scratch buffer across expansions.
type neighborGen interface {
	append(idx int, buf []int) []int
}

// planarNeighbors generates 8-connected successors over a Field.
type planarNeighbors struct {
	f         *grid.Field
	threshold int64
}

// append emits the in-bounds, passable cells adjacent to idx.
func (n *planarNeighbors) append(idx int, buf []int) []int {
	p := n.f.Coordinate(idx)
	var nx, ny, ni int
	for _, d := range planarOffsets {
		nx, ny = p.X+d[0], p.Y+d[1]
		if !n.f.InBounds(nx, ny) {
			continue
		}
		ni = n.f.Index(nx, ny)
		if n.f.Impassable(ni, n.threshold) {
			continue
		}
		buf = append(buf, ni)
	}

	return buf
}

// volumeNeighbors generates forward successors over a Volume: one axis step,
// a lateral offset window around the current position.
type volumeNeighbors struct {
	v         *grid.Volume
	threshold int64
	axis      grid.Axis
	lateral   [][2]int
}

// lateralOffsets precomputes the (2·reach+1)² lateral offset pairs scanned
// on every expansion, in row-scan order for deterministic candidate order.
func lateralOffsets(reach int) [][2]int {
	span := 2*reach + 1
	out := make([][2]int, 0, span*span)
	for db := -reach; db <= reach; db++ {
		for da := -reach; da <= reach; da++ {
			out = append(out, [2]int{da, db})
		}
	}

	return out
}

// append emits the passable cells one axis unit ahead of idx within the
// lateral reach window, clipped to the volume bounds.
func (n *volumeNeighbors) append(idx int, buf []int) []int {
	p := n.v.Coordinate(idx)
	var nx, ny, nt, ni int
	for _, d := range n.lateral {
		switch n.axis {
		case grid.AxisX:
			nx, ny, nt = p.X+1, p.Y+d[0], p.T+d[1]
		case grid.AxisY:
			nx, ny, nt = p.X+d[0], p.Y+1, p.T+d[1]
		default:
			nx, ny, nt = p.X+d[0], p.Y+d[1], p.T+1
		}
		if !n.v.InBounds(nx, ny, nt) {
			continue
		}
		ni = n.v.Index(nx, ny, nt)
		if n.v.Impassable(ni, n.threshold) {
			continue
		}
		buf = append(buf, ni)
	}

	return buf
}
