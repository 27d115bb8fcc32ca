// Remaining-cost estimates for A* and Fringe.
//
// Every estimate is a lower bound built the same way: a floor on the number
// of steps still needed to reach the nearest end, scaled by the smallest
// cell cost in the lattice. Moving onto any cell charges at least that
// minimum, and one move shrinks the step floor by at most one, so the
// estimates never overestimate and stay consistent.
package search

import (
	"math"
	"sort"

	"github.com/heatpath/heatpath/grid"
)

// hUnreachable is the estimate assigned when no end can be reached from a
// position anymore (volumetric searches only: every end lies behind the
// forward axis). Large enough to sink such nodes below every live candidate,
// small enough that g + hUnreachable cannot overflow.
const hUnreachable int64 = math.MaxInt32

// heuristic estimates the remaining cost from a cell to the nearest end.
// A nil heuristic means priority = g (Dijkstra).
type heuristic func(idx int) int64

// planarHeuristic builds the Field estimate: Chebyshev distance to the
// nearest end — diagonal and axial moves both span a single step — scaled by
// the smallest cell cost.
func planarHeuristic(f *grid.Field, ends []grid.Point, minCost byte) heuristic {
	m := int64(minCost)

	return func(idx int) int64 {
		p := f.Coordinate(idx)
		best := int64(math.MaxInt64)
		var d int64
		for _, e := range ends {
			d = chebyshev(p.X-e.X, p.Y-e.Y) * m
			if d < best {
				best = d
			}
		}

		return best
	}
}

// endSlice is the lateral bounding box of the ends sharing one axis
// coordinate. The reach cone is checked against the box, not each end.
type endSlice struct {
	coord      int
	aMin, aMax int
	bMin, bMax int
}

// volumeHeuristic builds the Volume estimate. The axis advances by exactly
// one unit per step, so reaching an end slice k units ahead takes exactly k
// steps and each lateral coordinate can close at most reach·k cells in that
// time. Ends behind the current axis coordinate, and end slices whose
// bounding box lies outside that reach cone, can never be reached; the
// nearest feasible slice sets the step count. Ends are aggregated per axis
// coordinate, so the estimate scans a handful of boxes rather than a
// (possibly slice-sized) end set.
func volumeHeuristic(v *grid.Volume, ends []grid.Point, axis grid.Axis, reach int, minCost byte) heuristic {
	boxes := make(map[int]*endSlice, 8)
	for _, e := range ends {
		c := e.Coord(axis)
		a, b := lateralPair(e, axis)
		box, ok := boxes[c]
		if !ok {
			boxes[c] = &endSlice{coord: c, aMin: a, aMax: a, bMin: b, bMax: b}
			continue
		}
		box.aMin, box.aMax = min(box.aMin, a), max(box.aMax, a)
		box.bMin, box.bMax = min(box.bMin, b), max(box.bMax, b)
	}
	slices := make([]*endSlice, 0, len(boxes))
	for _, box := range boxes {
		slices = append(slices, box)
	}
	sort.Slice(slices, func(i, j int) bool { return slices[i].coord < slices[j].coord })
	m := int64(minCost)

	return func(idx int) int64 {
		p := v.Coordinate(idx)
		c := p.Coord(axis)
		a, b := lateralPair(p, axis)
		// First end slice at or ahead of the current axis coordinate.
		i := sort.Search(len(slices), func(i int) bool { return slices[i].coord >= c })
		for ; i < len(slices); i++ {
			steps := slices[i].coord - c
			if gap(a, slices[i].aMin, slices[i].aMax) <= reach*steps &&
				gap(b, slices[i].bMin, slices[i].bMax) <= reach*steps {
				return int64(steps) * m
			}
		}

		return hUnreachable
	}
}

// lateralPair projects a position onto the two non-axis dimensions.
func lateralPair(p grid.Point, axis grid.Axis) (int, int) {
	switch axis {
	case grid.AxisX:
		return p.Y, p.T
	case grid.AxisY:
		return p.X, p.T
	default:
		return p.X, p.Y
	}
}

// gap returns the distance from x to the closed interval [lo, hi]; zero when
// x lies inside.
func gap(x, lo, hi int) int {
	if x < lo {
		return lo - x
	}
	if x > hi {
		return x - hi
	}

	return 0
}

// chebyshev returns max(|dx|, |dy|): the minimum number of 8-connected steps
// spanning the offset.
func chebyshev(dx, dy int) int64 {
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return int64(dx)
	}

	return int64(dy)
}
