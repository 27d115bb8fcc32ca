package search

import (
	"github.com/heatpath/heatpath/grid"
)

// reconstruct walks the predecessor relation backward from the goal cell to
// a seed (predecessor −1), then reverses the walk into start→end order and
// converts the linear indices back to positions. The predecessor table is
// algorithm-agnostic, so one reconstruction serves every strategy.
func reconstruct(lat costLattice, prev []int, goal int) []grid.Point {
	// Collect the route goal-first.
	idxs := make([]int, 0, 16)
	for cur := goal; cur != -1; cur = prev[cur] {
		idxs = append(idxs, cur)
	}

	// Reverse to get start → end.
	for i, j := 0, len(idxs)-1; i < j; i, j = i+1, j-1 {
		idxs[i], idxs[j] = idxs[j], idxs[i]
	}

	pts := make([]grid.Point, len(idxs))
	for i, idx := range idxs {
		pts[i] = lat.Coordinate(idx)
	}

	return pts
}
