package search_test

import (
	"math/rand"
	"testing"

	"github.com/heatpath/heatpath/grid"
	"github.com/heatpath/heatpath/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uniformVolume builds a width×height×frames volume with every cell at cost.
func uniformVolume(t *testing.T, w, h, frames int, cost byte) *grid.Volume {
	t.Helper()
	cells := make([]byte, w*h*frames)
	for i := range cells {
		cells[i] = cost
	}
	v, err := grid.NewVolume(w, h, frames, cells)
	require.NoError(t, err)

	return v
}

// randVolume builds a volume with costs uniform in [1,255].
func randVolume(t *testing.T, rng *rand.Rand, w, h, frames int) *grid.Volume {
	t.Helper()
	cells := make([]byte, w*h*frames)
	for i := range cells {
		cells[i] = byte(1 + rng.Intn(255))
	}
	v, err := grid.NewVolume(w, h, frames, cells)
	require.NoError(t, err)

	return v
}

// TestFindRoute_Validation exercises the fail-fast paths: nil volume,
// invalid options, out-of-bounds endpoints, and the Fringe restriction.
func TestFindRoute_Validation(t *testing.T) {
	_, err := search.FindRoute(nil)
	assert.ErrorIs(t, err, search.ErrNilGrid, "nil volume must error ErrNilGrid")

	v := uniformVolume(t, 2, 2, 2, 1)

	_, err = search.FindRoute(v, search.WithReach(-1))
	assert.ErrorIs(t, err, search.ErrBadReach, "negative reach must error ErrBadReach")

	_, err = search.FindRoute(v, search.WithAxis(grid.Axis(7)))
	assert.ErrorIs(t, err, search.ErrBadAxis, "axis 7 must error ErrBadAxis")

	_, err = search.FindRoute(v, search.WithAlgorithm(search.Fringe))
	assert.ErrorIs(t, err, search.ErrFringeVolume, "fringe is planar-only")

	_, err = search.FindRoute(v, search.WithStarts(grid.Pt3(0, 0, 5)))
	assert.ErrorIs(t, err, search.ErrBadStart, "start beyond the frame range must error ErrBadStart")

	_, err = search.FindRoute(v, search.WithEnds(grid.Pt3(2, 0, 1)))
	assert.ErrorIs(t, err, search.ErrBadEnd, "end beyond the width must error ErrBadEnd")
}

// TestFindRoute_AxisSequence routes a 100×100×10 volume with reach 2 end to
// end: the returned axis coordinates must be exactly 0,1,...,9.
func TestFindRoute_AxisSequence(t *testing.T) {
	v := uniformVolume(t, 100, 100, 10, 1)

	route, err := search.FindRoute(v, search.WithReach(2))
	require.NoError(t, err)
	require.Len(t, route.Points, 10, "one position per frame")

	for i, p := range route.Points {
		assert.Equal(t, i, p.T, "axis coordinate at step %d", i)
	}
	assert.Equal(t, int64(10), route.Cost, "ten unit-cost cells")
}

// TestFindRoute_StrictAxisAndReach asserts the step shape on a random
// volume: the axis advances by exactly one unit and the lateral offsets
// never exceed the configured reach.
func TestFindRoute_StrictAxisAndReach(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	v := randVolume(t, rng, 8, 8, 6)
	const reach = 2

	route, err := search.FindRoute(v, search.WithReach(reach))
	require.NoError(t, err)
	require.NotEmpty(t, route.Points)

	for i := 1; i < len(route.Points); i++ {
		prev, cur := route.Points[i-1], route.Points[i]
		assert.Equal(t, prev.T+1, cur.T, "axis must advance by exactly one at step %d", i)
		assert.LessOrEqual(t, abs(cur.X-prev.X), reach, "lateral X drift at step %d", i)
		assert.LessOrEqual(t, abs(cur.Y-prev.Y), reach, "lateral Y drift at step %d", i)
	}
}

// TestFindRoute_ReachZeroPinsLateral verifies that reach 0 freezes the
// non-axis coordinates across the whole route.
func TestFindRoute_ReachZeroPinsLateral(t *testing.T) {
	v := uniformVolume(t, 4, 4, 5, 1)

	route, err := search.FindRoute(v, search.WithReach(0), search.WithStarts(grid.Pt3(2, 1, 0)))
	require.NoError(t, err)
	require.Len(t, route.Points, 5)

	for i, p := range route.Points {
		assert.Equal(t, 2, p.X, "X must stay pinned at step %d", i)
		assert.Equal(t, 1, p.Y, "Y must stay pinned at step %d", i)
		assert.Equal(t, i, p.T)
	}
	assert.Equal(t, int64(5), route.Cost)
}

// TestFindRoute_ReachZeroUnreachable: with reach 0 a laterally displaced
// end can never be reached; the volume is exhausted into the no-path
// outcome.
func TestFindRoute_ReachZeroUnreachable(t *testing.T) {
	v := uniformVolume(t, 3, 3, 3, 1)

	_, err := search.FindRoute(v,
		search.WithReach(0),
		search.WithStarts(grid.Pt3(0, 0, 0)),
		search.WithEnds(grid.Pt3(2, 2, 2)))
	assert.ErrorIs(t, err, search.ErrNoPath)
}

// TestFindRoute_FollowsDriftingCorridor lays a unit-cost corridor that
// shifts one column right per frame inside a 100-cost volume. The optimum
// is unique, so the exact route is asserted, for both strategies.
func TestFindRoute_FollowsDriftingCorridor(t *testing.T) {
	const w, h, frames = 3, 3, 3
	cells := make([]byte, w*h*frames)
	for i := range cells {
		cells[i] = 100
	}
	for tt := 0; tt < frames; tt++ {
		cells[(tt*h+1)*w+tt] = 1 // corridor cell (t, 1, t)
	}
	v, err := grid.NewVolume(w, h, frames, cells)
	require.NoError(t, err)

	want := []grid.Point{grid.Pt3(0, 1, 0), grid.Pt3(1, 1, 1), grid.Pt3(2, 1, 2)}
	for _, algo := range []search.Algorithm{search.Dijkstra, search.AStar} {
		route, err := search.FindRoute(v, search.WithAlgorithm(algo))
		require.NoError(t, err, "%v", algo)
		assert.Equal(t, want, route.Points, "%v must follow the corridor", algo)
		assert.Equal(t, int64(3), route.Cost, "%v", algo)
	}
}

// TestFindRoute_ExplicitEndpoints pins both sets to single positions.
func TestFindRoute_ExplicitEndpoints(t *testing.T) {
	v := uniformVolume(t, 2, 2, 3, 1)

	route, err := search.FindRoute(v,
		search.WithStarts(grid.Pt3(0, 0, 0)),
		search.WithEnds(grid.Pt3(1, 1, 2)))
	require.NoError(t, err)
	require.Len(t, route.Points, 3)
	assert.Equal(t, grid.Pt3(0, 0, 0), route.Points[0])
	assert.Equal(t, grid.Pt3(1, 1, 2), route.Points[2])
	assert.Equal(t, int64(3), route.Cost)
}

// TestFindRoute_AlternateAxes drives the forward constraint along X and Y
// instead of T; the whole lateral machinery swaps dimensions with it.
func TestFindRoute_AlternateAxes(t *testing.T) {
	v := uniformVolume(t, 4, 3, 2, 1)

	route, err := search.FindRoute(v, search.WithAxis(grid.AxisX))
	require.NoError(t, err)
	require.Len(t, route.Points, 4, "one position per column")
	for i, p := range route.Points {
		assert.Equal(t, i, p.X, "X sequence at step %d", i)
	}

	route, err = search.FindRoute(v, search.WithAxis(grid.AxisY))
	require.NoError(t, err)
	require.Len(t, route.Points, 3, "one position per row")
	for i, p := range route.Points {
		assert.Equal(t, i, p.Y, "Y sequence at step %d", i)
	}
}

// TestFindRoute_ImpassableFirstSlice empties the default start set through
// the threshold: the no-path outcome, not a validation error.
func TestFindRoute_ImpassableFirstSlice(t *testing.T) {
	cells := []byte{
		200, 200, 200, 200, // frame 0
		1, 1, 1, 1, // frame 1
	}
	v, err := grid.NewVolume(2, 2, 2, cells)
	require.NoError(t, err)

	_, err = search.FindRoute(v, search.WithThreshold(100))
	assert.ErrorIs(t, err, search.ErrNoPath)
}

// TestFindRoute_DijkstraMatchesAStar compares totals over a seeded random
// volume under default endpoint sets.
func TestFindRoute_DijkstraMatchesAStar(t *testing.T) {
	rng := rand.New(rand.NewSource(4242))
	v := randVolume(t, rng, 12, 12, 6)

	dij, err := search.FindRoute(v, search.WithAlgorithm(search.Dijkstra))
	require.NoError(t, err)
	ast, err := search.FindRoute(v, search.WithAlgorithm(search.AStar))
	require.NoError(t, err)

	assert.Equal(t, dij.Cost, ast.Cost, "both strategies must report the optimal total")
}

// TestFindRoute_SumProperty checks the per-cell sum against the reported
// total on a random volume.
func TestFindRoute_SumProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	v := randVolume(t, rng, 10, 10, 5)

	route, err := search.FindRoute(v, search.WithReach(2))
	require.NoError(t, err)

	var total int64
	for _, p := range route.Points {
		c, err := v.At(p.X, p.Y, p.T)
		require.NoError(t, err)
		total += int64(c)
	}
	assert.Equal(t, route.Cost, total)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
