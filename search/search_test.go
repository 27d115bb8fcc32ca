// Package search_test contains unit tests for planar route finding. These
// tests cover input validation, the cell-cost additive model, threshold
// carving, deterministic tie-breaking, budget and cancellation bounds, and
// the documented no-path outcome.
package search_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/heatpath/heatpath/grid"
	"github.com/heatpath/heatpath/search"
)

// mustField builds a Field from rows or fails the test.
func mustField(t *testing.T, rows [][]byte) *grid.Field {
	t.Helper()
	f, err := grid.FieldFromRows(rows)
	if err != nil {
		t.Fatalf("FieldFromRows: %v", err)
	}

	return f
}

// randField builds a w×h field with costs uniform in [1,255].
func randField(t *testing.T, rng *rand.Rand, w, h int) *grid.Field {
	t.Helper()
	cells := make([]byte, w*h)
	for i := range cells {
		cells[i] = byte(1 + rng.Intn(255))
	}
	f, err := grid.NewField(w, h, cells)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}

	return f
}

// sumCosts sums the cell costs under every route position.
func sumCosts(t *testing.T, f *grid.Field, pts []grid.Point) int64 {
	t.Helper()
	var total int64
	for _, p := range pts {
		c, err := f.At(p.X, p.Y)
		if err != nil {
			t.Fatalf("route position (%d,%d) out of bounds: %v", p.X, p.Y, err)
		}
		total += int64(c)
	}

	return total
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestFindPath_NilField(t *testing.T) {
	_, err := search.FindPath(nil, grid.Pt(0, 0), grid.Pt(1, 1))
	if !errors.Is(err, search.ErrNilGrid) {
		t.Fatalf("Expected ErrNilGrid, got %v", err)
	}
}

func TestFindPath_StartOutOfBounds(t *testing.T) {
	f := mustField(t, [][]byte{{1, 1}, {1, 1}})
	_, err := search.FindPath(f, grid.Pt(-1, 0), grid.Pt(1, 1))
	if !errors.Is(err, search.ErrBadStart) {
		t.Fatalf("Expected ErrBadStart, got %v", err)
	}

	// A planar position must keep T at zero.
	_, err = search.FindPath(f, grid.Pt3(0, 0, 1), grid.Pt(1, 1))
	if !errors.Is(err, search.ErrBadStart) {
		t.Fatalf("Expected ErrBadStart for T≠0, got %v", err)
	}
}

func TestFindPath_EndOutOfBounds(t *testing.T) {
	f := mustField(t, [][]byte{{1, 1}, {1, 1}})
	_, err := search.FindPath(f, grid.Pt(0, 0), grid.Pt(2, 0))
	if !errors.Is(err, search.ErrBadEnd) {
		t.Fatalf("Expected ErrBadEnd, got %v", err)
	}
}

func TestFindPath_BadAlgorithmOption(t *testing.T) {
	f := mustField(t, [][]byte{{1, 1}, {1, 1}})
	_, err := search.FindPath(f, grid.Pt(0, 0), grid.Pt(1, 1), search.WithAlgorithm(search.Algorithm(9)))
	if !errors.Is(err, search.ErrBadAlgorithm) {
		t.Fatalf("Expected ErrBadAlgorithm, got %v", err)
	}
}

func TestFindPath_BadThresholdOption(t *testing.T) {
	f := mustField(t, [][]byte{{1, 1}, {1, 1}})
	_, err := search.FindPath(f, grid.Pt(0, 0), grid.Pt(1, 1), search.WithThreshold(0))
	if !errors.Is(err, search.ErrBadThreshold) {
		t.Fatalf("Expected ErrBadThreshold, got %v", err)
	}
}

func TestFindPath_NegativeBudgetOption(t *testing.T) {
	f := mustField(t, [][]byte{{1, 1}, {1, 1}})
	_, err := search.FindPath(f, grid.Pt(0, 0), grid.Pt(1, 1), search.WithMaxExpansions(-1))
	if !errors.Is(err, search.ErrOption) {
		t.Fatalf("Expected ErrOption, got %v", err)
	}
}

func TestFindPath_RejectsVolumetricOptions(t *testing.T) {
	f := mustField(t, [][]byte{{1, 1}, {1, 1}})
	for name, opt := range map[string]search.Option{
		"reach":  search.WithReach(2),
		"axis":   search.WithAxis(grid.AxisX),
		"starts": search.WithStarts(grid.Pt(0, 0)),
		"ends":   search.WithEnds(grid.Pt(1, 1)),
	} {
		_, err := search.FindPath(f, grid.Pt(0, 0), grid.Pt(1, 1), opt)
		if !errors.Is(err, search.ErrPlanarOption) {
			t.Fatalf("Expected ErrPlanarOption for %s, got %v", name, err)
		}
	}
}

func TestParseAlgorithm(t *testing.T) {
	for name, want := range map[string]search.Algorithm{
		"dijkstra": search.Dijkstra,
		"ASTAR":    search.AStar,
		" Fringe ": search.Fringe,
	} {
		got, err := search.ParseAlgorithm(name)
		if err != nil {
			t.Fatalf("ParseAlgorithm(%q): %v", name, err)
		}
		if got != want {
			t.Fatalf("ParseAlgorithm(%q) = %v, want %v", name, got, want)
		}
	}

	if _, err := search.ParseAlgorithm("bellman-ford"); !errors.Is(err, search.ErrBadAlgorithm) {
		t.Fatalf("Expected ErrBadAlgorithm, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Cost Model Tests: seeds, additive steps, and route totals.
// ------------------------------------------------------------------------

// TestFindPath_AvoidsExpensiveCenter routes around a prohibitive center
// cell. Every crossing of the middle column costs at least 50, so the
// optimum is 10+10+50+10 = 80 over four cells, never touching 200.
func TestFindPath_AvoidsExpensiveCenter(t *testing.T) {
	f := mustField(t, [][]byte{
		{10, 50, 10},
		{10, 200, 10},
		{10, 50, 10},
	})

	route, err := search.FindPath(f, grid.Pt(0, 0), grid.Pt(2, 2), search.WithAlgorithm(search.AStar))
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}
	if route.Cost != 80 {
		t.Fatalf("Expected cost 80, got %d (route %v)", route.Cost, route.Points)
	}
	if len(route.Points) != 4 {
		t.Fatalf("Expected a 4-cell route, got %d cells", len(route.Points))
	}
	for _, p := range route.Points {
		if p == grid.Pt(1, 1) {
			t.Fatalf("Route must avoid the 200-cost center, got %v", route.Points)
		}
	}
	if got := sumCosts(t, f, route.Points); got != route.Cost {
		t.Fatalf("Route cost %d does not match per-cell sum %d", route.Cost, got)
	}
}

// TestFindPath_ClearedBorder follows a 10-cost corridor around a 200-cost
// interior: row 0, column 9 and row 9 are cleared. The optimum takes one
// diagonal shortcut onto the column, 18 cells at cost 10 each.
func TestFindPath_ClearedBorder(t *testing.T) {
	rows := make([][]byte, 10)
	for y := range rows {
		rows[y] = make([]byte, 10)
		for x := range rows[y] {
			switch {
			case y == 0 || y == 9 || x == 9:
				rows[y][x] = 10
			default:
				rows[y][x] = 200
			}
		}
	}
	f := mustField(t, rows)

	for _, algo := range []search.Algorithm{search.Dijkstra, search.AStar, search.Fringe} {
		route, err := search.FindPath(f, grid.Pt(0, 0), grid.Pt(9, 9), search.WithAlgorithm(algo))
		if err != nil {
			t.Fatalf("%v: %v", algo, err)
		}
		if route.Cost != 10*int64(len(route.Points)) {
			t.Fatalf("%v: cost %d is not 10 × route length %d", algo, route.Cost, len(route.Points))
		}
		if route.Cost != 180 {
			t.Fatalf("%v: expected cost 180, got %d", algo, route.Cost)
		}
		for _, p := range route.Points {
			c, _ := f.At(p.X, p.Y)
			if c != 10 {
				t.Fatalf("%v: route left the cleared border at (%d,%d)", algo, p.X, p.Y)
			}
		}
	}
}

// TestFindPath_TrivialStartEqualsEnd yields a one-element route charged the
// cell's own cost without a single expansion.
func TestFindPath_TrivialStartEqualsEnd(t *testing.T) {
	f := mustField(t, [][]byte{{3, 7}, {9, 42}})

	for _, algo := range []search.Algorithm{search.Dijkstra, search.AStar, search.Fringe} {
		route, err := search.FindPath(f, grid.Pt(1, 1), grid.Pt(1, 1), search.WithAlgorithm(algo))
		if err != nil {
			t.Fatalf("%v: %v", algo, err)
		}
		if len(route.Points) != 1 || route.Points[0] != grid.Pt(1, 1) {
			t.Fatalf("%v: expected the single position (1,1), got %v", algo, route.Points)
		}
		if route.Cost != 42 {
			t.Fatalf("%v: expected cost 42 (the cell's own cost), got %d", algo, route.Cost)
		}
		if route.Expanded != 0 {
			t.Fatalf("%v: expected zero expansions, got %d", algo, route.Expanded)
		}
	}
}

// TestFindPath_SumPropertyRandom checks on seeded random fields that the
// reported total always equals the per-cell sum of the returned positions.
func TestFindPath_SumPropertyRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	f := randField(t, rng, 20, 20)

	for _, algo := range []search.Algorithm{search.Dijkstra, search.AStar, search.Fringe} {
		route, err := search.FindPath(f, grid.Pt(0, 0), grid.Pt(19, 19), search.WithAlgorithm(algo))
		if err != nil {
			t.Fatalf("%v: %v", algo, err)
		}
		if got := sumCosts(t, f, route.Points); got != route.Cost {
			t.Fatalf("%v: cost %d does not match per-cell sum %d", algo, route.Cost, got)
		}
	}
}

// ------------------------------------------------------------------------
// 3. Threshold Tests: impassable cells leave the graph.
// ------------------------------------------------------------------------

// TestFindPath_ThresholdCarvesWall makes an otherwise optimal crossing
// illegal. Without a threshold the straight crossing of the 30-cost wall
// wins (cost 50); with threshold 25 the route detours through the gap at
// x=4 (nine 10-cost cells, cost 90).
func TestFindPath_ThresholdCarvesWall(t *testing.T) {
	f := mustField(t, [][]byte{
		{10, 10, 10, 10, 10},
		{30, 30, 30, 30, 10},
		{10, 10, 10, 10, 10},
	})

	unrestricted, err := search.FindPath(f, grid.Pt(0, 0), grid.Pt(0, 2))
	if err != nil {
		t.Fatalf("unrestricted: %v", err)
	}
	if unrestricted.Cost != 50 {
		t.Fatalf("Expected the wall crossing at cost 50, got %d", unrestricted.Cost)
	}

	fenced, err := search.FindPath(f, grid.Pt(0, 0), grid.Pt(0, 2), search.WithThreshold(25))
	if err != nil {
		t.Fatalf("fenced: %v", err)
	}
	if fenced.Cost != 90 {
		t.Fatalf("Expected the detour at cost 90, got %d (route %v)", fenced.Cost, fenced.Points)
	}
	for _, p := range fenced.Points {
		c, _ := f.At(p.X, p.Y)
		if int64(c) >= 25 {
			t.Fatalf("Route crossed an impassable cell at (%d,%d)", p.X, p.Y)
		}
	}
}

// TestFindPath_ImpassableEndpointIsNoPath treats impassable endpoints as
// the no-path outcome, not a validation failure.
func TestFindPath_ImpassableEndpointIsNoPath(t *testing.T) {
	f := mustField(t, [][]byte{{200, 10}, {10, 10}})

	_, err := search.FindPath(f, grid.Pt(0, 0), grid.Pt(1, 1), search.WithThreshold(100))
	if !errors.Is(err, search.ErrNoPath) {
		t.Fatalf("Expected ErrNoPath for impassable start, got %v", err)
	}

	_, err = search.FindPath(f, grid.Pt(1, 1), grid.Pt(0, 0), search.WithThreshold(100))
	if !errors.Is(err, search.ErrNoPath) {
		t.Fatalf("Expected ErrNoPath for impassable end, got %v", err)
	}
}

// TestFindPath_FullySeparated exhausts the frontier against an impassable
// column for every algorithm: the documented outcome, never an error panic.
func TestFindPath_FullySeparated(t *testing.T) {
	f := mustField(t, [][]byte{
		{10, 200, 10},
		{10, 200, 10},
		{10, 200, 10},
	})

	for _, algo := range []search.Algorithm{search.Dijkstra, search.AStar, search.Fringe} {
		_, err := search.FindPath(f, grid.Pt(0, 1), grid.Pt(2, 1),
			search.WithAlgorithm(algo), search.WithThreshold(150))
		if !errors.Is(err, search.ErrNoPath) {
			t.Fatalf("%v: expected ErrNoPath, got %v", algo, err)
		}
	}
}

// TestFindPath_AllCellsImpassable covers the fully blocked field.
func TestFindPath_AllCellsImpassable(t *testing.T) {
	f := mustField(t, [][]byte{{200, 200}, {200, 200}})

	for _, algo := range []search.Algorithm{search.Dijkstra, search.AStar, search.Fringe} {
		_, err := search.FindPath(f, grid.Pt(0, 0), grid.Pt(1, 1),
			search.WithAlgorithm(algo), search.WithThreshold(100))
		if !errors.Is(err, search.ErrNoPath) {
			t.Fatalf("%v: expected ErrNoPath, got %v", algo, err)
		}
	}
}

// ------------------------------------------------------------------------
// 4. Optimality and Determinism Tests.
// ------------------------------------------------------------------------

// TestFindPath_DijkstraMatchesAStar runs both strategies over seeded random
// fields; with non-negative costs and a consistent heuristic both must
// report the identical optimal total, whatever routes they pick.
func TestFindPath_DijkstraMatchesAStar(t *testing.T) {
	for _, seed := range []int64{42, 1337} {
		rng := rand.New(rand.NewSource(seed))
		f := randField(t, rng, 50, 50)

		dij, err := search.FindPath(f, grid.Pt(0, 0), grid.Pt(49, 49), search.WithAlgorithm(search.Dijkstra))
		if err != nil {
			t.Fatalf("seed %d dijkstra: %v", seed, err)
		}
		ast, err := search.FindPath(f, grid.Pt(0, 0), grid.Pt(49, 49), search.WithAlgorithm(search.AStar))
		if err != nil {
			t.Fatalf("seed %d astar: %v", seed, err)
		}
		if dij.Cost != ast.Cost {
			t.Fatalf("seed %d: dijkstra cost %d ≠ astar cost %d", seed, dij.Cost, ast.Cost)
		}
	}
}

// TestFindPath_Deterministic reruns a tie-rich uniform field; the stable
// (priority, insertion) ordering must reproduce the identical route.
func TestFindPath_Deterministic(t *testing.T) {
	rows := make([][]byte, 7)
	for y := range rows {
		rows[y] = []byte{5, 5, 5, 5, 5, 5, 5}
	}
	f := mustField(t, rows)

	for _, algo := range []search.Algorithm{search.Dijkstra, search.AStar} {
		first, err := search.FindPath(f, grid.Pt(0, 0), grid.Pt(6, 6), search.WithAlgorithm(algo))
		if err != nil {
			t.Fatalf("%v: %v", algo, err)
		}
		if first.Cost != 35 || len(first.Points) != 7 {
			t.Fatalf("%v: expected the 7-cell diagonal at cost 35, got %d cells at %d", algo, len(first.Points), first.Cost)
		}

		second, err := search.FindPath(f, grid.Pt(0, 0), grid.Pt(6, 6), search.WithAlgorithm(algo))
		if err != nil {
			t.Fatalf("%v rerun: %v", algo, err)
		}
		if len(first.Points) != len(second.Points) {
			t.Fatalf("%v: rerun changed route length: %d vs %d", algo, len(first.Points), len(second.Points))
		}
		for i := range first.Points {
			if first.Points[i] != second.Points[i] {
				t.Fatalf("%v: rerun diverged at step %d: %v vs %v", algo, i, first.Points[i], second.Points[i])
			}
		}
	}
}

// ------------------------------------------------------------------------
// 5. Bounded-Latency Tests: budget and cancellation.
// ------------------------------------------------------------------------

func TestFindPath_ExpansionBudget(t *testing.T) {
	rows := make([][]byte, 20)
	for y := range rows {
		rows[y] = make([]byte, 20)
		for x := range rows[y] {
			rows[y][x] = 1
		}
	}
	f := mustField(t, rows)

	// Three expansions cannot reach the opposite corner of a 20×20 field.
	_, err := search.FindPath(f, grid.Pt(0, 0), grid.Pt(19, 19), search.WithMaxExpansions(3))
	if !errors.Is(err, search.ErrBudget) {
		t.Fatalf("Expected ErrBudget, got %v", err)
	}

	// Zero is the explicit "no cap".
	route, err := search.FindPath(f, grid.Pt(0, 0), grid.Pt(19, 19), search.WithMaxExpansions(0))
	if err != nil {
		t.Fatalf("Uncapped run failed: %v", err)
	}
	if route.Cost != 20 {
		t.Fatalf("Expected the 20-cell diagonal at cost 20, got %d", route.Cost)
	}
}

func TestFindPath_ContextCanceled(t *testing.T) {
	f := mustField(t, [][]byte{{1, 1}, {1, 1}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := search.FindPath(f, grid.Pt(0, 0), grid.Pt(1, 1), search.WithContext(ctx))
	if !errors.Is(err, search.ErrCanceled) {
		t.Fatalf("Expected ErrCanceled, got %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected the context cause to be wrapped, got %v", err)
	}
}
