// Package search implements minimum-cost route finding over byte-cost
// lattices with three strategies: Dijkstra, A*, and (planar only) Fringe.
//
// The engine is one shared expansion loop. It seeds a frontier with every
// start position, repeatedly extracts the minimum-priority node, and relaxes
// its successors under the cell-cost additive model: moving onto a cell
// charges that cell's own cost, and a seed is charged its own cell up front.
// The first extraction that lands in the end set terminates the search —
// extraction order is globally minimum-priority across all seeded lineages,
// so the first goal out is the cost-optimal choice over every (start, end)
// pair.
//
// Complexity:
//
//   - Time:  O(n·k log n)   n = lattice cells, k = successors per expansion
//     (8 planar, (2·reach+1)² volumetric).
//   - Space: O(n) for the best-cost and predecessor tables plus the frontier.
package search

import (
	"fmt"
	"math"

	"github.com/heatpath/heatpath/grid"
)

// costLattice is the read-only lattice surface the engine runs on; both
// *grid.Field and *grid.Volume satisfy it.
type costLattice interface {
	Len() int
	Cost(idx int) byte
	Impassable(idx int, threshold int64) bool
	Coordinate(idx int) grid.Point
	MinCost() byte
}

// FindPath computes the minimum-cost route across a planar field from start
// to end under the configured algorithm (default AStar).
//
// Returns:
//
//   - *Route with positions in start→end order, the total accumulated cost,
//     and the number of expansions performed.
//   - ErrNoPath when the field was exhausted without reaching end, or when
//     either endpoint is impassable under the configured threshold.
//   - A validation sentinel (ErrNilGrid, ErrBadStart, ErrBadEnd,
//     ErrPlanarOption, or a recorded option error) before any search state
//     is allocated.
//
// Preconditions and validation (in order):
//  1. All options must carry valid values (recorded errors surface here).
//  2. f must be non-nil (ErrNilGrid).
//  3. No volumetric-only option may be present (ErrPlanarOption).
//  4. start and end must lie inside the field (ErrBadStart / ErrBadEnd).
func FindPath(f *grid.Field, start, end grid.Point, opts ...Option) (*Route, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate the lattice.
	if f == nil {
		return nil, ErrNilGrid
	}

	// 3) Volumetric-only options have no planar meaning; reject rather than
	//    silently ignore.
	if cfg.volOption != "" {
		return nil, fmt.Errorf("%w: %s", ErrPlanarOption, cfg.volOption)
	}

	// 4) Bounds-check both endpoints before any state is allocated. A planar
	//    position must keep T at zero.
	if start.T != 0 || !f.InBounds(start.X, start.Y) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrBadStart, start.X, start.Y)
	}
	if end.T != 0 || !f.InBounds(end.X, end.Y) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrBadEnd, end.X, end.Y)
	}

	// 5) An impassable endpoint can never appear on a route: the no-path
	//    outcome, not a validation failure.
	si, ei := f.Index(start.X, start.Y), f.Index(end.X, end.Y)
	if f.Impassable(si, cfg.Threshold) || f.Impassable(ei, cfg.Threshold) {
		return nil, ErrNoPath
	}

	// 6) Assemble the per-call engine state.
	gen := &planarNeighbors{f: f, threshold: cfg.Threshold}
	var h heuristic
	if cfg.Algorithm != Dijkstra {
		h = planarHeuristic(f, []grid.Point{end}, f.MinCost())
	}
	r := newRunner(f, gen, h, cfg, []int{si}, []int{ei})

	// 7) Run the selected strategy and reconstruct from the reached goal.
	var goal int
	var err error
	if cfg.Algorithm == Fringe {
		goal, err = r.runFringe()
	} else {
		goal, err = r.run()
	}
	if err != nil {
		return nil, err
	}

	return r.route(goal), nil
}

// FindRoute computes the minimum-cost route through a volume under the
// configured algorithm (default AStar). Every step advances the configured
// axis by exactly one unit and may shift the lateral coordinates by at most
// the configured reach.
//
// Start and end sets come from WithStarts / WithEnds; an empty set defaults
// to every position on the first (respectively last) axis slice, so a plain
// FindRoute(v) routes from the beginning of the volume to its end.
//
// Returns *Route on success; ErrNoPath when the volume was exhausted or an
// endpoint set emptied after dropping impassable positions; a validation
// sentinel (ErrNilGrid, ErrFringeVolume, ErrBadStart, ErrBadEnd, or a
// recorded option error) before any search state is allocated.
func FindRoute(v *grid.Volume, opts ...Option) (*Route, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate the lattice.
	if v == nil {
		return nil, ErrNilGrid
	}

	// 3) Fringe is defined for planar fields only.
	if cfg.Algorithm == Fringe {
		return nil, ErrFringeVolume
	}

	// 4) Default endpoint sets span the full first and last axis slices.
	starts := cfg.Starts
	if len(starts) == 0 {
		starts = axisSlice(v, cfg.Axis, 0)
	}
	ends := cfg.Ends
	if len(ends) == 0 {
		ends = axisSlice(v, cfg.Axis, v.Extent(cfg.Axis)-1)
	}

	// 5) Bounds-check every endpoint before any state is allocated.
	for _, p := range starts {
		if !v.InBounds(p.X, p.Y, p.T) {
			return nil, fmt.Errorf("%w: (%d,%d,%d)", ErrBadStart, p.X, p.Y, p.T)
		}
	}
	for _, p := range ends {
		if !v.InBounds(p.X, p.Y, p.T) {
			return nil, fmt.Errorf("%w: (%d,%d,%d)", ErrBadEnd, p.X, p.Y, p.T)
		}
	}

	// 6) Drop impassable endpoints; an emptied set is the no-path outcome.
	sIdx, _ := passable(v, starts, cfg.Threshold)
	eIdx, ePts := passable(v, ends, cfg.Threshold)
	if len(sIdx) == 0 || len(eIdx) == 0 {
		return nil, ErrNoPath
	}

	// 7) Assemble the per-call engine state.
	gen := &volumeNeighbors{v: v, threshold: cfg.Threshold, axis: cfg.Axis, lateral: lateralOffsets(cfg.Reach)}
	var h heuristic
	if cfg.Algorithm == AStar {
		h = volumeHeuristic(v, ePts, cfg.Axis, cfg.Reach, v.MinCost())
	}
	r := newRunner(v, gen, h, cfg, sIdx, eIdx)

	// 8) Run and reconstruct from the reached goal.
	goal, err := r.run()
	if err != nil {
		return nil, err
	}

	return r.route(goal), nil
}

// axisSlice lists every position whose axis component equals coord, in
// deterministic row-scan order.
func axisSlice(v *grid.Volume, axis grid.Axis, coord int) []grid.Point {
	var pts []grid.Point
	switch axis {
	case grid.AxisX:
		pts = make([]grid.Point, 0, v.Height()*v.Frames())
		for t := 0; t < v.Frames(); t++ {
			for y := 0; y < v.Height(); y++ {
				pts = append(pts, grid.Pt3(coord, y, t))
			}
		}
	case grid.AxisY:
		pts = make([]grid.Point, 0, v.Width()*v.Frames())
		for t := 0; t < v.Frames(); t++ {
			for x := 0; x < v.Width(); x++ {
				pts = append(pts, grid.Pt3(x, coord, t))
			}
		}
	default:
		pts = make([]grid.Point, 0, v.Width()*v.Height())
		for y := 0; y < v.Height(); y++ {
			for x := 0; x < v.Width(); x++ {
				pts = append(pts, grid.Pt3(x, y, coord))
			}
		}
	}

	return pts
}

// passable splits an endpoint list into the linear indices and positions
// that survive the impassability threshold.
func passable(v *grid.Volume, pts []grid.Point, threshold int64) ([]int, []grid.Point) {
	idxs := make([]int, 0, len(pts))
	kept := make([]grid.Point, 0, len(pts))
	for _, p := range pts {
		i := v.Index(p.X, p.Y, p.T)
		if v.Impassable(i, threshold) {
			continue
		}
		idxs = append(idxs, i)
		kept = append(kept, p)
	}

	return idxs, kept
}

// runner holds the mutable state for a single search execution.
type runner struct {
	lat      costLattice     // the input lattice; read-only within a run
	gen      neighborGen     // successor generation rule
	h        heuristic       // nil ⇒ priority = g (Dijkstra)
	opts     Options         // validated configuration
	ends     map[int]struct{} // goal cells by linear index
	g        []int64         // best known accumulated cost per cell
	prev     []int           // predecessor cell per cell, −1 for seeds
	fr       *frontier       // open set
	nbuf     []int           // scratch successor buffer, reused per expansion
	expanded int             // expansions performed so far
}

// newRunner allocates the run-scoped tables, seeds every start with the cost
// of its own cell, and registers the goal set.
func newRunner(lat costLattice, gen neighborGen, h heuristic, cfg Options, starts, ends []int) *runner {
	n := lat.Len()

	// 1) Best-cost table: +∞ everywhere until discovered.
	g := make([]int64, n)
	for i := range g {
		g[i] = math.MaxInt64
	}

	// 2) Predecessor table: −1 marks seeds and undiscovered cells alike.
	prev := make([]int, n)
	for i := range prev {
		prev[i] = -1
	}

	r := &runner{
		lat:  lat,
		gen:  gen,
		h:    h,
		opts: cfg,
		ends: make(map[int]struct{}, len(ends)),
		g:    g,
		prev: prev,
		fr:   newFrontier(len(starts)),
		nbuf: make([]int, 0, 16),
	}
	for _, e := range ends {
		r.ends[e] = struct{}{}
	}

	// 3) Seed the frontier. A seed is charged its own cell cost; duplicate
	//    start positions collapse through the strict-improvement gate.
	for _, s := range starts {
		g0 := int64(lat.Cost(s))
		if g0 < r.g[s] {
			r.g[s] = g0
			r.fr.push(s, g0, r.pri(s, g0))
		}
	}

	return r
}

// pri derives the frontier priority for a cell at accumulated cost gc.
func (r *runner) pri(idx int, gc int64) int64 {
	if r.h == nil {
		return gc
	}

	return gc + r.h(idx)
}

// run is the shared Dijkstra/A* loop. It returns the linear index of the
// goal cell that terminated the search.
//
// Loop termination conditions:
//
//   - A popped position belongs to the end set (success).
//   - The frontier empties (ErrNoPath).
//   - The expansion budget runs out (ErrBudget) or the context is canceled.
func (r *runner) run() (int, error) {
	for !r.fr.empty() {
		// 1) Honor cancellation between expansions.
		select {
		case <-r.opts.Ctx.Done():
			return 0, fmt.Errorf("%w: %w", ErrCanceled, r.opts.Ctx.Err())
		default:
		}

		// 2) Pop the minimum-priority entry; drop it if a better cost was
		//    recorded after it was pushed (lazy-decrease-key).
		item := r.fr.pop()
		if item.g > r.g[item.idx] {
			continue
		}

		// 3) First goal extraction terminates: priorities leave the heap in
		//    non-decreasing order, so no cheaper goal can still be waiting.
		if _, ok := r.ends[item.idx]; ok {
			return item.idx, nil
		}

		// 4) Enforce the optional expansion budget.
		if r.opts.MaxExpansions > 0 && r.expanded >= r.opts.MaxExpansions {
			return 0, ErrBudget
		}
		r.expanded++

		// 5) Relax every successor.
		r.relax(item)
	}

	return 0, ErrNoPath
}

// relax offers item's accumulated cost plus each successor's own cell cost
// to that successor, recording and re-queueing every strict improvement.
func (r *runner) relax(item *frontierItem) {
	r.nbuf = r.gen.append(item.idx, r.nbuf[:0])
	var ng int64
	for _, ni := range r.nbuf {
		ng = item.g + int64(r.lat.Cost(ni))
		if ng >= r.g[ni] {
			continue
		}
		r.g[ni] = ng
		r.prev[ni] = item.idx
		r.fr.push(ni, ng, r.pri(ni, ng))
	}
}

// route assembles the result for the goal cell that terminated the run.
func (r *runner) route(goal int) *Route {
	return &Route{
		Points:   reconstruct(r.lat, r.prev, goal),
		Cost:     r.g[goal],
		Expanded: r.expanded,
	}
}
