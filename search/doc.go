// Package search finds minimum-cost routes through byte-cost lattices: a
// planar walk across a grid.Field, or a forward drift through a grid.Volume
// one frame at a time.
//
// What:
//
//   - FindPath: planar 8-connected routing between two positions.
//   - FindRoute: volumetric routing in which every step advances a chosen
//     axis by exactly one unit while the lateral coordinates shift by at
//     most a configurable reach; start and end sets default to the full
//     first and last axis slices.
//   - Three strategies behind one loop: Dijkstra (priority = g),
//     A* (priority = g + h, consistent heuristic), and Fringe (two-list
//     threshold sweeps, planar only).
//   - Cell-cost additive model: entering a cell charges that cell's own
//     cost, and a route's total is the sum over all its positions, the
//     start included.
//
// Why:
//
//   - Trace the darkest corridor through an image-derived cost map.
//   - Follow an object drifting across a frame sequence with bounded
//     per-frame motion.
//   - Compare expansion strategies on identical inputs: all three report
//     the same optimal cost.
//
// Complexity:
//
//   - Time:  O(n·k log n), n = cells, k = successors per expansion
//     (8 planar, (2·reach+1)² volumetric); Fringe drops the log factor in
//     exchange for threshold re-sweeps.
//   - Space: O(n) best-cost and predecessor tables plus the open set.
//
// Options:
//
//   - WithAlgorithm: Dijkstra, AStar (default), or Fringe.
//   - WithThreshold: cost value at or above which cells leave the graph.
//   - WithReach / WithAxis / WithStarts / WithEnds: volumetric shape of a
//     step and the endpoint sets.
//   - WithMaxExpansions / WithContext: latency bounds for hostile inputs.
//
// Errors:
//
//   - ErrNoPath: exhaustive completion without reaching any end — an
//     outcome to test with errors.Is, not a failure.
//   - ErrNilGrid, ErrBadStart, ErrBadEnd, ErrBadAlgorithm, ErrBadReach,
//     ErrBadAxis, ErrBadThreshold, ErrPlanarOption, ErrFringeVolume,
//     ErrOption: validation failures surfaced before any search state is
//     allocated.
//   - ErrBudget, ErrCanceled: a configured bound tripped mid-run.
//
// Every invocation owns its run state, so independent searches may share
// one Field or Volume concurrently without locking.
package search
