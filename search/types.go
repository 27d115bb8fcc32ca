// Package search defines the parameter surface and sentinel errors for
// minimum-cost route searches over grid.Field and grid.Volume lattices.
//
// A search is configured through functional options applied to one Options
// value built at call entry. Invalid option values are recorded internally
// and surfaced when the search entry point runs, never as panics.
package search

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/heatpath/heatpath/grid"
)

// Sentinel errors returned by the search entry points.
var (
	// ErrNilGrid indicates a nil *grid.Field or *grid.Volume was passed.
	ErrNilGrid = errors.New("search: cost lattice is nil")

	// ErrBadAlgorithm indicates an algorithm selector outside
	// {Dijkstra, AStar, Fringe} or an unrecognized algorithm name.
	ErrBadAlgorithm = errors.New("search: unrecognized algorithm")

	// ErrBadReach indicates a negative lateral reach.
	ErrBadReach = errors.New("search: reach must be non-negative")

	// ErrBadAxis indicates an axis that addresses no volume dimension.
	ErrBadAxis = errors.New("search: axis must be AxisX, AxisY or AxisT")

	// ErrBadThreshold indicates a non-positive impassable threshold, which
	// would exclude every cell (including zero-cost cells) from the graph.
	ErrBadThreshold = errors.New("search: impassable threshold must be positive")

	// ErrBadStart indicates a start position outside the lattice extents.
	ErrBadStart = errors.New("search: start position out of bounds")

	// ErrBadEnd indicates an end position outside the lattice extents.
	ErrBadEnd = errors.New("search: end position out of bounds")

	// ErrPlanarOption indicates a volumetric-only option (reach, axis, or an
	// endpoint set) supplied to a planar search.
	ErrPlanarOption = errors.New("search: option applies to volume searches only")

	// ErrFringeVolume indicates Fringe was requested for a volume; the
	// two-list sweep is defined for planar fields only.
	ErrFringeVolume = errors.New("search: fringe supports planar fields only")

	// ErrNoPath is the no-route outcome: the search completed exhaustively
	// without reaching any end position. It reports an outcome, not a
	// failure; callers are expected to test for it with errors.Is.
	ErrNoPath = errors.New("search: no route between the start and end sets")

	// ErrBudget indicates the node-expansion budget was exhausted before any
	// end position was reached.
	ErrBudget = errors.New("search: expansion budget exhausted")

	// ErrCanceled indicates the search context was canceled mid-run.
	ErrCanceled = errors.New("search: canceled")

	// ErrOption is returned when an invalid Option is supplied.
	ErrOption = errors.New("search: invalid option supplied")
)

// Algorithm selects the expansion strategy. It is a closed set: every engine
// decision branches on this value exactly once, at call entry.
type Algorithm int

const (
	// Dijkstra orders the frontier by accumulated cost g alone.
	Dijkstra Algorithm = iota
	// AStar orders the frontier by g plus a consistent remaining-cost estimate.
	AStar
	// Fringe sweeps two node lists against a rising f threshold instead of
	// keeping a sorted frontier. Planar fields only.
	Fringe
)

// String returns the lower-case selector name used by ParseAlgorithm.
func (a Algorithm) String() string {
	switch a {
	case Dijkstra:
		return "dijkstra"
	case AStar:
		return "astar"
	case Fringe:
		return "fringe"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a selector name to an Algorithm, case-insensitively.
// Accepted names: "dijkstra", "astar", "fringe".
// Returns ErrBadAlgorithm for anything else.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dijkstra":
		return Dijkstra, nil
	case "astar":
		return AStar, nil
	case "fringe":
		return Fringe, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadAlgorithm, name)
	}
}

// Options configures one search invocation.
//
// Algorithm     – expansion strategy (default AStar).
// Threshold     – cells with cost ≥ Threshold are excluded from the graph.
//
//	Must be > 0. Default is math.MaxInt64 (no obstacles).
//
// Reach         – volumetric lateral window: non-axis coordinates may move
//
//	by any offset in [−Reach, +Reach] per step. Must be ≥ 0. Default 1.
//
// Axis          – volumetric forward dimension; every step advances it by
//
//	exactly one unit. Default grid.AxisT.
//
// Starts, Ends  – volumetric endpoint sets. Empty sets default to every
//
//	position on the first (respectively last) axis slice.
//
// MaxExpansions – optional cap on node expansions; 0 disables the cap.
// Ctx           – cancellation context checked during the run.
type Options struct {
	Algorithm     Algorithm
	Threshold     int64
	Reach         int
	Axis          grid.Axis
	Starts        []grid.Point
	Ends          []grid.Point
	MaxExpansions int
	Ctx           context.Context

	// volOption names the first volumetric-only option applied, so planar
	// entry points can reject it with context.
	volOption string
	// err records the first invalid option value for surfacing at run time.
	err error
}

// Option represents a functional option for configuring a search.
// Invalid values are recorded and surfaced as wrapped ErrOption (or the
// matching sentinel) when the search entry point runs.
type Option func(*Options)

// DefaultOptions returns the Options every search starts from:
//   - Algorithm:     AStar
//   - Threshold:     math.MaxInt64 (no cells treated as impassable)
//   - Reach:         1
//   - Axis:          grid.AxisT
//   - Starts, Ends:  empty (volumetric defaults apply)
//   - MaxExpansions: 0 (no cap)
//   - Ctx:           context.Background()
func DefaultOptions() Options {
	return Options{
		Algorithm:     AStar,
		Threshold:     math.MaxInt64,
		Reach:         1,
		Axis:          grid.AxisT,
		MaxExpansions: 0,
		Ctx:           context.Background(),
	}
}

// WithAlgorithm selects the expansion strategy.
// Values outside {Dijkstra, AStar, Fringe} record ErrBadAlgorithm.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		switch a {
		case Dijkstra, AStar, Fringe:
			o.Algorithm = a
		default:
			o.err = fmt.Errorf("%w: %d", ErrBadAlgorithm, int(a))
		}
	}
}

// WithThreshold excludes cells with cost ≥ threshold from the graph.
// Must be positive; zero or negative records ErrBadThreshold.
// Default (if not set) is math.MaxInt64 (no obstacles).
func WithThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadThreshold, threshold)

			return
		}
		o.Threshold = threshold
	}
}

// WithReach bounds per-step lateral movement in the non-axis dimensions of a
// volume search. Must be non-negative; negative values record ErrBadReach.
// Reach 0 pins the lateral coordinates for the whole route.
func WithReach(reach int) Option {
	return func(o *Options) {
		o.volOption = "reach"
		if reach < 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadReach, reach)

			return
		}
		o.Reach = reach
	}
}

// WithAxis designates the volume dimension that must advance by exactly one
// unit per step. Values outside {AxisX, AxisY, AxisT} record ErrBadAxis.
func WithAxis(axis grid.Axis) Option {
	return func(o *Options) {
		o.volOption = "axis"
		switch axis {
		case grid.AxisX, grid.AxisY, grid.AxisT:
			o.Axis = axis
		default:
			o.err = fmt.Errorf("%w: %d", ErrBadAxis, int(axis))
		}
	}
}

// WithStarts supplies explicit volumetric start positions, replacing the
// default first-axis-slice seeding. Calling it with no positions keeps the
// default.
func WithStarts(starts ...grid.Point) Option {
	return func(o *Options) {
		o.volOption = "starts"
		if len(starts) > 0 {
			o.Starts = starts
		}
	}
}

// WithEnds supplies explicit volumetric end positions, replacing the default
// last-axis-slice goal set. Calling it with no positions keeps the default.
func WithEnds(ends ...grid.Point) Option {
	return func(o *Options) {
		o.volOption = "ends"
		if len(ends) > 0 {
			o.Ends = ends
		}
	}
}

// WithMaxExpansions caps the number of node expansions before the search
// gives up with ErrBudget, bounding worst-case latency on hostile inputs.
//
//	n > 0:  expand at most n nodes
//	n == 0: explicit no cap
//	n < 0:  invalid option → ErrOption
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOption, n)

			return
		}
		o.MaxExpansions = n
	}
}

// WithContext sets a custom context for cancellation and deadlines.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Route is a found minimum-cost traversal.
//
// Points holds the visited positions in start→end order; Cost is the sum of
// the cell costs of every position on the route, the seed cell included;
// Expanded counts node expansions the search performed before terminating.
type Route struct {
	Points   []grid.Point
	Cost     int64
	Expanded int
}
