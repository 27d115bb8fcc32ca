// Fringe search: a two-list variant of A* that trades the sorted frontier
// for repeated sweeps over an unsorted one.
//
// The current list is processed as a stack. Nodes whose f = g + h exceeds
// the sweep threshold are deferred to the next list while the minimum
// deferred f is tracked; when the current list drains, the lists swap and
// the threshold rises to that minimum. Improvements re-enter the current
// list immediately, so a node may be expanded again after its g drops —
// the same strict-improvement discipline the heap engine uses, which is
// what keeps the looser expansion order optimal. A goal is accepted when
// popped within the threshold: the threshold starts at the seeds' smallest
// f and only ever rises to the smallest deferred f, so it can never jump
// past the optimal cost.
package search

import (
	"fmt"
	"math"
)

// fringeNode is one list entry: a cell and the accumulated cost it was
// appended with. Stale entries (g above the best known) are dropped when
// popped, exactly like stale heap entries.
type fringeNode struct {
	idx int
	g   int64
}

// runFringe executes the two-list sweep. It requires a heuristic (always
// built for planar Fringe runs) and returns the goal cell index, ErrNoPath
// when both lists drain, or ErrBudget / a cancellation error.
func (r *runner) runFringe() (int, error) {
	// 1) Seed the current list from the already-seeded cost table and open
	//    the threshold at the cheapest seed estimate.
	now := make([]fringeNode, 0, 64)
	later := make([]fringeNode, 0, 64)
	limit := int64(math.MaxInt64)
	for !r.fr.empty() {
		i := r.fr.pop()
		now = append(now, fringeNode{idx: i.idx, g: i.g})
		if i.pri < limit {
			limit = i.pri
		}
	}

	var f int64
	for len(now) > 0 {
		// 2) Sweep the current list; collect the next threshold from what
		//    gets deferred.
		nextLimit := int64(math.MaxInt64)
		for len(now) > 0 {
			select {
			case <-r.opts.Ctx.Done():
				return 0, fmt.Errorf("%w: %w", ErrCanceled, r.opts.Ctx.Err())
			default:
			}

			n := now[len(now)-1]
			now = now[:len(now)-1]

			// 3) Drop entries superseded by a later improvement.
			if n.g > r.g[n.idx] {
				continue
			}

			// 4) Defer nodes beyond the threshold to the next sweep.
			f = n.g + r.h(n.idx)
			if f > limit {
				if f < nextLimit {
					nextLimit = f
				}
				later = append(later, n)

				continue
			}

			// 5) A goal within the threshold carries the optimal cost.
			if _, ok := r.ends[n.idx]; ok {
				return n.idx, nil
			}

			// 6) Enforce the optional expansion budget.
			if r.opts.MaxExpansions > 0 && r.expanded >= r.opts.MaxExpansions {
				return 0, ErrBudget
			}
			r.expanded++

			// 7) Expand: strict improvements re-enter the current sweep.
			r.nbuf = r.gen.append(n.idx, r.nbuf[:0])
			var ng int64
			for _, ni := range r.nbuf {
				ng = n.g + int64(r.lat.Cost(ni))
				if ng >= r.g[ni] {
					continue
				}
				r.g[ni] = ng
				r.prev[ni] = n.idx
				now = append(now, fringeNode{idx: ni, g: ng})
			}
		}

		// 8) Swap lists and raise the threshold to the cheapest deferral.
		if len(later) == 0 {
			break
		}
		now, later = later, now[:0]
		limit = nextLimit
	}

	return 0, ErrNoPath
}
