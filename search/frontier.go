// Frontier implementation: a binary min-heap over (priority, insertion
// sequence) with the lazy-decrease-key discipline. Cost improvements push a
// fresh entry; stale entries are recognized on extraction by comparing their
// g against the best known g and are dropped without expansion.
package search

import (
	"container/heap"
)

// frontierItem is one open-set entry: a cell's linear index, the accumulated
// cost it was pushed with, its heap priority (g for Dijkstra, g+h for A*),
// and the insertion sequence number that keeps equal priorities stable.
type frontierItem struct {
	idx int
	g   int64
	pri int64
	seq uint64
}

// nodeHeap is a min-heap of *frontierItem ordered by ascending priority;
// entries with equal priority pop in insertion order, so two runs over
// identical inputs extract identical sequences.
type nodeHeap []*frontierItem

// Len returns the number of items in the heap.
func (h nodeHeap) Len() int { return len(h) }

// Less defines the comparison: smaller priority first, earlier insertion
// breaking ties.
func (h nodeHeap) Less(i, j int) bool {
	if h[i].pri != h[j].pri {
		return h[i].pri < h[j].pri
	}

	return h[i].seq < h[j].seq
}

// Swap swaps two elements in the heap.
func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *frontierItem.
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(*frontierItem)) }

// Pop removes and returns the last element from the heap's slice.
// Called by heap.Pop; returns interface{} that must be cast to *frontierItem.
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// frontier wraps nodeHeap with the monotone sequence counter that implements
// the stable tie-break.
type frontier struct {
	heap nodeHeap
	seq  uint64
}

// newFrontier returns an initialized frontier with room for capacity entries.
func newFrontier(capacity int) *frontier {
	f := &frontier{heap: make(nodeHeap, 0, capacity)}
	heap.Init(&f.heap)

	return f
}

// push inserts a cell with its accumulated cost and priority.
func (f *frontier) push(idx int, g, pri int64) {
	f.seq++
	heap.Push(&f.heap, &frontierItem{idx: idx, g: g, pri: pri, seq: f.seq})
}

// pop extracts the minimum-priority entry. Callers must check it for
// staleness against the best known g before expanding.
func (f *frontier) pop() *frontierItem {
	return heap.Pop(&f.heap).(*frontierItem)
}

// empty reports whether the open set is exhausted.
func (f *frontier) empty() bool { return len(f.heap) == 0 }
