package crucible

// frontierItem is a queued state with the cost it was queued at (g) and
// its priority f = g + h.
type frontierItem struct {
	state State
	g     int64
	f     int64
}

// frontier is a min-heap of frontierItem ordered by f, then by larger g
// (deeper entries first among equal estimates). It tolerates several entries
// for the same state; entries whose g exceeds the best-known cost are
// discarded by the caller on pop.
type frontier []frontierItem

// Len returns the number of items in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by f ascending, breaking ties toward larger g.
func (pq frontier) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].g > pq[j].g
}

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap. Called by heap.Push; x must be a frontierItem.
func (pq *frontier) Push(x any) { *pq = append(*pq, x.(frontierItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *frontier) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
