package dijkstra

import "github.com/katalvlaran/lvroute/core"

// noTrace marks a heap entry that carries no predecessor chain.
const noTrace int32 = -1

// entry is a pending search state: a node reached with an accumulated cost.
// seq is the push sequence number and breaks cost ties deterministically
// (earlier pushes pop first). trace indexes the history arena, or noTrace.
type entry struct {
	node  core.NodeIndex
	cost  uint64
	seq   uint64
	trace int32
}

// entryPQ is a binary min-heap of entries ordered by (cost, seq).
// Stale entries are left in place ("lazy decrease-key") and skipped on pop.
type entryPQ []entry

// Len returns the number of entries in the heap.
func (pq entryPQ) Len() int { return len(pq) }

// Less orders by cost, then by push sequence.
func (pq entryPQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two entries.
func (pq entryPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be an entry.
func (pq *entryPQ) Push(x any) { *pq = append(*pq, x.(entry)) }

// Pop is called by heap.Pop and removes the last element.
func (pq *entryPQ) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
