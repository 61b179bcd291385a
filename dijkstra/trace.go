package dijkstra

import (
	"slices"

	"github.com/katalvlaran/lvroute/core"
)

// step is one relaxation recorded in the history arena: the node reached,
// the arena index of the entry it was reached from (noTrace for the source)
// and the segment of the arc traversed.
type step struct {
	node    core.NodeIndex
	prev    int32
	segment core.SegmentID
}

// history is a flat arena of steps. Predecessor links are arena indices, so
// the back-chain is a plain slice with no pointer graph to walk or free.
// It grows by one step per push.
type history []step

// record appends a step and returns its index.
func (h *history) record(node core.NodeIndex, prev int32, seg core.SegmentID) int32 {
	*h = append(*h, step{node: node, prev: prev, segment: seg})
	return int32(len(*h) - 1)
}

// reconstruct walks the chain ending at idx back to the source and returns
// the segment names (consecutive repeats collapsed) and external node ids,
// both in source→target order.
func (h history) reconstruct(g *core.Graph, idx int32) ([]string, []core.NodeID) {
	var names []string
	var nodes []core.NodeID
	for i := idx; i != noTrace; i = h[i].prev {
		s := h[i]
		nodes = append(nodes, g.NodeAt(s.node).ID)
		if s.prev == noTrace {
			break // source: no arc was traversed to reach it
		}
		name, ok := g.SegmentName(s.segment)
		if !ok {
			name = UnknownSegment
		}
		if n := len(names); n > 0 && names[n-1] == name {
			continue
		}
		names = append(names, name)
	}
	slices.Reverse(names)
	slices.Reverse(nodes)

	return names, nodes
}
