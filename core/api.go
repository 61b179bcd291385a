// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only accessors of the compacted Graph.
// Policy:
//   - No mutation exists after Build; every method is safe for concurrent use.
//   - Unknown ids and out-of-range indices report absence, never panic.

package core

// Node resolves an external id to its node record.
// Complexity: O(1).
func (g *Graph) Node(id NodeID) (Node, bool) {
	i, ok := g.index[id]
	if !ok {
		return Node{}, false
	}
	return g.nodes[i], true
}

// Index resolves an external id to its dense index.
// Complexity: O(1).
func (g *Graph) Index(id NodeID) (NodeIndex, bool) {
	i, ok := g.index[id]
	if !ok {
		return InvalidIndex, false
	}
	return i, true
}

// NodeAt returns the node stored at dense index i.
// The zero Node is returned for an out-of-range index.
func (g *Graph) NodeAt(i NodeIndex) Node {
	if !g.valid(i) {
		return Node{}
	}
	return g.nodes[i]
}

// ForwardArcs returns the outgoing arcs of the node at dense index i, in
// insertion order. The slice aliases graph storage and must not be modified.
// An out-of-range index yields nil.
// Complexity: O(1).
func (g *Graph) ForwardArcs(i NodeIndex) []Arc[NodeIndex] {
	if !g.valid(i) {
		return nil
	}
	return g.arcs[g.firstOut[i]:g.firstOut[i+1]:g.firstOut[i+1]]
}

// ForwardArcsOf is ForwardArcs addressed by external id.
func (g *Graph) ForwardArcsOf(id NodeID) []Arc[NodeIndex] {
	i, ok := g.index[id]
	if !ok {
		return nil
	}
	return g.ForwardArcs(i)
}

// SegmentName returns the display name registered for a segment. Segments
// never registered, or registered without a name, report absence.
func (g *Graph) SegmentName(id SegmentID) (string, bool) {
	name, ok := g.segments[id]
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// NodeCount is the number of retained nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// ArcCount is the total number of arcs across all adjacency lists;
// parallel and anti-parallel arcs each count.
func (g *Graph) ArcCount() int { return len(g.arcs) }

// Stats returns the summary recorded at Build time.
func (g *Graph) Stats() GraphStats { return g.stats }

func (g *Graph) valid(i NodeIndex) bool {
	return i >= 0 && int(i) < len(g.nodes)
}
