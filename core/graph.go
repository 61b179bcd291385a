// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: One-time compaction of a Builder into the immutable, dense-index Graph.
// Determinism:
//   - Dense indices follow ascending external id; arcs keep insertion order per source.
// Concurrency:
//   - Graph is never mutated after Build; all readers are lock-free.

package core

import (
	"fmt"
	"slices"
)

// Graph is the compacted, read-only road network.
//
// nodes[i] is the node with dense index i, index maps external ids back to
// dense indices, and adjacency is CSR: the arcs of node i are
// arcs[firstOut[i]:firstOut[i+1]], every Head already a dense index.
type Graph struct {
	nodes    []Node
	index    map[NodeID]NodeIndex
	firstOut []int32
	arcs     []Arc[NodeIndex]
	segments map[SegmentID]string
	stats    GraphStats
}

// GraphStats summarises a Build.
type GraphStats struct {
	Nodes        int `json:"nodes"`
	Arcs         int `json:"arcs"`
	Segments     int `json:"segments"`
	DroppedNodes int `json:"dropped_nodes"` // inserted but not retained
	SkippedArcs  int `json:"skipped_arcs"`  // dangling arcs dropped under DanglingSkip
}

// Build consumes the builder and compacts its content into a Graph.
//
// Implementation:
//   - Stage 1: Resolve every arc endpoint against the node table, applying the dangling policy.
//   - Stage 2: Select retained nodes (arc endpoints with tracking, all nodes without).
//   - Stage 3: Assign dense indices in ascending id order.
//   - Stage 4: Count out-degrees, prefix-sum into firstOut, scatter arcs with resolved heads.
//
// The builder is consumed whether or not Build succeeds.
//
// Errors:
//   - ErrBuilderConsumed on a second call.
//   - ErrDanglingArc (wrapped with both ids) under DanglingFail.
//   - ErrTooManyNodes when the retained set exceeds the int32 index range.
//
// Complexity:
//   - Time O(V log V + A), Space O(V + A).
func (b *Builder) Build() (*Graph, error) {
	if b.consumed {
		return nil, ErrBuilderConsumed
	}
	defer b.release()

	// Stage 1: walk sources in ascending id order so the reported dangling arc is stable.
	sources := make([]NodeID, 0, len(b.adjacency))
	for src := range b.adjacency {
		sources = append(sources, src)
	}
	slices.Sort(sources)

	var skipped int
	var used map[NodeID]struct{}
	if b.trackUsage {
		used = make(map[NodeID]struct{}, len(b.usedNodes))
	}
	for _, src := range sources {
		kept := b.adjacency[src][:0]
		for _, a := range b.adjacency[src] {
			if !b.resolvable(src, a.Head) {
				if b.dangling == DanglingFail {
					return nil, fmt.Errorf("core: arc %d→%d: %w", src, a.Head, ErrDanglingArc)
				}
				skipped++
				continue
			}
			kept = append(kept, a)
			if used != nil {
				used[src] = struct{}{}
				used[a.Head] = struct{}{}
			}
		}
		b.adjacency[src] = kept
	}

	// Stage 2: retained id set.
	var ids []NodeID
	if used != nil {
		ids = make([]NodeID, 0, len(used))
		for id := range used {
			ids = append(ids, id)
		}
	} else {
		ids = make([]NodeID, 0, len(b.allNodes))
		for id := range b.allNodes {
			ids = append(ids, id)
		}
	}
	if len(ids) > maxNodes {
		return nil, fmt.Errorf("core: %d nodes: %w", len(ids), ErrTooManyNodes)
	}

	// Stage 3: dense indices.
	slices.Sort(ids)
	g := &Graph{
		nodes:    make([]Node, len(ids)),
		index:    make(map[NodeID]NodeIndex, len(ids)),
		firstOut: make([]int32, len(ids)+1),
		segments: b.segments,
	}
	for i, id := range ids {
		g.nodes[i] = b.allNodes[id]
		g.index[id] = NodeIndex(i)
	}

	// Stage 4: CSR adjacency.
	total := 0
	for i, id := range ids {
		total += len(b.adjacency[id])
		g.firstOut[i+1] = int32(total)
	}
	g.arcs = make([]Arc[NodeIndex], 0, total)
	for _, id := range ids {
		for _, a := range b.adjacency[id] {
			g.arcs = append(g.arcs, Arc[NodeIndex]{
				Head:     g.index[a.Head],
				Distance: a.Distance,
				Cost:     a.Cost,
				Segment:  a.Segment,
			})
		}
	}

	g.stats = GraphStats{
		Nodes:        len(g.nodes),
		Arcs:         len(g.arcs),
		Segments:     len(g.segments),
		DroppedNodes: len(b.allNodes) - len(g.nodes),
		SkippedArcs:  skipped,
	}

	return g, nil
}

// resolvable reports whether both endpoints of an arc were inserted as nodes.
func (b *Builder) resolvable(src, head NodeID) bool {
	if _, ok := b.allNodes[src]; !ok {
		return false
	}
	_, ok := b.allNodes[head]
	return ok
}
