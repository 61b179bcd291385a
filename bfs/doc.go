// Package bfs provides breadth-first search over a compacted core.Graph,
// returning hop counts, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count (arcs traversed) from a start node.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from node id → hops from start
//   - Parent: map from node id → its predecessor in the BFS tree
//   - A visit hook (WithOnVisit) that may abort with an error.
//   - Arc filtering via WithFilterArc, e.g. to ignore a road segment.
//   - MaxDepth limit (d>0) or explicit "no limit" (d==0).
//   - Early exit at a stop node (WithStop).
//
// Why
//
//   - Fewest-arcs paths ignore cost entirely; they answer "is there any
//     road at all" independently of the cost model and of MaxCost.
//   - Hop-limited neighbourhoods for map inspection.
//
// Determinism
//
//	Arcs are expanded in compacted adjacency order, so the visit sequence
//	is fully reproducible for a given graph.
//
// Complexity (V = nodes, A = arcs)
//
//   - Time:   O(V + A)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 18335097, bfs.WithStop(18327809))
//	if err != nil {
//	    // ErrGraphNil, ErrStartNotFound, ErrOptionViolation, ctx error or hook error
//	}
//	path, err := res.PathTo(18327809)
package bfs
