// Package dfs implements depth-first connectivity analysis on a compacted
// core.Graph: strongly connected components by Tarjan's algorithm.
//
// What:
//
//   - StronglyConnected(g, opts...) labels every node with the strongly
//     connected component it belongs to. Two nodes share a label exactly
//     when each can reach the other.
//   - Components answers "can a route exist in both directions" in O(1)
//     per pair, and reports sizes and the largest component.
//
// Why:
//
//   - OSM extracts clipped at a boundary, and one-way streets that lead
//     out of the covered area, leave islands where a route can enter but
//     never leave. The largest component is the routable core of a map.
//   - A failed route between nodes of different components is expected;
//     the router uses the labels to say so in its diagnostics.
//
// Implementation:
//
//   - The DFS is iterative with an explicit frame stack, so graph depth is
//     bounded by memory, not by the goroutine stack.
//   - Roots are taken in dense index order and arcs in adjacency order, so
//     labels are deterministic for a given graph.
//
// Complexity:
//
//   - Time:   O(V + A)
//   - Memory: O(V)
//
// Errors:
//
//   - ErrGraphNil       graph pointer is nil.
//   - context.Canceled  analysis cancelled via WithContext.
package dfs
