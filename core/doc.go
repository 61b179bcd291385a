// Package core provides the road-network primitives shared by every lvroute
// package: the mutable ingestion Builder and the immutable, compacted Graph.
//
// The network N = (V,A) is fed incrementally by a map parser through three calls:
//
//   - InsertNode(Node)                   - external id → coordinates
//   - InsertArc(source, Arc[NodeID])     - directed arc keyed by external ids
//   - InsertSegmentInfo(SegmentInfo)     - segment (way) id → display name
//
// External identifiers (OSM node ids) are sparse and arbitrarily large. Build
// compacts the network once: every retained node receives a dense NodeIndex in
// [0, NodeCount), and adjacency is stored in compressed-sparse-row form
//
//	firstOut[i] .. firstOut[i+1]  →  arcs of node i
//
// with each arc's Head already resolved to a dense index. Searches never
// re-resolve external ids on the hot path.
//
// Lifecycle:
//
//	b := core.NewBuilder()            // single owner, single goroutine
//	b.InsertNode(...) / InsertArc(...)
//	g, err := b.Build()               // consumes b
//	g.ForwardArcs(idx)                // lock-free, any number of readers
//
// Retention:
//
//	– WithUsageTracking(true) (default)
//	    Only nodes that are the source or head of at least one arc are kept;
//	    isolated nodes (e.g. nodes of non-road ways) are dropped.
//
//	– WithUsageTracking(false)
//	    Every inserted node is kept.
//
// Dangling arcs (an endpoint id never inserted as a node):
//
//	– DanglingFail (default) → Build returns ErrDanglingArc.
//	– DanglingSkip           → the arc is dropped and counted in GraphStats.
//
// Errors:
//
//	ErrDanglingArc      - an arc endpoint does not resolve to an inserted node.
//	ErrBuilderConsumed  - Build was already called on this Builder.
//	ErrTooManyNodes     - more retained nodes than a NodeIndex can address.
package core
