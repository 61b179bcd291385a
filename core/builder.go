// SPDX-License-Identifier: MIT
//
// File: builder.go
// Role: Mutable ingestion side of the network. Accepts nodes, arcs and segment
//       metadata keyed by external ids; consumed exactly once by Build.
// Concurrency:
//   - Single owner, single goroutine. Concurrent mutation is unsupported.

package core

// DanglingPolicy decides what Build does with an arc whose source or head id
// was never inserted as a node.
type DanglingPolicy int

const (
	// DanglingFail makes Build return ErrDanglingArc.
	DanglingFail DanglingPolicy = iota

	// DanglingSkip drops the arc and counts it in GraphStats.SkippedArcs.
	DanglingSkip
)

// String returns the policy name.
func (p DanglingPolicy) String() string {
	switch p {
	case DanglingFail:
		return "fail"
	case DanglingSkip:
		return "skip"
	default:
		return "unknown"
	}
}

// BuilderOption configures a Builder before any data is inserted.
type BuilderOption func(*Builder)

// WithUsageTracking toggles retention of isolated nodes. When enabled (the
// default) only nodes referenced by at least one arc survive Build.
func WithUsageTracking(enabled bool) BuilderOption {
	return func(b *Builder) { b.trackUsage = enabled }
}

// WithDanglingPolicy selects how Build treats arcs with unknown endpoints.
func WithDanglingPolicy(p DanglingPolicy) BuilderOption {
	return func(b *Builder) { b.dangling = p }
}

// WithCapacity pre-sizes the node table. Panics on a negative hint.
func WithCapacity(nodes int) BuilderOption {
	if nodes < 0 {
		panic("core: WithCapacity(nodes<0)")
	}
	return func(b *Builder) { b.capacity = nodes }
}

// Builder accumulates a road network keyed by external ids.
//
// allNodes holds every inserted node, usedNodes the ids touched by an arc
// (only when tracking is enabled), adjacency the outgoing arcs per source id
// in insertion order, and segments the display names per segment id.
type Builder struct {
	trackUsage bool
	dangling   DanglingPolicy
	capacity   int
	consumed   bool

	allNodes  map[NodeID]Node
	usedNodes map[NodeID]struct{}
	adjacency map[NodeID][]Arc[NodeID]
	segments  map[SegmentID]string
	arcCount  int
}

// NewBuilder returns an empty Builder with usage tracking enabled and the
// DanglingFail policy, then applies opts in order.
// Complexity: O(len(opts)) plus map allocation.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{trackUsage: true, dangling: DanglingFail}
	for _, opt := range opts {
		opt(b)
	}
	b.allNodes = make(map[NodeID]Node, b.capacity)
	if b.trackUsage {
		b.usedNodes = make(map[NodeID]struct{}, b.capacity)
	}
	b.adjacency = make(map[NodeID][]Arc[NodeID], b.capacity)
	b.segments = make(map[SegmentID]string)

	return b
}

// InsertNode inserts n, overwriting any node with the same ID.
// Ignored once the builder is consumed.
func (b *Builder) InsertNode(n Node) {
	if b.consumed {
		return
	}
	b.allNodes[n.ID] = n
}

// InsertArc appends arc to the adjacency list of source. Parallel arcs between
// the same pair are all retained. Both endpoints are marked used when usage
// tracking is enabled. Endpoints are not validated here; see Build.
func (b *Builder) InsertArc(source NodeID, arc Arc[NodeID]) {
	if b.consumed {
		return
	}
	if b.usedNodes != nil {
		b.usedNodes[source] = struct{}{}
		b.usedNodes[arc.Head] = struct{}{}
	}
	b.adjacency[source] = append(b.adjacency[source], arc)
	b.arcCount++
}

// InsertSegmentInfo records or overwrites the display metadata of a segment.
func (b *Builder) InsertSegmentInfo(info SegmentInfo) {
	if b.consumed {
		return
	}
	b.segments[info.ID] = info.Name
}

// Node returns the node inserted under id.
func (b *Builder) Node(id NodeID) (Node, bool) {
	n, ok := b.allNodes[id]
	return n, ok
}

// NodeCount is the number of inserted nodes.
func (b *Builder) NodeCount() int { return len(b.allNodes) }

// ArcCount is the number of inserted arcs, parallel arcs included.
func (b *Builder) ArcCount() int { return b.arcCount }

// UsedCount is the number of distinct ids touched by an arc, or -1 when
// usage tracking is disabled.
func (b *Builder) UsedCount() int {
	if b.usedNodes == nil {
		return -1
	}
	return len(b.usedNodes)
}

// Consumed reports whether Build has already been called.
func (b *Builder) Consumed() bool { return b.consumed }

// release drops every table so the builder no longer holds the network.
func (b *Builder) release() {
	b.consumed = true
	b.allNodes = nil
	b.usedNodes = nil
	b.adjacency = nil
	b.segments = nil
	b.arcCount = 0
}
