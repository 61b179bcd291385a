// Package core defines the road-network types: nodes, arcs, segment metadata,
// the ingestion Builder and the compacted Graph.
//
// This file declares the identifier types, Node, Arc, SegmentInfo, the cost
// function contract and sentinel errors.
package core

import (
	"errors"
	"math"
)

// Sentinel errors for network construction.
var (
	// ErrDanglingArc indicates an arc whose source or head id was never inserted as a node.
	ErrDanglingArc = errors.New("core: arc endpoint not inserted as node")

	// ErrBuilderConsumed indicates Build was called on a Builder that already produced a Graph.
	ErrBuilderConsumed = errors.New("core: builder already consumed")

	// ErrTooManyNodes indicates the retained node set does not fit the NodeIndex range.
	ErrTooManyNodes = errors.New("core: too many nodes for dense index")
)

// NodeID is the external, possibly sparse, identifier of a node (an OSM node id).
type NodeID uint64

// NodeIndex is the dense zero-based position of a retained node inside a Graph.
type NodeIndex int32

// SegmentID identifies the real-world road segment (OSM way) an arc belongs to.
type SegmentID uint64

// InvalidIndex is returned where a NodeIndex is required but none exists.
const InvalidIndex NodeIndex = -1

// maxNodes bounds the number of retained nodes so that every index and the
// CSR offsets fit in int32.
const maxNodes = math.MaxInt32

// NodeRef is the set of types an arc head may be expressed in: an external id
// while building, a dense index once compacted.
type NodeRef interface {
	NodeID | NodeIndex
}

// Node is a point of the road network.
//
// Identity is defined solely by ID; coordinates are payload.
type Node struct {
	// ID is the external identifier.
	ID NodeID

	// Lat and Lon are WGS84 degrees.
	Lat float64
	Lon float64
}

// Same reports whether n and o denote the same node (equal IDs).
func (n Node) Same(o Node) bool { return n.ID == o.ID }

// Arc is a directed, weighted edge from an implicit source node to Head.
//
// Distance is the physical length (metres for OSM input); Cost is what the
// search minimises. Both are non-negative by construction. Segment refers to
// the owning road segment and is used for name lookup when tracing.
type Arc[H NodeRef] struct {
	Head     H
	Distance uint64
	Cost     uint64
	Segment  SegmentID
}

// SegmentInfo carries display metadata for a road segment.
// An empty Name means the segment has no registered display name.
type SegmentInfo struct {
	ID   SegmentID
	Name string
}

// CostFunc converts a traversal distance into a search cost.
type CostFunc func(distance uint64) uint64

// IdentityCost is the default CostFunc: geodesic distance already approximates
// real-world traversal cost.
func IdentityCost(distance uint64) uint64 { return distance }
