// SPDX-License-Identifier: MIT
// Package core_test verifies Builder ingestion and Graph compaction contracts.

package core_test

import (
	"testing"

	"github.com/katalvlaran/lvroute/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sparse ids on purpose: compaction must not depend on id magnitude.
const (
	idA core.NodeID = 18335097
	idB core.NodeID = 3711862961
	idC core.NodeID = 42
	idX core.NodeID = 999999999 // isolated
)

func twoWay(b *core.Builder, from, to core.NodeID, cost uint64, seg core.SegmentID) {
	b.InsertArc(from, core.Arc[core.NodeID]{Head: to, Distance: cost, Cost: cost, Segment: seg})
	b.InsertArc(to, core.Arc[core.NodeID]{Head: from, Distance: cost, Cost: cost, Segment: seg})
}

func sampleBuilder(opts ...core.BuilderOption) *core.Builder {
	b := core.NewBuilder(opts...)
	b.InsertNode(core.Node{ID: idA, Lat: 52.6555853, Lon: -0.5134241})
	b.InsertNode(core.Node{ID: idB, Lat: 52.67, Lon: -0.72})
	b.InsertNode(core.Node{ID: idC, Lat: 52.58, Lon: -0.70})
	b.InsertNode(core.Node{ID: idX, Lat: 1, Lon: 1})
	twoWay(b, idA, idB, 1500, 7)
	b.InsertArc(idB, core.Arc[core.NodeID]{Head: idC, Distance: 300, Cost: 300, Segment: 8})
	b.InsertSegmentInfo(core.SegmentInfo{ID: 7, Name: "Braunston Road"})
	b.InsertSegmentInfo(core.SegmentInfo{ID: 8})
	return b
}

func TestBuild_DenseIndicesAscendingByID(t *testing.T) {
	g, err := sampleBuilder().Build()
	require.NoError(t, err)

	require.Equal(t, 3, g.NodeCount())
	want := []core.NodeID{idC, idA, idB}
	for i, id := range want {
		idx, ok := g.Index(id)
		require.True(t, ok, "Index(%d)", id)
		assert.Equal(t, core.NodeIndex(i), idx)
		assert.Equal(t, id, g.NodeAt(idx).ID)
	}
}

func TestBuild_CompactionRoundTrip(t *testing.T) {
	b := sampleBuilder()
	originals := make(map[core.NodeID]core.Node)
	for _, id := range []core.NodeID{idA, idB, idC} {
		n, ok := b.Node(id)
		require.True(t, ok)
		originals[id] = n
	}

	g, err := b.Build()
	require.NoError(t, err)
	for id, n := range originals {
		got, ok := g.Node(id)
		require.True(t, ok)
		assert.Equal(t, n, got)
	}
}

func TestBuild_UsageTrackingDropsIsolated(t *testing.T) {
	g, err := sampleBuilder().Build()
	require.NoError(t, err)

	_, ok := g.Node(idX)
	assert.False(t, ok, "isolated node must be dropped")
	assert.Equal(t, 1, g.Stats().DroppedNodes)
}

func TestBuild_WithoutTrackingKeepsAll(t *testing.T) {
	g, err := sampleBuilder(core.WithUsageTracking(false)).Build()
	require.NoError(t, err)

	assert.Equal(t, 4, g.NodeCount())
	_, ok := g.Node(idX)
	assert.True(t, ok)
	assert.Empty(t, g.ForwardArcsOf(idX))
	assert.Zero(t, g.Stats().DroppedNodes)
}

func TestBuild_ArcHeadsResolvedToIndices(t *testing.T) {
	g, err := sampleBuilder().Build()
	require.NoError(t, err)

	arcs := g.ForwardArcsOf(idB)
	require.Len(t, arcs, 2)
	// insertion order: B→A first, then B→C.
	assert.Equal(t, idA, g.NodeAt(arcs[0].Head).ID)
	assert.Equal(t, uint64(1500), arcs[0].Cost)
	assert.Equal(t, core.SegmentID(7), arcs[0].Segment)
	assert.Equal(t, idC, g.NodeAt(arcs[1].Head).ID)

	assert.Empty(t, g.ForwardArcsOf(idC), "C has no outgoing arcs")
	assert.Equal(t, 3, g.ArcCount())
}

func TestBuild_ParallelArcsRetained(t *testing.T) {
	b := core.NewBuilder()
	b.InsertNode(core.Node{ID: 1})
	b.InsertNode(core.Node{ID: 2})
	b.InsertArc(1, core.Arc[core.NodeID]{Head: 2, Cost: 5})
	b.InsertArc(1, core.Arc[core.NodeID]{Head: 2, Cost: 3})

	g, err := b.Build()
	require.NoError(t, err)
	assert.Len(t, g.ForwardArcsOf(1), 2)
	assert.Equal(t, 2, g.ArcCount())
}

func TestBuild_DanglingFail(t *testing.T) {
	b := core.NewBuilder()
	b.InsertNode(core.Node{ID: 1})
	b.InsertArc(1, core.Arc[core.NodeID]{Head: 77, Cost: 1})

	g, err := b.Build()
	require.ErrorIs(t, err, core.ErrDanglingArc)
	assert.Nil(t, g)
	assert.Contains(t, err.Error(), "1→77")
}

func TestBuild_DanglingSourceFail(t *testing.T) {
	b := core.NewBuilder()
	b.InsertNode(core.Node{ID: 2})
	b.InsertArc(5, core.Arc[core.NodeID]{Head: 2, Cost: 1})

	_, err := b.Build()
	require.ErrorIs(t, err, core.ErrDanglingArc)
}

func TestBuild_DanglingSkip(t *testing.T) {
	b := core.NewBuilder(core.WithDanglingPolicy(core.DanglingSkip))
	b.InsertNode(core.Node{ID: 1})
	b.InsertNode(core.Node{ID: 2})
	b.InsertArc(1, core.Arc[core.NodeID]{Head: 2, Cost: 1})
	b.InsertArc(1, core.Arc[core.NodeID]{Head: 77, Cost: 1})
	b.InsertArc(78, core.Arc[core.NodeID]{Head: 2, Cost: 1})

	g, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.ArcCount())
	assert.Equal(t, 2, g.Stats().SkippedArcs)
}

func TestBuild_ConsumesBuilder(t *testing.T) {
	b := sampleBuilder()
	_, err := b.Build()
	require.NoError(t, err)
	require.True(t, b.Consumed())

	_, err = b.Build()
	require.ErrorIs(t, err, core.ErrBuilderConsumed)

	// mutations after consumption are ignored
	b.InsertNode(core.Node{ID: 5})
	_, ok := b.Node(5)
	assert.False(t, ok)
	assert.Zero(t, b.ArcCount())
}

func TestBuild_Empty(t *testing.T) {
	g, err := core.NewBuilder().Build()
	require.NoError(t, err)
	assert.Zero(t, g.NodeCount())
	assert.Zero(t, g.ArcCount())
	assert.Nil(t, g.ForwardArcs(0))
}

func TestGraph_SegmentName(t *testing.T) {
	g, err := sampleBuilder().Build()
	require.NoError(t, err)

	name, ok := g.SegmentName(7)
	require.True(t, ok)
	assert.Equal(t, "Braunston Road", name)

	_, ok = g.SegmentName(8)
	assert.False(t, ok, "registered without a name")
	_, ok = g.SegmentName(9)
	assert.False(t, ok, "never registered")
}

func TestGraph_OutOfRangeIndex(t *testing.T) {
	g, err := sampleBuilder().Build()
	require.NoError(t, err)

	assert.Nil(t, g.ForwardArcs(-1))
	assert.Nil(t, g.ForwardArcs(core.NodeIndex(g.NodeCount())))
	assert.Equal(t, core.Node{}, g.NodeAt(100))
	idx, ok := g.Index(12345)
	assert.False(t, ok)
	assert.Equal(t, core.InvalidIndex, idx)
}

func TestBuilder_Counts(t *testing.T) {
	b := sampleBuilder()
	assert.Equal(t, 4, b.NodeCount())
	assert.Equal(t, 3, b.ArcCount())
	assert.Equal(t, 3, b.UsedCount())

	nt := core.NewBuilder(core.WithUsageTracking(false))
	assert.Equal(t, -1, nt.UsedCount())
}

func TestBuilder_InsertNodeOverwrites(t *testing.T) {
	b := core.NewBuilder()
	b.InsertNode(core.Node{ID: 1, Lat: 1})
	b.InsertNode(core.Node{ID: 1, Lat: 2})
	n, ok := b.Node(1)
	require.True(t, ok)
	assert.Equal(t, 2.0, n.Lat)
	assert.Equal(t, 1, b.NodeCount())
}

func TestNode_SameByIDOnly(t *testing.T) {
	assert.True(t, core.Node{ID: 3, Lat: 1}.Same(core.Node{ID: 3, Lat: 9}))
	assert.False(t, core.Node{ID: 3}.Same(core.Node{ID: 4}))
}

func TestWithCapacity_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { core.WithCapacity(-1) })
}

func TestDanglingPolicy_String(t *testing.T) {
	assert.Equal(t, "fail", core.DanglingFail.String())
	assert.Equal(t, "skip", core.DanglingSkip.String())
	assert.Equal(t, "unknown", core.DanglingPolicy(9).String())
}
