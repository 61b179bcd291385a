// SPDX-License-Identifier: MIT
// Package builder_test verifies the synthetic network constructors.

package builder_test

import (
	"testing"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath_TwoWayArcs(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(5))
	require.NoError(t, err)

	assert.Equal(t, 5, g.NodeCount())
	assert.Equal(t, 8, g.ArcCount())
	name, ok := g.SegmentName(1)
	require.True(t, ok)
	assert.Equal(t, "Path", name)

	// default sparse ids: 100, 117, ...
	_, ok = g.Node(100)
	assert.True(t, ok)
	_, ok = g.Node(100 + 17*4)
	assert.True(t, ok)
}

func TestPath_Oneway(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithOneway()}, builder.Path(5))
	require.NoError(t, err)
	assert.Equal(t, 4, g.ArcCount())
	assert.Empty(t, g.ForwardArcsOf(100+17*4), "last node has no outgoing arc")
}

func TestGrid_Counts(t *testing.T) {
	const rows, cols = 3, 4
	g, err := builder.BuildGraph(nil, nil, builder.Grid(rows, cols))
	require.NoError(t, err)

	roads := rows*(cols-1) + cols*(rows-1)
	assert.Equal(t, rows*cols, g.NodeCount())
	assert.Equal(t, 2*roads, g.ArcCount())

	name, ok := g.SegmentName(builder.RowSegment(2))
	require.True(t, ok)
	assert.Equal(t, "Row 2", name)
	name, ok = g.SegmentName(builder.ColSegment(3))
	require.True(t, ok)
	assert.Equal(t, "Col 3", name)
}

func TestIDScheme(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithIDScheme(func(i int) core.NodeID { return core.NodeID(i + 1) })},
		builder.Path(3))
	require.NoError(t, err)
	for _, id := range []core.NodeID{1, 2, 3} {
		_, ok := g.Node(id)
		assert.True(t, ok, "node %d", id)
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(7), builder.WithCostFn(builder.UniformCost(1, 9))}
	g1, err := builder.BuildGraph(nil, opts, builder.RandomSparse(20, 0.2))
	require.NoError(t, err)

	opts = []builder.BuilderOption{builder.WithSeed(7), builder.WithCostFn(builder.UniformCost(1, 9))}
	g2, err := builder.BuildGraph(nil, opts, builder.RandomSparse(20, 0.2))
	require.NoError(t, err)

	require.Equal(t, g1.NodeCount(), g2.NodeCount())
	require.Equal(t, g1.ArcCount(), g2.ArcCount())
	for i := 0; i < g1.NodeCount(); i++ {
		assert.Equal(t, g1.ForwardArcs(core.NodeIndex(i)), g2.ForwardArcs(core.NodeIndex(i)))
	}
}

func TestRandomSparse_Extremes(t *testing.T) {
	g, err := builder.BuildGraph([]core.BuilderOption{core.WithUsageTracking(false)}, nil, builder.RandomSparse(4, 0))
	require.NoError(t, err)
	assert.Equal(t, 4, g.NodeCount())
	assert.Zero(t, g.ArcCount())

	g, err = builder.BuildGraph(nil, []builder.BuilderOption{builder.WithOneway()}, builder.RandomSparse(4, 1))
	require.NoError(t, err)
	assert.Equal(t, 12, g.ArcCount())
}

func TestConstructorErrors(t *testing.T) {
	cases := []struct {
		name string
		con  builder.Constructor
		want error
	}{
		{"path too short", builder.Path(1), builder.ErrTooFewNodes},
		{"grid empty", builder.Grid(0, 3), builder.ErrTooFewNodes},
		{"sparse n", builder.RandomSparse(0, 0.5), builder.ErrTooFewNodes},
		{"sparse p", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"sparse rng", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildNetwork(nil, nil, tc.con)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithCostFn(nil) })
	assert.Panics(t, func() { builder.UniformCost(5, 1) })
}

func TestUniformCost_Range(t *testing.T) {
	fn := builder.UniformCost(3, 3)
	assert.Equal(t, uint64(3), fn(nil))

	fn = builder.UniformCost(2, 6)
	assert.Equal(t, uint64(2), fn(nil))
}
