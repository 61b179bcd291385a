package router_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvroute/bfs"
	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/config"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/logging"
	"github.com/katalvlaran/lvroute/metrics"
	"github.com/katalvlaran/lvroute/router"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridRouter returns a router over a 4x4 unit-cost grid with ids 1..16.
func gridRouter(t *testing.T, opts ...router.Option) *router.Router {
	t.Helper()
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithIDScheme(func(i int) core.NodeID { return core.NodeID(i + 1) })},
		builder.Grid(4, 4))
	require.NoError(t, err)
	return router.New(g, opts...)
}

func TestRoute(t *testing.T) {
	r := gridRouter(t)
	res, err := r.Route(router.Query{From: 1, To: 16, Trace: true})
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.Equal(t, uint64(6), res.Cost)
	assert.NotEmpty(t, res.Segments)
}

func TestRoute_DefaultCeiling(t *testing.T) {
	r := gridRouter(t, router.WithDefaultMaxCost(3))

	res, err := r.Route(router.Query{From: 1, To: 16})
	require.NoError(t, err)
	assert.False(t, res.Found(), "default ceiling applies")

	res, err = r.Route(router.Query{From: 1, To: 16, MaxCost: 10})
	require.NoError(t, err)
	assert.True(t, res.Found(), "explicit ceiling overrides default")
}

func TestRoute_UnknownNode(t *testing.T) {
	r := gridRouter(t)
	_, err := r.Route(router.Query{From: 1, To: 999})
	assert.ErrorIs(t, err, dijkstra.ErrNodeNotInGraph)
}

func TestReach(t *testing.T) {
	r := gridRouter(t)
	res, err := r.Reach(1, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []core.NodeID{1, 2, 5}, res.Nodes())
}

func TestNodeAndStats(t *testing.T) {
	r := gridRouter(t)
	n, ok := r.Node(6)
	require.True(t, ok)
	assert.Equal(t, core.NodeID(6), n.ID)
	_, ok = r.Node(0)
	assert.False(t, ok)
	assert.Equal(t, 16, r.Stats().Nodes)
	assert.Equal(t, 48, r.Stats().Arcs)
}

func TestNilGraph(t *testing.T) {
	r := router.New(nil)
	_, err := r.Route(router.Query{From: 1, To: 2})
	assert.ErrorIs(t, err, router.ErrNilGraph)
	_, err = r.Reach(1, 0)
	assert.ErrorIs(t, err, router.ErrNilGraph)
	_, ok := r.Node(1)
	assert.False(t, ok)
	assert.Zero(t, r.Stats())
}

func TestMetricsAndLogging(t *testing.T) {
	reg := prometheus.NewRegistry()
	var buf bytes.Buffer
	log, err := logging.New(logging.Config{Format: "json", Output: &buf})
	require.NoError(t, err)

	r := gridRouter(t, router.WithMetrics(metrics.New(reg)), router.WithLogger(log))
	_, err = r.Route(router.Query{From: 1, To: 16})
	require.NoError(t, err)
	_, err = r.Route(router.Query{From: 1, To: 999})
	require.Error(t, err)
	_, err = r.Reach(1, 2)
	require.NoError(t, err)
	_, err = r.Hops(context.Background(), 1, 16)
	require.NoError(t, err)

	n, err := testutil.GatherAndCount(reg, "lvroute_search_total")
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Contains(t, buf.String(), `"msg":"route"`)
	assert.Contains(t, buf.String(), `"msg":"route rejected"`)
	assert.Contains(t, buf.String(), `"msg":"hops"`)
}

func TestWithLogger_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { router.WithLogger(nil) })
}

const tinyMap = `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6">
  <node id="18335097" lat="52.6500" lon="-0.7000"/>
  <node id="18328098" lat="52.6510" lon="-0.7000"/>
  <node id="18328115" lat="52.6520" lon="-0.7000"/>
  <node id="19549583" lat="52.7000" lon="-0.7500"/>
  <way id="3753821">
    <nd ref="18335097"/><nd ref="18328098"/><nd ref="18328115"/>
    <tag k="highway" v="residential"/>
    <tag k="name" v="Chestnut Close"/>
  </way>
</osm>`

func TestBuildFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiny.osm")
	require.NoError(t, os.WriteFile(path, []byte(tinyMap), 0o600))

	reg := prometheus.NewRegistry()
	g, stats, err := router.BuildFromFile(context.Background(), config.MapConfig{Path: path}, nil, metrics.New(reg))
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Nodes)
	assert.Equal(t, 3, g.NodeCount(), "isolated node dropped")
	assert.Equal(t, 1, g.Stats().DroppedNodes)

	g, _, err = router.BuildFromFile(context.Background(), config.MapConfig{Path: path, KeepIsolated: true}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, g.NodeCount())

	// Explicit format overrides the extension.
	odd := filepath.Join(dir, "tiny.data")
	require.NoError(t, os.WriteFile(odd, []byte(tinyMap), 0o600))
	g, _, err = router.BuildFromFile(context.Background(), config.MapConfig{Path: odd, Format: "xml"}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, g.ArcCount())
}

func TestBuildFromFile_Errors(t *testing.T) {
	_, _, err := router.BuildFromFile(context.Background(), config.MapConfig{}, nil, nil)
	assert.ErrorIs(t, err, router.ErrNoMap)

	_, _, err = router.BuildFromFile(context.Background(),
		config.MapConfig{Path: filepath.Join(t.TempDir(), "missing.osm")}, nil, nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestHops(t *testing.T) {
	r := gridRouter(t)
	path, err := r.Hops(context.Background(), 1, 16)
	require.NoError(t, err)
	assert.Len(t, path, 7)
	assert.Equal(t, core.NodeID(1), path[0])
	assert.Equal(t, core.NodeID(16), path[6])

	_, err = r.Hops(context.Background(), 1, 999)
	assert.ErrorIs(t, err, dijkstra.ErrNodeNotInGraph)
	_, err = r.Hops(context.Background(), 999, 1)
	assert.ErrorIs(t, err, dijkstra.ErrNodeNotInGraph)
}

func TestHops_NoPath(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{
			builder.WithIDScheme(func(i int) core.NodeID { return core.NodeID(i + 1) }),
			builder.WithOneway(),
		},
		builder.Path(3))
	require.NoError(t, err)
	r := router.New(g)

	_, err = r.Hops(context.Background(), 3, 1)
	assert.ErrorIs(t, err, bfs.ErrNoPath)
	assert.False(t, r.Connected(1, 3))
	assert.Equal(t, router.Connectivity{Components: 3, LargestComponent: 1}, r.Connectivity())
}

func TestConnectivity(t *testing.T) {
	r := gridRouter(t)
	assert.Equal(t, router.Connectivity{Components: 1, LargestComponent: 16}, r.Connectivity())
	assert.True(t, r.Connected(1, 16))
	assert.False(t, r.Connected(1, 999))

	nilRouter := router.New(nil)
	assert.Zero(t, nilRouter.Connectivity())
	assert.False(t, nilRouter.Connected(1, 2))
	_, err := nilRouter.Hops(context.Background(), 1, 2)
	assert.ErrorIs(t, err, router.ErrNilGraph)
}

func TestRoute_UnreachableDiagnostics(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{
			builder.WithIDScheme(func(i int) core.NodeID { return core.NodeID(i + 1) }),
			builder.WithOneway(),
		},
		builder.Path(3))
	require.NoError(t, err)

	var buf bytes.Buffer
	log, err := logging.New(logging.Config{Level: "debug", Format: "json", Output: &buf})
	require.NoError(t, err)
	r := router.New(g, router.WithLogger(log))

	res, err := r.Route(router.Query{From: 3, To: 1})
	require.NoError(t, err)
	assert.False(t, res.Found())
	assert.Contains(t, buf.String(), `"same_component":false`)
}
