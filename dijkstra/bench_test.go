package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
)

func benchGrid(b *testing.B, side int) *core.Graph {
	b.Helper()
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithCostFn(builder.UniformCost(1, 50))},
		builder.Grid(side, side))
	if err != nil {
		b.Fatal(err)
	}
	return g
}

func BenchmarkSearch_Grid100(b *testing.B) {
	g := benchGrid(b, 100)
	src, dst := g.NodeAt(0).ID, g.NodeAt(core.NodeIndex(g.NodeCount()-1)).ID
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.Search(g, dijkstra.Source(src), dijkstra.Target(dst)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSearch_Grid100Trace(b *testing.B) {
	g := benchGrid(b, 100)
	src, dst := g.NodeAt(0).ID, g.NodeAt(core.NodeIndex(g.NodeCount()-1)).ID
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.Search(g, dijkstra.Source(src), dijkstra.Target(dst), dijkstra.WithTrace()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkReach_Grid100Bounded(b *testing.B) {
	g := benchGrid(b, 100)
	src := g.NodeAt(core.NodeIndex(g.NodeCount() / 2)).ID
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.Reach(g, dijkstra.Source(src), dijkstra.WithMaxCost(500)); err != nil {
			b.Fatal(err)
		}
	}
}
