// Package builder assembles deterministic synthetic road networks into a
// core.Builder: straight roads, street grids and random sparse networks.
//
// The fixtures feed tests and benchmarks of the routing stack with known
// topologies, sparse external ids and named segments, without a map file:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSeed(42), builder.WithCostFn(builder.UniformCost(1, 20))},
//	    builder.Grid(30, 30),
//	)
//
// Constructors:
//
//	Path(n)            - one road through n nodes, segment "Path".
//	Grid(rows, cols)   - street grid, one segment per row and per column.
//	RandomSparse(n, p) - each ordered pair joined with probability p.
//
// Options:
//
//	WithIDScheme(fn)  - index → external id (default sparse 100, 117, 134, ...).
//	WithSeed / WithRand - RNG for stochastic constructors and cost draws.
//	WithCostFn(fn)    - per-road cost (default constant 1).
//	WithOneway()      - emit only the forward arc of every road.
package builder
