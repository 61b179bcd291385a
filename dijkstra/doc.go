// Package dijkstra provides the least-cost route search of lvroute: a
// single-source, single-target Dijkstra over an immutable core.Graph, with an
// optional cost ceiling for bounded regional queries and an optional trace of
// the road segments traversed.
//
// Overview:
//
//   - Endpoints are external node ids, resolved to dense indices once at entry;
//     the hot loop touches only dense indices and the CSR adjacency of core.Graph.
//   - A binary min-heap (container/heap) holds pending entries ordered by
//     accumulated cost; equal costs pop in push order, so results are deterministic.
//   - No state is shared between searches: each call owns its heap, cost map
//     and trace arena, so many searches can run against one graph at once.
//
// Outcomes (per invocation: Initialized → Running → one terminal):
//
//   - Found:           Result.Status == StatusFound, Result.Cost is the minimum cost.
//   - Exhausted:       Result.Status == StatusExhausted; target unreachable or beyond MaxCost.
//   - InvalidEndpoint: err wraps ErrNodeNotInGraph; never reported as "no path".
//
// Tracing:
//
//   - WithTrace() records one arena step per heap push. Each step stores the
//     index of the step it was reached from, so the back-chain is a flat slice.
//   - On success the chain is walked target→source, segment names are looked up
//     (UnknownSegment when unnamed), consecutive repeats collapsed, and the
//     list reversed to source→target order.
//   - Without tracing no predecessor data is kept at all.
//
// Bounded reach:
//
//   - Reach(g, Source(id), WithMaxCost(c)) settles every node within cost c,
//     the one-to-all counterpart of Search used for regional queries.
//
// Example usage:
//
//	res, err := dijkstra.Search(g,
//	    dijkstra.Source(18335097),
//	    dijkstra.Target(18327809),
//	    dijkstra.WithMaxCost(15000),
//	    dijkstra.WithTrace(),
//	)
//	switch {
//	case errors.Is(err, dijkstra.ErrNodeNotInGraph):
//	    // bad endpoint
//	case res.Found():
//	    fmt.Println(res.Cost, res.Route())
//	default:
//	    fmt.Println("no path found")
//	}
package dijkstra
