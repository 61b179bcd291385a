// Package router is the query facade over one loaded routing graph.
//
// A Router is shared by every request handler; each query runs its own
// search. The only state computed after New is the component labelling,
// built once on first use.
package router

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/katalvlaran/lvroute/bfs"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dfs"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/metrics"
)

var (
	// ErrNilGraph is returned by Route and Reach on a Router built without a graph.
	ErrNilGraph = errors.New("router: graph is nil")

	// ErrNoMap is returned by BuildFromFile when no map path is configured.
	ErrNoMap = errors.New("router: map path is empty")
)

const (
	kindRoute = "route"
	kindReach = "reach"
	kindHops  = "hops"
)

// Query is a point-to-point request.
type Query struct {
	From core.NodeID
	To   core.NodeID
	// MaxCost caps the search; 0 falls back to the router default.
	MaxCost uint64
	Trace   bool
}

// Router answers route and reach queries against a single graph.
type Router struct {
	g          *core.Graph
	log        *slog.Logger
	metrics    *metrics.Metrics
	defaultMax uint64

	sccOnce sync.Once
	scc     *dfs.Components
}

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the logger for per-query output. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("router: WithLogger(nil)")
	}
	return func(r *Router) { r.log = l }
}

// WithMetrics records every query on m. A nil m disables recording.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Router) { r.metrics = m }
}

// WithDefaultMaxCost sets the ceiling used by queries that name none.
func WithDefaultMaxCost(c uint64) Option {
	return func(r *Router) { r.defaultMax = c }
}

// New wraps g. The graph size is published to the metrics at once.
func New(g *core.Graph, opts ...Option) *Router {
	r := &Router{g: g, log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(r)
	}
	if g != nil {
		r.metrics.SetGraph(g.NodeCount(), g.ArcCount())
	}
	return r
}

// Route runs a point-to-point search. Errors are those of dijkstra.Search;
// an unreachable target is a Result with Found() false.
func (r *Router) Route(q Query) (dijkstra.Result, error) {
	if r.g == nil {
		return dijkstra.Result{}, ErrNilGraph
	}
	maxCost := r.ceiling(q.MaxCost)
	opts := []dijkstra.Option{
		dijkstra.Source(q.From),
		dijkstra.Target(q.To),
		dijkstra.WithMaxCost(maxCost),
		dijkstra.WithLogger(r.log),
	}
	if q.Trace {
		opts = append(opts, dijkstra.WithTrace())
	}

	start := time.Now()
	res, err := dijkstra.Search(r.g, opts...)
	elapsed := time.Since(start)
	if err != nil {
		r.metrics.ObserveInvalid(kindRoute)
		r.log.Info("route rejected",
			slog.Uint64("from", uint64(q.From)),
			slog.Uint64("to", uint64(q.To)),
			slog.String("error", err.Error()))
		return res, err
	}

	r.metrics.ObserveSearch(kindRoute, res.Status.String(), elapsed, res.Stats.Pops)
	if !res.Found() && !res.Stats.BoundHit && r.log.Enabled(context.Background(), slog.LevelDebug) {
		r.log.Debug("route target unreachable",
			slog.Uint64("from", uint64(q.From)),
			slog.Uint64("to", uint64(q.To)),
			slog.Bool("same_component", r.components().Strongly(q.From, q.To)))
	}
	r.log.Info("route",
		slog.Uint64("from", uint64(q.From)),
		slog.Uint64("to", uint64(q.To)),
		slog.Uint64("max_cost", maxCost),
		slog.Bool("found", res.Found()),
		slog.Uint64("cost", res.Cost),
		slog.Int("pops", res.Stats.Pops),
		slog.Duration("elapsed", elapsed),
	)
	return res, nil
}

// Reach settles every node within maxCost of source (router default when 0).
func (r *Router) Reach(source core.NodeID, maxCost uint64) (dijkstra.ReachResult, error) {
	if r.g == nil {
		return dijkstra.ReachResult{}, ErrNilGraph
	}
	maxCost = r.ceiling(maxCost)

	start := time.Now()
	res, err := dijkstra.Reach(r.g,
		dijkstra.Source(source),
		dijkstra.WithMaxCost(maxCost),
		dijkstra.WithLogger(r.log),
	)
	elapsed := time.Since(start)
	if err != nil {
		r.metrics.ObserveInvalid(kindReach)
		return res, err
	}

	r.metrics.ObserveSearch(kindReach, metrics.StatusExhausted, elapsed, res.Stats.Pops)
	r.log.Info("reach",
		slog.Uint64("from", uint64(source)),
		slog.Uint64("max_cost", maxCost),
		slog.Int("settled", res.Len()),
		slog.Duration("elapsed", elapsed),
	)
	return res, nil
}

// Hops returns the path from one node to another with the fewest arcs,
// ignoring cost. Unknown endpoints wrap dijkstra.ErrNodeNotInGraph; an
// unreachable target yields bfs.ErrNoPath.
func (r *Router) Hops(ctx context.Context, from, to core.NodeID) ([]core.NodeID, error) {
	if r.g == nil {
		return nil, ErrNilGraph
	}
	if _, ok := r.g.Index(to); !ok {
		r.metrics.ObserveInvalid(kindHops)
		return nil, fmt.Errorf("%w: target %d", dijkstra.ErrNodeNotInGraph, to)
	}

	start := time.Now()
	res, err := bfs.BFS(r.g, from, bfs.WithContext(ctx), bfs.WithStop(to))
	elapsed := time.Since(start)
	if err != nil {
		if errors.Is(err, bfs.ErrStartNotFound) {
			r.metrics.ObserveInvalid(kindHops)
			return nil, fmt.Errorf("%w: %w", dijkstra.ErrNodeNotInGraph, err)
		}
		return nil, err
	}

	path, err := res.PathTo(to)
	status := metrics.StatusFound
	if err != nil {
		status = metrics.StatusExhausted
	}
	r.metrics.ObserveSearch(kindHops, status, elapsed, len(res.Order))
	r.log.Info("hops",
		slog.Uint64("from", uint64(from)),
		slog.Uint64("to", uint64(to)),
		slog.Int("hops", len(path)-1),
		slog.Int("visited", len(res.Order)),
		slog.Duration("elapsed", elapsed),
	)
	return path, err
}

// Connectivity summarises the strongly connected components of the graph.
type Connectivity struct {
	Components       int `json:"components"`
	LargestComponent int `json:"largest_component"`
}

// Connectivity labels the graph on first call and reports the summary.
func (r *Router) Connectivity() Connectivity {
	if r.g == nil {
		return Connectivity{}
	}
	c := r.components()
	_, largest := c.Largest()
	return Connectivity{Components: c.Count(), LargestComponent: largest}
}

// Connected reports whether a and b can each reach the other.
func (r *Router) Connected(a, b core.NodeID) bool {
	if r.g == nil {
		return false
	}
	return r.components().Strongly(a, b)
}

func (r *Router) components() *dfs.Components {
	r.sccOnce.Do(func() {
		start := time.Now()
		// A non-nil graph and a background context cannot fail.
		r.scc, _ = dfs.StronglyConnected(r.g)
		_, largest := r.scc.Largest()
		r.log.Info("components labelled",
			slog.Int("components", r.scc.Count()),
			slog.Int("largest", largest),
			slog.Duration("elapsed", time.Since(start)))
	})
	return r.scc
}

// Node looks up a retained node by external id.
func (r *Router) Node(id core.NodeID) (core.Node, bool) {
	if r.g == nil {
		return core.Node{}, false
	}
	return r.g.Node(id)
}

// Stats returns the build summary of the graph.
func (r *Router) Stats() core.GraphStats {
	if r.g == nil {
		return core.GraphStats{}
	}
	return r.g.Stats()
}

// Graph exposes the underlying graph for read-only use.
func (r *Router) Graph() *core.Graph { return r.g }

func (r *Router) ceiling(c uint64) uint64 {
	if c == 0 {
		return r.defaultMax
	}
	return c
}
