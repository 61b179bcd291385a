package dijkstra

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvroute/core"
)

// ReachResult lists the nodes settled by a one-to-all search together with
// their minimum cost from the source.
type ReachResult struct {
	Source core.NodeID
	Stats  SearchStats

	order []core.NodeID
	cost  map[core.NodeID]uint64
}

// Cost returns the minimum cost from the source to id, if id was settled.
func (r ReachResult) Cost(id core.NodeID) (uint64, bool) {
	c, ok := r.cost[id]
	return c, ok
}

// Len is the number of settled nodes, the source included.
func (r ReachResult) Len() int { return len(r.order) }

// Nodes returns settled node ids in settlement order (non-decreasing cost).
func (r ReachResult) Nodes() []core.NodeID { return r.order }

// Reach settles every node reachable from Source whose cost does not exceed
// MaxCost (all reachable nodes when MaxCost is 0). Target and Trace are ignored.
//
// This is the bounded regional query: the same relaxation as Search with no
// destination, so the run ends at the ceiling or when the heap empties.
//
// Errors: ErrNoSource, ErrNilGraph, ErrNodeNotInGraph (wrapping ErrSourceNotFound).
func Reach(g *core.Graph, opts ...Option) (ReachResult, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.hasSource {
		return ReachResult{}, ErrNoSource
	}
	if g == nil {
		return ReachResult{}, ErrNilGraph
	}
	src, err := resolveSource(g, cfg.Source)
	if err != nil {
		return ReachResult{}, fmt.Errorf("reach: %w", err)
	}

	cfg.Trace = false
	r := newRunner(g, cfg, src, core.InvalidIndex)
	out := ReachResult{
		Source: cfg.Source,
		cost:   make(map[core.NodeID]uint64),
	}
	r.process(func(e entry) {
		id := g.NodeAt(e.node).ID
		out.order = append(out.order, id)
		out.cost[id] = e.cost
	})
	out.Stats = r.stats

	cfg.Logger.Debug("dijkstra reach finished",
		slog.Uint64("source", uint64(cfg.Source)),
		slog.Uint64("max_cost", cfg.MaxCost),
		slog.Int("settled", out.Len()),
		slog.Int("pops", r.stats.Pops),
	)

	return out, nil
}
