// Package dijkstra implements the least-cost path search over a compacted
// core.Graph.
//
// The search is the classic label-correcting Dijkstra with a lazy
// decrease-key binary heap:
//
//   - best maps dense node index → cheapest cost recorded so far.
//   - The heap is seeded with the source at cost 0 and ordered by (cost, push sequence).
//   - A popped entry above MaxCost ends the whole search: costs are non-negative
//     and the heap is cost-ordered, so nothing cheaper can follow.
//   - Popping the target ends the search with its minimum cost.
//   - Pops costlier than the recorded best are stale and skipped.
//   - An arc is relaxed when its head has no recorded cost or the candidate is strictly cheaper.
//
// Complexity:
//
//   - Time:  O((V + A) log A) with lazy decrease-key.
//   - Space: O(V + A) worst case for best and the heap; plus O(pushes) for the trace arena.
package dijkstra

import (
	"container/heap"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/lvroute/core"
)

// Search finds the minimum-cost path from Source to Target in g.
//
// Returns:
//
//   - Result with StatusFound and the path cost (plus segments/nodes when traced).
//   - Result with StatusExhausted when the target is unreachable or lies beyond MaxCost.
//     This is a normal outcome, not an error.
//   - err for invalid requests, checked in this order: ErrNoSource, ErrNoTarget,
//     ErrNilGraph, ErrNodeNotInGraph (source first, then target).
//
// The graph is only read; any number of searches may run concurrently on it.
func Search(g *core.Graph, opts ...Option) (Result, error) {
	// 1) Resolve options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the request.
	if !cfg.hasSource {
		return Result{}, ErrNoSource
	}
	if !cfg.hasTarget {
		return Result{}, ErrNoTarget
	}
	if g == nil {
		return Result{}, ErrNilGraph
	}
	src, err := resolveSource(g, cfg.Source)
	if err != nil {
		return Result{}, err
	}
	dst, ok := g.Index(cfg.Target)
	if !ok {
		return Result{}, fmt.Errorf("%w: %w %d", ErrNodeNotInGraph, ErrTargetNotFound, cfg.Target)
	}

	// 3) Run.
	r := newRunner(g, cfg, src, dst)
	start := time.Now()
	top, found := r.process(nil)

	res := Result{Status: StatusExhausted, Stats: r.stats}
	if found {
		res.Status = StatusFound
		res.Cost = top.cost
		if r.trace != nil {
			res.Segments, res.Nodes = r.trace.reconstruct(g, top.trace)
		}
	}

	cfg.Logger.Debug("dijkstra search finished",
		slog.Uint64("source", uint64(cfg.Source)),
		slog.Uint64("target", uint64(cfg.Target)),
		slog.String("status", res.Status.String()),
		slog.Uint64("cost", res.Cost),
		slog.Int("pops", r.stats.Pops),
		slog.Int("pushes", r.stats.Pushes),
		slog.Bool("bound_hit", r.stats.BoundHit),
		slog.Duration("elapsed", time.Since(start)),
	)

	return res, nil
}

func resolveSource(g *core.Graph, id core.NodeID) (core.NodeIndex, error) {
	src, ok := g.Index(id)
	if !ok {
		return core.InvalidIndex, fmt.Errorf("%w: %w %d", ErrNodeNotInGraph, ErrSourceNotFound, id)
	}
	return src, nil
}

// runner holds the mutable state of one search execution.
type runner struct {
	g       *core.Graph
	target  core.NodeIndex // InvalidIndex: settle everything reachable
	maxCost uint64
	best    map[core.NodeIndex]uint64
	pq      entryPQ
	seq     uint64
	trace   history // nil when tracing is disabled
	stats   SearchStats
	log     *slog.Logger
}

func newRunner(g *core.Graph, cfg Options, src, dst core.NodeIndex) *runner {
	r := &runner{
		g:       g,
		target:  dst,
		maxCost: cfg.MaxCost,
		best:    make(map[core.NodeIndex]uint64),
		pq:      make(entryPQ, 0, 64),
		log:     cfg.Logger,
	}
	if cfg.Trace {
		r.trace = make(history, 0, 64)
	}

	// Seed: source at cost 0.
	r.best[src] = 0
	seed := entry{node: src, trace: noTrace}
	if r.trace != nil {
		seed.trace = r.trace.record(src, noTrace, 0)
	}
	r.push(seed)

	return r
}

func (r *runner) push(e entry) {
	e.seq = r.seq
	r.seq++
	heap.Push(&r.pq, e)
	r.stats.Pushes++
}

// process pops entries until the target is settled, the ceiling is crossed or
// the heap empties. onSettle, when non-nil, observes every settled entry.
// It returns the target entry and true on success.
func (r *runner) process(onSettle func(entry)) (entry, bool) {
	for r.pq.Len() > 0 {
		// 1) Cheapest pending entry.
		top := heap.Pop(&r.pq).(entry)
		r.stats.Pops++

		// 2) Ceiling: nothing cheaper can follow, stop the whole search.
		if r.maxCost > 0 && top.cost > r.maxCost {
			r.stats.BoundHit = true
			r.log.Debug("dijkstra cost ceiling reached",
				slog.Uint64("max_cost", r.maxCost),
				slog.Uint64("popped_cost", top.cost))
			return entry{}, false
		}

		// 3) Target reached with its minimum cost.
		if top.node == r.target {
			return top, true
		}

		// 4) A cheaper cost for this node was already recorded: stale entry.
		if top.cost > r.best[top.node] {
			r.stats.Stale++
			continue
		}

		if onSettle != nil {
			onSettle(top)
		}

		// 5) Relax outgoing arcs.
		r.relax(top)
	}

	return entry{}, false
}

// relax pushes every head of u whose cost improves through u.
func (r *runner) relax(u entry) {
	for _, a := range r.g.ForwardArcs(u.node) {
		cand := addCost(u.cost, a.Cost)
		if prev, seen := r.best[a.Head]; seen && cand >= prev {
			continue
		}
		r.best[a.Head] = cand
		r.stats.Relaxed++

		next := entry{node: a.Head, cost: cand, trace: noTrace}
		if r.trace != nil {
			next.trace = r.trace.record(a.Head, u.trace, a.Segment)
		}
		r.push(next)
	}
}

// addCost adds two costs, saturating at math.MaxUint64.
func addCost(a, b uint64) uint64 {
	if b > math.MaxUint64-a {
		return math.MaxUint64
	}
	return a + b
}
