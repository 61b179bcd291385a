// Package bfs provides breadth-first search over a core.Graph,
// returning hop counts (arcs traversed), parent links, and visit order.
//
// BFS explores nodes in increasing hop count from a start node,
// with an optional visit hook, depth limit, arc filter and early stop.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// queueItem pairs a dense node index with its BFS depth.
type queueItem struct {
	node  core.NodeIndex
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited []bool
	res     *Result
	done    bool
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation,
// or any user-supplied hook error.
func BFS(g *core.Graph, start core.NodeID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	src, ok := g.Index(start)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, 64),
		visited: make([]bool, n),
		res: &Result{
			Start:  start,
			Order:  make([]core.NodeID, 0, 64),
			Depth:  make(map[core.NodeID]int),
			Parent: make(map[core.NodeID]core.NodeID),
		},
	}

	w.enqueue(src, 0, core.InvalidIndex)
	return w.res, w.loop()
}

// enqueue marks node visited at depth d, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(node core.NodeIndex, d int, parent core.NodeIndex) {
	w.visited[node] = true
	id := w.graph.NodeAt(node).ID
	w.res.Depth[id] = d
	if parent != core.InvalidIndex {
		w.res.Parent[id] = w.graph.NodeAt(parent).ID
	}
	w.queue = append(w.queue, queueItem{node: node, depth: d})
}

// loop processes the queue until empty, stop node, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 && !w.done {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		if w.done {
			break
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	id := w.graph.NodeAt(item.node).ID
	w.res.Order = append(w.res.Order, id)
	if err := w.opts.OnVisit(id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", id, err)
	}
	if w.opts.hasStop && id == w.opts.Stop {
		w.done = true
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each
// unseen head in arc order.
func (w *walker) enqueueNeighbors(item queueItem) {
	from := w.graph.NodeAt(item.node).ID
	for _, a := range w.graph.ForwardArcs(item.node) {
		if !w.opts.FilterArc(from, a) {
			continue
		}
		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		if !w.visited[a.Head] {
			w.enqueue(a.Head, nextDepth, item.node)
		}
	}
}
