package dfs

import (
	"github.com/katalvlaran/lvroute/core"
)

// frame is one pending node on the explicit DFS stack: the node and the
// position of the next arc to explore.
type frame struct {
	v    core.NodeIndex
	next int
}

// tarjan encapsulates state during the component search.
type tarjan struct {
	g       *core.Graph
	index   []int32
	low     []int32
	onStack []bool
	stack   []core.NodeIndex
	calls   []frame
	counter int32
	res     *Components
}

// StronglyConnected labels every node of g with its strongly connected
// component. Returns ErrGraphNil for a nil graph or the context error when
// cancelled.
func StronglyConnected(g *core.Graph, opts ...Option) (*Components, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Initialize state
	n := g.NodeCount()
	t := &tarjan{
		g:       g,
		index:   make([]int32, n),
		low:     make([]int32, n),
		onStack: make([]bool, n),
		res:     &Components{g: g, label: make([]int32, n)},
	}
	for i := range t.index {
		t.index[i] = unvisited
	}

	// 4. One DFS tree per undiscovered root
	for root := 0; root < n; root++ {
		if t.index[root] != unvisited {
			continue
		}
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		t.run(core.NodeIndex(root))
	}

	return t.res, nil
}

// discover assigns v its DFS index and pushes it on both stacks.
func (t *tarjan) discover(v core.NodeIndex) {
	t.index[v] = t.counter
	t.low[v] = t.counter
	t.counter++
	t.stack = append(t.stack, v)
	t.onStack[v] = true
	t.calls = append(t.calls, frame{v: v})
}

// run explores the tree rooted at root.
func (t *tarjan) run(root core.NodeIndex) {
	t.discover(root)
	for len(t.calls) > 0 {
		f := &t.calls[len(t.calls)-1]
		arcs := t.g.ForwardArcs(f.v)

		// 1. Next unexplored arc of the top frame
		if f.next < len(arcs) {
			v, w := f.v, arcs[f.next].Head
			f.next++
			switch {
			case t.index[w] == unvisited:
				t.discover(w)
			case t.onStack[w]:
				t.low[v] = min(t.low[v], t.index[w])
			}
			continue
		}

		// 2. All arcs explored: return to the parent frame
		v := f.v
		t.calls = t.calls[:len(t.calls)-1]
		if len(t.calls) > 0 {
			p := t.calls[len(t.calls)-1].v
			t.low[p] = min(t.low[p], t.low[v])
		}

		// 3. v roots a component: pop it off the node stack
		if t.low[v] == t.index[v] {
			t.emit(v)
		}
	}
}

// emit pops the component rooted at v and labels its members.
func (t *tarjan) emit(v core.NodeIndex) {
	label := int32(len(t.res.sizes))
	size := 0
	for {
		w := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		t.onStack[w] = false
		t.res.label[w] = label
		size++
		if w == v {
			break
		}
	}
	t.res.sizes = append(t.res.sizes, size)
}
