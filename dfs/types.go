// Package dfs defines options, results and errors for the component analysis.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/lvroute/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")
)

// unvisited marks a node the DFS has not discovered yet.
const unvisited int32 = -1

// Option configures StronglyConnected.
type Option func(*Options)

// Options holds configurable parameters for the analysis.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is checked once per DFS root.
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext returns an Option that sets the Context for the analysis.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Components is the strongly connected component labelling of one graph.
type Components struct {
	g     *core.Graph
	label []int32 // dense index → component
	sizes []int   // component → node count
}

// Count is the number of components.
func (c *Components) Count() int { return len(c.sizes) }

// Of returns the component label of id.
func (c *Components) Of(id core.NodeID) (int, bool) {
	i, ok := c.g.Index(id)
	if !ok {
		return 0, false
	}
	return int(c.label[i]), true
}

// Size returns the node count of component label, 0 when out of range.
func (c *Components) Size(label int) int {
	if label < 0 || label >= len(c.sizes) {
		return 0
	}
	return c.sizes[label]
}

// Largest returns the label and size of the biggest component; ties go to
// the lower label. An empty graph reports (-1, 0).
func (c *Components) Largest() (label, size int) {
	label = -1
	for l, s := range c.sizes {
		if s > size {
			label, size = l, s
		}
	}
	return label, size
}

// Strongly reports whether a and b are mutually reachable. Unknown ids
// are never connected.
func (c *Components) Strongly(a, b core.NodeID) bool {
	la, okA := c.Of(a)
	lb, okB := c.Of(b)
	return okA && okB && la == lb
}

// Members lists the node ids of component label in dense index order.
func (c *Components) Members(label int) []core.NodeID {
	var out []core.NodeID
	for i, l := range c.label {
		if int(l) == label {
			out = append(out, c.g.NodeAt(core.NodeIndex(i)).ID)
		}
	}
	return out
}
