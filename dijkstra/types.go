// Package dijkstra defines the options, results and sentinel errors of the
// road-network shortest-path search.
//
// Options:
//
//	– Source:      external id of the origin node (required).
//	– Target:      external id of the destination node (required by Search).
//	– MaxCost:     cost ceiling; 0 means unbounded.
//	– Trace:       keep a predecessor chain so segment names can be reported.
//	– Logger:      structured logger for per-search diagnostics (discarded by default).
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the graph pointer is nil.
//	– ErrNoSource        if Source was not set.
//	– ErrNoTarget        if Target was not set on Search.
//	– ErrNodeNotInGraph  if Source or Target does not resolve to a retained node;
//	                     additionally wraps ErrSourceNotFound or ErrTargetNotFound.
package dijkstra

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/katalvlaran/lvroute/core"
)

// Sentinel errors returned by Search and Reach.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNoSource indicates that the Source option was not supplied.
	ErrNoSource = errors.New("dijkstra: source not specified")

	// ErrNoTarget indicates that the Target option was not supplied to Search.
	ErrNoTarget = errors.New("dijkstra: target not specified")

	// ErrNodeNotInGraph indicates an endpoint id that is not a retained node.
	// It is an invalid request, never a "no path" outcome.
	ErrNodeNotInGraph = errors.New("dijkstra: node not in graph")

	// ErrSourceNotFound narrows ErrNodeNotInGraph to the source endpoint.
	ErrSourceNotFound = errors.New("dijkstra: source")

	// ErrTargetNotFound narrows ErrNodeNotInGraph to the target endpoint.
	ErrTargetNotFound = errors.New("dijkstra: target")
)

// UnknownSegment is reported in a trace for arcs whose segment has no registered name.
const UnknownSegment = "unknown"

// Options configures a single search invocation.
type Options struct {
	Source  core.NodeID
	Target  core.NodeID
	MaxCost uint64 // 0 = unbounded
	Trace   bool
	Logger  *slog.Logger

	hasSource bool
	hasTarget bool
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// Source sets the origin node by external id.
func Source(id core.NodeID) Option {
	return func(o *Options) {
		o.Source = id
		o.hasSource = true
	}
}

// Target sets the destination node by external id.
func Target(id core.NodeID) Option {
	return func(o *Options) {
		o.Target = id
		o.hasTarget = true
	}
}

// WithMaxCost sets the cost ceiling. The search stops as soon as the cheapest
// pending entry exceeds it. Zero disables the ceiling.
func WithMaxCost(max uint64) Option {
	return func(o *Options) { o.MaxCost = max }
}

// WithTrace retains the predecessor chain so the result carries the ordered
// segment names and nodes of the path.
func WithTrace() Option {
	return func(o *Options) { o.Trace = true }
}

// WithLogger injects a logger for per-search debug output.
// Panics on nil; omit the option to discard output.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("dijkstra: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns unbounded, untraced options with no endpoints and a
// discarding logger.
func DefaultOptions() Options {
	return Options{Logger: slog.New(slog.DiscardHandler)}
}

// Status is the terminal state of a search that did not fail.
type Status int

const (
	// StatusExhausted means the target was not reached: the heap emptied or
	// the cost ceiling was crossed first.
	StatusExhausted Status = iota

	// StatusFound means the target was settled with its minimum cost.
	StatusFound
)

// String returns "found" or "exhausted".
func (s Status) String() string {
	if s == StatusFound {
		return "found"
	}
	return "exhausted"
}

// SearchStats counts the work performed by one search.
type SearchStats struct {
	Pushes   int  `json:"pushes"`    // heap insertions, seed included
	Pops     int  `json:"pops"`      // heap extractions
	Stale    int  `json:"stale"`     // pops skipped because a cheaper cost was already recorded
	Relaxed  int  `json:"relaxed"`   // arcs that improved their head's best cost
	BoundHit bool `json:"bound_hit"` // stopped because a popped cost exceeded MaxCost
}

// Result is the outcome of a Search.
//
// Cost is meaningful only when Status is StatusFound. Segments and Nodes are
// populated only when tracing was enabled: Segments lists segment names in
// source→target order with consecutive repeats collapsed, Nodes lists every
// node of the path including both endpoints.
type Result struct {
	Status   Status
	Cost     uint64
	Segments []string
	Nodes    []core.NodeID
	Stats    SearchStats
}

// Found reports whether the target was reached.
func (r Result) Found() bool { return r.Status == StatusFound }

// Route joins the traced segment names into a human-readable itinerary.
func (r Result) Route() string { return strings.Join(r.Segments, " -> ") }
