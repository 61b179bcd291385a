// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildNetwork(bopts, cons...). Creates a core.Builder, resolves cfg, runs cons in order.
//   - Public factories are declared in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical networks.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// Constructor applies a deterministic network mutation using the resolved
// builderConfig. Constructors MUST validate parameters early, return sentinel
// errors (no panics) and emit nodes and arcs in a documented, stable order.
type Constructor func(b *core.Builder, cfg builderConfig) error

// BuildNetwork creates a new core.Builder with options copts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// The returned builder is not yet consumed, so callers may add to it before Build.
//
// Errors:
//   - Wraps constructor errors as "BuildNetwork: %w"; branch with errors.Is
//     against ErrTooFewNodes, ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed.
func BuildNetwork(copts []core.BuilderOption, bopts []BuilderOption, cons ...Constructor) (*core.Builder, error) {
	b := core.NewBuilder(copts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildNetwork: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildNetwork: %w", err)
		}
	}

	return b, nil
}

// BuildGraph is BuildNetwork followed by Build.
func BuildGraph(copts []core.BuilderOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	b, err := BuildNetwork(copts, bopts, cons...)
	if err != nil {
		return nil, err
	}
	return b.Build()
}

// emit inserts the arc u→v and, unless the fixture is one-way, v→u, both
// tagged with seg and sharing the same cost.
func emit(b *core.Builder, cfg builderConfig, u, v core.NodeID, seg core.SegmentID) {
	cost := cfg.costFn(cfg.rng)
	b.InsertArc(u, core.Arc[core.NodeID]{Head: v, Distance: cost, Cost: cost, Segment: seg})
	if !cfg.oneway {
		b.InsertArc(v, core.Arc[core.NodeID]{Head: u, Distance: cost, Cost: cost, Segment: seg})
	}
}
