// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// options.go - functional options and the resolved configuration.
//
// Deterministic defaults:
//   - idFn   = sparseID   (100, 117, 134, ...) so fixtures exercise id compaction
//   - rng    = nil        (pure/deterministic unless seeded)
//   - costFn = constant 1
//   - oneway = false      (every road emits both directions)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvroute/core"
)

const (
	sparseIDBase   = 100
	sparseIDStride = 17
	defaultCost    = uint64(1)
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn   func(int) core.NodeID
	rng    *rand.Rand
	costFn func(*rand.Rand) uint64
	oneway bool
}

// BuilderOption customizes a builderConfig before construction.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the node id generator: index → external id.
// Panics on nil.
func WithIDScheme(fn func(int) core.NodeID) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a seeded RNG; use it in tests to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithCostFn overrides the per-road cost generator. The function receives the
// possibly nil RNG. Panics on nil.
func WithCostFn(fn func(*rand.Rand) uint64) BuilderOption {
	if fn == nil {
		panic("builder: WithCostFn(nil)")
	}
	return func(c *builderConfig) { c.costFn = fn }
}

// WithOneway makes every emitted road a single directed arc.
func WithOneway() BuilderOption {
	return func(c *builderConfig) { c.oneway = true }
}

// UniformCost returns a cost generator uniform in [min, max]. Without an RNG
// it yields min. Panics if max < min.
func UniformCost(min, max uint64) func(*rand.Rand) uint64 {
	if max < min {
		panic("builder: UniformCost(max<min)")
	}
	return func(rng *rand.Rand) uint64 {
		if rng == nil || max == min {
			return min
		}
		return min + uint64(rng.Int63n(int64(max-min+1)))
	}
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:   sparseID,
		costFn: func(*rand.Rand) uint64 { return defaultCost },
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// sparseID spaces ids out so that dense indices never coincide with ids.
func sparseID(i int) core.NodeID {
	return core.NodeID(sparseIDBase + sparseIDStride*i)
}
