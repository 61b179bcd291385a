// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context with %w (method tag + parameters).
//   - Option constructors panic on meaningless values; constructors never panic.

package builder

import "errors"

// ErrTooFewNodes indicates that a size parameter (n, rows, cols) is below the
// constructor's minimum.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the network could not be assembled (e.g. a nil constructor).
var ErrConstructFailed = errors.New("builder: construction failed")
