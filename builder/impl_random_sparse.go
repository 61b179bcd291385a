// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi-like road network.
//
// Canonical model:
//   - Ordered pairs (i,j), i≠j, each included independently with probability p.
//   - Every included pair is its own segment (id i*n+j+1); names are left
//     unregistered so traces report the unknown-segment marker.
//   - With the default two-way emission both i→j and j→i are inserted per trial hit.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - rng required when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Trials in i asc, j asc order; fixed seed ⇒ identical network.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor sampling arcs over n nodes with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewNodes)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			b.InsertNode(core.Node{ID: cfg.idFn(i), Lat: originLat, Lon: originLon + float64(i)*stepDeg})
		}

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				hit := p == probMax
				if cfg.rng != nil && p > probMin && p < probMax {
					hit = cfg.rng.Float64() < p
				}
				if hit {
					emit(b, cfg, cfg.idFn(i), cfg.idFn(j), core.SegmentID(i*n+j+1))
				}
			}
		}
		return nil
	}
}
