// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_path.go - Path(n): a single named road through n nodes.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewNodes).
//   - Nodes idFn(0..n-1) in ascending order, spaced 0.001° apart along a meridian.
//   - One segment (id pathSegment, name "Path") carries every arc.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

const (
	methodPath  = "Path"
	minPathLen  = 2
	pathSegment = core.SegmentID(1)
	originLat   = 52.0
	originLon   = -0.7
	stepDeg     = 0.001
)

// Path returns a Constructor that lays n nodes on one road.
func Path(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minPathLen {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathLen, ErrTooFewNodes)
		}
		for i := 0; i < n; i++ {
			b.InsertNode(core.Node{ID: cfg.idFn(i), Lat: originLat + float64(i)*stepDeg, Lon: originLon})
		}
		b.InsertSegmentInfo(core.SegmentInfo{ID: pathSegment, Name: methodPath})
		for i := 0; i+1 < n; i++ {
			emit(b, cfg, cfg.idFn(i), cfg.idFn(i+1), pathSegment)
		}
		return nil
	}
}
