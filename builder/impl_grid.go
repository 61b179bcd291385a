// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_grid.go - Grid(rows, cols): a Manhattan street grid.
//
// Canonical model:
//   - Node (r,c) has index r*cols+c and sits at (originLat + r·step, originLon + c·step).
//   - Each row is one street segment named "Row r", each column one avenue named "Col c",
//     so a trace along a straight line collapses to a single name.
//   - Row segments use ids 1000+r, column segments 2000+c.
//
// Determinism:
//   - Nodes in row-major order; for each (r,c) emit Right then Bottom.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

const (
	methodGrid     = "Grid"
	minGridDim     = 1
	rowSegmentBase = 1000
	colSegmentBase = 2000
)

// RowSegment is the segment id of grid row r.
func RowSegment(r int) core.SegmentID { return core.SegmentID(rowSegmentBase + r) }

// ColSegment is the segment id of grid column c.
func ColSegment(c int) core.SegmentID { return core.SegmentID(colSegmentBase + c) }

// Grid returns a Constructor that builds a rows×cols street grid.
func Grid(rows, cols int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewNodes)
		}

		id := func(r, c int) core.NodeID { return cfg.idFn(r*cols + c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				b.InsertNode(core.Node{
					ID:  id(r, c),
					Lat: originLat + float64(r)*stepDeg,
					Lon: originLon + float64(c)*stepDeg,
				})
			}
		}
		for r := 0; r < rows; r++ {
			b.InsertSegmentInfo(core.SegmentInfo{ID: RowSegment(r), Name: fmt.Sprintf("Row %d", r)})
		}
		for c := 0; c < cols; c++ {
			b.InsertSegmentInfo(core.SegmentInfo{ID: ColSegment(c), Name: fmt.Sprintf("Col %d", c)})
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					emit(b, cfg, id(r, c), id(r, c+1), RowSegment(r))
				}
				if r+1 < rows {
					emit(b, cfg, id(r, c), id(r+1, c), ColSegment(c))
				}
			}
		}
		return nil
	}
}
