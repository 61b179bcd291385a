// SPDX-License-Identifier: MIT
//
// File: load.go
// Role: Streaming conversion of OSM nodes and ways into builder nodes, arcs and segments.
// Policy:
//   - Single pass; nodes must precede the ways that reference them (OSM file order).
//   - Scanner errors are wrapped with ErrDecode; a cancelled ctx surfaces ctx.Err().
//   - The builder is never consumed here; callers Build when ingestion is done.

package osm

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"runtime"
	"time"

	"github.com/katalvlaran/lvroute/core"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
)

// direction of travel permitted on a way, relative to its node order.
type direction int

const (
	bothWays direction = iota
	forwardOnly
	reverseOnly
)

// Load decodes r in the given format and feeds every road into b.
func Load(ctx context.Context, r io.Reader, format Format, b *core.Builder, opts ...Option) (LoadStats, error) {
	if b == nil {
		return LoadStats{}, ErrNilBuilder
	}
	cfg := newOptions(opts...)

	var sc osm.Scanner
	switch format {
	case FormatXML:
		sc = osmxml.New(ctx, r)
	case FormatPBF:
		pbf := osmpbf.New(ctx, r, runtime.GOMAXPROCS(0))
		pbf.SkipRelations = true
		sc = pbf
	default:
		return LoadStats{}, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
	defer sc.Close()

	start := time.Now()
	l := loader{b: b, cfg: cfg}
	for sc.Scan() {
		switch o := sc.Object().(type) {
		case *osm.Node:
			l.node(o)
		case *osm.Way:
			l.way(o)
		}
	}
	if err := sc.Err(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return l.stats, ctxErr
		}
		return l.stats, fmt.Errorf("%w: %v: %w", ErrDecode, format, err)
	}
	if err := ctx.Err(); err != nil {
		return l.stats, err
	}

	cfg.log.Info("osm load finished",
		slog.String("format", format.String()),
		slog.Int("nodes", l.stats.Nodes),
		slog.Int("ways", l.stats.Ways),
		slog.Int("ignored_ways", l.stats.IgnoredWays),
		slog.Int("arcs", l.stats.Arcs),
		slog.Int("missing_nodes", l.stats.MissingNodes),
		slog.Duration("elapsed", time.Since(start)),
	)
	if l.stats.MissingNodes > 0 {
		cfg.log.Warn("osm ways referenced unknown nodes", slog.Int("pairs_skipped", l.stats.MissingNodes))
	}

	return l.stats, nil
}

// LoadFile opens path, infers its format from the extension and calls Load.
func LoadFile(ctx context.Context, path string, b *core.Builder, opts ...Option) (LoadStats, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return LoadStats{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return LoadStats{}, fmt.Errorf("osm: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(ctx, f, format, b, opts...)
}

// loader carries the state of one ingestion pass.
type loader struct {
	b     *core.Builder
	cfg   options
	stats LoadStats
}

func (l *loader) node(n *osm.Node) {
	l.b.InsertNode(core.Node{ID: core.NodeID(n.ID), Lat: n.Lat, Lon: n.Lon})
	l.stats.Nodes++
}

func (l *loader) way(w *osm.Way) {
	if _, ok := l.cfg.roads[w.Tags.Find("highway")]; !ok {
		l.stats.IgnoredWays++
		return
	}
	l.stats.Ways++

	seg := core.SegmentID(w.ID)
	if name := wayName(w.Tags); name != "" {
		l.b.InsertSegmentInfo(core.SegmentInfo{ID: seg, Name: name})
		l.stats.Segments++
	}

	dir := wayDirection(w.Tags)
	for i := 0; i+1 < len(w.Nodes); i++ {
		from, okFrom := l.b.Node(core.NodeID(w.Nodes[i].ID))
		to, okTo := l.b.Node(core.NodeID(w.Nodes[i+1].ID))
		if !okFrom || !okTo {
			l.stats.MissingNodes++
			continue
		}

		dist := Distance(from, to)
		cost := l.cfg.cost(dist)
		if dir != reverseOnly {
			l.b.InsertArc(from.ID, core.Arc[core.NodeID]{Head: to.ID, Distance: dist, Cost: cost, Segment: seg})
			l.stats.Arcs++
		}
		if dir != forwardOnly {
			l.b.InsertArc(to.ID, core.Arc[core.NodeID]{Head: from.ID, Distance: dist, Cost: cost, Segment: seg})
			l.stats.Arcs++
		}
	}
}

// Distance is the haversine distance between two nodes in whole metres.
func Distance(a, b core.Node) uint64 {
	d := geo.DistanceHaversine(orb.Point{a.Lon, a.Lat}, orb.Point{b.Lon, b.Lat})
	return uint64(math.Round(d))
}

func wayName(tags osm.Tags) string {
	if name := tags.Find("name"); name != "" {
		return name
	}
	return tags.Find("ref")
}

func wayDirection(tags osm.Tags) direction {
	switch tags.Find("oneway") {
	case "yes", "true", "1":
		return forwardOnly
	case "-1", "reverse":
		return reverseOnly
	case "no", "false", "0":
		return bothWays
	}
	if tags.Find("junction") == "roundabout" {
		return forwardOnly
	}
	return bothWays
}
