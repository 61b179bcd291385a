package router

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/katalvlaran/lvroute/config"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/metrics"
	"github.com/katalvlaran/lvroute/osm"
)

// BuildFromFile ingests the extract named by cfg and compacts it.
// log and m may be nil.
func BuildFromFile(ctx context.Context, cfg config.MapConfig, log *slog.Logger, m *metrics.Metrics) (*core.Graph, osm.LoadStats, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if cfg.Path == "" {
		return nil, osm.LoadStats{}, ErrNoMap
	}

	start := time.Now()
	b := core.NewBuilder(core.WithUsageTracking(!cfg.KeepIsolated))

	lopts := []osm.Option{osm.WithLogger(log)}
	if len(cfg.RoadTypes) > 0 {
		lopts = append(lopts, osm.WithRoadTypes(cfg.RoadTypes))
	}

	var (
		stats osm.LoadStats
		err   error
	)
	if cfg.Format == "" {
		stats, err = osm.LoadFile(ctx, cfg.Path, b, lopts...)
	} else {
		stats, err = loadWithFormat(ctx, cfg, b, lopts)
	}
	if err != nil {
		return nil, stats, fmt.Errorf("router: load %s: %w", cfg.Path, err)
	}

	g, err := b.Build()
	if err != nil {
		return nil, stats, fmt.Errorf("router: build %s: %w", cfg.Path, err)
	}
	elapsed := time.Since(start)

	m.ObserveBuild(elapsed)
	m.SetGraph(g.NodeCount(), g.ArcCount())
	gs := g.Stats()
	log.Info("graph ready",
		slog.String("map", cfg.Path),
		slog.Int("nodes", gs.Nodes),
		slog.Int("arcs", gs.Arcs),
		slog.Int("segments", gs.Segments),
		slog.Int("dropped_nodes", gs.DroppedNodes),
		slog.Duration("elapsed", elapsed),
	)
	return g, stats, nil
}

func loadWithFormat(ctx context.Context, cfg config.MapConfig, b *core.Builder, opts []osm.Option) (osm.LoadStats, error) {
	format, err := osm.ParseFormat(cfg.Format)
	if err != nil {
		return osm.LoadStats{}, err
	}
	f, err := os.Open(cfg.Path)
	if err != nil {
		return osm.LoadStats{}, err
	}
	defer f.Close()
	return osm.Load(ctx, f, format, b, opts...)
}
