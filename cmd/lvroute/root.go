package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/config"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/logging"
	"github.com/katalvlaran/lvroute/metrics"
	"github.com/katalvlaran/lvroute/router"
)

// app carries the resolved configuration shared by every subcommand.
type app struct {
	configPath string
	mapPath    string
	mapFormat  string
	logLevel   string

	cfg     config.Config
	log     *slog.Logger
	reg     *prometheus.Registry
	metrics *metrics.Metrics
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "lvroute",
		Short: "Least-cost routing over OpenStreetMap road networks",
		Long: `lvroute builds a compact routing graph from an OSM extract (XML or PBF)
and answers least-cost route queries between node ids.

Configuration is read from --config (YAML) when given; --map, --format and
--log-level override the file.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.mapPath, "map", "", "OSM extract (.osm, .xml or .pbf)")
	pf.StringVar(&a.mapFormat, "format", "", "force map format: xml or pbf")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error")

	root.AddCommand(newRouteCmd(a), newReachCmd(a), newHopsCmd(a), newStatsCmd(a), newServeCmd(a))
	return root
}

// setup resolves configuration, logging and metrics before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.cfg = config.Default()
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	if a.mapPath != "" {
		a.cfg.Map.Path = a.mapPath
	}
	if a.mapFormat != "" {
		a.cfg.Map.Format = a.mapFormat
	}
	if a.logLevel != "" {
		a.cfg.Log.Level = a.logLevel
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	lc := a.cfg.Logging()
	lc.Output = cmd.ErrOrStderr()
	log, err := logging.New(lc)
	if err != nil {
		return err
	}
	a.log = log
	a.reg = prometheus.NewRegistry()
	a.metrics = metrics.New(a.reg)
	return nil
}

// loadRouter ingests the configured map and wraps it in a Router.
func (a *app) loadRouter(cmd *cobra.Command) (*router.Router, error) {
	start := time.Now()
	g, _, err := router.BuildFromFile(cmd.Context(), a.cfg.Map, a.log, a.metrics)
	if err != nil {
		return nil, err
	}
	a.log.Debug("map loaded", slog.Duration("elapsed", time.Since(start)))
	return router.New(g,
		router.WithLogger(a.log),
		router.WithMetrics(a.metrics),
		router.WithDefaultMaxCost(a.cfg.Search.DefaultMaxCost),
	), nil
}

func parseNodeID(s string) (core.NodeID, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("node id %q: want an unsigned integer", s)
	}
	return core.NodeID(id), nil
}
