package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/bfs"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/router"
	"github.com/katalvlaran/lvroute/server"
)

func newRouteCmd(a *app) *cobra.Command {
	var (
		maxCost uint64
		trace   bool
		asJSON  bool
	)
	cmd := &cobra.Command{
		Use:   "route FROM TO",
		Short: "Find the least-cost route between two node ids",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseNodeID(args[0])
			if err != nil {
				return err
			}
			to, err := parseNodeID(args[1])
			if err != nil {
				return err
			}
			rt, err := a.loadRouter(cmd)
			if err != nil {
				return err
			}

			res, err := rt.Route(router.Query{From: from, To: to, MaxCost: maxCost, Trace: trace})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return json.NewEncoder(out).Encode(res)
			}
			if !res.Found() {
				fmt.Fprintln(out, "no path found")
				return nil
			}
			fmt.Fprintf(out, "cost: %d\n", res.Cost)
			if trace {
				fmt.Fprintf(out, "route: %s\n", res.Route())
			}
			return nil
		},
	}
	cmd.Flags().Uint64Var(&maxCost, "max-cost", 0, "cost ceiling; 0 uses the configured default")
	cmd.Flags().BoolVar(&trace, "trace", false, "print the road segments traversed")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full result as JSON")
	return cmd
}

func newReachCmd(a *app) *cobra.Command {
	var maxCost uint64
	cmd := &cobra.Command{
		Use:   "reach FROM",
		Short: "List every node within a cost ceiling of a node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseNodeID(args[0])
			if err != nil {
				return err
			}
			if maxCost == 0 && a.cfg.Search.DefaultMaxCost == 0 {
				return errors.New("reach needs --max-cost or search.default_max_cost")
			}
			rt, err := a.loadRouter(cmd)
			if err != nil {
				return err
			}

			res, err := rt.Reach(from, maxCost)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "reachable: %d\n", res.Len())
			for _, id := range res.Nodes() {
				c, _ := res.Cost(id)
				fmt.Fprintf(out, "%d\t%d\n", id, c)
			}
			return nil
		},
	}
	cmd.Flags().Uint64Var(&maxCost, "max-cost", 0, "cost ceiling")
	return cmd
}

func newHopsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hops FROM TO",
		Short: "Find the path with the fewest road arcs, ignoring cost",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseNodeID(args[0])
			if err != nil {
				return err
			}
			to, err := parseNodeID(args[1])
			if err != nil {
				return err
			}
			rt, err := a.loadRouter(cmd)
			if err != nil {
				return err
			}

			path, err := rt.Hops(cmd.Context(), from, to)
			out := cmd.OutOrStdout()
			switch {
			case errors.Is(err, bfs.ErrNoPath):
				fmt.Fprintln(out, "no path found")
				return nil
			case err != nil:
				return err
			}
			fmt.Fprintf(out, "hops: %d\n", len(path)-1)
			fmt.Fprintln(out, path)
			return nil
		},
	}
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Load the map and print graph and component statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := a.loadRouter(cmd)
			if err != nil {
				return err
			}
			out := struct {
				core.GraphStats
				router.Connectivity
			}{rt.Stats(), rt.Connectivity()}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
}

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve route queries over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr != "" {
				a.cfg.Server.Addr = addr
			}
			rt, err := a.loadRouter(cmd)
			if err != nil {
				return err
			}
			return server.New(rt, a.cfg.Server, a.reg, a.log).Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	return cmd
}
