// Command lvroute loads an OpenStreetMap extract and answers least-cost
// route queries from the command line or over HTTP.
//
//	lvroute --map rutland.osm.pbf route 18335097 18327809 --trace
//	lvroute --map rutland.osm.pbf reach 18335097 --max-cost 2000
//	lvroute --config lvroute.yaml serve
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
