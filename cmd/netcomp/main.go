// Command netcomp computes structural distances between And-Inverter Graphs.
//
// Usage:
//
//	netcomp compare left.aig right.aig --metric netsimile --metric resistance
//	netcomp batch --config run.yaml --workers 8 --output results.csv
//	netcomp config > run.yaml
//	netcomp version
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("netcomp failed")
		stop()
		os.Exit(1)
	}
}
