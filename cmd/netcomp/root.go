package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/netcomp/internal/logging"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

type rootFlags struct {
	verbose int
	noColor bool
}

func newRootCmd() *cobra.Command {
	var rf rootFlags
	root := &cobra.Command{
		Use:           "netcomp",
		Short:         "Structural distances between And-Inverter Graphs",
		Long:          `netcomp compares circuits (AIGER files or edge lists) with DeltaCon0, resistance, spectral, NetSimile and vertex-edge overlap.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logging.Console(cmd.ErrOrStderr(), rf.noColor)
			logging.SetLevel(rf.verbose)
		},
	}
	root.PersistentFlags().CountVarP(&rf.verbose, "verbose", "v", "increase log verbosity (-v debug, -vv trace)")
	root.PersistentFlags().BoolVar(&rf.noColor, "no-color", false, "disable coloured log output")

	root.AddCommand(newCompareCmd(), newBatchCmd(), newConfigCmd(), newVersionCmd())

	return root
}
