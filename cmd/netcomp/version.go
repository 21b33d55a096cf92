package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/netcomp/config"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the netcomp version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "netcomp %s (%s)\n", version, runtime.Version())
		},
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the default run configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return config.Default().Write(cmd.OutOrStdout())
		},
	}
}
