package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "reflow-bench",
		Short: "Synthetic load scenarios for the reflow reactive core",
		Long: `reflow-bench drives the reflow value graph with synthetic load.

Scenarios:

  • fanout — one value, many subscribers, measures wave throughput
  • chain  — a chain of combined values, verifies depth-first settling
  • serve  — runs a continuous scenario and exposes Prometheus metrics`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		fanoutCmd(),
		chainCmd(),
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
