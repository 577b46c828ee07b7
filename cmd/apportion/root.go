package main

import (
	"os"

	"github.com/spf13/cobra"
)

// jsonOutput switches all command output from human-readable tables to JSON.
// Bound to the persistent --json flag so every subcommand honors it.
var jsonOutput bool

var rootCmd = &cobra.Command{
	Use:   "apportion",
	Short: "Apportion U.S. House seats with the Huntington-Hill method",
	Long: `apportion allocates a fixed number of House seats among the states in
proportion to their 2020 census populations, using the Huntington-Hill
method of equal proportions — the procedure in actual use since 1941.

The seat total, the per-state floor, and the participation of DC and
Puerto Rico are all configurable via flags or a small YAML file.`,
	SilenceUsage: true,
}

// Execute runs the root command. Called by main.main(); cobra prints any
// returned error to stderr, and we translate it into a non-zero exit code.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit JSON instead of a table")
}
