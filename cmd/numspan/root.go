package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "numspan",
	Short: "numspan - digit grouping for numeric literals in text",
	Long: `Numspan finds numeric literals (decimal, hex, binary, hex float and
ISO-8601 basic timestamps) in text and splits long digit runs into
alternating groups so they become readable at a glance:

    28318530  ->  (28)(318)(530)

Scan results can be printed directly or stored in a database for later
reporting.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
