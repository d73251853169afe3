// ABOUTME: CLI command for printing the lift version.
// ABOUTME: Version is overridable at build time via -ldflags.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the lift version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("lift %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
