// ABOUTME: CLI command for wiping the local database. Development only.
// ABOUTME: Drops all tables, then recreates and reseeds the schema.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe all data (development)",
	Long: `Drop every table, recreate the schema, and reseed the built-in
catalog. All logged entries, custom workouts, favorites, and users are
lost. Requires --force.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetForce {
			return fmt.Errorf("refusing to wipe without --force")
		}

		if err := st.Reset(); err != nil {
			return fmt.Errorf("failed to reset: %w", err)
		}
		color.Green("✓ Database wiped and reseeded")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "confirm the wipe")
	rootCmd.AddCommand(resetCmd)
}
