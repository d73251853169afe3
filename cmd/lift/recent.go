// ABOUTME: CLI command for listing recently trained workouts.
// ABOUTME: One row per workout showing its most recent entry.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var recentLimit int

var recentCmd = &cobra.Command{
	Use:     "recent",
	Aliases: []string{"r"},
	Short:   "Show recently trained workouts",
	Long: `Show the workouts you trained most recently, one row per workout with
that workout's latest entry.

Examples:
  lift recent
  lift recent -n 5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		recents, err := st.RecentWorkouts(currentUser.ID, recentLimit)
		if err != nil {
			return fmt.Errorf("failed to list recent workouts: %w", err)
		}
		if len(recents) == 0 {
			fmt.Println("No workouts logged yet. Try: lift log \"Bench Press\" 135")
			return nil
		}

		for _, rw := range recents {
			fmt.Printf("%s  %-28s %s x %d\n",
				rw.Entry.RecordedAt.Format("2006-01-02"),
				color.New(color.Bold).Sprint(rw.Workout.Name),
				displayWeight(rw.Entry.Weight), rw.Entry.Reps)
		}
		return nil
	},
}

func init() {
	recentCmd.Flags().IntVarP(&recentLimit, "limit", "n", 10, "max workouts to show")
	rootCmd.AddCommand(recentCmd)
}
