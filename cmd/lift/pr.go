// ABOUTME: CLI command for showing a workout's personal record.
// ABOUTME: Also shows the last entry for quick comparison.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var prCmd = &cobra.Command{
	Use:   "pr <workout>",
	Short: "Show your personal record for a workout",
	Long: `Show the maximum-weight entry you have logged for a workout, along
with your most recent entry.

Examples:
  lift pr "Bench Press"
  lift pr deadlift`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := resolveWorkout(args[0])
		if err != nil {
			return err
		}

		pr, err := st.PersonalRecord(currentUser.ID, w.ID)
		if err != nil {
			return fmt.Errorf("failed to load personal record: %w", err)
		}
		if pr == nil {
			fmt.Printf("No entries for %s yet.\n", w.Name)
			return nil
		}

		last, err := st.LastEntry(currentUser.ID, w.ID)
		if err != nil {
			return fmt.Errorf("failed to load last entry: %w", err)
		}

		fmt.Println(color.New(color.Bold).Sprint(w.Name))
		color.Yellow("  ★ PR    %s x %d  (%s)",
			displayWeight(pr.Weight), pr.Reps, pr.RecordedAt.Format("2006-01-02"))
		if last != nil && last.ID != pr.ID {
			fmt.Printf("    last  %s x %d  (%s)\n",
				displayWeight(last.Weight), last.Reps, last.RecordedAt.Format("2006-01-02"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(prCmd)
}
