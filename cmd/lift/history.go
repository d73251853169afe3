// ABOUTME: CLI command for showing a workout's entry history.
// ABOUTME: Flags every entry matching the PR weight, newest first.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:     "history <workout>",
	Aliases: []string{"h"},
	Short:   "Show entry history for a workout",
	Long: `Show your logged sets for a workout, newest first. Entries at the
personal-record weight are marked with ★ — ties all get the mark.

Examples:
  lift history "Bench Press"
  lift history squat -n 50`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := resolveWorkout(args[0])
		if err != nil {
			return err
		}

		entries, err := st.WorkoutHistory(w.ID, currentUser.ID, historyLimit)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}
		if len(entries) == 0 {
			fmt.Printf("No entries for %s yet.\n", w.Name)
			return nil
		}

		pr, err := st.PersonalRecord(currentUser.ID, w.ID)
		if err != nil {
			return fmt.Errorf("failed to load personal record: %w", err)
		}

		fmt.Println(color.New(color.Bold).Sprint(w.Name))
		for _, e := range entries {
			line := fmt.Sprintf("%s  %s  %s x %d",
				color.New(color.Faint).Sprint(e.ID[:8]),
				e.RecordedAt.Format("2006-01-02 15:04"),
				displayWeight(e.Weight), e.Reps)
			if pr != nil && e.Weight == pr.Weight {
				line += color.YellowString("  ★ PR")
			}
			if e.Notes != nil {
				line += color.New(color.Faint).Sprintf("  (%s)", *e.Notes)
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "max entries to show")
	rootCmd.AddCommand(historyCmd)
}
