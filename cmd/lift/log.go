// ABOUTME: CLI command for logging a weight entry.
// ABOUTME: Handles kg input conversion, back-dating, and rep defaults.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/lift/internal/models"
	"github.com/harperreed/lift/internal/units"
	"github.com/spf13/cobra"
)

var (
	logReps  int
	logNotes string
	logAt    string
	logKg    bool
)

var logCmd = &cobra.Command{
	Use:     "log <workout> <weight>",
	Aliases: []string{"l"},
	Short:   "Log a weight entry",
	Long: `Log a single set against a workout. Weight is in pounds unless --kg
is given, in which case the value is converted before storage.

Examples:
  lift log "Bench Press" 135
  lift log "Bench Press" 145 --reps 5 --notes "felt strong"
  lift log Squat 100 --kg
  lift log Deadlift 225 --at "2024-12-14 07:00"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := resolveWorkout(args[0])
		if err != nil {
			return err
		}

		weight, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid weight: %s", args[1])
		}
		if logKg {
			weight = units.Convert(weight, units.Kg, units.Lbs)
		}

		e := models.NewWeightEntry(currentUser.ID, w.ID, weight)
		if logReps > 0 {
			e.WithReps(logReps)
		}
		if logNotes != "" {
			e.WithNotes(logNotes)
		}
		if logAt != "" {
			t, err := parseTime(logAt)
			if err != nil {
				return fmt.Errorf("invalid timestamp: %s", logAt)
			}
			e.WithRecordedAt(t)
		}

		if err := st.LogEntry(e); err != nil {
			return fmt.Errorf("failed to log entry: %w", err)
		}

		pr, err := st.PersonalRecord(currentUser.ID, w.ID)
		if err != nil {
			return fmt.Errorf("failed to check personal record: %w", err)
		}

		color.Green("✓ Logged %s", w.Name)
		fmt.Printf("  %s %s x %d\n",
			color.New(color.Faint).Sprint(e.ID[:8]),
			displayWeight(e.Weight), e.Reps)
		if pr != nil && pr.ID == e.ID {
			color.Yellow("  ★ New personal record!")
		}

		return nil
	},
}

func parseTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02",
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format")
}

func init() {
	logCmd.Flags().IntVar(&logReps, "reps", 0, "rep count (default 7)")
	logCmd.Flags().StringVar(&logNotes, "notes", "", "notes for the entry")
	logCmd.Flags().StringVar(&logAt, "at", "", "timestamp (YYYY-MM-DD HH:MM)")
	logCmd.Flags().BoolVar(&logKg, "kg", false, "weight value is in kilograms")
	rootCmd.AddCommand(logCmd)
}
