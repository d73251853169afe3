// ABOUTME: Root Cobra command for lift CLI.
// ABOUTME: Opens the store, migrates, seeds, and resolves the guest user.
package main

import (
	"fmt"
	"strings"

	"github.com/harperreed/lift/internal/config"
	"github.com/harperreed/lift/internal/models"
	"github.com/harperreed/lift/internal/store"
	"github.com/harperreed/lift/internal/units"
	"github.com/spf13/cobra"
)

var (
	dbPathFlag  string
	st          *store.Store
	currentUser *models.User
)

var rootCmd = &cobra.Command{
	Use:   "lift",
	Short: "Personal workout log",
	Long: `Lift is a CLI tool for logging weight training sets and tracking
personal records.

QUICK START:

  $ lift log "Bench Press" 135            # Log a set (weight in lbs, 7 reps)
  $ lift log "Bench Press" 145 --reps 5   # Log with explicit reps
  $ lift log Squat 100 --kg               # Log kilogram input (stored as lbs)
  $ lift recent                           # Recently trained workouts
  $ lift history "Bench Press"            # All sets for a workout, PRs marked
  $ lift pr "Bench Press"                 # Personal record

CATALOG:

  58 built-in exercises across 7 muscle groups, plus your own:

  $ lift workouts                         # Muscle groups and counts
  $ lift workouts --group chest           # Exercises in a group
  $ lift search bench                     # Search by name
  $ lift workouts add "Zercher Squat" --group legs

FAVORITES & SETTINGS:

  $ lift fav "Bench Press"                # Toggle favorite
  $ lift fav --list                       # List favorites
  $ lift user --unit kg                   # Display weights in kilograms
  $ lift user --theme light

MCP INTEGRATION:

  Run 'lift mcp' to start the Model Context Protocol server for use with
  MCP-compatible AI assistants:

  {
    "mcpServers": {
      "lift": { "command": "lift", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  A single SQLite file at ~/.local/share/lift/lift.db. Weights are stored
  in pounds; the --kg flag and the unit preference only change display.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Commands that never touch the store
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if dbPathFlag != "" {
			st, err = store.Open(dbPathFlag)
		} else {
			st, err = cfg.OpenStore()
		}
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}

		if err := st.Seed(); err != nil {
			return fmt.Errorf("failed to seed reference data: %w", err)
		}

		currentUser, err = st.GetOrCreateLocalUser(cfg.GetDisplayName())
		if err != nil {
			return fmt.Errorf("failed to resolve user: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if st != nil {
			return st.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPathFlag, "db", "", "database file path (overrides config)")
}

// resolveWorkout finds a workout by exact id, then by name search. An
// exact (case-insensitive) name match wins over partial matches.
func resolveWorkout(nameOrID string) (*models.Workout, error) {
	w, err := st.WorkoutByID(nameOrID)
	if err != nil {
		return nil, err
	}
	if w != nil {
		return w, nil
	}

	matches, err := st.SearchWorkouts(nameOrID, 5)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no workout matches %q", nameOrID)
	}
	if strings.EqualFold(matches[0].Name, nameOrID) || len(matches) == 1 {
		return matches[0], nil
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m.Name)
	}
	return nil, fmt.Errorf("ambiguous workout %q: matches %s", nameOrID, strings.Join(names, ", "))
}

// displayWeight renders a stored (pounds) weight in the user's unit.
func displayWeight(lbs float64) string {
	if currentUser.WeightUnit == units.Kg {
		return fmt.Sprintf("%.1f kg", units.Convert(lbs, units.Lbs, units.Kg))
	}
	return fmt.Sprintf("%.1f lbs", lbs)
}
