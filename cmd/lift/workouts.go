// ABOUTME: CLI commands for browsing the catalog and adding custom workouts.
// ABOUTME: Lists muscle groups, group contents, and creates custom entries.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/lift/internal/models"
	"github.com/spf13/cobra"
)

var (
	workoutsGroup string
	addGroup      string
)

var workoutsCmd = &cobra.Command{
	Use:     "workouts",
	Aliases: []string{"w"},
	Short:   "Browse the workout catalog",
	Long: `Browse the workout catalog. Without flags, lists the muscle groups
and how many exercises each holds. With --group, lists that group's
exercises alphabetically.

Examples:
  lift workouts
  lift workouts --group chest
  lift workouts add "Zercher Squat" --group legs`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if workoutsGroup != "" {
			group, err := resolveMuscleGroup(workoutsGroup)
			if err != nil {
				return err
			}

			workouts, err := st.WorkoutsByMuscleGroup(group.ID)
			if err != nil {
				return fmt.Errorf("failed to list workouts: %w", err)
			}

			fmt.Println(color.New(color.Bold).Sprint(group.Name))
			for _, w := range workouts {
				name := w.Name
				if w.IsCustom {
					name += color.New(color.Faint).Sprint(" (custom)")
				}
				fmt.Printf("  %s\n", name)
			}
			return nil
		}

		groups, err := st.MuscleGroups()
		if err != nil {
			return fmt.Errorf("failed to list muscle groups: %w", err)
		}
		for _, g := range groups {
			count, err := st.WorkoutCountByMuscleGroup(g.ID)
			if err != nil {
				return fmt.Errorf("failed to count workouts: %w", err)
			}
			fmt.Printf("%-12s %d workouts\n", g.Name, count)
		}
		return nil
	},
}

var workoutsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a custom workout",
	Long: `Create a custom workout in a muscle group. Names are not required to
be unique.

Examples:
  lift workouts add "Zercher Squat" --group legs
  lift workouts add "Landmine Press" --group shoulders`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if addGroup == "" {
			return fmt.Errorf("--group is required")
		}
		group, err := resolveMuscleGroup(addGroup)
		if err != nil {
			return err
		}

		w, err := st.CreateCustomWorkout(args[0], group.ID, currentUser.ID)
		if err != nil {
			return fmt.Errorf("failed to create workout: %w", err)
		}

		color.Green("✓ Created %s", w.Name)
		fmt.Printf("  %s in %s\n",
			color.New(color.Faint).Sprint(w.ID[:8]), group.Name)
		return nil
	},
}

// resolveMuscleGroup finds a muscle group by id or name.
func resolveMuscleGroup(nameOrID string) (*models.MuscleGroup, error) {
	g, err := st.MuscleGroupByID(nameOrID)
	if err != nil {
		return nil, err
	}
	if g != nil {
		return g, nil
	}

	groups, err := st.MuscleGroups()
	if err != nil {
		return nil, err
	}
	for _, g := range groups {
		if strings.EqualFold(g.Name, nameOrID) {
			return g, nil
		}
	}
	return nil, fmt.Errorf("unknown muscle group: %s", nameOrID)
}

func init() {
	workoutsAddCmd.Flags().StringVar(&addGroup, "group", "", "muscle group name or id")
	workoutsCmd.Flags().StringVar(&workoutsGroup, "group", "", "list a single muscle group")
	workoutsCmd.AddCommand(workoutsAddCmd)
	rootCmd.AddCommand(workoutsCmd)
}
