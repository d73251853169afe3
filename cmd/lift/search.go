// ABOUTME: CLI command for searching the workout catalog.
// ABOUTME: Prefix matches rank before substring matches.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:     "search [query]",
	Aliases: []string{"s"},
	Short:   "Search workouts by name",
	Long: `Search the workout catalog by name. Matching is a case-insensitive
substring match; names starting with the query rank first. With no query,
lists the whole catalog.

Examples:
  lift search bench
  lift search curl -n 5
  lift search`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := ""
		if len(args) == 1 {
			query = args[0]
		}

		workouts, err := st.SearchWorkouts(query, searchLimit)
		if err != nil {
			return fmt.Errorf("failed to search workouts: %w", err)
		}
		if len(workouts) == 0 {
			fmt.Println("No workouts found.")
			return nil
		}

		favs, err := st.FavoriteIDs(currentUser.ID)
		if err != nil {
			return fmt.Errorf("failed to load favorites: %w", err)
		}

		for _, w := range workouts {
			marker := "  "
			if favs[w.ID] {
				marker = color.YellowString("♥ ")
			}
			name := w.Name
			if w.IsCustom {
				name += color.New(color.Faint).Sprint(" (custom)")
			}
			fmt.Printf("%s%s\n", marker, name)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 20, "max results")
	rootCmd.AddCommand(searchCmd)
}
