// ABOUTME: CLI command for toggling and listing favorite workouts.
// ABOUTME: Toggle reports the resulting state; --list shows newest first.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var favList bool

var favCmd = &cobra.Command{
	Use:     "fav [workout]",
	Aliases: []string{"f"},
	Short:   "Toggle or list favorite workouts",
	Long: `Toggle a workout's favorite state, or list your favorites with
--list (most recently favorited first).

Examples:
  lift fav "Bench Press"
  lift fav --list`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if favList {
			favorites, err := st.Favorites(currentUser.ID)
			if err != nil {
				return fmt.Errorf("failed to list favorites: %w", err)
			}
			if len(favorites) == 0 {
				fmt.Println("No favorites yet. Try: lift fav \"Bench Press\"")
				return nil
			}
			for _, w := range favorites {
				fmt.Printf("%s %s\n", color.YellowString("♥"), w.Name)
			}
			return nil
		}

		if len(args) != 1 {
			return fmt.Errorf("workout argument required (or use --list)")
		}

		w, err := resolveWorkout(args[0])
		if err != nil {
			return err
		}

		nowFavorite, err := st.ToggleFavorite(currentUser.ID, w.ID)
		if err != nil {
			return fmt.Errorf("failed to toggle favorite: %w", err)
		}

		if nowFavorite {
			color.Yellow("♥ Favorited %s", w.Name)
		} else {
			fmt.Printf("Unfavorited %s\n", w.Name)
		}
		return nil
	},
}

func init() {
	favCmd.Flags().BoolVar(&favList, "list", false, "list favorites")
	rootCmd.AddCommand(favCmd)
}
