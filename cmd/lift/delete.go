// ABOUTME: CLI commands for deleting and editing logged entries.
// ABOUTME: Both are scoped to the current user; foreign rows no-op.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/lift/internal/store"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <entry-id>",
	Aliases: []string{"rm"},
	Short:   "Delete a logged entry",
	Long: `Delete a logged entry by id. Only your own entries can be deleted;
anything else is a no-op.

Examples:
  lift delete 3f2a9c1e-...`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deleted, err := st.DeleteEntry(args[0], currentUser.ID)
		if err != nil {
			return fmt.Errorf("failed to delete entry: %w", err)
		}
		if !deleted {
			fmt.Printf("No entry deleted for id %s\n", args[0])
			return nil
		}
		color.Green("✓ Deleted entry %s", args[0])
		return nil
	},
}

var (
	editWeight string
	editReps   int
	editNotes  string
)

var editCmd = &cobra.Command{
	Use:   "edit <entry-id>",
	Short: "Edit a logged entry",
	Long: `Partially update a logged entry. Only supplied flags change; with no
flags the command is a no-op.

Examples:
  lift edit 3f2a9c1e --weight 145
  lift edit 3f2a9c1e --reps 5 --notes "paused reps"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		upd := store.EntryUpdate{}
		if editWeight != "" {
			w, err := strconv.ParseFloat(editWeight, 64)
			if err != nil {
				return fmt.Errorf("invalid weight: %s", editWeight)
			}
			upd.Weight = &w
		}
		if editReps > 0 {
			upd.Reps = &editReps
		}
		if cmd.Flags().Changed("notes") {
			upd.Notes = &editNotes
		}

		changed, err := st.UpdateEntry(args[0], currentUser.ID, upd)
		if err != nil {
			return fmt.Errorf("failed to update entry: %w", err)
		}
		if !changed {
			fmt.Println("Nothing updated.")
			return nil
		}
		color.Green("✓ Updated entry %s", args[0])
		return nil
	},
}

func init() {
	editCmd.Flags().StringVar(&editWeight, "weight", "", "new weight (lbs)")
	editCmd.Flags().IntVar(&editReps, "reps", 0, "new rep count")
	editCmd.Flags().StringVar(&editNotes, "notes", "", "new notes")
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(editCmd)
}
