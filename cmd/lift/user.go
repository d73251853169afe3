// ABOUTME: CLI command for viewing and updating user preferences.
// ABOUTME: Supports display name, weight unit, and theme changes.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/lift/internal/models"
	"github.com/harperreed/lift/internal/store"
	"github.com/harperreed/lift/internal/units"
	"github.com/spf13/cobra"
)

var (
	userName  string
	userUnit  string
	userTheme string
)

var userCmd = &cobra.Command{
	Use:     "user",
	Aliases: []string{"u"},
	Short:   "Show or update your profile",
	Long: `Show your profile, or update preferences with flags. The weight unit
only changes display; storage is always pounds.

Examples:
  lift user
  lift user --unit kg
  lift user --theme light
  lift user --name "Harper"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		upd := store.UserUpdate{}
		if userName != "" {
			upd.DisplayName = &userName
		}
		if userUnit != "" {
			if !units.IsValidWeightUnit(userUnit) {
				return fmt.Errorf("unknown unit %q (want lbs or kg)", userUnit)
			}
			u := units.WeightUnit(userUnit)
			upd.WeightUnit = &u
		}
		if userTheme != "" {
			if !models.IsValidTheme(userTheme) {
				return fmt.Errorf("unknown theme %q (want dark or light)", userTheme)
			}
			t := models.Theme(userTheme)
			upd.Theme = &t
		}

		if upd.DisplayName != nil || upd.WeightUnit != nil || upd.Theme != nil {
			changed, err := st.UpdateUserPreferences(currentUser.ID, upd)
			if err != nil {
				return fmt.Errorf("failed to update preferences: %w", err)
			}
			if changed {
				color.Green("✓ Preferences updated")
			}
			// Re-read so the summary below reflects the change
			currentUser, err = st.UserByID(currentUser.ID)
			if err != nil {
				return fmt.Errorf("failed to reload user: %w", err)
			}
		}

		fmt.Println(color.New(color.Bold).Sprint(currentUser.DisplayName))
		provider := "local"
		if currentUser.AuthProvider != nil {
			provider = string(*currentUser.AuthProvider)
		}
		fmt.Printf("  unit: %s  theme: %s  account: %s\n",
			currentUser.WeightUnit, currentUser.Theme, provider)
		return nil
	},
}

func init() {
	userCmd.Flags().StringVar(&userName, "name", "", "set display name")
	userCmd.Flags().StringVar(&userUnit, "unit", "", "set weight unit (lbs or kg)")
	userCmd.Flags().StringVar(&userTheme, "theme", "", "set theme (dark or light)")
	rootCmd.AddCommand(userCmd)
}
