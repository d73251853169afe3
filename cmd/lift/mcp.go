// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/lift/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant
integration. The server communicates via stdin/stdout and operates as the
local guest user.

CONFIGURATION:

  {
    "mcpServers": {
      "lift": {
        "command": "lift",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  log_entry            Log a weight/rep set
  get_recent_workouts  Recently trained workouts
  search_workouts      Search the catalog by name
  get_workout_history  Entries for a workout, with PR flags
  get_personal_record  Maximum-weight entry for a workout
  toggle_favorite      Flip a workout's favorite state
  list_muscle_groups   Muscle groups with workout counts
  create_workout       Create a custom workout
  delete_entry         Delete a logged entry

AVAILABLE RESOURCES:

  lift://recent         Recently trained workouts
  lift://muscle-groups  Catalog structure`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(st, currentUser)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
