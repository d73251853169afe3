// ABOUTME: MCP resource implementations for the workout log.
// ABOUTME: Provides lift://recent and lift://muscle-groups resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harperreed/lift/internal/units"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// lift://recent - the user's recently trained workouts
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "lift://recent",
		Name:        "Recent Workouts",
		Description: "Most recently trained workouts with their latest entries",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	// lift://muscle-groups - catalog structure
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "lift://muscle-groups",
		Name:        "Muscle Groups",
		Description: "Muscle groups in display order with workout counts",
		MIMEType:    "application/json",
	}, s.handleMuscleGroupsResource)
}

// Resource handlers

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	recents, err := s.store.RecentWorkouts(s.user.ID, 10)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent workouts: %w", err)
	}

	rows := make([]map[string]interface{}, 0, len(recents))
	for _, rw := range recents {
		rows = append(rows, map[string]interface{}{
			"workout":      rw.Workout.Name,
			"muscle_group": rw.Workout.MuscleGroupID,
			"weight_lbs":   rw.Entry.Weight,
			"reps":         rw.Entry.Reps,
			"recorded_at":  units.FormatTime(rw.Entry.RecordedAt),
		})
	}

	result := map[string]interface{}{
		"user":    s.user.DisplayName,
		"recents": rows,
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "lift://recent",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleMuscleGroupsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	groups, err := s.store.MuscleGroups()
	if err != nil {
		return nil, fmt.Errorf("failed to list muscle groups: %w", err)
	}

	rows := make([]map[string]interface{}, 0, len(groups))
	for _, g := range groups {
		count, err := s.store.WorkoutCountByMuscleGroup(g.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count workouts: %w", err)
		}
		rows = append(rows, map[string]interface{}{
			"id":       g.ID,
			"name":     g.Name,
			"order":    g.DisplayOrder,
			"workouts": count,
		})
	}

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "lift://muscle-groups",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
