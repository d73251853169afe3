// ABOUTME: MCP tool implementations for the workout log.
// ABOUTME: Exposes logging, history, PR, search, and favorite operations.
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/harperreed/lift/internal/models"
	"github.com/harperreed/lift/internal/units"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// log_entry
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_entry",
		Description: "Log a weight/rep set against a workout",
	}, s.handleLogEntry)

	// get_recent_workouts
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_recent_workouts",
		Description: "List recently trained workouts, one row per workout with its latest entry",
	}, s.handleRecentWorkouts)

	// search_workouts
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "search_workouts",
		Description: "Search the workout catalog by name (prefix matches rank first)",
	}, s.handleSearchWorkouts)

	// get_workout_history
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_workout_history",
		Description: "Get logged entries for a workout, newest first, with PR flags",
	}, s.handleWorkoutHistory)

	// get_personal_record
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_personal_record",
		Description: "Get the maximum-weight entry for a workout",
	}, s.handlePersonalRecord)

	// toggle_favorite
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "toggle_favorite",
		Description: "Toggle a workout's favorite state and report the result",
	}, s.handleToggleFavorite)

	// list_muscle_groups
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_muscle_groups",
		Description: "List the muscle groups in display order with workout counts",
	}, s.handleListMuscleGroups)

	// create_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_workout",
		Description: "Create a custom workout in a muscle group",
	}, s.handleCreateWorkout)

	// delete_entry
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_entry",
		Description: "Delete a logged entry by id",
	}, s.handleDeleteEntry)
}

// Tool input/output types

type logEntryInput struct {
	Workout    string  `json:"workout" jsonschema:"Workout name or id"`
	Weight     float64 `json:"weight" jsonschema:"Weight value"`
	Unit       string  `json:"unit,omitempty" jsonschema:"Unit of the weight value (lbs or kg; default lbs)"`
	Reps       int     `json:"reps,omitempty" jsonschema:"Rep count (default 7)"`
	Notes      string  `json:"notes,omitempty" jsonschema:"Optional notes"`
	RecordedAt string  `json:"recorded_at,omitempty" jsonschema:"Timestamp (ISO 8601), defaults to now"`
}

type entryOutput struct {
	ID        string  `json:"id"`
	Workout   string  `json:"workout"`
	WeightLbs float64 `json:"weight_lbs"`
	Reps      int     `json:"reps"`
	Message   string  `json:"message"`
}

type workoutScopedInput struct {
	Workout string `json:"workout" jsonschema:"Workout name or id"`
	Limit   int    `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type searchInput struct {
	Query string `json:"query,omitempty" jsonschema:"Substring to match against workout names; empty matches all"`
	Limit int    `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type recentInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 10)"`
}

type createWorkoutInput struct {
	Name        string `json:"name" jsonschema:"Workout name"`
	MuscleGroup string `json:"muscle_group" jsonschema:"Muscle group name or id (Chest, Back, Legs, Shoulders, Biceps, Triceps, Core)"`
}

type deleteEntryInput struct {
	ID string `json:"id" jsonschema:"Entry id"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleLogEntry(ctx context.Context, req *mcp.CallToolRequest, input logEntryInput) (*mcp.CallToolResult, entryOutput, error) {
	w, err := s.resolveWorkout(input.Workout)
	if err != nil {
		return nil, entryOutput{}, err
	}

	if input.Unit != "" && !units.IsValidWeightUnit(input.Unit) {
		return nil, entryOutput{}, fmt.Errorf("unknown unit %q (want lbs or kg)", input.Unit)
	}
	weight := input.Weight
	if input.Unit == string(units.Kg) {
		weight = units.Convert(weight, units.Kg, units.Lbs)
	}

	e := models.NewWeightEntry(s.user.ID, w.ID, weight)
	if input.Reps > 0 {
		e.WithReps(input.Reps)
	}
	if input.Notes != "" {
		e.WithNotes(input.Notes)
	}
	if input.RecordedAt != "" {
		t, err := units.ParseTime(input.RecordedAt)
		if err != nil {
			return nil, entryOutput{}, fmt.Errorf("invalid recorded_at: %s", input.RecordedAt)
		}
		e.WithRecordedAt(t)
	}

	if err := s.store.LogEntry(e); err != nil {
		return nil, entryOutput{}, fmt.Errorf("failed to log entry: %w", err)
	}

	return nil, entryOutput{
		ID:        e.ID,
		Workout:   w.Name,
		WeightLbs: e.Weight,
		Reps:      e.Reps,
		Message:   fmt.Sprintf("Logged %s: %.1f lbs x %d", w.Name, e.Weight, e.Reps),
	}, nil
}

func (s *Server) handleRecentWorkouts(ctx context.Context, req *mcp.CallToolRequest, input recentInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 10
	}

	recents, err := s.store.RecentWorkouts(s.user.ID, input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list recent workouts: %w", err)
	}
	if len(recents) == 0 {
		return nil, map[string]interface{}{"message": "No workouts logged yet."}, nil
	}

	out := make([]map[string]interface{}, 0, len(recents))
	for _, rw := range recents {
		out = append(out, map[string]interface{}{
			"workout_id":   rw.Workout.ID,
			"workout":      rw.Workout.Name,
			"muscle_group": rw.Workout.MuscleGroupID,
			"weight_lbs":   rw.Entry.Weight,
			"reps":         rw.Entry.Reps,
			"recorded_at":  units.FormatTime(rw.Entry.RecordedAt),
		})
	}
	return nil, out, nil
}

func (s *Server) handleSearchWorkouts(ctx context.Context, req *mcp.CallToolRequest, input searchInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	workouts, err := s.store.SearchWorkouts(input.Query, input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to search workouts: %w", err)
	}
	if len(workouts) == 0 {
		return nil, map[string]interface{}{"message": "No workouts found."}, nil
	}

	favs, err := s.store.FavoriteIDs(s.user.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load favorites: %w", err)
	}

	out := make([]map[string]interface{}, 0, len(workouts))
	for _, w := range workouts {
		out = append(out, map[string]interface{}{
			"id":           w.ID,
			"name":         w.Name,
			"muscle_group": w.MuscleGroupID,
			"is_custom":    w.IsCustom,
			"is_favorite":  favs[w.ID],
		})
	}
	return nil, out, nil
}

func (s *Server) handleWorkoutHistory(ctx context.Context, req *mcp.CallToolRequest, input workoutScopedInput) (*mcp.CallToolResult, any, error) {
	w, err := s.resolveWorkout(input.Workout)
	if err != nil {
		return nil, nil, err
	}
	if input.Limit <= 0 {
		input.Limit = 20
	}

	entries, err := s.store.WorkoutHistory(w.ID, s.user.ID, input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load history: %w", err)
	}
	if len(entries) == 0 {
		return nil, map[string]interface{}{"message": fmt.Sprintf("No entries for %s yet.", w.Name)}, nil
	}

	pr, err := s.store.PersonalRecord(s.user.ID, w.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load personal record: %w", err)
	}

	out := make([]map[string]interface{}, 0, len(entries))
	for _, e := range entries {
		row := map[string]interface{}{
			"id":          e.ID,
			"weight_lbs":  e.Weight,
			"reps":        e.Reps,
			"recorded_at": units.FormatTime(e.RecordedAt),
			// Every entry matching the PR weight is flagged, so ties all show.
			"is_pr": pr != nil && e.Weight == pr.Weight,
		}
		if e.Notes != nil {
			row["notes"] = *e.Notes
		}
		out = append(out, row)
	}
	return nil, out, nil
}

func (s *Server) handlePersonalRecord(ctx context.Context, req *mcp.CallToolRequest, input workoutScopedInput) (*mcp.CallToolResult, any, error) {
	w, err := s.resolveWorkout(input.Workout)
	if err != nil {
		return nil, nil, err
	}

	pr, err := s.store.PersonalRecord(s.user.ID, w.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load personal record: %w", err)
	}
	if pr == nil {
		return nil, map[string]interface{}{"message": fmt.Sprintf("No entries for %s yet.", w.Name)}, nil
	}

	return nil, map[string]interface{}{
		"workout":     w.Name,
		"weight_lbs":  pr.Weight,
		"weight_kg":   units.Convert(pr.Weight, units.Lbs, units.Kg),
		"reps":        pr.Reps,
		"recorded_at": units.FormatTime(pr.RecordedAt),
	}, nil
}

func (s *Server) handleToggleFavorite(ctx context.Context, req *mcp.CallToolRequest, input workoutScopedInput) (*mcp.CallToolResult, simpleOutput, error) {
	w, err := s.resolveWorkout(input.Workout)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	nowFavorite, err := s.store.ToggleFavorite(s.user.ID, w.ID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to toggle favorite: %w", err)
	}

	state := "unfavorited"
	if nowFavorite {
		state = "favorited"
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("%s is now %s", w.Name, state),
	}, nil
}

func (s *Server) handleListMuscleGroups(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	groups, err := s.store.MuscleGroups()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list muscle groups: %w", err)
	}

	out := make([]map[string]interface{}, 0, len(groups))
	for _, g := range groups {
		count, err := s.store.WorkoutCountByMuscleGroup(g.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to count workouts: %w", err)
		}
		out = append(out, map[string]interface{}{
			"id":       g.ID,
			"name":     g.Name,
			"order":    g.DisplayOrder,
			"workouts": count,
		})
	}
	return nil, out, nil
}

func (s *Server) handleCreateWorkout(ctx context.Context, req *mcp.CallToolRequest, input createWorkoutInput) (*mcp.CallToolResult, simpleOutput, error) {
	group, err := s.resolveMuscleGroup(input.MuscleGroup)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	w, err := s.store.CreateCustomWorkout(input.Name, group.ID, s.user.ID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to create workout: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Created %s in %s (ID: %s)", w.Name, group.Name, w.ID),
	}, nil
}

func (s *Server) handleDeleteEntry(ctx context.Context, req *mcp.CallToolRequest, input deleteEntryInput) (*mcp.CallToolResult, simpleOutput, error) {
	deleted, err := s.store.DeleteEntry(input.ID, s.user.ID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete entry: %w", err)
	}
	if !deleted {
		return nil, simpleOutput{Message: fmt.Sprintf("No entry deleted for id %s", input.ID)}, nil
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted entry %s", input.ID)}, nil
}

// resolveWorkout finds a workout by exact id, then by name search. An
// exact (case-insensitive) name match wins over partial matches.
func (s *Server) resolveWorkout(nameOrID string) (*models.Workout, error) {
	w, err := s.store.WorkoutByID(nameOrID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up workout: %w", err)
	}
	if w != nil {
		return w, nil
	}

	matches, err := s.store.SearchWorkouts(nameOrID, 5)
	if err != nil {
		return nil, fmt.Errorf("failed to search workouts: %w", err)
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

// resolveMuscleGroup finds a muscle group by id or name.
func (s *Server) resolveMuscleGroup(nameOrID string) (*models.MuscleGroup, error) {
	g, err := s.store.MuscleGroupByID(nameOrID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up muscle group: %w", err)
	}
	if g != nil {
		return g, nil
	}

	groups, err := s.store.MuscleGroups()
	if err != nil {
		return nil, fmt.Errorf("failed to list muscle groups: %w", err)
	}
	for _, g := range groups {
		if strings.EqualFold(g.Name, nameOrID) {
			return g, nil
		}
	}
	return nil, fmt.Errorf("unknown muscle group: %s", nameOrID)
}
