package database

import (
	"errors"
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }

func TestCreateAndGetRoutine(t *testing.T) {
	db := setupTestDB(t)

	before := time.Now().Add(-time.Second)
	routine, err := db.CreateRoutine("Push Day", strPtr("Chest and triceps"))
	if err != nil {
		t.Fatalf("Failed to create routine: %v", err)
	}

	if routine.ID == 0 {
		t.Error("Expected generated id, got 0")
	}
	if routine.Name != "Push Day" {
		t.Errorf("Expected name 'Push Day', got %s", routine.Name)
	}
	if routine.Description == nil || *routine.Description != "Chest and triceps" {
		t.Errorf("Expected description 'Chest and triceps', got %v", routine.Description)
	}
	if routine.CreatedAt.Before(before) {
		t.Errorf("Expected recent created_at, got %v", routine.CreatedAt)
	}

	retrieved, err := db.GetRoutine(routine.ID)
	if err != nil {
		t.Fatalf("Failed to get routine: %v", err)
	}
	if retrieved == nil {
		t.Fatal("Expected routine, got nil")
	}
	if retrieved.Name != "Push Day" {
		t.Errorf("Expected name 'Push Day', got %s", retrieved.Name)
	}
	if !retrieved.CreatedAt.Equal(routine.CreatedAt) {
		t.Errorf("Expected created_at %v, got %v", routine.CreatedAt, retrieved.CreatedAt)
	}
}

func TestCreateRoutineWithoutDescription(t *testing.T) {
	db := setupTestDB(t)

	routine, err := db.CreateRoutine("Leg Day", nil)
	if err != nil {
		t.Fatalf("Failed to create routine: %v", err)
	}
	if routine.Description != nil {
		t.Errorf("Expected nil description, got %v", *routine.Description)
	}
}

func TestCreateRoutineDuplicateName(t *testing.T) {
	db := setupTestDB(t)

	if _, err := db.CreateRoutine("Push Day", nil); err != nil {
		t.Fatalf("Failed to create routine: %v", err)
	}

	// Case-insensitive collision must be rejected by the unique index
	_, err := db.CreateRoutine("push day", nil)
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("Expected ErrDuplicateName, got %v", err)
	}

	_, err = db.CreateRoutine("PUSH DAY", nil)
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("Expected ErrDuplicateName for upper case, got %v", err)
	}
}

func TestGetRoutineNotFound(t *testing.T) {
	db := setupTestDB(t)

	routine, err := db.GetRoutine(99999)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if routine != nil {
		t.Error("Expected nil routine, got non-nil")
	}
}

func TestListRoutines(t *testing.T) {
	db := setupTestDB(t)

	routines, err := db.ListRoutines()
	if err != nil {
		t.Fatalf("Failed to list routines: %v", err)
	}
	if len(routines) != 0 {
		t.Errorf("Expected empty list, got %d", len(routines))
	}

	for _, name := range []string{"Push Day", "Leg Day", "Full Body"} {
		if _, err := db.CreateRoutine(name, nil); err != nil {
			t.Fatalf("Failed to create routine %q: %v", name, err)
		}
	}

	routines, err = db.ListRoutines()
	if err != nil {
		t.Fatalf("Failed to list routines: %v", err)
	}
	if len(routines) != 3 {
		t.Fatalf("Expected 3 routines, got %d", len(routines))
	}
}

func TestSearchRoutines(t *testing.T) {
	db := setupTestDB(t)

	for _, name := range []string{"Push Day", "Leg Day", "Full Body"} {
		if _, err := db.CreateRoutine(name, nil); err != nil {
			t.Fatalf("Failed to create routine %q: %v", name, err)
		}
	}

	results, err := db.SearchRoutines("day")
	if err != nil {
		t.Fatalf("Failed to search routines: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 matches for 'day', got %d", len(results))
	}
	found := map[string]bool{}
	for _, r := range results {
		found[r.Name] = true
	}
	if !found["Push Day"] || !found["Leg Day"] {
		t.Errorf("Expected 'Push Day' and 'Leg Day', got %v", found)
	}

	// Case-insensitive in the other direction too
	results, err = db.SearchRoutines("DAY")
	if err != nil {
		t.Fatalf("Failed to search routines: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("Expected 2 matches for 'DAY', got %d", len(results))
	}

	// No match is an empty result, not an error
	results, err = db.SearchRoutines("cardio")
	if err != nil {
		t.Fatalf("Failed to search routines: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected no matches for 'cardio', got %d", len(results))
	}
}

func TestFindRoutineByName(t *testing.T) {
	db := setupTestDB(t)

	created, err := db.CreateRoutine("Push Day", nil)
	if err != nil {
		t.Fatalf("Failed to create routine: %v", err)
	}

	found, err := db.FindRoutineByName("push day")
	if err != nil {
		t.Fatalf("Failed to find routine: %v", err)
	}
	if found == nil || found.ID != created.ID {
		t.Errorf("Expected routine %d, got %v", created.ID, found)
	}

	missing, err := db.FindRoutineByName("Pull Day")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if missing != nil {
		t.Error("Expected nil for unknown name, got non-nil")
	}
}

func TestUpdateRoutinePartial(t *testing.T) {
	db := setupTestDB(t)

	routine, err := db.CreateRoutine("Push Day", strPtr("Original description"))
	if err != nil {
		t.Fatalf("Failed to create routine: %v", err)
	}

	// Update only the description; name stays
	updated, err := db.UpdateRoutine(routine.ID, RoutineUpdate{
		Description: strPtr("New description"),
	})
	if err != nil {
		t.Fatalf("Failed to update routine: %v", err)
	}
	if updated.Name != "Push Day" {
		t.Errorf("Expected name unchanged, got %s", updated.Name)
	}
	if updated.Description == nil || *updated.Description != "New description" {
		t.Errorf("Expected description 'New description', got %v", updated.Description)
	}

	// Update only the name; description stays
	updated, err = db.UpdateRoutine(routine.ID, RoutineUpdate{
		Name: strPtr("Push Day A"),
	})
	if err != nil {
		t.Fatalf("Failed to update routine: %v", err)
	}
	if updated.Name != "Push Day A" {
		t.Errorf("Expected name 'Push Day A', got %s", updated.Name)
	}
	if updated.Description == nil || *updated.Description != "New description" {
		t.Errorf("Expected description unchanged, got %v", updated.Description)
	}

	// created_at is immutable
	if !updated.CreatedAt.Equal(routine.CreatedAt) {
		t.Errorf("Expected created_at unchanged, got %v", updated.CreatedAt)
	}

	// Empty update leaves everything unchanged
	updated, err = db.UpdateRoutine(routine.ID, RoutineUpdate{})
	if err != nil {
		t.Fatalf("Failed to apply empty update: %v", err)
	}
	if updated.Name != "Push Day A" {
		t.Errorf("Expected name unchanged by empty update, got %s", updated.Name)
	}
}

func TestUpdateRoutineNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.UpdateRoutine(99999, RoutineUpdate{Name: strPtr("Anything")})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	_, err = db.UpdateRoutine(99999, RoutineUpdate{})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for empty update, got %v", err)
	}
}

func TestUpdateRoutineDuplicateName(t *testing.T) {
	db := setupTestDB(t)

	if _, err := db.CreateRoutine("Push Day", nil); err != nil {
		t.Fatalf("Failed to create routine: %v", err)
	}
	other, err := db.CreateRoutine("Leg Day", nil)
	if err != nil {
		t.Fatalf("Failed to create routine: %v", err)
	}

	_, err = db.UpdateRoutine(other.ID, RoutineUpdate{Name: strPtr("PUSH DAY")})
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("Expected ErrDuplicateName, got %v", err)
	}
}

func TestDeleteRoutineCascades(t *testing.T) {
	db := setupTestDB(t)

	routine, err := db.CreateRoutine("Push Day", nil)
	if err != nil {
		t.Fatalf("Failed to create routine: %v", err)
	}

	var exerciseIDs []int64
	for i := 0; i < 3; i++ {
		ex, err := db.CreateExercise(&Exercise{
			RoutineID: routine.ID,
			Name:      "Bench Press",
			Weekday:   Monday,
			Sets:      3,
			Reps:      10,
			Order:     i,
		})
		if err != nil {
			t.Fatalf("Failed to create exercise: %v", err)
		}
		exerciseIDs = append(exerciseIDs, ex.ID)
	}

	if err := db.DeleteRoutine(routine.ID); err != nil {
		t.Fatalf("Failed to delete routine: %v", err)
	}

	// Routine is gone
	retrieved, err := db.GetRoutine(routine.ID)
	if err != nil {
		t.Fatalf("Failed to get routine: %v", err)
	}
	if retrieved != nil {
		t.Error("Expected routine to be deleted")
	}

	// All child exercises are gone too
	for _, id := range exerciseIDs {
		ex, err := db.GetExercise(id)
		if err != nil {
			t.Fatalf("Failed to get exercise: %v", err)
		}
		if ex != nil {
			t.Errorf("Expected exercise %d to be cascade-deleted", id)
		}
	}

	count, err := db.CountExercises()
	if err != nil {
		t.Fatalf("Failed to count exercises: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 exercises after cascade, got %d", count)
	}
}

func TestDeleteRoutineNotFound(t *testing.T) {
	db := setupTestDB(t)

	err := db.DeleteRoutine(99999)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestGetRoutineDetail(t *testing.T) {
	db := setupTestDB(t)

	routine, err := db.CreateRoutine("Full Body", nil)
	if err != nil {
		t.Fatalf("Failed to create routine: %v", err)
	}

	// Insert out of display order to verify sorting
	inserts := []struct {
		name    string
		weekday Weekday
		order   int
	}{
		{"Deadlift", Wednesday, 1},
		{"Bench Press", Monday, 2},
		{"Squats", Monday, 1},
	}
	for _, in := range inserts {
		_, err := db.CreateExercise(&Exercise{
			RoutineID: routine.ID,
			Name:      in.name,
			Weekday:   in.weekday,
			Sets:      3,
			Reps:      8,
			Order:     in.order,
		})
		if err != nil {
			t.Fatalf("Failed to create exercise %q: %v", in.name, err)
		}
	}

	detail, err := db.GetRoutineDetail(routine.ID)
	if err != nil {
		t.Fatalf("Failed to get routine detail: %v", err)
	}
	if detail == nil {
		t.Fatal("Expected detail, got nil")
	}
	if len(detail.Exercises) != 3 {
		t.Fatalf("Expected 3 exercises, got %d", len(detail.Exercises))
	}

	// Sorted by weekday (Monday first) then display order
	want := []string{"Squats", "Bench Press", "Deadlift"}
	for i, name := range want {
		if detail.Exercises[i].Name != name {
			t.Errorf("Expected exercise %d to be %q, got %q", i, name, detail.Exercises[i].Name)
		}
	}
}

func TestGetRoutineDetailNotFound(t *testing.T) {
	db := setupTestDB(t)

	detail, err := db.GetRoutineDetail(99999)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if detail != nil {
		t.Error("Expected nil detail, got non-nil")
	}
}

func TestCountRoutines(t *testing.T) {
	db := setupTestDB(t)

	count, err := db.CountRoutines()
	if err != nil {
		t.Fatalf("Failed to count routines: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 routines, got %d", count)
	}

	if _, err := db.CreateRoutine("Push Day", nil); err != nil {
		t.Fatalf("Failed to create routine: %v", err)
	}

	count, err = db.CountRoutines()
	if err != nil {
		t.Fatalf("Failed to count routines: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 routine, got %d", count)
	}
}
