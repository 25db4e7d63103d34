package database

import (
	"testing"
	"time"
)

// setupTestDB opens a fresh database in a temp dir with the schema applied
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	dbPath := t.TempDir() + "/test.db"
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.Init(); err != nil {
		t.Fatalf("Failed to init db: %v", err)
	}

	return db
}

func TestOpenAndHealth(t *testing.T) {
	db := setupTestDB(t)

	if err := db.Health(); err != nil {
		t.Errorf("Expected healthy database, got %v", err)
	}
}

func TestInitIsIdempotent(t *testing.T) {
	db := setupTestDB(t)

	// Applying the schema twice must not fail (IF NOT EXISTS everywhere)
	if err := db.Init(); err != nil {
		t.Fatalf("Second Init failed: %v", err)
	}
}

func TestForeignKeysSurviveConnRecycle(t *testing.T) {
	db := setupTestDB(t)

	routine := createTestRoutine(t, db, "Push Day")
	if _, err := db.CreateExercise(&Exercise{
		RoutineID: routine.ID,
		Name:      "Bench Press",
		Weekday:   Monday,
		Sets:      4,
		Reps:      8,
	}); err != nil {
		t.Fatalf("Failed to create exercise: %v", err)
	}

	// Force the pool to replace its connection; the pragmas must apply to
	// the fresh connection too, not just the one opened first
	db.Conn().SetConnMaxLifetime(time.Millisecond)
	time.Sleep(10 * time.Millisecond)

	var fk int
	if err := db.Conn().QueryRow("PRAGMA foreign_keys").Scan(&fk); err != nil {
		t.Fatalf("Failed to read foreign_keys pragma: %v", err)
	}
	if fk != 1 {
		t.Fatalf("Expected foreign_keys=1 on recycled connection, got %d", fk)
	}

	if err := db.DeleteRoutine(routine.ID); err != nil {
		t.Fatalf("Failed to delete routine: %v", err)
	}

	count, err := db.CountExercises()
	if err != nil {
		t.Fatalf("Failed to count exercises: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected cascade delete to remove exercises, %d remain", count)
	}
}

func TestForeignKeysEnforced(t *testing.T) {
	db := setupTestDB(t)

	// Inserting an exercise under a nonexistent routine must be rejected
	_, err := db.Conn().Exec(`
		INSERT INTO exercises (routine_id, name, weekday, sets, reps)
		VALUES (999, 'Squats', 'Monday', 3, 10)
	`)
	if err == nil {
		t.Fatal("Expected foreign key violation, got nil")
	}
}
