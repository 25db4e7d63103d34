package database

import (
	"database/sql"
	"fmt"
	"strings"
)

// Exercise represents a single prescribed movement within a routine
type Exercise struct {
	ID        int64   `json:"id"`
	RoutineID int64   `json:"routine_id"`
	Name      string  `json:"name"`
	Weekday   Weekday `json:"weekday"`
	Sets      int     `json:"sets"`
	Reps      int     `json:"reps"`
	Weight    *int    `json:"weight"` // nil means bodyweight/unspecified
	Notes     *string `json:"notes"`
	Order     int     `json:"order"`
}

// ExerciseUpdate holds the fields of a partial exercise update.
// A nil field leaves the stored value unchanged.
type ExerciseUpdate struct {
	Name    *string
	Weekday *Weekday
	Sets    *int
	Reps    *int
	Weight  *int
	Notes   *string
	Order   *int
}

// CreateExercise inserts a new exercise under e.RoutineID and returns the
// persisted record. Returns ErrNotFound if the routine does not exist.
func (db *DB) CreateExercise(e *Exercise) (*Exercise, error) {
	result, err := db.conn.Exec(`
		INSERT INTO exercises (routine_id, name, weekday, sets, reps, weight, notes, display_order)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, e.RoutineID, e.Name, string(e.Weekday), e.Sets, e.Reps, e.Weight, e.Notes, e.Order)

	if isForeignKeyViolation(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create exercise: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get exercise id: %w", err)
	}

	return db.GetExercise(id)
}

// GetExercise retrieves an exercise by id.
// Returns (nil, nil) if no exercise exists with that id.
func (db *DB) GetExercise(id int64) (*Exercise, error) {
	row := db.conn.QueryRow(`
		SELECT id, routine_id, name, weekday, sets, reps, weight, notes, display_order
		FROM exercises WHERE id = ?
	`, id)

	exercise, err := scanExercise(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get exercise: %w", err)
	}
	return exercise, nil
}

// ListRoutineExercises returns all exercises of a routine sorted by weekday
// (Monday first), then display order, then id
func (db *DB) ListRoutineExercises(routineID int64) ([]*Exercise, error) {
	rows, err := db.conn.Query(`
		SELECT id, routine_id, name, weekday, sets, reps, weight, notes, display_order
		FROM exercises
		WHERE routine_id = ?
		ORDER BY CASE weekday
			WHEN 'Monday' THEN 1
			WHEN 'Tuesday' THEN 2
			WHEN 'Wednesday' THEN 3
			WHEN 'Thursday' THEN 4
			WHEN 'Friday' THEN 5
			WHEN 'Saturday' THEN 6
			WHEN 'Sunday' THEN 7
		END, display_order, id
	`, routineID)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}
	defer rows.Close()

	var exercises []*Exercise
	for rows.Next() {
		exercise, err := scanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exercise: %w", err)
		}
		exercises = append(exercises, exercise)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating exercises: %w", err)
	}

	return exercises, nil
}

// UpdateExercise mutates only the supplied fields and returns the updated
// record. Returns ErrNotFound if the id does not exist.
func (db *DB) UpdateExercise(id int64, update ExerciseUpdate) (*Exercise, error) {
	var sets []string
	var args []interface{}

	if update.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *update.Name)
	}
	if update.Weekday != nil {
		sets = append(sets, "weekday = ?")
		args = append(args, string(*update.Weekday))
	}
	if update.Sets != nil {
		sets = append(sets, "sets = ?")
		args = append(args, *update.Sets)
	}
	if update.Reps != nil {
		sets = append(sets, "reps = ?")
		args = append(args, *update.Reps)
	}
	if update.Weight != nil {
		sets = append(sets, "weight = ?")
		args = append(args, *update.Weight)
	}
	if update.Notes != nil {
		sets = append(sets, "notes = ?")
		args = append(args, *update.Notes)
	}
	if update.Order != nil {
		sets = append(sets, "display_order = ?")
		args = append(args, *update.Order)
	}

	if len(sets) == 0 {
		exercise, err := db.GetExercise(id)
		if err != nil {
			return nil, err
		}
		if exercise == nil {
			return nil, ErrNotFound
		}
		return exercise, nil
	}

	args = append(args, id)
	result, err := db.conn.Exec(
		"UPDATE exercises SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update exercise: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return nil, ErrNotFound
	}

	return db.GetExercise(id)
}

// DeleteExercise removes a single exercise.
// Returns ErrNotFound if the id does not exist.
func (db *DB) DeleteExercise(id int64) error {
	result, err := db.conn.Exec("DELETE FROM exercises WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete exercise: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// CountExercises returns the total number of exercises across all routines
func (db *DB) CountExercises() (int, error) {
	var count int
	if err := db.conn.QueryRow("SELECT COUNT(*) FROM exercises").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count exercises: %w", err)
	}
	return count, nil
}

func scanExercise(s scanner) (*Exercise, error) {
	var e Exercise
	var weekday string
	var weight sql.NullInt64
	var notes sql.NullString

	if err := s.Scan(&e.ID, &e.RoutineID, &e.Name, &weekday, &e.Sets, &e.Reps, &weight, &notes, &e.Order); err != nil {
		return nil, err
	}

	e.Weekday = Weekday(weekday)
	if weight.Valid {
		w := int(weight.Int64)
		e.Weight = &w
	}
	if notes.Valid {
		e.Notes = &notes.String
	}

	return &e, nil
}
