package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// Routine represents a named workout routine
type Routine struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// RoutineDetail is a routine together with its full exercise collection
type RoutineDetail struct {
	Routine
	Exercises []*Exercise `json:"exercises"`
}

// RoutineUpdate holds the fields of a partial routine update.
// A nil field leaves the stored value unchanged.
type RoutineUpdate struct {
	Name        *string
	Description *string
}

// CreateRoutine inserts a new routine and returns the persisted record,
// including the generated id and creation timestamp.
// Returns ErrDuplicateName if the name collides case-insensitively.
func (db *DB) CreateRoutine(name string, description *string) (*Routine, error) {
	result, err := db.conn.Exec(`
		INSERT INTO routines (name, description, created_at)
		VALUES (?, ?, ?)
	`, name, description, time.Now().Unix())

	if isUniqueViolation(err) {
		return nil, ErrDuplicateName
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create routine: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get routine id: %w", err)
	}

	// Fetch after commit so the response carries authoritative stored values
	return db.GetRoutine(id)
}

// GetRoutine retrieves a routine by id without its exercises.
// Returns (nil, nil) if no routine exists with that id.
func (db *DB) GetRoutine(id int64) (*Routine, error) {
	row := db.conn.QueryRow(`
		SELECT id, name, description, created_at
		FROM routines WHERE id = ?
	`, id)

	routine, err := scanRoutine(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get routine: %w", err)
	}
	return routine, nil
}

// GetRoutineDetail retrieves a routine together with its exercises, sorted by
// weekday then display order. Returns (nil, nil) if the routine does not exist.
func (db *DB) GetRoutineDetail(id int64) (*RoutineDetail, error) {
	routine, err := db.GetRoutine(id)
	if err != nil || routine == nil {
		return nil, err
	}

	exercises, err := db.ListRoutineExercises(id)
	if err != nil {
		return nil, err
	}

	return &RoutineDetail{Routine: *routine, Exercises: exercises}, nil
}

// ListRoutines returns all routines ordered by id, without exercises
func (db *DB) ListRoutines() ([]*Routine, error) {
	rows, err := db.conn.Query(`
		SELECT id, name, description, created_at
		FROM routines
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list routines: %w", err)
	}
	defer rows.Close()

	return collectRoutines(rows)
}

// SearchRoutines returns routines whose name contains text, case-insensitively.
// An empty result is valid and not an error.
func (db *DB) SearchRoutines(text string) ([]*Routine, error) {
	// instr avoids LIKE wildcard interpretation of user input
	rows, err := db.conn.Query(`
		SELECT id, name, description, created_at
		FROM routines
		WHERE instr(lower(name), lower(?)) > 0
		ORDER BY id
	`, text)
	if err != nil {
		return nil, fmt.Errorf("failed to search routines: %w", err)
	}
	defer rows.Close()

	return collectRoutines(rows)
}

// FindRoutineByName retrieves a routine by exact name, case-insensitively.
// Returns (nil, nil) if no routine has that name.
func (db *DB) FindRoutineByName(name string) (*Routine, error) {
	row := db.conn.QueryRow(`
		SELECT id, name, description, created_at
		FROM routines WHERE name = ? COLLATE NOCASE
	`, name)

	routine, err := scanRoutine(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find routine by name: %w", err)
	}
	return routine, nil
}

// UpdateRoutine mutates only the supplied fields and returns the updated
// record. Returns ErrNotFound if the id does not exist and ErrDuplicateName
// if a rename collides with an existing name.
func (db *DB) UpdateRoutine(id int64, update RoutineUpdate) (*Routine, error) {
	var sets []string
	var args []interface{}

	if update.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *update.Name)
	}
	if update.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *update.Description)
	}

	if len(sets) == 0 {
		// Nothing supplied; still distinguish not-found from no-op
		routine, err := db.GetRoutine(id)
		if err != nil {
			return nil, err
		}
		if routine == nil {
			return nil, ErrNotFound
		}
		return routine, nil
	}

	args = append(args, id)
	result, err := db.conn.Exec(
		"UPDATE routines SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)

	if isUniqueViolation(err) {
		return nil, ErrDuplicateName
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update routine: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return nil, ErrNotFound
	}

	return db.GetRoutine(id)
}

// DeleteRoutine removes a routine; its exercises are removed by the
// ON DELETE CASCADE foreign key. Returns ErrNotFound if the id does not exist.
func (db *DB) DeleteRoutine(id int64) error {
	result, err := db.conn.Exec("DELETE FROM routines WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete routine: %w", err)
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

// CountRoutines returns the total number of routines
func (db *DB) CountRoutines() (int, error) {
	var count int
	if err := db.conn.QueryRow("SELECT COUNT(*) FROM routines").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count routines: %w", err)
	}
	return count, nil
}

// scanner abstracts *sql.Row and *sql.Rows for shared scan logic
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRoutine(s scanner) (*Routine, error) {
	var r Routine
	var description sql.NullString
	var createdAt int64

	if err := s.Scan(&r.ID, &r.Name, &description, &createdAt); err != nil {
		return nil, err
	}

	if description.Valid {
		r.Description = &description.String
	}
	r.CreatedAt = time.Unix(createdAt, 0).UTC()

	return &r, nil
}

func collectRoutines(rows *sql.Rows) ([]*Routine, error) {
	var routines []*Routine
	for rows.Next() {
		routine, err := scanRoutine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan routine: %w", err)
		}
		routines = append(routines, routine)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating routines: %w", err)
	}

	return routines, nil
}
