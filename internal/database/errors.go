package database

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned by mutations addressing an id that does not exist
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateName is returned when a routine name collides with an
	// existing one (case-insensitive, enforced by the unique index)
	ErrDuplicateName = errors.New("routine name already exists")
)

// isUniqueViolation reports whether err is a SQLite unique constraint failure
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// isForeignKeyViolation reports whether err is a SQLite foreign key failure
func isForeignKeyViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
