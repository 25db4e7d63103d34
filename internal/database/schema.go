package database

// Schema contains all SQL statements for creating tables and indexes
const Schema = `
-- Routines table: Named workout routines owning a set of exercises
CREATE TABLE IF NOT EXISTS routines (
    id INTEGER PRIMARY KEY AUTOINCREMENT,

    -- COLLATE NOCASE makes the unique index below the authoritative
    -- case-insensitive uniqueness guard
    name TEXT NOT NULL COLLATE NOCASE,
    description TEXT,

    -- Metadata
    created_at INTEGER NOT NULL
);

-- Exercises table: Prescribed movements within a routine, tagged by weekday
CREATE TABLE IF NOT EXISTS exercises (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    routine_id INTEGER NOT NULL,

    name TEXT NOT NULL,
    weekday TEXT NOT NULL CHECK (weekday IN (
        'Monday', 'Tuesday', 'Wednesday', 'Thursday', 'Friday', 'Saturday', 'Sunday'
    )),
    sets INTEGER NOT NULL CHECK (sets > 0),
    reps INTEGER NOT NULL CHECK (reps > 0),
    weight INTEGER CHECK (weight >= 0),  -- NULL means bodyweight/unspecified
    notes TEXT,

    -- "order" is an SQL keyword; exposed as "order" on the wire
    display_order INTEGER NOT NULL DEFAULT 0 CHECK (display_order >= 0),

    FOREIGN KEY (routine_id) REFERENCES routines(id) ON DELETE CASCADE
);

-- Unique index on routines.name (case-insensitive via NOCASE collation)
CREATE UNIQUE INDEX IF NOT EXISTS idx_routines_name_unique ON routines(name);

-- Indexes for exercises table
CREATE INDEX IF NOT EXISTS idx_exercises_routine_id ON exercises(routine_id);
CREATE INDEX IF NOT EXISTS idx_exercises_routine_weekday ON exercises(routine_id, weekday, display_order);
`
