// Package seed loads sample routines into an empty store.
package seed

import (
	"fmt"
	"log/slog"

	"gym-routines-api/internal/database"
)

type seedExercise struct {
	name    string
	weekday database.Weekday
	sets    int
	reps    int
	weight  *int // nil means bodyweight
	notes   string
	order   int
}

type seedRoutine struct {
	name        string
	description string
	exercises   []seedExercise
}

func kg(v int) *int { return &v }

var sampleRoutines = []seedRoutine{
	{
		name:        "Push Day",
		description: "Push day: chest, back and triceps. Focus on compound movements.",
		exercises: []seedExercise{
			{"Bench Press", database.Monday, 4, 8, kg(100), "Main lift, control the descent", 1},
			{"Dumbbell Flyes", database.Monday, 3, 10, kg(30), "Chest isolation", 2},
			{"Dips", database.Monday, 3, 8, kg(25), "Add weight if needed", 3},
			{"Overhead Press", database.Monday, 3, 8, kg(50), "Shoulders and upper chest", 4},
			{"Barbell Row", database.Wednesday, 4, 6, kg(120), "Wide, thick back", 1},
			{"Lat Pulldown", database.Wednesday, 3, 10, kg(80), "Back isolation", 2},
			{"Triceps Extensions", database.Wednesday, 3, 12, kg(40), "Full control of the movement", 3},
			{"Pull-Ups", database.Friday, 4, 8, nil, "Bodyweight, add a band if needed", 1},
		},
	},
	{
		name:        "Leg Day",
		description: "Intense leg day. Quads, hamstrings and glutes.",
		exercises: []seedExercise{
			{"Squats", database.Tuesday, 5, 5, kg(150), "Fundamental lift, perfect form", 1},
			{"Leg Press", database.Tuesday, 3, 10, kg(300), "Controlled descent", 2},
			{"Leg Extensions", database.Tuesday, 3, 12, kg(100), "Pure isolation", 3},
			{"Hamstring Curls", database.Tuesday, 3, 12, kg(80), "Muscular balance", 4},
			{"Deadlift", database.Thursday, 4, 6, kg(180), "Maximum intensity, perfect technique", 1},
			{"Bulgarian Split Squat", database.Thursday, 3, 10, kg(40), "Per leg", 2},
			{"Leg Curls", database.Thursday, 3, 12, kg(90), "Finish the hamstrings", 3},
		},
	},
	{
		name:        "Full Body",
		description: "Full body routine for moderate training days. Ideal for 3 days per week.",
		exercises: []seedExercise{
			{"Squats", database.Monday, 3, 8, kg(120), "Warm-up included", 1},
			{"Bench Press", database.Monday, 3, 8, kg(80), "Chest", 2},
			{"Barbell Row", database.Monday, 3, 8, kg(100), "Back", 3},
			{"Deadlift", database.Wednesday, 3, 6, kg(140), "Maximum power", 1},
			{"Pull-Ups", database.Wednesday, 3, 8, nil, "Back and arms", 2},
			{"Push-Ups", database.Wednesday, 3, 12, nil, "Bodyweight", 3},
			{"Bulgarian Split Squat", database.Friday, 3, 10, kg(35), "Per leg", 1},
			{"Lat Pulldown", database.Friday, 3, 12, kg(70), "Back", 2},
			{"Triceps Extensions", database.Friday, 3, 12, kg(35), "Arms", 3},
		},
	},
}

// Load inserts the sample routines if the store contains no routines yet.
// Loading into a non-empty store is a no-op.
func Load(db *database.DB) error {
	logger := slog.Default()

	count, err := db.CountRoutines()
	if err != nil {
		return fmt.Errorf("failed to check for existing data: %w", err)
	}
	if count > 0 {
		logger.Info("Database already contains routines, skipping seed", "routines", count)
		return nil
	}

	for _, sr := range sampleRoutines {
		description := sr.description
		routine, err := db.CreateRoutine(sr.name, &description)
		if err != nil {
			return fmt.Errorf("failed to seed routine %q: %w", sr.name, err)
		}

		for _, se := range sr.exercises {
			notes := se.notes
			_, err := db.CreateExercise(&database.Exercise{
				RoutineID: routine.ID,
				Name:      se.name,
				Weekday:   se.weekday,
				Sets:      se.sets,
				Reps:      se.reps,
				Weight:    se.weight,
				Notes:     &notes,
				Order:     se.order,
			})
			if err != nil {
				return fmt.Errorf("failed to seed exercise %q: %w", se.name, err)
			}
		}

		logger.Info("Seeded routine", "name", sr.name, "exercises", len(sr.exercises))
	}

	return nil
}
