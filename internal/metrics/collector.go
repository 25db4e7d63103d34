package metrics

import (
	"context"
	"log/slog"
	"time"
)

// DB interface for entity count queries
type DB interface {
	CountRoutines() (int, error)
	CountExercises() (int, error)
}

// StartEntityCountCollector starts a background goroutine that periodically
// collects routine and exercise counts from the database
func StartEntityCountCollector(ctx context.Context, db DB, interval time.Duration) {
	logger := slog.Default()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Collect once immediately
	collectEntityCounts(db, logger)

	for {
		select {
		case <-ctx.Done():
			logger.Info("Entity count collector stopping")
			return
		case <-ticker.C:
			collectEntityCounts(db, logger)
		}
	}
}

func collectEntityCounts(db DB, logger *slog.Logger) {
	if routines, err := db.CountRoutines(); err != nil {
		logger.Error("Failed to count routines", "error", err)
	} else {
		RoutinesCount.Set(float64(routines))
	}

	if exercises, err := db.CountExercises(); err != nil {
		logger.Error("Failed to count exercises", "error", err)
	} else {
		ExercisesCount.Set(float64(exercises))
	}
}
