package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"gym-routines-api/internal/database"
	"gym-routines-api/internal/metrics"
	"gym-routines-api/internal/validation"
)

// ExercisesHandler handles the exercise endpoints
type ExercisesHandler struct {
	db     *database.DB
	logger *slog.Logger
}

// NewExercisesHandler creates a new exercises handler
func NewExercisesHandler(db *database.DB) *ExercisesHandler {
	return &ExercisesHandler{
		db:     db,
		logger: slog.Default(),
	}
}

// HandleCreate handles POST /routines/{id}/exercises
func (h *ExercisesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	routineID, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "invalid routine id")
		return
	}

	// Resolve the parent before validating so a dead routine is a 404
	routine, err := h.db.GetRoutine(routineID)
	if err != nil {
		h.logger.Error("Failed to get routine", "error", err, "routine_id", routineID)
		writeError(w, http.StatusInternalServerError, CodeInternal, "internal server error")
		return
	}
	if routine == nil {
		writeError(w, http.StatusNotFound, CodeNotFound, "routine not found")
		return
	}

	var input validation.ExerciseInput
	if !decodeJSON(w, r, &input) {
		return
	}

	if errs := input.Validate(); errs != nil {
		metrics.ValidationFailuresTotal.WithLabelValues(metrics.EntityExercise).Inc()
		writeValidationError(w, errs)
		return
	}

	exercise, err := h.db.CreateExercise(&database.Exercise{
		RoutineID: routineID,
		Name:      input.Name,
		Weekday:   input.Weekday,
		Sets:      input.Sets,
		Reps:      input.Reps,
		Weight:    input.Weight,
		Notes:     input.Notes,
		Order:     input.Order,
	})
	if errors.Is(err, database.ErrNotFound) {
		// Routine deleted between the existence check and the insert
		writeError(w, http.StatusNotFound, CodeNotFound, "routine not found")
		return
	}
	if err != nil {
		h.logger.Error("Failed to create exercise", "error", err, "routine_id", routineID)
		writeError(w, http.StatusInternalServerError, CodeInternal, "internal server error")
		return
	}

	h.logger.Info("Exercise created", "exercise_id", exercise.ID, "routine_id", routineID)
	metrics.EntitiesCreatedTotal.WithLabelValues(metrics.EntityExercise).Inc()
	writeJSON(w, http.StatusCreated, exercise)
}

// HandleUpdate handles PUT /exercises/{id} with partial-update semantics
func (h *ExercisesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "invalid exercise id")
		return
	}

	// Resolve existence before reading the body so a missing id is a 404
	// regardless of what the payload contains
	current, err := h.db.GetExercise(id)
	if err != nil {
		h.logger.Error("Failed to get exercise", "error", err, "exercise_id", id)
		writeError(w, http.StatusInternalServerError, CodeInternal, "internal server error")
		return
	}
	if current == nil {
		writeError(w, http.StatusNotFound, CodeNotFound, "exercise not found")
		return
	}

	var patch validation.ExercisePatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	if errs := patch.Validate(); errs != nil {
		metrics.ValidationFailuresTotal.WithLabelValues(metrics.EntityExercise).Inc()
		writeValidationError(w, errs)
		return
	}

	exercise, err := h.db.UpdateExercise(id, database.ExerciseUpdate{
		Name:    patch.Name,
		Weekday: patch.Weekday,
		Sets:    patch.Sets,
		Reps:    patch.Reps,
		Weight:  patch.Weight,
		Notes:   patch.Notes,
		Order:   patch.Order,
	})
	if errors.Is(err, database.ErrNotFound) {
		writeError(w, http.StatusNotFound, CodeNotFound, "exercise not found")
		return
	}
	if err != nil {
		h.logger.Error("Failed to update exercise", "error", err, "exercise_id", id)
		writeError(w, http.StatusInternalServerError, CodeInternal, "internal server error")
		return
	}

	h.logger.Info("Exercise updated", "exercise_id", id)
	writeJSON(w, http.StatusOK, exercise)
}

// HandleDelete handles DELETE /exercises/{id}
func (h *ExercisesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "invalid exercise id")
		return
	}

	err := h.db.DeleteExercise(id)
	if errors.Is(err, database.ErrNotFound) {
		writeError(w, http.StatusNotFound, CodeNotFound, "exercise not found")
		return
	}
	if err != nil {
		h.logger.Error("Failed to delete exercise", "error", err, "exercise_id", id)
		writeError(w, http.StatusInternalServerError, CodeInternal, "internal server error")
		return
	}

	h.logger.Info("Exercise deleted", "exercise_id", id)
	metrics.EntitiesDeletedTotal.WithLabelValues(metrics.EntityExercise).Inc()
	w.WriteHeader(http.StatusNoContent)
}
