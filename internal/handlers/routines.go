package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"gym-routines-api/internal/database"
	"gym-routines-api/internal/metrics"
	"gym-routines-api/internal/validation"
)

// RoutinesHandler handles the routine collection and detail endpoints
type RoutinesHandler struct {
	db     *database.DB
	logger *slog.Logger
}

// NewRoutinesHandler creates a new routines handler
func NewRoutinesHandler(db *database.DB) *RoutinesHandler {
	return &RoutinesHandler{
		db:     db,
		logger: slog.Default(),
	}
}

// HandleList handles GET /routines
func (h *RoutinesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	routines, err := h.db.ListRoutines()
	if err != nil {
		h.logger.Error("Failed to list routines", "error", err)
		writeError(w, http.StatusInternalServerError, CodeInternal, "internal server error")
		return
	}

	if routines == nil {
		routines = []*database.Routine{}
	}
	writeJSON(w, http.StatusOK, routines)
}

// HandleSearch handles GET /routines/search?name=
// An empty result is a valid 200; a missing or empty name parameter is a 400.
func (h *RoutinesHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		writeError(w, http.StatusBadRequest, CodeValidation, "name query parameter must not be empty")
		return
	}

	routines, err := h.db.SearchRoutines(name)
	if err != nil {
		h.logger.Error("Failed to search routines", "error", err, "name", name)
		writeError(w, http.StatusInternalServerError, CodeInternal, "internal server error")
		return
	}

	if routines == nil {
		routines = []*database.Routine{}
	}
	writeJSON(w, http.StatusOK, routines)
}

// HandleGet handles GET /routines/{id}, returning the routine with its
// exercises sorted by weekday then display order
func (h *RoutinesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "invalid routine id")
		return
	}

	detail, err := h.db.GetRoutineDetail(id)
	if err != nil {
		h.logger.Error("Failed to get routine", "error", err, "routine_id", id)
		writeError(w, http.StatusInternalServerError, CodeInternal, "internal server error")
		return
	}
	if detail == nil {
		writeError(w, http.StatusNotFound, CodeNotFound, "routine not found")
		return
	}

	if detail.Exercises == nil {
		detail.Exercises = []*database.Exercise{}
	}
	writeJSON(w, http.StatusOK, detail)
}

// HandleCreate handles POST /routines
func (h *RoutinesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input validation.RoutineInput
	if !decodeJSON(w, r, &input) {
		return
	}

	if errs := input.Validate(); errs != nil {
		metrics.ValidationFailuresTotal.WithLabelValues(metrics.EntityRoutine).Inc()
		writeValidationError(w, errs)
		return
	}

	// Fast-path conflict check; the unique index is the authoritative guard
	existing, err := h.db.FindRoutineByName(input.Name)
	if err != nil {
		h.logger.Error("Failed to check routine name", "error", err)
		writeError(w, http.StatusInternalServerError, CodeInternal, "internal server error")
		return
	}
	if existing != nil {
		metrics.NameConflictsTotal.Inc()
		writeError(w, http.StatusBadRequest, CodeConflict, "routine name already exists")
		return
	}

	routine, err := h.db.CreateRoutine(input.Name, input.Description)
	if errors.Is(err, database.ErrDuplicateName) {
		// Concurrent creator won the race; same outcome as the pre-check
		metrics.NameConflictsTotal.Inc()
		writeError(w, http.StatusBadRequest, CodeConflict, "routine name already exists")
		return
	}
	if err != nil {
		h.logger.Error("Failed to create routine", "error", err)
		writeError(w, http.StatusInternalServerError, CodeInternal, "internal server error")
		return
	}

	h.logger.Info("Routine created", "routine_id", routine.ID, "name", routine.Name)
	metrics.EntitiesCreatedTotal.WithLabelValues(metrics.EntityRoutine).Inc()
	writeJSON(w, http.StatusCreated, routine)
}

// HandleUpdate handles PUT /routines/{id} with partial-update semantics
func (h *RoutinesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "invalid routine id")
		return
	}

	// Resolve existence before reading the body so a missing id is a 404
	// regardless of what the payload contains
	current, err := h.db.GetRoutine(id)
	if err != nil {
		h.logger.Error("Failed to get routine", "error", err, "routine_id", id)
		writeError(w, http.StatusInternalServerError, CodeInternal, "internal server error")
		return
	}
	if current == nil {
		writeError(w, http.StatusNotFound, CodeNotFound, "routine not found")
		return
	}

	var patch validation.RoutinePatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	if errs := patch.Validate(); errs != nil {
		metrics.ValidationFailuresTotal.WithLabelValues(metrics.EntityRoutine).Inc()
		writeValidationError(w, errs)
		return
	}

	// A rename must not collide with another routine's name; renaming to the
	// record's own name (any casing) is allowed
	if patch.Name != nil && !strings.EqualFold(*patch.Name, current.Name) {
		existing, err := h.db.FindRoutineByName(*patch.Name)
		if err != nil {
			h.logger.Error("Failed to check routine name", "error", err)
			writeError(w, http.StatusInternalServerError, CodeInternal, "internal server error")
			return
		}
		if existing != nil {
			metrics.NameConflictsTotal.Inc()
			writeError(w, http.StatusBadRequest, CodeConflict, "routine name already exists")
			return
		}
	}

	routine, err := h.db.UpdateRoutine(id, database.RoutineUpdate{
		Name:        patch.Name,
		Description: patch.Description,
	})
	if errors.Is(err, database.ErrNotFound) {
		writeError(w, http.StatusNotFound, CodeNotFound, "routine not found")
		return
	}
	if errors.Is(err, database.ErrDuplicateName) {
		metrics.NameConflictsTotal.Inc()
		writeError(w, http.StatusBadRequest, CodeConflict, "routine name already exists")
		return
	}
	if err != nil {
		h.logger.Error("Failed to update routine", "error", err, "routine_id", id)
		writeError(w, http.StatusInternalServerError, CodeInternal, "internal server error")
		return
	}

	h.logger.Info("Routine updated", "routine_id", id)
	writeJSON(w, http.StatusOK, routine)
}

// HandleDelete handles DELETE /routines/{id}; exercises cascade
func (h *RoutinesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "invalid routine id")
		return
	}

	err := h.db.DeleteRoutine(id)
	if errors.Is(err, database.ErrNotFound) {
		writeError(w, http.StatusNotFound, CodeNotFound, "routine not found")
		return
	}
	if err != nil {
		h.logger.Error("Failed to delete routine", "error", err, "routine_id", id)
		writeError(w, http.StatusInternalServerError, CodeInternal, "internal server error")
		return
	}

	h.logger.Info("Routine deleted", "routine_id", id)
	metrics.EntitiesDeletedTotal.WithLabelValues(metrics.EntityRoutine).Inc()
	w.WriteHeader(http.StatusNoContent)
}
