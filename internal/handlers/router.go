package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"gym-routines-api/internal/database"
	"gym-routines-api/internal/metrics"
	"gym-routines-api/internal/middleware"
)

// NewRouter assembles the HTTP routes for the API, with every endpoint
// wrapped in the metrics middleware
func NewRouter(db *database.DB) *mux.Router {
	routines := NewRoutinesHandler(db)
	exercises := NewExercisesHandler(db)

	r := mux.NewRouter()

	// Routine endpoints. /routines/search is registered before /routines/{id}
	// and {id} is constrained to digits, so "search" never matches as an id.
	r.Handle("/routines", middleware.WrapHandler(metrics.EndpointRoutines, routines.HandleList)).Methods(http.MethodGet)
	r.Handle("/routines", middleware.WrapHandler(metrics.EndpointRoutines, routines.HandleCreate)).Methods(http.MethodPost)
	r.Handle("/routines/search", middleware.WrapHandler(metrics.EndpointRoutineSearch, routines.HandleSearch)).Methods(http.MethodGet)
	r.Handle("/routines/{id:[0-9]+}", middleware.WrapHandler(metrics.EndpointRoutineDetail, routines.HandleGet)).Methods(http.MethodGet)
	r.Handle("/routines/{id:[0-9]+}", middleware.WrapHandler(metrics.EndpointRoutineDetail, routines.HandleUpdate)).Methods(http.MethodPut)
	r.Handle("/routines/{id:[0-9]+}", middleware.WrapHandler(metrics.EndpointRoutineDetail, routines.HandleDelete)).Methods(http.MethodDelete)

	// Exercise endpoints
	r.Handle("/routines/{id:[0-9]+}/exercises", middleware.WrapHandler(metrics.EndpointRoutineExercises, exercises.HandleCreate)).Methods(http.MethodPost)
	r.Handle("/exercises/{id:[0-9]+}", middleware.WrapHandler(metrics.EndpointExercises, exercises.HandleUpdate)).Methods(http.MethodPut)
	r.Handle("/exercises/{id:[0-9]+}", middleware.WrapHandler(metrics.EndpointExercises, exercises.HandleDelete)).Methods(http.MethodDelete)

	// Health check verifies the store connection
	r.Handle("/health", middleware.WrapHandler(metrics.EndpointHealth, func(w http.ResponseWriter, r *http.Request) {
		if err := db.Health(); err != nil {
			writeError(w, http.StatusServiceUnavailable, CodeInternal, "database unavailable")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})).Methods(http.MethodGet)

	return r
}
