package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label value constants to prevent typos
const (
	// HTTP endpoints
	EndpointRoutines         = "routines"
	EndpointRoutineSearch    = "routine_search"
	EndpointRoutineDetail    = "routine_detail"
	EndpointRoutineExercises = "routine_exercises"
	EndpointExercises        = "exercises"
	EndpointHealth           = "health"

	// Entity types
	EntityRoutine  = "routine"
	EntityExercise = "exercise"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"endpoint", "method", "status_code"},
	)
)

// Business Metrics
var (
	EntitiesCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "entities_created_total",
			Help: "Total number of routines and exercises created",
		},
		[]string{"entity"},
	)

	EntitiesDeletedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "entities_deleted_total",
			Help: "Total number of routines and exercises deleted",
		},
		[]string{"entity"},
	)

	NameConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "routine_name_conflicts_total",
			Help: "Total number of routine creations or renames rejected for a duplicate name",
		},
	)

	ValidationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "validation_failures_total",
			Help: "Total number of requests rejected by field validation",
		},
		[]string{"entity"},
	)
)

// Entity count gauges, fed by the background collector
var (
	RoutinesCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "routines_count",
			Help: "Current number of routines in the store",
		},
	)

	ExercisesCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "exercises_count",
			Help: "Current number of exercises in the store",
		},
	)
)
