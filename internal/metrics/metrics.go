// Package metrics defines the application's Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Scoring pipeline metrics
var (
	// RescoreRunsTotal tracks orchestrator runs by outcome (completed/aborted)
	RescoreRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scoring_rescore_runs_total",
			Help: "Rescore orchestrator runs by outcome",
		},
		[]string{"outcome"},
	)

	// DegradedSignalsTotal tracks sub-score computations that fell back to
	// the neutral default because a fetch or the analyzer failed
	DegradedSignalsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scoring_degraded_signals_total",
			Help: "Sub-score computations degraded to the neutral default, by signal",
		},
		[]string{"signal"},
	)

	// ScoreUpdateDuration tracks the latency of a full content score update
	ScoreUpdateDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "scoring_update_duration_seconds",
			Help:    "Duration of score aggregation and persistence in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"stage"},
	)

	// ScoreCacheRefreshesTotal tracks score cache refreshes by status
	ScoreCacheRefreshesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scoring_cache_refreshes_total",
			Help: "Score cache refreshes by status",
		},
		[]string{"status"},
	)
)

// Rescore trigger metrics
var (
	// RescoreMessagesTotal tracks pub/sub trigger messages by status
	RescoreMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rescore_messages_total",
			Help: "Rescore trigger messages by status (published/received/invalid)",
		},
		[]string{"status"},
	)
)

// HTTP metrics
var (
	// HTTPErrorsTotal tracks HTTP errors by type
	HTTPErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_errors_total",
			Help: "Total HTTP errors by error type",
		},
		[]string{"type"},
	)

	// ReactionsThrottledTotal tracks reactions rejected by the rate limiter
	ReactionsThrottledTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reactions_throttled_total",
			Help: "Reactions rejected by the per-author rate limiter",
		},
	)
)

// Redis metrics
var (
	// RedisOpsTotal tracks total Redis operations by operation type and status
	RedisOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redis_operations_total",
			Help: "Total Redis operations by operation and status",
		},
		[]string{"operation", "status"},
	)

	// RedisOpDuration tracks Redis operation latency in seconds
	RedisOpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "redis_operation_duration_seconds",
			Help:    "Redis operation duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation"},
	)

	// RedisConnectionErrors tracks Redis connection errors
	RedisConnectionErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "redis_connection_errors_total",
			Help: "Total Redis connection errors",
		},
	)

	// CircuitBreakerStateChanges tracks circuit breaker state transitions
	CircuitBreakerStateChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_changes_total",
			Help: "Circuit breaker state transitions by component and new state",
		},
		[]string{"component", "state"},
	)

	// CircuitBreakerState tracks current circuit breaker state (0=closed, 1=half-open, 2=open)
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Current circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"component"},
	)
)
