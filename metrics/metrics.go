package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestCounter counts HTTP requests by status code, method, and path
	RequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordduel_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"status", "method", "path"},
	)

	// RequestDuration measures HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wordduel_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status", "method", "path"},
	)

	// RequestInProgress counts HTTP requests currently being processed
	RequestInProgress = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "wordduel_http_requests_in_progress",
			Help: "Number of HTTP requests currently being processed",
		},
		[]string{"method", "path"},
	)

	// RateLimiterRejections counts rejected requests due to rate limiting
	RateLimiterRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordduel_rate_limiter_rejections_total",
			Help: "Total number of requests rejected by rate limiter",
		},
		[]string{"ip"},
	)

	// DuelTransitions counts duel lifecycle transitions by resulting status
	DuelTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordduel_duel_transitions_total",
			Help: "Total number of duel lifecycle transitions",
		},
		[]string{"status"},
	)

	// AnswersSubmitted counts successfully ingested duel answers
	AnswersSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wordduel_answers_submitted_total",
			Help: "Total number of accepted duel answers",
		},
	)

	// DuplicateResponses counts rejected re-submissions of an answered word
	DuplicateResponses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wordduel_duplicate_responses_total",
			Help: "Total number of rejected duplicate answer submissions",
		},
	)

	// FinalizationRaces counts finalization attempts that lost the
	// active-to-completed race to a concurrent caller
	FinalizationRaces = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wordduel_finalization_races_total",
			Help: "Total number of finalization attempts that observed an already completed duel",
		},
	)

	// NotificationsSent counts duel events pushed to connected sessions
	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordduel_notifications_sent_total",
			Help: "Total number of duel events delivered over websocket",
		},
		[]string{"event"},
	)

	// NotificationsDropped counts duel events that could not be delivered
	NotificationsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wordduel_notifications_dropped_total",
			Help: "Total number of duel events dropped (no connection or slow client)",
		},
	)

	// WebsocketConnections tracks currently connected duel event clients
	WebsocketConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wordduel_websocket_connections",
			Help: "Number of currently connected websocket clients",
		},
	)

	// DatabaseOperationDuration measures database operation duration
	DatabaseOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wordduel_db_operation_duration_seconds",
			Help:    "Database operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	// MemoryStats tracks memory usage stats
	MemoryStats = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "wordduel_memory_stats_bytes",
			Help: "Memory statistics in bytes",
		},
		[]string{"type"},
	)

	// GoroutineCount tracks the number of goroutines
	GoroutineCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wordduel_goroutine_count",
			Help: "Number of goroutines",
		},
	)
)

// RecordDBOperation records the duration of a database operation
func RecordDBOperation(operation string, table string, startTime time.Time) {
	duration := time.Since(startTime).Seconds()
	DatabaseOperationDuration.WithLabelValues(operation, table).Observe(duration)
}
