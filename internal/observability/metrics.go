package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for AICalls.
const (
	OutcomeSuccess = "success"
	OutcomeEmpty   = "empty"
	OutcomeError   = "error"
	OutcomeTimeout = "timeout"
)

var (
	// RedisErrors counts Redis errors by command.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "moodrealm_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// SlowQueries counts database queries slower than the GORM slow threshold.
	SlowQueries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "moodrealm_db_slow_queries_total",
		Help: "Total number of database queries over the slow query threshold",
	})

	// RateLimited counts requests rejected by a route limit.
	RateLimited = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "moodrealm_rate_limited_total",
		Help: "Total number of requests rejected by rate limiting",
	}, []string{"limit"})

	// AICalls counts calls to the generative model by operation and outcome.
	AICalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "moodrealm_ai_calls_total",
		Help: "Total number of generative model calls",
	}, []string{"operation", "outcome"})

	// AILatency records generative model latency by operation.
	AILatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "moodrealm_ai_call_duration_seconds",
		Help:    "Generative model call latency in seconds",
		Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30},
	}, []string{"operation"})

	// ContentAutoRemoved counts posts and stories removed after reaching the report threshold.
	ContentAutoRemoved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "moodrealm_content_auto_removed_total",
		Help: "Total number of posts and stories removed by reports",
	}, []string{"target"})

	// MediaUploads counts image uploads by outcome.
	MediaUploads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "moodrealm_media_uploads_total",
		Help: "Total number of image uploads by outcome",
	}, []string{"outcome"})
)
