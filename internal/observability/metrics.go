package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "creatorhub_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "creatorhub_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// SubmissionsTotal counts content submissions by platform.
	SubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "creatorhub_submissions_total",
		Help: "Total number of content submissions by platform",
	}, []string{"platform"})

	// ReviewsTotal counts review decisions by action.
	ReviewsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "creatorhub_reviews_total",
		Help: "Total number of review decisions by action",
	}, []string{"action"})

	// RevisionCapRejections counts revision requests refused because the
	// submission already used all its revision requests.
	RevisionCapRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "creatorhub_revision_cap_rejections_total",
		Help: "Total number of revision requests rejected by the revision cap",
	})

	// ProofsTotal counts proof-of-posting submissions by platform.
	ProofsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "creatorhub_proofs_total",
		Help: "Total number of proof-of-posting submissions by platform",
	}, []string{"platform"})

	// WebSocketConnectionsTotal is the gauge of total WebSocket connections.
	WebSocketConnectionsTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "creatorhub_websocket_connections_total",
		Help: "Total number of active WebSocket connections",
	})

	// WebSocketBackpressureDrops counts messages dropped because a client
	// send buffer was full or already closed.
	WebSocketBackpressureDrops = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "creatorhub_websocket_backpressure_drops_total",
		Help: "Total number of WebSocket messages dropped due to backpressure",
	}, []string{"hub", "reason"})

	// NotificationsPublished counts notification events published to Redis.
	NotificationsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "creatorhub_notifications_published_total",
		Help: "Total number of notification events published by kind",
	}, []string{"kind"})
)

// ObserveQuery records the latency of a database query.
func ObserveQuery(operation, table string, start time.Time) {
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
}
