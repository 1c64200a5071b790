// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for StoreOperationsTotal.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

var (
	StoreOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hoteladmin_store_operations_total",
		Help: "Total number of document store operations by collection, operation and outcome.",
	},
		[]string{"collection", "operation", "outcome"},
	)

	StoreOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hoteladmin_store_operation_duration_seconds",
		Help:    "Latency of document store operations.",
		Buckets: prometheus.DefBuckets,
	},
		[]string{"collection", "operation"},
	)

	SessionEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hoteladmin_session_events_total",
		Help: "Total number of sign-in, sign-out and rejected sign-in attempts.",
	},
		[]string{"event"},
	)

	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "hoteladmin_active_sessions",
		Help: "Current number of unexpired sessions.",
	})
)

// ObserveStoreOperation records one store call.
func ObserveStoreOperation(collection, operation, outcome string, started time.Time) {
	StoreOperationsTotal.WithLabelValues(collection, operation, outcome).Inc()
	StoreOperationDuration.WithLabelValues(collection, operation).Observe(time.Since(started).Seconds())
}
