// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/MKhiriev/go-todo-keeper/internal/syncedlist"
)

const (
	resultSuccess = "success"
	resultError   = "error"
)

// StoreMetrics counts and times the store calls of a synced list.
type StoreMetrics struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	factory := promauto.With(reg)

	return &StoreMetrics{
		// Labels: op (append, remove, clear, update), result (success, error)
		calls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "calls_total",
			Help:      "Store calls issued by the synced todo list",
		}, []string{"op", "result"}),

		// Labels: op
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "call_duration_seconds",
			Help:      "Store call latency in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"op"}),
	}
}

// Hook returns a [syncedlist.StoreCallHook] recording into m.
func (m *StoreMetrics) Hook() syncedlist.StoreCallHook {
	return func(op syncedlist.Op, elapsed time.Duration, err error) {
		result := resultSuccess
		if err != nil {
			result = resultError
		}
		m.calls.WithLabelValues(op.String(), result).Inc()
		m.duration.WithLabelValues(op.String()).Observe(elapsed.Seconds())
	}
}
