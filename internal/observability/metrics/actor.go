package metrics

// Package metrics exposes Prometheus instrumentation for remote actor calls.

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ActorMetrics instruments calls against the remote CRM actor.
type ActorMetrics struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewActorMetrics registers actor call metrics on the given registerer.
func NewActorMetrics(reg prometheus.Registerer) *ActorMetrics {
	factory := promauto.With(reg)
	return &ActorMetrics{
		calls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crm_ui",
			Subsystem: "actor",
			Name:      "calls_total",
			Help:      "Remote actor calls by method and outcome.",
		}, []string{"method", "outcome"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "crm_ui",
			Subsystem: "actor",
			Name:      "call_duration_seconds",
			Help:      "Remote actor call latency by method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}
}

// Observe records one actor call.
func (m *ActorMetrics) Observe(method string, start time.Time, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.calls.WithLabelValues(method, outcome).Inc()
	m.duration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}
