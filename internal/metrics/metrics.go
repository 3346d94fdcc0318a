// Package metrics records lookup outcomes and store latency with Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Lookup outcomes
const (
	OutcomeFound       = "found"
	OutcomeNotFound    = "not_found"
	OutcomeBadRequest  = "bad_request"
	OutcomeStoreError  = "store_error"
	OutcomeServerError = "server_error"
)

// Recorder receives lookup observations
type Recorder interface {
	ObserveLookup(entity, outcome string)
	ObserveStoreLatency(entity string, d time.Duration)
}

// LookupMetrics is a Prometheus-backed Recorder
type LookupMetrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewLookupMetrics creates the collectors and registers them with reg
func NewLookupMetrics(reg prometheus.Registerer) (*LookupMetrics, error) {
	m := &LookupMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ark",
			Subsystem: "lookup",
			Name:      "requests_total",
			Help:      "Lookup requests by entity kind and outcome.",
		}, []string{"entity", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ark",
			Subsystem: "lookup",
			Name:      "store_duration_seconds",
			Help:      "Latency of store lookups by entity kind.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"entity"}),
	}

	for _, c := range []prometheus.Collector{m.requests, m.latency} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveLookup counts one handled request
func (m *LookupMetrics) ObserveLookup(entity, outcome string) {
	m.requests.WithLabelValues(entity, outcome).Inc()
}

// ObserveStoreLatency records the duration of one store call
func (m *LookupMetrics) ObserveStoreLatency(entity string, d time.Duration) {
	m.latency.WithLabelValues(entity).Observe(d.Seconds())
}

// Nop discards observations
type Nop struct{}

func (Nop) ObserveLookup(string, string)              {}
func (Nop) ObserveStoreLatency(string, time.Duration) {}
