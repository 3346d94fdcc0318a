package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestLookupMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewLookupMetrics(reg)
	if err != nil {
		t.Fatalf("NewLookupMetrics failed: %v", err)
	}

	m.ObserveLookup("contract", OutcomeFound)
	m.ObserveLookup("contract", OutcomeFound)
	m.ObserveLookup("contract", OutcomeNotFound)
	m.ObserveStoreLatency("contract", 15*time.Millisecond)

	if got := testutil.ToFloat64(m.requests.WithLabelValues("contract", OutcomeFound)); got != 2 {
		t.Errorf("Expected 2 found lookups, got %v", got)
	}
	if got := testutil.ToFloat64(m.requests.WithLabelValues("contract", OutcomeNotFound)); got != 1 {
		t.Errorf("Expected 1 not-found lookup, got %v", got)
	}
	if got := testutil.CollectAndCount(m.latency); got != 1 {
		t.Errorf("Expected 1 latency series, got %d", got)
	}

	if _, err := NewLookupMetrics(reg); err == nil {
		t.Error("Registering twice on the same registry should fail")
	}
}
