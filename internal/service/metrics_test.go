package service

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"saudade-match/internal/domain"
)

func TestPrometheusObserver_Records(t *testing.T) {
	reg := prometheus.NewRegistry()
	o, err := NewPrometheusObserver("test", reg)
	if err != nil {
		t.Fatalf("new observer: %v", err)
	}

	o.RecordComparison(domain.SaudadeCompatibilityResult{CompatibilityScore: 82, ConnectionType: domain.ConnectionSaudadeSoulmate}, time.Millisecond)
	o.RecordComparison(domain.SaudadeCompatibilityResult{CompatibilityScore: 40, ConnectionType: domain.ConnectionGentleCompanion}, time.Millisecond)
	o.RecordCache(true)
	o.RecordCache(false)
	o.RecordCache(false)
	o.RecordError("rank")

	if got := counterValue(t, reg, "test_comparisons_total", "saudade_soulmate"); got != 1 {
		t.Fatalf("expected 1 soulmate comparison, got %v", got)
	}
	if got := counterValue(t, reg, "test_result_cache_lookups_total", "miss"); got != 2 {
		t.Fatalf("expected 2 cache misses, got %v", got)
	}
	if got := counterValue(t, reg, "test_errors_total", "rank"); got != 1 {
		t.Fatalf("expected 1 rank error, got %v", got)
	}
}

func TestPrometheusObserver_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewPrometheusObserver("test", reg); err != nil {
		t.Fatalf("first observer: %v", err)
	}
	second, err := NewPrometheusObserver("test", reg)
	if err != nil {
		t.Fatalf("second observer should reuse collectors, got %v", err)
	}
	second.RecordCache(true)
	if got := counterValue(t, reg, "test_result_cache_lookups_total", "hit"); got != 1 {
		t.Fatalf("expected shared collector, got %v", got)
	}
}

func TestPrometheusObserver_NilSafe(t *testing.T) {
	var o *PrometheusObserver
	o.RecordComparison(domain.SaudadeCompatibilityResult{}, time.Millisecond)
	o.RecordCache(true)
	o.RecordError("x")
}

// counterValue busca en el registry el contador con esa etiqueta.
func counterValue(t *testing.T, reg *prometheus.Registry, name, label string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetValue() == label {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}
