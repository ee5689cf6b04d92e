package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"saudade-match/internal/domain"
)

// Observer recibe la telemetría de las comparaciones.
type Observer interface {
	RecordComparison(result domain.SaudadeCompatibilityResult, duration time.Duration)
	RecordCache(hit bool)
	RecordError(operation string)
}

// PrometheusObserver exporta métricas de scoring a Prometheus.
type PrometheusObserver struct {
	comparisons     *prometheus.CounterVec
	scores          prometheus.Histogram
	computeDuration prometheus.Histogram
	cacheLookups    *prometheus.CounterVec
	errors          *prometheus.CounterVec
}

// NewPrometheusObserver registra los colectores; reutiliza los existentes si ya estaban registrados.
func NewPrometheusObserver(namespace string, reg prometheus.Registerer) (*PrometheusObserver, error) {
	if namespace == "" {
		namespace = "saudade_match"
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	o := &PrometheusObserver{
		comparisons: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "comparisons_total",
			Help:      "Compatibility comparisons by connection type.",
		}, []string{"connection_type"}),
		scores: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "compatibility_score",
			Help:      "Distribution of overall compatibility scores.",
			Buckets:   prometheus.LinearBuckets(0, 10, 11),
		}),
		computeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "compute_duration_seconds",
			Help:      "Latency of a single compatibility computation.",
			Buckets:   prometheus.ExponentialBuckets(0.00005, 2, 12),
		}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "result_cache_lookups_total",
			Help:      "Result cache lookups by outcome.",
		}, []string{"outcome"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Failures by operation.",
		}, []string{"operation"}),
	}

	register := func(c prometheus.Collector) (prometheus.Collector, error) {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				return are.ExistingCollector, nil
			}
			return nil, fmt.Errorf("register metric: %w", err)
		}
		return c, nil
	}

	var err error
	var c prometheus.Collector
	if c, err = register(o.comparisons); err != nil {
		return nil, err
	}
	o.comparisons = c.(*prometheus.CounterVec)
	if c, err = register(o.scores); err != nil {
		return nil, err
	}
	o.scores = c.(prometheus.Histogram)
	if c, err = register(o.computeDuration); err != nil {
		return nil, err
	}
	o.computeDuration = c.(prometheus.Histogram)
	if c, err = register(o.cacheLookups); err != nil {
		return nil, err
	}
	o.cacheLookups = c.(*prometheus.CounterVec)
	if c, err = register(o.errors); err != nil {
		return nil, err
	}
	o.errors = c.(*prometheus.CounterVec)
	return o, nil
}

func (o *PrometheusObserver) RecordComparison(result domain.SaudadeCompatibilityResult, duration time.Duration) {
	if o == nil {
		return
	}
	o.comparisons.WithLabelValues(string(result.ConnectionType)).Inc()
	o.scores.Observe(float64(result.CompatibilityScore))
	o.computeDuration.Observe(duration.Seconds())
}

func (o *PrometheusObserver) RecordCache(hit bool) {
	if o == nil {
		return
	}
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	o.cacheLookups.WithLabelValues(outcome).Inc()
}

func (o *PrometheusObserver) RecordError(operation string) {
	if o == nil {
		return
	}
	o.errors.WithLabelValues(operation).Inc()
}

type nopObserver struct{}

func (nopObserver) RecordComparison(domain.SaudadeCompatibilityResult, time.Duration) {}

func (nopObserver) RecordCache(bool) {}

func (nopObserver) RecordError(string) {}
