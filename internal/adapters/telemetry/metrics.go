// Package telemetry provides metrics and tracing adapters.
package telemetry

import (
	"errors"
	"io"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.trai.ch/repute/internal/core/ports"
)

var (
	_ ports.CacheMetrics   = (*PrometheusCollector)(nil)
	_ ports.RequestMetrics = (*PrometheusCollector)(nil)
)

// PrometheusCollector exposes cache and request counters via Prometheus.
type PrometheusCollector struct {
	gatherer prometheus.Gatherer
	cache    *prometheus.CounterVec
	evicted  prometheus.Counter
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewPrometheusCollector registers the collector's metrics with reg.
// Metrics already registered on reg are reused.
func NewPrometheusCollector(reg *prometheus.Registry) (*PrometheusCollector, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	cacheOps, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "repute_cache_operations_total",
		Help: "Cache lookups and writes by outcome.",
	}, []string{"outcome"}))
	if err != nil {
		return nil, err
	}

	evicted, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "repute_cache_evicted_total",
		Help: "Entries removed by explicit invalidation.",
	}))
	if err != nil {
		return nil, err
	}

	requests, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "repute_api_requests_total",
		Help: "Requests sent to the reputation service by resource and status code.",
	}, []string{"resource", "status"}))
	if err != nil {
		return nil, err
	}

	latency, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "repute_api_request_duration_seconds",
		Help:    "Latency of requests sent to the reputation service.",
		Buckets: prometheus.DefBuckets,
	}, []string{"resource"}))
	if err != nil {
		return nil, err
	}

	return &PrometheusCollector{
		gatherer: reg,
		cache:    cacheOps,
		evicted:  evicted,
		requests: requests,
		latency:  latency,
	}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			return c, err
		}
		existing, ok := already.ExistingCollector.(C)
		if !ok {
			return c, err
		}
		return existing, nil
	}
	return c, nil
}

// Hit records a fresh cache lookup.
func (p *PrometheusCollector) Hit() { p.cache.WithLabelValues("hit").Inc() }

// Miss records a cache lookup that found nothing fresh.
func (p *PrometheusCollector) Miss() { p.cache.WithLabelValues("miss").Inc() }

// Expire records a stale entry dropped by a lookup.
func (p *PrometheusCollector) Expire() { p.cache.WithLabelValues("expired").Inc() }

// Store records a cache write.
func (p *PrometheusCollector) Store() { p.cache.WithLabelValues("store").Inc() }

// Evict records entries removed by invalidation.
func (p *PrometheusCollector) Evict(n int) {
	if n <= 0 {
		return
	}
	p.evicted.Add(float64(n))
}

// ObserveRequest records one request. A zero status means no response was received.
func (p *PrometheusCollector) ObserveRequest(resource string, status int, elapsed time.Duration) {
	label := "none"
	if status != 0 {
		label = strconv.Itoa(status)
	}
	p.requests.WithLabelValues(resource, label).Inc()
	p.latency.WithLabelValues(resource).Observe(elapsed.Seconds())
}

// WriteText writes every gathered metric in the Prometheus text exposition format.
func (p *PrometheusCollector) WriteText(w io.Writer) error {
	families, err := p.gatherer.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
