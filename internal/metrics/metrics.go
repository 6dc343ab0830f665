// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records application-level counters. Handlers and services call
// it through this concrete type; a zero-value registry works for tests.
type Collector struct {
	httpStatus       *prometheus.CounterVec
	tokensIssued     prometheus.Counter
	checkoutOutcomes *prometheus.CounterVec
	cacheHits        prometheus.Counter
	cacheMisses      prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics on the given
// registry
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bistro_http_responses_total",
			Help: "HTTP responses by status code",
		}, []string{"status_code"}),
		tokensIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bistro_tokens_issued_total",
			Help: "Identity tokens issued",
		}),
		checkoutOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bistro_checkouts_total",
			Help: "Checkout attempts by outcome",
		}, []string{"outcome"}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bistro_cache_hits_total",
			Help: "Report cache hits",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bistro_cache_misses_total",
			Help: "Report cache misses",
		}),
	}

	reg.MustRegister(
		c.httpStatus,
		c.tokensIssued,
		c.checkoutOutcomes,
		c.cacheHits,
		c.cacheMisses,
	)

	return c
}

// RecordHTTPStatus records a response status code
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// RecordTokenIssued records one issued identity token
func (c *Collector) RecordTokenIssued() {
	c.tokensIssued.Inc()
}

// RecordCheckout records a checkout attempt. Outcome is one of "success",
// "partial_failure" or "failure".
func (c *Collector) RecordCheckout(outcome string) {
	c.checkoutOutcomes.WithLabelValues(outcome).Inc()
}

// RecordCacheHit records a report cache hit
func (c *Collector) RecordCacheHit() {
	c.cacheHits.Inc()
}

// RecordCacheMiss records a report cache miss
func (c *Collector) RecordCacheMiss() {
	c.cacheMisses.Inc()
}

// Handler returns the HTTP handler for Prometheus scrapes
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Instrument wraps an http.Handler and records every response status
func (c *Collector) Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		c.RecordHTTPStatus(rec.status)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
