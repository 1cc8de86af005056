package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xinfuwcx/tieback/pkg/observability"
)

// metricsHooks implements the observability hook interfaces on top of
// Prometheus collectors. One instance is registered at server startup; the
// libraries stay unaware of the backend.
type metricsHooks struct {
	observability.NoopGenerationHooks

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	generationsTotal   *prometheus.CounterVec
	generationDuration prometheus.Histogram
	stabilityScore     prometheus.Histogram

	cacheOps *prometheus.CounterVec
}

func newMetricsHooks(reg *prometheus.Registry) *metricsHooks {
	h := &metricsHooks{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tieback_http_requests_total",
			Help: "HTTP requests by method, path, and status code.",
		}, []string{"method", "path", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tieback_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		generationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tieback_generations_total",
			Help: "Layout generation runs by outcome.",
		}, []string{"outcome"}),
		generationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tieback_generation_duration_seconds",
			Help:    "Layout generation latency.",
			Buckets: prometheus.DefBuckets,
		}),
		stabilityScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tieback_stability_score",
			Help:    "Stability score distribution of generated layouts.",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		}),
		cacheOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tieback_cache_operations_total",
			Help: "Cache operations by key type and outcome.",
		}, []string{"key_type", "op"}),
	}

	reg.MustRegister(
		h.requestsTotal, h.requestDuration,
		h.generationsTotal, h.generationDuration, h.stabilityScore,
		h.cacheOps,
	)
	return h
}

// OnGenerateComplete records a generation run.
func (h *metricsHooks) OnGenerateComplete(ctx context.Context, anchorCount, beamCount int, duration time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	h.generationsTotal.WithLabelValues(outcome).Inc()
	h.generationDuration.Observe(duration.Seconds())
}

// OnQualityComplete records the stability score of a generated layout.
func (h *metricsHooks) OnQualityComplete(ctx context.Context, issueCount int, stabilityScore float64, duration time.Duration) {
	h.stabilityScore.Observe(stabilityScore)
}

// OnCacheHit records a cache hit.
func (h *metricsHooks) OnCacheHit(ctx context.Context, keyType string) {
	h.cacheOps.WithLabelValues(keyType, "hit").Inc()
}

// OnCacheMiss records a cache miss.
func (h *metricsHooks) OnCacheMiss(ctx context.Context, keyType string) {
	h.cacheOps.WithLabelValues(keyType, "miss").Inc()
}

// OnCacheSet records a cache write.
func (h *metricsHooks) OnCacheSet(ctx context.Context, keyType string, size int) {
	h.cacheOps.WithLabelValues(keyType, "set").Inc()
}

// OnRequest records an incoming HTTP request.
func (h *metricsHooks) OnRequest(ctx context.Context, method, path string) {}

// OnResponse records a completed HTTP request.
func (h *metricsHooks) OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration) {
	h.requestsTotal.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
	h.requestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// setupMetrics registers Prometheus-backed hooks globally and returns the
// scrape handler.
func setupMetrics() http.Handler {
	reg := prometheus.NewRegistry()
	hooks := newMetricsHooks(reg)
	observability.SetGenerationHooks(hooks)
	observability.SetCacheHooks(hooks)
	observability.SetServerHooks(hooks)
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
