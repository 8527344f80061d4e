// Package metrics exposes Prometheus collectors for the harvester service.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	harvestRecordsTotal        *prometheus.CounterVec
	harvestSourceFailuresTotal *prometheus.CounterVec
	harvestDurationSeconds     prometheus.Histogram
	httpRequestsTotal          *prometheus.CounterVec
	httpRequestDurationSeconds *prometheus.HistogramVec

	once sync.Once
)

// Init initializes the Prometheus metrics collectors.
// It is safe to call this function multiple times.
func Init() {
	once.Do(func() {
		harvestRecordsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "harvest_records_total",
				Help: "Total number of job records harvested, labeled by source.",
			},
			[]string{"source"},
		)

		harvestSourceFailuresTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "harvest_source_failures_total",
				Help: "Total number of source fetches that contributed zero records due to failure.",
			},
			[]string{"source"},
		)

		harvestDurationSeconds = promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "harvest_duration_seconds",
				Help:    "Histogram of end-to-end harvest latencies.",
				Buckets: []float64{0.5, 1, 2, 5, 10, 20, 40, 60},
			},
		)

		httpRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests, labeled by method and code.",
			},
			[]string{"method", "code"},
		)

		httpRequestDurationSeconds = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Histogram of HTTP request latencies, labeled by method and route.",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 15, 45},
			},
			[]string{"method", "route"},
		)
	})
}

// Handler returns an http.Handler for exposing Prometheus metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveSource records the record count contributed by one source fetch.
func ObserveSource(source string, records int) {
	if harvestRecordsTotal == nil {
		return
	}
	harvestRecordsTotal.WithLabelValues(source).Add(float64(records))
}

// ObserveSourceFailure increments the failure counter for a source.
func ObserveSourceFailure(source string) {
	if harvestSourceFailuresTotal == nil {
		return
	}
	harvestSourceFailuresTotal.WithLabelValues(source).Inc()
}

// ObserveHarvest records the duration of one harvest invocation.
func ObserveHarvest(duration time.Duration) {
	if harvestDurationSeconds == nil {
		return
	}
	harvestDurationSeconds.Observe(duration.Seconds())
}

// ObserveHTTPRequest increments the HTTP request metrics.
func ObserveHTTPRequest(method, route string, code int, duration time.Duration) {
	if httpRequestsTotal == nil {
		return
	}
	httpRequestsTotal.WithLabelValues(method, strconv.Itoa(code)).Inc()
	httpRequestDurationSeconds.WithLabelValues(method, route).Observe(duration.Seconds())
}
