// Package metrics содержит Prometheus-метрики сервиса.
//
// HTTP:
//   - http_requests_total{method, route, status}
//   - http_request_duration_seconds{method, route}
//
// Хранилище:
//   - db_query_duration_seconds{operation}
//   - db_query_errors_total{operation, kind}
//
// Кэш:
//   - cache_requests_total{resource, result}
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5, 10},
		},
		[]string{"method", "route"},
	)

	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Storage call duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 5},
		},
		[]string{"operation"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Total number of failed storage calls",
		},
		[]string{"operation", "kind"},
	)

	CacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_requests_total",
			Help: "Cache lookups by result (hit, miss, error)",
		},
		[]string{"resource", "result"},
	)
)

// ObserveDBQuery записывает длительность вызова хранилища начиная с start
func ObserveDBQuery(operation string, start time.Time) {
	DBQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// RecordDBError увеличивает счетчик ошибок хранилища
func RecordDBError(operation, kind string) {
	DBQueryErrors.WithLabelValues(operation, kind).Inc()
}

// RecordCache учитывает результат обращения к кэшу
func RecordCache(resource, result string) {
	CacheRequests.WithLabelValues(resource, result).Inc()
}
