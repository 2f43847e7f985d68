package metrics

import (
	"regexp"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestDuration tracks HTTP request duration in seconds by method, path, status.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts HTTP requests by method, path, status.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// RestaurantsTotal is the number of restaurants in the catalog, refreshed periodically.
	RestaurantsTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "restaurants_total",
			Help: "Number of restaurants in the catalog",
		},
	)

	// ReservationsTotal is the number of reservations in the ledger, refreshed periodically.
	ReservationsTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "reservations_total",
			Help: "Number of reservations in the ledger",
		},
	)
)

var (
	numericPathSegment = regexp.MustCompile(`/[0-9]+(/|$)`)
	initOnce           sync.Once
)

func init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestDuration, RequestTotal, RestaurantsTotal, ReservationsTotal)
	})
}

// NormalizePath reduces cardinality by replacing numeric path segments with {id}.
func NormalizePath(path string) string {
	return numericPathSegment.ReplaceAllString(path, "/{id}$1")
}

// RecordRequest records duration and count for an HTTP request.
func RecordRequest(method, path string, statusCode int, durationSeconds float64) {
	path = NormalizePath(path)
	status := strconv.Itoa(statusCode)
	RequestDuration.WithLabelValues(method, path, status).Observe(durationSeconds)
	RequestTotal.WithLabelValues(method, path, status).Inc()
}

// SetRestaurantsTotal updates the restaurants gauge.
func SetRestaurantsTotal(n int) {
	RestaurantsTotal.Set(float64(n))
}

// SetReservationsTotal updates the reservations gauge.
func SetReservationsTotal(n int) {
	ReservationsTotal.Set(float64(n))
}
