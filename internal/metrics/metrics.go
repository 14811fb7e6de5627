package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestCounter counts HTTP requests by route and status.
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	RequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	HistoryEntries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "buyer_history_entries_total",
			Help: "History entries written, by action",
		},
		[]string{"action"},
	)

	// ImportRows counts import rows by result: created, invalid, failed.
	ImportRows = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "buyer_import_rows_total",
			Help: "Rows processed by bulk import, by result",
		},
		[]string{"result"},
	)
)

var registerOnce sync.Once

// Register adds the collectors to the default registry. Safe to call more
// than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			RequestCounter,
			RequestDurationHistogram,
			HistoryEntries,
			ImportRows,
		)
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}
