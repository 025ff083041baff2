package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestLabels = []string{"method", "route", "status"}

	httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "offerte",
		Name:      "http_requests_total",
		Help:      "Requests served, by route pattern and status class.",
	}, requestLabels)
	httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "offerte",
		Name:      "http_request_duration_seconds",
		Help:      "Time to serve a request, by route pattern and status class.",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, requestLabels)
	lookupRowsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "product_lookup_rows_total",
			Help: "Rows returned per product source.",
		},
		[]string{"source"},
	)
	lookupDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "product_lookup_duration_seconds",
			Help:    "Duration of a single source lookup.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source", "result"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal, httpRequestDuration, lookupRowsTotal, lookupDuration)
}

// RecordRequest counts one served request; route is the mux pattern, not the raw path.
func RecordRequest(method, route string, statusCode int, duration time.Duration) {
	labels := prometheus.Labels{"method": method, "route": route, "status": classifyStatus(statusCode)}
	httpRequestsTotal.With(labels).Inc()
	httpRequestDuration.With(labels).Observe(duration.Seconds())
}

// RecordLookup records one query against a product source.
func RecordLookup(source string, rows int, duration time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	lookupRowsTotal.WithLabelValues(source).Add(float64(rows))
	lookupDuration.WithLabelValues(source, result).Observe(duration.Seconds())
}

// classifyStatus buckets a status code into its class label, e.g. 404 -> "4xx".
func classifyStatus(statusCode int) string {
	switch class := statusCode / 100; class {
	case 2, 3, 4, 5:
		return fmt.Sprintf("%dxx", class)
	default:
		return "unknown"
	}
}

// MetricsHandler exposes the default Prometheus registry.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
