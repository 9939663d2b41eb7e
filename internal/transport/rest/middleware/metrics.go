package middleware

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Counter for handled requests
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quizbank_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	// Histogram for request duration
	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "quizbank_http_request_duration_seconds",
			Help:    "Time spent handling HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)
)

// Metrics records request count and latency per route template.
// Install it with mux.Router.Use for matched routes and wrap the router's
// NotFound and MethodNotAllowed handlers with it; those are labelled "unmatched".
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := "unmatched"
		if current := mux.CurrentRoute(r); current != nil {
			if tpl, err := current.GetPathTemplate(); err == nil {
				route = tpl
			}
		}

		timer := prometheus.NewTimer(httpDuration.WithLabelValues(route))
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)
		timer.ObserveDuration()

		httpRequests.WithLabelValues(route, r.Method, strconv.Itoa(rec.code())).Inc()
	})
}
