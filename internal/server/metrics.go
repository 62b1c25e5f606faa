package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careflow_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	simulationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "careflow_simulation_duration_seconds",
			Help:    "Wall time of one aggregate simulation",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
	)

	simulationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careflow_simulations_total",
			Help: "Total number of aggregate simulations",
		},
		[]string{"outcome"},
	)
)

func metricsHandler() http.Handler {
	return promhttp.Handler()
}

// metricsMiddleware records per-request counters.
func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wrapped := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)
		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(wrapped.status)).Inc()
	})
}

// recordSimulation tracks one simulate call for the business metrics.
func recordSimulation(start time.Time, outcome string) {
	simulationDuration.Observe(time.Since(start).Seconds())
	simulationsTotal.WithLabelValues(outcome).Inc()
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
