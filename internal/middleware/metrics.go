package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsPath = "/metrics"

var (
	httpInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "bookshop",
		Subsystem: "http",
		Name:      "in_flight_requests",
		Help:      "Current number of in-flight HTTP requests and open websocket sessions.",
	})

	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bookshop",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests processed.",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "bookshop",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latencies in seconds, websocket sessions excluded.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	wsSessionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "bookshop",
		Subsystem: "http",
		Name:      "websocket_session_duration_seconds",
		Help:      "Lifetime of upgraded websocket connections in seconds.",
		Buckets:   []float64{1, 10, 60, 300, 1800, 3600},
	})
)

// Metrics не считает запросы самого Prometheus. Websocket сессии живут долго,
// поэтому их длительность пишется в отдельную гистограмму.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == metricsPath {
			next.ServeHTTP(w, r)
			return
		}

		httpInFlight.Inc()
		defer httpInFlight.Dec()

		start := time.Now()
		rw := wrapResponseWriter(w)

		next.ServeHTTP(rw, r)

		labels := prometheus.Labels{
			"method": r.Method,
			"route":  routePattern(r),
			"status": strconv.Itoa(rw.status),
		}
		httpRequestsTotal.With(labels).Inc()

		if rw.status == http.StatusSwitchingProtocols {
			wsSessionDuration.Observe(time.Since(start).Seconds())
			return
		}
		httpRequestDuration.With(labels).Observe(time.Since(start).Seconds())
	})
}

// в метках только шаблон маршрута, иначе каждый order_id стал бы отдельной серией
func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
		return rc.RoutePattern()
	}
	return "unmatched"
}
