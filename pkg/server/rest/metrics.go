package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	routeOpsFailed *prometheus.CounterVec
	routesActive   prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "roadnet",
			Name:      "http_requests_total",
			Help:      "Total http requests by method, route pattern and status code",
		}, []string{"method", "route", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "roadnet",
			Name:      "http_request_duration_seconds",
			Help:      "Http request duration by method and route pattern",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"method", "route"}),
		routeOpsFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "roadnet",
			Name:      "operation_failures_total",
			Help:      "Failed road network operations by operation and http status",
		}, []string{"operation", "code"}),
		routesActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "roadnet",
			Name:      "routes_active",
			Help:      "Number of registered routes",
		}),
	}
	reg.MustRegister(m.httpRequests, m.httpDuration, m.routeOpsFailed, m.routesActive)
	return m
}

func (m *Metrics) operationFailed(operation string, status int) {
	m.routeOpsFailed.WithLabelValues(operation, strconv.Itoa(status)).Inc()
}

func (m *Metrics) setActiveRoutes(n int) {
	m.routesActive.Set(float64(n))
}

// PromeHttpMiddleware. count & time every request, labeled by the chi route pattern.
func PromeHttpMiddleware(m *Metrics) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			route := "unknown"
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			m.httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
			m.httpDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		}
		return http.HandlerFunc(fn)
	}
}
