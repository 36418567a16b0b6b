package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	submissionsReceived = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "site_submissions_total",
			Help: "Total number of contact submissions received",
		},
	)

	subscriptions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_subscriptions_total",
			Help: "Newsletter subscribe requests by result",
		},
		[]string{"result"},
	)

	fallbackSelected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "store_fallback_selected_total",
			Help: "Times the local fallback store was selected",
		},
	)

	notificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_sent_total",
			Help: "Notification emails by kind and status",
		},
		[]string{"kind", "status"},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware registra contagem e duração por rota. Usa o pattern do chi
// ("/admin/services/{id}") para não explodir a cardinalidade.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path).Observe(duration)
	})
}

func RecordSubmission() {
	submissionsReceived.Inc()
}

// RecordSubscription: result é "created", "reactivated" ou "already_subscribed".
func RecordSubscription(result string) {
	subscriptions.WithLabelValues(result).Inc()
}

func RecordFallbackSelected() {
	fallbackSelected.Inc()
}

func RecordNotification(kind, status string) {
	notificationsSent.WithLabelValues(kind, status).Inc()
}
