// Package metrics exposes Prometheus metrics for the API. Collectors are
// registered on the default registry through promauto.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "budgeter_http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "budgeter_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	spendsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "budgeter_spends_created_total",
			Help: "Total number of spends recorded",
		},
	)

	budgetsUpserted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "budgeter_budgets_upserted_total",
			Help: "Total number of budget upserts",
		},
	)

	loginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "budgeter_login_attempts_total",
			Help: "Total number of login attempts by result",
		},
		[]string{"result"}, // success, invalid_credentials, otp_required, invalid_otp, error
	)
)

func SpendCreated()   { spendsCreated.Inc() }
func BudgetUpserted() { budgetsUpserted.Inc() }

func LoginAttempt(result string) {
	loginAttempts.WithLabelValues(result).Inc()
}

// Middleware records request counts and latency per chi route pattern, so
// ids in paths do not explode label cardinality.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RegisterDB exports connection pool statistics for db.
func RegisterDB(db *sql.DB, name string) error {
	return prometheus.Register(collectors.NewDBStatsCollector(db, name))
}
