// Package metrics exposes Prometheus instrumentation for the note-keeper
// server: HTTP and gRPC request metrics, connection pool statistics and a few
// domain counters.
package metrics

import (
	"context"
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

const namespace = "notekeeper"

// Metrics holds the Prometheus collectors of one server instance. Every
// instance owns its registry, so several can coexist in tests.
type Metrics struct {
	registry *prometheus.Registry

	RequestCounter   *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight *prometheus.GaugeVec

	NotesCreated  prometheus.Counter
	NotesDeleted  prometheus.Counter
	QuotaRejected prometheus.Counter
	LoginsTotal   *prometheus.CounterVec
	Registrations prometheus.Counter
}

// NewMetrics creates the collectors and registers them, together with the Go
// runtime and process collectors, on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		RequestCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "Total number of requests",
			},
			[]string{"transport", "route", "method", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "request_duration_seconds",
				Help:      "Request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"transport", "route", "method"},
		),
		RequestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "requests_in_flight",
				Help:      "Number of requests currently being processed",
			},
			[]string{"transport"},
		),
		NotesCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notes_created_total",
			Help:      "Notes stored successfully",
		}),
		NotesDeleted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notes_deleted_total",
			Help:      "Notes deleted by their owners",
		}),
		QuotaRejected: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notes_quota_rejected_total",
			Help:      "Note creations rejected because the owner reached the quota",
		}),
		LoginsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "logins_total",
				Help:      "Login attempts by outcome",
			},
			[]string{"outcome"},
		),
		Registrations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_total",
			Help:      "Accounts registered",
		}),
	}
}

// RegisterDB exports the connection pool statistics of db under dbName.
func (m *Metrics) RegisterDB(db *sql.DB, dbName string) error {
	return m.registry.Register(collectors.NewDBStatsCollector(db, dbName))
}

// Registry returns the registry backing this instance.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveHTTP records one finished HTTP request.
func (m *Metrics) ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	m.RequestCounter.WithLabelValues("http", route, method, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues("http", route, method).Observe(elapsed.Seconds())
}

// UnaryServerInterceptor returns a new unary server interceptor for metrics
func UnaryServerInterceptor(metrics *Metrics) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		method := info.FullMethod

		metrics.RequestsInFlight.WithLabelValues("grpc").Inc()
		defer metrics.RequestsInFlight.WithLabelValues("grpc").Dec()

		start := time.Now()
		defer func() {
			metrics.RequestDuration.WithLabelValues("grpc", method, "unary").Observe(time.Since(start).Seconds())
		}()

		resp, err := handler(ctx, req)

		metrics.RequestCounter.WithLabelValues("grpc", method, "unary", status.Code(err).String()).Inc()

		return resp, err
	}
}
