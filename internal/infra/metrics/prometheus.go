// Package metrics exposes service counters in the Prometheus format.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	domainerrors "familytree/internal/domain/errors"
	"familytree/internal/domain/service"
	"familytree/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "familytree"

// Registry owns the collectors of one process.
type Registry struct {
	registry      *prometheus.Registry
	mutations     *prometheus.CounterVec
	idCollisions  prometheus.Counter
	httpRequests  *prometheus.CounterVec
	httpDurations *prometheus.HistogramVec
}

// NewRegistry creates the collectors and registers them with the Go runtime
// and process collectors.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "graph_mutations_total",
			Help:      "Graph store mutations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		idCollisions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "id_collisions_total",
			Help:      "Person creates retried after an ID conflict.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDurations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.mutations,
		r.idCollisions,
		r.httpRequests,
		r.httpDurations,
	)

	return r
}

// NewGraphMetrics exposes the registry as the service metrics sink.
func NewGraphMetrics(r *Registry) service.GraphMetrics {
	return r
}

// ObserveMutation counts a finished mutation under its error code.
func (r *Registry) ObserveMutation(operation string, err error) {
	r.mutations.WithLabelValues(operation, outcome(err)).Inc()
}

// ObserveIDCollision counts one create retry.
func (r *Registry) ObserveIDCollision() {
	r.idCollisions.Inc()
}

// ObserveHTTPRequest records one served request.
func (r *Registry) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDurations.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.ErrorCode()
	}

	return "error"
}
