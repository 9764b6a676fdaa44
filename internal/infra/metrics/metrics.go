// Package metrics exposes status and derivation counters to Prometheus.
package metrics

import (
	"net/http"
	"strconv"

	"vradmin/internal/domain/entity"
	"vradmin/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "vradmin"

// Registry owns the application collectors.
type Registry struct {
	registry *prometheus.Registry

	classifications *prometheus.CounterVec
	signalWarnings  *prometheus.CounterVec
	derivations     *prometheus.CounterVec
	notifications   prometheus.Counter
}

// NewRegistry creates a registry with the application and runtime collectors.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "purchase_classifications_total",
			Help:      "Purchase statuses served, by category and cache hit.",
		}, []string{"category", "cached"}),
		signalWarnings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signal_warnings_total",
			Help:      "Signal collectors that failed and were treated as absent.",
		}, []string{"signal"}),
		derivations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_derivations_total",
			Help:      "Notification derivation runs by outcome.",
		}, []string{"outcome"}),
		notifications: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_created_total",
			Help:      "Admin notifications created by derivation.",
		}),
	}

	r.registry.MustRegister(
		r.classifications,
		r.signalWarnings,
		r.derivations,
		r.notifications,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

func (r *Registry) ObserveClassification(category entity.StatusCategory, cached bool) {
	r.classifications.WithLabelValues(string(category), strconv.FormatBool(cached)).Inc()
}

func (r *Registry) ObserveSignalWarning(signal entity.SignalName) {
	r.signalWarnings.WithLabelValues(string(signal)).Inc()
}

func (r *Registry) ObserveDerivation(outcome string, created int) {
	r.derivations.WithLabelValues(outcome).Inc()
	if created > 0 {
		r.notifications.Add(float64(created))
	}
}

// Register adds an infrastructure collector, such as database pool stats.
func (r *Registry) Register(c prometheus.Collector) error {
	return r.registry.Register(c)
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// NewStatusMetrics exposes the registry as the domain metrics sink.
func NewStatusMetrics(r *Registry) service.StatusMetrics {
	return r
}
