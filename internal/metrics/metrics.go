// internal/metrics/metrics.go
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mubadara"

// Registry owns the prometheus registry and the collectors of the workflow.
type Registry struct {
	registry *prometheus.Registry

	transitions        *prometheus.CounterVec
	capacityRejections *prometheus.CounterVec
	hookFailures       *prometheus.CounterVec
}

// New creates a registry with the Go and process collectors plus the
// moderation counters registered.
func New() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := &Registry{
		registry: reg,
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "status_transitions_total",
			Help:      "Requested status transitions by kind, source, target and outcome.",
		}, []string{"kind", "from", "to", "outcome"}),
		capacityRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "capacity_rejections_total",
			Help:      "Reservations refused because the counter was full.",
		}, []string{"counter"}),
		hookFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "post_commit_hook_failures_total",
			Help:      "Post-commit hooks that returned an error.",
		}, []string{"hook"}),
	}
	reg.MustRegister(r.transitions, r.capacityRejections, r.hookFailures)
	return r
}

// Handler serves the registry in the prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

// Gatherer exposes the underlying registry, mostly for tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// Transition counts one transition attempt. A nil registry is a no-op.
func (r *Registry) Transition(kind, from, to, outcome string) {
	if r == nil {
		return
	}
	r.transitions.WithLabelValues(kind, from, to, outcome).Inc()
}

// CapacityRejected counts a refused reservation on counter.
func (r *Registry) CapacityRejected(counter string) {
	if r == nil {
		return
	}
	r.capacityRejections.WithLabelValues(counter).Inc()
}

// HookFailed counts a failed post-commit hook.
func (r *Registry) HookFailed(hook string) {
	if r == nil {
		return
	}
	r.hookFailures.WithLabelValues(hook).Inc()
}
