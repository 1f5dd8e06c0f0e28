package observability

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/tendril/pkg/domain"
)

// Metrics holds the Prometheus instruments for the exploration engine. It
// carries its own registry so embedding programs never collide with the
// global default registry.
type Metrics struct {
	registry *prometheus.Registry

	simulations *prometheus.CounterVec
	explored    prometheus.Counter
	levels      prometheus.Histogram
	frontier    prometheus.Histogram
	duration    prometheus.Histogram
}

// New creates the instrument set and registers it.
func New() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.simulations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tendril_simulations_total",
			Help: "Total number of finished simulations by status",
		},
		[]string{"status"},
	)
	m.explored = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tendril_configurations_explored_total",
		Help: "Total number of configurations dequeued and explored",
	})
	m.levels = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "tendril_simulation_levels",
		Help:    "Exploration depth reached per simulation",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	})
	m.frontier = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "tendril_frontier_size",
		Help:    "Frontier size observed after each exploration level",
		Buckets: prometheus.ExponentialBuckets(1, 2, 16),
	})
	m.duration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "tendril_simulation_duration_seconds",
		Help:    "Wall-clock duration of simulations",
		Buckets: prometheus.DefBuckets,
	})

	m.registry.MustRegister(m.simulations, m.explored, m.levels, m.frontier, m.duration)
	return m
}

// Hooks returns lifecycle callbacks that feed the instruments. Attach them
// to an engine directly or merge them with other hooks via Combine.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnConfiguration: func(_ context.Context, _ *domain.ConfigurationEvent) {
			m.explored.Inc()
		},
		OnLevel: func(_ context.Context, e *domain.LevelEvent) {
			m.frontier.Observe(float64(e.Frontier))
		},
		OnHalt: func(_ context.Context, e *domain.HaltEvent) {
			m.simulations.WithLabelValues(string(e.Status)).Inc()
			m.levels.Observe(float64(e.Levels))
			m.duration.Observe(e.Elapsed.Seconds())
		},
	}
}

// Handler serves the registry in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry so embedding programs can attach
// their own collectors next to the engine's.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Combine merges hook sets into one. Every non-nil callback fires in
// argument order, so metrics and user hooks can observe the same run.
func Combine(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	var combined domain.LifecycleHooks

	for _, h := range hooks {
		h := h
		if h.OnLevel != nil {
			prev := combined.OnLevel
			combined.OnLevel = func(ctx context.Context, e *domain.LevelEvent) {
				if prev != nil {
					prev(ctx, e)
				}
				h.OnLevel(ctx, e)
			}
		}
		if h.OnConfiguration != nil {
			prev := combined.OnConfiguration
			combined.OnConfiguration = func(ctx context.Context, e *domain.ConfigurationEvent) {
				if prev != nil {
					prev(ctx, e)
				}
				h.OnConfiguration(ctx, e)
			}
		}
		if h.OnHalt != nil {
			prev := combined.OnHalt
			combined.OnHalt = func(ctx context.Context, e *domain.HaltEvent) {
				if prev != nil {
					prev(ctx, e)
				}
				h.OnHalt(ctx, e)
			}
		}
	}

	return combined
}
