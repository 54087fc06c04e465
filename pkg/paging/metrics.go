package paging

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus collectors for paged collections.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "paging").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus collectors.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithPrometheusRegistry sets the Prometheus registry.
func WithPrometheusRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// Metrics counts derived-value recomputations and navigation calls.
// One Metrics value may be shared by any number of paged collections.
type Metrics struct {
	recomputations   *prometheus.CounterVec
	navigations      *prometheus.CounterVec
	generatorChanges prometheus.Counter
}

// NewMetrics creates and registers the paging collectors.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := MetricsConfig{
		Namespace: "paging",
		Registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Metrics{
		recomputations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "recomputations_total",
			Help:        "Total number of derived paging values recomputed",
			ConstLabels: config.ConstLabels,
		}, []string{"value"}),

		navigations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "navigations_total",
			Help:        "Total number of navigation calls by operation and result",
			ConstLabels: config.ConstLabels,
		}, []string{"op", "result"}),

		generatorChanges: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "generator_changes_total",
			Help:        "Total number of page generator reassignments",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// recomputed records one recomputation of the named derived value.
// A nil receiver is a no-op.
func (m *Metrics) recomputed(value string) {
	if m == nil {
		return
	}
	m.recomputations.WithLabelValues(value).Inc()
}

// navigated records a navigation call and whether it moved the page.
func (m *Metrics) navigated(op string, moved bool) {
	if m == nil {
		return
	}
	result := "noop"
	if moved {
		result = "moved"
	}
	m.navigations.WithLabelValues(op, result).Inc()
}

// generatorChanged records a generator reassignment.
func (m *Metrics) generatorChanged() {
	if m == nil {
		return
	}
	m.generatorChanges.Inc()
}
