package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus instrument.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "reflow").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for wave duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus instrument.
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

// WithBuckets sets the wave-duration histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// defaultMetricsConfig returns the default metrics configuration.
func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "reflow",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics is a reflow.Instrument backed by Prometheus collectors.
type Metrics struct {
	writesTotal   *prometheus.CounterVec
	rebuildsTotal prometheus.Counter
	waveDuration  prometheus.Histogram
	waveListeners prometheus.Histogram
}

// NewMetrics creates and registers the collectors. Registering two Metrics
// with identical configuration on the same registry panics, as usual with
// promauto; use WithRegistry or WithConstLabels to separate them.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Metrics{
		writesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "writes_total",
			Help:        "Total writes observed, by equality-gate outcome",
			ConstLabels: config.ConstLabels,
		}, []string{"outcome"}),

		rebuildsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "rebuilds_total",
			Help:        "Total binding re-renders accepted by a rebuild predicate",
			ConstLabels: config.ConstLabels,
		}),

		waveDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "wave_duration_seconds",
			Help:        "Notification wave duration, including nested writes",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		waveListeners: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "wave_listeners",
			Help:        "Listeners delivered per notification wave",
			ConstLabels: config.ConstLabels,
			Buckets:     []float64{1, 2, 5, 10, 25, 50, 100, 250},
		}),
	}
}

// WriteAccepted implements reflow.Instrument.
func (m *Metrics) WriteAccepted(listeners int) {
	m.writesTotal.WithLabelValues("accepted").Inc()
}

// WriteSuppressed implements reflow.Instrument.
func (m *Metrics) WriteSuppressed() {
	m.writesTotal.WithLabelValues("suppressed").Inc()
}

// WaveDone implements reflow.Instrument.
func (m *Metrics) WaveDone(listeners int, elapsed time.Duration) {
	m.waveDuration.Observe(elapsed.Seconds())
	m.waveListeners.Observe(float64(listeners))
}

// Rebuild implements reflow.Instrument.
func (m *Metrics) Rebuild() {
	m.rebuildsTotal.Inc()
}
