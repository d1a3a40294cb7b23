package config

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors Composer updates during
// Compose. A nil *Metrics is valid: every method is a no-op.
type Metrics struct {
	composeDuration    prometheus.Histogram
	composeErrors      prometheus.Counter
	validationFailures prometheus.Counter
	cascadeFilesLoaded prometheus.Counter
}

// NewMetrics constructs a Metrics and, if reg is non-nil, registers its
// collectors with it.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		composeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name: "confcore_compose_duration_seconds",
			Help: "Duration of Composer.Compose calls.",
		}),
		composeErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "confcore_compose_errors_total",
			Help: "Number of Composer.Compose calls that returned an error.",
		}),
		validationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "confcore_validation_failures_total",
			Help: "Number of Composer.Compose calls rejected by the schema validator.",
		}),
		cascadeFilesLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "confcore_dotenv_cascade_files_loaded_total",
			Help: "Number of dotenv cascade files successfully loaded.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.composeDuration, m.composeErrors, m.validationFailures, m.cascadeFilesLoaded)
	}
	return m
}

func (m *Metrics) observeComposeDuration(seconds float64) {
	if m == nil {
		return
	}
	m.composeDuration.Observe(seconds)
}

func (m *Metrics) incComposeErrors() {
	if m == nil {
		return
	}
	m.composeErrors.Inc()
}

func (m *Metrics) incValidationFailures() {
	if m == nil {
		return
	}
	m.validationFailures.Inc()
}

func (m *Metrics) incCascadeFilesLoaded() {
	if m == nil {
		return
	}
	m.cascadeFilesLoaded.Inc()
}

var (
	defaultMetricsOnce sync.Once
	defaultMetricsVal  *Metrics
)

func defaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		defaultMetricsVal = NewMetrics(prometheus.DefaultRegisterer)
	})
	return defaultMetricsVal
}
