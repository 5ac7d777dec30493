// Package metrics exposes Prometheus collectors for calculations.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "phantom_"

	// ResultSuccess labels a calculation that produced a result.
	ResultSuccess = "success"
	// ResultInvalid labels a submission rejected by validation.
	ResultInvalid = "invalid"
)

// Metrics groups the calculation collectors.
type Metrics struct {
	calculations     *prometheus.CounterVec
	validationErrors *prometheus.CounterVec
	latency          *prometheus.HistogramVec
	monthlyCost      prometheus.Histogram
	monthlyCO2       prometheus.Histogram
	exports          *prometheus.CounterVec
}

// New creates the collectors and registers them with reg. A collector that
// is already registered is reused.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		calculations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "calculations_total",
				Help: "Total form submissions by result and surface",
			},
			[]string{"surface", "result"},
		),
		validationErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "validation_errors_total",
				Help: "Total validation failures by field",
			},
			[]string{"field"},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "calculation_latency_seconds",
				Help:    "Validate-and-calculate latency in seconds",
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
			},
			[]string{"surface"},
		),
		monthlyCost: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "monthly_cost",
				Help:    "Distribution of calculated monthly standby cost",
				Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100},
			},
		),
		monthlyCO2: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "monthly_co2_kg",
				Help:    "Distribution of calculated monthly CO2 in kg",
				Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100},
			},
		),
		exports: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "report_exports_total",
				Help: "Total report exports by format and result",
			},
			[]string{"format", "result"},
		),
	}

	if err := register(reg, &m.calculations); err != nil {
		return nil, err
	}
	if err := register(reg, &m.validationErrors); err != nil {
		return nil, err
	}
	if err := register(reg, &m.latency); err != nil {
		return nil, err
	}
	if err := register(reg, &m.monthlyCost); err != nil {
		return nil, err
	}
	if err := register(reg, &m.monthlyCO2); err != nil {
		return nil, err
	}
	if err := register(reg, &m.exports); err != nil {
		return nil, err
	}
	return m, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, c *T) error {
	err := reg.Register(*c)
	if err == nil {
		return nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(T); ok {
			*c = existing
			return nil
		}
	}
	return err
}

// ObserveSuccess records a calculation that produced a result.
func (m *Metrics) ObserveSuccess(surface string, cost, co2 float64, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.calculations.WithLabelValues(surface, ResultSuccess).Inc()
	m.latency.WithLabelValues(surface).Observe(elapsed.Seconds())
	m.monthlyCost.Observe(cost)
	m.monthlyCO2.Observe(co2)
}

// ObserveInvalid records a submission rejected on field.
func (m *Metrics) ObserveInvalid(surface, field string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.calculations.WithLabelValues(surface, ResultInvalid).Inc()
	m.validationErrors.WithLabelValues(field).Inc()
	m.latency.WithLabelValues(surface).Observe(elapsed.Seconds())
}

// ObserveExport records a report export.
func (m *Metrics) ObserveExport(format string, err error) {
	if m == nil {
		return
	}
	result := ResultSuccess
	if err != nil {
		result = "error"
	}
	m.exports.WithLabelValues(format, result).Inc()
}
