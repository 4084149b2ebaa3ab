package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// TimeDataMetrics contains Prometheus metrics for the metrics engine refreshes.
type TimeDataMetrics struct {
	RefreshTotal    *prometheus.CounterVec
	RefreshDuration *prometheus.HistogramVec
	SolarNoEvents   prometheus.Counter
	registry        *prometheus.Registry
}

// NewTimeDataMetrics creates a new instance of TimeDataMetrics and registers
// it with the provided registry.
func NewTimeDataMetrics(registry *prometheus.Registry) (*TimeDataMetrics, error) {
	m := &TimeDataMetrics{registry: registry}
	m.initMetrics()
	if err := registry.Register(m); err != nil {
		return nil, fmt.Errorf("failed to register timedata metrics: %w", err)
	}
	return m, nil
}

func (m *TimeDataMetrics) initMetrics() {
	m.RefreshTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "timedata_refresh_total",
		Help: "Total number of metric refreshes by kind and status",
	}, []string{"kind", "status"})

	m.RefreshDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "timedata_refresh_duration_seconds",
		Help:    "Duration of metric refresh computations in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
	}, []string{"kind"})

	m.SolarNoEvents = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "timedata_solar_no_event_total",
		Help: "Total number of refreshes where the sun did not rise or set on a requested date",
	})
}

// RecordRefresh records one refresh of the given kind ("clock" or "solar")
// with the given status ("success", "error" or "not_configured").
func (m *TimeDataMetrics) RecordRefresh(kind, status string, seconds float64) {
	m.RefreshTotal.WithLabelValues(kind, status).Inc()
	if status == "success" {
		m.RefreshDuration.WithLabelValues(kind).Observe(seconds)
	}
}

// IncrementSolarNoEvents increments the polar day/night counter.
func (m *TimeDataMetrics) IncrementSolarNoEvents() {
	m.SolarNoEvents.Inc()
}

// Collect implements the prometheus.Collector interface.
func (m *TimeDataMetrics) Collect(ch chan<- prometheus.Metric) {
	m.RefreshTotal.Collect(ch)
	m.RefreshDuration.Collect(ch)
	ch <- m.SolarNoEvents
}

// Describe implements the prometheus.Collector interface.
func (m *TimeDataMetrics) Describe(ch chan<- *prometheus.Desc) {
	m.RefreshTotal.Describe(ch)
	m.RefreshDuration.Describe(ch)
	ch <- m.SolarNoEvents.Desc()
}
