// Package observability provides Prometheus metrics functionality for monitoring the timedata application.
package observability

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	metricspkg "github.com/glarsen/timedata-go/internal/observability/metrics"
)

// Metrics holds all the metric collectors for the application.
type Metrics struct {
	registry *prometheus.Registry
	MQTT     *metricspkg.MQTTMetrics
	TimeData *metricspkg.TimeDataMetrics
}

// NewMetrics creates a new instance of Metrics, initializing all metric collectors.
// It returns an error if any metric collector fails to initialize.
func NewMetrics() (*Metrics, error) {
	registry := prometheus.NewRegistry()

	mqttMetrics, err := metricspkg.NewMQTTMetrics(registry)
	if err != nil {
		return nil, fmt.Errorf("failed to create MQTT metrics: %w", err)
	}

	timedataMetrics, err := metricspkg.NewTimeDataMetrics(registry)
	if err != nil {
		return nil, fmt.Errorf("failed to create timedata metrics: %w", err)
	}

	return &Metrics{
		registry: registry,
		MQTT:     mqttMetrics,
		TimeData: timedataMetrics,
	}, nil
}

// RegisterHandlers registers the metrics endpoint on the given mux.
func (m *Metrics) RegisterHandlers(mux *http.ServeMux) {
	mux.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
