// Package reporter publishes the derived metric set to the controller over
// MQTT on two cadences: clock metrics on the short interval, sunrise/sunset
// pairs on the long interval.
package reporter

import (
	"context"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/glarsen/timedata-go/internal/conf"
	"github.com/glarsen/timedata-go/internal/errors"
	"github.com/glarsen/timedata-go/internal/logging"
	"github.com/glarsen/timedata-go/internal/mqtt"
	"github.com/glarsen/timedata-go/internal/observability"
	"github.com/glarsen/timedata-go/internal/timedata"
)

// Package-level logger for the reporter service
var (
	reporterLogger   *slog.Logger
	reporterLevelVar = new(slog.LevelVar)
)

func init() {
	reporterLevelVar.Set(slog.LevelInfo)
	reporterLogger = logging.ForService("reporter")
	if reporterLogger == nil {
		reporterLogger = logging.NewDiscardLogger("reporter")
	}
}

// configureLogger points the package logger at a rotated file under the
// configured log directory, at the configured level. Safe to call more
// than once; the most recent settings win.
func configureLogger(cfg *conf.LogConfig) {
	reporterLevelVar.Set(logging.ParseLevel(cfg.Level))

	logger, _, err := logging.NewFileLogger(filepath.Join(cfg.Path, "reporter.log"), "reporter", reporterLevelVar)
	if err != nil {
		logging.Error("Failed to initialize reporter file logger", "error", err)
		return
	}
	reporterLogger = logger
}

// Service drives the metric engine on the configured cadences and hands the
// results to the MQTT client. The engine itself never touches the transport.
type Service struct {
	settings *conf.Settings
	engine   *timedata.Engine
	client   mqtt.Client
	metrics  *observability.Metrics
}

// NewService creates a new reporting service. The MQTT client may be nil,
// in which case payloads are only logged; the metrics collector may be nil
// when telemetry is disabled.
func NewService(settings *conf.Settings, engine *timedata.Engine, client mqtt.Client, metrics *observability.Metrics) *Service {
	configureLogger(&settings.Main.Log)
	return &Service{
		settings: settings,
		engine:   engine,
		client:   client,
		metrics:  metrics,
	}
}

// Start runs the publish loops until stopChan is closed. Both metric halves
// are published once at startup, then on their own tickers.
func (s *Service) Start(stopChan <-chan struct{}) {
	shortInterval := time.Duration(s.settings.Realtime.Interval.Short) * time.Second
	longInterval := time.Duration(s.settings.Realtime.Interval.Long) * time.Second

	reporterLogger.Info("Starting metric reporting service",
		"short_interval", shortInterval,
		"long_interval", longInterval,
		"mqtt_enabled", s.client != nil,
	)

	shortTicker := time.NewTicker(shortInterval)
	defer shortTicker.Stop()
	longTicker := time.NewTicker(longInterval)
	defer longTicker.Stop()

	// Initial publish of both halves
	if err := s.PublishClock(time.Now()); err != nil {
		reporterLogger.Warn("Initial clock metrics publish failed", "error", err)
	}
	if err := s.PublishSolar(time.Now()); err != nil {
		reporterLogger.Warn("Initial solar metrics publish failed", "error", err)
	}

	for {
		select {
		case <-shortTicker.C:
			if err := s.PublishClock(time.Now()); err != nil {
				reporterLogger.Warn("Clock metrics publish failed", "error", err)
			}
		case <-longTicker.C:
			if err := s.PublishSolar(time.Now()); err != nil {
				reporterLogger.Warn("Solar metrics publish failed", "error", err)
			}
		case <-stopChan:
			reporterLogger.Info("Stopping metric reporting service")
			return
		}
	}
}

// PublishClock refreshes the clock metric set for now and publishes it.
// The engine not being configured is a notice, not an error: the next tick
// is the retry mechanism once configuration is fixed.
func (s *Service) PublishClock(now time.Time) error {
	start := time.Now()
	clock, err := s.engine.RefreshClockMetrics(now)
	if err != nil {
		if errors.Is(err, timedata.ErrNotConfigured) {
			s.recordRefresh("clock", "not_configured", 0)
			s.logNotConfigured()
			return nil
		}
		s.recordRefresh("clock", "error", 0)
		return err
	}
	s.recordRefresh("clock", "success", time.Since(start).Seconds())

	reporterLogger.Debug("Refreshed clock metrics",
		"day_of_year", clock.DayOfYear,
		"week_of_year", clock.WeekOfYear,
		"season", clock.Season.String(),
		"utc_offset_hours", clock.UTCOffsetHours,
		"is_dst", clock.IsDST,
	)

	return s.publish("clock", ClockFields(clock))
}

// PublishSolar refreshes the sunrise/sunset pairs for now's calendar date
// and the next one, and publishes them.
func (s *Service) PublishSolar(now time.Time) error {
	start := time.Now()
	solar, err := s.engine.RefreshSolarMetrics(now)
	if err != nil {
		if errors.Is(err, timedata.ErrNotConfigured) {
			s.recordRefresh("solar", "not_configured", 0)
			s.logNotConfigured()
			return nil
		}
		s.recordRefresh("solar", "error", 0)
		return err
	}
	s.recordRefresh("solar", "success", time.Since(start).Seconds())

	if !solar.Today.Valid || !solar.Tomorrow.Valid {
		if s.metrics != nil {
			s.metrics.TimeData.IncrementSolarNoEvents()
		}
		reporterLogger.Info("No sunrise or sunset on at least one reported date",
			"today_valid", solar.Today.Valid,
			"tomorrow_valid", solar.Tomorrow.Valid,
		)
	}

	reporterLogger.Debug("Refreshed solar metrics",
		"sunrise_today", sunClock(solar.Today.SunriseHour, solar.Today.SunriseMinute, solar.Today.Valid),
		"sunset_today", sunClock(solar.Today.SunsetHour, solar.Today.SunsetMinute, solar.Today.Valid),
	)

	return s.publish("sun", SolarFields(solar))
}

// publish marshals the field map and sends it to <topic>/<subtopic>.
// Without an MQTT client the payload is logged and dropped.
func (s *Service) publish(subtopic string, fields map[string]any) error {
	payload, err := json.Marshal(fields)
	if err != nil {
		return errors.New(err).
			Component("reporter").
			Category(errors.CategoryGeneric).
			Context("subtopic", subtopic).
			Build()
	}

	if s.client == nil {
		reporterLogger.Info("MQTT disabled, dropping payload", "subtopic", subtopic, "payload", string(payload))
		return nil
	}

	topic := s.settings.Realtime.MQTT.Topic + "/" + subtopic

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.client.Publish(ctx, topic, string(payload)); err != nil {
		return errors.New(err).
			Component("reporter").
			Category(errors.CategoryMQTTPublish).
			Context("topic", topic).
			Build()
	}

	reporterLogger.Debug("Published metrics", "topic", topic, "size", len(payload))
	return nil
}

func (s *Service) logNotConfigured() {
	reporterLogger.Warn("Location not configured, skipping metric computation",
		"notice", "Latitude, longitude and timezone settings are required.",
	)
}

func (s *Service) recordRefresh(kind, status string, seconds float64) {
	if s.metrics != nil {
		s.metrics.TimeData.RecordRefresh(kind, status, seconds)
	}
}

func sunClock(hour, minute int, valid bool) string {
	if !valid {
		return "none"
	}
	return time.Date(0, 1, 1, hour, minute, 0, 0, time.UTC).Format("15:04")
}
