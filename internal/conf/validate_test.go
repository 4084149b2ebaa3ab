package conf

import (
	"strings"
	"testing"

	"github.com/glarsen/timedata-go/internal/errors"
)

func ptr(v float64) *float64 { return &v }

// validSettings returns a settings struct that passes validation, for tests
// to break one field at a time.
func validSettings() *Settings {
	settings := &Settings{}
	settings.Location.Latitude = ptr(48.5927)
	settings.Location.Longitude = ptr(-123.4218)
	settings.Location.Timezone = "America/Vancouver"
	settings.Location.Hemisphere = "north"
	settings.Realtime.Interval.Short = 30
	settings.Realtime.Interval.Long = 600
	return settings
}

func TestValidateSettingsValid(t *testing.T) {
	if err := ValidateSettings(validSettings()); err != nil {
		t.Errorf("valid settings rejected: %v", err)
	}
}

func TestValidateSettingsUnsetLocationIsNotAnError(t *testing.T) {
	// Missing latitude, longitude and timezone is the not-configured state,
	// reported as a notice elsewhere, not a validation failure.
	settings := validSettings()
	settings.Location.Latitude = nil
	settings.Location.Longitude = nil
	settings.Location.Timezone = ""

	if err := ValidateSettings(settings); err != nil {
		t.Errorf("unset location rejected: %v", err)
	}
}

func TestValidateSettingsLatitudeRange(t *testing.T) {
	settings := validSettings()
	settings.Location.Latitude = ptr(90.1)

	err := ValidateSettings(settings)
	if err == nil {
		t.Fatal("out of range latitude accepted")
	}
	if !strings.Contains(err.Error(), "latitude") {
		t.Errorf("error does not mention latitude: %v", err)
	}
}

func TestValidateSettingsErrorCategory(t *testing.T) {
	settings := validSettings()
	settings.Location.Latitude = ptr(91)

	err := ValidateSettings(settings)
	if err == nil {
		t.Fatal("out of range latitude accepted")
	}

	var ee *errors.EnhancedError
	if !errors.As(err, &ee) {
		t.Fatalf("error type = %T, want EnhancedError", err)
	}
	if ee.GetCategory() != string(errors.CategoryValidation) {
		t.Errorf("category = %q, want %q", ee.GetCategory(), errors.CategoryValidation)
	}

	var ve ValidationError
	if !errors.As(err, &ve) {
		t.Error("underlying ValidationError not reachable through the wrapper")
	}
}

func TestValidateSettingsLongitudeRange(t *testing.T) {
	settings := validSettings()
	settings.Location.Longitude = ptr(-180.5)

	if err := ValidateSettings(settings); err == nil {
		t.Fatal("out of range longitude accepted")
	}
}

func TestValidateSettingsUnknownTimezone(t *testing.T) {
	settings := validSettings()
	settings.Location.Timezone = "Mars/Olympus_Mons"

	err := ValidateSettings(settings)
	if err == nil {
		t.Fatal("unknown timezone accepted")
	}
	if !strings.Contains(err.Error(), "timezone") {
		t.Errorf("error does not mention timezone: %v", err)
	}
}

func TestValidateSettingsHemisphere(t *testing.T) {
	settings := validSettings()
	settings.Location.Hemisphere = "equator"

	if err := ValidateSettings(settings); err == nil {
		t.Fatal("invalid hemisphere accepted")
	}

	settings.Location.Hemisphere = "South"
	if err := ValidateSettings(settings); err != nil {
		t.Errorf("hemisphere comparison should be case insensitive: %v", err)
	}
}

func TestValidateSettingsIntervals(t *testing.T) {
	settings := validSettings()
	settings.Realtime.Interval.Short = 0
	if err := ValidateSettings(settings); err == nil {
		t.Error("zero short interval accepted")
	}

	settings = validSettings()
	settings.Realtime.Interval.Long = -1
	if err := ValidateSettings(settings); err == nil {
		t.Error("negative long interval accepted")
	}

	settings = validSettings()
	settings.Realtime.Interval.Short = 120
	settings.Realtime.Interval.Long = 60
	err := ValidateSettings(settings)
	if err == nil {
		t.Fatal("long interval shorter than short interval accepted")
	}
	if !strings.Contains(err.Error(), "long poll interval") {
		t.Errorf("error does not mention the long poll interval: %v", err)
	}
}

func TestValidateSettingsMQTT(t *testing.T) {
	settings := validSettings()
	settings.Realtime.MQTT.Enabled = true

	err := ValidateSettings(settings)
	if err == nil {
		t.Fatal("enabled MQTT without broker and topic accepted")
	}
	if !strings.Contains(err.Error(), "broker") || !strings.Contains(err.Error(), "topic") {
		t.Errorf("error does not mention broker and topic: %v", err)
	}

	settings.Realtime.MQTT.Broker = "tcp://localhost:1883"
	settings.Realtime.MQTT.Topic = "timedata"
	if err := ValidateSettings(settings); err != nil {
		t.Errorf("complete MQTT settings rejected: %v", err)
	}
}

func TestValidateSettingsTelemetry(t *testing.T) {
	settings := validSettings()
	settings.Realtime.Telemetry.Enabled = true
	settings.Realtime.Telemetry.Listen = "not a listen address"

	if err := ValidateSettings(settings); err == nil {
		t.Fatal("malformed telemetry listen address accepted")
	}

	settings.Realtime.Telemetry.Listen = "0.0.0.0:8090"
	if err := ValidateSettings(settings); err != nil {
		t.Errorf("valid telemetry listen address rejected: %v", err)
	}
}
