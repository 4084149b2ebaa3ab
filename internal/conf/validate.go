// conf/validate.go

package conf

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/glarsen/timedata-go/internal/errors"
)

// ValidationError represents a collection of validation errors
type ValidationError struct {
	Errors []string
}

// Error returns a string representation of the validation errors
func (ve ValidationError) Error() string {
	return fmt.Sprintf("Validation errors: %v", ve.Errors)
}

// ValidateSettings validates the entire Settings struct.
// An unset latitude/longitude/timezone is not an error here: that is the
// not-configured state, surfaced as a notice by the engine. Values that are
// present but out of range or unresolvable are errors.
func ValidateSettings(settings *Settings) error {
	ve := ValidationError{}

	if err := validateLocationSettings(&settings.Location); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if err := validateIntervalSettings(&settings.Realtime.Interval); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if err := validateMQTTSettings(&settings.Realtime.MQTT); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if err := validateTelemetrySettings(&settings.Realtime.Telemetry); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if len(ve.Errors) > 0 {
		return errors.New(ve).
			Component("conf").
			Category(errors.CategoryValidation).
			Build()
	}
	return nil
}

// validateLocationSettings validates the location-specific settings
func validateLocationSettings(settings *LocationSettings) error {
	var errs []string

	if settings.Latitude != nil && (*settings.Latitude < -90 || *settings.Latitude > 90) {
		errs = append(errs, "latitude must be between -90 and 90")
	}

	if settings.Longitude != nil && (*settings.Longitude < -180 || *settings.Longitude > 180) {
		errs = append(errs, "longitude must be between -180 and 180")
	}

	if settings.Timezone != "" {
		if _, err := time.LoadLocation(settings.Timezone); err != nil {
			errs = append(errs, fmt.Sprintf("timezone %q is not a valid IANA timezone identifier", settings.Timezone))
		}
	}

	switch strings.ToLower(settings.Hemisphere) {
	case "north", "south":
	default:
		errs = append(errs, fmt.Sprintf("hemisphere must be \"north\" or \"south\", got %q", settings.Hemisphere))
	}

	if len(errs) > 0 {
		return fmt.Errorf("location settings errors: %v", errs)
	}
	return nil
}

// validateIntervalSettings validates the publish cadence settings
func validateIntervalSettings(settings *IntervalSettings) error {
	var errs []string

	if settings.Short <= 0 {
		errs = append(errs, "short poll interval must be greater than 0 seconds")
	}

	if settings.Long <= 0 {
		errs = append(errs, "long poll interval must be greater than 0 seconds")
	}

	if settings.Short > 0 && settings.Long > 0 && settings.Long < settings.Short {
		errs = append(errs, "long poll interval must not be shorter than the short poll interval")
	}

	if len(errs) > 0 {
		return fmt.Errorf("interval settings errors: %v", errs)
	}
	return nil
}

// validateMQTTSettings validates the MQTT-specific settings
func validateMQTTSettings(settings *MQTTSettings) error {
	var errs []string

	if settings.Enabled {
		if settings.Broker == "" {
			errs = append(errs, "MQTT broker URL is required when MQTT is enabled")
		}
		if settings.Topic == "" {
			errs = append(errs, "MQTT topic is required when MQTT is enabled")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("MQTT settings errors: %v", errs)
	}
	return nil
}

// validateTelemetrySettings validates the telemetry-specific settings
func validateTelemetrySettings(settings *TelemetrySettings) error {
	var errs []string

	if settings.Enabled {
		if settings.Listen == "" {
			errs = append(errs, "telemetry listen address is required when telemetry is enabled")
		} else if _, _, err := net.SplitHostPort(settings.Listen); err != nil {
			errs = append(errs, fmt.Sprintf("telemetry listen address %q is not a valid host:port", settings.Listen))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("telemetry settings errors: %v", errs)
	}
	return nil
}
