package timedata

import (
	"strings"

	"github.com/glarsen/timedata-go/internal/errors"
)

// Hemisphere selects the season mapping for the configured location.
type Hemisphere int

const (
	HemisphereNorth Hemisphere = iota
	HemisphereSouth
)

// String returns the lowercase name of the hemisphere.
func (h Hemisphere) String() string {
	if h == HemisphereSouth {
		return "south"
	}
	return "north"
}

// ParseHemisphere parses a hemisphere name. Unrecognized values fall back
// to the northern hemisphere, matching the original default.
func ParseHemisphere(s string) Hemisphere {
	if strings.EqualFold(s, "south") {
		return HemisphereSouth
	}
	return HemisphereNorth
}

// Location is the immutable geographic configuration the engine computes
// metrics for. Latitude and longitude are pointers so that an unset value
// is distinguishable from a valid 0.0 coordinate.
type Location struct {
	Latitude   *float64
	Longitude  *float64
	TimezoneID string
	Hemisphere Hemisphere
}

// ValidationResult reports which configuration fields are missing or invalid.
// A zero value means the configuration was accepted.
type ValidationResult struct {
	Missing []string // required fields that are not set
	Invalid []string // fields that are set but unusable
	Errors  []error  // detail for invalid fields, when available
}

// OK reports whether the configuration was accepted.
func (r ValidationResult) OK() bool {
	return len(r.Missing) == 0 && len(r.Invalid) == 0
}

// Err joins the detail errors recorded for invalid fields, or nil when
// there are none.
func (r ValidationResult) Err() error {
	return errors.Join(r.Errors...)
}

// Notices returns user-facing messages for each problem, suitable for
// surfacing to the host controller.
func (r ValidationResult) Notices() []string {
	notices := make([]string, 0, len(r.Missing)+len(r.Invalid))
	for _, field := range r.Missing {
		notices = append(notices, capitalize(field)+" setting is required.")
	}
	for _, field := range r.Invalid {
		notices = append(notices, capitalize(field)+" setting is invalid.")
	}
	return notices
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
