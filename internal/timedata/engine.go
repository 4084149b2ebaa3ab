// Package timedata derives calendar, clock and astronomical metrics for a
// configured geographic location. The engine is pure: every refresh is a
// function of the supplied instant and the immutable configuration, so the
// same instant and configuration always produce the same snapshot.
package timedata

import (
	stderrors "errors"
	"time"

	"github.com/glarsen/timedata-go/internal/errors"
	"github.com/glarsen/timedata-go/internal/suncalc"
)

// ErrNotConfigured is returned by the refresh entry points until a valid
// location has been applied with Configure.
var ErrNotConfigured = stderrors.New("engine not configured: latitude, longitude and timezone are required")

// ClockMetrics is the high-frequency half of the snapshot: the calendar
// sample plus all integer and float metrics derived from it.
type ClockMetrics struct {
	Hour            int
	Minute          int
	Day             int
	Month           int
	Year            int
	Weekday         int // Monday=0 .. Sunday=6
	WeekOfYear      int
	DayOfYear       int
	OddEven         int // day-of-month parity, 1 for odd days
	MinutesIntoYear int
	Season          Season
	IsLeapYear      bool
	UTCOffsetHours  float64
	IsDST           bool
	HoursYearToDate int
	DaysSinceEpoch  int
}

// SunEventPair holds the local sunrise and sunset times of day for one
// calendar date. Valid is false for dates where the sun does not rise or
// set at the configured latitude; the time fields are zero in that case.
type SunEventPair struct {
	Valid         bool
	SunriseHour   int
	SunriseMinute int
	SunsetHour    int
	SunsetMinute  int
}

// SolarMetrics is the low-frequency half of the snapshot: sun events for
// today and for tomorrow. Tomorrow is always today's calendar date plus one
// day, anchored at midnight, never "now plus 24 hours".
type SolarMetrics struct {
	Today    SunEventPair
	Tomorrow SunEventPair
}

// Snapshot aggregates both metric halves for one instant.
type Snapshot struct {
	Clock *ClockMetrics
	Solar *SolarMetrics
}

// Engine computes metric snapshots for one configured location. It holds no
// mutable state beyond the configuration itself; the caller owns the most
// recent snapshot. Configure and the refresh methods are expected to be
// called from a single goroutine.
type Engine struct {
	location   Location
	tz         *time.Location
	sun        *suncalc.SunCalc
	configured bool
}

// NewEngine returns an unconfigured engine. Refresh calls return
// ErrNotConfigured until Configure accepts a location.
func NewEngine() *Engine {
	return &Engine{}
}

// Configure validates and applies a location. The returned ValidationResult
// names every missing or invalid field so the host can surface notices; the
// engine keeps its previous configuration when validation fails. An
// unresolvable timezone identifier is reported as invalid, never silently
// defaulted.
func (e *Engine) Configure(loc Location) ValidationResult {
	var result ValidationResult

	if loc.Latitude == nil {
		result.Missing = append(result.Missing, "latitude")
	} else if *loc.Latitude < -90 || *loc.Latitude > 90 {
		result.Invalid = append(result.Invalid, "latitude")
	}

	if loc.Longitude == nil {
		result.Missing = append(result.Missing, "longitude")
	} else if *loc.Longitude < -180 || *loc.Longitude > 180 {
		result.Invalid = append(result.Invalid, "longitude")
	}

	var tz *time.Location
	if loc.TimezoneID == "" {
		result.Missing = append(result.Missing, "timezone")
	} else {
		var err error
		tz, err = time.LoadLocation(loc.TimezoneID)
		if err != nil {
			result.Invalid = append(result.Invalid, "timezone")
			result.Errors = append(result.Errors, errors.New(err).
				Component("timedata").
				Category(errors.CategoryTimezone).
				Context("timezone", loc.TimezoneID).
				Build())
		}
	}

	if !result.OK() {
		return result
	}

	e.location = loc
	e.tz = tz
	e.sun = suncalc.NewSunCalc(*loc.Latitude, *loc.Longitude, tz)
	e.configured = true
	return result
}

// Configured reports whether a valid location has been applied.
func (e *Engine) Configured() bool {
	return e.configured
}

// Timezone returns the resolved timezone, or nil if not configured.
func (e *Engine) Timezone() *time.Location {
	return e.tz
}

// RefreshClockMetrics recomputes the full clock metric set for the given
// instant. All fields are replaced wholesale; nothing is carried over from
// previous refreshes.
func (e *Engine) RefreshClockMetrics(now time.Time) (*ClockMetrics, error) {
	if !e.configured {
		return nil, ErrNotConfigured
	}

	local := now.In(e.tz)
	sample := sampleClock(now, e.tz)
	offsetHours, isDST := resolveOffset(local)

	return &ClockMetrics{
		Hour:            sample.Hour,
		Minute:          sample.Minute,
		Day:             sample.Day,
		Month:           int(sample.Month),
		Year:            sample.Year,
		Weekday:         sample.Weekday,
		WeekOfYear:      weekOfYear(local),
		DayOfYear:       sample.DayOfYear,
		OddEven:         oddEvenDay(sample.Day),
		MinutesIntoYear: minutesIntoYear(sample.DayOfYear, sample.Hour, sample.Minute),
		Season:          ClassifySeason(sample.Month, sample.Day, e.location.Hemisphere),
		IsLeapYear:      isLeapYear(sample.Year),
		UTCOffsetHours:  offsetHours,
		IsDST:           isDST,
		HoursYearToDate: hoursYearToDate(sample.DayOfYear, sample.Hour),
		DaysSinceEpoch:  daysSinceEpoch(sample.Unix),
	}, nil
}

// RefreshSolarMetrics recomputes sunrise and sunset pairs for today and
// tomorrow. Both dates are anchored at local midnight so that the tomorrow
// pair is always for the next calendar date regardless of the time of day
// the refresh runs. Dates with no sunrise or sunset yield a pair with
// Valid=false rather than an error.
func (e *Engine) RefreshSolarMetrics(now time.Time) (*SolarMetrics, error) {
	if !e.configured {
		return nil, ErrNotConfigured
	}

	local := now.In(e.tz)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, e.tz)
	tomorrow := today.AddDate(0, 0, 1)

	todayPair, err := e.sunEventPair(today)
	if err != nil {
		return nil, err
	}

	tomorrowPair, err := e.sunEventPair(tomorrow)
	if err != nil {
		return nil, err
	}

	return &SolarMetrics{Today: todayPair, Tomorrow: tomorrowPair}, nil
}

// Snapshot computes both metric halves for one instant.
func (e *Engine) Snapshot(now time.Time) (*Snapshot, error) {
	clock, err := e.RefreshClockMetrics(now)
	if err != nil {
		return nil, err
	}
	solar, err := e.RefreshSolarMetrics(now)
	if err != nil {
		return nil, err
	}
	return &Snapshot{Clock: clock, Solar: solar}, nil
}

func (e *Engine) sunEventPair(date time.Time) (SunEventPair, error) {
	times, err := e.sun.GetSunEventTimes(date)
	if err != nil {
		if stderrors.Is(err, suncalc.ErrNoSolarEvent) {
			return SunEventPair{Valid: false}, nil
		}
		return SunEventPair{}, errors.New(err).
			Component("timedata").
			Category(errors.CategorySolar).
			Context("date", date.Format("2006-01-02")).
			Build()
	}

	return SunEventPair{
		Valid:         true,
		SunriseHour:   times.Sunrise.Hour(),
		SunriseMinute: times.Sunrise.Minute(),
		SunsetHour:    times.Sunset.Hour(),
		SunsetMinute:  times.Sunset.Minute(),
	}, nil
}

// LocationFromConf builds an engine Location from location settings. The
// caller is expected to have run settings validation already; hemisphere
// parsing falls back to north for unrecognized values.
func LocationFromConf(latitude, longitude *float64, timezoneID, hemisphere string) Location {
	return Location{
		Latitude:   latitude,
		Longitude:  longitude,
		TimezoneID: timezoneID,
		Hemisphere: ParseHemisphere(hemisphere),
	}
}
