// internal/suncalc/suncalc.go

// Package suncalc computes sunrise and sunset times for a fixed observer,
// caching results per calendar date.
package suncalc

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sj14/astral/pkg/astral"
)

// ErrNoSolarEvent is returned for dates on which the sun does not rise or
// set at the observer's latitude (polar day or polar night). Callers check
// for it with errors.Is and must treat it as a deterministic outcome, not
// a fault.
var ErrNoSolarEvent = errors.New("sun does not rise or set on this date")

// SunEventTimes holds the calculated sun event times in local time
type SunEventTimes struct {
	Sunrise time.Time // Sunrise in local time
	Sunset  time.Time // Sunset in local time
}

// cacheEntry holds the cached sun event times for a given date
type cacheEntry struct {
	times SunEventTimes // Sun event times in local time
	date  time.Time     // Date for which the sun event times are cached
}

// SunCalc handles caching and calculation of sun event times
type SunCalc struct {
	cache    map[string]cacheEntry // Cache of sun event times for dates
	lock     sync.RWMutex          // Lock for cache access
	observer astral.Observer       // Observer for sun event calculations
	loc      *time.Location        // Timezone the event times are reported in
}

// NewSunCalc creates a new SunCalc instance for the given coordinates.
// Event times are converted into loc, re-resolved per date so that a DST
// transition between two requested dates is handled correctly.
func NewSunCalc(latitude, longitude float64, loc *time.Location) *SunCalc {
	return &SunCalc{
		cache:    make(map[string]cacheEntry),
		observer: astral.Observer{Latitude: latitude, Longitude: longitude},
		loc:      loc,
	}
}

// GetSunEventTimes returns the sun event times for a given date, using cache if available
func (sc *SunCalc) GetSunEventTimes(date time.Time) (SunEventTimes, error) {
	dateKey := date.Format("2006-01-02")

	sc.lock.RLock()
	entry, exists := sc.cache[dateKey]
	sc.lock.RUnlock()

	if exists && entry.date.Equal(date) {
		return entry.times, nil
	}

	times, err := sc.calculateSunEventTimes(date)
	if err != nil {
		return SunEventTimes{}, err
	}

	sc.lock.Lock()
	sc.cache[dateKey] = cacheEntry{times: times, date: date}
	sc.lock.Unlock()

	return times, nil
}

// calculateSunEventTimes calculates the sun event times for a given date
func (sc *SunCalc) calculateSunEventTimes(date time.Time) (SunEventTimes, error) {
	// The astral solver errors exactly when the sun never crosses the
	// horizon on the requested date, so any failure here maps to the
	// no-event sentinel.
	sunrise, err := astral.Sunrise(sc.observer, date)
	if err != nil {
		return SunEventTimes{}, fmt.Errorf("sunrise on %s: %w: %w", date.Format("2006-01-02"), ErrNoSolarEvent, err)
	}

	sunset, err := astral.Sunset(sc.observer, date)
	if err != nil {
		return SunEventTimes{}, fmt.Errorf("sunset on %s: %w: %w", date.Format("2006-01-02"), ErrNoSolarEvent, err)
	}

	return SunEventTimes{
		Sunrise: sunrise.In(sc.loc),
		Sunset:  sunset.In(sc.loc),
	}, nil
}

// GetSunriseTime returns the sunrise time for a given date
func (sc *SunCalc) GetSunriseTime(date time.Time) (time.Time, error) {
	sunEventTimes, err := sc.GetSunEventTimes(date)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get sun event times: %w", err)
	}
	return sunEventTimes.Sunrise, nil
}

// GetSunsetTime returns the sunset time for a given date
func (sc *SunCalc) GetSunsetTime(date time.Time) (time.Time, error) {
	sunEventTimes, err := sc.GetSunEventTimes(date)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get sun event times: %w", err)
	}
	return sunEventTimes.Sunset, nil
}
