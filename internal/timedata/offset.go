package timedata

import "time"

// resolveOffset returns the signed UTC offset in hours (positive east of
// UTC, fractional for half-hour zones) and the DST flag for the given
// instant in its location. The lookup goes through the timezone database,
// so historical and future DST rule changes are honored per instant.
func resolveOffset(t time.Time) (offsetHours float64, isDST bool) {
	_, offsetSeconds := t.Zone()
	return float64(offsetSeconds) / 3600, t.IsDST()
}
