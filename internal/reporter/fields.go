package reporter

import "github.com/glarsen/timedata-go/internal/timedata"

// NoEventValue is published for the hour and minute fields of a sun event
// pair on dates where the sun does not rise or set at the configured
// latitude. The controller treats negative values as "no event".
const NoEventValue = -1

// ClockFields maps clock metrics onto the fixed field catalog the
// controller consumes. Keys are forwarded verbatim downstream, so they
// must not change between releases.
func ClockFields(m *timedata.ClockMetrics) map[string]any {
	return map[string]any{
		"hour":            m.Hour,
		"minute":          m.Minute,
		"day":             m.Day,
		"month":           m.Month,
		"year":            m.Year,
		"weekday":         m.Weekday,
		"weekOfYear":      m.WeekOfYear,
		"dayOfYear":       m.DayOfYear,
		"oddEven":         m.OddEven,
		"minutesIntoYear": m.MinutesIntoYear,
		"season":          int(m.Season),
		"isLeapYear":      boolToInt(m.IsLeapYear),
		"utcOffsetHours":  m.UTCOffsetHours,
		"isDst":           boolToInt(m.IsDST),
		"hoursYearToDate": m.HoursYearToDate,
		"daysSinceEpoch":  m.DaysSinceEpoch,
	}
}

// SolarFields maps solar metrics onto the fixed field catalog.
func SolarFields(m *timedata.SolarMetrics) map[string]any {
	fields := make(map[string]any, 8)
	putSunEventPair(fields, "Today", m.Today)
	putSunEventPair(fields, "Tomorrow", m.Tomorrow)
	return fields
}

func putSunEventPair(fields map[string]any, suffix string, pair timedata.SunEventPair) {
	if !pair.Valid {
		fields["sunriseHour"+suffix] = NoEventValue
		fields["sunriseMinute"+suffix] = NoEventValue
		fields["sunsetHour"+suffix] = NoEventValue
		fields["sunsetMinute"+suffix] = NoEventValue
		return
	}
	fields["sunriseHour"+suffix] = pair.SunriseHour
	fields["sunriseMinute"+suffix] = pair.SunriseMinute
	fields["sunsetHour"+suffix] = pair.SunsetHour
	fields["sunsetMinute"+suffix] = pair.SunsetMinute
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
