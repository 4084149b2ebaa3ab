package timedata

import "time"

// CalendarSample is the decomposition of one instant into calendar fields,
// resolved in the configured timezone.
type CalendarSample struct {
	Year      int
	Month     time.Month
	Day       int
	Hour      int
	Minute    int
	Weekday   int   // Monday=0 .. Sunday=6
	DayOfYear int   // 1..366
	Unix      int64 // seconds since the Unix epoch, for epoch-day derivation
}

// sampleClock decomposes now in the given timezone. The instant itself is
// preserved in Unix so that epoch-based metrics are independent of the zone.
func sampleClock(now time.Time, loc *time.Location) CalendarSample {
	local := now.In(loc)
	return CalendarSample{
		Year:      local.Year(),
		Month:     local.Month(),
		Day:       local.Day(),
		Hour:      local.Hour(),
		Minute:    local.Minute(),
		Weekday:   mondayWeekday(local.Weekday()),
		DayOfYear: local.YearDay(),
		Unix:      local.Unix(),
	}
}

// mondayWeekday converts Go's Sunday=0 weekday to the Monday=0 numbering
// the controller expects.
func mondayWeekday(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}
