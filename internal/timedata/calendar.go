package timedata

import (
	"math"
	"time"
)

// weekOfYear returns the week number of the year for the given local time,
// one higher than the strftime %U convention: weeks start on Sunday, days
// before the first Sunday of the year fall in week 0, and the result is
// normalized to be 1-indexed. January 1 of a year starting on a Sunday is
// therefore week 2.
func weekOfYear(t time.Time) int {
	yday := t.YearDay() - 1    // 0-based day of year
	wday := int(t.Weekday())   // Sunday=0, matching %U
	return (yday+7-wday)/7 + 1
}

// oddEvenDay returns the parity of the day-of-month: 1 for odd days, 0 for even.
func oddEvenDay(day int) int {
	return day % 2
}

// minutesIntoYear returns the number of whole minutes elapsed since the
// start of the year, up to the sampled hour and minute.
func minutesIntoYear(dayOfYear, hour, minute int) int {
	return (dayOfYear-1)*24*60 + hour*60 + minute
}

// hoursYearToDate returns the number of whole hours elapsed since the
// start of the year.
func hoursYearToDate(dayOfYear, hour int) int {
	return (dayOfYear-1)*24 + hour
}

// daysSinceEpoch returns the number of days since the Unix epoch, rounding
// the fractional day to the nearest whole day before truncating. The
// rounding means the counter rolls over at noon UTC rather than midnight,
// which is the behavior the controller has always seen.
func daysSinceEpoch(unixSeconds int64) int {
	return int(math.Trunc(math.Round(float64(unixSeconds) / (3600 * 24))))
}

// isLeapYear reports whether the year is a Gregorian leap year: divisible
// by 4, except century years not divisible by 400.
func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
