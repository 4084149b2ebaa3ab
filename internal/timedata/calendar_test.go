package timedata

import (
	"testing"
	"time"
)

func TestIsLeapYear(t *testing.T) {
	// Spot checks including the century exceptions.
	leapYears := []int{1600, 1996, 2000, 2004, 2020, 2024, 2396}
	nonLeapYears := []int{1700, 1800, 1900, 1999, 2021, 2100, 2200, 2300}

	for _, year := range leapYears {
		if !isLeapYear(year) {
			t.Errorf("isLeapYear(%d) = false, want true", year)
		}
	}
	for _, year := range nonLeapYears {
		if isLeapYear(year) {
			t.Errorf("isLeapYear(%d) = true, want false", year)
		}
	}
}

func TestIsLeapYearMatchesGregorianRule(t *testing.T) {
	// Cross-check the whole required range against the rule expressed
	// through the standard library calendar.
	for year := 1600; year < 2400; year++ {
		want := time.Date(year, time.February, 29, 0, 0, 0, 0, time.UTC).Day() == 29
		if got := isLeapYear(year); got != want {
			t.Errorf("isLeapYear(%d) = %v, want %v", year, got, want)
		}
	}
}

func TestWeekOfYear(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want int
	}{
		// 2023 starts on a Sunday: January 1 is already in %U week 1,
		// so the normalized week number is 2.
		{"year starting on Sunday", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), 2},
		// 2024 starts on a Monday: January 1 falls before the first
		// Sunday, %U week 0, normalized to 1.
		{"year starting on Monday", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 1},
		{"first Sunday of Monday-start year", time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC), 2},
		// strftime('%U') for 2021-06-21 is 25.
		{"midyear", time.Date(2021, 6, 21, 0, 0, 0, 0, time.UTC), 26},
		{"end of year", time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), 54},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := weekOfYear(tt.date); got != tt.want {
				t.Errorf("weekOfYear(%s) = %d, want %d", tt.date.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestOddEvenDay(t *testing.T) {
	if got := oddEvenDay(21); got != 1 {
		t.Errorf("oddEvenDay(21) = %d, want 1", got)
	}
	if got := oddEvenDay(14); got != 0 {
		t.Errorf("oddEvenDay(14) = %d, want 0", got)
	}
}

func TestMinutesIntoYear(t *testing.T) {
	// Midnight January 1
	if got := minutesIntoYear(1, 0, 0); got != 0 {
		t.Errorf("minutesIntoYear(1, 0, 0) = %d, want 0", got)
	}
	// 00:01 January 2
	if got := minutesIntoYear(2, 0, 1); got != 1441 {
		t.Errorf("minutesIntoYear(2, 0, 1) = %d, want 1441", got)
	}
	// 13:30 on day 172 (June 21 of a non-leap year)
	want := 171*24*60 + 13*60 + 30
	if got := minutesIntoYear(172, 13, 30); got != want {
		t.Errorf("minutesIntoYear(172, 13, 30) = %d, want %d", got, want)
	}
}

func TestHoursYearToDate(t *testing.T) {
	if got := hoursYearToDate(1, 0); got != 0 {
		t.Errorf("hoursYearToDate(1, 0) = %d, want 0", got)
	}
	if got := hoursYearToDate(2, 5); got != 29 {
		t.Errorf("hoursYearToDate(2, 5) = %d, want 29", got)
	}
}

func TestDaysSinceEpoch(t *testing.T) {
	epoch := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := daysSinceEpoch(epoch.Unix()); got != 0 {
		t.Errorf("daysSinceEpoch(epoch) = %d, want 0", got)
	}

	dayOne := time.Date(1970, 1, 2, 0, 0, 0, 0, time.UTC)
	if got := daysSinceEpoch(dayOne.Unix()); got != 1 {
		t.Errorf("daysSinceEpoch(epoch+1d) = %d, want 1", got)
	}

	// The fractional day is rounded to nearest before truncation, so the
	// counter advances at noon UTC.
	beforeNoon := time.Date(1970, 1, 2, 11, 59, 0, 0, time.UTC)
	if got := daysSinceEpoch(beforeNoon.Unix()); got != 1 {
		t.Errorf("daysSinceEpoch(day 1, 11:59Z) = %d, want 1", got)
	}
	afterNoon := time.Date(1970, 1, 2, 12, 1, 0, 0, time.UTC)
	if got := daysSinceEpoch(afterNoon.Unix()); got != 2 {
		t.Errorf("daysSinceEpoch(day 1, 12:01Z) = %d, want 2", got)
	}
}

func TestMondayWeekday(t *testing.T) {
	if got := mondayWeekday(time.Monday); got != 0 {
		t.Errorf("mondayWeekday(Monday) = %d, want 0", got)
	}
	if got := mondayWeekday(time.Sunday); got != 6 {
		t.Errorf("mondayWeekday(Sunday) = %d, want 6", got)
	}
	if got := mondayWeekday(time.Wednesday); got != 2 {
		t.Errorf("mondayWeekday(Wednesday) = %d, want 2", got)
	}
}
