package timedata

import (
	"testing"
	"time"
)

func TestSampleClock(t *testing.T) {
	vancouver, err := time.LoadLocation("America/Vancouver")
	if err != nil {
		t.Fatalf("failed to load timezone: %v", err)
	}

	// 2021-06-21 19:30 UTC is 12:30 PDT, a Monday.
	instant := time.Date(2021, 6, 21, 19, 30, 0, 0, time.UTC)
	sample := sampleClock(instant, vancouver)

	if sample.Year != 2021 || sample.Month != time.June || sample.Day != 21 {
		t.Errorf("date = %d-%v-%d, want 2021-June-21", sample.Year, sample.Month, sample.Day)
	}
	if sample.Hour != 12 || sample.Minute != 30 {
		t.Errorf("time = %d:%d, want 12:30 local", sample.Hour, sample.Minute)
	}
	if sample.Weekday != 0 {
		t.Errorf("weekday = %d, want 0 (Monday)", sample.Weekday)
	}
	if sample.DayOfYear != 172 {
		t.Errorf("dayOfYear = %d, want 172", sample.DayOfYear)
	}
	if sample.Unix != instant.Unix() {
		t.Errorf("unix = %d, want %d; the instant must survive the zone change", sample.Unix, instant.Unix())
	}
}

func TestSampleClockCrossesDateLine(t *testing.T) {
	// Late UTC evening is already the next calendar day in Sydney.
	sydney, err := time.LoadLocation("Australia/Sydney")
	if err != nil {
		t.Fatalf("failed to load timezone: %v", err)
	}

	instant := time.Date(2021, 6, 21, 22, 0, 0, 0, time.UTC)
	sample := sampleClock(instant, sydney)

	if sample.Day != 22 {
		t.Errorf("day = %d, want 22 (next civil day in Sydney)", sample.Day)
	}
	if sample.Weekday != 1 {
		t.Errorf("weekday = %d, want 1 (Tuesday)", sample.Weekday)
	}
}
