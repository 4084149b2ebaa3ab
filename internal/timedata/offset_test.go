package timedata

import (
	"testing"
	"time"
)

func TestResolveOffsetStandardAndDaylight(t *testing.T) {
	vancouver, err := time.LoadLocation("America/Vancouver")
	if err != nil {
		t.Fatalf("failed to load timezone: %v", err)
	}

	winter := time.Date(2021, 1, 15, 12, 0, 0, 0, time.UTC).In(vancouver)
	offset, isDST := resolveOffset(winter)
	if offset != -8 {
		t.Errorf("winter offset = %v, want -8", offset)
	}
	if isDST {
		t.Error("winter instant reported as DST")
	}

	summer := time.Date(2021, 6, 21, 12, 0, 0, 0, time.UTC).In(vancouver)
	offset, isDST = resolveOffset(summer)
	if offset != -7 {
		t.Errorf("summer offset = %v, want -7", offset)
	}
	if !isDST {
		t.Error("summer instant not reported as DST")
	}
}

func TestResolveOffsetChangesExactlyAtTransition(t *testing.T) {
	// The 2021 spring-forward in America/Vancouver happened at
	// 2021-03-14 02:00 PST, which is 10:00 UTC.
	vancouver, err := time.LoadLocation("America/Vancouver")
	if err != nil {
		t.Fatalf("failed to load timezone: %v", err)
	}

	before := time.Date(2021, 3, 14, 9, 59, 59, 0, time.UTC).In(vancouver)
	offset, isDST := resolveOffset(before)
	if offset != -8 || isDST {
		t.Errorf("one second before transition: offset=%v isDST=%v, want -8/false", offset, isDST)
	}

	after := time.Date(2021, 3, 14, 10, 0, 0, 0, time.UTC).In(vancouver)
	offset, isDST = resolveOffset(after)
	if offset != -7 || !isDST {
		t.Errorf("at transition: offset=%v isDST=%v, want -7/true", offset, isDST)
	}
}

func TestResolveOffsetFractionalZone(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatalf("failed to load timezone: %v", err)
	}

	instant := time.Date(2021, 6, 21, 12, 0, 0, 0, time.UTC).In(kolkata)
	offset, isDST := resolveOffset(instant)
	if offset != 5.5 {
		t.Errorf("Asia/Kolkata offset = %v, want 5.5", offset)
	}
	if isDST {
		t.Error("Asia/Kolkata reported as DST")
	}
}
