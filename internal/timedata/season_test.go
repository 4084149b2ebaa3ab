package timedata

import (
	"testing"
	"time"
)

func TestClassifySeasonNorthernBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		month time.Month
		day   int
		want  Season
	}{
		{"late winter", time.March, 20, SeasonWinter},
		{"first day of spring", time.March, 21, SeasonSpring},
		{"late spring", time.June, 20, SeasonSpring},
		{"first day of summer", time.June, 21, SeasonSummer},
		{"midsummer", time.July, 15, SeasonSummer},
		{"late summer", time.September, 22, SeasonSummer},
		{"first day of fall", time.September, 23, SeasonFall},
		{"late fall", time.December, 22, SeasonFall},
		{"first day of winter", time.December, 23, SeasonWinter},
		{"new year", time.January, 1, SeasonWinter},
		{"leap day", time.February, 29, SeasonWinter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifySeason(tt.month, tt.day, HemisphereNorth)
			if got != tt.want {
				t.Errorf("ClassifySeason(%v, %d, north) = %v, want %v", tt.month, tt.day, got, tt.want)
			}
		})
	}
}

func TestClassifySeasonSouthernInversion(t *testing.T) {
	// The southern result must always be exactly two season codes away from
	// the northern result, swapping spring/summer with fall/winter.
	for month := time.January; month <= time.December; month++ {
		for day := 1; day <= 28; day++ {
			north := ClassifySeason(month, day, HemisphereNorth)
			south := ClassifySeason(month, day, HemisphereSouth)

			if (int(north)+2)%4 != int(south) {
				t.Errorf("ClassifySeason(%v, %d): north=%v south=%v, want codes two apart", month, day, north, south)
			}
		}
	}
}

func TestClassifySeasonIsPure(t *testing.T) {
	first := ClassifySeason(time.June, 21, HemisphereNorth)
	second := ClassifySeason(time.June, 21, HemisphereNorth)
	if first != second {
		t.Errorf("ClassifySeason not deterministic: %v != %v", first, second)
	}
	if first != SeasonSummer {
		t.Errorf("ClassifySeason(June, 21, north) = %v, want %v", first, SeasonSummer)
	}
}

func TestSeasonString(t *testing.T) {
	want := map[Season]string{
		SeasonSpring: "spring",
		SeasonSummer: "summer",
		SeasonFall:   "fall",
		SeasonWinter: "winter",
	}
	for season, name := range want {
		if season.String() != name {
			t.Errorf("Season(%d).String() = %q, want %q", int(season), season.String(), name)
		}
	}
}
