package timedata

import "time"

// Season is the meteorological season code reported to the controller.
type Season int

const (
	SeasonSpring Season = iota
	SeasonSummer
	SeasonFall
	SeasonWinter
)

// String returns the lowercase name of the season.
func (s Season) String() string {
	switch s {
	case SeasonSpring:
		return "spring"
	case SeasonSummer:
		return "summer"
	case SeasonFall:
		return "fall"
	case SeasonWinter:
		return "winter"
	default:
		return "unknown"
	}
}

// ClassifySeason maps a calendar date and hemisphere to a season.
// The boundaries are fixed calendar dates: spring is Mar 21 through Jun 20,
// summer Jun 21 through Sep 22, fall Sep 23 through Dec 22, and winter the
// remainder. Southern hemisphere dates map to the opposite season pair.
func ClassifySeason(month time.Month, day int, hemisphere Hemisphere) Season {
	md := int(month)*100 + day

	var s Season
	switch {
	case md > 320 && md < 621:
		s = SeasonSpring
	case md > 620 && md < 923:
		s = SeasonSummer
	case md > 922 && md < 1223:
		s = SeasonFall
	default:
		s = SeasonWinter
	}

	if hemisphere == HemisphereSouth {
		if s < SeasonFall {
			s += 2
		} else {
			s -= 2
		}
	}

	return s
}
