// Package calendar maps months to seasons and applies the hemisphere offset.
package calendar

import (
	"strings"
	"time"
)

// Hemisphere selects which half of the globe the advice is for.
type Hemisphere int

const (
	North Hemisphere = iota
	South
)

// Hemispheres returns every hemisphere, north first.
func Hemispheres() []Hemisphere {
	return []Hemisphere{North, South}
}

// ParseHemisphere maps text to a Hemisphere, ignoring case. It never fails:
// anything other than "south" is treated as north.
func ParseHemisphere(s string) Hemisphere {
	switch strings.ToLower(s) {
	case "south":
		return South
	default:
		return North
	}
}

// Shift returns the month offset for the hemisphere.
func (h Hemisphere) Shift() int {
	if h == South {
		return 6
	}
	return 0
}

// String returns the lowercase name accepted by ParseHemisphere.
func (h Hemisphere) String() string {
	if h == South {
		return "south"
	}
	return "north"
}

// Label returns the capitalized form used in reports.
func (h Hemisphere) Label() string {
	if h == South {
		return "South"
	}
	return "North"
}

// Season is one of the four temperate seasons.
type Season string

const (
	Winter  Season = "Winter"
	Spring  Season = "Spring"
	Summer  Season = "Summer"
	Autumn  Season = "Autumn"
	Unknown Season = "Unknown"
)

// seasons is indexed by northern-hemisphere month.
var seasons = map[int]Season{
	12: Winter, 1: Winter, 2: Winter,
	3: Spring, 4: Spring, 5: Spring,
	6: Summer, 7: Summer, 8: Summer,
	9: Autumn, 10: Autumn, 11: Autumn,
}

// AdjustMonth returns the effective month for the hemisphere. Any int is
// accepted; the result is always in [1,12].
func AdjustMonth(month int, h Hemisphere) int {
	m := (month - 1 + h.Shift()) % 12
	if m < 0 {
		m += 12
	}
	return m + 1
}

// SeasonOf looks up a month in the season table without any offset.
func SeasonOf(month int) Season {
	if s, ok := seasons[month]; ok {
		return s
	}
	return Unknown
}

// SeasonFor returns the season for month in the given hemisphere.
func SeasonFor(month int, h Hemisphere) Season {
	return SeasonOf(AdjustMonth(month, h))
}

// MonthName returns the English name of month after normalizing it into [1,12].
func MonthName(month int) string {
	return time.Month(AdjustMonth(month, North)).String()
}
