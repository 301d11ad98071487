package canonical

import "time"

// Season is an optional seasonal context for resolution. The empty value
// disables the seasonal rule.
type Season string

// Recognized seasons. Only the two with pricing pressure exist; spring and
// fall carry no override.
const (
	SeasonNone   Season = ""
	SeasonSummer Season = "summer"
	SeasonWinter Season = "winter"
)

// SeasonFor maps a point in time to the engine's season: June through
// September is summer, December through February is winter, everything else
// has no seasonal pressure.
func SeasonFor(t time.Time) Season {
	switch t.Month() {
	case time.June, time.July, time.August, time.September:
		return SeasonSummer
	case time.December, time.January, time.February:
		return SeasonWinter
	default:
		return SeasonNone
	}
}

// preferredRateType returns the rate-type token favored in the season.
// Summer heat spikes make long fixed commitments a poor landing page, so
// summer steers to variable-rate; winter steers to fixed-rate.
func (s Season) preferredRateType() string {
	switch s {
	case SeasonSummer:
		return "variable-rate"
	case SeasonWinter:
		return "fixed-rate"
	default:
		return ""
	}
}
