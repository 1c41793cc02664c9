package risk

import "time"

// Additive score weights. Each detection accumulates a species weight plus
// distance, confidence and time-of-day bonuses, then the total is bucketed.
var speciesWeights = map[Species]int{
	Lion:     40,
	Elephant: 35,
	Rhino:    30,
	Buffalo:  25,
	Unknown:  10,
}

const (
	criticalThreshold = 80
	highThreshold     = 60
	mediumThreshold   = 40
)

// Classify maps a detection's inputs to a risk level.
// Species outside the known weight table score as Unknown.
func Classify(species Species, distanceMeters, confidencePercent float64, tod TimeOfDay) Level {
	return LevelForScore(Score(species, distanceMeters, confidencePercent, tod))
}

// Score returns the additive risk score behind Classify
func Score(species Species, distanceMeters, confidencePercent float64, tod TimeOfDay) int {
	score, ok := speciesWeights[species]
	if !ok {
		score = speciesWeights[Unknown]
	}

	score += distanceScore(distanceMeters)
	score += confidenceScore(confidencePercent)

	if tod == Night {
		score += 10
	}

	return score
}

// LevelForScore buckets a score; each threshold is inclusive on its lower edge
func LevelForScore(score int) Level {
	switch {
	case score >= criticalThreshold:
		return Critical
	case score >= highThreshold:
		return High
	case score >= mediumThreshold:
		return Medium
	default:
		return Low
	}
}

// Closer animals score higher
func distanceScore(meters float64) int {
	switch {
	case meters < 100:
		return 40
	case meters < 300:
		return 30
	case meters < 500:
		return 20
	case meters < 1000:
		return 10
	default:
		return 5
	}
}

func confidenceScore(percent float64) int {
	switch {
	case percent >= 90:
		return 15
	case percent >= 80:
		return 10
	case percent >= 70:
		return 5
	default:
		return 0
	}
}

// HourRule classifies by local wall clock: day from 06:00 up to 18:00
type HourRule struct {
	Zone *time.Location
}

// TimeOfDay reports whether t falls in daylight hours in the rule's zone
func (r HourRule) TimeOfDay(t time.Time) TimeOfDay {
	if r.Zone != nil {
		t = t.In(r.Zone)
	}
	hour := t.Hour()
	if hour >= 6 && hour < 18 {
		return Day
	}
	return Night
}

// LoadZone resolves an IANA zone name, falling back to a fixed offset when
// the zone database is unavailable
func LoadZone(name string, fallbackOffsetHours int) *time.Location {
	if name != "" {
		if zone, err := time.LoadLocation(name); err == nil {
			return zone
		}
	}
	return time.FixedZone(name, fallbackOffsetHours*3600)
}
