package risk

import (
	"fmt"
	"strings"
)

// Species identifies the animal reported by a detection
type Species string

// AllSpecies lists the known species in weight order
var AllSpecies = []Species{Lion, Elephant, Rhino, Buffalo, Unknown}

const (
	Elephant Species = "ELEPHANT"
	Lion     Species = "LION"
	Rhino    Species = "RHINO"
	Buffalo  Species = "BUFFALO"
	Unknown  Species = "UNKNOWN"
)

// giraffeTag is a legacy alias some feeds still send for the LION class
const giraffeTag = "GIRAFFE"

// ParseSpecies normalizes a species tag. Unrecognized tags map to Unknown.
func ParseSpecies(s string) Species {
	switch sp := Species(strings.ToUpper(strings.TrimSpace(s))); sp {
	case Elephant, Lion, Rhino, Buffalo, Unknown:
		return sp
	case giraffeTag:
		return Lion
	default:
		return Unknown
	}
}

// Level is the ordinal risk classification of a detection.
// The zero value is Low and the ordering Low < Medium < High < Critical holds
// for the underlying integers.
type Level int

const (
	Low Level = iota
	Medium
	High
	Critical
)

var levelNames = map[Level]string{
	Low:      "LOW",
	Medium:   "MEDIUM",
	High:     "HIGH",
	Critical: "CRITICAL",
}

// Levels lists every level from lowest to highest
var Levels = []Level{Low, Medium, High, Critical}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// ParseLevel converts a level name back to a Level
func ParseLevel(s string) (Level, error) {
	for level, name := range levelNames {
		if strings.EqualFold(name, s) {
			return level, nil
		}
	}
	return Low, fmt.Errorf("unknown risk level %q", s)
}

// MarshalText encodes the level by name so persisted alerts stay readable
func (l Level) MarshalText() ([]byte, error) {
	if _, ok := levelNames[l]; !ok {
		return nil, fmt.Errorf("unknown risk level %d", int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText decodes a level name
func (l *Level) UnmarshalText(text []byte) error {
	level, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = level
	return nil
}

// TimeOfDay distinguishes daylight from night-time detections
type TimeOfDay string

const (
	Day   TimeOfDay = "day"
	Night TimeOfDay = "night"
)
