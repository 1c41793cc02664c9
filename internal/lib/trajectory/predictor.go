// Package trajectory projects where a detected animal is heading.
package trajectory

import (
	"fmt"
	"strings"

	"github.com/dpup/wildwatch/server/internal/lib/geo"
)

// DefaultSpeedKmh is a typical walking pace for an elephant herd
const DefaultSpeedKmh = 12.0

// Horizons are the look-ahead offsets, in minutes, of the predicted points
var Horizons = []int{30, 60, 90}

var bearings = map[string]float64{
	"N":  0,
	"NE": 45,
	"E":  90,
	"SE": 135,
	"S":  180,
	"SW": 225,
	"W":  270,
	"NW": 315,
}

// Directions lists the recognized compass points clockwise from north
var Directions = []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Bearing converts a compass point to degrees clockwise from north.
// Unrecognized directions point north.
func Bearing(direction string) float64 {
	return bearings[strings.ToUpper(strings.TrimSpace(direction))]
}

// IsKnownDirection reports whether direction is one of Directions
func IsKnownDirection(direction string) bool {
	_, ok := bearings[strings.ToUpper(strings.TrimSpace(direction))]
	return ok
}

// Predict returns the current location followed by one projected point per
// horizon, travelling at speedKmh along the compass direction. A non-positive
// speed uses DefaultSpeedKmh.
func Predict(current geo.Location, direction string, speedKmh float64) []geo.Location {
	if speedKmh <= 0 {
		speedKmh = DefaultSpeedKmh
	}

	bearing := Bearing(direction)
	path := make([]geo.Location, 0, len(Horizons)+1)
	path = append(path, current)

	for _, minutes := range Horizons {
		distanceKm := speedKmh * float64(minutes) / 60
		next := geo.Project(current, bearing, distanceKm)
		next.Address = fmt.Sprintf("Predicted position (%d min)", minutes)
		next.Region = current.Region
		path = append(path, next)
	}

	return path
}
