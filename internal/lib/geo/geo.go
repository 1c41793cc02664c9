package geo

import (
	"errors"
	"math"

	"github.com/twpayne/go-polyline"
)

// DistanceKm calculates great-circle distance between two locations using the Haversine formula
func DistanceKm(a, b Location) float64 {
	// Same coordinates are exactly zero apart
	if a.SameCoordinates(b) {
		return 0
	}

	lat1 := toRadians(a.Latitude)
	lon1 := toRadians(a.Longitude)
	lat2 := toRadians(b.Latitude)
	lon2 := toRadians(b.Longitude)

	dlat := lat2 - lat1
	dlon := lon2 - lon1

	h := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// DistanceMeters is DistanceKm scaled to meters
func DistanceMeters(a, b Location) float64 {
	return DistanceKm(a, b) * 1000
}

// Project returns a point roughly distanceKm from origin along bearingDegrees
// (0=N, 90=E). Uses the flat KmPerDegree approximation, see KmPerDegree.
func Project(origin Location, bearingDegrees, distanceKm float64) Location {
	angle := toRadians(bearingDegrees)
	distanceDeg := distanceKm / KmPerDegree

	return Location{
		Latitude:  origin.Latitude + distanceDeg*math.Cos(angle),
		Longitude: origin.Longitude + distanceDeg*math.Sin(angle),
	}
}

// Nearest returns the index of the candidate closest to center and its distance in km.
// Ties keep the earliest candidate. Returns -1 when candidates is empty. When no
// distance is comparable (NaN coordinates) the first candidate is returned with
// a NaN distance.
func Nearest(center Location, candidates []Location) (int, float64) {
	best := -1
	minDistance := math.Inf(1)

	for i, candidate := range candidates {
		distance := DistanceKm(candidate, center)
		if distance < minDistance {
			minDistance = distance
			best = i
		}
	}

	if best < 0 {
		if len(candidates) == 0 {
			return -1, 0
		}
		return 0, DistanceKm(candidates[0], center)
	}
	return best, minDistance
}

// PathLengthKm sums the great-circle length of consecutive path segments
func PathLengthKm(path []Location) float64 {
	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		total += DistanceKm(path[i], path[i+1])
	}
	return total
}

// DecodePolyline decodes Google polyline string to a location sequence
func DecodePolyline(encoded string) ([]Location, error) {
	if encoded == "" {
		return nil, errors.New("encoded polyline string is empty")
	}

	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, errors.New("failed to decode polyline: " + err.Error())
	}

	points := make([]Location, len(coords))
	for i, coord := range coords {
		points[i] = Location{
			Latitude:  coord[0],
			Longitude: coord[1],
		}

		if !IsValid(points[i]) {
			return nil, errors.New("decoded polyline contains invalid coordinates")
		}
	}

	return points, nil
}

// EncodePolyline encodes a location sequence as a Google polyline string
func EncodePolyline(points []Location) string {
	if len(points) == 0 {
		return ""
	}

	coords := make([][]float64, len(points))
	for i, p := range points {
		coords[i] = []float64{p.Latitude, p.Longitude}
	}
	return string(polyline.EncodeCoords(coords))
}

// NewLocation creates a Location from latitude and longitude values with validation
func NewLocation(latitude, longitude float64) (Location, error) {
	loc := Location{Latitude: latitude, Longitude: longitude}
	if !IsValid(loc) {
		return Location{}, errors.New("invalid coordinates: latitude must be [-90, 90], longitude must be [-180, 180]")
	}
	return loc, nil
}

// IsValid validates latitude and longitude ranges
func IsValid(l Location) bool {
	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
