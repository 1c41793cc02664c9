package geo

// Location represents a geographic coordinate with optional descriptive fields.
// Two locations are the same place when their coordinates are equal; the
// descriptive fields are ignored for comparisons.
type Location struct {
	Latitude  float64 `json:"lat" yaml:"lat"`
	Longitude float64 `json:"lng" yaml:"lng"`
	Address   string  `json:"address,omitempty" yaml:"address,omitempty"`
	Region    string  `json:"region,omitempty" yaml:"region,omitempty"`
}

// SameCoordinates reports whether two locations share latitude and longitude
func (l Location) SameCoordinates(other Location) bool {
	return l.Latitude == other.Latitude && l.Longitude == other.Longitude
}

// Point returns the bare coordinate without descriptive fields
func (l Location) Point() Location {
	return Location{Latitude: l.Latitude, Longitude: l.Longitude}
}

// Earth radius used by the haversine calculations
const EarthRadiusKm = 6371.0

// KmPerDegree is the flat approximation used when projecting points.
// It ignores longitude convergence, so projections drift east/west away
// from the equator. Good enough for short trajectory hints, not for navigation.
const KmPerDegree = 111.0
