package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mtakuja response area coordinates
var (
	alphaStation = Location{Latitude: -3.39642, Longitude: 37.676531}
	mtakujaEast  = Location{Latitude: -3.434886, Longitude: 37.783987}
)

func TestDistanceKm(t *testing.T) {
	// Highway 4: Angels Camp to Murphys, a known ~11.0 km great-circle distance
	angelscamp := Location{Latitude: 38.0675, Longitude: -120.5436}
	murphys := Location{Latitude: 38.1391, Longitude: -120.4561}

	assert.InDelta(t, 11.046, DistanceKm(angelscamp, murphys), 0.1)

	// One hundredth of a degree of longitude on the equator
	assert.InDelta(t, 1.11195, DistanceKm(Location{}, Location{Longitude: 0.01}), 0.0001)
}

func TestDistanceKm_Symmetric(t *testing.T) {
	ab := DistanceKm(alphaStation, mtakujaEast)
	ba := DistanceKm(mtakujaEast, alphaStation)

	assert.Equal(t, ab, ba, "distance must not depend on argument order")
	assert.Greater(t, ab, 10.0)
	assert.Less(t, ab, 15.0)
}

func TestDistanceKm_ZeroOnlyForSameCoordinates(t *testing.T) {
	labelled := Location{Latitude: alphaStation.Latitude, Longitude: alphaStation.Longitude, Address: "HQ"}
	assert.Equal(t, 0.0, DistanceKm(alphaStation, labelled), "descriptive fields are ignored")

	nudged := Location{Latitude: alphaStation.Latitude, Longitude: alphaStation.Longitude + 1e-6}
	assert.Greater(t, DistanceKm(alphaStation, nudged), 0.0)
}

func TestDistanceMeters(t *testing.T) {
	assert.InDelta(t, DistanceKm(alphaStation, mtakujaEast)*1000, DistanceMeters(alphaStation, mtakujaEast), 1e-9)
}

func TestProject(t *testing.T) {
	tests := []struct {
		name    string
		bearing float64
		wantLat float64
		wantLng float64
	}{
		{"north", 0, 1, 0},
		{"east", 90, 0, 1},
		{"south", 180, -1, 0},
		{"west", 270, 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// 111 km is one flat degree
			p := Project(Location{}, tt.bearing, KmPerDegree)
			assert.InDelta(t, tt.wantLat, p.Latitude, 1e-9)
			assert.InDelta(t, tt.wantLng, p.Longitude, 1e-9)
		})
	}
}

func TestProject_ApproximatesDistance(t *testing.T) {
	// Near the equator the flat approximation stays within half a percent
	origin := Location{Latitude: -3.43, Longitude: 37.78}
	p := Project(origin, 45, 6)

	assert.InDelta(t, 6.0, DistanceKm(origin, p), 0.05)
}

func TestNearest(t *testing.T) {
	candidates := []Location{
		{Latitude: 1, Longitude: 1},
		{Latitude: 0, Longitude: 0},
		{Latitude: 0, Longitude: 0}, // duplicate of the winner, must not take over
	}

	idx, distance := Nearest(Location{Latitude: 0, Longitude: 0.01}, candidates)
	assert.Equal(t, 1, idx)
	assert.InDelta(t, 1.11195, distance, 0.0001)

	idx, _ = Nearest(Location{}, nil)
	assert.Equal(t, -1, idx)
}

func TestNearest_NaNCenterPicksFirst(t *testing.T) {
	candidates := []Location{alphaStation, mtakujaEast}

	idx, distance := Nearest(Location{Latitude: math.NaN(), Longitude: 37.7}, candidates)
	assert.Equal(t, 0, idx)
	assert.True(t, math.IsNaN(distance))
}

func TestPathLengthKm(t *testing.T) {
	path := []Location{{}, {Longitude: 0.01}, {Longitude: 0.02}}
	assert.InDelta(t, 2.2239, PathLengthKm(path), 0.001)
	assert.Equal(t, 0.0, PathLengthKm(path[:1]))
}

func TestDecodePolyline(t *testing.T) {
	points, err := DecodePolyline("_p~iF~ps|U_ulLnnqC_mqNvxq`@")
	require.NoError(t, err)
	require.Len(t, points, 3)

	assert.InDelta(t, 38.5, points[0].Latitude, 1e-5)
	assert.InDelta(t, -120.2, points[0].Longitude, 1e-5)
	assert.InDelta(t, 43.252, points[2].Latitude, 1e-5)

	_, err = DecodePolyline("")
	assert.Error(t, err)

	// Trailing continuation byte with nothing after it
	_, err = DecodePolyline("_p~iF~ps|U_")
	assert.Error(t, err)
}

func TestEncodePolyline_RoundTrip(t *testing.T) {
	path := []Location{alphaStation, mtakujaEast}

	encoded := EncodePolyline(path)
	require.NotEmpty(t, encoded)

	decoded, err := DecodePolyline(encoded)
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	for i := range path {
		assert.InDelta(t, path[i].Latitude, decoded[i].Latitude, 1e-5)
		assert.InDelta(t, path[i].Longitude, decoded[i].Longitude, 1e-5)
	}

	assert.Empty(t, EncodePolyline(nil))
}

func TestNewLocation(t *testing.T) {
	loc, err := NewLocation(-3.4, 37.7)
	require.NoError(t, err)
	assert.Equal(t, -3.4, loc.Latitude)

	_, err = NewLocation(200, -300)
	assert.Error(t, err, "Should return error for invalid coordinates")
}
