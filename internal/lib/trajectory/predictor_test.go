package trajectory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpup/wildwatch/server/internal/lib/geo"
)

var waterhole = geo.Location{
	Latitude:  -3.433762,
	Longitude: 37.782142,
	Region:    "Mtakuja Area",
	Address:   "Mtakuja Central, Near Waterhole",
}

func TestPredict_Shape(t *testing.T) {
	path := Predict(waterhole, "N", DefaultSpeedKmh)

	require.Len(t, path, 4)
	assert.Equal(t, waterhole, path[0], "first point is the current location")

	d1 := geo.DistanceKm(waterhole, path[1])
	d2 := geo.DistanceKm(waterhole, path[2])
	d3 := geo.DistanceKm(waterhole, path[3])
	assert.Less(t, d1, d2)
	assert.Less(t, d2, d3)
}

func TestPredict_HeadingNorth(t *testing.T) {
	path := Predict(waterhole, "N", 12)

	// 12 km/h for 30 minutes is 6 km, or 6/111 flat degrees
	assert.InDelta(t, waterhole.Latitude+6.0/111, path[1].Latitude, 1e-9)
	assert.InDelta(t, waterhole.Longitude, path[1].Longitude, 1e-9)
	assert.InDelta(t, waterhole.Latitude+18.0/111, path[3].Latitude, 1e-9)

	assert.Equal(t, "Predicted position (30 min)", path[1].Address)
	assert.Equal(t, "Predicted position (90 min)", path[3].Address)
	assert.Equal(t, "Mtakuja Area", path[2].Region)
}

func TestPredict_Bearings(t *testing.T) {
	tests := []struct {
		direction string
		dLat      float64
		dLng      float64
	}{
		{"E", 0, 1},
		{"S", -1, 0},
		{"W", 0, -1},
		{"sw", -1, -1},
		{"NE", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.direction, func(t *testing.T) {
			path := Predict(waterhole, tt.direction, 12)
			latMove := path[1].Latitude - waterhole.Latitude
			lngMove := path[1].Longitude - waterhole.Longitude

			assertSign(t, tt.dLat, latMove)
			assertSign(t, tt.dLng, lngMove)
		})
	}
}

func TestPredict_UnknownDirectionPointsNorth(t *testing.T) {
	north := Predict(waterhole, "N", 12)
	unknown := Predict(waterhole, "UPHILL", 12)

	assert.Equal(t, north, unknown)
	assert.False(t, IsKnownDirection("UPHILL"))
	assert.True(t, IsKnownDirection("nw"))
}

func TestPredict_DefaultSpeed(t *testing.T) {
	assert.Equal(t, Predict(waterhole, "SE", DefaultSpeedKmh), Predict(waterhole, "SE", 0))
}

func TestPredict_Deterministic(t *testing.T) {
	assert.Equal(t, Predict(waterhole, "W", 8), Predict(waterhole, "W", 8))
}

func TestBearing(t *testing.T) {
	for i, direction := range Directions {
		assert.Equal(t, float64(i*45), Bearing(direction), direction)
	}
	assert.Equal(t, 0.0, Bearing(""))
}

func assertSign(t *testing.T, want, got float64) {
	t.Helper()
	switch {
	case want > 0:
		assert.Greater(t, got, 1e-9)
	case want < 0:
		assert.Less(t, got, -1e-9)
	default:
		assert.InDelta(t, 0, got, 1e-9)
	}
}
