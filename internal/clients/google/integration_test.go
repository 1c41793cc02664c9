package google

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpup/wildwatch/server/internal/lib/geo"
	"github.com/dpup/wildwatch/server/internal/lib/routing"
)

// Live call against the Routes API; set GOOGLE_MAPS_API_KEY to run
func TestClient_ComputeRoutes_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	apiKey := os.Getenv("GOOGLE_MAPS_API_KEY")
	if apiKey == "" {
		t.Skip("GOOGLE_MAPS_API_KEY not set")
	}

	client := NewClient(apiKey)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Moshi town to Mtakuja
	origin := geo.Location{Latitude: -3.3349, Longitude: 37.3404}
	destination := geo.Location{Latitude: -3.39642, Longitude: 37.676531}

	routeData, err := client.ComputeRoutes(ctx, origin, destination, time.Time{})
	require.NoError(t, err)
	require.NotNil(t, routeData)

	assert.Greater(t, routeData.DurationSeconds, int32(0))
	assert.Greater(t, routeData.DistanceMeters, int32(30000), "more than 30km by road")
	assert.Less(t, routeData.DistanceMeters, int32(100000))
	assert.NotEmpty(t, routeData.Polyline)

	directions, err := client.Directions(ctx, routing.DirectionsRequest{Origin: origin, Destination: destination})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(directions.Path), 2)
}
