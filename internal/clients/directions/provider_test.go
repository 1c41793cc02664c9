package directions

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"

	"github.com/dpup/wildwatch/server/internal/lib/geo"
	"github.com/dpup/wildwatch/server/internal/lib/routing"
)

const okResponse = `{
  "status": "OK",
  "geocoded_waypoints": [],
  "routes": [{
    "summary": "Mtakuja Rd",
    "legs": [{
      "distance": {"text": "1.5 km", "value": 1480},
      "duration": {"text": "4 mins", "value": 240},
      "duration_in_traffic": {"text": "5 mins", "value": 262},
      "steps": []
    }],
    "overview_polyline": {"points": "rjvSiu}dFbOuTnKg^"}
  }]
}`

func newTestProvider(t *testing.T, handler http.HandlerFunc) *Provider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewProvider("test-key", maps.WithBaseURL(server.URL))
	require.NoError(t, err)
	return p
}

func TestDirections_Success(t *testing.T) {
	var query map[string]string
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		query = map[string]string{
			"origin":        r.URL.Query().Get("origin"),
			"destination":   r.URL.Query().Get("destination"),
			"mode":          r.URL.Query().Get("mode"),
			"departureTime": r.URL.Query().Get("departure_time"),
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, okResponse)
	})

	dir, err := p.Directions(context.Background(), routing.DirectionsRequest{
		Origin:      geo.Location{Latitude: -3.39642, Longitude: 37.676531},
		Destination: geo.Location{Latitude: -3.401, Longitude: 37.685},
	})
	require.NoError(t, err)

	assert.Equal(t, 1480, dir.DistanceMeters)
	assert.Equal(t, 262, dir.DurationSeconds, "traffic duration preferred")
	require.Len(t, dir.Path, 3)
	assert.InDelta(t, 37.685, dir.Path[2].Longitude, 1e-5)

	assert.Equal(t, "-3.39642,37.676531", query["origin"])
	assert.Equal(t, "-3.401,37.685", query["destination"])
	assert.Equal(t, "driving", query["mode"])
	assert.Equal(t, "now", query["departureTime"])
}

func TestDirections_NonOKStatus(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status": "ZERO_RESULTS", "routes": []}`)
	})

	_, err := p.Directions(context.Background(), routing.DirectionsRequest{
		Origin:      geo.Location{Latitude: -3.39642, Longitude: 37.676531},
		Destination: geo.Location{Latitude: -3.401, Longitude: 37.685},
	})
	assert.Error(t, err)
}

func TestNewProvider_RequiresKey(t *testing.T) {
	_, err := NewProvider("")
	assert.ErrorContains(t, err, "API key")
}

func TestDepartureTime(t *testing.T) {
	assert.Equal(t, "now", departureTime(time.Time{}))
	assert.Equal(t, "now", departureTime(time.Now().Add(-time.Hour)))

	future := time.Now().Add(time.Hour).Truncate(time.Second)
	assert.Equal(t, fmt.Sprint(future.Unix()), departureTime(future))
}

func TestName(t *testing.T) {
	p, err := NewProvider("k")
	require.NoError(t, err)
	assert.Equal(t, "google-directions", p.Name())
}
