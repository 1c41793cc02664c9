// Package directions adapts the Google Maps Directions API to the routing
// provider interface.
package directions

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"googlemaps.github.io/maps"

	"github.com/dpup/wildwatch/server/internal/lib/geo"
	"github.com/dpup/wildwatch/server/internal/lib/routing"
)

// Provider requests driving directions with current traffic
type Provider struct {
	client *maps.Client
}

var _ routing.DirectionsProvider = (*Provider)(nil)

// NewProvider creates a provider authenticated with apiKey. Extra options
// (base URL, HTTP client) are passed through to the maps client.
func NewProvider(apiKey string, opts ...maps.ClientOption) (*Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("maps API key not set")
	}
	client, err := maps.NewClient(append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &Provider{client: client}, nil
}

// Name implements routing.DirectionsProvider
func (p *Provider) Name() string {
	return "google-directions"
}

// Directions implements routing.DirectionsProvider
func (p *Provider) Directions(ctx context.Context, req routing.DirectionsRequest) (*routing.Directions, error) {
	routes, _, err := p.client.Directions(ctx, &maps.DirectionsRequest{
		Origin:        latLng(req.Origin),
		Destination:   latLng(req.Destination),
		Mode:          maps.TravelModeDriving,
		DepartureTime: departureTime(req.DepartureTime),
		TrafficModel:  maps.TrafficModelBestGuess,
	})
	if err != nil {
		return nil, fmt.Errorf("directions request failed: %w", err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return nil, fmt.Errorf("no routes found: %w", routing.ErrProviderUnavailable)
	}

	route := routes[0]
	var meters int
	var duration time.Duration
	for _, leg := range route.Legs {
		meters += leg.Distance.Meters
		if leg.DurationInTraffic > 0 {
			duration += leg.DurationInTraffic
		} else {
			duration += leg.Duration
		}
	}

	points, err := route.OverviewPolyline.Decode()
	if err != nil {
		return nil, fmt.Errorf("failed to decode overview polyline: %w", err)
	}
	path := make([]geo.Location, len(points))
	for i, pt := range points {
		path[i] = geo.Location{Latitude: pt.Lat, Longitude: pt.Lng}
	}

	return &routing.Directions{
		DistanceMeters:  meters,
		DurationSeconds: int(duration.Seconds()),
		Path:            path,
	}, nil
}

func latLng(l geo.Location) string {
	return strconv.FormatFloat(l.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(l.Longitude, 'f', -1, 64)
}

// departureTime formats t the way the API expects. Past or zero times mean now.
func departureTime(t time.Time) string {
	if t.IsZero() || !t.After(time.Now()) {
		return "now"
	}
	return strconv.FormatInt(t.Unix(), 10)
}
