package routing

import (
	"context"
	"errors"
	"time"

	"github.com/dpup/wildwatch/server/internal/lib/geo"
)

// StationType describes what kind of post a response station is
type StationType string

const (
	Headquarters StationType = "HQ"
	Gate         StationType = "GATE"
	Outpost      StationType = "STATION"
)

// Station is a response team base. Stations are static reference data.
type Station struct {
	ID       string       `json:"id" yaml:"id"`
	Name     string       `json:"name" yaml:"name"`
	Location geo.Location `json:"location" yaml:"location"`
	Type     StationType  `json:"type" yaml:"type"`
}

// Route sources
const (
	SourceProvider = "provider" // road directions from a live provider
	SourceFallback = "fallback" // straight-line estimate
)

// Route describes how a team gets from its station to an alert.
// Routes are computed per request and owned by the caller.
type Route struct {
	ID                  string         `json:"id"`
	OriginStationID     string         `json:"origin_station_id"`
	OriginStationName   string         `json:"origin_station_name,omitempty"`
	Origin              geo.Location   `json:"origin"`
	DestinationLocation geo.Location   `json:"destination"`
	DistanceKm          float64        `json:"distance_km"`
	DurationMinutes     int            `json:"duration_minutes"`
	Path                []geo.Location `json:"path"`
	EncodedPath         string         `json:"encoded_path,omitempty"`
	Source              string         `json:"source"`
	ComputedAt          time.Time      `json:"computed_at"`
}

// IsFallback reports whether the route is a straight-line estimate
func (r Route) IsFallback() bool {
	return r.Source == SourceFallback
}

// DirectionsRequest asks a provider for driving directions
type DirectionsRequest struct {
	Origin        geo.Location
	Destination   geo.Location
	DepartureTime time.Time
}

// Directions is a provider's successful answer
type Directions struct {
	DistanceMeters  int
	DurationSeconds int
	Path            []geo.Location
}

// DirectionsProvider computes driving directions with current traffic.
// Any error is treated as "no directions available" by the Router.
type DirectionsProvider interface {
	Directions(ctx context.Context, req DirectionsRequest) (*Directions, error)

	// Name identifies the provider in logs
	Name() string
}

var (
	// ErrNoStationsAvailable is returned when a route is requested with no candidate stations
	ErrNoStationsAvailable = errors.New("no response stations available")

	// ErrProviderUnavailable signals that live directions could not be obtained.
	// The Router absorbs it and falls back to a straight-line route.
	ErrProviderUnavailable = errors.New("directions provider unavailable")
)

// NullProvider is the provider used when no live directions service is configured
type NullProvider struct{}

// Directions always reports the provider as unavailable
func (NullProvider) Directions(context.Context, DirectionsRequest) (*Directions, error) {
	return nil, ErrProviderUnavailable
}

// Name implements DirectionsProvider
func (NullProvider) Name() string {
	return "none"
}

// IsNull reports whether p can never return directions
func IsNull(p DirectionsProvider) bool {
	if p == nil {
		return true
	}
	switch p.(type) {
	case NullProvider, *NullProvider:
		return true
	}
	return false
}
