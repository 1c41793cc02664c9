package routing

import (
	"context"
	"math"
	"runtime/debug"
	"time"

	"github.com/dpup/prefab/errors"
	"github.com/dpup/prefab/logging"
	"github.com/google/uuid"

	"github.com/dpup/wildwatch/server/internal/lib/geo"
	"github.com/dpup/wildwatch/server/internal/metrics"
)

const (
	// RoadCurvatureFactor inflates straight-line distance to approximate road distance
	RoadCurvatureFactor = 1.3

	// FallbackSpeedKmh is the assumed average driving speed for fallback routes
	FallbackSpeedKmh = 40.0

	defaultProviderTimeout = 10 * time.Second
)

// Router picks the nearest response station for an alert and computes a route
// from it, preferring live directions and degrading to a straight-line estimate.
type Router struct {
	provider DirectionsProvider
	now      func() time.Time
	timeout  time.Duration
	metrics  *metrics.Collector
}

// Option configures a Router
type Option func(*Router)

// WithClock overrides the time source used for departure times and route stamps
func WithClock(now func() time.Time) Option {
	return func(r *Router) {
		r.now = now
	}
}

// WithTimeout bounds each provider call
func WithTimeout(d time.Duration) Option {
	return func(r *Router) {
		r.timeout = d
	}
}

// WithMetrics records route sources and computation times
func WithMetrics(c *metrics.Collector) Option {
	return func(r *Router) {
		r.metrics = c
	}
}

// NewRouter creates a Router. A nil provider is treated as NullProvider.
func NewRouter(provider DirectionsProvider, opts ...Option) *Router {
	if provider == nil {
		provider = NullProvider{}
	}
	r := &Router{
		provider: provider,
		now:      time.Now,
		timeout:  defaultProviderTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Provider returns the configured directions provider
func (r *Router) Provider() DirectionsProvider {
	return r.provider
}

// NearestStation returns the station closest to target and its distance in km.
// Ties go to the earliest station in the slice.
func NearestStation(target geo.Location, stations []Station) (Station, float64, error) {
	if len(stations) == 0 {
		return Station{}, 0, ErrNoStationsAvailable
	}
	locations := make([]geo.Location, len(stations))
	for i, s := range stations {
		locations[i] = s.Location
	}
	idx, km := geo.Nearest(target, locations)
	return stations[idx], km, nil
}

// ComputeRoute routes the nearest candidate station to dest. The only error
// the returned Pending can carry is ErrNoStationsAvailable (or the caller's
// context error from Await); provider failures always degrade to a fallback route.
//
// Without a live provider the Pending is already resolved on return.
func (r *Router) ComputeRoute(ctx context.Context, dest geo.Location, stations []Station) *Pending {
	start := time.Now()

	station, km, err := NearestStation(dest, stations)
	if err != nil {
		return resolvedPending(Route{}, err)
	}

	if IsNull(r.provider) {
		route := r.Fallback(station, dest, km)
		r.metrics.RouteComputed(metrics.SourceFallback, time.Since(start))
		return resolvedPending(route, nil)
	}

	ctx = logging.EnsureLogger(ctx)
	p := newPending()
	go func() {
		route := r.fallbackOnPanic(ctx, station, dest, km)
		r.metrics.RouteComputed(route.Source, time.Since(start))
		p.resolve(route, nil)
	}()
	return p
}

// Fallback synthesizes a straight-line route from station to dest. km is the
// great-circle distance between them.
func (r *Router) Fallback(station Station, dest geo.Location, km float64) Route {
	distanceKm := km * RoadCurvatureFactor
	path := []geo.Location{station.Location.Point(), dest}
	return Route{
		ID:                  newRouteID(),
		OriginStationID:     station.ID,
		OriginStationName:   station.Name,
		Origin:              station.Location,
		DestinationLocation: dest,
		DistanceKm:          distanceKm,
		DurationMinutes:     FallbackDurationMinutes(distanceKm),
		Path:                path,
		EncodedPath:         geo.EncodePolyline(path),
		Source:              SourceFallback,
		ComputedAt:          r.now(),
	}
}

// FallbackDurationMinutes is the drive time at FallbackSpeedKmh, rounded up
func FallbackDurationMinutes(distanceKm float64) int {
	if !(distanceKm > 0) {
		return 0
	}
	return int(math.Ceil(distanceKm / FallbackSpeedKmh * 60))
}

func (r *Router) fallbackOnPanic(ctx context.Context, station Station, dest geo.Location, km float64) (route Route) {
	defer func() {
		if rec := recover(); rec != nil {
			err, _ := errors.ParseStack(debug.Stack())
			skipFrames := 3
			numFrames := 5
			logging.Errorw(ctx, "Router: recovered from provider panic",
				"provider", r.provider.Name(), "error", rec,
				"error.stack_trace", err.MinimalStack(skipFrames, numFrames))
			route = r.Fallback(station, dest, km)
		}
	}()
	return r.viaProvider(ctx, station, dest, km)
}

func (r *Router) viaProvider(ctx context.Context, station Station, dest geo.Location, km float64) Route {
	callCtx := ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	dir, err := r.provider.Directions(callCtx, DirectionsRequest{
		Origin:        station.Location.Point(),
		Destination:   dest,
		DepartureTime: r.now(),
	})
	if err != nil || dir == nil {
		logging.Warnw(ctx, "Router: directions unavailable, using straight-line estimate",
			"provider", r.provider.Name(), "station", station.ID, "error", err)
		return r.Fallback(station, dest, km)
	}

	path := dir.Path
	if len(path) == 0 {
		path = []geo.Location{station.Location.Point(), dest}
	}

	return Route{
		ID:                  newRouteID(),
		OriginStationID:     station.ID,
		OriginStationName:   station.Name,
		Origin:              station.Location,
		DestinationLocation: dest,
		DistanceKm:          float64(dir.DistanceMeters) / 1000,
		DurationMinutes:     int(math.Ceil(float64(dir.DurationSeconds) / 60)),
		Path:                path,
		EncodedPath:         geo.EncodePolyline(path),
		Source:              SourceProvider,
		ComputedAt:          r.now(),
	}
}

func newRouteID() string {
	return "route-" + uuid.NewString()
}
