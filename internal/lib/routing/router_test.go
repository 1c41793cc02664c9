package routing

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/dpup/prefab/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dpup/wildwatch/server/internal/lib/geo"
	"github.com/dpup/wildwatch/server/internal/metrics"
)

// MockProvider is a mock implementation of DirectionsProvider
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Directions(ctx context.Context, req DirectionsRequest) (*Directions, error) {
	args := m.Called(ctx, req)
	if d := args.Get(0); d != nil {
		return d.(*Directions), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProvider) Name() string {
	return "mock"
}

var fixedNow = time.Date(2024, 5, 1, 21, 30, 0, 0, time.UTC)

func testStations() []Station {
	return []Station{
		{ID: "s1", Name: "Alpha", Location: geo.Location{Latitude: 0, Longitude: 0}, Type: Headquarters},
		{ID: "s2", Name: "Bravo", Location: geo.Location{Latitude: 1, Longitude: 1}, Type: Outpost},
	}
}

func await(t *testing.T, p *Pending) Route {
	t.Helper()
	ctx, cancel := context.WithTimeout(testContext(), 2*time.Second)
	defer cancel()
	route, err := p.Await(ctx)
	require.NoError(t, err)
	return route
}

func TestComputeRoute_FallbackWithoutProvider(t *testing.T) {
	router := NewRouter(NullProvider{}, WithClock(func() time.Time { return fixedNow }))
	alert := geo.Location{Latitude: 0, Longitude: 0.01}

	p := router.ComputeRoute(testContext(), alert, testStations())
	assert.True(t, p.Ready(), "fallback result should be resolved immediately")

	route := await(t, p)
	straight := geo.DistanceKm(testStations()[0].Location, alert)

	assert.Equal(t, "s1", route.OriginStationID)
	assert.Equal(t, "Alpha", route.OriginStationName)
	assert.InDelta(t, straight*1.3, route.DistanceKm, 1e-9)
	assert.Equal(t, 3, route.DurationMinutes) // 1.4455 km at 40 km/h
	require.Len(t, route.Path, 2)
	assert.True(t, route.Path[0].SameCoordinates(testStations()[0].Location))
	assert.True(t, route.Path[1].SameCoordinates(alert))
	assert.Equal(t, SourceFallback, route.Source)
	assert.True(t, route.IsFallback())
	assert.Equal(t, fixedNow, route.ComputedAt)
	assert.Contains(t, route.ID, "route-")
	assert.NotEmpty(t, route.EncodedPath)
}

func TestComputeRoute_NilProviderIsNull(t *testing.T) {
	router := NewRouter(nil)
	assert.True(t, IsNull(router.Provider()))

	route := await(t, router.ComputeRoute(testContext(), geo.Location{Latitude: 0.5, Longitude: 0.5}, testStations()))
	assert.Equal(t, SourceFallback, route.Source)
}

func TestComputeRoute_NoStations(t *testing.T) {
	router := NewRouter(NullProvider{})

	p := router.ComputeRoute(testContext(), geo.Location{}, nil)
	require.True(t, p.Ready())
	_, err := p.Await(testContext())
	assert.ErrorIs(t, err, ErrNoStationsAvailable)

	// The live provider is never consulted without stations
	provider := &MockProvider{}
	router = NewRouter(provider)
	_, err = router.ComputeRoute(testContext(), geo.Location{}, []Station{}).Await(testContext())
	assert.ErrorIs(t, err, ErrNoStationsAvailable)
	provider.AssertNotCalled(t, "Directions", mock.Anything, mock.Anything)
}

func TestComputeRoute_UsesProviderResult(t *testing.T) {
	provider := &MockProvider{}
	router := NewRouter(provider, WithClock(func() time.Time { return fixedNow }))
	alert := geo.Location{Latitude: 0.9, Longitude: 0.95}

	roadPath := []geo.Location{
		{Latitude: 1, Longitude: 1},
		{Latitude: 0.95, Longitude: 1},
		{Latitude: 0.9, Longitude: 0.95},
	}
	provider.On("Directions", mock.Anything, mock.MatchedBy(func(req DirectionsRequest) bool {
		return req.Origin.SameCoordinates(geo.Location{Latitude: 1, Longitude: 1}) &&
			req.Destination.SameCoordinates(alert) &&
			req.DepartureTime.Equal(fixedNow)
	})).Return(&Directions{DistanceMeters: 15300, DurationSeconds: 1230, Path: roadPath}, nil)

	route := await(t, router.ComputeRoute(testContext(), alert, testStations()))

	assert.Equal(t, "s2", route.OriginStationID)
	assert.Equal(t, SourceProvider, route.Source)
	assert.InDelta(t, 15.3, route.DistanceKm, 1e-9)
	assert.Equal(t, 21, route.DurationMinutes)
	assert.Equal(t, roadPath, route.Path)
	provider.AssertExpectations(t)
}

func TestComputeRoute_ProviderEmptyPath(t *testing.T) {
	provider := &MockProvider{}
	router := NewRouter(provider)
	alert := geo.Location{Latitude: 0.1, Longitude: 0.1}

	provider.On("Directions", mock.Anything, mock.Anything).
		Return(&Directions{DistanceMeters: 20000, DurationSeconds: 60}, nil)

	route := await(t, router.ComputeRoute(testContext(), alert, testStations()))

	assert.Equal(t, SourceProvider, route.Source)
	require.Len(t, route.Path, 2)
	assert.True(t, route.Path[1].SameCoordinates(alert))
	assert.Equal(t, 1, route.DurationMinutes)
}

func TestComputeRoute_ProviderFailureFallsBack(t *testing.T) {
	tests := []struct {
		name string
		dir  *Directions
		err  error
	}{
		{"unavailable", nil, ErrProviderUnavailable},
		{"non-ok status", nil, errors.New("ZERO_RESULTS")},
		{"nil result", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &MockProvider{}
			provider.On("Directions", mock.Anything, mock.Anything).Return(tt.dir, tt.err)
			router := NewRouter(provider)
			alert := geo.Location{Latitude: 0, Longitude: 0.01}

			route := await(t, router.ComputeRoute(testContext(), alert, testStations()))

			assert.Equal(t, "s1", route.OriginStationID)
			assert.Equal(t, SourceFallback, route.Source)
			assert.InDelta(t, geo.DistanceKm(geo.Location{}, alert)*1.3, route.DistanceKm, 1e-9)
			assert.Len(t, route.Path, 2)
		})
	}
}

func TestComputeRoute_ProviderPanicFallsBack(t *testing.T) {
	provider := &MockProvider{}
	provider.On("Directions", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		panic("boom")
	})
	router := NewRouter(provider)

	route := await(t, router.ComputeRoute(testContext(), geo.Location{Latitude: 0.2, Longitude: 0.2}, testStations()))
	assert.Equal(t, SourceFallback, route.Source)
}

func TestComputeRoute_ProviderTimeout(t *testing.T) {
	provider := &MockProvider{}
	provider.On("Directions", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		<-args.Get(0).(context.Context).Done()
	}).Return(nil, context.DeadlineExceeded)
	router := NewRouter(provider, WithTimeout(20*time.Millisecond))

	route := await(t, router.ComputeRoute(testContext(), geo.Location{Latitude: 0.2, Longitude: 0.2}, testStations()))
	assert.Equal(t, SourceFallback, route.Source)
}

func TestPending_AbandonedAwait(t *testing.T) {
	release := make(chan struct{})
	provider := &MockProvider{}
	provider.On("Directions", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		<-release
	}).Return(&Directions{DistanceMeters: 1000, DurationSeconds: 120}, nil)
	router := NewRouter(provider)

	p := router.ComputeRoute(testContext(), geo.Location{Latitude: 0.2, Longitude: 0.2}, testStations())
	assert.False(t, p.Ready())

	ctx, cancel := context.WithCancel(testContext())
	cancel()
	_, err := p.Await(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	// The late result is still delivered to anyone who waits for it
	close(release)
	route := await(t, p)
	assert.Equal(t, SourceProvider, route.Source)
}

func TestComputeRoute_RecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := metrics.NewCollector(reg)
	require.NoError(t, err)

	router := NewRouter(NullProvider{}, WithMetrics(collector))
	await(t, router.ComputeRoute(testContext(), geo.Location{Latitude: 0, Longitude: 0.01}, testStations()))

	assert.Equal(t, 1.0, testutil.ToFloat64(collector.RoutesComputed.WithLabelValues(metrics.SourceFallback)))
}

func TestNearestStation_TieGoesToFirst(t *testing.T) {
	stations := []Station{
		{ID: "east", Location: geo.Location{Latitude: 0, Longitude: 0.01}},
		{ID: "west", Location: geo.Location{Latitude: 0, Longitude: -0.01}},
	}

	station, km, err := NearestStation(geo.Location{}, stations)
	require.NoError(t, err)
	assert.Equal(t, "east", station.ID)
	assert.InDelta(t, 1.11195, km, 1e-4)

	_, _, err = NearestStation(geo.Location{}, nil)
	assert.ErrorIs(t, err, ErrNoStationsAvailable)
}

func TestComputeRoute_NaNDestinationUsesFirstStation(t *testing.T) {
	router := NewRouter(NullProvider{})

	route := await(t, router.ComputeRoute(testContext(), geo.Location{Latitude: math.NaN(), Longitude: 0}, testStations()))
	assert.Equal(t, "s1", route.OriginStationID)
	assert.Equal(t, 0, route.DurationMinutes)
}

func TestFallbackDurationMinutes(t *testing.T) {
	assert.Equal(t, 0, FallbackDurationMinutes(0))
	assert.Equal(t, 0, FallbackDurationMinutes(math.NaN()))
	assert.Equal(t, 1, FallbackDurationMinutes(0.1))
	assert.Equal(t, 60, FallbackDurationMinutes(40))
	assert.Equal(t, 61, FallbackDurationMinutes(40.01))
}

func testContext() context.Context {
	return logging.EnsureLogger(context.Background())
}
