package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dpup/prefab/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dpup/wildwatch/server/internal/cache"
	"github.com/dpup/wildwatch/server/internal/clients/weather"
	"github.com/dpup/wildwatch/server/internal/config"
	"github.com/dpup/wildwatch/server/internal/lib/geo"
	"github.com/dpup/wildwatch/server/internal/lib/risk"
)

// MockFetcher is a mock implementation of SunTimesFetcher
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) GetSunTimes(ctx context.Context, loc geo.Location) (*weather.SunTimes, error) {
	args := m.Called(ctx, loc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*weather.SunTimes), args.Error(1)
}

var nairobi = risk.LoadZone("Africa/Nairobi", 3)

// Sunrise 06:29 and sunset 18:31 local on 2024-05-01
var mtakujaSun = &weather.SunTimes{
	Location: geo.Location{Latitude: -3.39642, Longitude: 37.676531},
	Sunrise:  time.Unix(1714534140, 0).UTC(),
	Sunset:   time.Unix(1714577460, 0).UTC(),
}

func local(day, hour, minute int) time.Time {
	return time.Date(2024, 5, day, hour, minute, 0, 0, nairobi)
}

func daylightConfig(sites ...config.SiteConfig) config.DaylightConfig {
	return config.DaylightConfig{
		Enabled:        true,
		Schedule:       "@every 6h",
		StaleThreshold: 24 * time.Hour,
		Sites:          sites,
	}
}

var mtakujaSite = config.SiteConfig{ID: "mtakuja", Name: "Mtakuja", Lat: -3.39642, Lon: 37.676531}

func TestDaylight_FallsBackToHourRule(t *testing.T) {
	d := NewDaylightService(&MockFetcher{}, cache.NewSunStore(cache.NewCache(), time.Hour),
		daylightConfig(mtakujaSite), risk.HourRule{Zone: nairobi})

	loc := geo.Location{Latitude: -3.4, Longitude: 37.68}
	assert.Equal(t, risk.Day, d.TimeOfDay(loc, local(1, 6, 10)))
	assert.Equal(t, risk.Night, d.TimeOfDay(loc, local(1, 18, 15)))
}

func TestDaylight_UsesCachedSunTimes(t *testing.T) {
	fetcher := &MockFetcher{}
	fetcher.On("GetSunTimes", mock.Anything, mtakujaSite.Location()).Return(mtakujaSun, nil).Once()

	d := NewDaylightService(fetcher, cache.NewSunStore(cache.NewCache(), time.Hour),
		daylightConfig(mtakujaSite), risk.HourRule{Zone: nairobi})

	n, err := d.Refresh(testContext())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	loc := geo.Location{Latitude: -3.4, Longitude: 37.68}
	assert.Equal(t, risk.Night, d.TimeOfDay(loc, local(1, 6, 10)), "before sunrise")
	assert.Equal(t, risk.Day, d.TimeOfDay(loc, local(1, 6, 29)), "sunrise is daylight")
	assert.Equal(t, risk.Day, d.TimeOfDay(loc, local(1, 18, 15)), "before sunset")
	assert.Equal(t, risk.Night, d.TimeOfDay(loc, local(1, 18, 31)), "sunset is night")
	assert.Equal(t, risk.Day, d.TimeOfDay(loc, local(3, 18, 15)), "applied on later days by wall clock")

	fetcher.AssertExpectations(t)
}

func TestDaylight_NearestSite(t *testing.T) {
	farSite := config.SiteConfig{ID: "far", Name: "Far Camp", Lat: -1.0, Lon: 36.0}
	fetcher := &MockFetcher{}
	fetcher.On("GetSunTimes", mock.Anything, mtakujaSite.Location()).Return(mtakujaSun, nil)
	fetcher.On("GetSunTimes", mock.Anything, farSite.Location()).Return(nil, errors.New("rate limit exceeded"))

	d := NewDaylightService(fetcher, cache.NewSunStore(cache.NewCache(), time.Hour),
		daylightConfig(farSite, mtakujaSite), risk.HourRule{Zone: nairobi})

	n, err := d.Refresh(testContext())
	assert.Equal(t, 1, n)
	assert.ErrorContains(t, err, "site far")

	// Near Mtakuja uses its sun times; near the far camp nothing is cached
	assert.Equal(t, risk.Day, d.TimeOfDay(geo.Location{Latitude: -3.39, Longitude: 37.67}, local(1, 18, 15)))
	assert.Equal(t, risk.Night, d.TimeOfDay(geo.Location{Latitude: -1.01, Longitude: 36.01}, local(1, 18, 15)))
}

func TestDaylight_NoSites(t *testing.T) {
	d := NewDaylightService(&MockFetcher{}, cache.NewSunStore(cache.NewCache(), time.Hour),
		daylightConfig(), risk.HourRule{Zone: nairobi})

	n, err := d.Refresh(testContext())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, risk.Night, d.TimeOfDay(geo.Location{}, local(1, 22, 0)))
}

func TestDaylight_StartRefreshesImmediately(t *testing.T) {
	fetcher := &MockFetcher{}
	fetcher.On("GetSunTimes", mock.Anything, mock.Anything).Return(mtakujaSun, nil)
	store := cache.NewSunStore(cache.NewCache(), time.Hour)
	d := NewDaylightService(fetcher, store, daylightConfig(mtakujaSite), risk.HourRule{Zone: nairobi})

	ctx, cancel := context.WithCancel(testContext())
	defer cancel()
	require.NoError(t, d.Start(ctx))

	assert.Eventually(t, func() bool {
		_, found, _ := store.Lookup("mtakuja")
		return found
	}, 2*time.Second, 10*time.Millisecond)

	d.Stop()
	d.Stop()
}

func TestDaylight_ScheduledRefreshSkipsFreshSites(t *testing.T) {
	fetcher := &MockFetcher{}
	fetcher.On("GetSunTimes", mock.Anything, mtakujaSite.Location()).Return(mtakujaSun, nil).Once()
	store := cache.NewSunStore(cache.NewCache(), time.Hour)
	d := NewDaylightService(fetcher, store, daylightConfig(mtakujaSite), risk.HourRule{Zone: nairobi})

	// Scheduled refreshes run on the server's background context
	d.refreshAndLog(context.Background())
	d.refreshAndLog(context.Background())

	assert.False(t, store.NeedsRefresh("mtakuja"))
	fetcher.AssertExpectations(t)
}

func TestDaylight_RefreshFailureOnBackgroundContext(t *testing.T) {
	fetcher := &MockFetcher{}
	fetcher.On("GetSunTimes", mock.Anything, mock.Anything).Return(nil, errors.New("rate limit exceeded"))
	d := NewDaylightService(fetcher, cache.NewSunStore(cache.NewCache(), time.Hour),
		daylightConfig(mtakujaSite), risk.HourRule{Zone: nairobi})

	assert.NotPanics(t, func() { d.refreshAndLog(context.Background()) })
}

func testContext() context.Context {
	return logging.EnsureLogger(context.Background())
}
