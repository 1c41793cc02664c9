package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dpup/wildwatch/server/internal/config"
	"github.com/dpup/wildwatch/server/internal/lib/alerts"
	"github.com/dpup/wildwatch/server/internal/lib/cameras"
	"github.com/dpup/wildwatch/server/internal/lib/geo"
	"github.com/dpup/wildwatch/server/internal/lib/risk"
	"github.com/dpup/wildwatch/server/internal/lib/trajectory"
)

// MockCreator is a mock implementation of DetectionCreator
type MockCreator struct {
	mock.Mock
}

func (m *MockCreator) Create(ctx context.Context, ev alerts.DetectionEvent) (alerts.Alert, error) {
	args := m.Called(ctx, ev)
	return args.Get(0).(alerts.Alert), args.Error(1)
}

func testFeedConfig() config.FeedConfig {
	cfg := config.DefaultConfig().Feed
	cfg.Enabled = true
	cfg.Schedule = "@every 1s"
	return cfg
}

func TestFeed_GenerateRanges(t *testing.T) {
	cfg := testFeedConfig()
	feed := NewFeedService(&MockCreator{}, cfg, 42)
	feed.now = func() time.Time { return detectedAt }

	center := cfg.Center()
	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		ev := feed.Generate()

		assert.True(t, strings.HasPrefix(ev.ID, "det-"))
		assert.False(t, seen[ev.ID], "ids are unique")
		seen[ev.ID] = true

		assert.Contains(t, feedSpecies, ev.Species)
		assert.True(t, trajectory.IsKnownDirection(ev.Direction), ev.Direction)
		assert.GreaterOrEqual(t, ev.DistanceToSettlementMeters, 100.0)
		assert.LessOrEqual(t, ev.DistanceToSettlementMeters, 1099.0)
		assert.GreaterOrEqual(t, ev.ConfidencePercent, 80.0)
		assert.LessOrEqual(t, ev.ConfidencePercent, 99.0)
		assert.InDelta(t, center.Latitude, ev.Location.Latitude, cfg.SpreadDegrees)
		assert.InDelta(t, center.Longitude, ev.Location.Longitude, cfg.SpreadDegrees)
		assert.True(t, geo.IsValid(ev.Location))
		assert.Equal(t, detectedAt, ev.Timestamp)
	}
}

func TestFeed_SeedIsDeterministic(t *testing.T) {
	a := NewFeedService(&MockCreator{}, testFeedConfig(), 7).Generate()
	b := NewFeedService(&MockCreator{}, testFeedConfig(), 7).Generate()

	assert.Equal(t, a.Species, b.Species)
	assert.Equal(t, a.Location, b.Location)
	assert.Equal(t, a.Direction, b.Direction)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestFeed_EmitOnce(t *testing.T) {
	clock := &testClock{t: detectedAt}
	manager := alerts.NewManager(alerts.WithClock(clock))
	feed := NewFeedService(manager, testFeedConfig(), 1)
	feed.now = clock.Now

	alert, err := feed.EmitOnce(testContext())
	require.NoError(t, err)
	assert.Equal(t, alerts.Pending, alert.Status)
	assert.Equal(t, risk.Night, alert.TimeOfDay)
	assert.Len(t, alert.PredictedTrajectory, 4)
	assert.Len(t, manager.List(), 1)
}

func TestFeed_UsesRegisteredCameras(t *testing.T) {
	registry := cameras.NewRegistry(nil, cameras.WithClock(func() time.Time { return detectedAt }))
	manager := alerts.NewManager(alerts.WithCameras(registry))
	feed := NewFeedService(manager, testFeedConfig(), 5, registry.IDs()...)
	feed.now = func() time.Time { return detectedAt }

	for i := 0; i < 20; i++ {
		_, err := feed.EmitOnce(testContext())
		require.NoError(t, err)
	}

	total := 0
	for _, c := range registry.List() {
		total += c.DetectionsInWindow
	}
	assert.Equal(t, 20, total)

	ev := NewFeedService(&MockCreator{}, testFeedConfig(), 5).Generate()
	assert.True(t, strings.HasPrefix(ev.CameraID, "CAM-"))
}

func TestFeed_EmitOnceError(t *testing.T) {
	creator := &MockCreator{}
	creator.On("Create", mock.Anything, mock.Anything).Return(alerts.Alert{}, alerts.ErrDuplicateAlert)

	_, err := NewFeedService(creator, testFeedConfig(), 1).EmitOnce(testContext())
	assert.ErrorIs(t, err, alerts.ErrDuplicateAlert)
	assert.ErrorContains(t, err, "synthetic detection")
}

func TestFeed_StartStop(t *testing.T) {
	manager := alerts.NewManager()
	feed := NewFeedService(manager, testFeedConfig(), 3)

	ctx, cancel := context.WithCancel(testContext())
	defer cancel()

	require.NoError(t, feed.Start(ctx))
	assert.True(t, feed.IsRunning())
	require.NoError(t, feed.Start(ctx), "starting twice is a no-op")

	assert.Eventually(t, func() bool { return len(manager.List()) > 0 }, 3*time.Second, 50*time.Millisecond)

	cancel()
	assert.Eventually(t, func() bool { return !feed.IsRunning() }, time.Second, 10*time.Millisecond)
	feed.Stop()
}

func TestFeed_InvalidSchedule(t *testing.T) {
	cfg := testFeedConfig()
	cfg.Schedule = "whenever"
	feed := NewFeedService(&MockCreator{}, cfg, 1)

	err := feed.Start(testContext())
	assert.ErrorContains(t, err, "invalid feed schedule")
	assert.False(t, feed.IsRunning())
}

func TestFeed_TickRecoversFromPanic(t *testing.T) {
	creator := &MockCreator{}
	creator.On("Create", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		panic("camera offline")
	}).Return(alerts.Alert{}, errors.New("unreachable"))

	feed := NewFeedService(creator, testFeedConfig(), 1)
	assert.NotPanics(t, func() { feed.tick(testContext()) })
	assert.NotPanics(t, func() { feed.tick(context.Background()) })
}

func TestFeed_TickOnBackgroundContext(t *testing.T) {
	manager := alerts.NewManager()
	feed := NewFeedService(manager, testFeedConfig(), 1)

	// Cron ticks carry the server's background context
	assert.NotPanics(t, func() { feed.tick(context.Background()) })
	assert.Len(t, manager.List(), 1)

	creator := &MockCreator{}
	creator.On("Create", mock.Anything, mock.Anything).Return(alerts.Alert{}, alerts.ErrDuplicateAlert)
	assert.NotPanics(t, func() { NewFeedService(creator, testFeedConfig(), 1).tick(context.Background()) })
}
