package cache

import (
	"context"
	"testing"
	"time"

	"github.com/dpup/prefab/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpup/wildwatch/server/internal/clients/weather"
	"github.com/dpup/wildwatch/server/internal/lib/geo"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) now() time.Time          { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestCache() (*Cache, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	c := NewCache()
	c.now = clock.now
	return c, clock
}

func TestCache_SetGet(t *testing.T) {
	c, clock := newTestCache()

	type payload struct {
		Name  string
		Count int
	}
	require.NoError(t, c.Set("k", payload{"alpha", 3}, time.Minute, "test"))

	var got payload
	found, err := c.Get("k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload{"alpha", 3}, got)
	assert.False(t, c.IsStale("k"))

	clock.advance(2 * time.Minute)
	found, err = c.Get("k", &got)
	require.NoError(t, err)
	assert.False(t, found, "expired entries are not served")
	assert.True(t, c.IsStale("k"))
	assert.True(t, c.IsStale("missing"))
}

func TestCache_GetStale(t *testing.T) {
	c, clock := newTestCache()
	require.NoError(t, c.Set("k", "v", time.Minute, "test"))

	var got string
	found, stale, err := c.GetStale("k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.False(t, stale)

	clock.advance(time.Hour)
	found, stale, err = c.GetStale("k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, stale)
	assert.Equal(t, "v", got)

	found, _, err = c.GetStale("missing", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCache_UnmarshalError(t *testing.T) {
	c, _ := newTestCache()
	require.NoError(t, c.Set("k", "not a number", time.Minute, "test"))

	var n int
	_, err := c.Get("k", &n)
	assert.ErrorContains(t, err, "failed to unmarshal cached data")
}

func TestCache_CleanupAndStats(t *testing.T) {
	c, clock := newTestCache()
	require.NoError(t, c.Set("short", 1, time.Minute, "test"))
	clock.advance(time.Second)
	require.NoError(t, c.Set("long", 2, time.Hour, "test"))

	clock.advance(2 * time.Minute)
	stats := c.Stats()
	assert.Equal(t, 2, stats.TotalEntries)
	assert.Equal(t, 1, stats.FreshEntries)
	assert.Equal(t, 1, stats.StaleEntries)
	assert.True(t, stats.OldestEntry.Before(stats.NewestEntry))

	assert.Equal(t, 1, c.CleanupStale())
	assert.Equal(t, []string{"long"}, c.Keys())

	c.Delete("long")
	assert.Empty(t, c.Keys())

	require.NoError(t, c.Set("x", 1, time.Hour, "test"))
	c.Clear()
	assert.Empty(t, c.Keys())
}

func TestCache_StartPeriodicCleanupStops(t *testing.T) {
	c := NewCache()
	require.NoError(t, c.Set("gone", 1, time.Nanosecond, "test"))

	ctx, cancel := context.WithCancel(logging.EnsureLogger(context.Background()))
	c.StartPeriodicCleanup(ctx, 5*time.Millisecond)

	assert.Eventually(t, func() bool { return len(c.Keys()) == 0 }, time.Second, 5*time.Millisecond)
	cancel()
}

func TestCache_StartPeriodicCleanupOnBackgroundContext(t *testing.T) {
	c := NewCache()
	require.NoError(t, c.Set("gone", 1, time.Nanosecond, "test"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c.StartPeriodicCleanup(ctx, 5*time.Millisecond)

	assert.Eventually(t, func() bool { return len(c.Keys()) == 0 }, time.Second, 5*time.Millisecond)
}

func TestBriefingAdapter(t *testing.T) {
	c, clock := newTestCache()
	adapter := NewBriefingAdapter(c)

	_, found, err := adapter.GetBriefing("abc")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, adapter.SetBriefing("abc", "Keep children indoors.", 24*time.Hour))
	text, found, err := adapter.GetBriefing("abc")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Keep children indoors.", text)

	clock.advance(25 * time.Hour)
	_, found, err = adapter.GetBriefing("abc")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSunStore(t *testing.T) {
	c, clock := newTestCache()
	store := NewSunStore(c, 12*time.Hour)

	assert.True(t, store.NeedsRefresh("hq"))
	_, found, _ := store.Lookup("hq")
	assert.False(t, found)

	sun := weather.SunTimes{
		Location: geo.Location{Latitude: -3.39642, Longitude: 37.676531},
		Sunrise:  time.Date(2024, 5, 1, 3, 29, 0, 0, time.UTC),
		Sunset:   time.Date(2024, 5, 1, 15, 31, 0, 0, time.UTC),
	}
	require.NoError(t, store.Put("hq", sun))

	got, found, stale := store.Lookup("hq")
	assert.True(t, found)
	assert.False(t, stale)
	assert.True(t, got.Sunrise.Equal(sun.Sunrise))
	assert.False(t, store.NeedsRefresh("hq"))

	clock.advance(13 * time.Hour)
	_, found, stale = store.Lookup("hq")
	assert.True(t, found)
	assert.True(t, stale)
	assert.True(t, store.NeedsRefresh("hq"))
}
