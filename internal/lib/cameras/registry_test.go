package cameras

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpup/wildwatch/server/internal/lib/geo"
)

var now = time.Date(2024, 5, 1, 18, 30, 0, 0, time.UTC)

func TestNewRegistry_Defaults(t *testing.T) {
	r := NewRegistry(nil)

	assert.Equal(t, []string{"cam1", "cam2", "cam3"}, r.IDs())
	assert.Equal(t, DefaultActivityWindow, r.Window())
	assert.True(t, r.Known("cam2"))
	assert.False(t, r.Known("CAM-002"))

	for _, c := range r.List() {
		assert.Equal(t, Online, c.Status)
		assert.Nil(t, c.LastDetection)
		assert.Zero(t, c.DetectionsInWindow)
	}
}

func TestNewRegistry_DuplicateIDsKeepFirst(t *testing.T) {
	r := NewRegistry([]Camera{
		{ID: "north", Name: "North Gate"},
		{ID: "north", Name: "Shadow"},
	}, WithWindow(-time.Hour))

	c, err := r.Get("north")
	require.NoError(t, err)
	assert.Equal(t, "North Gate", c.Name)
	assert.Equal(t, Online, c.Status, "empty status defaults to online")
	assert.Len(t, r.IDs(), 1)
	assert.Equal(t, DefaultActivityWindow, r.Window())
}

func TestRecordDetection_SlidingWindow(t *testing.T) {
	clock := now
	r := NewRegistry(nil, WithClock(func() time.Time { return clock }))

	r.RecordDetection("cam1", now.Add(-25*time.Hour))
	r.RecordDetection("cam1", now.Add(-2*time.Hour))
	r.RecordDetection("cam1", now.Add(-10*time.Minute))
	r.RecordDetection("cam1", now.Add(-3*time.Hour)) // out of order
	r.RecordDetection("ghost", now)

	c, err := r.Get("cam1")
	require.NoError(t, err)
	assert.Equal(t, 3, c.DetectionsInWindow)
	require.NotNil(t, c.LastDetection)
	assert.Equal(t, now.Add(-10*time.Minute), *c.LastDetection)

	clock = now.Add(22*time.Hour + time.Minute)
	c, err = r.Get("cam1")
	require.NoError(t, err)
	assert.Equal(t, 1, c.DetectionsInWindow)
	assert.Equal(t, now.Add(-10*time.Minute), *c.LastDetection, "last detection outlives the window")

	_, err = r.Get("ghost")
	assert.ErrorIs(t, err, ErrCameraNotFound)
}

func TestSetStatus(t *testing.T) {
	r := NewRegistry([]Camera{{ID: "c1", Name: "River", Location: geo.Location{Latitude: -3.4, Longitude: 37.7}}})

	c, err := r.SetStatus("c1", "maintenance")
	require.NoError(t, err)
	assert.Equal(t, Maintenance, c.Status)

	_, err = r.SetStatus("c1", "BROKEN")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = r.SetStatus("c9", Offline)
	assert.ErrorIs(t, err, ErrCameraNotFound)

	list := r.List()
	require.Len(t, list, 1)
	assert.Equal(t, Maintenance, list[0].Status)
}

func TestRegistry_ConcurrentRecording(t *testing.T) {
	r := NewRegistry(nil, WithClock(func() time.Time { return now }))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.RecordDetection("cam3", now.Add(-time.Duration(i)*time.Minute))
		}(i)
	}
	wg.Wait()

	c, err := r.Get("cam3")
	require.NoError(t, err)
	assert.Equal(t, 50, c.DetectionsInWindow)
	assert.Equal(t, now, *c.LastDetection)
}
