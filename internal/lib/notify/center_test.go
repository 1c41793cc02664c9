package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dpup/prefab/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dpup/wildwatch/server/internal/lib/alerts"
	"github.com/dpup/wildwatch/server/internal/lib/geo"
	"github.com/dpup/wildwatch/server/internal/lib/risk"
)

// MockBriefer is a mock implementation of Briefer
type MockBriefer struct {
	mock.Mock
}

func (m *MockBriefer) Brief(ctx context.Context, req BriefingRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockBriefer) HealthCheck(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

var now = time.Date(2024, 5, 1, 18, 30, 0, 0, time.UTC)

func testAlert(id string) alerts.Alert {
	seconds := 18
	met := true
	return alerts.Alert{
		DetectionEvent: alerts.DetectionEvent{
			ID:                         id,
			Species:                    risk.Elephant,
			Timestamp:                  now.Add(-time.Minute),
			Location:                   geo.Location{Latitude: -3.39642, Longitude: 37.676531, Address: "Mtakuja Primary School"},
			DistanceToSettlementMeters: 350,
			Direction:                  "N",
		},
		RiskLevel:           risk.High,
		TimeOfDay:           risk.Night,
		ETAMinutes:          2,
		Status:              alerts.Dispatched,
		ResponseTimeSeconds: &seconds,
		MetSLA:              &met,
	}
}

func newTestCenter(opts ...Option) *Center {
	return NewCenter(nil, append([]Option{WithClock(func() time.Time { return now })}, opts...)...)
}

func TestHandleEvent_Created(t *testing.T) {
	c := newTestCenter()
	ctx := testContext()

	c.HandleEvent(ctx, alerts.Event{Type: alerts.EventCreated, Alert: testAlert("a1")})

	list := c.List()
	require.Len(t, list, 1)
	n := list[0]
	assert.Equal(t, TypeAlert, n.Type)
	assert.Equal(t, "a1", n.AlertID)
	assert.Equal(t, "ELEPHANT Detected", n.Title)
	assert.Contains(t, n.Message, "A elephant has been detected at Mtakuja Primary School (-3.3964, 37.6765)")
	assert.Contains(t, n.Message, "Distance: 350m")
	assert.Equal(t, SafetyMessage(risk.Elephant), n.SafetyMessage)
	assert.Equal(t, now.Add(-time.Minute), n.Timestamp)
	assert.Equal(t, []Group{GroupKWS, GroupKRCS, GroupCommunity}, n.SentTo)
	assert.False(t, n.Read)
	assert.Contains(t, n.ID, "notif-")

	for _, r := range c.Recipients() {
		assert.Equal(t, 1, r.NotificationCount, r.Group)
	}
}

func TestHandleEvent_DispatchAndResolve(t *testing.T) {
	c := newTestCenter()
	ctx := testContext()

	c.HandleEvent(ctx, alerts.Event{Type: alerts.EventDispatched, Alert: testAlert("a1")})
	c.HandleEvent(ctx, alerts.Event{Type: alerts.EventResolved, Alert: testAlert("a1")})

	list := c.List()
	require.Len(t, list, 2)
	assert.Equal(t, TypeResolved, list[0].Type, "newest first")
	assert.Empty(t, list[0].SafetyMessage)
	assert.Equal(t, TypeDispatch, list[1].Type)
	assert.Contains(t, list[1].Message, "Response time: 18s.")
	assert.Equal(t, now, list[1].Timestamp)
}

func TestCenter_ReadAndClear(t *testing.T) {
	c := newTestCenter()
	ctx := testContext()
	for _, id := range []string{"a1", "a2", "a3"} {
		c.HandleEvent(ctx, alerts.Event{Type: alerts.EventCreated, Alert: testAlert(id)})
	}
	assert.Equal(t, 3, c.UnreadCount())

	list := c.List()
	require.NoError(t, c.MarkRead(list[0].ID))
	assert.Equal(t, 2, c.UnreadCount())
	assert.ErrorIs(t, c.MarkRead("nope"), ErrNotificationNotFound)

	assert.Equal(t, 2, c.MarkAllRead())
	assert.Equal(t, 0, c.UnreadCount())
	assert.Equal(t, 0, c.MarkAllRead())

	require.NoError(t, c.Clear(list[1].ID))
	assert.Len(t, c.List(), 2)
	assert.ErrorIs(t, c.Clear(list[1].ID), ErrNotificationNotFound)

	c.ClearAll()
	assert.Empty(t, c.List())
}

func TestCenter_RecipientSettings(t *testing.T) {
	c := newTestCenter()
	ctx := testContext()

	_, err := c.UpdateRecipient(GroupKRCS, false, true)
	require.NoError(t, err)
	r, err := c.UpdateRecipient(GroupCommunity, true, false)
	require.NoError(t, err)
	assert.False(t, r.AutoNotify)
	_, err = c.UpdateRecipient("PRESS", true, true)
	assert.ErrorIs(t, err, ErrUnknownGroup)

	n := c.Publish(ctx, Notification{Title: "t", Message: "m"})
	assert.Equal(t, []Group{GroupKWS}, n.SentTo)
	assert.Equal(t, now, n.Timestamp)
}

func TestCenter_SendCustom(t *testing.T) {
	c := newTestCenter()
	ctx := testContext()
	_, err := c.UpdateRecipient(GroupKRCS, false, false)
	require.NoError(t, err)

	n, err := c.SendCustom(ctx, "Drill", "Evacuation drill at 10:00", []Group{GroupKWS, GroupKRCS})
	require.NoError(t, err)
	assert.Equal(t, TypeCustom, n.Type)
	assert.Equal(t, []Group{GroupKWS}, n.SentTo, "disabled groups are skipped")

	_, err = c.SendCustom(ctx, "x", "  ", []Group{GroupKWS})
	assert.ErrorIs(t, err, ErrEmptyMessage)
	_, err = c.SendCustom(ctx, "x", "hello", []Group{"PRESS"})
	assert.ErrorIs(t, err, ErrUnknownGroup)

	counts := map[Group]int{}
	for _, r := range c.Recipients() {
		counts[r.Group] = r.NotificationCount
	}
	assert.Equal(t, map[Group]int{GroupKWS: 1, GroupKRCS: 0, GroupCommunity: 0}, counts)
}

func TestCenter_AttachesBriefing(t *testing.T) {
	briefer := &MockBriefer{}
	briefer.On("Brief", mock.Anything, mock.MatchedBy(func(req BriefingRequest) bool {
		return req.AlertID == "a1" && req.Species == risk.Elephant && req.ETAMinutes == 2
	})).Return("Elephants near the school. Stay inside.", nil)

	c := newTestCenter(WithBriefer(briefer))
	c.HandleEvent(testContext(), alerts.Event{Type: alerts.EventCreated, Alert: testAlert("a1")})
	c.Wait()

	list := c.List()
	require.Len(t, list, 1)
	assert.Equal(t, "Elephants near the school. Stay inside.", list[0].Briefing)
	briefer.AssertExpectations(t)
}

func TestCenter_BriefingDoesNotBlockPublish(t *testing.T) {
	release := make(chan struct{})
	briefer := &MockBriefer{}
	briefer.On("Brief", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		<-release
	}).Return("", errors.New("model unavailable"))

	c := newTestCenter(WithBriefer(briefer))
	c.HandleEvent(testContext(), alerts.Event{Type: alerts.EventCreated, Alert: testAlert("a1")})

	// Published before the briefer returns
	assert.Len(t, c.List(), 1)

	close(release)
	c.Wait()
	assert.Empty(t, c.List()[0].Briefing)
}

func TestCenter_OnlyCreatedEventsAreBriefed(t *testing.T) {
	briefer := &MockBriefer{}
	c := newTestCenter(WithBriefer(briefer))

	c.HandleEvent(testContext(), alerts.Event{Type: alerts.EventResolved, Alert: testAlert("a1")})
	c.Wait()

	briefer.AssertNotCalled(t, "Brief", mock.Anything, mock.Anything)
}

func TestCenter_ConcurrentPublish(t *testing.T) {
	c := newTestCenter()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Publish(testContext(), Notification{Title: "t", Message: "m"})
		}()
	}
	wg.Wait()

	assert.Len(t, c.List(), 50)
	assert.Equal(t, 50, c.UnreadCount())
}

func TestCenter_ResolvedWithIncidentReport(t *testing.T) {
	c := newTestCenter()
	ctx := testContext()

	a := testAlert("a1")
	a.Incident = &alerts.IncidentReport{Description: "Herd moved on", Outcome: "Fence repaired", Status: alerts.IncidentResolved}
	c.HandleEvent(ctx, alerts.Event{Type: alerts.EventResolved, Alert: a})

	b := testAlert("a2")
	b.Incident = &alerts.IncidentReport{Description: "Cow", Status: alerts.IncidentFalsePositive, IsFalsePositive: true}
	c.HandleEvent(ctx, alerts.Event{Type: alerts.EventResolved, Alert: b})

	list := c.List()
	require.Len(t, list, 2)
	assert.Equal(t, "ELEPHANT Alert Closed: False Positive", list[0].Title)
	assert.Contains(t, list[0].Message, "false positive")
	assert.Contains(t, list[1].Message, "Outcome: Fence repaired")
}

func TestCenter_DeliveryHook(t *testing.T) {
	var community []string
	c := newTestCenter(WithDelivery(func(_ context.Context, n Notification) {
		if n.Includes(GroupCommunity) {
			community = append(community, n.ID)
		}
	}))
	ctx := testContext()

	published := c.Publish(ctx, Notification{Title: "t", Message: "m"})
	custom, err := c.SendCustom(ctx, "Rangers only", "Shift change", []Group{GroupKWS})
	require.NoError(t, err)
	assert.False(t, custom.Includes(GroupCommunity))

	_, err = c.UpdateRecipient(GroupCommunity, false, false)
	require.NoError(t, err)
	c.Publish(ctx, Notification{Title: "t", Message: "m"})

	assert.Equal(t, []string{published.ID}, community)
}

func TestSafetyMessage(t *testing.T) {
	assert.Contains(t, SafetyMessage(risk.Lion), "Lions are predators")
	assert.Contains(t, SafetyMessage(risk.Rhino), "charge if threatened")
	assert.Contains(t, SafetyMessage(risk.Buffalo), "aggressive")
	assert.Contains(t, SafetyMessage(risk.Elephant), "unpredictable")
	assert.Equal(t, defaultSafetyMessage, SafetyMessage(risk.Unknown))
}

func testContext() context.Context {
	return logging.EnsureLogger(context.Background())
}

func TestPublish_BackgroundContext(t *testing.T) {
	delivered := 0
	c := newTestCenter(WithDelivery(func(ctx context.Context, n Notification) { delivered++ }))
	ctx := context.Background()

	assert.NotPanics(t, func() {
		c.HandleEvent(ctx, alerts.Event{Type: alerts.EventCreated, Alert: testAlert("a1")})
		_, err := c.SendCustom(ctx, "Drill", "Evacuation drill at 10:00", []Group{GroupKWS})
		require.NoError(t, err)
	})
	assert.Equal(t, 2, delivered)
}
