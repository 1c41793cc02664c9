package alerts

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dpup/prefab/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpup/wildwatch/server/internal/lib/geo"
	"github.com/dpup/wildwatch/server/internal/lib/risk"
	"github.com/dpup/wildwatch/server/internal/metrics"
)

type testClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// 21:30 in Nairobi
var detectedAt = time.Date(2024, 5, 1, 18, 30, 0, 0, time.UTC)

func newTestManager(opts ...Option) (*Manager, *testClock) {
	clock := &testClock{t: detectedAt}
	return NewManager(append([]Option{WithClock(clock)}, opts...)...), clock
}

func lionEvent(id string) DetectionEvent {
	return DetectionEvent{
		ID:                         id,
		Species:                    risk.Lion,
		Timestamp:                  detectedAt,
		Location:                   geo.Location{Latitude: -3.39642, Longitude: 37.676531, Region: "Mtakuja"},
		DistanceToSettlementMeters: 80,
		ConfidencePercent:          95,
		Direction:                  "ne",
	}
}

func TestCreate_EnrichesDetection(t *testing.T) {
	m, _ := newTestManager()
	ctx := testContext()

	a, err := m.Create(ctx, lionEvent("a1"))
	require.NoError(t, err)

	assert.Equal(t, Pending, a.Status)
	assert.Equal(t, risk.Night, a.TimeOfDay)
	assert.Equal(t, risk.Critical, a.RiskLevel)
	assert.Equal(t, 105, a.RiskScore)
	assert.Equal(t, "NE", a.Direction)
	assert.Equal(t, 1, a.ETAMinutes)
	assert.InDelta(t, 104, a.RouteDistanceMeters, 1e-9)

	require.Len(t, a.PredictedTrajectory, 4)
	assert.True(t, a.PredictedTrajectory[0].SameCoordinates(a.Location))
	assert.Greater(t, a.PredictedTrajectory[3].Latitude, a.Location.Latitude)
	assert.Greater(t, a.PredictedTrajectory[3].Longitude, a.Location.Longitude)

	assert.Nil(t, a.DispatchedAt)
	assert.Nil(t, a.ResponseTimeSeconds)
}

func TestCreate_Daytime(t *testing.T) {
	m, _ := newTestManager()

	ev := DetectionEvent{
		ID:                         "day",
		Species:                    risk.Buffalo,
		Timestamp:                  time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC), // 12:00 EAT
		DistanceToSettlementMeters: 800,
		ConfidencePercent:          75,
	}
	a, err := m.Create(testContext(), ev)
	require.NoError(t, err)

	assert.Equal(t, risk.Day, a.TimeOfDay)
	assert.Equal(t, risk.Medium, a.RiskLevel) // 25+10+5+0
	assert.Equal(t, 4, a.ETAMinutes)
}

func TestCreate_NormalizesSpecies(t *testing.T) {
	m, _ := newTestManager()

	ev := lionEvent("g1")
	ev.Species = "giraffe"
	a, err := m.Create(testContext(), ev)
	require.NoError(t, err)
	assert.Equal(t, risk.Lion, a.Species)

	ev = lionEvent("u1")
	ev.Species = "hyena"
	a, err = m.Create(testContext(), ev)
	require.NoError(t, err)
	assert.Equal(t, risk.Unknown, a.Species)
}

func TestCreate_CustomTimeOfDay(t *testing.T) {
	m, _ := newTestManager(WithTimeOfDay(TimeOfDayFunc(func(geo.Location, time.Time) risk.TimeOfDay {
		return risk.Day
	})))

	a, err := m.Create(testContext(), lionEvent("a1"))
	require.NoError(t, err)
	assert.Equal(t, risk.Day, a.TimeOfDay)
	assert.Equal(t, 95, a.RiskScore)
}

func TestCreate_Rejections(t *testing.T) {
	m, _ := newTestManager()
	ctx := testContext()

	_, err := m.Create(ctx, lionEvent("a1"))
	require.NoError(t, err)

	_, err = m.Create(ctx, lionEvent("a1"))
	assert.ErrorIs(t, err, ErrDuplicateAlert)

	_, err = m.Create(ctx, lionEvent("  "))
	assert.ErrorIs(t, err, ErrInvalidDetection)

	assert.Len(t, m.List(), 1)
}

func TestCreate_DefaultsTimestamp(t *testing.T) {
	m, clock := newTestManager()
	clock.Advance(time.Hour)

	ev := lionEvent("a1")
	ev.Timestamp = time.Time{}
	a, err := m.Create(testContext(), ev)
	require.NoError(t, err)
	assert.Equal(t, detectedAt.Add(time.Hour), a.Timestamp)
}

func TestDispatchThenResolve(t *testing.T) {
	m, clock := newTestManager()
	ctx := testContext()
	_, err := m.Create(ctx, lionEvent("a1"))
	require.NoError(t, err)

	clock.Advance(25 * time.Second)
	a, err := m.Dispatch(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, Dispatched, a.Status)
	require.NotNil(t, a.DispatchedAt)
	assert.Equal(t, detectedAt.Add(25*time.Second), *a.DispatchedAt)
	require.NotNil(t, a.ResponseTimeSeconds)
	assert.Equal(t, 25, *a.ResponseTimeSeconds)
	assert.True(t, *a.MetSLA)

	clock.Advance(10 * time.Minute)
	a, err = m.Resolve(ctx, "a1", nil)
	require.NoError(t, err)
	assert.Equal(t, Resolved, a.Status)
	require.NotNil(t, a.ResolvedAt)
	assert.Equal(t, detectedAt.Add(25*time.Second+10*time.Minute), *a.ResolvedAt)
	assert.Equal(t, 25, *a.ResponseTimeSeconds)
}

func TestDispatch_SecondCallChangesNothing(t *testing.T) {
	m, clock := newTestManager()
	ctx := testContext()
	_, err := m.Create(ctx, lionEvent("a1"))
	require.NoError(t, err)

	clock.Advance(45 * time.Second)
	first, err := m.Dispatch(ctx, "a1")
	require.NoError(t, err)
	assert.False(t, *first.MetSLA)

	clock.Advance(time.Minute)
	_, err = m.Dispatch(ctx, "a1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	var te *TransitionError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, Dispatched, te.From)
	assert.Equal(t, Dispatched, te.To)
	assert.Equal(t, "a1", te.AlertID)

	after, err := m.Get("a1")
	require.NoError(t, err)
	assert.Equal(t, *first.DispatchedAt, *after.DispatchedAt)
	assert.Equal(t, *first.ResponseTimeSeconds, *after.ResponseTimeSeconds)
	assert.Equal(t, Dispatched, after.Status)
}

func TestResolve_FromPendingIsFalsePositiveCloseOut(t *testing.T) {
	m, _ := newTestManager()
	ctx := testContext()
	_, err := m.Create(ctx, lionEvent("a1"))
	require.NoError(t, err)

	a, err := m.Resolve(ctx, "a1", nil)
	require.NoError(t, err)
	assert.Equal(t, Resolved, a.Status)
	assert.Nil(t, a.DispatchedAt)
	assert.Nil(t, a.ResponseTimeSeconds)

	_, err = m.Dispatch(ctx, "a1")
	assert.ErrorIs(t, err, ErrInvalidTransition, "dispatch after resolve must fail")

	_, err = m.Resolve(ctx, "a1", nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestResolve_WithIncidentReport(t *testing.T) {
	m, clock := newTestManager()
	ctx := testContext()
	_, err := m.Create(ctx, lionEvent("a1"))
	require.NoError(t, err)
	_, err = m.Dispatch(ctx, "a1")
	require.NoError(t, err)

	clock.Advance(40 * time.Minute)
	a, err := m.Resolve(ctx, "a1", &IncidentReport{
		Description: "  Lion pushed back across the river  ",
		Outcome:     "No livestock lost",
		ReportedBy:  "ranger-7",
	})
	require.NoError(t, err)
	require.NotNil(t, a.Incident)
	assert.Equal(t, "Lion pushed back across the river", a.Incident.Description)
	assert.Equal(t, IncidentResolved, a.Incident.Status)
	assert.False(t, a.Incident.IsFalsePositive)
	assert.Equal(t, *a.ResolvedAt, a.Incident.ReportedAt)

	stored, err := m.Get("a1")
	require.NoError(t, err)
	assert.Equal(t, "ranger-7", stored.Incident.ReportedBy)
	assert.Zero(t, m.Stats().FalsePositives)
}

func TestResolve_FalsePositiveReport(t *testing.T) {
	tests := []struct {
		name   string
		report IncidentReport
	}{
		{"flag only", IncidentReport{Description: "Shadow on the lens", IsFalsePositive: true}},
		{"status only", IncidentReport{Description: "Goat misread as lion", Status: "false_positive"}},
		{"flag overrides status", IncidentReport{Description: "Nothing there", Status: IncidentInvestigating, IsFalsePositive: true}},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestManager()
			ctx := testContext()
			_, err := m.Create(ctx, lionEvent("a1"))
			require.NoError(t, err)

			a, err := m.Resolve(ctx, "a1", &tests[i].report)
			require.NoError(t, err)
			assert.Equal(t, IncidentFalsePositive, a.Incident.Status)
			assert.True(t, a.Incident.IsFalsePositive)
			assert.Equal(t, 1, m.Stats().FalsePositives)
		})
	}
}

func TestResolve_InvalidReportLeavesAlertOpen(t *testing.T) {
	m, _ := newTestManager()
	ctx := testContext()
	_, err := m.Create(ctx, lionEvent("a1"))
	require.NoError(t, err)

	_, err = m.Resolve(ctx, "a1", &IncidentReport{Description: "   "})
	assert.ErrorIs(t, err, ErrInvalidReport)

	_, err = m.Resolve(ctx, "a1", &IncidentReport{Description: "Seen off", Status: "CLOSED"})
	assert.ErrorIs(t, err, ErrInvalidReport)

	a, err := m.Get("a1")
	require.NoError(t, err)
	assert.Equal(t, Pending, a.Status)
	assert.Nil(t, a.Incident)
}

type fakeCameras struct {
	known    map[string]bool
	recorded []string
}

func (f *fakeCameras) Known(id string) bool { return f.known[id] }

func (f *fakeCameras) RecordDetection(id string, _ time.Time) {
	f.recorded = append(f.recorded, id)
}

func TestCreate_CameraRegistry(t *testing.T) {
	cams := &fakeCameras{known: map[string]bool{"cam1": true}}
	m, _ := newTestManager(WithCameras(cams))
	ctx := testContext()

	ev := lionEvent("a1")
	ev.CameraID = " cam1 "
	a, err := m.Create(ctx, ev)
	require.NoError(t, err)
	assert.Equal(t, "cam1", a.CameraID)

	ev = lionEvent("a2")
	ev.CameraID = "cam9"
	_, err = m.Create(ctx, ev)
	assert.ErrorIs(t, err, ErrInvalidDetection)
	assert.ErrorContains(t, err, "unknown camera cam9")

	_, err = m.Create(ctx, lionEvent("a3"))
	require.NoError(t, err, "manual reports carry no camera")

	assert.Equal(t, []string{"cam1"}, cams.recorded)
}

func TestTransitions_UnknownAlert(t *testing.T) {
	m, _ := newTestManager()
	ctx := testContext()

	_, err := m.Dispatch(ctx, "missing")
	assert.ErrorIs(t, err, ErrAlertNotFound)
	_, err = m.Resolve(ctx, "missing", nil)
	assert.ErrorIs(t, err, ErrAlertNotFound)
	_, err = m.Get("missing")
	assert.ErrorIs(t, err, ErrAlertNotFound)
}

func TestDispatch_NegativeResponseTimeKept(t *testing.T) {
	m, _ := newTestManager()
	ctx := testContext()

	ev := lionEvent("future")
	ev.Timestamp = detectedAt.Add(time.Minute)
	_, err := m.Create(ctx, ev)
	require.NoError(t, err)

	a, err := m.Dispatch(ctx, "future")
	require.NoError(t, err)
	assert.Equal(t, -60, *a.ResponseTimeSeconds)
	assert.True(t, *a.MetSLA)
}

func TestDispatch_ConcurrentCallsApplyOnce(t *testing.T) {
	m, _ := newTestManager()
	ctx := testContext()
	_, err := m.Create(ctx, lionEvent("a1"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := m.Dispatch(ctx, "a1"); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{Pending, Dispatched, true},
		{Pending, Resolved, true},
		{Dispatched, Resolved, true},
		{Dispatched, Pending, false},
		{Dispatched, Dispatched, false},
		{Resolved, Pending, false},
		{Resolved, Dispatched, false},
		{Resolved, Resolved, false},
		{Pending, Pending, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}

	assert.True(t, Resolved.IsTerminal())
	assert.False(t, Pending.IsTerminal())

	s, err := ParseStatus("DISPATCHED")
	require.NoError(t, err)
	assert.Equal(t, Dispatched, s)
	_, err = ParseStatus("dispatched")
	assert.Error(t, err)
}

func TestAlert_JSONRoundTrip(t *testing.T) {
	m, clock := newTestManager()
	ctx := testContext()
	_, err := m.Create(ctx, lionEvent("a1"))
	require.NoError(t, err)
	clock.Advance(12 * time.Second)
	original, err := m.Dispatch(ctx, "a1")
	require.NoError(t, err)

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"risk_level":"CRITICAL"`)
	assert.Contains(t, string(data), `"status":"DISPATCHED"`)

	var decoded Alert
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, original.RiskLevel, decoded.RiskLevel)
	assert.Equal(t, original.PredictedTrajectory, decoded.PredictedTrajectory)
	assert.Equal(t, original.Status, decoded.Status)
	assert.Equal(t, original.ID, decoded.ID)
	assert.Equal(t, *original.ResponseTimeSeconds, *decoded.ResponseTimeSeconds)
	assert.True(t, original.DispatchedAt.Equal(*decoded.DispatchedAt))
}

func TestGet_ReturnsCopy(t *testing.T) {
	m, _ := newTestManager()
	_, err := m.Create(testContext(), lionEvent("a1"))
	require.NoError(t, err)

	a, err := m.Get("a1")
	require.NoError(t, err)
	a.Status = Resolved
	a.PredictedTrajectory[0].Latitude = 99

	again, err := m.Get("a1")
	require.NoError(t, err)
	assert.Equal(t, Pending, again.Status)
	assert.InDelta(t, -3.39642, again.PredictedTrajectory[0].Latitude, 1e-9)
}

func TestQueries(t *testing.T) {
	m, clock := newTestManager()
	ctx := testContext()

	for i, id := range []string{"old", "mid", "new"} {
		ev := lionEvent(id)
		ev.Timestamp = detectedAt.Add(time.Duration(i) * time.Hour)
		_, err := m.Create(ctx, ev)
		require.NoError(t, err)
	}
	clock.Advance(2 * time.Hour)

	_, err := m.Dispatch(ctx, "mid")
	require.NoError(t, err)
	_, err = m.Resolve(ctx, "old", nil)
	require.NoError(t, err)

	ids := func(list []Alert) []string {
		out := make([]string, len(list))
		for i, a := range list {
			out[i] = a.ID
		}
		return out
	}

	assert.Equal(t, []string{"new", "mid", "old"}, ids(m.List()))
	assert.Equal(t, []string{"new", "mid"}, ids(m.Active()))
	assert.Equal(t, []string{"mid"}, ids(m.WithStatus(Dispatched)))
	assert.Equal(t, []string{"new", "mid"}, ids(m.Recent(90*time.Minute)))
}

func TestStats(t *testing.T) {
	m, clock := newTestManager()
	ctx := testContext()

	_, err := m.Create(ctx, lionEvent("fast"))
	require.NoError(t, err)
	_, err = m.Create(ctx, lionEvent("slow"))
	require.NoError(t, err)
	buffalo := lionEvent("buffalo")
	buffalo.Species = risk.Buffalo
	buffalo.DistanceToSettlementMeters = 2000
	buffalo.ConfidencePercent = 50
	_, err = m.Create(ctx, buffalo)
	require.NoError(t, err)

	clock.Advance(10 * time.Second)
	_, err = m.Dispatch(ctx, "fast")
	require.NoError(t, err)
	clock.Advance(40 * time.Second)
	_, err = m.Dispatch(ctx, "slow")
	require.NoError(t, err)
	_, err = m.Resolve(ctx, "fast", nil)
	require.NoError(t, err)

	stats := m.Stats()
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.Dispatched)
	assert.Equal(t, 1, stats.Resolved)
	assert.Equal(t, 2, stats.ByRisk["CRITICAL"])
	assert.Equal(t, 1, stats.ByRisk["MEDIUM"]) // 25+5+0+10
	assert.Equal(t, 0, stats.ByRisk["LOW"])
	assert.Equal(t, 0, stats.ByRisk["HIGH"])
	assert.Equal(t, 2, stats.BySpecies["LION"])
	assert.Equal(t, 1, stats.BySpecies["BUFFALO"])
	assert.InDelta(t, 30.0, stats.AvgResponseSeconds, 1e-9) // (10+50)/2
	assert.Equal(t, 1, stats.SLAMet)
	assert.Equal(t, 1, stats.SLAMissed)
}

func TestListeners(t *testing.T) {
	var events []Event
	m, _ := newTestManager(WithListener(func(_ context.Context, ev Event) {
		events = append(events, ev)
	}))
	ctx := testContext()

	_, err := m.Create(ctx, lionEvent("a1"))
	require.NoError(t, err)
	_, err = m.Dispatch(ctx, "a1")
	require.NoError(t, err)
	_, err = m.Dispatch(ctx, "a1") // rejected, no event
	require.Error(t, err)
	_, err = m.Resolve(ctx, "a1", nil)
	require.NoError(t, err)

	require.Len(t, events, 3)
	assert.Equal(t, EventCreated, events[0].Type)
	assert.Equal(t, EventDispatched, events[1].Type)
	assert.Equal(t, Dispatched, events[1].Alert.Status)
	assert.Equal(t, EventResolved, events[2].Type)

	late := 0
	m.Subscribe(func(context.Context, Event) { late++ })
	_, err = m.Create(ctx, lionEvent("a2"))
	require.NoError(t, err)
	assert.Equal(t, 1, late)
	assert.Len(t, events, 4)
}

func TestManager_RecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := metrics.NewCollector(reg)
	require.NoError(t, err)

	m, clock := newTestManager(WithMetrics(collector))
	ctx := testContext()
	_, err = m.Create(ctx, lionEvent("a1"))
	require.NoError(t, err)
	clock.Advance(31 * time.Second)
	_, err = m.Dispatch(ctx, "a1")
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(collector.AlertsCreated.WithLabelValues("CRITICAL")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.AlertTransitions.WithLabelValues("DISPATCHED")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.SLABreaches))
}

func testContext() context.Context {
	return logging.EnsureLogger(context.Background())
}

func TestLifecycle_BackgroundContext(t *testing.T) {
	m, _ := newTestManager()
	ctx := context.Background()

	assert.NotPanics(t, func() {
		_, err := m.Create(ctx, lionEvent("a1"))
		require.NoError(t, err)
		_, err = m.Dispatch(ctx, "a1")
		require.NoError(t, err)
		_, err = m.Resolve(ctx, "a1", nil)
		require.NoError(t, err)
	})
}
