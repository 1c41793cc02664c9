package alerts

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dpup/prefab/logging"

	"github.com/dpup/wildwatch/server/internal/lib/geo"
	"github.com/dpup/wildwatch/server/internal/lib/response"
	"github.com/dpup/wildwatch/server/internal/lib/risk"
	"github.com/dpup/wildwatch/server/internal/lib/trajectory"
	"github.com/dpup/wildwatch/server/internal/metrics"
)

// Clock supplies the current time for dispatch and resolve stamps
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock
type ClockFunc func() time.Time

// Now implements Clock
func (f ClockFunc) Now() time.Time { return f() }

// TimeOfDayResolver decides whether a detection happened by day or night
type TimeOfDayResolver interface {
	TimeOfDay(loc geo.Location, t time.Time) risk.TimeOfDay
}

// TimeOfDayFunc adapts a function to TimeOfDayResolver
type TimeOfDayFunc func(loc geo.Location, t time.Time) risk.TimeOfDay

// TimeOfDay implements TimeOfDayResolver
func (f TimeOfDayFunc) TimeOfDay(loc geo.Location, t time.Time) risk.TimeOfDay { return f(loc, t) }

// HourResolver applies a fixed-hours rule regardless of location
func HourResolver(rule risk.HourRule) TimeOfDayResolver {
	return TimeOfDayFunc(func(_ geo.Location, t time.Time) risk.TimeOfDay {
		return rule.TimeOfDay(t)
	})
}

// CameraRegistry knows which cameras report detections; satisfied by
// *cameras.Registry
type CameraRegistry interface {
	Known(id string) bool
	RecordDetection(id string, at time.Time)
}

// Listener observes applied lifecycle events. Listeners run synchronously on
// the caller's goroutine after the manager's lock is released.
type Listener func(ctx context.Context, ev Event)

// Manager owns the alert collection and applies every status transition.
// Transitions are serialized so a dispatch is always observed before a later
// resolve checks its precondition.
type Manager struct {
	mu     sync.Mutex
	alerts map[string]*Alert
	order  []string

	clock     Clock
	timeOfDay TimeOfDayResolver
	speedKmh  float64
	metrics   *metrics.Collector
	cameras   CameraRegistry
	listeners []Listener
}

// Option configures a Manager
type Option func(*Manager)

// WithClock sets the time source
func WithClock(c Clock) Option {
	return func(m *Manager) { m.clock = c }
}

// WithTimeOfDay sets how detections are classified as day or night
func WithTimeOfDay(r TimeOfDayResolver) Option {
	return func(m *Manager) { m.timeOfDay = r }
}

// WithSpeed sets the assumed animal speed for trajectory prediction
func WithSpeed(kmh float64) Option {
	return func(m *Manager) { m.speedKmh = kmh }
}

// WithMetrics records creations and transitions
func WithMetrics(c *metrics.Collector) Option {
	return func(m *Manager) { m.metrics = c }
}

// WithCameras rejects detections from unregistered cameras and records
// activity for registered ones. Detections without a camera id are accepted.
func WithCameras(r CameraRegistry) Option {
	return func(m *Manager) { m.cameras = r }
}

// WithListener registers a lifecycle listener
func WithListener(l Listener) Option {
	return func(m *Manager) { m.listeners = append(m.listeners, l) }
}

// NewManager creates an empty alert manager. By default time of day follows
// the 06:00-18:00 hour rule in East Africa Time.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		alerts:    make(map[string]*Alert),
		clock:     ClockFunc(time.Now),
		timeOfDay: HourResolver(risk.HourRule{Zone: risk.LoadZone("Africa/Nairobi", 3)}),
		speedKmh:  trajectory.DefaultSpeedKmh,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Subscribe adds a listener after construction
func (m *Manager) Subscribe(l Listener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, l)
}

// Create enriches a detection into a PENDING alert. Risk level and trajectory
// are computed once here and never recomputed.
func (m *Manager) Create(ctx context.Context, ev DetectionEvent) (Alert, error) {
	ctx = logging.EnsureLogger(ctx)
	ev.ID = strings.TrimSpace(ev.ID)
	if ev.ID == "" {
		return Alert{}, fmt.Errorf("%w: missing id", ErrInvalidDetection)
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = m.clock.Now()
	}
	ev.Species = risk.ParseSpecies(string(ev.Species))
	ev.Direction = strings.ToUpper(strings.TrimSpace(ev.Direction))
	ev.CameraID = strings.TrimSpace(ev.CameraID)
	if ev.CameraID != "" && m.cameras != nil && !m.cameras.Known(ev.CameraID) {
		return Alert{}, fmt.Errorf("%w: unknown camera %s", ErrInvalidDetection, ev.CameraID)
	}

	tod := m.timeOfDay.TimeOfDay(ev.Location, ev.Timestamp)
	score := risk.Score(ev.Species, ev.DistanceToSettlementMeters, ev.ConfidencePercent, tod)

	alert := &Alert{
		DetectionEvent:      ev,
		RiskLevel:           risk.LevelForScore(score),
		RiskScore:           score,
		TimeOfDay:           tod,
		PredictedTrajectory: trajectory.Predict(ev.Location, ev.Direction, m.speedKmh),
		ETAMinutes:          response.ETAMinutes(ev.DistanceToSettlementMeters),
		RouteDistanceMeters: ev.DistanceToSettlementMeters * 1.3,
		Status:              Pending,
	}

	m.mu.Lock()
	if _, exists := m.alerts[ev.ID]; exists {
		m.mu.Unlock()
		return Alert{}, fmt.Errorf("%w: %s", ErrDuplicateAlert, ev.ID)
	}
	m.alerts[ev.ID] = alert
	m.order = append(m.order, ev.ID)
	out := alert.clone()
	listeners := m.listeners
	m.mu.Unlock()

	if out.CameraID != "" && m.cameras != nil {
		m.cameras.RecordDetection(out.CameraID, out.Timestamp)
	}
	m.metrics.AlertCreated(out.RiskLevel.String())
	logging.Infow(ctx, "Alert created",
		"alert_id", out.ID, "species", out.Species, "risk", out.RiskLevel.String(),
		"score", out.RiskScore, "time_of_day", out.TimeOfDay)

	m.emit(ctx, listeners, Event{Type: EventCreated, Alert: out})
	return out, nil
}

// Dispatch moves a PENDING alert to DISPATCHED and records the response time.
// Any other starting state is rejected and leaves the alert unchanged, so
// dispatchedAt and the response time are written exactly once.
func (m *Manager) Dispatch(ctx context.Context, id string) (Alert, error) {
	ctx = logging.EnsureLogger(ctx)
	out, listeners, err := m.transition(id, Dispatched, func(a *Alert, now time.Time) {
		a.DispatchedAt = &now
		seconds := response.ResponseTimeSeconds(a.Timestamp, now)
		met := response.MeetsSLA(seconds)
		a.ResponseTimeSeconds = &seconds
		a.MetSLA = &met
	})
	if err != nil {
		return Alert{}, err
	}

	seconds := *out.ResponseTimeSeconds
	m.metrics.Dispatched(seconds, *out.MetSLA)
	if seconds < 0 {
		logging.Warnw(ctx, "Alert dispatched before its detection timestamp",
			"alert_id", id, "response_time_seconds", seconds)
	}
	logging.Infow(ctx, "Alert dispatched",
		"alert_id", id, "response_time_seconds", seconds, "met_sla", *out.MetSLA)

	m.emit(ctx, listeners, Event{Type: EventDispatched, Alert: out})
	return out, nil
}

// Resolve closes a pending or dispatched alert. A non-nil report is
// validated, stamped and attached to the alert.
func (m *Manager) Resolve(ctx context.Context, id string, report *IncidentReport) (Alert, error) {
	ctx = logging.EnsureLogger(ctx)
	var incident *IncidentReport
	if report != nil {
		r := *report
		if err := r.normalize(); err != nil {
			return Alert{}, err
		}
		incident = &r
	}

	out, listeners, err := m.transition(id, Resolved, func(a *Alert, now time.Time) {
		a.ResolvedAt = &now
		if incident != nil {
			incident.ReportedAt = now
			a.Incident = incident
		}
	})
	if err != nil {
		return Alert{}, err
	}

	fields := []any{"alert_id", id, "dispatched", out.DispatchedAt != nil}
	if out.Incident != nil {
		fields = append(fields, "incident_status", out.Incident.Status)
	}
	logging.Infow(ctx, "Alert resolved", fields...)

	m.emit(ctx, listeners, Event{Type: EventResolved, Alert: out})
	return out, nil
}

func (m *Manager) transition(id string, to Status, apply func(a *Alert, now time.Time)) (Alert, []Listener, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.alerts[id]
	if !ok {
		return Alert{}, nil, fmt.Errorf("%w: %s", ErrAlertNotFound, id)
	}
	if !CanTransition(a.Status, to) {
		return Alert{}, nil, &TransitionError{AlertID: id, From: a.Status, To: to}
	}

	apply(a, m.clock.Now())
	a.Status = to
	m.metrics.Transition(string(to))

	return a.clone(), m.listeners, nil
}

func (m *Manager) emit(ctx context.Context, listeners []Listener, ev Event) {
	for _, l := range listeners {
		l(ctx, ev)
	}
}

// Get returns a copy of one alert
func (m *Manager) Get(id string) (Alert, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.alerts[id]
	if !ok {
		return Alert{}, fmt.Errorf("%w: %s", ErrAlertNotFound, id)
	}
	return a.clone(), nil
}

// List returns every alert, newest detection first
func (m *Manager) List() []Alert {
	return m.filter(func(*Alert) bool { return true })
}

// Active returns alerts that are not yet resolved, newest first
func (m *Manager) Active() []Alert {
	return m.filter(func(a *Alert) bool { return a.IsActive() })
}

// WithStatus returns alerts in the given status, newest first
func (m *Manager) WithStatus(s Status) []Alert {
	return m.filter(func(a *Alert) bool { return a.Status == s })
}

// Recent returns alerts detected within window of now, newest first
func (m *Manager) Recent(window time.Duration) []Alert {
	cutoff := m.clock.Now().Add(-window)
	return m.filter(func(a *Alert) bool { return a.Timestamp.After(cutoff) })
}

func (m *Manager) filter(keep func(*Alert) bool) []Alert {
	m.mu.Lock()
	out := make([]Alert, 0, len(m.order))
	for i := len(m.order) - 1; i >= 0; i-- {
		if a := m.alerts[m.order[i]]; keep(a) {
			out = append(out, a.clone())
		}
	}
	m.mu.Unlock()

	// Most recently created first among equal timestamps
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// Stats summarizes the collection. Response times are averaged in seconds.
func (m *Manager) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := Stats{
		Total:     len(m.alerts),
		ByRisk:    make(map[string]int, len(risk.Levels)),
		BySpecies: make(map[string]int, len(risk.AllSpecies)),
	}
	for _, l := range risk.Levels {
		stats.ByRisk[l.String()] = 0
	}

	var responseSum, responded int
	for _, a := range m.alerts {
		switch a.Status {
		case Pending:
			stats.Pending++
		case Dispatched:
			stats.Dispatched++
		case Resolved:
			stats.Resolved++
		}
		stats.ByRisk[a.RiskLevel.String()]++
		stats.BySpecies[string(a.Species)]++
		if a.Incident != nil && a.Incident.IsFalsePositive {
			stats.FalsePositives++
		}

		if a.ResponseTimeSeconds != nil {
			responseSum += *a.ResponseTimeSeconds
			responded++
			if *a.MetSLA {
				stats.SLAMet++
			} else {
				stats.SLAMissed++
			}
		}
	}
	if responded > 0 {
		stats.AvgResponseSeconds = float64(responseSum) / float64(responded)
	}
	return stats
}
