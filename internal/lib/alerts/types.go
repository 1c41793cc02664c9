package alerts

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dpup/wildwatch/server/internal/lib/geo"
	"github.com/dpup/wildwatch/server/internal/lib/risk"
)

// DetectionEvent is a single sighting reported by the detection feed.
// Events are immutable once created.
type DetectionEvent struct {
	ID                         string       `json:"id"`
	Species                    risk.Species `json:"species"`
	Timestamp                  time.Time    `json:"timestamp"`
	Location                   geo.Location `json:"location"`
	DistanceToSettlementMeters float64      `json:"distance_to_settlement_m"`
	ConfidencePercent          float64      `json:"confidence"`
	Direction                  string       `json:"direction,omitempty"` // compass heading, e.g. "NE"
	CameraID                   string       `json:"camera_id,omitempty"`
	ImageURL                   string       `json:"image_url,omitempty"`
	Notes                      string       `json:"notes,omitempty"`
}

// Status is the lifecycle state of an alert
type Status string

const (
	Pending    Status = "PENDING"
	Dispatched Status = "DISPATCHED"
	Resolved   Status = "RESOLVED"
)

// Statuses lists every status in lifecycle order
var Statuses = []Status{Pending, Dispatched, Resolved}

// transitions is the complete set of permitted status changes. PENDING may
// close straight to RESOLVED for false positives; nothing moves backward.
var transitions = map[Status][]Status{
	Pending:    {Dispatched, Resolved},
	Dispatched: {Resolved},
	Resolved:   {},
}

// CanTransition reports whether an alert in from may move to to
func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition leaves s
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// ParseStatus validates a status string
func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown alert status %q", s)
}

// Alert is a detection enriched with risk, trajectory and response tracking.
// Alerts are owned by a Manager and only change through its transitions.
type Alert struct {
	DetectionEvent

	RiskLevel           risk.Level     `json:"risk_level"`
	RiskScore           int            `json:"risk_score"`
	TimeOfDay           risk.TimeOfDay `json:"time_of_day"`
	PredictedTrajectory []geo.Location `json:"predicted_trajectory"`
	ETAMinutes          int            `json:"eta_minutes"`
	RouteDistanceMeters float64        `json:"route_distance_m"`

	Status              Status     `json:"status"`
	DispatchedAt        *time.Time `json:"dispatched_at,omitempty"`
	ResolvedAt          *time.Time `json:"resolved_at,omitempty"`
	ResponseTimeSeconds *int       `json:"response_time_seconds,omitempty"`
	MetSLA              *bool      `json:"met_sla,omitempty"`

	Incident *IncidentReport `json:"incident,omitempty"`
}

// IsActive reports whether the alert still needs attention
func (a Alert) IsActive() bool {
	return a.Status != Resolved
}

// clone returns a deep copy safe to hand out of the manager
func (a *Alert) clone() Alert {
	c := *a
	c.PredictedTrajectory = append([]geo.Location(nil), a.PredictedTrajectory...)
	if a.DispatchedAt != nil {
		t := *a.DispatchedAt
		c.DispatchedAt = &t
	}
	if a.ResolvedAt != nil {
		t := *a.ResolvedAt
		c.ResolvedAt = &t
	}
	if a.ResponseTimeSeconds != nil {
		n := *a.ResponseTimeSeconds
		c.ResponseTimeSeconds = &n
	}
	if a.MetSLA != nil {
		b := *a.MetSLA
		c.MetSLA = &b
	}
	if a.Incident != nil {
		r := *a.Incident
		c.Incident = &r
	}
	return c
}

// IncidentStatus classifies how a responded incident ended
type IncidentStatus string

const (
	IncidentReported      IncidentStatus = "REPORTED"
	IncidentInvestigating IncidentStatus = "INVESTIGATING"
	IncidentResolved      IncidentStatus = "RESOLVED"
	IncidentFalsePositive IncidentStatus = "FALSE_POSITIVE"
)

// IncidentStatuses lists every incident status
var IncidentStatuses = []IncidentStatus{IncidentReported, IncidentInvestigating, IncidentResolved, IncidentFalsePositive}

// IncidentReport is the responder's account filed when an alert is closed
type IncidentReport struct {
	Description     string         `json:"description"`
	Outcome         string         `json:"outcome,omitempty"`
	Status          IncidentStatus `json:"status"`
	IsFalsePositive bool           `json:"is_false_positive"`
	ReportedBy      string         `json:"reported_by,omitempty"`
	ReportedAt      time.Time      `json:"reported_at"`
}

// normalize validates the report and fills its status. A false positive flag
// and the FALSE_POSITIVE status always agree afterwards.
func (r *IncidentReport) normalize() error {
	r.Description = strings.TrimSpace(r.Description)
	r.Outcome = strings.TrimSpace(r.Outcome)
	if r.Description == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidReport)
	}

	r.Status = IncidentStatus(strings.ToUpper(strings.TrimSpace(string(r.Status))))
	switch r.Status {
	case "":
		r.Status = IncidentResolved
		if r.IsFalsePositive {
			r.Status = IncidentFalsePositive
		}
	case IncidentReported, IncidentInvestigating, IncidentResolved:
		if r.IsFalsePositive {
			r.Status = IncidentFalsePositive
		}
	case IncidentFalsePositive:
		r.IsFalsePositive = true
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidReport, r.Status)
	}
	return nil
}

var (
	// ErrInvalidTransition is returned when a status change is not permitted
	ErrInvalidTransition = errors.New("invalid alert transition")

	// ErrAlertNotFound is returned for unknown alert ids
	ErrAlertNotFound = errors.New("alert not found")

	// ErrDuplicateAlert is returned when a detection id is already tracked
	ErrDuplicateAlert = errors.New("alert already exists")

	// ErrInvalidDetection is returned for detections missing required fields
	ErrInvalidDetection = errors.New("invalid detection")

	// ErrInvalidReport is returned for incident reports without a description
	// or with an unknown status
	ErrInvalidReport = errors.New("invalid incident report")
)

// TransitionError describes a rejected status change
type TransitionError struct {
	AlertID string
	From    Status
	To      Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("alert %s: cannot move from %s to %s", e.AlertID, e.From, e.To)
}

// Unwrap lets errors.Is match ErrInvalidTransition
func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// EventType names a lifecycle event
type EventType string

const (
	EventCreated    EventType = "created"
	EventDispatched EventType = "dispatched"
	EventResolved   EventType = "resolved"
)

// Event is delivered to listeners after a change has been applied
type Event struct {
	Type  EventType
	Alert Alert
}

// Stats summarizes the alert collection
type Stats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	Dispatched int `json:"dispatched"`
	Resolved   int `json:"resolved"`

	ByRisk    map[string]int `json:"by_risk"`
	BySpecies map[string]int `json:"by_species"`

	// AvgResponseSeconds averages over alerts that have a response time
	AvgResponseSeconds float64 `json:"avg_response_seconds"`
	SLAMet             int     `json:"sla_met"`
	SLAMissed          int     `json:"sla_missed"`

	FalsePositives int `json:"false_positives"`
}
