package notify

import (
	"errors"
	"time"

	"github.com/dpup/wildwatch/server/internal/lib/geo"
	"github.com/dpup/wildwatch/server/internal/lib/risk"
)

// Type classifies a notification by the lifecycle event that produced it
type Type string

const (
	TypeAlert    Type = "ALERT"
	TypeDispatch Type = "DISPATCH"
	TypeResolved Type = "RESOLVED"
	TypeCustom   Type = "CUSTOM"
)

// Group identifies an organization that receives notifications
type Group string

const (
	GroupKWS       Group = "KWS"       // Kenya Wildlife Service
	GroupKRCS      Group = "KRCS"      // Kenya Red Cross Society
	GroupCommunity Group = "COMMUNITY" // local community alert system
)

// Recipient is a notification target and its delivery settings
type Recipient struct {
	Group             Group  `json:"group" yaml:"group"`
	Name              string `json:"name" yaml:"name"`
	Enabled           bool   `json:"enabled" yaml:"enabled"`
	AutoNotify        bool   `json:"auto_notify" yaml:"auto_notify"`
	ContactInfo       string `json:"contact_info" yaml:"contact_info"`
	NotificationCount int    `json:"notification_count" yaml:"-"`
}

// DefaultRecipients returns the standard recipient roster, all enabled
func DefaultRecipients() []Recipient {
	return []Recipient{
		{Group: GroupKWS, Name: "Kenya Wildlife Service", Enabled: true, AutoNotify: true, ContactInfo: "+254 700 000 000"},
		{Group: GroupKRCS, Name: "Kenya Red Cross Society", Enabled: true, AutoNotify: true, ContactInfo: "+254 703 037 000"},
		{Group: GroupCommunity, Name: "Local Community", Enabled: true, AutoNotify: true, ContactInfo: "Community Alert System"},
	}
}

// Notification is a message published to recipient groups
type Notification struct {
	ID            string       `json:"id"`
	AlertID       string       `json:"alert_id,omitempty"`
	Type          Type         `json:"type"`
	Title         string       `json:"title"`
	Message       string       `json:"message"`
	SafetyMessage string       `json:"safety_message,omitempty"`
	Timestamp     time.Time    `json:"timestamp"`
	Read          bool         `json:"read"`
	Species       risk.Species `json:"species,omitempty"`
	Location      geo.Location `json:"location"`
	SentTo        []Group      `json:"sent_to"`
	Briefing      string       `json:"briefing,omitempty"`
}

var (
	// ErrNotificationNotFound is returned for unknown notification ids
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrUnknownGroup is returned for recipient groups not in the roster
	ErrUnknownGroup = errors.New("unknown recipient group")

	// ErrEmptyMessage is returned when a custom notification has no text
	ErrEmptyMessage = errors.New("notification message is empty")
)
