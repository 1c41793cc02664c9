// Package contacts keeps the community contact directory that receives
// wildlife alerts by phone.
package contacts

import (
	"errors"
	"time"
)

// Category describes a contact's role in the community
type Category string

const (
	Farmer          Category = "FARMER"
	CommunityLeader Category = "COMMUNITY_LEADER"
	BusinessOwner   Category = "BUSINESS_OWNER"
	Resident        Category = "RESIDENT"
	Other           Category = "OTHER"
)

// Categories lists every contact category
var Categories = []Category{Farmer, CommunityLeader, BusinessOwner, Resident, Other}

// Status is whether a contact can be reached
type Status string

const (
	Active     Status = "ACTIVE"
	Inactive   Status = "INACTIVE"
	Unverified Status = "UNVERIFIED"
)

// Statuses lists every contact status
var Statuses = []Status{Active, Inactive, Unverified}

// Language is a contact's preferred alert language
type Language string

const (
	English Language = "en"
	Swahili Language = "sw"
)

// DefaultRegion is assigned to contacts added without one
const DefaultRegion = "Kajiado County"

// Contact is one person in the directory
type Contact struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	PhoneNumber       string     `json:"phone_number"`
	AlternatePhone    string     `json:"alternate_phone,omitempty"`
	Email             string     `json:"email,omitempty"`
	Category          Category   `json:"category"`
	Village           string     `json:"village,omitempty"`
	Region            string     `json:"region"`
	Status            Status     `json:"status"`
	ReceiveAlerts     bool       `json:"receive_alerts"`
	PreferredLanguage Language   `json:"preferred_language"`
	NotificationsSent int        `json:"notifications_sent"`
	LastNotified      *time.Time `json:"last_notified,omitempty"`
	AddedAt           time.Time  `json:"added_at"`
	AddedBy           string     `json:"added_by,omitempty"`
	Notes             string     `json:"notes,omitempty"`
}

// Reachable reports whether the contact should get alerts
func (c Contact) Reachable() bool {
	return c.Status == Active && c.ReceiveAlerts
}

// Draft is a contact as submitted by an operator. Only name, phone number
// and village are required; the rest fall back to directory defaults.
type Draft struct {
	Name              string
	PhoneNumber       string
	Village           string
	AlternatePhone    string
	Email             string
	Category          Category
	Region            string
	PreferredLanguage Language
	Notes             string
	AddedBy           string
}

// Update changes selected fields of a contact. Nil fields are left alone.
type Update struct {
	Name              *string
	PhoneNumber       *string
	AlternatePhone    *string
	Email             *string
	Category          *Category
	Village           *string
	Region            *string
	Status            *Status
	ReceiveAlerts     *bool
	PreferredLanguage *Language
	Notes             *string
}

// Filter narrows List. Zero fields match everything.
type Filter struct {
	// Query matches name or village case-insensitively, or a phone substring
	Query      string
	Category   Category
	Village    string
	ActiveOnly bool
}

// Stats summarizes the directory
type Stats struct {
	Total      int            `json:"total"`
	Active     int            `json:"active"`
	Receiving  int            `json:"receiving"`
	Farmers    int            `json:"farmers"`
	Unverified int            `json:"unverified"`
	ByVillage  map[string]int `json:"by_village"`
}

// ImportError is a CSV row that could not be imported. Row is the line
// number in the uploaded file.
type ImportError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// ImportResult tallies a CSV import
type ImportResult struct {
	Successful int           `json:"successful"`
	Failed     int           `json:"failed"`
	Duplicates int           `json:"duplicates"`
	Errors     []ImportError `json:"errors"`
}

var (
	// ErrContactNotFound is returned for unknown contact ids
	ErrContactNotFound = errors.New("contact not found")

	// ErrInvalidContact is returned for contacts missing required fields or
	// carrying malformed values
	ErrInvalidContact = errors.New("invalid contact")

	// ErrDuplicateContact is returned when a phone number is already listed
	ErrDuplicateContact = errors.New("contact with this phone number already exists")
)
