package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"github.com/dpup/wildwatch/server/internal/lib/cameras"
	"github.com/dpup/wildwatch/server/internal/lib/contacts"
	"github.com/dpup/wildwatch/server/internal/lib/geo"
	"github.com/dpup/wildwatch/server/internal/lib/notify"
	"github.com/dpup/wildwatch/server/internal/lib/routing"
)

// Directions provider kinds
const (
	ProviderNone             = "none"
	ProviderGoogleRoutes     = "google_routes"
	ProviderGoogleDirections = "google_directions"
)

// Config represents the complete server configuration. Each section is
// loaded independently from prefab.yaml (or PF__ env vars) by the server.
type Config struct {
	Alerts        AlertsConfig        `yaml:"alerts" koanf:"alerts"`
	Routing       RoutingConfig       `yaml:"routing" koanf:"routing"`
	Notifications NotificationsConfig `yaml:"notifications" koanf:"notifications"`
	Daylight      DaylightConfig      `yaml:"daylight" koanf:"daylight"`
	Feed          FeedConfig          `yaml:"feed" koanf:"feed"`
	Cameras       CamerasConfig       `yaml:"cameras" koanf:"cameras"`
	Contacts      ContactsConfig      `yaml:"contacts" koanf:"contacts"`
}

// AlertsConfig holds alert enrichment settings
type AlertsConfig struct {
	AnimalSpeedKmh float64 `yaml:"animal_speed_kmh" koanf:"animal_speed_kmh"`
	TimeZone       string  `yaml:"time_zone" koanf:"time_zone"`
	// Used when the zone database is missing from the host
	FallbackUTCOffsetHours int `yaml:"fallback_utc_offset_hours" koanf:"fallback_utc_offset_hours"`
}

// RoutingConfig holds response routing settings
type RoutingConfig struct {
	Provider string          `yaml:"provider" koanf:"provider"`
	APIKey   string          `yaml:"api_key" koanf:"api_key"`
	Timeout  time.Duration   `yaml:"timeout" koanf:"timeout"`
	Stations []StationConfig `yaml:"stations" koanf:"stations"`
}

// StationConfig is a response station in config form
type StationConfig struct {
	ID   string  `yaml:"id" koanf:"id"`
	Name string  `yaml:"name" koanf:"name"`
	Type string  `yaml:"type" koanf:"type"`
	Lat  float64 `yaml:"lat" koanf:"lat"`
	Lng  float64 `yaml:"lng" koanf:"lng"`
}

// ToStation converts StationConfig to a routing.Station
func (s StationConfig) ToStation() routing.Station {
	return routing.Station{
		ID:       s.ID,
		Name:     s.Name,
		Type:     routing.StationType(s.Type),
		Location: geo.Location{Latitude: s.Lat, Longitude: s.Lng, Address: s.Name},
	}
}

// NotificationsConfig holds recipient and briefing settings
type NotificationsConfig struct {
	Recipients []RecipientConfig `yaml:"recipients" koanf:"recipients"`
	OpenAI     OpenAIConfig      `yaml:"openai" koanf:"openai"`
}

// RecipientConfig is a notification group in config form
type RecipientConfig struct {
	Group       string `yaml:"group" koanf:"group"`
	Name        string `yaml:"name" koanf:"name"`
	Enabled     bool   `yaml:"enabled" koanf:"enabled"`
	AutoNotify  bool   `yaml:"auto_notify" koanf:"auto_notify"`
	ContactInfo string `yaml:"contact_info" koanf:"contact_info"`
}

// ToRecipient converts RecipientConfig to a notify.Recipient
func (r RecipientConfig) ToRecipient() notify.Recipient {
	return notify.Recipient{
		Group:       notify.Group(r.Group),
		Name:        r.Name,
		Enabled:     r.Enabled,
		AutoNotify:  r.AutoNotify,
		ContactInfo: r.ContactInfo,
	}
}

// OpenAIConfig holds briefing generation settings. Briefings are disabled
// without an API key.
type OpenAIConfig struct {
	APIKey  string `yaml:"api_key" koanf:"api_key"`
	Model   string `yaml:"model" koanf:"model"`
	BaseURL string `yaml:"base_url" koanf:"base_url"`
}

// DaylightConfig holds sunrise/sunset refresh settings
type DaylightConfig struct {
	Enabled           bool          `yaml:"enabled" koanf:"enabled"`
	OpenWeatherAPIKey string        `yaml:"openweather_api_key" koanf:"openweather_api_key"`
	Schedule          string        `yaml:"schedule" koanf:"schedule"`
	StaleThreshold    time.Duration `yaml:"stale_threshold" koanf:"stale_threshold"`
	Sites             []SiteConfig  `yaml:"sites" koanf:"sites"`
}

// SiteConfig represents a location to fetch sun times for
type SiteConfig struct {
	ID   string  `yaml:"id" koanf:"id"`
	Name string  `yaml:"name" koanf:"name"`
	Lat  float64 `yaml:"lat" koanf:"lat"`
	Lon  float64 `yaml:"lon" koanf:"lon"`
}

// Location converts SiteConfig to a geo.Location
func (s SiteConfig) Location() geo.Location {
	return geo.Location{Latitude: s.Lat, Longitude: s.Lon, Address: s.Name}
}

// FeedConfig holds synthetic detection feed settings
type FeedConfig struct {
	Enabled       bool    `yaml:"enabled" koanf:"enabled"`
	Schedule      string  `yaml:"schedule" koanf:"schedule"`
	CenterLat     float64 `yaml:"center_lat" koanf:"center_lat"`
	CenterLng     float64 `yaml:"center_lng" koanf:"center_lng"`
	SpreadDegrees float64 `yaml:"spread_degrees" koanf:"spread_degrees"`
	Region        string  `yaml:"region" koanf:"region"`
}

// Center returns the point detections are generated around
func (f FeedConfig) Center() geo.Location {
	return geo.Location{Latitude: f.CenterLat, Longitude: f.CenterLng, Region: f.Region}
}

// CamerasConfig holds the camera trap roster
type CamerasConfig struct {
	// Detections older than this stop counting towards a camera's activity
	ActivityWindow time.Duration  `yaml:"activity_window" koanf:"activity_window"`
	Cameras        []CameraConfig `yaml:"cameras" koanf:"cameras"`
}

// CameraConfig is a camera trap in config form
type CameraConfig struct {
	ID     string  `yaml:"id" koanf:"id"`
	Name   string  `yaml:"name" koanf:"name"`
	Lat    float64 `yaml:"lat" koanf:"lat"`
	Lng    float64 `yaml:"lng" koanf:"lng"`
	Region string  `yaml:"region" koanf:"region"`
	Status string  `yaml:"status" koanf:"status"`
}

// ToCamera converts CameraConfig to a cameras.Camera
func (c CameraConfig) ToCamera() (cameras.Camera, error) {
	loc, err := geo.NewLocation(c.Lat, c.Lng)
	if err != nil {
		return cameras.Camera{}, fmt.Errorf("camera %q: %w", c.ID, err)
	}
	loc.Region = c.Region

	status := cameras.Online
	if c.Status != "" {
		if status, err = cameras.ParseStatus(c.Status); err != nil {
			return cameras.Camera{}, fmt.Errorf("camera %q: %w", c.ID, err)
		}
	}
	return cameras.Camera{ID: c.ID, Name: c.Name, Location: loc, Status: status}, nil
}

// ContactsConfig holds community directory settings
type ContactsConfig struct {
	DefaultRegion string          `yaml:"default_region" koanf:"default_region"`
	Seed          []ContactConfig `yaml:"seed" koanf:"seed"`
}

// ContactConfig is a directory entry loaded at startup
type ContactConfig struct {
	Name     string `yaml:"name" koanf:"name"`
	Phone    string `yaml:"phone" koanf:"phone"`
	Village  string `yaml:"village" koanf:"village"`
	Category string `yaml:"category" koanf:"category"`
}

// ToDraft converts ContactConfig to a contacts.Draft
func (c ContactConfig) ToDraft() contacts.Draft {
	return contacts.Draft{
		Name:        c.Name,
		PhoneNumber: c.Phone,
		Village:     c.Village,
		Category:    contacts.Category(c.Category),
		AddedBy:     "config",
	}
}

// CameraRoster converts the configured cameras. Validate reports the same
// errors up front.
func (c *Config) CameraRoster() ([]cameras.Camera, error) {
	out := make([]cameras.Camera, 0, len(c.Cameras.Cameras))
	for _, cc := range c.Cameras.Cameras {
		cam, err := cc.ToCamera()
		if err != nil {
			return nil, err
		}
		out = append(out, cam)
	}
	return out, nil
}

// Stations converts the configured station roster
func (c *Config) Stations() []routing.Station {
	stations := make([]routing.Station, len(c.Routing.Stations))
	for i, s := range c.Routing.Stations {
		stations[i] = s.ToStation()
	}
	return stations
}

// Recipients converts the configured recipient roster
func (c *Config) Recipients() []notify.Recipient {
	recipients := make([]notify.Recipient, len(c.Notifications.Recipients))
	for i, r := range c.Notifications.Recipients {
		recipients[i] = r.ToRecipient()
	}
	return recipients
}

// DefaultConfig returns a default configuration for the Mtakuja conservancy
func DefaultConfig() *Config {
	return &Config{
		Alerts: AlertsConfig{
			AnimalSpeedKmh:         12,
			TimeZone:               "Africa/Nairobi",
			FallbackUTCOffsetHours: 3,
		},
		Routing: RoutingConfig{
			Provider: ProviderNone,
			Timeout:  10 * time.Second,
			Stations: []StationConfig{
				{ID: "s1", Name: "Response Team Alpha", Type: string(routing.Headquarters), Lat: -3.39642, Lng: 37.676531},
				{ID: "s2", Name: "Response Team Bravo", Type: string(routing.Outpost), Lat: -3.39764, Lng: 37.676841},
			},
		},
		Notifications: NotificationsConfig{
			Recipients: []RecipientConfig{
				{Group: string(notify.GroupKWS), Name: "Kenya Wildlife Service", Enabled: true, AutoNotify: true, ContactInfo: "+254 700 000 000"},
				{Group: string(notify.GroupKRCS), Name: "Kenya Red Cross Society", Enabled: true, AutoNotify: true, ContactInfo: "+254 703 037 000"},
				{Group: string(notify.GroupCommunity), Name: "Local Community", Enabled: true, AutoNotify: true, ContactInfo: "Community Alert System"},
			},
			OpenAI: OpenAIConfig{
				Model: "gpt-4o-mini",
			},
		},
		Daylight: DaylightConfig{
			Schedule:       "@every 6h",
			StaleThreshold: 24 * time.Hour,
			Sites: []SiteConfig{
				{ID: "mtakuja", Name: "Mtakuja", Lat: -3.39642, Lon: 37.676531},
			},
		},
		Cameras: CamerasConfig{
			ActivityWindow: cameras.DefaultActivityWindow,
			Cameras: []CameraConfig{
				{ID: "cam1", Name: "Camera West-01", Lat: -3.4362, Lng: 37.7801, Region: "Mtakuja Area", Status: string(cameras.Online)},
				{ID: "cam2", Name: "Camera Central-02", Lat: -3.43365, Lng: 37.782, Region: "Mtakuja Area", Status: string(cameras.Online)},
				{ID: "cam3", Name: "Camera East-03", Lat: -3.43495, Lng: 37.7841, Region: "Mtakuja Area", Status: string(cameras.Online)},
			},
		},
		Contacts: ContactsConfig{
			DefaultRegion: contacts.DefaultRegion,
		},
		Feed: FeedConfig{
			Schedule:      "@every 30s",
			CenterLat:     -3.39642,
			CenterLng:     37.676531,
			SpreadDegrees: 0.0075,
			Region:        "Mtakuja",
		},
	}
}

// ApplyDefaults fills unset values from DefaultConfig. Sections loaded from
// prefab start from zero values, so this runs before Validate.
func (c *Config) ApplyDefaults() {
	d := DefaultConfig()

	if c.Alerts.AnimalSpeedKmh == 0 {
		c.Alerts.AnimalSpeedKmh = d.Alerts.AnimalSpeedKmh
	}
	if c.Alerts.TimeZone == "" {
		c.Alerts.TimeZone = d.Alerts.TimeZone
		c.Alerts.FallbackUTCOffsetHours = d.Alerts.FallbackUTCOffsetHours
	}

	if c.Routing.Provider == "" {
		c.Routing.Provider = d.Routing.Provider
	}
	if c.Routing.Timeout == 0 {
		c.Routing.Timeout = d.Routing.Timeout
	}
	if len(c.Routing.Stations) == 0 {
		c.Routing.Stations = d.Routing.Stations
	}

	if len(c.Notifications.Recipients) == 0 {
		c.Notifications.Recipients = d.Notifications.Recipients
	}
	if c.Notifications.OpenAI.Model == "" {
		c.Notifications.OpenAI.Model = d.Notifications.OpenAI.Model
	}

	if c.Daylight.Schedule == "" {
		c.Daylight.Schedule = d.Daylight.Schedule
	}
	if c.Daylight.StaleThreshold == 0 {
		c.Daylight.StaleThreshold = d.Daylight.StaleThreshold
	}
	if len(c.Daylight.Sites) == 0 {
		c.Daylight.Sites = d.Daylight.Sites
	}

	if c.Cameras.ActivityWindow == 0 {
		c.Cameras.ActivityWindow = d.Cameras.ActivityWindow
	}
	if len(c.Cameras.Cameras) == 0 {
		c.Cameras.Cameras = d.Cameras.Cameras
	}
	if c.Contacts.DefaultRegion == "" {
		c.Contacts.DefaultRegion = d.Contacts.DefaultRegion
	}

	if c.Feed.Schedule == "" {
		c.Feed.Schedule = d.Feed.Schedule
	}
	if c.Feed.CenterLat == 0 && c.Feed.CenterLng == 0 {
		c.Feed.CenterLat = d.Feed.CenterLat
		c.Feed.CenterLng = d.Feed.CenterLng
		c.Feed.Region = d.Feed.Region
	}
	if c.Feed.SpreadDegrees == 0 {
		c.Feed.SpreadDegrees = d.Feed.SpreadDegrees
	}
}

// LoadFile reads a YAML config file over the defaults
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the server cannot run with
func (c *Config) Validate() error {
	var errs []error

	if c.Alerts.AnimalSpeedKmh <= 0 {
		errs = append(errs, fmt.Errorf("alerts.animal_speed_kmh must be positive, got %v", c.Alerts.AnimalSpeedKmh))
	}

	if len(c.Routing.Stations) == 0 {
		errs = append(errs, errors.New("routing.stations must list at least one station"))
	}
	seen := make(map[string]bool, len(c.Routing.Stations))
	for _, s := range c.Routing.Stations {
		if s.ID == "" {
			errs = append(errs, errors.New("routing.stations: station id is required"))
			continue
		}
		if seen[s.ID] {
			errs = append(errs, fmt.Errorf("routing.stations: duplicate station id %q", s.ID))
		}
		seen[s.ID] = true
		if !geo.IsValid(geo.Location{Latitude: s.Lat, Longitude: s.Lng}) {
			errs = append(errs, fmt.Errorf("routing.stations: station %q has invalid coordinates", s.ID))
		}
	}

	switch c.Routing.Provider {
	case "", ProviderNone:
	case ProviderGoogleRoutes, ProviderGoogleDirections:
		if c.Routing.APIKey == "" {
			errs = append(errs, fmt.Errorf("routing.api_key is required for provider %q", c.Routing.Provider))
		}
	default:
		errs = append(errs, fmt.Errorf("routing.provider %q is not one of none, %s, %s",
			c.Routing.Provider, ProviderGoogleRoutes, ProviderGoogleDirections))
	}

	for _, r := range c.Notifications.Recipients {
		switch notify.Group(r.Group) {
		case notify.GroupKWS, notify.GroupKRCS, notify.GroupCommunity:
		default:
			errs = append(errs, fmt.Errorf("notifications.recipients: unknown group %q", r.Group))
		}
	}

	if c.Daylight.Enabled {
		if c.Daylight.OpenWeatherAPIKey == "" {
			errs = append(errs, errors.New("daylight.openweather_api_key is required when daylight is enabled"))
		}
		if _, err := cron.ParseStandard(c.Daylight.Schedule); err != nil {
			errs = append(errs, fmt.Errorf("daylight.schedule: %w", err))
		}
	}

	if c.Cameras.ActivityWindow < 0 {
		errs = append(errs, errors.New("cameras.activity_window must not be negative"))
	}
	seenCams := make(map[string]bool, len(c.Cameras.Cameras))
	for _, cc := range c.Cameras.Cameras {
		if cc.ID == "" {
			errs = append(errs, errors.New("cameras: camera id is required"))
			continue
		}
		if seenCams[cc.ID] {
			errs = append(errs, fmt.Errorf("cameras: duplicate camera id %q", cc.ID))
		}
		seenCams[cc.ID] = true
		if _, err := cc.ToCamera(); err != nil {
			errs = append(errs, fmt.Errorf("cameras: %w", err))
		}
	}

	if c.Feed.Enabled {
		if _, err := cron.ParseStandard(c.Feed.Schedule); err != nil {
			errs = append(errs, fmt.Errorf("feed.schedule: %w", err))
		}
		if c.Feed.SpreadDegrees <= 0 {
			errs = append(errs, errors.New("feed.spread_degrees must be positive"))
		}
	}

	return errors.Join(errs...)
}
