package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpup/wildwatch/server/internal/lib/cameras"
	"github.com/dpup/wildwatch/server/internal/lib/contacts"
	"github.com/dpup/wildwatch/server/internal/lib/notify"
	"github.com/dpup/wildwatch/server/internal/lib/routing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wildwatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	stations := cfg.Stations()
	require.Len(t, stations, 2)
	assert.Equal(t, "s1", stations[0].ID)
	assert.Equal(t, routing.Headquarters, stations[0].Type)
	assert.InDelta(t, -3.39642, stations[0].Location.Latitude, 1e-9)
	assert.Equal(t, routing.Outpost, stations[1].Type)

	recipients := cfg.Recipients()
	require.Len(t, recipients, 3)
	assert.Equal(t, notify.DefaultRecipients(), recipients)

	cams, err := cfg.CameraRoster()
	require.NoError(t, err)
	assert.Equal(t, cameras.DefaultCameras(), cams)

	draft := ContactConfig{Name: "Lucy", Phone: "0700000001", Village: "Kuku"}.ToDraft()
	assert.Equal(t, "config", draft.AddedBy)
}

func TestLoadFile_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
alerts:
  animal_speed_kmh: 8
cameras:
  activity_window: 6h
  cameras:
    - id: river
      name: River Crossing
      lat: -3.41
      lng: 37.70
      status: maintenance
routing:
  provider: google_directions
  api_key: maps-key
  timeout: 5s
  stations:
    - id: gate-1
      name: North Gate
      type: GATE
      lat: -3.38
      lng: 37.67
feed:
  enabled: true
  schedule: "@every 1m"
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 8.0, cfg.Alerts.AnimalSpeedKmh)
	assert.Equal(t, 6*time.Hour, cfg.Cameras.ActivityWindow)
	cams, err := cfg.CameraRoster()
	require.NoError(t, err)
	require.Len(t, cams, 1)
	assert.Equal(t, cameras.Maintenance, cams[0].Status)
	assert.Equal(t, contacts.DefaultRegion, cfg.Contacts.DefaultRegion)
	assert.Equal(t, "Africa/Nairobi", cfg.Alerts.TimeZone, "unset keys keep defaults")
	assert.Equal(t, ProviderGoogleDirections, cfg.Routing.Provider)
	assert.Equal(t, 5*time.Second, cfg.Routing.Timeout)
	require.Len(t, cfg.Routing.Stations, 1)
	assert.Equal(t, routing.Gate, cfg.Stations()[0].Type)
	assert.True(t, cfg.Feed.Enabled)
	assert.Equal(t, 0.0075, cfg.Feed.SpreadDegrees)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Routing.Provider = ProviderGoogleRoutes
	cfg.Routing.APIKey = "k"
	cfg.Feed.SpreadDegrees = 0.01

	cfg.ApplyDefaults()
	require.NoError(t, cfg.Validate())

	d := DefaultConfig()
	assert.Equal(t, ProviderGoogleRoutes, cfg.Routing.Provider, "set values are kept")
	assert.Equal(t, 0.01, cfg.Feed.SpreadDegrees)
	assert.Equal(t, d.Alerts, cfg.Alerts)
	assert.Equal(t, d.Routing.Stations, cfg.Routing.Stations)
	assert.Equal(t, d.Routing.Timeout, cfg.Routing.Timeout)
	assert.Equal(t, d.Notifications, cfg.Notifications)
	assert.Equal(t, d.Daylight, cfg.Daylight)
	assert.Equal(t, d.Feed.Center(), cfg.Feed.Center())
	assert.Equal(t, d.Cameras, cfg.Cameras)
	assert.Equal(t, d.Contacts, cfg.Contacts)
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config")

	_, err = LoadFile(writeConfig(t, "alerts: [unclosed"))
	assert.ErrorContains(t, err, "failed to parse config")

	_, err = LoadFile(writeConfig(t, "routing:\n  stations: []\n"))
	assert.ErrorContains(t, err, "at least one station")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		contains string
	}{
		{"speed", func(c *Config) { c.Alerts.AnimalSpeedKmh = 0 }, "animal_speed_kmh"},
		{"duplicate station", func(c *Config) { c.Routing.Stations[1].ID = "s1" }, "duplicate station id"},
		{"missing station id", func(c *Config) { c.Routing.Stations[0].ID = "" }, "station id is required"},
		{"bad coordinates", func(c *Config) { c.Routing.Stations[0].Lat = 95 }, "invalid coordinates"},
		{"unknown provider", func(c *Config) { c.Routing.Provider = "osrm" }, "is not one of"},
		{"provider key", func(c *Config) { c.Routing.Provider = ProviderGoogleRoutes }, "api_key is required"},
		{"recipient group", func(c *Config) { c.Notifications.Recipients[0].Group = "PRESS" }, "unknown group"},
		{"daylight key", func(c *Config) { c.Daylight.Enabled = true }, "openweather_api_key"},
		{"daylight schedule", func(c *Config) {
			c.Daylight.Enabled = true
			c.Daylight.OpenWeatherAPIKey = "k"
			c.Daylight.Schedule = "sometimes"
		}, "daylight.schedule"},
		{"negative camera window", func(c *Config) { c.Cameras.ActivityWindow = -time.Hour }, "activity_window"},
		{"duplicate camera", func(c *Config) { c.Cameras.Cameras[1].ID = "cam1" }, "duplicate camera id"},
		{"camera coordinates", func(c *Config) { c.Cameras.Cameras[0].Lng = 200 }, "invalid coordinates"},
		{"camera status", func(c *Config) { c.Cameras.Cameras[2].Status = "asleep" }, "invalid camera status"},
		{"feed schedule", func(c *Config) {
			c.Feed.Enabled = true
			c.Feed.Schedule = "* * *"
		}, "feed.schedule"},
		{"feed spread", func(c *Config) {
			c.Feed.Enabled = true
			c.Feed.SpreadDegrees = 0
		}, "spread_degrees"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.contains)
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Alerts.AnimalSpeedKmh = -1
	cfg.Routing.Provider = "osrm"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "animal_speed_kmh")
	assert.Contains(t, err.Error(), "osrm")
}
