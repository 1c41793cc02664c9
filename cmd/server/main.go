package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/dpup/prefab"
	"github.com/dpup/prefab/logging"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	api "github.com/dpup/wildwatch/server/api/v1"
	"github.com/dpup/wildwatch/server/internal/cache"
	"github.com/dpup/wildwatch/server/internal/clients/directions"
	"github.com/dpup/wildwatch/server/internal/clients/google"
	"github.com/dpup/wildwatch/server/internal/clients/weather"
	"github.com/dpup/wildwatch/server/internal/config"
	"github.com/dpup/wildwatch/server/internal/lib/alerts"
	"github.com/dpup/wildwatch/server/internal/lib/cameras"
	"github.com/dpup/wildwatch/server/internal/lib/contacts"
	"github.com/dpup/wildwatch/server/internal/lib/notify"
	"github.com/dpup/wildwatch/server/internal/lib/risk"
	"github.com/dpup/wildwatch/server/internal/lib/routing"
	"github.com/dpup/wildwatch/server/internal/metrics"
	"github.com/dpup/wildwatch/server/internal/services"
)

func main() {
	// Local development keys; missing file is fine
	if err := godotenv.Load(); err == nil {
		log.Printf("Loaded environment from .env")
	}

	appConfig := loadConfig()

	// Background jobs log through prefab, which needs a logger on the context
	ctx, cancel := context.WithCancel(logging.EnsureLogger(context.Background()))
	defer cancel()

	collector, err := metrics.NewCollector(nil)
	if err != nil {
		log.Fatalf("Failed to register metrics: %v", err)
	}

	cacheInstance := cache.NewCache()
	cacheInstance.StartPeriodicCleanup(ctx, 10*time.Minute)

	router := routing.NewRouter(directionsProvider(appConfig),
		routing.WithTimeout(appConfig.Routing.Timeout),
		routing.WithMetrics(collector),
	)

	roster, err := appConfig.CameraRoster()
	if err != nil {
		log.Fatalf("Invalid camera roster: %v", err)
	}
	registry := cameras.NewRegistry(roster, cameras.WithWindow(appConfig.Cameras.ActivityWindow))

	directory := contacts.NewDirectory(contacts.WithDefaultRegion(appConfig.Contacts.DefaultRegion))
	for _, c := range appConfig.Contacts.Seed {
		if _, err := directory.Add(c.ToDraft()); err != nil {
			log.Printf("Skipping seeded contact %q: %v", c.Name, err)
		}
	}

	centerOpts := []notify.Option{
		notify.WithMetrics(collector),
		notify.WithDelivery(func(ctx context.Context, n notify.Notification) {
			if !n.Includes(notify.GroupCommunity) {
				return
			}
			reached := directory.RecordNotified(n.Timestamp)
			logging.Infow(ctx, "Community contacts notified", "notification_id", n.ID, "reached", reached)
		}),
	}
	if key := appConfig.Notifications.OpenAI.APIKey; key != "" {
		openAI := notify.NewOpenAIBriefer(key, appConfig.Notifications.OpenAI.Model, appConfig.Notifications.OpenAI.BaseURL)
		briefer := notify.NewCachedBriefer(openAI, cache.NewBriefingAdapter(cacheInstance))
		centerOpts = append(centerOpts, notify.WithBriefer(briefer))
		log.Printf("Community briefings enabled (model: %s)", appConfig.Notifications.OpenAI.Model)
	}
	center := notify.NewCenter(appConfig.Recipients(), centerOpts...)

	hourRule := risk.HourRule{Zone: risk.LoadZone(appConfig.Alerts.TimeZone, appConfig.Alerts.FallbackUTCOffsetHours)}
	var timeOfDay alerts.TimeOfDayResolver = alerts.HourResolver(hourRule)
	if appConfig.Daylight.Enabled {
		sunStore := cache.NewSunStore(cacheInstance, appConfig.Daylight.StaleThreshold)
		daylight := services.NewDaylightService(weather.NewClient(appConfig.Daylight.OpenWeatherAPIKey), sunStore, appConfig.Daylight, hourRule)
		if err := daylight.Start(ctx); err != nil {
			log.Fatalf("Failed to start daylight refresh: %v", err)
		}
		timeOfDay = daylight
	}

	manager := alerts.NewManager(
		alerts.WithTimeOfDay(timeOfDay),
		alerts.WithSpeed(appConfig.Alerts.AnimalSpeedKmh),
		alerts.WithMetrics(collector),
		alerts.WithCameras(registry),
		alerts.WithListener(center.HandleEvent),
	)

	if appConfig.Feed.Enabled {
		feed := services.NewFeedService(manager, appConfig.Feed, 0, registry.IDs()...)
		if err := feed.Start(ctx); err != nil {
			log.Fatalf("Failed to start synthetic feed: %v", err)
		}
	}

	stations := appConfig.Stations()
	alertsService := services.NewAlertsService(manager, router, stations, registry)
	notificationsService := services.NewNotificationsService(center)
	contactsService := services.NewContactsService(directory)
	mapService := services.NewMapService(manager, stations, registry)

	log.Printf("Wildlife alert server starting")
	log.Printf("Response stations: %d", len(stations))
	log.Printf("Camera traps: %d", len(registry.IDs()))
	log.Printf("Directions provider: %s", router.Provider().Name())
	log.Printf("Recipient groups: %d", len(center.Recipients()))

	// Server configuration (port, etc.) will be loaded from prefab.yaml/env vars
	server := prefab.New(
		prefab.WithContext(ctx),
		prefab.WithGRPCReflection(),
		prefab.WithHTTPHandlerFunc("/", homepageHandler),
		prefab.WithHTTPHandler(services.KMLPath, mapService.Handler()),
		prefab.WithHTTPHandlerFunc("/metrics", promhttp.Handler().ServeHTTP),
	)

	// Register gRPC services using Prefab's service registrar
	api.RegisterAlertsServiceServer(server.ServiceRegistrar(), alertsService)
	api.RegisterNotificationsServiceServer(server.ServiceRegistrar(), notificationsService)
	api.RegisterContactsServiceServer(server.ServiceRegistrar(), contactsService)

	// Register gateway handlers using Prefab's gateway args
	if err := api.RegisterAlertsServiceHandlerFromEndpoint(server.GatewayArgs()); err != nil {
		log.Fatalf("Failed to register Alerts service gateway: %v", err)
	}
	if err := api.RegisterNotificationsServiceHandlerFromEndpoint(server.GatewayArgs()); err != nil {
		log.Fatalf("Failed to register Notifications service gateway: %v", err)
	}
	if err := api.RegisterContactsServiceHandlerFromEndpoint(server.GatewayArgs()); err != nil {
		log.Fatalf("Failed to register Contacts service gateway: %v", err)
	}

	// Start the server (blocks until shutdown)
	if err := server.Start(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
	center.Wait()
}

// loadConfig loads configuration using Prefab's config system
// Configuration is loaded from prefab.yaml and environment variables with PF__ prefix
func loadConfig() *config.Config {
	appConfig := &config.Config{}

	sections := []struct {
		key string
		out interface{}
	}{
		{"alerts", &appConfig.Alerts},
		{"routing", &appConfig.Routing},
		{"notifications", &appConfig.Notifications},
		{"daylight", &appConfig.Daylight},
		{"cameras", &appConfig.Cameras},
		{"contacts", &appConfig.Contacts},
		{"feed", &appConfig.Feed},
	}
	for _, s := range sections {
		if err := prefab.Config.Unmarshal(s.key, s.out); err != nil {
			log.Fatalf("Failed to unmarshal %s section: %v", s.key, err)
		}
	}

	appConfig.ApplyDefaults()
	if err := appConfig.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return appConfig
}

// directionsProvider selects the live routing backend. Without one every
// route is a straight-line estimate.
func directionsProvider(appConfig *config.Config) routing.DirectionsProvider {
	switch appConfig.Routing.Provider {
	case config.ProviderGoogleRoutes:
		return google.NewClient(appConfig.Routing.APIKey)
	case config.ProviderGoogleDirections:
		p, err := directions.NewProvider(appConfig.Routing.APIKey)
		if err != nil {
			log.Fatalf("Failed to create directions provider: %v", err)
		}
		return p
	default:
		return routing.NullProvider{}
	}
}

// homepageHandler serves a simple HTML homepage at the server root
func homepageHandler(w http.ResponseWriter, r *http.Request) {
	// Only handle the root path
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	html := `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>wildwatch</title>
    <style>
        body {
            font-family: 'Courier New', Consolas, monospace;
            background: #000;
            color: #0f0;
            padding: 20px;
            line-height: 1.4;
        }
        a { color: #0ff; text-decoration: none; }
        a:hover { text-decoration: underline; }
        pre { margin: 0; }
        .header { color: #ff0; }
    </style>
</head>
<body>
<pre>
<span class="header">wildwatch</span>

Wildlife intrusion alerts, risk scoring and response routing
for the Mtakuja conservancy.

<span class="header">API Endpoints:</span>

Alerts:
  POST /api/v1/detections                    - Report a detection
  <a href="/api/v1/alerts">GET  /api/v1/alerts</a>                        - List alerts (?status=, ?active=, ?since=)
  <a href="/api/v1/alerts/stats">GET  /api/v1/alerts/stats</a>                  - Response statistics
  GET  /api/v1/alerts/{id}                   - Alert details
  POST /api/v1/alerts/{id}/dispatch          - Dispatch a response team
  POST /api/v1/alerts/{id}/resolve           - Close an alert
  GET  /api/v1/alerts/{id}/route             - Route from the nearest station

Stations and cameras:
  <a href="/api/v1/stations">GET  /api/v1/stations</a>                      - Response stations
  <a href="/api/v1/cameras">GET  /api/v1/cameras</a>                       - Camera traps and recent activity
  PUT  /api/v1/cameras/{id}/status           - Set a camera status

Notifications:
  <a href="/api/v1/notifications">GET  /api/v1/notifications</a>                 - Notification feed
  POST /api/v1/notifications                 - Send a custom notification
  <a href="/api/v1/recipients">GET  /api/v1/recipients</a>                    - Recipient groups

Community contacts:
  <a href="/api/v1/contacts">GET  /api/v1/contacts</a>                      - Directory (?q=, ?village=, ?category=)
  <a href="/api/v1/contacts/stats">GET  /api/v1/contacts/stats</a>                - Directory statistics
  POST /api/v1/contacts                      - Add a contact
  POST /api/v1/contacts/import               - Import contacts from CSV

Map and monitoring:
  <a href="/api/v1/map.kml">GET  /api/v1/map.kml</a>                       - KML layer of stations, cameras and alerts
  <a href="/metrics">GET  /metrics</a>                               - Prometheus metrics

<span class="header">Data Sources:</span>
  • Camera trap detections
  • Google Routes / Directions API   - Road routes for response teams
  • OpenWeatherMap API               - Sunrise and sunset
</pre>
</body>
</html>`

	if _, err := fmt.Fprint(w, html); err != nil {
		slog.Error("Failed to write homepage HTML", "error", err)
	}
}
