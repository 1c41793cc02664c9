package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dpup/wildwatch/server/internal/clients/directions"
	"github.com/dpup/wildwatch/server/internal/clients/google"
	"github.com/dpup/wildwatch/server/internal/config"
	"github.com/dpup/wildwatch/server/internal/lib/geo"
	"github.com/dpup/wildwatch/server/internal/lib/response"
	"github.com/dpup/wildwatch/server/internal/lib/risk"
	"github.com/dpup/wildwatch/server/internal/lib/routing"
	"github.com/dpup/wildwatch/server/internal/lib/trajectory"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "risk":
		handleRisk()
	case "trajectory":
		handleTrajectory()
	case "route":
		handleRoute()
	case "distance":
		handleDistance()
	case "help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func handleRisk() {
	fs := flag.NewFlagSet("risk", flag.ExitOnError)
	species := fs.String("species", "", "Species tag (elephant, lion, rhino, buffalo)")
	distance := fs.Float64("distance", -1, "Distance to nearest settlement in meters")
	confidence := fs.Float64("confidence", 0, "Detection confidence percent")
	at := fs.String("at", "", "Detection time (RFC3339, default now)")
	tod := fs.String("tod", "", "Override time of day (day or night)")
	zone := fs.String("zone", "Africa/Nairobi", "Time zone for the day/night rule")

	fs.Parse(os.Args[2:])

	if *species == "" || *distance < 0 {
		fmt.Println("Example usage:")
		fmt.Println("  assess risk --species lion --distance 80 --confidence 95 --at 2024-05-01T21:30:00+03:00")
		fmt.Println("  (Lion close to Mtakuja at night)")
		os.Exit(1)
	}

	detectedAt := time.Now()
	if *at != "" {
		t, err := time.Parse(time.RFC3339, *at)
		if err != nil {
			log.Fatalf("Invalid --at: %v", err)
		}
		detectedAt = t
	}

	timeOfDay := risk.HourRule{Zone: risk.LoadZone(*zone, 3)}.TimeOfDay(detectedAt)
	switch strings.ToLower(*tod) {
	case "":
	case string(risk.Day):
		timeOfDay = risk.Day
	case string(risk.Night):
		timeOfDay = risk.Night
	default:
		log.Fatalf("Invalid --tod %q: use day or night", *tod)
	}

	sp := risk.ParseSpecies(*species)
	score := risk.Score(sp, *distance, *confidence, timeOfDay)

	fmt.Printf("Risk assessment:\n")
	fmt.Printf("  Species:     %s\n", sp)
	fmt.Printf("  Distance:    %.0f m\n", *distance)
	fmt.Printf("  Confidence:  %.0f%%\n", *confidence)
	fmt.Printf("  Time of day: %s\n", timeOfDay)
	fmt.Printf("  Score:       %d\n", score)
	fmt.Printf("  Level:       %s\n", risk.LevelForScore(score))
	fmt.Printf("  ETA:         %d min to settlement\n", response.ETAMinutes(*distance))
}

func handleTrajectory() {
	fs := flag.NewFlagSet("trajectory", flag.ExitOnError)
	lat := fs.Float64("lat", 0, "Latitude of detection")
	lng := fs.Float64("lng", 0, "Longitude of detection")
	direction := fs.String("direction", "N", "Compass heading (N, NE, E, SE, S, SW, W, NW)")
	speed := fs.Float64("speed", trajectory.DefaultSpeedKmh, "Travel speed in km/h")

	fs.Parse(os.Args[2:])

	if *lat == 0 && *lng == 0 {
		fmt.Println("Example usage:")
		fmt.Println("  assess trajectory --lat -3.39642 --lng 37.676531 --direction NE")
		os.Exit(1)
	}

	if !trajectory.IsKnownDirection(*direction) {
		fmt.Printf("Warning: unknown direction %q, heading north\n", *direction)
	}

	points := trajectory.Predict(geo.Location{Latitude: *lat, Longitude: *lng}, *direction, *speed)

	fmt.Printf("Predicted trajectory at %.1f km/h heading %s:\n", *speed, strings.ToUpper(*direction))
	fmt.Printf("  now:    (%.6f, %.6f)\n", points[0].Latitude, points[0].Longitude)
	for i, p := range points[1:] {
		fmt.Printf("  +%dmin: (%.6f, %.6f)\n", trajectory.Horizons[i], p.Latitude, p.Longitude)
	}
}

func handleRoute() {
	fs := flag.NewFlagSet("route", flag.ExitOnError)
	lat := fs.Float64("lat", 0, "Latitude of alert")
	lng := fs.Float64("lng", 0, "Longitude of alert")
	configPath := fs.String("config", "", "YAML config with stations and routing provider")
	timeout := fs.Duration("timeout", 15*time.Second, "Maximum time to wait for the provider")

	fs.Parse(os.Args[2:])

	if *lat == 0 && *lng == 0 {
		fmt.Println("Example usage:")
		fmt.Println("  assess route --lat -3.40100 --lng 37.68500 [--config wildwatch.yaml]")
		os.Exit(1)
	}

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}
		cfg = loaded
	}

	var provider routing.DirectionsProvider = routing.NullProvider{}
	switch cfg.Routing.Provider {
	case config.ProviderGoogleRoutes:
		provider = google.NewClient(cfg.Routing.APIKey)
	case config.ProviderGoogleDirections:
		p, err := directions.NewProvider(cfg.Routing.APIKey)
		if err != nil {
			log.Fatalf("Error creating directions provider: %v", err)
		}
		provider = p
	}

	router := routing.NewRouter(provider, routing.WithTimeout(cfg.Routing.Timeout))

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	dest := geo.Location{Latitude: *lat, Longitude: *lng}
	route, err := router.ComputeRoute(ctx, dest, cfg.Stations()).Await(ctx)
	if err != nil {
		log.Fatalf("Error computing route: %v", err)
	}

	fmt.Printf("Response route (%s via %s):\n", route.Source, provider.Name())
	fmt.Printf("  From:     %s [%s] (%.6f, %.6f)\n", route.OriginStationName, route.OriginStationID,
		route.Origin.Latitude, route.Origin.Longitude)
	fmt.Printf("  To:       (%.6f, %.6f)\n", dest.Latitude, dest.Longitude)
	fmt.Printf("  Distance: %.2f km\n", route.DistanceKm)
	fmt.Printf("  Duration: %d min\n", route.DurationMinutes)
	fmt.Printf("  Path:     %d points\n", len(route.Path))
	if route.EncodedPath != "" {
		fmt.Printf("  Polyline: %s\n", route.EncodedPath)
	}
}

func handleDistance() {
	fs := flag.NewFlagSet("distance", flag.ExitOnError)
	lat1 := fs.Float64("lat1", 0, "Latitude of first point")
	lng1 := fs.Float64("lng1", 0, "Longitude of first point")
	lat2 := fs.Float64("lat2", 0, "Latitude of second point")
	lng2 := fs.Float64("lng2", 0, "Longitude of second point")
	polyline := fs.String("polyline", "", "Encoded polyline to measure instead of two points")

	fs.Parse(os.Args[2:])

	if *polyline != "" {
		points, err := geo.DecodePolyline(*polyline)
		if err != nil {
			log.Fatalf("Error decoding polyline: %v", err)
		}
		km := geo.PathLengthKm(points)
		fmt.Printf("Polyline length:\n")
		fmt.Printf("  Points:   %d\n", len(points))
		fmt.Printf("  Distance: %.2f meters (%.3f km)\n", km*1000, km)
		return
	}

	if *lat1 == 0 && *lng1 == 0 && *lat2 == 0 && *lng2 == 0 {
		fmt.Println("Example usage:")
		fmt.Println("  assess distance --lat1 -3.39642 --lng1 37.676531 --lat2 -3.39764 --lng2 37.676841")
		fmt.Println("  (Distance between Response Team Alpha and Bravo)")
		os.Exit(1)
	}

	p1 := geo.Location{Latitude: *lat1, Longitude: *lng1}
	p2 := geo.Location{Latitude: *lat2, Longitude: *lng2}
	km := geo.DistanceKm(p1, p2)

	fmt.Printf("Distance between points:\n")
	fmt.Printf("  Point 1: (%.6f, %.6f)\n", p1.Latitude, p1.Longitude)
	fmt.Printf("  Point 2: (%.6f, %.6f)\n", p2.Latitude, p2.Longitude)
	fmt.Printf("  Distance: %.2f meters (%.3f km)\n", km*1000, km)
	fmt.Printf("  Fallback road estimate: %.3f km, %d min\n",
		km*routing.RoadCurvatureFactor, routing.FallbackDurationMinutes(km*routing.RoadCurvatureFactor))
}

func printUsage() {
	fmt.Println("assess - Wildlife alert assessment tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  assess <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  risk        Classify a detection's risk level")
	fmt.Println("  trajectory  Predict where an animal is heading")
	fmt.Println("  route       Route the nearest response station to a point")
	fmt.Println("  distance    Great-circle distance between two points or along a polyline")
	fmt.Println("  help        Show this help message")
	fmt.Println()
	fmt.Println("Use 'assess <command>' without options to see examples")
}
