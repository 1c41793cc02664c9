package google

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dpup/wildwatch/server/internal/lib/geo"
	"github.com/dpup/wildwatch/server/internal/lib/routing"
)

const (
	defaultBaseURL = "https://routes.googleapis.com"
	fieldMask      = "routes.duration,routes.staticDuration,routes.distanceMeters,routes.polyline.encodedPolyline,routes.travelAdvisory.speedReadingIntervals"
)

// HTTPDoer is the subset of *http.Client the client needs
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client provides access to Google Routes API v2 and serves as a live
// directions provider for response routing.
type Client struct {
	apiKey     string
	httpClient HTTPDoer
	baseURL    string
}

var _ routing.DirectionsProvider = (*Client)(nil)

// RouteData represents the processed route information from Google Routes API
type RouteData struct {
	DurationSeconds       int32
	StaticDurationSeconds int32
	DistanceMeters        int32
	Polyline              string
	SpeedReadings         []SpeedReading
}

// SpeedReading represents traffic speed data for route segments
type SpeedReading struct {
	StartIndex    int32
	EndIndex      int32
	SpeedCategory string // "NORMAL", "SLOW", "TRAFFIC_JAM"
}

// NewClient creates a new Google Routes API client
func NewClient(apiKey string) *Client {
	return NewClientWithHTTPDoer(apiKey, defaultBaseURL, &http.Client{
		Timeout: 30 * time.Second,
	})
}

// NewClientWithHTTPDoer creates a client with a custom transport, used in tests
func NewClientWithHTTPDoer(apiKey, baseURL string, doer HTTPDoer) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: doer,
	}
}

// Name implements routing.DirectionsProvider
func (c *Client) Name() string {
	return "google-routes"
}

// Directions implements routing.DirectionsProvider
func (c *Client) Directions(ctx context.Context, req routing.DirectionsRequest) (*routing.Directions, error) {
	data, err := c.ComputeRoutes(ctx, req.Origin, req.Destination, req.DepartureTime)
	if err != nil {
		return nil, err
	}

	var path []geo.Location
	if data.Polyline != "" {
		path, err = geo.DecodePolyline(data.Polyline)
		if err != nil {
			return nil, fmt.Errorf("failed to decode route polyline: %w", err)
		}
	}

	return &routing.Directions{
		DistanceMeters:  int(data.DistanceMeters),
		DurationSeconds: int(data.DurationSeconds),
		Path:            path,
	}, nil
}

// ComputeRoutes requests a traffic-aware driving route. A zero departure
// time lets the API use the current time.
func (c *Client) ComputeRoutes(ctx context.Context, origin, destination geo.Location, departure time.Time) (*RouteData, error) {
	requestBody := map[string]interface{}{
		"origin":            waypoint(origin),
		"destination":       waypoint(destination),
		"travelMode":        "DRIVE",
		"routingPreference": "TRAFFIC_AWARE_OPTIMAL",
		"extraComputations": []string{"TRAFFIC_ON_POLYLINE"},
	}
	// The API rejects departure times in the past
	if !departure.IsZero() && departure.After(time.Now()) {
		requestBody["departureTime"] = departure.UTC().Format(time.RFC3339)
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/directions/v2:computeRoutes", bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Field mask is required or the API returns errors
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("X-Goog-FieldMask", fieldMask)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("rate limit exceeded: %w", routing.ErrProviderUnavailable)
	}
	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API error %d: %s", resp.StatusCode, string(body))
	}

	var response GoogleRoutesResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(response.Routes) == 0 {
		return nil, fmt.Errorf("no routes found in response")
	}

	return processRouteResponse(response.Routes[0])
}

func waypoint(l geo.Location) map[string]interface{} {
	return map[string]interface{}{
		"location": map[string]interface{}{
			"latLng": map[string]interface{}{
				"latitude":  l.Latitude,
				"longitude": l.Longitude,
			},
		},
	}
}

// processRouteResponse converts a Google route to RouteData
func processRouteResponse(route GoogleRoute) (*RouteData, error) {
	durationSeconds, err := parseDuration(route.Duration)
	if err != nil {
		return nil, fmt.Errorf("failed to parse duration: %w", err)
	}

	var staticSeconds int32
	if route.StaticDuration != "" {
		if staticSeconds, err = parseDuration(route.StaticDuration); err != nil {
			return nil, fmt.Errorf("failed to parse static duration: %w", err)
		}
	}

	var speedReadings []SpeedReading
	if route.TravelAdvisory != nil {
		for _, interval := range route.TravelAdvisory.SpeedReadingIntervals {
			speedReadings = append(speedReadings, SpeedReading{
				StartIndex:    interval.StartPolylinePointIndex,
				EndIndex:      interval.EndPolylinePointIndex,
				SpeedCategory: interval.Speed,
			})
		}
	}

	return &RouteData{
		DurationSeconds:       durationSeconds,
		StaticDurationSeconds: staticSeconds,
		DistanceMeters:        route.DistanceMeters,
		Polyline:              route.Polyline.EncodedPolyline,
		SpeedReadings:         speedReadings,
	}, nil
}

// parseDuration parses Google's duration format like "450s" to seconds
func parseDuration(durationStr string) (int32, error) {
	if durationStr == "" {
		return 0, fmt.Errorf("empty duration string")
	}

	if len(durationStr) > 1 && durationStr[len(durationStr)-1] == 's' {
		durationStr = durationStr[:len(durationStr)-1]
	}

	var seconds int32
	_, err := fmt.Sscanf(durationStr, "%d", &seconds)
	return seconds, err
}

// GoogleRoutesResponse represents the API response structure
type GoogleRoutesResponse struct {
	Routes []GoogleRoute `json:"routes"`
}

// GoogleRoute represents a single route in the response
type GoogleRoute struct {
	Duration       string                `json:"duration"`
	StaticDuration string                `json:"staticDuration"`
	DistanceMeters int32                 `json:"distanceMeters"`
	Polyline       GooglePolyline        `json:"polyline"`
	TravelAdvisory *GoogleTravelAdvisory `json:"travelAdvisory,omitempty"`
}

// GooglePolyline represents the route polyline
type GooglePolyline struct {
	EncodedPolyline string `json:"encodedPolyline"`
}

// GoogleTravelAdvisory represents traffic information
type GoogleTravelAdvisory struct {
	SpeedReadingIntervals []GoogleSpeedInterval `json:"speedReadingIntervals"`
}

// GoogleSpeedInterval represents speed data for a route segment
type GoogleSpeedInterval struct {
	StartPolylinePointIndex int32  `json:"startPolylinePointIndex"`
	EndPolylinePointIndex   int32  `json:"endPolylinePointIndex"`
	Speed                   string `json:"speed"`
}
