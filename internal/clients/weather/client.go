package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dpup/wildwatch/server/internal/lib/geo"
)

const defaultBaseURL = "https://api.openweathermap.org"

// HTTPDoer is the subset of *http.Client the client needs
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client provides access to the OpenWeatherMap current weather API, used for
// sunrise and sunset at monitored sites.
type Client struct {
	apiKey     string
	httpClient HTTPDoer
	baseURL    string
}

// SunTimes holds the daylight window for a location on the day it was fetched
type SunTimes struct {
	Location   geo.Location `json:"location"`
	Sunrise    time.Time    `json:"sunrise"`
	Sunset     time.Time    `json:"sunset"`
	Conditions string       `json:"conditions,omitempty"`
	FetchedAt  time.Time    `json:"fetched_at"`
}

// IsDaylight reports whether t falls between sunrise (inclusive) and sunset
func (s SunTimes) IsDaylight(t time.Time) bool {
	return !t.Before(s.Sunrise) && t.Before(s.Sunset)
}

// NewClient creates a new OpenWeatherMap API client
func NewClient(apiKey string) *Client {
	return NewClientWithHTTPDoer(apiKey, defaultBaseURL, &http.Client{
		Timeout: 30 * time.Second,
	})
}

// NewClientWithHTTPDoer creates a client with a custom transport
func NewClientWithHTTPDoer(apiKey, baseURL string, doer HTTPDoer) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:     apiKey,
		httpClient: doer,
		baseURL:    baseURL,
	}
}

// GetSunTimes retrieves today's sunrise and sunset for a location
func (c *Client) GetSunTimes(ctx context.Context, loc geo.Location) (*SunTimes, error) {
	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%.6f", loc.Latitude))
	params.Set("lon", fmt.Sprintf("%.6f", loc.Longitude))
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")

	requestURL := fmt.Sprintf("%s/data/2.5/weather?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("rate limit exceeded (60/minute)")
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("invalid API key")
	}
	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API error %d: %s", resp.StatusCode, string(body))
	}

	var response OpenWeatherCurrentResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if response.Sys.Sunrise == 0 || response.Sys.Sunset == 0 {
		return nil, fmt.Errorf("response has no sunrise/sunset")
	}

	var conditions string
	if len(response.Weather) > 0 {
		conditions = response.Weather[0].Description
	}

	return &SunTimes{
		Location:   loc,
		Sunrise:    time.Unix(response.Sys.Sunrise, 0).UTC(),
		Sunset:     time.Unix(response.Sys.Sunset, 0).UTC(),
		Conditions: conditions,
		FetchedAt:  time.Now().UTC(),
	}, nil
}

// OpenWeatherCurrentResponse represents the fields read from the current weather API
type OpenWeatherCurrentResponse struct {
	Coord    OpenWeatherCoord     `json:"coord"`
	Weather  []OpenWeatherWeather `json:"weather"`
	Sys      OpenWeatherSys       `json:"sys"`
	Timezone int                  `json:"timezone"`
	Name     string               `json:"name"`
	Dt       int64                `json:"dt"`
}

// OpenWeatherCoord represents coordinates in response
type OpenWeatherCoord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// OpenWeatherWeather represents weather condition
type OpenWeatherWeather struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// OpenWeatherSys carries unix sunrise and sunset timestamps
type OpenWeatherSys struct {
	Country string `json:"country"`
	Sunrise int64  `json:"sunrise"`
	Sunset  int64  `json:"sunset"`
}
