package google

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dpup/wildwatch/server/internal/lib/geo"
	"github.com/dpup/wildwatch/server/internal/lib/routing"
)

// MockHTTPDoer is a mock implementation of HTTPDoer
type MockHTTPDoer struct {
	mock.Mock
}

func (m *MockHTTPDoer) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	if resp := args.Get(0); resp != nil {
		return resp.(*http.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

// Helper function to load test fixture data
func loadTestFixture(t *testing.T, filename string) string {
	data, err := os.ReadFile("testdata/" + filename)
	require.NoError(t, err, "Failed to load test fixture %s", filename)
	return string(data)
}

// Helper function to create mock HTTP response
func createMockResponse(statusCode int, body string) *http.Response {
	return &http.Response{
		StatusCode: statusCode,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

var (
	hq       = geo.Location{Latitude: -3.39642, Longitude: 37.676531}
	boundary = geo.Location{Latitude: -3.401, Longitude: 37.685}
)

func TestComputeRoutes_Success(t *testing.T) {
	mockHTTP := &MockHTTPDoer{}
	mockHTTP.On("Do", mock.AnythingOfType("*http.Request")).Return(
		createMockResponse(200, loadTestFixture(t, "hq_to_boundary.json")), nil)

	client := NewClientWithHTTPDoer("test-api-key", "https://routes.googleapis.com", mockHTTP)

	routeData, err := client.ComputeRoutes(context.Background(), hq, boundary, time.Time{})

	require.NoError(t, err)
	require.NotNil(t, routeData)
	assert.Equal(t, int32(262), routeData.DurationSeconds)
	assert.Equal(t, int32(240), routeData.StaticDurationSeconds)
	assert.Equal(t, int32(1480), routeData.DistanceMeters)
	assert.NotEmpty(t, routeData.Polyline)
	require.Len(t, routeData.SpeedReadings, 2)
	assert.Equal(t, "SLOW", routeData.SpeedReadings[1].SpeedCategory)

	mockHTTP.AssertExpectations(t)
}

func TestDirections_DecodesPath(t *testing.T) {
	mockHTTP := &MockHTTPDoer{}
	mockHTTP.On("Do", mock.AnythingOfType("*http.Request")).Return(
		createMockResponse(200, loadTestFixture(t, "hq_to_boundary.json")), nil)

	client := NewClientWithHTTPDoer("test-api-key", "", mockHTTP)

	dir, err := client.Directions(context.Background(), routing.DirectionsRequest{Origin: hq, Destination: boundary})
	require.NoError(t, err)

	assert.Equal(t, 1480, dir.DistanceMeters)
	assert.Equal(t, 262, dir.DurationSeconds)
	require.Len(t, dir.Path, 3)
	assert.InDelta(t, -3.39642, dir.Path[0].Latitude, 1e-5)
	assert.InDelta(t, 37.68, dir.Path[1].Longitude, 1e-5)
	assert.InDelta(t, -3.401, dir.Path[2].Latitude, 1e-5)
	assert.Equal(t, "google-routes", client.Name())
}

func TestComputeRoutes_NoRoutes(t *testing.T) {
	mockHTTP := &MockHTTPDoer{}
	mockHTTP.On("Do", mock.AnythingOfType("*http.Request")).Return(
		createMockResponse(200, `{"routes": []}`), nil)

	client := NewClientWithHTTPDoer("test-api-key", "https://routes.googleapis.com", mockHTTP)

	routeData, err := client.ComputeRoutes(context.Background(), hq, boundary, time.Time{})

	assert.Error(t, err)
	assert.Nil(t, routeData)
	assert.Contains(t, err.Error(), "no routes found in response")

	mockHTTP.AssertExpectations(t)
}

func TestComputeRoutes_RateLimitError(t *testing.T) {
	mockHTTP := &MockHTTPDoer{}
	mockHTTP.On("Do", mock.AnythingOfType("*http.Request")).Return(
		createMockResponse(429, `{"error": {"message": "Quota exceeded"}}`), nil)

	client := NewClientWithHTTPDoer("test-api-key", "https://routes.googleapis.com", mockHTTP)

	routeData, err := client.ComputeRoutes(context.Background(), hq, boundary, time.Time{})

	assert.Nil(t, routeData)
	assert.ErrorIs(t, err, routing.ErrProviderUnavailable)
	assert.Contains(t, err.Error(), "rate limit exceeded")

	mockHTTP.AssertExpectations(t)
}

func TestComputeRoutes_APIError(t *testing.T) {
	mockHTTP := &MockHTTPDoer{}
	mockHTTP.On("Do", mock.AnythingOfType("*http.Request")).Return(
		createMockResponse(400, `{"error": {"message": "Invalid coordinates"}}`), nil)

	client := NewClientWithHTTPDoer("test-api-key", "https://routes.googleapis.com", mockHTTP)

	_, err := client.Directions(context.Background(), routing.DirectionsRequest{Origin: hq, Destination: boundary})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "API error 400")
}

func TestComputeRoutes_TransportError(t *testing.T) {
	mockHTTP := &MockHTTPDoer{}
	mockHTTP.On("Do", mock.AnythingOfType("*http.Request")).Return(nil, errors.New("connection refused"))

	client := NewClientWithHTTPDoer("test-api-key", "https://routes.googleapis.com", mockHTTP)

	_, err := client.ComputeRoutes(context.Background(), hq, boundary, time.Time{})
	assert.ErrorContains(t, err, "failed to execute request")
}

func TestComputeRoutes_RequestFormat(t *testing.T) {
	var capturedRequest *http.Request
	mockHTTP := &MockHTTPDoer{}
	mockHTTP.On("Do", mock.AnythingOfType("*http.Request")).Run(func(args mock.Arguments) {
		capturedRequest = args.Get(0).(*http.Request)
	}).Return(createMockResponse(200, loadTestFixture(t, "hq_to_boundary.json")), nil)

	client := NewClientWithHTTPDoer("test-api-key", "https://routes.googleapis.com", mockHTTP)

	departure := time.Now().Add(time.Hour)
	_, err := client.ComputeRoutes(context.Background(), hq, boundary, departure)
	require.NoError(t, err)

	require.NotNil(t, capturedRequest)
	assert.Equal(t, "POST", capturedRequest.Method)
	assert.Equal(t, "/directions/v2:computeRoutes", capturedRequest.URL.Path)
	assert.Equal(t, "test-api-key", capturedRequest.Header.Get("X-Goog-Api-Key"))
	assert.Equal(t, "application/json", capturedRequest.Header.Get("Content-Type"))
	assert.Equal(t, fieldMask, capturedRequest.Header.Get("X-Goog-FieldMask"))

	body, err := io.ReadAll(capturedRequest.Body)
	require.NoError(t, err)
	bodyStr := string(body)

	assert.Contains(t, bodyStr, "-3.39642")
	assert.Contains(t, bodyStr, "37.676531")
	assert.Contains(t, bodyStr, "-3.401")
	assert.Contains(t, bodyStr, "\"travelMode\":\"DRIVE\"")
	assert.Contains(t, bodyStr, "\"routingPreference\":\"TRAFFIC_AWARE_OPTIMAL\"")
	assert.Contains(t, bodyStr, "\"departureTime\":\""+departure.UTC().Format(time.RFC3339)+"\"")

	mockHTTP.AssertExpectations(t)
}

func TestComputeRoutes_PastDepartureOmitted(t *testing.T) {
	var capturedRequest *http.Request
	mockHTTP := &MockHTTPDoer{}
	mockHTTP.On("Do", mock.AnythingOfType("*http.Request")).Run(func(args mock.Arguments) {
		capturedRequest = args.Get(0).(*http.Request)
	}).Return(createMockResponse(200, loadTestFixture(t, "hq_to_boundary.json")), nil)

	client := NewClientWithHTTPDoer("test-api-key", "", mockHTTP)

	_, err := client.ComputeRoutes(context.Background(), hq, boundary, time.Now().Add(-time.Minute))
	require.NoError(t, err)

	body, err := io.ReadAll(capturedRequest.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "departureTime")
}

func TestComputeRoutes_InvalidJSON(t *testing.T) {
	mockHTTP := &MockHTTPDoer{}
	mockHTTP.On("Do", mock.AnythingOfType("*http.Request")).Return(
		createMockResponse(200, `{"invalid": json}`), nil)

	client := NewClientWithHTTPDoer("test-api-key", "https://routes.googleapis.com", mockHTTP)

	routeData, err := client.ComputeRoutes(context.Background(), hq, boundary, time.Time{})

	assert.Error(t, err)
	assert.Nil(t, routeData)
	assert.Contains(t, err.Error(), "failed to decode response")
}

func TestDirections_BadPolyline(t *testing.T) {
	mockHTTP := &MockHTTPDoer{}
	mockHTTP.On("Do", mock.AnythingOfType("*http.Request")).Return(
		createMockResponse(200, `{"routes":[{"duration":"60s","distanceMeters":900,"polyline":{"encodedPolyline":"_p~iF~ps|U_"}}]}`), nil)

	client := NewClientWithHTTPDoer("test-api-key", "", mockHTTP)

	_, err := client.Directions(context.Background(), routing.DirectionsRequest{Origin: hq, Destination: boundary})
	assert.ErrorContains(t, err, "failed to decode route polyline")
}

func TestParseDuration(t *testing.T) {
	seconds, err := parseDuration("450s")
	require.NoError(t, err)
	assert.Equal(t, int32(450), seconds)

	_, err = parseDuration("")
	assert.Error(t, err)
}
