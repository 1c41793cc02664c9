package services

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	api "github.com/dpup/wildwatch/server/api/v1"
	"github.com/dpup/wildwatch/server/internal/lib/alerts"
	"github.com/dpup/wildwatch/server/internal/lib/cameras"
	"github.com/dpup/wildwatch/server/internal/lib/geo"
	"github.com/dpup/wildwatch/server/internal/lib/notify"
	"github.com/dpup/wildwatch/server/internal/lib/routing"
)

type testClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// 21:30 in Nairobi
var detectedAt = time.Date(2024, 5, 1, 18, 30, 0, 0, time.UTC)

var testStations = []routing.Station{
	{ID: "s1", Name: "Response Team Alpha", Type: routing.Headquarters, Location: geo.Location{Latitude: 0, Longitude: 0}},
	{ID: "s2", Name: "Response Team Bravo", Type: routing.Outpost, Location: geo.Location{Latitude: 1, Longitude: 1}},
}

type testServices struct {
	alerts        *AlertsService
	notifications *NotificationsService
	manager       *alerts.Manager
	center        *notify.Center
	cameras       *cameras.Registry
	clock         *testClock
}

func newTestServices(stations []routing.Station) *testServices {
	clock := &testClock{t: detectedAt}
	registry := cameras.NewRegistry(nil, cameras.WithClock(clock.Now))
	center := notify.NewCenter(nil, notify.WithClock(clock.Now))
	manager := alerts.NewManager(
		alerts.WithClock(clock),
		alerts.WithCameras(registry),
		alerts.WithListener(center.HandleEvent),
	)
	router := routing.NewRouter(nil, routing.WithClock(clock.Now))
	return &testServices{
		alerts:        NewAlertsService(manager, router, stations, registry),
		notifications: NewNotificationsService(center),
		manager:       manager,
		center:        center,
		cameras:       registry,
		clock:         clock,
	}
}

func detection(id string) *api.CreateDetectionRequest {
	return &api.CreateDetectionRequest{
		Id:                    id,
		Species:               "lion",
		Timestamp:             timestamppb.New(detectedAt),
		Location:              &api.Location{Lat: 0, Lng: 0.01},
		DistanceToSettlementM: 80,
		Confidence:            95,
		Direction:             "ne",
	}
}

func TestAlertsService_CreateDetection(t *testing.T) {
	svc := newTestServices(testStations)
	ctx := testContext()

	resp, err := svc.alerts.CreateDetection(ctx, detection("det-1"))
	require.NoError(t, err)
	alert := resp.GetAlert()
	assert.Equal(t, "det-1", alert.GetId())
	assert.Equal(t, "LION", alert.GetSpecies())
	assert.Equal(t, api.RiskLevel_RISK_LEVEL_CRITICAL, alert.GetRiskLevel())
	assert.Equal(t, api.AlertStatus_ALERT_STATUS_PENDING, alert.GetStatus())
	assert.Equal(t, "NE", alert.GetDirection())
	assert.Equal(t, "night", alert.GetTimeOfDay())
	assert.Len(t, alert.GetPredictedTrajectory(), 4)
	assert.Nil(t, alert.GetDispatchedAt())
	assert.Nil(t, alert.GetResponseTimeSeconds())
	assert.True(t, detectedAt.Equal(alert.GetTimestamp().AsTime()))

	got, err := svc.alerts.GetAlert(ctx, &api.GetAlertRequest{Id: "det-1"})
	require.NoError(t, err)
	assert.Equal(t, "det-1", got.GetAlert().GetId())
}

func TestAlertsService_CreateDetectionErrors(t *testing.T) {
	svc := newTestServices(testStations)
	ctx := testContext()
	_, err := svc.alerts.CreateDetection(ctx, detection("det-1"))
	require.NoError(t, err)

	unknownCamera := detection("det-2")
	unknownCamera.CameraId = "cam-99"

	tests := []struct {
		name string
		req  *api.CreateDetectionRequest
		code codes.Code
	}{
		{"duplicate", detection("det-1"), codes.AlreadyExists},
		{"missing id", detection(""), codes.InvalidArgument},
		{"unknown camera", unknownCamera, codes.InvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.alerts.CreateDetection(ctx, tt.req)
			require.Error(t, err)
			assert.Equal(t, tt.code, status.Code(err))
		})
	}
}

func TestAlertsService_CreateDetectionCountsCamera(t *testing.T) {
	svc := newTestServices(testStations)
	ctx := testContext()

	req := detection("det-1")
	req.CameraId = "cam2"
	_, err := svc.alerts.CreateDetection(ctx, req)
	require.NoError(t, err)

	resp, err := svc.alerts.GetCamera(ctx, &api.GetCameraRequest{Id: "cam2"})
	require.NoError(t, err)
	assert.Equal(t, int32(1), resp.GetCamera().GetDetectionsInWindow())
	require.NotNil(t, resp.GetCamera().GetLastDetection())
	assert.True(t, detectedAt.Equal(resp.GetCamera().GetLastDetection().AsTime()))
}

func TestAlertsService_Lifecycle(t *testing.T) {
	svc := newTestServices(testStations)
	ctx := testContext()
	_, err := svc.alerts.CreateDetection(ctx, detection("det-1"))
	require.NoError(t, err)

	svc.clock.Advance(30 * time.Second)
	dispatched, err := svc.alerts.DispatchAlert(ctx, &api.DispatchAlertRequest{Id: "det-1"})
	require.NoError(t, err)
	assert.Equal(t, api.AlertStatus_ALERT_STATUS_DISPATCHED, dispatched.GetAlert().GetStatus())
	require.NotNil(t, dispatched.GetAlert().GetResponseTimeSeconds())
	assert.Equal(t, int32(30), dispatched.GetAlert().GetResponseTimeSeconds().GetValue())
	require.NotNil(t, dispatched.GetAlert().GetMetSla())
	assert.False(t, dispatched.GetAlert().GetMetSla().GetValue())

	// A second dispatch is refused and changes nothing
	svc.clock.Advance(time.Minute)
	_, err = svc.alerts.DispatchAlert(ctx, &api.DispatchAlertRequest{Id: "det-1"})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
	current, err := svc.manager.Get("det-1")
	require.NoError(t, err)
	assert.Equal(t, 30, *current.ResponseTimeSeconds)

	resolved, err := svc.alerts.ResolveAlert(ctx, &api.ResolveAlertRequest{
		Id: "det-1",
		Report: &api.IncidentReport{
			Description: "Lion pushed back across the river",
			Outcome:     "No livestock lost",
			ReportedBy:  "Ranger Otieno",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, api.AlertStatus_ALERT_STATUS_RESOLVED, resolved.GetAlert().GetStatus())
	report := resolved.GetAlert().GetIncident()
	require.NotNil(t, report)
	assert.Equal(t, "RESOLVED", report.GetStatus())
	assert.Equal(t, "Ranger Otieno", report.GetReportedBy())
	assert.NotNil(t, report.GetReportedAt())

	_, err = svc.alerts.ResolveAlert(ctx, &api.ResolveAlertRequest{Id: "det-1"})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	_, err = svc.alerts.DispatchAlert(ctx, &api.DispatchAlertRequest{Id: "missing"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestAlertsService_ResolveFalsePositive(t *testing.T) {
	svc := newTestServices(testStations)
	ctx := testContext()
	_, err := svc.alerts.CreateDetection(ctx, detection("det-1"))
	require.NoError(t, err)

	_, err = svc.alerts.ResolveAlert(ctx, &api.ResolveAlertRequest{Id: "det-1", Report: &api.IncidentReport{Status: "FALSE_POSITIVE"}})
	assert.Equal(t, codes.InvalidArgument, status.Code(err), "a report needs a description")

	resp, err := svc.alerts.ResolveAlert(ctx, &api.ResolveAlertRequest{
		Id:     "det-1",
		Report: &api.IncidentReport{Description: "Shadow on the lens", IsFalsePositive: true},
	})
	require.NoError(t, err)
	assert.Equal(t, "FALSE_POSITIVE", resp.GetAlert().GetIncident().GetStatus())

	stats, err := svc.alerts.GetAlertStats(ctx, &api.GetAlertStatsRequest{})
	require.NoError(t, err)
	assert.Equal(t, int32(1), stats.GetStats().GetFalsePositives())

	n := svc.center.List()[0]
	assert.Equal(t, notify.TypeResolved, n.Type)
	assert.Contains(t, n.Message, "false positive")
}

func TestAlertsService_ListAlerts(t *testing.T) {
	svc := newTestServices(testStations)
	ctx := testContext()
	for i := 1; i <= 3; i++ {
		ev := alerts.DetectionEvent{
			ID:                         fmt.Sprintf("det-%d", i),
			Species:                    "ELEPHANT",
			Timestamp:                  detectedAt.Add(time.Duration(i) * time.Minute),
			Location:                   geo.Location{Latitude: -3.39, Longitude: 37.67},
			DistanceToSettlementMeters: 400,
			ConfidencePercent:          85,
		}
		_, err := svc.manager.Create(ctx, ev)
		require.NoError(t, err)
	}
	_, err := svc.manager.Dispatch(ctx, "det-1")
	require.NoError(t, err)
	_, err = svc.manager.Resolve(ctx, "det-2", nil)
	require.NoError(t, err)

	list, err := svc.alerts.ListAlerts(ctx, &api.ListAlertsRequest{})
	require.NoError(t, err)
	require.Equal(t, int32(3), list.GetCount())
	assert.Equal(t, "det-3", list.GetAlerts()[0].GetId(), "newest first")

	list, err = svc.alerts.ListAlerts(ctx, &api.ListAlertsRequest{Status: "dispatched"})
	require.NoError(t, err)
	require.Equal(t, int32(1), list.GetCount())
	assert.Equal(t, "det-1", list.GetAlerts()[0].GetId())

	list, err = svc.alerts.ListAlerts(ctx, &api.ListAlertsRequest{Active: wrapperspb.Bool(true)})
	require.NoError(t, err)
	assert.Equal(t, int32(2), list.GetCount())

	list, err = svc.alerts.ListAlerts(ctx, &api.ListAlertsRequest{Status: "RESOLVED", Active: wrapperspb.Bool(true)})
	require.NoError(t, err)
	assert.Equal(t, int32(0), list.GetCount())

	_, err = svc.alerts.ListAlerts(ctx, &api.ListAlertsRequest{Status: "closed"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	_, err = svc.alerts.ListAlerts(ctx, &api.ListAlertsRequest{Since: "-1h"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	stats, err := svc.alerts.GetAlertStats(ctx, &api.GetAlertStatsRequest{})
	require.NoError(t, err)
	assert.Equal(t, int32(3), stats.GetStats().GetTotal())
	assert.Equal(t, int32(1), stats.GetStats().GetPending())
	assert.Equal(t, int32(1), stats.GetStats().GetDispatched())
	assert.Equal(t, int32(1), stats.GetStats().GetResolved())
	assert.Equal(t, int32(3), stats.GetStats().GetBySpecies()["ELEPHANT"])
}

func TestAlertsService_GetAlertRoute(t *testing.T) {
	svc := newTestServices(testStations)
	ctx := testContext()
	_, err := svc.alerts.CreateDetection(ctx, detection("det-1"))
	require.NoError(t, err)

	resp, err := svc.alerts.GetAlertRoute(ctx, &api.GetAlertRouteRequest{Id: "det-1"})
	require.NoError(t, err)
	route := resp.GetRoute()
	assert.Equal(t, "s1", route.GetOriginStationId())
	assert.Equal(t, routing.SourceFallback, route.GetSource())
	assert.True(t, route.GetFallback())
	assert.Equal(t, int32(3), route.GetDurationMinutes())
	assert.Len(t, route.GetPath(), 2)
	expectedKm := geo.DistanceKm(testStations[0].Location, geo.Location{Latitude: 0, Longitude: 0.01}) * routing.RoadCurvatureFactor
	assert.InDelta(t, expectedKm, route.GetDistanceKm(), 1e-9)

	_, err = svc.alerts.GetAlertRoute(ctx, &api.GetAlertRouteRequest{Id: "missing"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestAlertsService_GetAlertRouteWithoutStations(t *testing.T) {
	svc := newTestServices(nil)
	ctx := testContext()
	_, err := svc.alerts.CreateDetection(ctx, detection("det-1"))
	require.NoError(t, err)

	_, err = svc.alerts.GetAlertRoute(ctx, &api.GetAlertRouteRequest{Id: "det-1"})
	assert.Equal(t, codes.Unavailable, status.Code(err))
}

func TestAlertsService_ListStations(t *testing.T) {
	svc := newTestServices(testStations)
	resp, err := svc.alerts.ListStations(testContext(), &api.ListStationsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.GetStations(), 2)
	assert.Equal(t, "Response Team Alpha", resp.GetStations()[0].GetName())
	assert.Equal(t, "HQ", resp.GetStations()[0].GetType())
	assert.Equal(t, 1.0, resp.GetStations()[1].GetLocation().GetLat())
}

func TestAlertsService_Cameras(t *testing.T) {
	svc := newTestServices(testStations)
	ctx := testContext()

	list, err := svc.alerts.ListCameras(ctx, &api.ListCamerasRequest{})
	require.NoError(t, err)
	require.Len(t, list.GetCameras(), 3)
	assert.Equal(t, "cam1", list.GetCameras()[0].GetId())
	assert.Equal(t, "ONLINE", list.GetCameras()[0].GetStatus())

	updated, err := svc.alerts.UpdateCameraStatus(ctx, &api.UpdateCameraStatusRequest{Id: "cam3", Status: "maintenance"})
	require.NoError(t, err)
	assert.Equal(t, "MAINTENANCE", updated.GetCamera().GetStatus())

	_, err = svc.alerts.UpdateCameraStatus(ctx, &api.UpdateCameraStatusRequest{Id: "cam3", Status: "broken"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	_, err = svc.alerts.UpdateCameraStatus(ctx, &api.UpdateCameraStatusRequest{Id: "cam-99", Status: "OFFLINE"})
	assert.Equal(t, codes.NotFound, status.Code(err))
	_, err = svc.alerts.GetCamera(ctx, &api.GetCameraRequest{Id: "cam-99"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}
