package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dpup/prefab/logging"

	api "github.com/dpup/wildwatch/server/api/v1"
	"github.com/dpup/wildwatch/server/internal/lib/alerts"
	"github.com/dpup/wildwatch/server/internal/lib/cameras"
	"github.com/dpup/wildwatch/server/internal/lib/risk"
	"github.com/dpup/wildwatch/server/internal/lib/routing"
)

// AlertsService implements the gRPC AlertsService
type AlertsService struct {
	api.UnimplementedAlertsServiceServer
	manager  *alerts.Manager
	router   *routing.Router
	stations []routing.Station
	cameras  *cameras.Registry

	// Used to answer route requests when the caller sets no deadline
	routeTimeout time.Duration
}

// NewAlertsService creates a new AlertsService
func NewAlertsService(manager *alerts.Manager, router *routing.Router, stations []routing.Station, registry *cameras.Registry) *AlertsService {
	return &AlertsService{
		manager:      manager,
		router:       router,
		stations:     append([]routing.Station(nil), stations...),
		cameras:      registry,
		routeTimeout: 15 * time.Second,
	}
}

// CreateDetection scores a detection and opens an alert for it
func (s *AlertsService) CreateDetection(ctx context.Context, req *api.CreateDetectionRequest) (*api.CreateDetectionResponse, error) {
	ctx = logging.EnsureLogger(ctx)

	ev := alerts.DetectionEvent{
		ID:                         req.GetId(),
		Species:                    risk.Species(req.GetSpecies()),
		Location:                   fromProtoLocation(req.GetLocation()),
		DistanceToSettlementMeters: req.GetDistanceToSettlementM(),
		ConfidencePercent:          req.GetConfidence(),
		Direction:                  req.GetDirection(),
		CameraID:                   req.GetCameraId(),
		ImageURL:                   req.GetImageUrl(),
		Notes:                      req.GetNotes(),
	}
	if req.GetTimestamp() != nil {
		ev.Timestamp = req.GetTimestamp().AsTime()
	}

	alert, err := s.manager.Create(ctx, ev)
	if err != nil {
		return nil, statusError(ctx, "CreateDetection", err)
	}
	return &api.CreateDetectionResponse{Alert: toProtoAlert(alert)}, nil
}

// ListAlerts returns alerts newest first. A status filter takes precedence
// over since; active narrows either.
func (s *AlertsService) ListAlerts(ctx context.Context, req *api.ListAlertsRequest) (*api.ListAlertsResponse, error) {
	var list []alerts.Alert
	switch {
	case req.GetStatus() != "":
		status, err := alerts.ParseStatus(strings.ToUpper(req.GetStatus()))
		if err != nil {
			return nil, statusError(ctx, "ListAlerts", fmt.Errorf("%w: %v", errBadRequest, err))
		}
		list = s.manager.WithStatus(status)
	case req.GetSince() != "":
		window, err := time.ParseDuration(req.GetSince())
		if err != nil || window <= 0 {
			return nil, statusError(ctx, "ListAlerts", fmt.Errorf("%w: since must be a positive duration", errBadRequest))
		}
		list = s.manager.Recent(window)
	default:
		list = s.manager.List()
	}

	if req.GetActive() != nil {
		active := req.GetActive().GetValue()
		filtered := list[:0]
		for _, a := range list {
			if a.IsActive() == active {
				filtered = append(filtered, a)
			}
		}
		list = filtered
	}

	return &api.ListAlertsResponse{
		Alerts: toProtoAlerts(list),
		Count:  int32(len(list)),
	}, nil
}

// GetAlert returns one alert
func (s *AlertsService) GetAlert(ctx context.Context, req *api.GetAlertRequest) (*api.GetAlertResponse, error) {
	alert, err := s.manager.Get(req.GetId())
	if err != nil {
		return nil, statusError(ctx, "GetAlert", err)
	}
	return &api.GetAlertResponse{Alert: toProtoAlert(alert)}, nil
}

// GetAlertStats summarizes the alert collection
func (s *AlertsService) GetAlertStats(ctx context.Context, req *api.GetAlertStatsRequest) (*api.GetAlertStatsResponse, error) {
	return &api.GetAlertStatsResponse{Stats: toProtoStats(s.manager.Stats())}, nil
}

// DispatchAlert moves a pending alert to DISPATCHED
func (s *AlertsService) DispatchAlert(ctx context.Context, req *api.DispatchAlertRequest) (*api.DispatchAlertResponse, error) {
	ctx = logging.EnsureLogger(ctx)
	alert, err := s.manager.Dispatch(ctx, req.GetId())
	if err != nil {
		return nil, statusError(ctx, "DispatchAlert", err)
	}
	return &api.DispatchAlertResponse{Alert: toProtoAlert(alert)}, nil
}

// ResolveAlert closes an alert, filing the incident report when one is sent
func (s *AlertsService) ResolveAlert(ctx context.Context, req *api.ResolveAlertRequest) (*api.ResolveAlertResponse, error) {
	ctx = logging.EnsureLogger(ctx)
	alert, err := s.manager.Resolve(ctx, req.GetId(), fromProtoReport(req.GetReport()))
	if err != nil {
		return nil, statusError(ctx, "ResolveAlert", err)
	}
	return &api.ResolveAlertResponse{Alert: toProtoAlert(alert)}, nil
}

// GetAlertRoute waits for the provider for as long as the request allows;
// the router itself guarantees a fallback route once its own timeout passes.
func (s *AlertsService) GetAlertRoute(ctx context.Context, req *api.GetAlertRouteRequest) (*api.GetAlertRouteResponse, error) {
	ctx = logging.EnsureLogger(ctx)
	alert, err := s.manager.Get(req.GetId())
	if err != nil {
		return nil, statusError(ctx, "GetAlertRoute", err)
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.routeTimeout)
		defer cancel()
	}

	route, err := s.router.ComputeRoute(ctx, alert.Location, s.stations).Await(ctx)
	if err != nil {
		return nil, statusError(ctx, "GetAlertRoute", err)
	}
	return &api.GetAlertRouteResponse{Route: toProtoRoute(route)}, nil
}

// ListStations returns the response stations
func (s *AlertsService) ListStations(ctx context.Context, req *api.ListStationsRequest) (*api.ListStationsResponse, error) {
	out := make([]*api.Station, len(s.stations))
	for i, st := range s.stations {
		out[i] = toProtoStation(st)
	}
	return &api.ListStationsResponse{Stations: out}, nil
}

// ListCameras returns the camera roster with recent activity
func (s *AlertsService) ListCameras(ctx context.Context, req *api.ListCamerasRequest) (*api.ListCamerasResponse, error) {
	list := s.cameras.List()
	out := make([]*api.Camera, len(list))
	for i, c := range list {
		out[i] = toProtoCamera(c)
	}
	return &api.ListCamerasResponse{Cameras: out}, nil
}

// GetCamera returns one camera
func (s *AlertsService) GetCamera(ctx context.Context, req *api.GetCameraRequest) (*api.GetCameraResponse, error) {
	camera, err := s.cameras.Get(req.GetId())
	if err != nil {
		return nil, statusError(ctx, "GetCamera", err)
	}
	return &api.GetCameraResponse{Camera: toProtoCamera(camera)}, nil
}

// UpdateCameraStatus marks a camera online, offline or in maintenance
func (s *AlertsService) UpdateCameraStatus(ctx context.Context, req *api.UpdateCameraStatusRequest) (*api.UpdateCameraStatusResponse, error) {
	ctx = logging.EnsureLogger(ctx)
	status, err := cameras.ParseStatus(req.GetStatus())
	if err != nil {
		return nil, statusError(ctx, "UpdateCameraStatus", err)
	}
	camera, err := s.cameras.SetStatus(req.GetId(), status)
	if err != nil {
		return nil, statusError(ctx, "UpdateCameraStatus", err)
	}
	logging.Infow(ctx, "Camera status changed", "camera_id", camera.ID, "status", camera.Status)
	return &api.UpdateCameraStatusResponse{Camera: toProtoCamera(camera)}, nil
}
