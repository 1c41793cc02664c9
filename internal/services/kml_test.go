package services

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpup/wildwatch/server/internal/lib/alerts"
	"github.com/dpup/wildwatch/server/internal/lib/cameras"
	"github.com/dpup/wildwatch/server/internal/lib/geo"
	"github.com/dpup/wildwatch/server/internal/lib/risk"
)

func TestExportKML(t *testing.T) {
	seconds := 12
	active := []alerts.Alert{
		{
			DetectionEvent: alerts.DetectionEvent{
				ID:        "det-1",
				Species:   risk.Elephant,
				Timestamp: detectedAt,
				Location:  geo.Location{Latitude: -3.4, Longitude: 37.68},
				Direction: "E",
			},
			RiskLevel: risk.High,
			Status:    alerts.Dispatched,
			PredictedTrajectory: []geo.Location{
				{Latitude: -3.4, Longitude: 37.68},
				{Latitude: -3.4, Longitude: 37.734},
			},
			ResponseTimeSeconds: &seconds,
		},
		{
			DetectionEvent: alerts.DetectionEvent{ID: "det-2", Species: risk.Buffalo, Timestamp: detectedAt},
			RiskLevel:      risk.Low,
		},
	}

	cams := []cameras.Camera{
		{ID: "cam1", Name: "Camera West-01", Status: cameras.Online, DetectionsInWindow: 3},
		{ID: "cam2", Name: "Camera Central-02", Status: cameras.Maintenance},
	}

	var buf bytes.Buffer
	require.NoError(t, ExportKML(&buf, testStations, cams, active))
	out := buf.String()

	assert.Contains(t, out, "<Document>")
	assert.Contains(t, out, "2 stations, 2 cameras, 2 alerts")
	assert.Equal(t, 2+2+2, strings.Count(out, "<Point>"), "one point per station, camera and alert")
	assert.Contains(t, out, "Camera Traps")
	assert.Contains(t, out, "cam1 (ONLINE), 3 detections recently")
	assert.Equal(t, 1, strings.Count(out, "<styleUrl>#camera-offline</styleUrl>"))
	assert.Equal(t, 1, strings.Count(out, "<LineString>"), "alerts without a trajectory get no line")
	assert.Contains(t, out, "37.68,-3.4", "coordinates are lon,lat")
	assert.Contains(t, out, "det-1 heading E")
	assert.Contains(t, out, "Response time 12s.")
	assert.Contains(t, out, `id="risk-LOW"`)
	assert.Contains(t, out, "#risk-HIGH")
}

func TestExportKML_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportKML(&buf, nil, nil, nil))
	assert.Contains(t, buf.String(), "0 stations, 0 cameras, 0 alerts")
	assert.NotContains(t, buf.String(), "<Placemark>")
}

func TestMapService_Handler(t *testing.T) {
	svc := newTestServices(testStations)
	req := detection("det-1")
	req.CameraId = "cam1"
	_, err := svc.alerts.CreateDetection(testContext(), req)
	require.NoError(t, err)

	h := NewMapService(svc.manager, testStations, svc.cameras).Handler()
	get := httptest.NewRequest(http.MethodGet, KMLPath, nil)
	get.Header.Set("Origin", "https://maps.example.org")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, get)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.google-earth.kml+xml", rec.Header().Get("Content-Type"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	out := rec.Body.String()
	assert.Contains(t, out, "2 stations, 3 cameras, 1 alerts")
	assert.Contains(t, out, "cam1 (ONLINE), 1 detections recently")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/alerts", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code, "only the map layer is served here")
}
