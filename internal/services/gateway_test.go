package services

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	api "github.com/dpup/wildwatch/server/api/v1"
	"github.com/dpup/wildwatch/server/internal/lib/contacts"
)

// newTestGateway serves the services over HTTP the way the server's gateway
// does, without a gRPC hop
func newTestGateway(t *testing.T, svc *testServices) http.Handler {
	t.Helper()
	ctx := testContext()
	mux := runtime.NewServeMux()
	require.NoError(t, api.RegisterAlertsServiceHandlerServer(ctx, mux, svc.alerts))
	require.NoError(t, api.RegisterNotificationsServiceHandlerServer(ctx, mux, svc.notifications))
	require.NoError(t, api.RegisterContactsServiceHandlerServer(ctx, mux, NewContactsService(contacts.NewDirectory())))
	return mux
}

func serve(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]interface{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	}
	return rec, out
}

func TestGateway_DetectionLifecycle(t *testing.T) {
	svc := newTestServices(testStations)
	gw := newTestGateway(t, svc)

	rec, body := serve(t, gw, http.MethodPost, "/api/v1/detections", `{
		"id": "det-1",
		"species": "lion",
		"timestamp": "2024-05-01T18:30:00Z",
		"location": {"lat": 0, "lng": 0.01},
		"distance_to_settlement_m": 80,
		"confidence": 95,
		"direction": "ne"
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	alert := body["alert"].(map[string]interface{})
	assert.Equal(t, "det-1", alert["id"])
	assert.Equal(t, "RISK_LEVEL_CRITICAL", alert["riskLevel"])
	assert.Equal(t, "ALERT_STATUS_PENDING", alert["status"])
	assert.Nil(t, alert["dispatchedAt"], "unset timestamps are null")

	rec, body = serve(t, gw, http.MethodGet, "/api/v1/alerts/stats", "")
	require.Equal(t, http.StatusOK, rec.Code, "stats is not read as an alert id")
	assert.Equal(t, float64(1), body["stats"].(map[string]interface{})["total"])

	rec, _ = serve(t, gw, http.MethodPost, "/api/v1/alerts/det-1/dispatch", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec, body = serve(t, gw, http.MethodPost, "/api/v1/alerts/det-1/resolve", `{"report": {"description": "Moved on", "reported_by": "Ranger Otieno"}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	incident := body["alert"].(map[string]interface{})["incident"].(map[string]interface{})
	assert.Equal(t, "RESOLVED", incident["status"])

	rec, _ = serve(t, gw, http.MethodPost, "/api/v1/alerts/det-1/dispatch", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code, "FailedPrecondition maps to 400")

	rec, body = serve(t, gw, http.MethodGet, "/api/v1/alerts?status=resolved", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["count"])
}

func TestGateway_ErrorStatuses(t *testing.T) {
	svc := newTestServices(nil)
	gw := newTestGateway(t, svc)

	rec, _ := serve(t, gw, http.MethodGet, "/api/v1/alerts/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = serve(t, gw, http.MethodPost, "/api/v1/detections", `{"id": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = serve(t, gw, http.MethodPost, "/api/v1/detections", `{"id": "det-1", "species": "elephant"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec, _ = serve(t, gw, http.MethodPost, "/api/v1/detections", `{"id": "det-1", "species": "elephant"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, _ = serve(t, gw, http.MethodGet, "/api/v1/alerts/det-1/route", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec, _ = serve(t, gw, http.MethodPut, "/api/v1/recipients/PRESS", `{"enabled": true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGateway_ContactsRoutes(t *testing.T) {
	svc := newTestServices(testStations)
	gw := newTestGateway(t, svc)

	rec, body := serve(t, gw, http.MethodPost, "/api/v1/contacts", `{"name": "Amina", "phone_number": "0712000001", "village": "Mtakuja"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	id := body["contact"].(map[string]interface{})["id"].(string)

	rec, body = serve(t, gw, http.MethodGet, "/api/v1/contacts/stats", "")
	require.Equal(t, http.StatusOK, rec.Code, "stats is not read as a contact id")
	assert.Equal(t, float64(1), body["stats"].(map[string]interface{})["total"])

	rec, body = serve(t, gw, http.MethodPut, "/api/v1/contacts/"+id, `{"village": "Kimana"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Kimana", body["contact"].(map[string]interface{})["village"])

	rec, body = serve(t, gw, http.MethodGet, "/api/v1/contacts?village=kimana", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["count"])

	rec, body = serve(t, gw, http.MethodPost, "/api/v1/contacts/bulk-delete", `{"ids": ["`+id+`"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["deleted"])
}
