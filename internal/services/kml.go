package services

import (
	"fmt"
	"image/color"
	"io"
	"net/http"

	"github.com/dpup/prefab/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/twpayne/go-kml"

	"github.com/dpup/wildwatch/server/internal/lib/alerts"
	"github.com/dpup/wildwatch/server/internal/lib/cameras"
	"github.com/dpup/wildwatch/server/internal/lib/geo"
	"github.com/dpup/wildwatch/server/internal/lib/risk"
	"github.com/dpup/wildwatch/server/internal/lib/routing"
)

// KML colors are written aabbggrr by the encoder from these RGBA values
var riskColors = map[risk.Level]color.RGBA{
	risk.Low:      {R: 0x2e, G: 0x7d, B: 0x32, A: 0xff},
	risk.Medium:   {R: 0xf9, G: 0xa8, B: 0x25, A: 0xff},
	risk.High:     {R: 0xef, G: 0x6c, B: 0x00, A: 0xff},
	risk.Critical: {R: 0xc6, G: 0x28, B: 0x28, A: 0xff},
}

var (
	stationColor       = color.RGBA{R: 0x15, G: 0x65, B: 0xc0, A: 0xff}
	cameraColor        = color.RGBA{R: 0x6a, G: 0x1b, B: 0x9a, A: 0xff}
	cameraOfflineColor = color.RGBA{R: 0x75, G: 0x75, B: 0x75, A: 0xff}
)

// KMLPath is where the map layer is served. It sits under the gateway's /api/
// prefix so it is registered as an exact path.
const KMLPath = "/api/v1/map.kml"

// MapService serves the KML map layer, which is not an RPC
type MapService struct {
	manager  *alerts.Manager
	stations []routing.Station
	cameras  *cameras.Registry
}

// NewMapService creates a new MapService
func NewMapService(manager *alerts.Manager, stations []routing.Station, registry *cameras.Registry) *MapService {
	return &MapService{
		manager:  manager,
		stations: append([]routing.Station(nil), stations...),
		cameras:  registry,
	}
}

// Handler returns a chi router serving KMLPath to any origin, so desktop GIS
// tools and web maps can load the layer directly
func (s *MapService) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
	}))
	r.Get(KMLPath, s.MapKML)
	return r
}

// MapKML handles GET /api/v1/map.kml with the active alerts
func (s *MapService) MapKML(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/vnd.google-earth.kml+xml")
	w.Header().Set("Content-Disposition", `inline; filename="wildwatch.kml"`)
	if err := ExportKML(w, s.stations, s.cameras.List(), s.manager.Active()); err != nil {
		logging.Errorw(logging.EnsureLogger(r.Context()), "Failed to write KML", "error", err)
	}
}

// ExportKML writes a map layer with the response stations, the camera traps,
// the given alerts and each alert's predicted trajectory
func ExportKML(w io.Writer, stations []routing.Station, cams []cameras.Camera, active []alerts.Alert) error {
	doc := []kml.Element{
		kml.Name("Wildlife Alerts"),
		kml.Description(fmt.Sprintf("%d stations, %d cameras, %d alerts", len(stations), len(cams), len(active))),
		kml.SharedStyle("station",
			kml.IconStyle(kml.Color(stationColor), kml.Scale(1.1)),
		),
		kml.SharedStyle("camera",
			kml.IconStyle(kml.Color(cameraColor), kml.Scale(0.8)),
		),
		kml.SharedStyle("camera-offline",
			kml.IconStyle(kml.Color(cameraOfflineColor), kml.Scale(0.8)),
		),
	}
	for _, level := range []risk.Level{risk.Low, risk.Medium, risk.High, risk.Critical} {
		c := riskColors[level]
		doc = append(doc, kml.SharedStyle(styleID(level),
			kml.IconStyle(kml.Color(c), kml.Scale(1.0+0.2*float64(level))),
			kml.LineStyle(kml.Color(c), kml.Width(2)),
		))
	}

	stationFolder := []kml.Element{kml.Name("Response Stations")}
	for _, s := range stations {
		stationFolder = append(stationFolder, kml.Placemark(
			kml.Name(s.Name),
			kml.Description(fmt.Sprintf("%s (%s)", s.ID, s.Type)),
			kml.StyleURL("#station"),
			kml.Point(kml.Coordinates(coordinate(s.Location))),
		))
	}

	cameraFolder := []kml.Element{kml.Name("Camera Traps")}
	for _, c := range cams {
		style := "#camera"
		if c.Status != cameras.Online {
			style = "#camera-offline"
		}
		cameraFolder = append(cameraFolder, kml.Placemark(
			kml.Name(c.Name),
			kml.Description(fmt.Sprintf("%s (%s), %d detections recently", c.ID, c.Status, c.DetectionsInWindow)),
			kml.StyleURL(style),
			kml.Point(kml.Coordinates(coordinate(c.Location))),
		))
	}

	alertFolder := []kml.Element{kml.Name("Alerts")}
	trajectoryFolder := []kml.Element{kml.Name("Predicted Trajectories")}
	for _, a := range active {
		style := "#" + styleID(a.RiskLevel)
		alertFolder = append(alertFolder, kml.Placemark(
			kml.Name(fmt.Sprintf("%s %s", a.Species, a.RiskLevel)),
			kml.Description(alertDescription(a)),
			kml.StyleURL(style),
			kml.TimeStamp(kml.When(a.Timestamp)),
			kml.Point(kml.Coordinates(coordinate(a.Location))),
		))

		if len(a.PredictedTrajectory) < 2 {
			continue
		}
		coords := make([]kml.Coordinate, len(a.PredictedTrajectory))
		for i, p := range a.PredictedTrajectory {
			coords[i] = coordinate(p)
		}
		trajectoryFolder = append(trajectoryFolder, kml.Placemark(
			kml.Name(fmt.Sprintf("%s heading %s", a.ID, directionOrUnknown(a.Direction))),
			kml.StyleURL(style),
			kml.LineString(kml.Tessellate(true), kml.Coordinates(coords...)),
		))
	}

	doc = append(doc,
		kml.Folder(stationFolder...),
		kml.Folder(cameraFolder...),
		kml.Folder(alertFolder...),
		kml.Folder(trajectoryFolder...),
	)

	return kml.KML(kml.Document(doc...)).WriteIndent(w, "", "  ")
}

func styleID(level risk.Level) string {
	return "risk-" + level.String()
}

// coordinate converts to KML lon,lat order
func coordinate(l geo.Location) kml.Coordinate {
	return kml.Coordinate{Lon: l.Longitude, Lat: l.Latitude}
}

func alertDescription(a alerts.Alert) string {
	desc := fmt.Sprintf("Alert %s: %s, %.0fm from settlement, %.0f%% confidence, %s. Status %s.",
		a.ID, a.Species, a.DistanceToSettlementMeters, a.ConfidencePercent, a.TimeOfDay, a.Status)
	if a.ResponseTimeSeconds != nil {
		desc += fmt.Sprintf(" Response time %ds.", *a.ResponseTimeSeconds)
	}
	return desc
}

func directionOrUnknown(d string) string {
	if d == "" {
		return "unknown"
	}
	return d
}
