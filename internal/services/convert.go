package services

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	api "github.com/dpup/wildwatch/server/api/v1"
	"github.com/dpup/wildwatch/server/internal/lib/alerts"
	"github.com/dpup/wildwatch/server/internal/lib/cameras"
	"github.com/dpup/wildwatch/server/internal/lib/contacts"
	"github.com/dpup/wildwatch/server/internal/lib/geo"
	"github.com/dpup/wildwatch/server/internal/lib/notify"
	"github.com/dpup/wildwatch/server/internal/lib/risk"
	"github.com/dpup/wildwatch/server/internal/lib/routing"
)

func toProtoLocation(l geo.Location) *api.Location {
	return &api.Location{
		Lat:     l.Latitude,
		Lng:     l.Longitude,
		Address: l.Address,
		Region:  l.Region,
	}
}

func fromProtoLocation(l *api.Location) geo.Location {
	return geo.Location{
		Latitude:  l.GetLat(),
		Longitude: l.GetLng(),
		Address:   l.GetAddress(),
		Region:    l.GetRegion(),
	}
}

func toProtoPath(path []geo.Location) []*api.Location {
	out := make([]*api.Location, len(path))
	for i, p := range path {
		out[i] = toProtoLocation(p)
	}
	return out
}

// timestampOrNil keeps unset times out of the response
func timestampOrNil(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

// mapRiskLevel converts the classifier's ordinal level to the API enum
func mapRiskLevel(l risk.Level) api.RiskLevel {
	switch l {
	case risk.Low:
		return api.RiskLevel_RISK_LEVEL_LOW
	case risk.Medium:
		return api.RiskLevel_RISK_LEVEL_MEDIUM
	case risk.High:
		return api.RiskLevel_RISK_LEVEL_HIGH
	case risk.Critical:
		return api.RiskLevel_RISK_LEVEL_CRITICAL
	default:
		return api.RiskLevel_RISK_LEVEL_UNSPECIFIED
	}
}

func mapAlertStatus(s alerts.Status) api.AlertStatus {
	switch s {
	case alerts.Pending:
		return api.AlertStatus_ALERT_STATUS_PENDING
	case alerts.Dispatched:
		return api.AlertStatus_ALERT_STATUS_DISPATCHED
	case alerts.Resolved:
		return api.AlertStatus_ALERT_STATUS_RESOLVED
	default:
		return api.AlertStatus_ALERT_STATUS_UNSPECIFIED
	}
}

func toProtoAlert(a alerts.Alert) *api.Alert {
	out := &api.Alert{
		Id:                    a.ID,
		Species:               string(a.Species),
		Timestamp:             timestamppb.New(a.Timestamp),
		Location:              toProtoLocation(a.Location),
		DistanceToSettlementM: a.DistanceToSettlementMeters,
		Confidence:            a.ConfidencePercent,
		Direction:             a.Direction,
		CameraId:              a.CameraID,
		ImageUrl:              a.ImageURL,
		Notes:                 a.Notes,
		RiskLevel:             mapRiskLevel(a.RiskLevel),
		RiskScore:             int32(a.RiskScore),
		TimeOfDay:             string(a.TimeOfDay),
		PredictedTrajectory:   toProtoPath(a.PredictedTrajectory),
		EtaMinutes:            int32(a.ETAMinutes),
		RouteDistanceM:        a.RouteDistanceMeters,
		Status:                mapAlertStatus(a.Status),
		DispatchedAt:          timestampOrNil(a.DispatchedAt),
		ResolvedAt:            timestampOrNil(a.ResolvedAt),
	}
	if a.ResponseTimeSeconds != nil {
		out.ResponseTimeSeconds = wrapperspb.Int32(int32(*a.ResponseTimeSeconds))
	}
	if a.MetSLA != nil {
		out.MetSla = wrapperspb.Bool(*a.MetSLA)
	}
	if r := a.Incident; r != nil {
		out.Incident = &api.IncidentReport{
			Description:     r.Description,
			Outcome:         r.Outcome,
			Status:          string(r.Status),
			IsFalsePositive: r.IsFalsePositive,
			ReportedBy:      r.ReportedBy,
			ReportedAt:      timestamppb.New(r.ReportedAt),
		}
	}
	return out
}

func toProtoAlerts(list []alerts.Alert) []*api.Alert {
	out := make([]*api.Alert, len(list))
	for i, a := range list {
		out[i] = toProtoAlert(a)
	}
	return out
}

// fromProtoReport returns nil when the caller sent no report. The manager
// stamps ReportedAt.
func fromProtoReport(r *api.IncidentReport) *alerts.IncidentReport {
	if r == nil {
		return nil
	}
	return &alerts.IncidentReport{
		Description:     r.GetDescription(),
		Outcome:         r.GetOutcome(),
		Status:          alerts.IncidentStatus(r.GetStatus()),
		IsFalsePositive: r.GetIsFalsePositive(),
		ReportedBy:      r.GetReportedBy(),
	}
}

func toProtoStats(s alerts.Stats) *api.AlertStats {
	return &api.AlertStats{
		Total:              int32(s.Total),
		Pending:            int32(s.Pending),
		Dispatched:         int32(s.Dispatched),
		Resolved:           int32(s.Resolved),
		ByRisk:             toProtoCounts(s.ByRisk),
		BySpecies:          toProtoCounts(s.BySpecies),
		AvgResponseSeconds: s.AvgResponseSeconds,
		SlaMet:             int32(s.SLAMet),
		SlaMissed:          int32(s.SLAMissed),
		FalsePositives:     int32(s.FalsePositives),
	}
}

func toProtoCounts(m map[string]int) map[string]int32 {
	out := make(map[string]int32, len(m))
	for k, v := range m {
		out[k] = int32(v)
	}
	return out
}

func toProtoStation(s routing.Station) *api.Station {
	return &api.Station{
		Id:       s.ID,
		Name:     s.Name,
		Location: toProtoLocation(s.Location),
		Type:     string(s.Type),
	}
}

func toProtoRoute(r routing.Route) *api.Route {
	return &api.Route{
		Id:                r.ID,
		OriginStationId:   r.OriginStationID,
		OriginStationName: r.OriginStationName,
		Origin:            toProtoLocation(r.Origin),
		Destination:       toProtoLocation(r.DestinationLocation),
		DistanceKm:        r.DistanceKm,
		DurationMinutes:   int32(r.DurationMinutes),
		Path:              toProtoPath(r.Path),
		EncodedPath:       r.EncodedPath,
		Source:            r.Source,
		ComputedAt:        timestamppb.New(r.ComputedAt),
		Fallback:          r.IsFallback(),
	}
}

func toProtoCamera(c cameras.Camera) *api.Camera {
	return &api.Camera{
		Id:                 c.ID,
		Name:               c.Name,
		Location:           toProtoLocation(c.Location),
		Status:             string(c.Status),
		LastDetection:      timestampOrNil(c.LastDetection),
		DetectionsInWindow: int32(c.DetectionsInWindow),
	}
}

func toProtoNotification(n notify.Notification) *api.Notification {
	sentTo := make([]string, len(n.SentTo))
	for i, g := range n.SentTo {
		sentTo[i] = string(g)
	}
	return &api.Notification{
		Id:            n.ID,
		AlertId:       n.AlertID,
		Type:          string(n.Type),
		Title:         n.Title,
		Message:       n.Message,
		SafetyMessage: n.SafetyMessage,
		Timestamp:     timestamppb.New(n.Timestamp),
		Read:          n.Read,
		Species:       string(n.Species),
		Location:      toProtoLocation(n.Location),
		SentTo:        sentTo,
		Briefing:      n.Briefing,
	}
}

func toProtoRecipient(r notify.Recipient) *api.Recipient {
	return &api.Recipient{
		Group:             string(r.Group),
		Name:              r.Name,
		Enabled:           r.Enabled,
		AutoNotify:        r.AutoNotify,
		ContactInfo:       r.ContactInfo,
		NotificationCount: int32(r.NotificationCount),
	}
}

func toProtoContact(c contacts.Contact) *api.Contact {
	return &api.Contact{
		Id:                c.ID,
		Name:              c.Name,
		PhoneNumber:       c.PhoneNumber,
		AlternatePhone:    c.AlternatePhone,
		Email:             c.Email,
		Category:          string(c.Category),
		Village:           c.Village,
		Region:            c.Region,
		Status:            string(c.Status),
		ReceiveAlerts:     c.ReceiveAlerts,
		PreferredLanguage: string(c.PreferredLanguage),
		NotificationsSent: int32(c.NotificationsSent),
		LastNotified:      timestampOrNil(c.LastNotified),
		AddedAt:           timestamppb.New(c.AddedAt),
		AddedBy:           c.AddedBy,
		Notes:             c.Notes,
	}
}

func toProtoContacts(list []contacts.Contact) []*api.Contact {
	out := make([]*api.Contact, len(list))
	for i, c := range list {
		out[i] = toProtoContact(c)
	}
	return out
}

// fromProtoUpdate keeps unset wrapper fields nil so they stay unchanged
func fromProtoUpdate(req *api.UpdateContactRequest) contacts.Update {
	str := func(v *wrapperspb.StringValue) *string {
		if v == nil {
			return nil
		}
		s := v.GetValue()
		return &s
	}
	u := contacts.Update{
		Name:           str(req.GetName()),
		PhoneNumber:    str(req.GetPhoneNumber()),
		AlternatePhone: str(req.GetAlternatePhone()),
		Email:          str(req.GetEmail()),
		Village:        str(req.GetVillage()),
		Region:         str(req.GetRegion()),
		Notes:          str(req.GetNotes()),
	}
	if v := str(req.GetCategory()); v != nil {
		c := contacts.Category(*v)
		u.Category = &c
	}
	if v := str(req.GetStatus()); v != nil {
		s := contacts.Status(*v)
		u.Status = &s
	}
	if v := str(req.GetPreferredLanguage()); v != nil {
		l := contacts.Language(*v)
		u.PreferredLanguage = &l
	}
	if v := req.GetReceiveAlerts(); v != nil {
		b := v.GetValue()
		u.ReceiveAlerts = &b
	}
	return u
}
