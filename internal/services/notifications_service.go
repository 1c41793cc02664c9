package services

import (
	"context"

	"github.com/dpup/prefab/logging"

	api "github.com/dpup/wildwatch/server/api/v1"
	"github.com/dpup/wildwatch/server/internal/lib/notify"
)

// NotificationsService implements the gRPC NotificationsService
type NotificationsService struct {
	api.UnimplementedNotificationsServiceServer
	center *notify.Center
}

// NewNotificationsService creates a new NotificationsService
func NewNotificationsService(center *notify.Center) *NotificationsService {
	return &NotificationsService{center: center}
}

// ListNotifications returns the feed newest first with the unread count
func (s *NotificationsService) ListNotifications(ctx context.Context, req *api.ListNotificationsRequest) (*api.ListNotificationsResponse, error) {
	list := s.center.List()
	out := make([]*api.Notification, len(list))
	for i, n := range list {
		out[i] = toProtoNotification(n)
	}
	return &api.ListNotificationsResponse{
		Notifications: out,
		UnreadCount:   int32(s.center.UnreadCount()),
	}, nil
}

// SendNotification publishes an operator message
func (s *NotificationsService) SendNotification(ctx context.Context, req *api.SendNotificationRequest) (*api.SendNotificationResponse, error) {
	ctx = logging.EnsureLogger(ctx)

	groups := make([]notify.Group, len(req.GetGroups()))
	for i, g := range req.GetGroups() {
		groups[i] = notify.Group(g)
	}
	n, err := s.center.SendCustom(ctx, req.GetTitle(), req.GetMessage(), groups)
	if err != nil {
		return nil, statusError(ctx, "SendNotification", err)
	}
	return &api.SendNotificationResponse{Notification: toProtoNotification(n)}, nil
}

func (s *NotificationsService) MarkNotificationRead(ctx context.Context, req *api.MarkNotificationReadRequest) (*api.MarkNotificationReadResponse, error) {
	if err := s.center.MarkRead(req.GetId()); err != nil {
		return nil, statusError(ctx, "MarkNotificationRead", err)
	}
	return &api.MarkNotificationReadResponse{}, nil
}

func (s *NotificationsService) MarkAllNotificationsRead(ctx context.Context, req *api.MarkAllNotificationsReadRequest) (*api.MarkAllNotificationsReadResponse, error) {
	return &api.MarkAllNotificationsReadResponse{Marked: int32(s.center.MarkAllRead())}, nil
}

func (s *NotificationsService) ClearNotification(ctx context.Context, req *api.ClearNotificationRequest) (*api.ClearNotificationResponse, error) {
	if err := s.center.Clear(req.GetId()); err != nil {
		return nil, statusError(ctx, "ClearNotification", err)
	}
	return &api.ClearNotificationResponse{}, nil
}

func (s *NotificationsService) ClearNotifications(ctx context.Context, req *api.ClearNotificationsRequest) (*api.ClearNotificationsResponse, error) {
	s.center.ClearAll()
	return &api.ClearNotificationsResponse{}, nil
}

// ListRecipients returns the recipient roster
func (s *NotificationsService) ListRecipients(ctx context.Context, req *api.ListRecipientsRequest) (*api.ListRecipientsResponse, error) {
	list := s.center.Recipients()
	out := make([]*api.Recipient, len(list))
	for i, r := range list {
		out[i] = toProtoRecipient(r)
	}
	return &api.ListRecipientsResponse{Recipients: out}, nil
}

// UpdateRecipient changes whether a group receives notifications
func (s *NotificationsService) UpdateRecipient(ctx context.Context, req *api.UpdateRecipientRequest) (*api.UpdateRecipientResponse, error) {
	ctx = logging.EnsureLogger(ctx)
	r, err := s.center.UpdateRecipient(notify.Group(req.GetGroup()), req.GetEnabled(), req.GetAutoNotify())
	if err != nil {
		return nil, statusError(ctx, "UpdateRecipient", err)
	}
	logging.Infow(ctx, "Recipient updated", "group", r.Group, "enabled", r.Enabled, "auto_notify", r.AutoNotify)
	return &api.UpdateRecipientResponse{Recipient: toProtoRecipient(r)}, nil
}
