package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	api "github.com/dpup/wildwatch/server/api/v1"
)

func TestNotificationsService_Feed(t *testing.T) {
	svc := newTestServices(testStations)
	ctx := testContext()
	for _, id := range []string{"det-1", "det-2"} {
		_, err := svc.alerts.CreateDetection(ctx, detection(id))
		require.NoError(t, err)
	}

	list, err := svc.notifications.ListNotifications(ctx, &api.ListNotificationsRequest{})
	require.NoError(t, err)
	require.Len(t, list.GetNotifications(), 2)
	assert.Equal(t, int32(2), list.GetUnreadCount())
	assert.Equal(t, "det-2", list.GetNotifications()[0].GetAlertId())
	assert.Equal(t, "LION Detected", list.GetNotifications()[0].GetTitle())
	assert.Equal(t, "ALERT", list.GetNotifications()[0].GetType())
	assert.NotEmpty(t, list.GetNotifications()[0].GetSafetyMessage())

	first := list.GetNotifications()[0].GetId()
	_, err = svc.notifications.MarkNotificationRead(ctx, &api.MarkNotificationReadRequest{Id: first})
	require.NoError(t, err)
	assert.Equal(t, 1, svc.center.UnreadCount())
	_, err = svc.notifications.MarkNotificationRead(ctx, &api.MarkNotificationReadRequest{Id: "nope"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	marked, err := svc.notifications.MarkAllNotificationsRead(ctx, &api.MarkAllNotificationsReadRequest{})
	require.NoError(t, err)
	assert.Equal(t, int32(1), marked.GetMarked())
	assert.Equal(t, 0, svc.center.UnreadCount())

	_, err = svc.notifications.ClearNotification(ctx, &api.ClearNotificationRequest{Id: first})
	require.NoError(t, err)
	assert.Len(t, svc.center.List(), 1)
	_, err = svc.notifications.ClearNotification(ctx, &api.ClearNotificationRequest{Id: first})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = svc.notifications.ClearNotifications(ctx, &api.ClearNotificationsRequest{})
	require.NoError(t, err)
	list, err = svc.notifications.ListNotifications(ctx, &api.ListNotificationsRequest{})
	require.NoError(t, err)
	assert.Empty(t, list.GetNotifications())
	assert.Equal(t, int32(0), list.GetUnreadCount())
}

func TestNotificationsService_CustomAndRecipients(t *testing.T) {
	svc := newTestServices(testStations)
	ctx := testContext()

	updated, err := svc.notifications.UpdateRecipient(ctx, &api.UpdateRecipientRequest{Group: "KRCS", Enabled: false, AutoNotify: true})
	require.NoError(t, err)
	assert.False(t, updated.GetRecipient().GetEnabled())
	_, err = svc.notifications.UpdateRecipient(ctx, &api.UpdateRecipientRequest{Group: "PRESS"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	sent, err := svc.notifications.SendNotification(ctx, &api.SendNotificationRequest{
		Title:   "Drill",
		Message: "Evacuation drill at 10:00",
		Groups:  []string{"KWS", "KRCS"},
	})
	require.NoError(t, err)
	assert.Equal(t, "CUSTOM", sent.GetNotification().GetType())
	assert.Equal(t, []string{"KWS"}, sent.GetNotification().GetSentTo(), "disabled groups are skipped")

	_, err = svc.notifications.SendNotification(ctx, &api.SendNotificationRequest{Title: "x", Message: " "})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	recipients, err := svc.notifications.ListRecipients(ctx, &api.ListRecipientsRequest{})
	require.NoError(t, err)
	require.Len(t, recipients.GetRecipients(), 3)
	assert.Equal(t, "KWS", recipients.GetRecipients()[0].GetGroup())
	assert.Equal(t, int32(1), recipients.GetRecipients()[0].GetNotificationCount())
}
