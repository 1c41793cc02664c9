package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	api "github.com/dpup/wildwatch/server/api/v1"
	"github.com/dpup/wildwatch/server/internal/lib/contacts"
)

func newTestContactsService() (*ContactsService, *contacts.Directory) {
	directory := contacts.NewDirectory(contacts.WithClock(func() time.Time { return detectedAt }))
	return NewContactsService(directory), directory
}

func TestContactsService_CreateAndGet(t *testing.T) {
	svc, _ := newTestContactsService()
	ctx := testContext()

	created, err := svc.CreateContact(ctx, &api.CreateContactRequest{
		Name:        "Amina Wanjiru",
		PhoneNumber: "0712 345 678",
		Village:     "Mtakuja",
		AddedBy:     "ops",
	})
	require.NoError(t, err)
	c := created.GetContact()
	assert.NotEmpty(t, c.GetId())
	assert.Equal(t, "FARMER", c.GetCategory())
	assert.Equal(t, "ACTIVE", c.GetStatus())
	assert.Equal(t, "sw", c.GetPreferredLanguage())
	assert.True(t, c.GetReceiveAlerts())
	assert.Equal(t, contacts.DefaultRegion, c.GetRegion())
	assert.True(t, detectedAt.Equal(c.GetAddedAt().AsTime()))
	assert.Nil(t, c.GetLastNotified())

	got, err := svc.GetContact(ctx, &api.GetContactRequest{Id: c.GetId()})
	require.NoError(t, err)
	assert.Equal(t, "Amina Wanjiru", got.GetContact().GetName())

	_, err = svc.CreateContact(ctx, &api.CreateContactRequest{Name: "Dup", PhoneNumber: "+254712345678", Village: "Mtakuja"})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))
	_, err = svc.CreateContact(ctx, &api.CreateContactRequest{Name: "No Village", PhoneNumber: "0722000111"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	_, err = svc.GetContact(ctx, &api.GetContactRequest{Id: "contact-missing"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestContactsService_ListUpdateDelete(t *testing.T) {
	svc, directory := newTestContactsService()
	ctx := testContext()

	for _, d := range []contacts.Draft{
		{Name: "Amina", PhoneNumber: "0712000001", Village: "Mtakuja"},
		{Name: "Baraka", PhoneNumber: "0712000002", Village: "Kimana", Category: contacts.CommunityLeader},
		{Name: "Chege", PhoneNumber: "0712000003", Village: "Mtakuja", Category: contacts.BusinessOwner},
	} {
		_, err := directory.Add(d)
		require.NoError(t, err)
	}

	list, err := svc.ListContacts(ctx, &api.ListContactsRequest{Village: "mtakuja"})
	require.NoError(t, err)
	assert.Equal(t, int32(2), list.GetCount())
	assert.Equal(t, "Chege", list.GetContacts()[0].GetName(), "newest first")

	list, err = svc.ListContacts(ctx, &api.ListContactsRequest{Category: "community_leader"})
	require.NoError(t, err)
	require.Equal(t, int32(1), list.GetCount())
	assert.Equal(t, "Baraka", list.GetContacts()[0].GetName())

	_, err = svc.ListContacts(ctx, &api.ListContactsRequest{Category: "poacher"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	id := list.GetContacts()[0].GetId()
	updated, err := svc.UpdateContact(ctx, &api.UpdateContactRequest{
		Id:            id,
		Status:        wrapperspb.String("inactive"),
		ReceiveAlerts: wrapperspb.Bool(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "INACTIVE", updated.GetContact().GetStatus())
	assert.False(t, updated.GetContact().GetReceiveAlerts())
	assert.Equal(t, "Baraka", updated.GetContact().GetName(), "unset fields are kept")

	_, err = svc.UpdateContact(ctx, &api.UpdateContactRequest{Id: id, PhoneNumber: wrapperspb.String("0712000001")})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	active, err := svc.ListContacts(ctx, &api.ListContactsRequest{ActiveOnly: true})
	require.NoError(t, err)
	assert.Equal(t, int32(2), active.GetCount())

	stats, err := svc.GetContactStats(ctx, &api.GetContactStatsRequest{})
	require.NoError(t, err)
	assert.Equal(t, int32(3), stats.GetStats().GetTotal())
	assert.Equal(t, int32(2), stats.GetStats().GetActive())
	assert.Equal(t, int32(2), stats.GetStats().GetReceiving())
	assert.Equal(t, int32(1), stats.GetStats().GetFarmers())
	assert.Equal(t, int32(2), stats.GetStats().GetByVillage()["Mtakuja"])

	_, err = svc.DeleteContact(ctx, &api.DeleteContactRequest{Id: id})
	require.NoError(t, err)
	_, err = svc.DeleteContact(ctx, &api.DeleteContactRequest{Id: id})
	assert.Equal(t, codes.NotFound, status.Code(err))

	all, err := svc.ListContacts(ctx, &api.ListContactsRequest{})
	require.NoError(t, err)
	ids := []string{"contact-missing"}
	for _, c := range all.GetContacts() {
		ids = append(ids, c.GetId())
	}
	deleted, err := svc.BulkDeleteContacts(ctx, &api.BulkDeleteContactsRequest{Ids: ids})
	require.NoError(t, err)
	assert.Equal(t, int32(2), deleted.GetDeleted())

	_, err = svc.BulkDeleteContacts(ctx, &api.BulkDeleteContactsRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestContactsService_ImportContacts(t *testing.T) {
	svc, directory := newTestContactsService()
	ctx := testContext()

	csv := "Name,Phone Number,Village,Category\n" +
		"Amina,0712000001,Mtakuja,farmer\n" +
		"Baraka,0712000002,Kimana,resident\n" +
		"Amina Again,+254712000001,Mtakuja,\n" +
		"Nobody,not-a-phone,Kimana,\n"

	resp, err := svc.ImportContacts(ctx, &api.ImportContactsRequest{Csv: csv, AddedBy: "ops"})
	require.NoError(t, err)
	assert.Equal(t, int32(2), resp.GetSuccessful())
	assert.Equal(t, int32(1), resp.GetDuplicates())
	assert.Equal(t, int32(1), resp.GetFailed())
	require.Len(t, resp.GetErrors(), 1)
	assert.Equal(t, int32(5), resp.GetErrors()[0].GetRow())
	assert.Contains(t, resp.GetErrors()[0].GetMessage(), "phone")
	assert.Len(t, directory.List(contacts.Filter{}), 2)

	_, err = svc.ImportContacts(ctx, &api.ImportContactsRequest{Csv: "  "})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
