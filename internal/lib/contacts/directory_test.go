package contacts

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dpup/prefab/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var addedAt = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func newTestDirectory() *Directory {
	return NewDirectory(WithClock(func() time.Time { return addedAt }))
}

func ptr[T any](v T) *T { return &v }

func mustAdd(t *testing.T, d *Directory, name, phone, village string) Contact {
	t.Helper()
	c, err := d.Add(Draft{Name: name, PhoneNumber: phone, Village: village})
	require.NoError(t, err)
	return c
}

func TestAdd_AppliesDefaults(t *testing.T) {
	d := newTestDirectory()

	c, err := d.Add(Draft{Name: " John Mwangi ", PhoneNumber: "+254 712 345 678", Village: "Mtakuja"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(c.ID, "contact-"))
	assert.Equal(t, "John Mwangi", c.Name)
	assert.Equal(t, Farmer, c.Category)
	assert.Equal(t, DefaultRegion, c.Region)
	assert.Equal(t, Active, c.Status)
	assert.True(t, c.ReceiveAlerts)
	assert.Equal(t, Swahili, c.PreferredLanguage)
	assert.Zero(t, c.NotificationsSent)
	assert.Nil(t, c.LastNotified)
	assert.Equal(t, addedAt, c.AddedAt)
}

func TestAdd_OptionalFields(t *testing.T) {
	d := NewDirectory(WithDefaultRegion("Loitokitok Sub-County"))

	c, err := d.Add(Draft{
		Name:              "Grace Njeri",
		PhoneNumber:       "0722 000 111",
		Village:           "Kimana",
		Category:          "community_leader",
		PreferredLanguage: "EN",
		Email:             "grace@example.org",
		AddedBy:           "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, CommunityLeader, c.Category)
	assert.Equal(t, English, c.PreferredLanguage)
	assert.Equal(t, "Loitokitok Sub-County", c.Region)
	assert.Equal(t, "admin", c.AddedBy)
}

func TestAdd_Rejections(t *testing.T) {
	d := newTestDirectory()
	mustAdd(t, d, "Sarah Wanjiku", "0712345678", "Kuku")

	tests := []struct {
		name  string
		draft Draft
		want  error
		msg   string
	}{
		{"missing name", Draft{PhoneNumber: "0700111222", Village: "Kuku"}, ErrInvalidContact, "missing required field: name"},
		{"missing village", Draft{Name: "A", PhoneNumber: "0700111222"}, ErrInvalidContact, "missing required field: village"},
		{"missing phone", Draft{Name: "A", Village: "Kuku"}, ErrInvalidContact, "phone number"},
		{"letters in phone", Draft{Name: "A", PhoneNumber: "07OO111222", Village: "Kuku"}, ErrInvalidContact, "invalid phone number format"},
		{"short phone", Draft{Name: "A", PhoneNumber: "12345", Village: "Kuku"}, ErrInvalidContact, "invalid phone number format"},
		{"bad category", Draft{Name: "A", PhoneNumber: "0700111222", Village: "Kuku", Category: "POACHER"}, ErrInvalidContact, "unknown category"},
		{"bad language", Draft{Name: "A", PhoneNumber: "0700111222", Village: "Kuku", PreferredLanguage: "fr"}, ErrInvalidContact, "unsupported language"},
		{"bad email", Draft{Name: "A", PhoneNumber: "0700111222", Village: "Kuku", Email: "not-an-email"}, ErrInvalidContact, "invalid email"},
		{"same number other format", Draft{Name: "B", PhoneNumber: "+254 712-345-678", Village: "Kuku"}, ErrDuplicateContact, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := d.Add(tt.draft)
			assert.ErrorIs(t, err, tt.want)
			if tt.msg != "" {
				assert.ErrorContains(t, err, tt.msg)
			}
		})
	}
	assert.Equal(t, 1, d.Stats().Total)
}

func TestUpdate(t *testing.T) {
	d := newTestDirectory()
	c := mustAdd(t, d, "David Kamau", "0711000001", "Rombo")
	other := mustAdd(t, d, "Peter Ochieng", "0711000002", "Rombo")

	updated, err := d.Update(c.ID, Update{
		Village:       ptr("Kimana"),
		Status:        ptr(Unverified),
		ReceiveAlerts: ptr(false),
		Category:      ptr(BusinessOwner),
		PhoneNumber:   ptr("0711000009"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Kimana", updated.Village)
	assert.Equal(t, Unverified, updated.Status)
	assert.False(t, updated.ReceiveAlerts)
	assert.Equal(t, BusinessOwner, updated.Category)
	assert.Equal(t, "David Kamau", updated.Name, "nil fields are left alone")

	// The old number is free again, the new one is taken
	_, err = d.Add(Draft{Name: "New", PhoneNumber: "0711000001", Village: "Kuku"})
	require.NoError(t, err)
	_, err = d.Update(other.ID, Update{PhoneNumber: ptr("+254711000009")})
	assert.ErrorIs(t, err, ErrDuplicateContact)

	_, err = d.Update(c.ID, Update{Name: ptr("  ")})
	assert.ErrorIs(t, err, ErrInvalidContact)
	_, err = d.Update(c.ID, Update{Status: ptr(Status("GONE"))})
	assert.ErrorIs(t, err, ErrInvalidContact)

	got, err := d.Get(c.ID)
	require.NoError(t, err)
	assert.Equal(t, "David Kamau", got.Name, "failed updates change nothing")
	assert.Equal(t, Unverified, got.Status)

	_, err = d.Update("contact-missing", Update{})
	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestDeleteAndBulkDelete(t *testing.T) {
	d := newTestDirectory()
	a := mustAdd(t, d, "Mary Akinyi", "0700000001", "Kuku")
	b := mustAdd(t, d, "James Kipchoge", "0700000002", "Kuku")
	c := mustAdd(t, d, "Lucy Wambui", "0700000003", "Kuku")

	require.NoError(t, d.Delete(a.ID))
	assert.ErrorIs(t, d.Delete(a.ID), ErrContactNotFound)

	assert.Equal(t, 2, d.BulkDelete([]string{b.ID, c.ID, "contact-unknown"}))
	assert.Empty(t, d.List(Filter{}))

	// Deleted numbers can be added again
	mustAdd(t, d, "Mary Akinyi", "0700000001", "Kuku")
}

func TestList_Filters(t *testing.T) {
	d := newTestDirectory()
	john := mustAdd(t, d, "John Mwangi", "0700000001", "Mtakuja")
	mustAdd(t, d, "Sarah Wanjiku", "0700000002", "Kimana")
	leader, err := d.Add(Draft{Name: "Joseph Mutua", PhoneNumber: "0733555001", Village: "mtakuja", Category: CommunityLeader})
	require.NoError(t, err)
	_, err = d.Update(john.ID, Update{ReceiveAlerts: ptr(false)})
	require.NoError(t, err)

	all := d.List(Filter{})
	require.Len(t, all, 3)
	assert.Equal(t, leader.ID, all[0].ID, "newest first")

	names := func(cs []Contact) []string {
		out := []string{}
		for _, c := range cs {
			out = append(out, c.Name)
		}
		return out
	}

	assert.Equal(t, []string{"Joseph Mutua", "John Mwangi"}, names(d.Search("jo")))
	assert.Equal(t, []string{"Joseph Mutua"}, names(d.Search("0733")))
	assert.Equal(t, []string{"Sarah Wanjiku"}, names(d.Search("KIMANA")))
	assert.Equal(t, []string{"Joseph Mutua", "John Mwangi"}, names(d.ByVillage("Mtakuja")))
	assert.Equal(t, []string{"Joseph Mutua"}, names(d.ByCategory(CommunityLeader)))
	assert.Equal(t, []string{"Joseph Mutua", "Sarah Wanjiku"}, names(d.Active()))
	assert.Equal(t, []string{"Joseph Mutua"}, names(d.List(Filter{Query: "jo", ActiveOnly: true})))
	assert.Empty(t, d.Search("zebra"))
}

func TestStats(t *testing.T) {
	d := newTestDirectory()
	a := mustAdd(t, d, "A", "0700000001", "Kuku")
	mustAdd(t, d, "B", "0700000002", "Kuku")
	_, err := d.Add(Draft{Name: "C", PhoneNumber: "0700000003", Village: "Rombo", Category: Resident})
	require.NoError(t, err)
	_, err = d.Update(a.ID, Update{Status: ptr(Unverified), ReceiveAlerts: ptr(false)})
	require.NoError(t, err)

	stats := d.Stats()
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Active)
	assert.Equal(t, 2, stats.Receiving)
	assert.Equal(t, 2, stats.Farmers)
	assert.Equal(t, 1, stats.Unverified)
	assert.Equal(t, map[string]int{"Kuku": 2, "Rombo": 1}, stats.ByVillage)
}

func TestRecordNotified(t *testing.T) {
	d := newTestDirectory()
	a := mustAdd(t, d, "A", "0700000001", "Kuku")
	b := mustAdd(t, d, "B", "0700000002", "Kuku")
	_, err := d.Update(b.ID, Update{Status: ptr(Inactive)})
	require.NoError(t, err)

	sentAt := addedAt.Add(time.Hour)
	assert.Equal(t, 1, d.RecordNotified(sentAt))
	assert.Equal(t, 1, d.RecordNotified(sentAt.Add(time.Minute)))

	got, err := d.Get(a.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.NotificationsSent)
	assert.Equal(t, sentAt.Add(time.Minute), *got.LastNotified)

	got, err = d.Get(b.ID)
	require.NoError(t, err)
	assert.Zero(t, got.NotificationsSent)
}

func TestImportCSV_WithHeader(t *testing.T) {
	d := newTestDirectory()
	mustAdd(t, d, "Existing", "0700000009", "Kuku")

	csvData := strings.Join([]string{
		"Name,Phone Number,Village,Category,Email",
		"Faith Nyambura,0711 222 333,Kimana,RESIDENT,",
		",0711222334,Kimana,,",
		"Samuel Kimani,not-a-phone,Kimana,,",
		"Rose Muthoni,+254700000009,Kuku,,",
		"",
		"Patrick Kariuki,0711222335,Rombo,,patrick@example.org",
		"Patrick Again,0711-222-335,Rombo,,",
	}, "\n")

	result, err := d.ImportCSV(testContext(), strings.NewReader(csvData), "importer")
	require.NoError(t, err)

	assert.Equal(t, 2, result.Successful)
	assert.Equal(t, 2, result.Failed)
	assert.Equal(t, 2, result.Duplicates)
	assert.Equal(t, []ImportError{
		{Row: 3, Error: "missing required field: name"},
		{Row: 4, Error: "invalid phone number format"},
	}, result.Errors)

	found := d.Search("Faith")
	require.Len(t, found, 1)
	assert.Equal(t, Resident, found[0].Category)
	assert.Equal(t, "importer", found[0].AddedBy)
}

func TestImportCSV_Headerless(t *testing.T) {
	d := newTestDirectory()

	result, err := d.ImportCSV(testContext(), strings.NewReader("Anne Wangui,0722000001,Loitokitok\nGeorge Onyango,0722000002\n"), "")
	require.NoError(t, err)

	assert.Equal(t, 1, result.Successful)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, []ImportError{{Row: 2, Error: "missing required field: village"}}, result.Errors)
}

func TestImportCSV_MalformedRow(t *testing.T) {
	d := newTestDirectory()

	result, err := d.ImportCSV(testContext(), strings.NewReader("Anne \"Nyokabi,0722000001,Kuku\nSusan Njambi,0722000003,Kuku\n"), "")
	require.NoError(t, err)

	assert.Equal(t, 1, result.Successful)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 1, result.Errors[0].Row)
}

func testContext() context.Context {
	return logging.EnsureLogger(context.Background())
}

func TestImportCSV_BackgroundContext(t *testing.T) {
	d := newTestDirectory()
	assert.NotPanics(t, func() {
		result, err := d.ImportCSV(context.Background(), strings.NewReader("Anne Wangui,0722000001,Loitokitok\n"), "")
		require.NoError(t, err)
		assert.Equal(t, 1, result.Successful)
	})
}
