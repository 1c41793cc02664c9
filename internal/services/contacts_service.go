package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dpup/prefab/logging"

	api "github.com/dpup/wildwatch/server/api/v1"
	"github.com/dpup/wildwatch/server/internal/lib/contacts"
)

// maxImportBytes bounds the CSV accepted by ImportContacts
const maxImportBytes = 1 << 20

// ContactsService implements the gRPC ContactsService
type ContactsService struct {
	api.UnimplementedContactsServiceServer
	directory *contacts.Directory
}

// NewContactsService creates a new ContactsService
func NewContactsService(directory *contacts.Directory) *ContactsService {
	return &ContactsService{directory: directory}
}

// ListContacts returns matching contacts newest first
func (s *ContactsService) ListContacts(ctx context.Context, req *api.ListContactsRequest) (*api.ListContactsResponse, error) {
	filter := contacts.Filter{
		Query:      req.GetQuery(),
		Village:    req.GetVillage(),
		ActiveOnly: req.GetActiveOnly(),
	}
	if req.GetCategory() != "" {
		category, err := contacts.ParseCategory(req.GetCategory())
		if err != nil {
			return nil, statusError(ctx, "ListContacts", err)
		}
		filter.Category = category
	}

	list := s.directory.List(filter)
	return &api.ListContactsResponse{
		Contacts: toProtoContacts(list),
		Count:    int32(len(list)),
	}, nil
}

func (s *ContactsService) GetContact(ctx context.Context, req *api.GetContactRequest) (*api.GetContactResponse, error) {
	c, err := s.directory.Get(req.GetId())
	if err != nil {
		return nil, statusError(ctx, "GetContact", err)
	}
	return &api.GetContactResponse{Contact: toProtoContact(c)}, nil
}

func (s *ContactsService) GetContactStats(ctx context.Context, req *api.GetContactStatsRequest) (*api.GetContactStatsResponse, error) {
	stats := s.directory.Stats()
	return &api.GetContactStatsResponse{Stats: &api.ContactStats{
		Total:      int32(stats.Total),
		Active:     int32(stats.Active),
		Receiving:  int32(stats.Receiving),
		Farmers:    int32(stats.Farmers),
		Unverified: int32(stats.Unverified),
		ByVillage:  toProtoCounts(stats.ByVillage),
	}}, nil
}

// CreateContact adds one contact
func (s *ContactsService) CreateContact(ctx context.Context, req *api.CreateContactRequest) (*api.CreateContactResponse, error) {
	ctx = logging.EnsureLogger(ctx)
	c, err := s.directory.Add(contacts.Draft{
		Name:              req.GetName(),
		PhoneNumber:       req.GetPhoneNumber(),
		Village:           req.GetVillage(),
		AlternatePhone:    req.GetAlternatePhone(),
		Email:             req.GetEmail(),
		Category:          contacts.Category(req.GetCategory()),
		Region:            req.GetRegion(),
		PreferredLanguage: contacts.Language(req.GetPreferredLanguage()),
		Notes:             req.GetNotes(),
		AddedBy:           req.GetAddedBy(),
	})
	if err != nil {
		return nil, statusError(ctx, "CreateContact", err)
	}
	logging.Infow(ctx, "Contact added", "contact_id", c.ID, "village", c.Village, "category", c.Category)
	return &api.CreateContactResponse{Contact: toProtoContact(c)}, nil
}

// UpdateContact applies the fields present in the request
func (s *ContactsService) UpdateContact(ctx context.Context, req *api.UpdateContactRequest) (*api.UpdateContactResponse, error) {
	c, err := s.directory.Update(req.GetId(), fromProtoUpdate(req))
	if err != nil {
		return nil, statusError(ctx, "UpdateContact", err)
	}
	return &api.UpdateContactResponse{Contact: toProtoContact(c)}, nil
}

func (s *ContactsService) DeleteContact(ctx context.Context, req *api.DeleteContactRequest) (*api.DeleteContactResponse, error) {
	if err := s.directory.Delete(req.GetId()); err != nil {
		return nil, statusError(ctx, "DeleteContact", err)
	}
	return &api.DeleteContactResponse{}, nil
}

// BulkDeleteContacts removes the listed contacts, skipping unknown ids
func (s *ContactsService) BulkDeleteContacts(ctx context.Context, req *api.BulkDeleteContactsRequest) (*api.BulkDeleteContactsResponse, error) {
	if len(req.GetIds()) == 0 {
		return nil, statusError(ctx, "BulkDeleteContacts", fmt.Errorf("%w: no contact ids given", errBadRequest))
	}
	return &api.BulkDeleteContactsResponse{Deleted: int32(s.directory.BulkDelete(req.GetIds()))}, nil
}

// ImportContacts adds every valid row of a CSV upload
func (s *ContactsService) ImportContacts(ctx context.Context, req *api.ImportContactsRequest) (*api.ImportContactsResponse, error) {
	ctx = logging.EnsureLogger(ctx)
	if strings.TrimSpace(req.GetCsv()) == "" {
		return nil, statusError(ctx, "ImportContacts", fmt.Errorf("%w: csv is empty", errBadRequest))
	}
	if len(req.GetCsv()) > maxImportBytes {
		return nil, statusError(ctx, "ImportContacts", fmt.Errorf("%w: csv exceeds %d bytes", errBadRequest, maxImportBytes))
	}

	result, err := s.directory.ImportCSV(ctx, strings.NewReader(req.GetCsv()), req.GetAddedBy())
	if err != nil {
		return nil, statusError(ctx, "ImportContacts", err)
	}

	errs := make([]*api.ImportError, len(result.Errors))
	for i, e := range result.Errors {
		errs[i] = &api.ImportError{Row: int32(e.Row), Message: e.Error}
	}
	return &api.ImportContactsResponse{
		Successful: int32(result.Successful),
		Failed:     int32(result.Failed),
		Duplicates: int32(result.Duplicates),
		Errors:     errs,
	}, nil
}
