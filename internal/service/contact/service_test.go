package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nagi609/Clinic-Management-System/internal/model"
	"github.com/Nagi609/Clinic-Management-System/pkg/apperror"
)

type fakeContactRepo struct {
	contacts map[uuid.UUID]*model.Contact
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{contacts: make(map[uuid.UUID]*model.Contact)}
}

func (f *fakeContactRepo) Create(_ context.Context, c *model.Contact) error {
	f.contacts[c.ID] = c
	return nil
}

func (f *fakeContactRepo) Get(_ context.Context, id uuid.UUID) (*model.Contact, error) {
	c, ok := f.contacts[id]
	if !ok {
		return nil, errors.New("sql: no rows in result set")
	}
	return c, nil
}

func (f *fakeContactRepo) Update(_ context.Context, c *model.Contact) error {
	f.contacts[c.ID] = c
	return nil
}

func (f *fakeContactRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.contacts, id)
	return nil
}

func (f *fakeContactRepo) List(_ context.Context, userID uuid.UUID) ([]*model.Contact, error) {
	var out []*model.Contact
	for _, c := range f.contacts {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeClinicContactRepo struct {
	contacts map[uuid.UUID]*model.ClinicContact
}

func newFakeClinicContactRepo() *fakeClinicContactRepo {
	return &fakeClinicContactRepo{contacts: make(map[uuid.UUID]*model.ClinicContact)}
}

func (f *fakeClinicContactRepo) Create(_ context.Context, c *model.ClinicContact) error {
	f.contacts[c.ID] = c
	return nil
}

func (f *fakeClinicContactRepo) Get(_ context.Context, id uuid.UUID) (*model.ClinicContact, error) {
	c, ok := f.contacts[id]
	if !ok {
		return nil, errors.New("sql: no rows in result set")
	}
	return c, nil
}

func (f *fakeClinicContactRepo) Update(_ context.Context, c *model.ClinicContact) error {
	f.contacts[c.ID] = c
	return nil
}

func (f *fakeClinicContactRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.contacts, id)
	return nil
}

func (f *fakeClinicContactRepo) List(_ context.Context, userID uuid.UUID) ([]*model.ClinicContact, error) {
	var out []*model.ClinicContact
	for _, c := range f.contacts {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func TestCreateAndListContacts(t *testing.T) {
	svc := NewService(newFakeContactRepo(), newFakeClinicContactRepo())
	owner := uuid.New()

	created, err := svc.CreateContact(context.Background(), owner, &model.ContactRequest{
		Name:         "Maria Santos",
		Phone:        "09171234567",
		Email:        "maria@clinic.test",
		Relationship: "Mother",
	})
	require.NoError(t, err)
	require.NotNil(t, created.Relationship)
	assert.Equal(t, "Mother", *created.Relationship)

	contacts, err := svc.ListContacts(context.Background(), owner)
	require.NoError(t, err)
	assert.Len(t, contacts, 1)

	other, err := svc.ListContacts(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestUpdateContactCrossOwnerIsNotFound(t *testing.T) {
	svc := NewService(newFakeContactRepo(), newFakeClinicContactRepo())
	owner := uuid.New()

	created, err := svc.CreateContact(context.Background(), owner, &model.ContactRequest{
		Name:  "Maria Santos",
		Phone: "09171234567",
		Email: "maria@clinic.test",
	})
	require.NoError(t, err)

	_, err = svc.UpdateContact(context.Background(), uuid.New(), created.ID, &model.ContactRequest{
		Name:  "Changed",
		Phone: "09171234567",
		Email: "maria@clinic.test",
	})
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.StatusCode())
}

func TestDeleteClinicContact(t *testing.T) {
	svc := NewService(newFakeContactRepo(), newFakeClinicContactRepo())
	owner := uuid.New()

	created, err := svc.CreateClinicContact(context.Background(), owner, &model.ClinicContactRequest{
		Name: "Dental Office",
		Icon: "tooth",
		Link: "https://clinic.test/dental",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteClinicContact(context.Background(), owner, created.ID))

	contacts, err := svc.ListClinicContacts(context.Background(), owner)
	require.NoError(t, err)
	assert.Empty(t, contacts)
}
