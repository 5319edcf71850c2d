package contact

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Nagi609/Clinic-Management-System/internal/model"
	"github.com/Nagi609/Clinic-Management-System/internal/repository"
	"github.com/Nagi609/Clinic-Management-System/pkg/apperror"
)

type ContactService interface {
	CreateContact(ctx context.Context, userID uuid.UUID, req *model.ContactRequest) (*model.Contact, error)
	UpdateContact(ctx context.Context, userID, id uuid.UUID, req *model.ContactRequest) (*model.Contact, error)
	DeleteContact(ctx context.Context, userID, id uuid.UUID) error
	ListContacts(ctx context.Context, userID uuid.UUID) ([]*model.Contact, error)

	CreateClinicContact(ctx context.Context, userID uuid.UUID, req *model.ClinicContactRequest) (*model.ClinicContact, error)
	UpdateClinicContact(ctx context.Context, userID, id uuid.UUID, req *model.ClinicContactRequest) (*model.ClinicContact, error)
	DeleteClinicContact(ctx context.Context, userID, id uuid.UUID) error
	ListClinicContacts(ctx context.Context, userID uuid.UUID) ([]*model.ClinicContact, error)
}

type Service struct {
	contacts       repository.ContactRepository
	clinicContacts repository.ClinicContactRepository
}

func NewService(contacts repository.ContactRepository, clinicContacts repository.ClinicContactRepository) *Service {
	return &Service{contacts: contacts, clinicContacts: clinicContacts}
}

func (s *Service) CreateContact(ctx context.Context, userID uuid.UUID, req *model.ContactRequest) (*model.Contact, error) {
	contact := &model.Contact{
		Base:   model.Base{ID: uuid.New()},
		UserID: userID,
		Name:   req.Name,
		Phone:  req.Phone,
		Email:  req.Email,
	}
	if req.Relationship != "" {
		rel := req.Relationship
		contact.Relationship = &rel
	}

	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to create contact: %w", err))
	}
	return contact, nil
}

func (s *Service) UpdateContact(ctx context.Context, userID, id uuid.UUID, req *model.ContactRequest) (*model.Contact, error) {
	contact, err := s.contacts.Get(ctx, id)
	if err != nil || contact.UserID != userID {
		return nil, apperror.NotFound("contact")
	}

	contact.Name = req.Name
	contact.Phone = req.Phone
	contact.Email = req.Email
	if req.Relationship != "" {
		rel := req.Relationship
		contact.Relationship = &rel
	}

	if err := s.contacts.Update(ctx, contact); err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to update contact: %w", err))
	}
	return contact, nil
}

func (s *Service) DeleteContact(ctx context.Context, userID, id uuid.UUID) error {
	contact, err := s.contacts.Get(ctx, id)
	if err != nil || contact.UserID != userID {
		return apperror.NotFound("contact")
	}

	if err := s.contacts.Delete(ctx, id); err != nil {
		return apperror.Internal(fmt.Errorf("failed to delete contact: %w", err))
	}
	return nil
}

func (s *Service) ListContacts(ctx context.Context, userID uuid.UUID) ([]*model.Contact, error) {
	contacts, err := s.contacts.List(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to list contacts: %w", err))
	}
	return contacts, nil
}

func (s *Service) CreateClinicContact(ctx context.Context, userID uuid.UUID, req *model.ClinicContactRequest) (*model.ClinicContact, error) {
	contact := &model.ClinicContact{
		Base:   model.Base{ID: uuid.New()},
		UserID: userID,
		Name:   req.Name,
		Icon:   req.Icon,
		Link:   req.Link,
	}
	if req.Notes != "" {
		notes := req.Notes
		contact.Notes = &notes
	}

	if err := s.clinicContacts.Create(ctx, contact); err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to create clinic contact: %w", err))
	}
	return contact, nil
}

func (s *Service) UpdateClinicContact(ctx context.Context, userID, id uuid.UUID, req *model.ClinicContactRequest) (*model.ClinicContact, error) {
	contact, err := s.clinicContacts.Get(ctx, id)
	if err != nil || contact.UserID != userID {
		return nil, apperror.NotFound("clinic contact")
	}

	contact.Name = req.Name
	contact.Icon = req.Icon
	contact.Link = req.Link
	if req.Notes != "" {
		notes := req.Notes
		contact.Notes = &notes
	}

	if err := s.clinicContacts.Update(ctx, contact); err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to update clinic contact: %w", err))
	}
	return contact, nil
}

func (s *Service) DeleteClinicContact(ctx context.Context, userID, id uuid.UUID) error {
	contact, err := s.clinicContacts.Get(ctx, id)
	if err != nil || contact.UserID != userID {
		return apperror.NotFound("clinic contact")
	}

	if err := s.clinicContacts.Delete(ctx, id); err != nil {
		return apperror.Internal(fmt.Errorf("failed to delete clinic contact: %w", err))
	}
	return nil
}

func (s *Service) ListClinicContacts(ctx context.Context, userID uuid.UUID) ([]*model.ClinicContact, error) {
	contacts, err := s.clinicContacts.List(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to list clinic contacts: %w", err))
	}
	return contacts, nil
}
