package patient

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/Nagi609/Clinic-Management-System/internal/model"
	"github.com/Nagi609/Clinic-Management-System/internal/repository"
	"github.com/Nagi609/Clinic-Management-System/internal/service/activity"
	"github.com/Nagi609/Clinic-Management-System/internal/service/sequence"
	"github.com/Nagi609/Clinic-Management-System/pkg/apperror"
)

type PatientService interface {
	CreatePatient(ctx context.Context, userID uuid.UUID, req *model.PatientRequest) (*model.Patient, error)
	GetPatient(ctx context.Context, userID, id uuid.UUID) (*model.Patient, error)
	UpdatePatient(ctx context.Context, userID, id uuid.UUID, req *model.PatientRequest) (*model.Patient, error)
	DeletePatient(ctx context.Context, userID, id uuid.UUID) error
	ListPatients(ctx context.Context, userID uuid.UUID) ([]*model.Patient, error)
}

type Service struct {
	repo       repository.PatientRepository
	activities *activity.Service
}

func NewService(repo repository.PatientRepository, activities *activity.Service) *Service {
	return &Service{repo: repo, activities: activities}
}

func (s *Service) CreatePatient(ctx context.Context, userID uuid.UUID, req *model.PatientRequest) (*model.Patient, error) {
	patient, verr := Validate(req)
	if verr != nil {
		return nil, verr
	}

	used, err := s.repo.ListDisplayIDs(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to allocate display ID: %w", err))
	}

	patient.ID = uuid.New()
	patient.UserID = userID
	patient.DisplayID = strconv.Itoa(sequence.NextFromStrings(used))

	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to create patient: %w", err))
	}

	s.activities.Record(ctx, userID, model.ActivityTypePatient, actionMessage("Created", patient))
	return patient, nil
}

func (s *Service) GetPatient(ctx context.Context, userID, id uuid.UUID) (*model.Patient, error) {
	return s.getOwned(ctx, userID, id)
}

func (s *Service) UpdatePatient(ctx context.Context, userID, id uuid.UUID, req *model.PatientRequest) (*model.Patient, error) {
	existing, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	patient, verr := Validate(req)
	if verr != nil {
		return nil, verr
	}

	patient.Base = existing.Base
	patient.UserID = existing.UserID
	patient.DisplayID = existing.DisplayID

	if err := s.repo.Update(ctx, patient); err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to update patient: %w", err))
	}

	s.activities.Record(ctx, userID, model.ActivityTypePatient, actionMessage("Updated", patient))
	return patient, nil
}

func (s *Service) DeletePatient(ctx context.Context, userID, id uuid.UUID) error {
	patient, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apperror.Internal(fmt.Errorf("failed to delete patient: %w", err))
	}

	s.activities.Record(ctx, userID, model.ActivityTypePatient, actionMessage("Deleted", patient))
	return nil
}

func (s *Service) ListPatients(ctx context.Context, userID uuid.UUID) ([]*model.Patient, error) {
	patients, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to list patients: %w", err))
	}
	return patients, nil
}

// getOwned loads a patient and verifies ownership. Cross-owner access is
// reported as not-found so existence is never confirmed.
func (s *Service) getOwned(ctx context.Context, userID, id uuid.UUID) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("patient")
	}
	if patient.UserID != userID {
		return nil, apperror.NotFound("patient")
	}
	return patient, nil
}
