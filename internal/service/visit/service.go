package visit

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Nagi609/Clinic-Management-System/internal/model"
	"github.com/Nagi609/Clinic-Management-System/internal/repository"
	"github.com/Nagi609/Clinic-Management-System/internal/service/activity"
	"github.com/Nagi609/Clinic-Management-System/internal/service/sequence"
	"github.com/Nagi609/Clinic-Management-System/pkg/apperror"
)

type VisitService interface {
	CreateVisit(ctx context.Context, userID uuid.UUID, req *model.VisitRequest) (*model.VisitRecord, error)
	UpdateVisit(ctx context.Context, userID, id uuid.UUID, req *model.VisitRequest) (*model.VisitRecord, error)
	DeleteVisit(ctx context.Context, userID, id uuid.UUID) error
	ListVisits(ctx context.Context, userID uuid.UUID) ([]*model.VisitWithPatient, error)
}

type Service struct {
	repo        repository.VisitRepository
	patientRepo repository.PatientRepository
	activities  *activity.Service
}

func NewService(repo repository.VisitRepository, patientRepo repository.PatientRepository, activities *activity.Service) *Service {
	return &Service{repo: repo, patientRepo: patientRepo, activities: activities}
}

var visitDateLayouts = []string{"2006-01-02", time.RFC3339}

// validate applies the visit rules and resolves the patient reference.
// A reference to a patient the caller does not own is a not-found error,
// deliberately distinct from a plain validation failure.
func (s *Service) validate(ctx context.Context, userID uuid.UUID, req *model.VisitRequest) (*model.VisitRecord, error) {
	var errs []string

	var visitDate time.Time
	if req.VisitDate == "" {
		errs = append(errs, "Visit date is required")
	} else {
		parsed := false
		for _, layout := range visitDateLayouts {
			if t, err := time.Parse(layout, req.VisitDate); err == nil {
				visitDate = t
				parsed = true
				break
			}
		}
		if !parsed {
			errs = append(errs, "Invalid visit date")
		}
	}

	if strings.TrimSpace(req.Reason) == "" {
		errs = append(errs, "Reason is required")
	}
	if strings.TrimSpace(req.Symptoms) == "" {
		errs = append(errs, "Symptoms are required")
	}
	if strings.TrimSpace(req.Treatment) == "" {
		errs = append(errs, "Treatment is required")
	}

	hasPatient := req.PatientID != ""
	hasVisitor := strings.TrimSpace(req.VisitorName) != ""
	switch {
	case hasPatient && hasVisitor:
		errs = append(errs, "Provide either a registered patient or a visitor name, not both")
	case !hasPatient && !hasVisitor:
		errs = append(errs, "Either patient selection or visitor name is required")
	}

	if len(errs) > 0 {
		return nil, apperror.Validation(errs...)
	}

	visit := &model.VisitRecord{
		VisitDate: visitDate,
		Reason:    req.Reason,
		Symptoms:  req.Symptoms,
		Treatment: req.Treatment,
	}
	if req.Notes != "" {
		notes := req.Notes
		visit.Notes = &notes
	}

	if hasPatient {
		patientID, err := uuid.Parse(req.PatientID)
		if err != nil {
			return nil, apperror.NotFound("patient")
		}
		patient, err := s.patientRepo.Get(ctx, patientID)
		if err != nil || patient.UserID != userID {
			return nil, apperror.NotFound("patient")
		}
		visit.PatientID = &patientID
	} else {
		visitor := strings.TrimSpace(req.VisitorName)
		visit.VisitorName = &visitor
	}

	return visit, nil
}

func (s *Service) CreateVisit(ctx context.Context, userID uuid.UUID, req *model.VisitRequest) (*model.VisitRecord, error) {
	visit, err := s.validate(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	used, err := s.repo.ListDisplayIDs(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to allocate display ID: %w", err))
	}

	visit.ID = uuid.New()
	visit.UserID = userID
	visit.DisplayID = strconv.Itoa(sequence.NextFromStrings(used))

	if err := s.repo.Create(ctx, visit); err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to create visit: %w", err))
	}

	s.activities.Recordf(ctx, userID, model.ActivityTypeVisit, "Created visit record %s for %s", visit.DisplayID, s.subjectName(ctx, visit))
	return visit, nil
}

func (s *Service) UpdateVisit(ctx context.Context, userID, id uuid.UUID, req *model.VisitRequest) (*model.VisitRecord, error) {
	existing, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	visit, err := s.validate(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	visit.Base = existing.Base
	visit.UserID = existing.UserID
	visit.DisplayID = existing.DisplayID

	if err := s.repo.Update(ctx, visit); err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to update visit: %w", err))
	}

	s.activities.Recordf(ctx, userID, model.ActivityTypeVisit, "Updated visit record %s for %s", visit.DisplayID, s.subjectName(ctx, visit))
	return visit, nil
}

func (s *Service) DeleteVisit(ctx context.Context, userID, id uuid.UUID) error {
	visit, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apperror.Internal(fmt.Errorf("failed to delete visit: %w", err))
	}

	s.activities.Recordf(ctx, userID, model.ActivityTypeVisit, "Deleted visit record %s", visit.DisplayID)
	return nil
}

func (s *Service) ListVisits(ctx context.Context, userID uuid.UUID) ([]*model.VisitWithPatient, error) {
	visits, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to list visits: %w", err))
	}
	return visits, nil
}

func (s *Service) getOwned(ctx context.Context, userID, id uuid.UUID) (*model.VisitRecord, error) {
	visit, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("visit")
	}
	if visit.UserID != userID {
		return nil, apperror.NotFound("visit")
	}
	return visit, nil
}

// subjectName resolves the name to embed in the activity message.
func (s *Service) subjectName(ctx context.Context, visit *model.VisitRecord) string {
	if visit.VisitorName != nil {
		return *visit.VisitorName
	}
	if visit.PatientID != nil {
		if patient, err := s.patientRepo.Get(ctx, *visit.PatientID); err == nil {
			return patient.FullName()
		}
	}
	return "unknown visitor"
}
