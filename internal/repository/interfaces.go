package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Nagi609/Clinic-Management-System/internal/model"
)

// All repository interfaces in one file
type (
	UserRepository interface {
		Create(ctx context.Context, user *model.User) error
		Get(ctx context.Context, id uuid.UUID) (*model.User, error)
		GetByUsername(ctx context.Context, username string) (*model.User, error)
		GetByEmail(ctx context.Context, email string) (*model.User, error)
		GetByUsernameOrEmail(ctx context.Context, usernameOrEmail string) (*model.User, error)
		Update(ctx context.Context, user *model.User) error
		ListNumericIDs(ctx context.Context) ([]int, error)
	}

	PatientRepository interface {
		Create(ctx context.Context, patient *model.Patient) error
		Get(ctx context.Context, id uuid.UUID) (*model.Patient, error)
		Update(ctx context.Context, patient *model.Patient) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context, userID uuid.UUID) ([]*model.Patient, error)
		ListDisplayIDs(ctx context.Context, userID uuid.UUID) ([]string, error)
	}

	VisitRepository interface {
		Create(ctx context.Context, visit *model.VisitRecord) error
		Get(ctx context.Context, id uuid.UUID) (*model.VisitRecord, error)
		Update(ctx context.Context, visit *model.VisitRecord) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context, userID uuid.UUID) ([]*model.VisitWithPatient, error)
		ListDisplayIDs(ctx context.Context, userID uuid.UUID) ([]string, error)
	}

	ContactRepository interface {
		Create(ctx context.Context, contact *model.Contact) error
		Get(ctx context.Context, id uuid.UUID) (*model.Contact, error)
		Update(ctx context.Context, contact *model.Contact) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context, userID uuid.UUID) ([]*model.Contact, error)
	}

	ClinicContactRepository interface {
		Create(ctx context.Context, contact *model.ClinicContact) error
		Get(ctx context.Context, id uuid.UUID) (*model.ClinicContact, error)
		Update(ctx context.Context, contact *model.ClinicContact) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context, userID uuid.UUID) ([]*model.ClinicContact, error)
	}

	ActivityRepository interface {
		Create(ctx context.Context, activity *model.Activity) error
		ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*model.Activity, error)
		DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
	}

	DashboardRepository interface {
		Stats(ctx context.Context, userID uuid.UUID) (*model.DashboardStats, error)
	}
)
