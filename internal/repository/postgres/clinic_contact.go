package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Nagi609/Clinic-Management-System/internal/model"
	"github.com/Nagi609/Clinic-Management-System/internal/repository"
)

type clinicContactRepository struct {
	db *sqlx.DB
}

func NewClinicContactRepository(db *sqlx.DB) repository.ClinicContactRepository {
	return &clinicContactRepository{db: db}
}

func (r *clinicContactRepository) Create(ctx context.Context, contact *model.ClinicContact) error {
	query := `
		INSERT INTO clinic_contacts (id, user_id, name, icon, link, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	contact.CreatedAt = time.Now()
	contact.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		contact.ID,
		contact.UserID,
		contact.Name,
		contact.Icon,
		contact.Link,
		contact.Notes,
		contact.CreatedAt,
		contact.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create clinic contact: %w", err)
	}
	return nil
}

func (r *clinicContactRepository) Get(ctx context.Context, id uuid.UUID) (*model.ClinicContact, error) {
	query := `SELECT * FROM clinic_contacts WHERE id = $1`
	var contact model.ClinicContact
	if err := r.db.GetContext(ctx, &contact, query, id); err != nil {
		return nil, fmt.Errorf("failed to get clinic contact: %w", err)
	}
	return &contact, nil
}

func (r *clinicContactRepository) Update(ctx context.Context, contact *model.ClinicContact) error {
	query := `UPDATE clinic_contacts SET name = $1, icon = $2, link = $3, notes = $4, updated_at = $5 WHERE id = $6`
	contact.UpdatedAt = time.Now()
	_, err := r.db.ExecContext(ctx, query,
		contact.Name,
		contact.Icon,
		contact.Link,
		contact.Notes,
		contact.UpdatedAt,
		contact.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update clinic contact: %w", err)
	}
	return nil
}

func (r *clinicContactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM clinic_contacts WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete clinic contact: %w", err)
	}
	return nil
}

func (r *clinicContactRepository) List(ctx context.Context, userID uuid.UUID) ([]*model.ClinicContact, error) {
	query := `SELECT * FROM clinic_contacts WHERE user_id = $1 ORDER BY created_at DESC`
	var contacts []*model.ClinicContact
	if err := r.db.SelectContext(ctx, &contacts, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list clinic contacts: %w", err)
	}
	return contacts, nil
}
