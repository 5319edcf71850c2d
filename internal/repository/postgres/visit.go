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

type visitRepository struct {
	db *sqlx.DB
}

func NewVisitRepository(db *sqlx.DB) repository.VisitRepository {
	return &visitRepository{db: db}
}

func (r *visitRepository) Create(ctx context.Context, visit *model.VisitRecord) error {
	query := `
		INSERT INTO visit_records (id, user_id, display_id, patient_id, visitor_name, visit_date, reason, symptoms, treatment, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	visit.CreatedAt = time.Now()
	visit.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		visit.ID,
		visit.UserID,
		visit.DisplayID,
		visit.PatientID,
		visit.VisitorName,
		visit.VisitDate,
		visit.Reason,
		visit.Symptoms,
		visit.Treatment,
		visit.Notes,
		visit.CreatedAt,
		visit.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create visit: %w", err)
	}
	return nil
}

func (r *visitRepository) Get(ctx context.Context, id uuid.UUID) (*model.VisitRecord, error) {
	query := `SELECT * FROM visit_records WHERE id = $1`
	var visit model.VisitRecord
	if err := r.db.GetContext(ctx, &visit, query, id); err != nil {
		return nil, fmt.Errorf("failed to get visit: %w", err)
	}
	return &visit, nil
}

func (r *visitRepository) Update(ctx context.Context, visit *model.VisitRecord) error {
	query := `
		UPDATE visit_records
		SET patient_id = $1, visitor_name = $2, visit_date = $3, reason = $4, symptoms = $5, treatment = $6, notes = $7, updated_at = $8
		WHERE id = $9
	`
	visit.UpdatedAt = time.Now()
	_, err := r.db.ExecContext(ctx, query,
		visit.PatientID,
		visit.VisitorName,
		visit.VisitDate,
		visit.Reason,
		visit.Symptoms,
		visit.Treatment,
		visit.Notes,
		visit.UpdatedAt,
		visit.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update visit: %w", err)
	}
	return nil
}

func (r *visitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM visit_records WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete visit: %w", err)
	}
	return nil
}

func (r *visitRepository) List(ctx context.Context, userID uuid.UUID) ([]*model.VisitWithPatient, error) {
	query := `
		SELECT v.*,
			p.first_name AS patient_first_name,
			p.middle_name AS patient_middle_name,
			p.last_name AS patient_last_name,
			p.suffix AS patient_suffix
		FROM visit_records v
		LEFT JOIN patients p ON p.id = v.patient_id
		WHERE v.user_id = $1
		ORDER BY v.created_at DESC
	`
	var visits []*model.VisitWithPatient
	if err := r.db.SelectContext(ctx, &visits, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}
	return visits, nil
}

func (r *visitRepository) ListDisplayIDs(ctx context.Context, userID uuid.UUID) ([]string, error) {
	query := `SELECT display_id FROM visit_records WHERE user_id = $1 ORDER BY display_id ASC`
	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list display IDs: %w", err)
	}
	return ids, nil
}
