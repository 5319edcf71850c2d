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

type patientRepository struct {
	db *sqlx.DB
}

func NewPatientRepository(db *sqlx.DB) repository.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	query := `
		INSERT INTO patients (
			id, user_id, display_id, first_name, middle_name, last_name, suffix,
			date_of_birth, gender, phone, email, address, role, id_number,
			program, course, year_level, block, department, staff_category,
			past_illnesses, surgeries, current_medication, allergies, medical_notes,
			primary_contact_name, primary_contact_relationship, primary_contact_phone, primary_contact_address,
			secondary_contact_name, secondary_contact_relationship, secondary_contact_phone, secondary_contact_address,
			attachments, created_at, updated_at
		) VALUES (
			:id, :user_id, :display_id, :first_name, :middle_name, :last_name, :suffix,
			:date_of_birth, :gender, :phone, :email, :address, :role, :id_number,
			:program, :course, :year_level, :block, :department, :staff_category,
			:past_illnesses, :surgeries, :current_medication, :allergies, :medical_notes,
			:primary_contact_name, :primary_contact_relationship, :primary_contact_phone, :primary_contact_address,
			:secondary_contact_name, :secondary_contact_relationship, :secondary_contact_phone, :secondary_contact_address,
			:attachments, :created_at, :updated_at
		)
	`
	patient.CreatedAt = time.Now()
	patient.UpdatedAt = time.Now()

	if _, err := r.db.NamedExecContext(ctx, query, patient); err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return nil
}

func (r *patientRepository) Get(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	query := `SELECT * FROM patients WHERE id = $1`
	var patient model.Patient
	if err := r.db.GetContext(ctx, &patient, query, id); err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return &patient, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *model.Patient) error {
	query := `
		UPDATE patients SET
			first_name = :first_name, middle_name = :middle_name, last_name = :last_name, suffix = :suffix,
			date_of_birth = :date_of_birth, gender = :gender, phone = :phone, email = :email, address = :address,
			role = :role, id_number = :id_number,
			program = :program, course = :course, year_level = :year_level, block = :block,
			department = :department, staff_category = :staff_category,
			past_illnesses = :past_illnesses, surgeries = :surgeries, current_medication = :current_medication,
			allergies = :allergies, medical_notes = :medical_notes,
			primary_contact_name = :primary_contact_name, primary_contact_relationship = :primary_contact_relationship,
			primary_contact_phone = :primary_contact_phone, primary_contact_address = :primary_contact_address,
			secondary_contact_name = :secondary_contact_name, secondary_contact_relationship = :secondary_contact_relationship,
			secondary_contact_phone = :secondary_contact_phone, secondary_contact_address = :secondary_contact_address,
			attachments = :attachments, updated_at = :updated_at
		WHERE id = :id
	`
	patient.UpdatedAt = time.Now()

	if _, err := r.db.NamedExecContext(ctx, query, patient); err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}
	return nil
}

func (r *patientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM patients WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}
	return nil
}

func (r *patientRepository) List(ctx context.Context, userID uuid.UUID) ([]*model.Patient, error) {
	query := `SELECT * FROM patients WHERE user_id = $1 ORDER BY created_at DESC`
	var patients []*model.Patient
	if err := r.db.SelectContext(ctx, &patients, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

func (r *patientRepository) ListDisplayIDs(ctx context.Context, userID uuid.UUID) ([]string, error) {
	query := `SELECT display_id FROM patients WHERE user_id = $1 ORDER BY display_id ASC`
	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list display IDs: %w", err)
	}
	return ids, nil
}
