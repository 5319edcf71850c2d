package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Nagi609/Clinic-Management-System/internal/model"
	"github.com/Nagi609/Clinic-Management-System/internal/repository"
)

type dashboardRepository struct {
	db *sqlx.DB
}

func NewDashboardRepository(db *sqlx.DB) repository.DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) Stats(ctx context.Context, userID uuid.UUID) (*model.DashboardStats, error) {
	stats := &model.DashboardStats{
		PatientsByRole: make(map[string]int),
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT role, COUNT(*) FROM patients WHERE user_id = $1 GROUP BY role`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count patients: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var role string
		var count int
		if err := rows.Scan(&role, &count); err != nil {
			return nil, fmt.Errorf("failed to scan patient counts: %w", err)
		}
		stats.PatientsByRole[role] = count
		stats.TotalPatients += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read patient counts: %w", err)
	}

	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE patient_id IS NULL) AS walk_ins,
			COUNT(*) FILTER (WHERE visit_date::date = CURRENT_DATE) AS today
		FROM visit_records
		WHERE user_id = $1
	`
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&stats.TotalVisits, &stats.WalkInVisits, &stats.VisitsToday); err != nil {
		return nil, fmt.Errorf("failed to count visits: %w", err)
	}

	return stats, nil
}
