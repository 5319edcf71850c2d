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

type activityRepository struct {
	db *sqlx.DB
}

func NewActivityRepository(db *sqlx.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, activity *model.Activity) error {
	query := `
		INSERT INTO activities (id, user_id, type, message, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	activity.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		activity.ID,
		activity.UserID,
		activity.Type,
		activity.Message,
		activity.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}
	return nil
}

func (r *activityRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*model.Activity, error) {
	query := `SELECT * FROM activities WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`
	var activities []*model.Activity
	if err := r.db.SelectContext(ctx, &activities, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return activities, nil
}

func (r *activityRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM activities WHERE created_at < $1`
	result, err := r.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old activities: %w", err)
	}
	return result.RowsAffected()
}
