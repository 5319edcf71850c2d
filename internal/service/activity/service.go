package activity

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Nagi609/Clinic-Management-System/internal/model"
	"github.com/Nagi609/Clinic-Management-System/internal/repository"
	"github.com/Nagi609/Clinic-Management-System/pkg/apperror"
)

const recentLimit = 10

// Publisher pushes activity events to interested consumers. Nil disables
// publishing.
type Publisher interface {
	Publish(ctx context.Context, channel string, payload []byte) error
}

type Service struct {
	repo      repository.ActivityRepository
	publisher Publisher
}

func NewService(repo repository.ActivityRepository, publisher Publisher) *Service {
	return &Service{repo: repo, publisher: publisher}
}

// Record appends an audit entry. It is best-effort: failures are logged
// and swallowed so the triggering patient/visit mutation never fails or
// rolls back because of its audit trail.
func (s *Service) Record(ctx context.Context, userID uuid.UUID, activityType model.ActivityType, message string) {
	entry := &model.Activity{
		ID:      uuid.New(),
		UserID:  userID,
		Type:    string(activityType),
		Message: message,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		log.Warn().Err(err).Str("type", entry.Type).Msg("failed to record activity")
		return
	}

	if s.publisher == nil {
		return
	}
	payload, err := json.Marshal(entry)
	if err != nil {
		log.Warn().Err(err).Msg("failed to marshal activity event")
		return
	}
	if err := s.publisher.Publish(ctx, "activities", payload); err != nil {
		log.Warn().Err(err).Msg("failed to publish activity event")
	}
}

// Recordf is Record with a formatted message.
func (s *Service) Recordf(ctx context.Context, userID uuid.UUID, activityType model.ActivityType, format string, args ...interface{}) {
	s.Record(ctx, userID, activityType, fmt.Sprintf(format, args...))
}

// ListRecent returns the latest entries for the owner, newest first.
func (s *Service) ListRecent(ctx context.Context, userID uuid.UUID) ([]*model.Activity, error) {
	activities, err := s.repo.ListRecent(ctx, userID, recentLimit)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to list activities: %w", err))
	}
	return activities, nil
}
