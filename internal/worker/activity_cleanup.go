package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Nagi609/Clinic-Management-System/internal/repository"
)

// ActivityCleanupWorker prunes activity feed entries past the retention
// window. The feed only ever serves the latest handful of entries, so
// old rows are pure dead weight.
type ActivityCleanupWorker struct {
	repo            repository.ActivityRepository
	retentionDays   int
	cleanupInterval time.Duration
}

func NewActivityCleanupWorker(repo repository.ActivityRepository, retentionDays int, cleanupInterval time.Duration) *ActivityCleanupWorker {
	return &ActivityCleanupWorker{
		repo:            repo,
		retentionDays:   retentionDays,
		cleanupInterval: cleanupInterval,
	}
}

func (w *ActivityCleanupWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.cleanup(ctx); err != nil {
				log.Error().Err(err).Msg("activity cleanup failed")
			}
		}
	}
}

func (w *ActivityCleanupWorker) cleanup(ctx context.Context) error {
	cutoff := time.Now().AddDate(0, 0, -w.retentionDays)

	rows, err := w.repo.DeleteBefore(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to delete old activities: %w", err)
	}

	if rows > 0 {
		log.Info().Int64("rows", rows).Time("cutoff", cutoff).Msg("pruned old activities")
	}
	return nil
}
