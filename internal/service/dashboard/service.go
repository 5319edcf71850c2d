package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/Nagi609/Clinic-Management-System/internal/model"
	"github.com/Nagi609/Clinic-Management-System/internal/repository"
	"github.com/Nagi609/Clinic-Management-System/pkg/apperror"
)

type DashboardService interface {
	Stats(ctx context.Context, userID uuid.UUID) (*model.DashboardStats, error)
}

// Service serves aggregate counts with a short-lived per-owner cache.
// The dashboard polls on a fixed interval, so a few seconds of staleness
// is acceptable and keeps the count queries off the hot path.
type Service struct {
	repo  repository.DashboardRepository
	cache *cache.Cache
}

func NewService(repo repository.DashboardRepository, ttl time.Duration) *Service {
	return &Service{
		repo:  repo,
		cache: cache.New(ttl, 2*ttl),
	}
}

func (s *Service) Stats(ctx context.Context, userID uuid.UUID) (*model.DashboardStats, error) {
	key := userID.String()
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*model.DashboardStats), nil
	}

	stats, err := s.repo.Stats(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to load dashboard stats: %w", err))
	}

	s.cache.SetDefault(key, stats)
	return stats, nil
}
