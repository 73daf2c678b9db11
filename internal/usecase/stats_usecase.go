package usecase

import (
	"context"
	"encoding/json"
	"time"

	"photoshare/internal/entity"
	"photoshare/internal/repo/persistent"
	"photoshare/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const (
	statsCacheKey = "stats:platform"
	statsCacheTTL = 5 * time.Minute
)

// PlatformStats is the aggregate snapshot shown on the landing page.
type PlatformStats struct {
	TotalPhotos   int64 `json:"totalPhotos"`
	PendingReview int64 `json:"pendingReview"`
	TotalUsers    int64 `json:"totalUsers"`
	TotalCreators int64 `json:"totalCreators"`
	TotalViews    int64 `json:"totalViews"`
}

type StatsUseCase interface {
	PlatformStats(ctx context.Context) (*PlatformStats, error)
}

type statsUseCase struct {
	photoRepo   persistent.PhotoRepository
	userRepo    persistent.UserRepository
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewStatsUseCase(
	photoRepo persistent.PhotoRepository,
	userRepo persistent.UserRepository,
	redisClient *redis.Client,
	logger *logger.Logger,
) StatsUseCase {
	return &statsUseCase{
		photoRepo:   photoRepo,
		userRepo:    userRepo,
		redisClient: redisClient,
		logger:      logger,
	}
}

// PlatformStats serves from the Redis cache when possible. Counts are cheap
// to be a few minutes stale.
func (uc *statsUseCase) PlatformStats(ctx context.Context) (*PlatformStats, error) {
	if uc.redisClient != nil {
		if cached, err := uc.redisClient.Get(ctx, statsCacheKey).Result(); err == nil {
			var stats PlatformStats
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return &stats, nil
			}
		}
	}

	totalPhotos, err := uc.photoRepo.CountByStatus(entity.StatusApproved)
	if err != nil {
		return nil, err
	}
	pending, err := uc.photoRepo.CountByStatus(entity.StatusPendingReview)
	if err != nil {
		return nil, err
	}
	totalUsers, err := uc.userRepo.Count()
	if err != nil {
		return nil, err
	}
	creators, err := uc.userRepo.CountByRole(entity.RoleCreator)
	if err != nil {
		return nil, err
	}
	views, err := uc.photoRepo.TotalViews()
	if err != nil {
		return nil, err
	}

	stats := &PlatformStats{
		TotalPhotos:   totalPhotos,
		PendingReview: pending,
		TotalUsers:    totalUsers,
		TotalCreators: creators,
		TotalViews:    views,
	}

	if uc.redisClient != nil {
		if data, err := json.Marshal(stats); err == nil {
			if err := uc.redisClient.Set(ctx, statsCacheKey, data, statsCacheTTL).Err(); err != nil {
				uc.logger.Warn("failed to cache platform stats: %v", err)
			}
		}
	}

	return stats, nil
}
