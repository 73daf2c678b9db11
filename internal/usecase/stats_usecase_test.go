package usecase

import (
	"context"
	"testing"

	"photoshare/internal/entity"
	"photoshare/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformStatsWithoutCache(t *testing.T) {
	photoRepo := new(MockPhotoRepository)
	userRepo := new(MockUserRepository)
	uc := NewStatsUseCase(photoRepo, userRepo, nil, logger.New())

	photoRepo.On("CountByStatus", entity.StatusApproved).Return(int64(120), nil)
	photoRepo.On("CountByStatus", entity.StatusPendingReview).Return(int64(3), nil)
	userRepo.On("Count").Return(int64(40), nil)
	userRepo.On("CountByRole", entity.RoleCreator).Return(int64(12), nil)
	photoRepo.On("TotalViews").Return(int64(9001), nil)

	stats, err := uc.PlatformStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(120), stats.TotalPhotos)
	assert.Equal(t, int64(3), stats.PendingReview)
	assert.Equal(t, int64(40), stats.TotalUsers)
	assert.Equal(t, int64(12), stats.TotalCreators)
	assert.Equal(t, int64(9001), stats.TotalViews)
}

func TestPlatformStatsPropagatesErrors(t *testing.T) {
	photoRepo := new(MockPhotoRepository)
	userRepo := new(MockUserRepository)
	uc := NewStatsUseCase(photoRepo, userRepo, nil, logger.New())

	photoRepo.On("CountByStatus", entity.StatusApproved).Return(int64(0), assert.AnError)

	_, err := uc.PlatformStats(context.Background())
	assert.Error(t, err)
}
