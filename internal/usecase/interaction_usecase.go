package usecase

import (
	"photoshare/internal/entity"
	"photoshare/internal/repo/persistent"
	"photoshare/pkg/logger"
)

type InteractionUseCase interface {
	Like(photoID, userID string) (*entity.Photo, error)
	Unlike(photoID, userID string) (*entity.Photo, error)
	Rate(photoID, userID string, value int) (*entity.Photo, error)
}

type interactionUseCase struct {
	interactionRepo persistent.InteractionRepository
	photoRepo       persistent.PhotoRepository
	logger          *logger.Logger
}

func NewInteractionUseCase(
	interactionRepo persistent.InteractionRepository,
	photoRepo persistent.PhotoRepository,
	logger *logger.Logger,
) InteractionUseCase {
	return &interactionUseCase{
		interactionRepo: interactionRepo,
		photoRepo:       photoRepo,
		logger:          logger,
	}
}

func (uc *interactionUseCase) Like(photoID, userID string) (*entity.Photo, error) {
	if err := uc.interactionRepo.Like(photoID, userID); err != nil {
		return nil, err
	}

	photo, err := uc.photoRepo.GetByID(photoID)
	if err != nil {
		return nil, err
	}
	photo.UserLiked = true
	return photo, nil
}

func (uc *interactionUseCase) Unlike(photoID, userID string) (*entity.Photo, error) {
	if err := uc.interactionRepo.Unlike(photoID, userID); err != nil {
		return nil, err
	}

	photo, err := uc.photoRepo.GetByID(photoID)
	if err != nil {
		return nil, err
	}
	photo.UserLiked = false
	return photo, nil
}

func (uc *interactionUseCase) Rate(photoID, userID string, value int) (*entity.Photo, error) {
	if !entity.ValidRating(value) {
		return nil, entity.ErrInvalidRating
	}

	photo, err := uc.interactionRepo.Rate(photoID, userID, value)
	if err != nil {
		return nil, err
	}
	photo.UserRating = value
	return photo, nil
}
