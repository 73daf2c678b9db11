package usecase

import (
	"strings"

	"photoshare/internal/entity"
	"photoshare/internal/repo/persistent"
	"photoshare/pkg/logger"
)

type CommentUseCase interface {
	Add(photoID, userID, text string) (*entity.Comment, error)
	List(photoID string) ([]*entity.Comment, error)
	Delete(commentID, userID string) error
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	photoRepo   persistent.PhotoRepository
	userRepo    persistent.UserRepository
	logger      *logger.Logger
}

func NewCommentUseCase(
	commentRepo persistent.CommentRepository,
	photoRepo persistent.PhotoRepository,
	userRepo persistent.UserRepository,
	logger *logger.Logger,
) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		photoRepo:   photoRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (uc *commentUseCase) Add(photoID, userID, text string) (*entity.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, entity.ErrEmptyComment
	}

	photo, err := uc.photoRepo.GetByID(photoID)
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		PhotoID: photo.ID,
		User:    user.Snapshot(),
		Text:    text,
	}

	if err := uc.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (uc *commentUseCase) List(photoID string) ([]*entity.Comment, error) {
	if _, err := uc.photoRepo.GetByID(photoID); err != nil {
		return nil, err
	}
	return uc.commentRepo.ListByPhoto(photoID)
}

// Delete removes a comment. Only the author may delete it.
func (uc *commentUseCase) Delete(commentID, userID string) error {
	comment, err := uc.commentRepo.GetByID(commentID)
	if err != nil {
		return err
	}

	if comment.User.ID != userID {
		return entity.ErrForbidden
	}

	return uc.commentRepo.Delete(comment)
}
