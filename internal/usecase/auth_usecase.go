package usecase

import (
	"fmt"
	"strings"

	"photoshare/internal/entity"
	"photoshare/internal/repo/persistent"
	"photoshare/pkg/jwt"
	"photoshare/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase interface {
	Register(name, email, password, role string) (*entity.User, string, error)
	Login(email, password string) (*entity.User, string, error)
	GetUser(userID string) (*entity.User, error)
	UpdateProfile(userID string, name, bio, avatar *string) (*entity.User, error)
}

type authUseCase struct {
	userRepo    persistent.UserRepository
	photoRepo   persistent.PhotoRepository
	commentRepo persistent.CommentRepository
	jwtService  *jwt.Service
	logger      *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	photoRepo persistent.PhotoRepository,
	commentRepo persistent.CommentRepository,
	jwtService *jwt.Service,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:    userRepo,
		photoRepo:   photoRepo,
		commentRepo: commentRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

func (uc *authUseCase) Register(name, email, password, role string) (*entity.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := uc.userRepo.GetByEmail(email); err == nil {
		return nil, "", entity.ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     entity.ParseRole(role),
		Avatar:   entity.DefaultAvatar(name),
	}

	if err := uc.userRepo.Create(user); err != nil {
		return nil, "", err
	}

	token, err := uc.jwtService.GenerateToken(user.ID, user.Name, string(user.Role), user.Avatar)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	uc.logger.Info("registered user %s (%s)", user.ID, user.Role)
	return user, token, nil
}

func (uc *authUseCase) Login(email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		// A wrong email and a wrong password are indistinguishable to the caller.
		return nil, "", entity.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", entity.ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateToken(user.ID, user.Name, string(user.Role), user.Avatar)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

func (uc *authUseCase) GetUser(userID string) (*entity.User, error) {
	return uc.userRepo.GetByID(userID)
}

// UpdateProfile applies partial updates and pushes the new name/avatar into
// the snapshots embedded in the user's photos and comments.
func (uc *authUseCase) UpdateProfile(userID string, name, bio, avatar *string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	snapshotChanged := false
	if name != nil && *name != "" && *name != user.Name {
		user.Name = *name
		snapshotChanged = true
	}
	if bio != nil {
		user.Bio = *bio
	}
	if avatar != nil && *avatar != "" && *avatar != user.Avatar {
		user.Avatar = *avatar
		snapshotChanged = true
	}

	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}

	if snapshotChanged {
		if err := uc.photoRepo.UpdateCreatorSnapshot(user.ID, user.Name, user.Avatar); err != nil {
			uc.logger.Error("failed to refresh photo snapshots for user %s: %v", user.ID, err)
		}
		if err := uc.commentRepo.UpdateUserSnapshot(user.ID, user.Name, user.Avatar); err != nil {
			uc.logger.Error("failed to refresh comment snapshots for user %s: %v", user.ID, err)
		}
	}

	return user, nil
}
