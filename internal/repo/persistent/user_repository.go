package persistent

import (
	"errors"
	"strings"

	"photoshare/internal/entity"
	"photoshare/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	Count() (int64, error)
	CountByRole(role entity.UserRole) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *entity.User) error {
	userModel := ToUserModel(user)
	if err := r.db.Create(userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "duplicate key") {
			return entity.ErrEmailTaken
		}
		return err
	}
	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) GetByID(id string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByEmail(email string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("email = ?", strings.ToLower(email)).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

// Update writes the profile columns only. photos_count and likes_received are
// maintained by expression updates and stay untouched here.
func (r *userRepository) Update(user *entity.User) error {
	userModel := ToUserModel(user)
	return r.db.Model(&model.UserModel{}).
		Where("id = ?", userModel.ID).
		Select("name", "bio", "avatar", "updated_at").
		Updates(userModel).Error
}

func (r *userRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.UserModel{}).Count(&count).Error
	return count, err
}

func (r *userRepository) CountByRole(role entity.UserRole) (int64, error) {
	var count int64
	err := r.db.Model(&model.UserModel{}).Where("role = ?", string(role)).Count(&count).Error
	return count, err
}
