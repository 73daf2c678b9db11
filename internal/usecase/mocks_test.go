package usecase

import (
	"photoshare/internal/entity"
	"photoshare/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

// MockPhotoRepository is a mock implementation of persistent.PhotoRepository
type MockPhotoRepository struct {
	mock.Mock
}

func (m *MockPhotoRepository) Create(photo *entity.Photo) error {
	args := m.Called(photo)
	return args.Error(0)
}

func (m *MockPhotoRepository) GetByID(id string) (*entity.Photo, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Photo), args.Error(1)
}

func (m *MockPhotoRepository) List(query entity.PhotoQuery) ([]*entity.Photo, int64, error) {
	args := m.Called(query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Photo), args.Get(1).(int64), args.Error(2)
}

func (m *MockPhotoRepository) Update(photo *entity.Photo) error {
	args := m.Called(photo)
	return args.Error(0)
}

func (m *MockPhotoRepository) Delete(photo *entity.Photo) error {
	args := m.Called(photo)
	return args.Error(0)
}

func (m *MockPhotoRepository) IncrementViews(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPhotoRepository) UpdateStatus(id string, status entity.PhotoStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockPhotoRepository) UpdateCreatorSnapshot(creatorID, name, avatar string) error {
	args := m.Called(creatorID, name, avatar)
	return args.Error(0)
}

func (m *MockPhotoRepository) CountByStatus(status entity.PhotoStatus) (int64, error) {
	args := m.Called(status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPhotoRepository) TotalViews() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPhotoRepository) DistinctCategories() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

var _ persistent.PhotoRepository = (*MockPhotoRepository)(nil)

// MockUserRepository is a mock implementation of persistent.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountByRole(role entity.UserRole) (int64, error) {
	args := m.Called(role)
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

// MockCommentRepository is a mock implementation of persistent.CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(comment *entity.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(id string) (*entity.Comment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByPhoto(photoID string) ([]*entity.Comment, error) {
	args := m.Called(photoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(comment *entity.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) UpdateUserSnapshot(userID, name, avatar string) error {
	args := m.Called(userID, name, avatar)
	return args.Error(0)
}

var _ persistent.CommentRepository = (*MockCommentRepository)(nil)

// MockInteractionRepository is a mock implementation of persistent.InteractionRepository
type MockInteractionRepository struct {
	mock.Mock
}

func (m *MockInteractionRepository) Like(photoID, userID string) error {
	args := m.Called(photoID, userID)
	return args.Error(0)
}

func (m *MockInteractionRepository) Unlike(photoID, userID string) error {
	args := m.Called(photoID, userID)
	return args.Error(0)
}

func (m *MockInteractionRepository) IsLiked(photoID, userID string) (bool, error) {
	args := m.Called(photoID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockInteractionRepository) Rate(photoID, userID string, value int) (*entity.Photo, error) {
	args := m.Called(photoID, userID, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Photo), args.Error(1)
}

func (m *MockInteractionRepository) LikedPhotoIDs(userID string, photoIDs []string) (map[string]bool, error) {
	args := m.Called(userID, photoIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *MockInteractionRepository) RatingsFor(userID string, photoIDs []string) (map[string]int, error) {
	args := m.Called(userID, photoIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

var _ persistent.InteractionRepository = (*MockInteractionRepository)(nil)
