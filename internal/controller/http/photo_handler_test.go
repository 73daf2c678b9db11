package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"photoshare/internal/entity"
	"photoshare/internal/usecase"
	"photoshare/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPhotoUseCase is a mock implementation of PhotoUseCase
type MockPhotoUseCase struct {
	mock.Mock
}

func (m *MockPhotoUseCase) List(query entity.PhotoQuery, viewerID string) ([]*entity.Photo, int64, error) {
	args := m.Called(query, viewerID)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Photo), args.Get(1).(int64), args.Error(2)
}

func (m *MockPhotoUseCase) Get(photoID, viewerID string) (*entity.Photo, error) {
	args := m.Called(photoID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Photo), args.Error(1)
}

func (m *MockPhotoUseCase) Upload(userID string, input usecase.UploadInput) (*entity.Photo, error) {
	args := m.Called(userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Photo), args.Error(1)
}

func (m *MockPhotoUseCase) Update(photoID, userID string, input usecase.UpdateInput) (*entity.Photo, error) {
	args := m.Called(photoID, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Photo), args.Error(1)
}

func (m *MockPhotoUseCase) Delete(photoID, userID string) error {
	args := m.Called(photoID, userID)
	return args.Error(0)
}

func (m *MockPhotoUseCase) Categories() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

var _ usecase.PhotoUseCase = (*MockPhotoUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestListPhotos(t *testing.T) {
	mockUseCase := new(MockPhotoUseCase)
	handler := NewPhotoHandler(mockUseCase, 10<<20, logger.New())

	router := setupTestRouter()
	router.GET("/photos", handler.List)

	photos := []*entity.Photo{
		{ID: "photo-1", Title: "Morning fog"},
		{ID: "photo-2", Title: "Harbor blues"},
	}
	mockUseCase.On("List", mock.AnythingOfType("entity.PhotoQuery"), "").Return(photos, int64(25), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/photos?filter=nature&page=2&limit=12", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, true, response["success"])

	pagination := response["pagination"].(map[string]interface{})
	assert.Equal(t, float64(2), pagination["page"])
	assert.Equal(t, float64(25), pagination["total"])
	assert.Equal(t, float64(3), pagination["totalPages"])
	assert.Equal(t, true, pagination["hasMore"])

	mockUseCase.AssertExpectations(t)
}

func TestListPhotosIncludesOwnUnmoderated(t *testing.T) {
	mockUseCase := new(MockPhotoUseCase)
	handler := NewPhotoHandler(mockUseCase, 10<<20, logger.New())

	router := setupTestRouter()
	router.GET("/photos", func(c *gin.Context) {
		c.Set("user_id", "creator-1")
		handler.List(c)
	})

	mockUseCase.On("List", mock.MatchedBy(func(q entity.PhotoQuery) bool {
		return q.IncludeUnmoderated && q.CreatorID == "creator-1"
	}), "creator-1").Return([]*entity.Photo{}, int64(0), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/photos?creatorId=creator-1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestListPhotosOtherCreatorStaysModerated(t *testing.T) {
	mockUseCase := new(MockPhotoUseCase)
	handler := NewPhotoHandler(mockUseCase, 10<<20, logger.New())

	router := setupTestRouter()
	router.GET("/photos", func(c *gin.Context) {
		c.Set("user_id", "viewer-1")
		handler.List(c)
	})

	mockUseCase.On("List", mock.MatchedBy(func(q entity.PhotoQuery) bool {
		return !q.IncludeUnmoderated && q.CreatorID == "creator-1"
	}), "viewer-1").Return([]*entity.Photo{}, int64(0), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/photos?creatorId=creator-1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestSearchRequiresTerm(t *testing.T) {
	mockUseCase := new(MockPhotoUseCase)
	handler := NewPhotoHandler(mockUseCase, 10<<20, logger.New())

	router := setupTestRouter()
	router.GET("/search", handler.Search)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/search", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "List")
}

func TestSearchWidensPredicateAndSortsNewest(t *testing.T) {
	mockUseCase := new(MockPhotoUseCase)
	handler := NewPhotoHandler(mockUseCase, 10<<20, logger.New())

	router := setupTestRouter()
	router.GET("/search", handler.Search)

	mockUseCase.On("List", mock.MatchedBy(func(q entity.PhotoQuery) bool {
		return q.Search == "harbor" && q.SearchLocation && q.Sort == entity.SortNewest
	}), "").Return([]*entity.Photo{{ID: "photo-1"}}, int64(1), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/search?q=harbor&sort=popular", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestGetPhotoNotFound(t *testing.T) {
	mockUseCase := new(MockPhotoUseCase)
	handler := NewPhotoHandler(mockUseCase, 10<<20, logger.New())

	router := setupTestRouter()
	router.GET("/photos/:id", handler.Get)

	mockUseCase.On("Get", "missing", "").Return(nil, entity.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/photos/missing", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, false, response["success"])

	mockUseCase.AssertExpectations(t)
}

func TestUpdatePhotoForbidden(t *testing.T) {
	mockUseCase := new(MockPhotoUseCase)
	handler := NewPhotoHandler(mockUseCase, 10<<20, logger.New())

	router := setupTestRouter()
	router.PUT("/photos/:id", func(c *gin.Context) {
		c.Set("user_id", "intruder")
		handler.Update(c)
	})

	mockUseCase.On("Update", "photo-1", "intruder", mock.AnythingOfType("usecase.UpdateInput")).Return(nil, entity.ErrForbidden)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/photos/photo-1", jsonBody(`{"title":"Stolen"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestDeletePhoto(t *testing.T) {
	mockUseCase := new(MockPhotoUseCase)
	handler := NewPhotoHandler(mockUseCase, 10<<20, logger.New())

	router := setupTestRouter()
	router.DELETE("/photos/:id", func(c *gin.Context) {
		c.Set("user_id", "creator-1")
		handler.Delete(c)
	})

	mockUseCase.On("Delete", "photo-1", "creator-1").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/photos/photo-1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestUploadRequiresImage(t *testing.T) {
	mockUseCase := new(MockPhotoUseCase)
	handler := NewPhotoHandler(mockUseCase, 10<<20, logger.New())

	router := setupTestRouter()
	router.POST("/photos", func(c *gin.Context) {
		c.Set("user_id", "creator-1")
		handler.Upload(c)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/photos", jsonBody("title=Sunset"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "Upload")
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitList("a, b ,c"))
	assert.Nil(t, splitList(""))
	assert.Empty(t, splitList(" , ,"))
}
