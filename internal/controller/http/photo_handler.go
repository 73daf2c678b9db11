package http

import (
	"net/http"
	"strconv"
	"strings"

	"photoshare/internal/entity"
	"photoshare/internal/usecase"
	"photoshare/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PhotoHandler struct {
	photoUseCase  usecase.PhotoUseCase
	maxUploadSize int64
	logger        *logger.Logger
}

func NewPhotoHandler(photoUseCase usecase.PhotoUseCase, maxUploadSize int64, logger *logger.Logger) *PhotoHandler {
	return &PhotoHandler{
		photoUseCase:  photoUseCase,
		maxUploadSize: maxUploadSize,
		logger:        logger,
	}
}

// queryFromRequest builds the typed listing query from URL parameters.
// Malformed values fall back to defaults rather than erroring.
func queryFromRequest(c *gin.Context) entity.PhotoQuery {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))

	return entity.PhotoQuery{
		Page:      page,
		Limit:     limit,
		Filter:    c.DefaultQuery("filter", entity.FilterAll),
		Sort:      entity.ParseSort(c.Query("sort")),
		Search:    c.Query("search"),
		CreatorID: c.Query("creatorId"),
	}
}

func paginationFor(query entity.PhotoQuery, total int64) Pagination {
	return Pagination{
		Page:       query.Page,
		Limit:      query.Limit,
		Total:      total,
		TotalPages: query.TotalPages(total),
		HasMore:    query.HasMore(total),
	}
}

// splitList parses a comma separated form value into trimmed items.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// List godoc
// @Summary      Browse the gallery
// @Description  List approved photos with filtering by category, text search, sorting and pagination. When creatorId matches the caller, their pending and rejected photos are included.
// @Tags         photos
// @Produce      json
// @Param        page query int false "Page number (default 1)"
// @Param        limit query int false "Page size (default 12)"
// @Param        filter query string false "Category filter, or 'all'"
// @Param        sort query string false "Sort order" Enums(newest, oldest, popular, rating)
// @Param        search query string false "Search in title, caption and tags"
// @Param        creatorId query string false "Only photos by this creator"
// @Success      200  {object}  map[string]interface{}
// @Router       /photos [get]
func (h *PhotoHandler) List(c *gin.Context) {
	query := queryFromRequest(c)
	viewerID := c.GetString("user_id")

	if query.CreatorID != "" && query.CreatorID == viewerID {
		query.IncludeUnmoderated = true
	}

	photos, total, err := h.photoUseCase.List(query, viewerID)
	if err != nil {
		h.logger.Error("failed to list photos: %v", err)
		respondError(c, err)
		return
	}

	query.Normalize()
	okPage(c, photos, paginationFor(query, total))
}

// Search godoc
// @Summary      Search photos
// @Description  Full gallery search across titles, captions, locations and tags, newest first
// @Tags         photos
// @Produce      json
// @Param        q query string true "Search term"
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /search [get]
func (h *PhotoHandler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		fail(c, http.StatusBadRequest, "search term is required")
		return
	}

	query := queryFromRequest(c)
	query.Search = q
	query.SearchLocation = true
	query.Sort = entity.SortNewest

	photos, total, err := h.photoUseCase.List(query, c.GetString("user_id"))
	if err != nil {
		h.logger.Error("failed to search photos: %v", err)
		respondError(c, err)
		return
	}

	query.Normalize()
	okPage(c, photos, paginationFor(query, total))
}

// Get godoc
// @Summary      Get a photo
// @Description  Fetch one photo by ID and record a view
// @Tags         photos
// @Produce      json
// @Param        id path string true "Photo ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /photos/{id} [get]
func (h *PhotoHandler) Get(c *gin.Context) {
	photo, err := h.photoUseCase.Get(c.Param("id"), c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, photo)
}

type UploadPhotoRequest struct {
	Title             string `form:"title" binding:"required,max=255"`
	Caption           string `form:"caption" binding:"omitempty,max=2000"`
	Location          string `form:"location" binding:"omitempty,max=255"`
	People            string `form:"people"`
	Tags              string `form:"tags"`
	AutoTags          bool   `form:"autoTags,default=true"`
	ContentModeration bool   `form:"contentModeration,default=true"`
}

// Upload godoc
// @Summary      Upload a photo
// @Description  Upload an image with metadata. The image is analyzed for tags and moderated; adult or gory content is rejected, racy content is held for review.
// @Tags         photos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Photo title"
// @Param        caption formData string false "Caption"
// @Param        location formData string false "Location"
// @Param        people formData string false "Comma separated people"
// @Param        tags formData string false "Comma separated tags"
// @Param        autoTags formData bool false "Merge AI tags into the photo's tags (default true)"
// @Param        contentModeration formData bool false "Run content moderation (default true)"
// @Param        image formData file true "Image file"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Router       /photos [post]
func (h *PhotoHandler) Upload(c *gin.Context) {
	var req UploadPhotoRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		fail(c, http.StatusBadRequest, "image file is required")
		return
	}
	if file.Size > h.maxUploadSize {
		fail(c, http.StatusBadRequest, "image exceeds the maximum upload size")
		return
	}

	photo, err := h.photoUseCase.Upload(c.GetString("user_id"), usecase.UploadInput{
		Title:             req.Title,
		Caption:           req.Caption,
		Location:          req.Location,
		People:            splitList(req.People),
		Tags:              splitList(req.Tags),
		File:              file,
		AutoTags:          req.AutoTags,
		ContentModeration: req.ContentModeration,
	})
	if err != nil {
		h.logger.Error("failed to upload photo: %v", err)
		respondError(c, err)
		return
	}

	message := "photo uploaded"
	if photo.Status == entity.StatusPendingReview {
		message = "photo uploaded and held for review"
	}
	created(c, message, photo)
}

type UpdatePhotoRequest struct {
	Title    *string  `json:"title" binding:"omitempty,max=255"`
	Caption  *string  `json:"caption" binding:"omitempty,max=2000"`
	Location *string  `json:"location" binding:"omitempty,max=255"`
	People   []string `json:"people"`
	Tags     []string `json:"tags"`
}

// Update godoc
// @Summary      Edit a photo
// @Description  Partially update a photo's metadata. Only the owner may edit.
// @Tags         photos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Photo ID"
// @Param        request body UpdatePhotoRequest true "Fields to change"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /photos/{id} [put]
func (h *PhotoHandler) Update(c *gin.Context) {
	var req UpdatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	photo, err := h.photoUseCase.Update(c.Param("id"), c.GetString("user_id"), usecase.UpdateInput{
		Title:    req.Title,
		Caption:  req.Caption,
		Location: req.Location,
		People:   req.People,
		Tags:     req.Tags,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	okMessage(c, "photo updated", photo)
}

// Delete godoc
// @Summary      Delete a photo
// @Description  Remove a photo, its stored image and all likes, ratings and comments. Only the owner may delete.
// @Tags         photos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Photo ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /photos/{id} [delete]
func (h *PhotoHandler) Delete(c *gin.Context) {
	if err := h.photoUseCase.Delete(c.Param("id"), c.GetString("user_id")); err != nil {
		respondError(c, err)
		return
	}
	okMessage(c, "photo deleted", nil)
}

// Categories godoc
// @Summary      List categories
// @Description  Distinct categories across approved photos, for filter menus
// @Tags         photos
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /photos/categories [get]
func (h *PhotoHandler) Categories(c *gin.Context) {
	categories, err := h.photoUseCase.Categories()
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, categories)
}
