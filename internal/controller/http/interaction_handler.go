package http

import (
	"net/http"

	"photoshare/internal/usecase"
	"photoshare/pkg/logger"

	"github.com/gin-gonic/gin"
)

type InteractionHandler struct {
	interactionUseCase usecase.InteractionUseCase
	logger             *logger.Logger
}

func NewInteractionHandler(interactionUseCase usecase.InteractionUseCase, logger *logger.Logger) *InteractionHandler {
	return &InteractionHandler{
		interactionUseCase: interactionUseCase,
		logger:             logger,
	}
}

// Like godoc
// @Summary      Like a photo
// @Description  Add the caller's like. Liking a photo twice is an error.
// @Tags         interactions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Photo ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /photos/{id}/like [post]
func (h *InteractionHandler) Like(c *gin.Context) {
	photo, err := h.interactionUseCase.Like(c.Param("id"), c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	okMessage(c, "photo liked", photo)
}

// Unlike godoc
// @Summary      Remove a like
// @Tags         interactions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Photo ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /photos/{id}/like [delete]
func (h *InteractionHandler) Unlike(c *gin.Context) {
	photo, err := h.interactionUseCase.Unlike(c.Param("id"), c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	okMessage(c, "like removed", photo)
}

type RateRequest struct {
	Rating int `json:"rating" binding:"required"`
}

// Rate godoc
// @Summary      Rate a photo
// @Description  Set the caller's 1-5 star rating. Rating again replaces the previous value.
// @Tags         interactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Photo ID"
// @Param        request body RateRequest true "Rating value"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /photos/{id}/rate [post]
func (h *InteractionHandler) Rate(c *gin.Context) {
	var req RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	photo, err := h.interactionUseCase.Rate(c.Param("id"), c.GetString("user_id"), req.Rating)
	if err != nil {
		respondError(c, err)
		return
	}
	okMessage(c, "rating saved", photo)
}
