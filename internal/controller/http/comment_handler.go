package http

import (
	"net/http"

	"photoshare/internal/usecase"
	"photoshare/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
	logger         *logger.Logger
}

func NewCommentHandler(commentUseCase usecase.CommentUseCase, logger *logger.Logger) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
		logger:         logger,
	}
}

type AddCommentRequest struct {
	Text string `json:"text" binding:"required,max=1000"`
}

// Add godoc
// @Summary      Comment on a photo
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Photo ID"
// @Param        request body AddCommentRequest true "Comment text"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /photos/{id}/comments [post]
func (h *CommentHandler) Add(c *gin.Context) {
	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	comment, err := h.commentUseCase.Add(c.Param("id"), c.GetString("user_id"), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	created(c, "comment added", comment)
}

// List godoc
// @Summary      List a photo's comments
// @Tags         comments
// @Produce      json
// @Param        id path string true "Photo ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /photos/{id}/comments [get]
func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.commentUseCase.List(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, comments)
}

// Delete godoc
// @Summary      Delete a comment
// @Description  Only the comment's author may delete it.
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Photo ID"
// @Param        commentId path string true "Comment ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /photos/{id}/comments/{commentId} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	if err := h.commentUseCase.Delete(c.Param("commentId"), c.GetString("user_id")); err != nil {
		respondError(c, err)
		return
	}
	okMessage(c, "comment deleted", nil)
}
