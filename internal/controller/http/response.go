package http

import (
	"errors"
	"net/http"

	"photoshare/internal/entity"

	"github.com/gin-gonic/gin"
)

// Pagination is the page envelope returned with every listing.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
	HasMore    bool  `json:"hasMore"`
}

func ok(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func okMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message, "data": data})
}

func created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": message, "data": data})
}

func okPage(c *gin.Context, data interface{}, pagination Pagination) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data, "pagination": pagination})
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// respondError maps domain errors onto HTTP statuses. Unknown errors become a
// generic 500 so internals never leak to clients.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		fail(c, http.StatusNotFound, "resource not found")
	case errors.Is(err, entity.ErrForbidden):
		fail(c, http.StatusForbidden, err.Error())
	case errors.Is(err, entity.ErrAlreadyLiked),
		errors.Is(err, entity.ErrNotLiked),
		errors.Is(err, entity.ErrInvalidRating),
		errors.Is(err, entity.ErrEmptyComment),
		errors.Is(err, entity.ErrContentRejected):
		fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, entity.ErrEmailTaken):
		fail(c, http.StatusConflict, err.Error())
	case errors.Is(err, entity.ErrInvalidCredentials):
		fail(c, http.StatusUnauthorized, err.Error())
	default:
		fail(c, http.StatusInternalServerError, "internal server error")
	}
}
