package http

import (
	"net/http"

	"photoshare/internal/usecase"
	"photoshare/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	logger      *logger.Logger
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=creator consumer"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name   *string `json:"name" binding:"omitempty,min=2,max=100"`
	Bio    *string `json:"bio" binding:"omitempty,max=500"`
	Avatar *string `json:"avatar" binding:"omitempty,url"`
}

// Register godoc
// @Summary      Register a new account
// @Description  Create a user account as a creator or consumer and receive a JWT
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration payload"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]interface{}
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	user, token, err := h.authUseCase.Register(req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	created(c, "account created", gin.H{"user": user, "token": token})
}

// Login godoc
// @Summary      Log in
// @Description  Exchange email and password for a JWT
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	user, token, err := h.authUseCase.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	ok(c, gin.H{"user": user, "token": token})
}

// Profile godoc
// @Summary      Get own profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Router       /auth/profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	user, err := h.authUseCase.GetUser(c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, user)
}

// UpdateProfile godoc
// @Summary      Update own profile
// @Description  Partially update name, bio or avatar. Name and avatar changes propagate to existing photos and comments.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body UpdateProfileRequest true "Profile fields to change"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /auth/profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authUseCase.UpdateProfile(c.GetString("user_id"), req.Name, req.Bio, req.Avatar)
	if err != nil {
		respondError(c, err)
		return
	}

	okMessage(c, "profile updated", user)
}
