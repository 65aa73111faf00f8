package auth

import (
	"errors"
	"net/http"

	"sportshots/internal/pkg/response"
	"sportshots/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	group := v1.Group("/auth")
	{
		group.POST("/magic-link", h.RequestMagicLink)
		group.POST("/magic-login", h.MagicLogin)
		group.POST("/login", h.PasswordLogin)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	group := protected.Group("/users")
	{
		group.GET("/me", h.GetMe)
		group.PUT("/me", h.UpdateProfile)
	}
}

func (h *Handler) RequestMagicLink(c *gin.Context) {
	var req MagicLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "A valid email is required", fields)
		return
	}

	if err := h.service.RequestMagicLink(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, ErrRateLimitExceeded) {
			response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Please wait before requesting another link")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LINK_REQUEST_FAILED", "Failed to send sign-in link")
		return
	}

	response.Success(c, http.StatusAccepted, gin.H{"status": "accepted"})
}

func (h *Handler) MagicLogin(c *gin.Context) {
	var req MagicLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Token is required")
		return
	}

	result, err := h.service.ConsumeMagicLink(c.Request.Context(), req.Token)
	if err != nil {
		if errors.Is(err, ErrInvalidLoginToken) {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Sign-in link is invalid or has expired")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to sign in")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":  result.User,
		"token": result.AccessToken,
	})
}

func (h *Handler) PasswordLogin(c *gin.Context) {
	var req PasswordLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.LoginWithPassword(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Email or password is incorrect")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to login")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":  result.User,
		"token": result.AccessToken,
	})
}

func (h *Handler) GetMe(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing session")
		return
	}

	user, err := h.service.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Could not update profile")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}
