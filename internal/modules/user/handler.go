package user

import (
	"errors"
	"net/http"

	"sportshots/internal/middleware"
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

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	group := admin.Group("/photographers")
	{
		group.POST("", h.Provision)
		group.GET("", h.List)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) Provision(c *gin.Context) {
	var req ProvisionPhotographerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing required fields", fields)
		return
	}

	u, err := h.service.ProvisionPhotographer(c.Request.Context(), middleware.ActorFrom(c), req)
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "This email is already registered")
			return
		}
		h.writeError(c, err, "Failed to create photographer")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"user": u})
}

func (h *Handler) List(c *gin.Context) {
	photographers, err := h.service.ListPhotographers(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		h.writeError(c, err, "Failed to list photographers")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"photographers": photographers})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdatePhotographerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	u, err := h.service.UpdatePhotographer(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err, "Failed to update photographer")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": u})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.DeletePhotographer(c.Request.Context(), middleware.ActorFrom(c), c.Param("id")); err != nil {
		h.writeError(c, err, "Failed to delete photographer")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "USER_NOT_FOUND", "User does not exist")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Admin role required")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
