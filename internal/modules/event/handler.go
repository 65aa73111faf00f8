package event

import (
	"errors"
	"net/http"
	"strconv"

	"sportshots/internal/middleware"
	"sportshots/internal/pkg/response"
	"sportshots/internal/pkg/validator"
	"sportshots/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	events := v1.Group("/events")
	{
		events.GET("", h.List)
		events.GET("/:id", h.Get)
	}
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	events := admin.Group("/events")
	{
		events.POST("", h.Create)
		events.PUT("/:id", h.Update)
		events.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing required fields", fields)
		return
	}

	e, err := h.service.Create(c.Request.Context(), middleware.ActorFrom(c), req)
	if err != nil {
		h.writeError(c, err, "Failed to create event")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"event": e})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	e, err := h.service.Update(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err, "Failed to update event")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"event": e})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), middleware.ActorFrom(c), c.Param("id")); err != nil {
		h.writeError(c, err, "Failed to delete event")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) Get(c *gin.Context) {
	e, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "Failed to load event")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"event": e})
}

func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := repository.EventFilter{
		EventTypeID: c.Query("event_type_id"),
		Country:     c.Query("country"),
		FromDate:    c.Query("from"),
	}

	events, err := h.service.List(c.Request.Context(), filter, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list events")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"events": events})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Required event fields are missing or malformed")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "EVENT_NOT_FOUND", "Event does not exist")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Admin role required")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
