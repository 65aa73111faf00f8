package confirm

import (
	"errors"
	"net/http"

	"sportshots/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the unauthenticated confirmation endpoints. The
// emailed link format is /confirm-event?eventId={id}&photographerId={id};
// both parameters are required.
func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup) {
	group := v1.Group("/confirm-event")
	{
		group.GET("", h.ResolveContext)
		group.POST("", h.SetConfirmation)
	}
}

func (h *Handler) ResolveContext(c *gin.Context) {
	eventID := c.Query("eventId")
	photographerID := c.Query("photographerId")
	if eventID == "" || photographerID == "" {
		response.Error(c, http.StatusBadRequest, "INVALID_LINK", "eventId and photographerId are required")
		return
	}

	result, err := h.service.ResolveContext(c.Request.Context(), eventID, photographerID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

type setConfirmationRequest struct {
	EventID        string `json:"eventId"`
	PhotographerID string `json:"photographerId"`
	Accepted       *bool  `json:"accepted"`
}

func (h *Handler) SetConfirmation(c *gin.Context) {
	var req setConfirmationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if req.EventID == "" || req.PhotographerID == "" || req.Accepted == nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "eventId, photographerId and accepted are required")
		return
	}

	result, err := h.service.SetConfirmation(c.Request.Context(), req.EventID, req.PhotographerID, *req.Accepted)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// The two failure modes get distinct codes so the page can explain whether
// the event is gone or the recipient was re-assigned away.
func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "EVENT_NOT_FOUND", "This event no longer exists")
	case errors.Is(err, ErrNotAssigned):
		response.Error(c, http.StatusForbidden, "NOT_ASSIGNED", "You are no longer assigned to this event")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process confirmation")
	}
}
