package faq

import (
	"errors"
	"net/http"

	"sportshots/internal/domain"
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

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	v1.GET("/faqs", h.ListApproved)
	v1.POST("/faqs", h.Submit)
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	group := admin.Group("/faqs")
	{
		group.GET("", h.ListByStatus)
		group.POST("/:id/approve", h.Approve)
		group.POST("/:id/reject", h.Reject)
		group.PUT("/:id/translations/:lang", h.SetTranslation)
		group.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Question is required", fields)
		return
	}

	f, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"faq": f})
}

func (h *Handler) ListApproved(c *gin.Context) {
	views, err := h.service.ListApproved(c.Request.Context(), c.Query("lang"), c.Query("category"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list FAQ entries")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"faqs": views})
}

func (h *Handler) ListByStatus(c *gin.Context) {
	status := domain.FAQStatus(c.DefaultQuery("status", string(domain.FAQPending)))
	faqs, err := h.service.ListByStatus(c.Request.Context(), middleware.ActorFrom(c), status, c.Query("category"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"faqs": faqs})
}

func (h *Handler) Approve(c *gin.Context) {
	var req ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	f, err := h.service.Approve(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"faq": f})
}

func (h *Handler) Reject(c *gin.Context) {
	f, err := h.service.Reject(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"faq": f})
}

func (h *Handler) SetTranslation(c *gin.Context) {
	var tr domain.FAQTranslation
	if err := c.ShouldBindJSON(&tr); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	f, err := h.service.SetTranslation(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"), c.Param("lang"), tr)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"faq": f})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), middleware.ActorFrom(c), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "FAQ_NOT_FOUND", "FAQ entry does not exist")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Admin role required")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process FAQ entry")
	}
}
