package partner

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"taxiforms/internal/domain"
	"taxiforms/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/partners", h.List)
	rg.POST("/partners", h.Create)
	rg.GET("/partners/:id", h.Get)
	rg.PUT("/partners/:id", h.Update)
	rg.DELETE("/partners/:id", h.Delete)
	rg.POST("/partners/:id/rotate-key", h.RotateKey)
	rg.PUT("/partners/:id/status", h.SetStatus)
}

func (h *Handler) List(c *gin.Context) {
	partners, err := h.service.List(c.Request.Context(), c.GetString("tenant_id"))
	if err != nil {
		h.respondError(c, err, "Failed to list partners")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"partners": partners})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	p, err := h.service.Get(c.Request.Context(), c.GetString("tenant_id"), id)
	if err != nil {
		h.respondError(c, err, "Failed to fetch partner")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"partner": p})
}

func (h *Handler) Create(c *gin.Context) {
	var req PartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.Create(c.Request.Context(), c.GetString("tenant_id"), req)
	if err != nil {
		h.respondError(c, err, "Failed to create partner")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"partner": p})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req PartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.Update(c.Request.Context(), c.GetString("tenant_id"), id, req)
	if err != nil {
		h.respondError(c, err, "Failed to update partner")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"partner": p})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), c.GetString("tenant_id"), id); err != nil {
		h.respondError(c, err, "Failed to delete partner")
		return
	}
	response.SuccessMessage(c, http.StatusOK, "Partner deleted")
}

func (h *Handler) RotateKey(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	p, err := h.service.RotateKey(c.Request.Context(), c.GetString("tenant_id"), id)
	if err != nil {
		h.respondError(c, err, "Failed to rotate widget key")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"partner": p})
}

func (h *Handler) SetStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.SetStatus(c.Request.Context(), c.GetString("tenant_id"), id, domain.PartnerStatus(req.Status))
	if err != nil {
		h.respondError(c, err, "Failed to update partner status")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"partner": p})
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid partner data")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Partner not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ID")
		return 0, false
	}
	return id, true
}
