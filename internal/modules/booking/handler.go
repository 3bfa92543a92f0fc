package booking

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"taxiforms/internal/domain"
	"taxiforms/internal/pkg/response"
)

type Handler struct {
	service *Service
	// tenantID keys the public funnel routes, which carry no JWT.
	tenantID string
}

func NewHandler(service *Service, tenantID string) *Handler {
	return &Handler{service: service, tenantID: tenantID}
}

// RegisterPublicRoutes exposes the customer funnel: quote then book.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/quotes", h.Quote)
	rg.POST("/bookings", h.CreateBooking)
}

// RegisterRoutes exposes the dashboard side: list and status transitions.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.ListBookings)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.POST("/bookings/:id/confirm", h.ConfirmBooking)
	rg.POST("/bookings/:id/complete", h.CompleteBooking)
	rg.POST("/bookings/:id/cancel", h.CancelBooking)
}

func (h *Handler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	q, err := h.service.Quote(c.Request.Context(), h.tenantID, req)
	if err != nil {
		h.respondError(c, err, "Failed to compute quote")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"quote": q})
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), h.tenantID, nil, req)
	if err != nil {
		h.respondError(c, err, "Failed to create booking")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"booking": gin.H{
			"id":     b.ID,
			"status": b.Status,
			"fare":   b.Fare,
		},
	})
}

func (h *Handler) ListBookings(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	bookings, err := h.service.List(c.Request.Context(), tenantFrom(c, h.tenantID), limit, offset)
	if err != nil {
		h.respondError(c, err, "Failed to list bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), tenantFrom(c, h.tenantID), id)
	if err != nil {
		h.respondError(c, err, "Failed to fetch booking")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) ConfirmBooking(c *gin.Context) {
	h.transition(c, h.service.Confirm)
}

func (h *Handler) CompleteBooking(c *gin.Context) {
	h.transition(c, h.service.Complete)
}

func (h *Handler) CancelBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	var req CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Cancellation reason is required")
		return
	}

	b, err := h.service.Cancel(c.Request.Context(), tenantFrom(c, h.tenantID), id, req.Reason)
	if err != nil {
		h.respondError(c, err, "Failed to cancel booking")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) transition(c *gin.Context, op func(ctx context.Context, tenantID string, id int64) (*domain.Booking, error)) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	b, err := op(c.Request.Context(), tenantFrom(c, h.tenantID), id)
	if err != nil {
		h.respondError(c, err, "Failed to update booking")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	var missing *MissingFieldsError
	switch {
	case errors.As(err, &missing):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR",
			"Required fields are missing", gin.H{"fields": missing.Fields})
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking details")
	case errors.Is(err, ErrVehicleUnavailable):
		response.Error(c, http.StatusConflict, "VEHICLE_UNAVAILABLE", "Selected vehicle is not available")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case errors.Is(err, ErrInvalidStatusTransition):
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Booking status cannot change that way")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

// tenantFrom prefers the JWT tenant on dashboard routes and falls back to
// the configured tenant on public ones.
func tenantFrom(c *gin.Context, fallback string) string {
	if t := c.GetString("tenant_id"); t != "" {
		return t
	}
	return fallback
}
