package embed

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"taxiforms/internal/domain"
	"taxiforms/internal/modules/booking"
	"taxiforms/internal/modules/layout"
	"taxiforms/internal/modules/render"
	"taxiforms/internal/pkg/response"
)

// PartnerProvider resolves widget keys to partners.
type PartnerProvider interface {
	GetByWidgetKey(ctx context.Context, key string) (*domain.Partner, error)
}

// Handler is the public widget surface: rendered form, bookings attributed
// to the partner, and the height channel. Everything is keyed by the opaque
// widget key; no JWT is involved.
type Handler struct {
	partners PartnerProvider
	layouts  *layout.Service
	bookings *booking.Service
	hub      *Hub
	upgrader websocket.Upgrader
}

func NewHandler(partners PartnerProvider, layouts *layout.Service, bookings *booking.Service, hub *Hub) *Handler {
	return &Handler{
		partners: partners,
		layouts:  layouts,
		bookings: bookings,
		hub:      hub,
		upgrader: websocket.Upgrader{
			// The widget is embedded on arbitrary partner sites.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/embed/:key/form", h.GetForm)
	rg.POST("/embed/:key/bookings", h.CreateBooking)
	rg.POST("/embed/:key/height", h.ReportHeight)
	rg.GET("/embed/:key/ws", h.Listen)
}

func (h *Handler) partner(c *gin.Context) (*domain.Partner, bool) {
	p, err := h.partners.GetByWidgetKey(c.Request.Context(), c.Param("key"))
	if err != nil || p == nil || p.Status != domain.PartnerActive {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Unknown widget key")
		return nil, false
	}
	return p, true
}

// GetForm returns the partner's layout rendered for the requested runtime
// state. The widget is a read-only consumer: it fetches a fresh snapshot
// per page load and never mutates the layout.
func (h *Handler) GetForm(c *gin.Context) {
	p, ok := h.partner(c)
	if !ok {
		return
	}

	l := h.resolveLayout(c, p)
	if l == nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "No layout published for this widget")
		return
	}

	form := render.Render(*l, render.RuntimeFromQuery(c))
	response.Success(c, http.StatusOK, gin.H{"form": form})
}

// resolveLayout prefers the layout pinned to the partner, falling back to
// the tenant default when it is missing or inactive.
func (h *Handler) resolveLayout(c *gin.Context, p *domain.Partner) *domain.Layout {
	ctx := c.Request.Context()

	if p.LayoutID != nil {
		l, err := h.layouts.Get(ctx, p.TenantID, *p.LayoutID)
		if err == nil && l.IsActive {
			return l
		}
	}

	l, err := h.layouts.Default(ctx, p.TenantID)
	if err != nil {
		return nil
	}
	return l
}

func (h *Handler) CreateBooking(c *gin.Context) {
	p, ok := h.partner(c)
	if !ok {
		return
	}

	var req booking.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.bookings.Create(c.Request.Context(), p.TenantID, &p.ID, req)
	if err != nil {
		var missing *booking.MissingFieldsError
		switch {
		case errors.As(err, &missing):
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR",
				"Required fields are missing", gin.H{"fields": missing.Fields})
		case errors.Is(err, booking.ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking details")
		case errors.Is(err, booking.ErrVehicleUnavailable):
			response.Error(c, http.StatusConflict, "VEHICLE_UNAVAILABLE", "Selected vehicle is not available")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
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

type heightReport struct {
	Height int `json:"height" binding:"required,gte=0"`
}

// ReportHeight is the HTTP fallback for widgets that cannot hold a socket
// open; it feeds the same hub as the ws path.
func (h *Handler) ReportHeight(c *gin.Context) {
	p, ok := h.partner(c)
	if !ok {
		return
	}

	var req heightReport
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "height is required")
		return
	}

	listeners := h.hub.NotifyHeight(p.WidgetKey, req.Height)
	response.Success(c, http.StatusOK, gin.H{"listeners": listeners})
}

// Listen upgrades to a websocket. The host page receives height and
// layout_updated events; the widget itself may push height messages over
// the same socket.
func (h *Handler) Listen(c *gin.Context) {
	p, ok := h.partner(c)
	if !ok {
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("embed ws upgrade failed key=%s err=%v", p.WidgetKey, err)
		return
	}

	h.hub.Register(p.TenantID, p.WidgetKey, conn)

	go h.readLoop(p.WidgetKey, conn)
}

func (h *Handler) readLoop(widgetKey string, conn *websocket.Conn) {
	defer h.hub.Unregister(conn)

	for {
		var msg struct {
			Type   string `json:"type"`
			Height int    `json:"height"`
		}
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		if msg.Type == "height" && msg.Height >= 0 {
			h.hub.NotifyHeight(widgetKey, msg.Height)
		}
	}
}
