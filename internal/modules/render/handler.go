package render

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taxiforms/internal/domain"
	"taxiforms/internal/modules/layout"
	"taxiforms/internal/pkg/response"
)

// Handler serves the builder preview: the live form rendered from the
// session's working copy, reorder-capable on the client side.
type Handler struct {
	sessions *layout.Manager
}

func NewHandler(sessions *layout.Manager) *Handler {
	return &Handler{sessions: sessions}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/builder/sessions/:id/preview", h.Preview)
}

func (h *Handler) Preview(c *gin.Context) {
	sess, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Builder session not found")
		return
	}

	working, _, _, _ := sess.Snapshot()
	response.Success(c, http.StatusOK, gin.H{"form": Render(working, RuntimeFromQuery(c))})
}

// RuntimeFromQuery parses the runtime selections from query params with the
// widget defaults: destination / oneway / desktop.
func RuntimeFromQuery(c *gin.Context) domain.RuntimeState {
	rt := domain.RuntimeState{
		BookingType: domain.BookingDestination,
		TripType:    domain.TripOneWay,
	}

	switch domain.BookingType(c.Query("booking_type")) {
	case domain.BookingHourly:
		rt.BookingType = domain.BookingHourly
	case domain.BookingDestination:
		rt.BookingType = domain.BookingDestination
	}
	switch domain.TripType(c.Query("trip_type")) {
	case domain.TripRoundTrip:
		rt.TripType = domain.TripRoundTrip
	case domain.TripOneWay:
		rt.TripType = domain.TripOneWay
	}
	if v := c.Query("mobile"); v == "1" || v == "true" {
		rt.Mobile = true
	}

	return rt
}
