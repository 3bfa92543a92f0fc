package fleet

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"taxiforms/internal/pkg/response"
)

type Handler struct {
	service *Service
	// tenantID backs the public vehicle listing the funnel uses.
	tenantID string
}

func NewHandler(service *Service, tenantID string) *Handler {
	return &Handler{service: service, tenantID: tenantID}
}

// RegisterPublicRoutes exposes the active vehicle classes for the
// vehicle-selection step.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/vehicles", h.ListPublicVehicles)
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/fleet/vehicles", h.ListVehicles)
	rg.POST("/fleet/vehicles", h.CreateVehicle)
	rg.GET("/fleet/vehicles/:id", h.GetVehicle)
	rg.PUT("/fleet/vehicles/:id", h.UpdateVehicle)
	rg.DELETE("/fleet/vehicles/:id", h.DeleteVehicle)

	rg.GET("/fleet/drivers", h.ListDrivers)
	rg.POST("/fleet/drivers", h.CreateDriver)
	rg.GET("/fleet/drivers/:id", h.GetDriver)
	rg.PUT("/fleet/drivers/:id", h.UpdateDriver)
	rg.DELETE("/fleet/drivers/:id", h.DeleteDriver)
}

func (h *Handler) ListPublicVehicles(c *gin.Context) {
	vehicles, err := h.service.ListVehicles(c.Request.Context(), h.tenantID, true)
	if err != nil {
		h.respondError(c, err, "Failed to list vehicles")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"vehicles": vehicles})
}

func (h *Handler) ListVehicles(c *gin.Context) {
	vehicles, err := h.service.ListVehicles(c.Request.Context(), c.GetString("tenant_id"), false)
	if err != nil {
		h.respondError(c, err, "Failed to list vehicles")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"vehicles": vehicles})
}

func (h *Handler) CreateVehicle(c *gin.Context) {
	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	v, err := h.service.CreateVehicle(c.Request.Context(), c.GetString("tenant_id"), req)
	if err != nil {
		h.respondError(c, err, "Failed to create vehicle")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"vehicle": v})
}

func (h *Handler) GetVehicle(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	v, err := h.service.GetVehicle(c.Request.Context(), c.GetString("tenant_id"), id)
	if err != nil {
		h.respondError(c, err, "Failed to fetch vehicle")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"vehicle": v})
}

func (h *Handler) UpdateVehicle(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	v, err := h.service.UpdateVehicle(c.Request.Context(), c.GetString("tenant_id"), id, req)
	if err != nil {
		h.respondError(c, err, "Failed to update vehicle")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"vehicle": v})
}

func (h *Handler) DeleteVehicle(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.service.DeleteVehicle(c.Request.Context(), c.GetString("tenant_id"), id); err != nil {
		h.respondError(c, err, "Failed to delete vehicle")
		return
	}
	response.SuccessMessage(c, http.StatusOK, "Vehicle deleted")
}

func (h *Handler) ListDrivers(c *gin.Context) {
	drivers, err := h.service.ListDrivers(c.Request.Context(), c.GetString("tenant_id"))
	if err != nil {
		h.respondError(c, err, "Failed to list drivers")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"drivers": drivers})
}

func (h *Handler) CreateDriver(c *gin.Context) {
	var req DriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	d, err := h.service.CreateDriver(c.Request.Context(), c.GetString("tenant_id"), req)
	if err != nil {
		h.respondError(c, err, "Failed to create driver")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"driver": d})
}

func (h *Handler) GetDriver(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	d, err := h.service.GetDriver(c.Request.Context(), c.GetString("tenant_id"), id)
	if err != nil {
		h.respondError(c, err, "Failed to fetch driver")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"driver": d})
}

func (h *Handler) UpdateDriver(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req DriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	d, err := h.service.UpdateDriver(c.Request.Context(), c.GetString("tenant_id"), id, req)
	if err != nil {
		h.respondError(c, err, "Failed to update driver")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"driver": d})
}

func (h *Handler) DeleteDriver(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.service.DeleteDriver(c.Request.Context(), c.GetString("tenant_id"), id); err != nil {
		h.respondError(c, err, "Failed to delete driver")
		return
	}
	response.SuccessMessage(c, http.StatusOK, "Driver deleted")
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid reference")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found")
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
