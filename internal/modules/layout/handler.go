package layout

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taxiforms/internal/domain"
	"taxiforms/internal/pkg/response"
)

type Handler struct {
	service  *Service
	sessions *Manager
}

func NewHandler(service *Service, sessions *Manager) *Handler {
	return &Handler{service: service, sessions: sessions}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/layouts", h.ListLayouts)
	rg.POST("/layouts", h.CreateLayout)
	rg.GET("/layouts/:id", h.GetLayout)
	rg.PUT("/layouts/:id", h.UpdateLayout)
	rg.DELETE("/layouts/:id", h.DeleteLayout)
	rg.POST("/layouts/:id/duplicate", h.DuplicateLayout)
	rg.POST("/layouts/:id/default", h.SetDefaultLayout)
	rg.POST("/layouts/:id/active", h.SetActiveLayout)

	rg.POST("/builder/sessions", h.OpenSession)
	rg.GET("/builder/sessions/:id", h.GetSession)
	rg.DELETE("/builder/sessions/:id", h.CloseSession)
	rg.POST("/builder/sessions/:id/fields", h.AddField)
	rg.DELETE("/builder/sessions/:id/fields/:fieldId", h.RemoveField)
	rg.POST("/builder/sessions/:id/fields/:fieldId/toggle", h.ToggleField)
	rg.PATCH("/builder/sessions/:id/fields/:fieldId", h.UpdateField)
	rg.POST("/builder/sessions/:id/reorder", h.Reorder)
	rg.POST("/builder/sessions/:id/undo", h.Undo)
	rg.PATCH("/builder/sessions/:id/meta", h.UpdateMeta)
	rg.PUT("/builder/sessions/:id/submit-position", h.MoveSubmit)
	rg.POST("/builder/sessions/:id/save", h.SaveSession)
}

func (h *Handler) ListLayouts(c *gin.Context) {
	layouts, err := h.service.List(c.Request.Context(), c.GetString("tenant_id"))
	if err != nil {
		respondError(c, err, "Failed to list layouts")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"layouts": layouts})
}

func (h *Handler) CreateLayout(c *gin.Context) {
	var req CreateLayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Layout name is required")
		return
	}

	l, err := h.service.Create(c.Request.Context(), c.GetString("tenant_id"), req.Name, req.Description)
	if err != nil {
		respondError(c, err, "Failed to create layout")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"layout": l})
}

func (h *Handler) GetLayout(c *gin.Context) {
	l, err := h.service.Get(c.Request.Context(), c.GetString("tenant_id"), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch layout")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"layout": l})
}

func (h *Handler) UpdateLayout(c *gin.Context) {
	var req UpdateLayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	working := domainLayoutFromUpdate(c.Param("id"), req)
	l, err := h.service.Update(c.Request.Context(), c.GetString("tenant_id"), working)
	if err != nil {
		respondError(c, err, "Failed to update layout")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"layout": l})
}

func (h *Handler) DeleteLayout(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.GetString("tenant_id"), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to delete layout")
		return
	}
	response.SuccessMessage(c, http.StatusOK, "Layout deleted")
}

func (h *Handler) DuplicateLayout(c *gin.Context) {
	var req DuplicateLayoutRequest
	_ = c.ShouldBindJSON(&req)

	l, err := h.service.Duplicate(c.Request.Context(), c.GetString("tenant_id"), c.Param("id"), req.Name)
	if err != nil {
		respondError(c, err, "Failed to duplicate layout")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"layout": l})
}

func (h *Handler) SetDefaultLayout(c *gin.Context) {
	l, err := h.service.SetDefault(c.Request.Context(), c.GetString("tenant_id"), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to set default layout")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"layout": l})
}

func (h *Handler) SetActiveLayout(c *gin.Context) {
	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	l, err := h.service.SetActive(c.Request.Context(), c.GetString("tenant_id"), c.Param("id"), *req.Active)
	if err != nil {
		respondError(c, err, "Failed to update layout")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"layout": l})
}

func (h *Handler) OpenSession(c *gin.Context) {
	var req OpenSessionRequest
	_ = c.ShouldBindJSON(&req)

	sess, err := h.sessions.Open(c.Request.Context(), c.GetString("tenant_id"), req.LayoutID)
	if err != nil {
		respondError(c, err, "Failed to open builder session")
		return
	}
	response.Success(c, http.StatusCreated, newSessionState(sess))
}

func (h *Handler) GetSession(c *gin.Context) {
	sess, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Builder session not found")
		return
	}
	response.Success(c, http.StatusOK, newSessionState(sess))
}

func (h *Handler) CloseSession(c *gin.Context) {
	if !h.sessions.Close(c.Param("id")) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Builder session not found")
		return
	}
	response.SuccessMessage(c, http.StatusOK, "Session closed")
}

func (h *Handler) AddField(c *gin.Context) {
	sess, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Builder session not found")
		return
	}

	var req AddFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Field type is required")
		return
	}

	// A type already present (or unknown) is a quiet no-op; the state echo
	// tells the caller what actually happened.
	sess.AddField(req.Type)
	response.Success(c, http.StatusOK, newSessionState(sess))
}

func (h *Handler) RemoveField(c *gin.Context) {
	sess, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Builder session not found")
		return
	}

	sess.RemoveField(c.Param("fieldId"))
	response.Success(c, http.StatusOK, newSessionState(sess))
}

func (h *Handler) ToggleField(c *gin.Context) {
	sess, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Builder session not found")
		return
	}

	sess.ToggleField(c.Param("fieldId"))
	response.Success(c, http.StatusOK, newSessionState(sess))
}

func (h *Handler) UpdateField(c *gin.Context) {
	sess, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Builder session not found")
		return
	}

	var patch FieldPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sess.UpdateField(c.Param("fieldId"), patch)
	response.Success(c, http.StatusOK, newSessionState(sess))
}

func (h *Handler) Reorder(c *gin.Context) {
	sess, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Builder session not found")
		return
	}

	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "active_id and over_id are required")
		return
	}

	sess.Reorder(req.ActiveID, req.OverID)
	response.Success(c, http.StatusOK, newSessionState(sess))
}

func (h *Handler) Undo(c *gin.Context) {
	sess, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Builder session not found")
		return
	}

	sess.Undo()
	response.Success(c, http.StatusOK, newSessionState(sess))
}

func (h *Handler) UpdateMeta(c *gin.Context) {
	sess, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Builder session not found")
		return
	}

	var req UpdateMetaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sess.UpdateMeta(req.Name, req.Description, req.Style)
	response.Success(c, http.StatusOK, newSessionState(sess))
}

func (h *Handler) MoveSubmit(c *gin.Context) {
	sess, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Builder session not found")
		return
	}

	var req MoveSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sess.MoveSubmit(req.Position)
	response.Success(c, http.StatusOK, newSessionState(sess))
}

func (h *Handler) SaveSession(c *gin.Context) {
	sess, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Builder session not found")
		return
	}

	if _, err := sess.Save(c.Request.Context()); err != nil {
		respondError(c, err, "Failed to save layout")
		return
	}
	response.Success(c, http.StatusOK, newSessionState(sess))
}

func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Layout name is required")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Layout not found")
	case errors.Is(err, ErrDefaultConflict):
		response.Error(c, http.StatusConflict, "DEFAULT_CONFLICT", "Another layout is already the default")
	case errors.Is(err, ErrSessionNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Builder session not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

func domainLayoutFromUpdate(id string, req UpdateLayoutRequest) domain.Layout {
	return domain.Layout{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Fields:      req.Fields,
		Style:       req.Style,
	}
}
