package handler

import (
	"net/http"

	"shopstock/internal/dto"
	"shopstock/internal/realtime"
	"shopstock/internal/service"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	svc    service.SettingsService
	events *realtime.Publisher
}

func NewSettingsHandler(svc service.SettingsService, events *realtime.Publisher) *SettingsHandler {
	return &SettingsHandler{svc: svc, events: events}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	resp, err := h.svc.Get(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	h.events.Publish(c.Request.Context(), realtime.Event{Collection: "settings", Action: "update", ID: "settings"})
	c.JSON(http.StatusOK, resp)
}
