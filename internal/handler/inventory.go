package handler

import (
	"net/http"

	"shopstock/internal/apierror"
	"shopstock/internal/dto"
	"shopstock/internal/realtime"
	"shopstock/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InventoryHandler struct {
	svc    service.InventoryService
	events *realtime.Publisher
}

func NewInventoryHandler(svc service.InventoryService, events *realtime.Publisher) *InventoryHandler {
	return &InventoryHandler{svc: svc, events: events}
}

// AdjustStock applies a manual stock correction (PATCH /v1/products/:id/stock).
func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.AdjustStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AdjustStock(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	h.events.Publish(c.Request.Context(), realtime.Event{Collection: "products", Action: "update", ID: resp.ID})
	c.JSON(http.StatusOK, resp)
}

func (h *InventoryHandler) Alerts(c *gin.Context) {
	alerts, err := h.svc.LowStockAlerts(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": alerts})
}

func (h *InventoryHandler) Movements(c *gin.Context) {
	var filter dto.StockMovementFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid query: "+err.Error()))
		return
	}
	movements, total, err := h.svc.ListMovements(c.Request.Context(), filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  movements,
		"total": total,
		"page":  filter.Page,
		"limit": filter.Limit,
	})
}
