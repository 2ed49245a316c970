package handler

import (
	"errors"
	"net/http"

	"shopstock/internal/apierror"
	"shopstock/internal/dto"
	"shopstock/internal/realtime"
	"shopstock/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SalesHandler struct {
	svc    service.SaleService
	events *realtime.Publisher
}

func NewSalesHandler(svc service.SaleService, events *realtime.Publisher) *SalesHandler {
	return &SalesHandler{svc: svc, events: events}
}

// Record creates a sale. A partial stock failure does not fail the request:
// the sale is committed, so the client gets 201 with stock_warnings set.
func (h *SalesHandler) Record(c *gin.Context) {
	var req dto.RecordSaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RecordSale(c.Request.Context(), req)
	if err != nil {
		var partial *service.PartialStockUpdateError
		if !errors.As(err, &partial) {
			writeServiceError(c, err)
			return
		}
	}
	h.events.Publish(c.Request.Context(), realtime.Event{Collection: "sales", Action: "insert", ID: resp.ID})
	c.JSON(http.StatusCreated, resp)
}

func (h *SalesHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SalesHandler) List(c *gin.Context) {
	var filter dto.SaleFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid query: "+err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
