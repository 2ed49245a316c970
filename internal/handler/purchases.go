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

type PurchasesHandler struct {
	svc    service.PurchaseService
	events *realtime.Publisher
}

func NewPurchasesHandler(svc service.PurchaseService, events *realtime.Publisher) *PurchasesHandler {
	return &PurchasesHandler{svc: svc, events: events}
}

func (h *PurchasesHandler) Record(c *gin.Context) {
	var req dto.RecordPurchaseRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RecordPurchase(c.Request.Context(), req)
	if err != nil {
		var partial *service.PartialStockUpdateError
		if !errors.As(err, &partial) {
			writeServiceError(c, err)
			return
		}
	}
	h.events.Publish(c.Request.Context(), realtime.Event{Collection: "purchases", Action: "insert", ID: resp.ID})
	c.JSON(http.StatusCreated, resp)
}

func (h *PurchasesHandler) Get(c *gin.Context) {
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

func (h *PurchasesHandler) List(c *gin.Context) {
	var filter dto.PurchaseFilter
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
