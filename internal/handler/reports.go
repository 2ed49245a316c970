package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"shopstock/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

func (h *ReportsHandler) Summary(c *gin.Context) {
	resp, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportsHandler) Stock(c *gin.Context) {
	resp, err := h.svc.Stock(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportsHandler) SummaryPDF(c *gin.Context) {
	data, err := h.svc.SummaryPDF(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	name := fmt.Sprintf("summary_%s.pdf", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

func (h *ReportsHandler) StockPDF(c *gin.Context) {
	data, err := h.svc.StockPDF(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	name := fmt.Sprintf("stock_%s.pdf", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

// StockCSV streams the stock report as a CSV download.
func (h *ReportsHandler) StockCSV(c *gin.Context) {
	resp, err := h.svc.Stock(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	name := fmt.Sprintf("stock_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Header("Content-Type", "text/csv")
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"name", "category", "unit", "stock", "low_stock"})
	for _, row := range resp.Rows {
		stock := ""
		if row.Stock != nil {
			stock = strconv.Itoa(*row.Stock)
		}
		_ = w.Write([]string{row.Name, row.Category, row.Unit, stock, strconv.FormatBool(row.LowStock)})
	}
	w.Flush()
}
