package infra

// pdf.go — report rendering with go-pdf/fpdf. Reports are generated on demand
// and streamed to the client; nothing is written to disk.

import (
	"bytes"
	"fmt"
	"time"

	"shopstock/internal/dto"

	"github.com/go-pdf/fpdf"
)

// RenderSummaryPDF renders the day-end style summary report.
func RenderSummaryPDF(shopName, currency string, summary *dto.SummaryReportResponse) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, shopName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Summary Report", "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 5, time.Now().Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	line := func(label, value string) {
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(contentW/2, 8, label, "B", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(contentW/2, 8, value, "B", 1, "R", false, 0, "")
	}
	line("Total sales", fmt.Sprintf("%s %s", currency, summary.TotalSales.StringFixed(2)))
	line("Total purchases", fmt.Sprintf("%s %s", currency, summary.TotalPurchases.StringFixed(2)))
	line("Profit", fmt.Sprintf("%s %s", currency, summary.Profit.StringFixed(2)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render summary: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderStockPDF renders the stock report table. Low-stock rows are marked.
func RenderStockPDF(shopName string, rows []dto.StockReportRow) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, shopName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Stock Report", "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 5, time.Now().Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	nameW := contentW * 0.38
	catW := contentW * 0.22
	unitW := contentW * 0.12
	stockW := contentW * 0.14
	flagW := contentW * 0.14

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(nameW, 7, "Product", "1", 0, "L", false, 0, "")
	pdf.CellFormat(catW, 7, "Category", "1", 0, "L", false, 0, "")
	pdf.CellFormat(unitW, 7, "Unit", "1", 0, "C", false, 0, "")
	pdf.CellFormat(stockW, 7, "Stock", "1", 0, "R", false, 0, "")
	pdf.CellFormat(flagW, 7, "Status", "1", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		stock := "-"
		if row.Stock != nil {
			stock = fmt.Sprintf("%d", *row.Stock)
		}
		status := ""
		if row.LowStock {
			status = "LOW"
		}
		pdf.CellFormat(nameW, 6, row.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(catW, 6, row.Category, "1", 0, "L", false, 0, "")
		pdf.CellFormat(unitW, 6, row.Unit, "1", 0, "C", false, 0, "")
		pdf.CellFormat(stockW, 6, stock, "1", 0, "R", false, 0, "")
		pdf.CellFormat(flagW, 6, status, "1", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render stock report: %w", err)
	}
	return buf.Bytes(), nil
}
