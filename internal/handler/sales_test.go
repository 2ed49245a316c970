package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shopstock/internal/dto"
	"shopstock/internal/realtime"
	"shopstock/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSaleService struct {
	resp *dto.SaleResponse
	err  error
}

func (s *stubSaleService) RecordSale(_ context.Context, _ dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	return s.resp, s.err
}
func (s *stubSaleService) Get(_ context.Context, _ uuid.UUID) (*dto.SaleResponse, error) {
	return s.resp, s.err
}
func (s *stubSaleService) List(_ context.Context, _ dto.SaleFilter) (*dto.SaleListResponse, error) {
	return &dto.SaleListResponse{}, s.err
}

var _ service.SaleService = (*stubSaleService)(nil)

func salesRouter(svc service.SaleService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewSalesHandler(svc, realtime.NewPublisher(nil))
	r.POST("/v1/sales", h.Record)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validSaleBody() string {
	return `{"items":[{"product_id":"` + uuid.NewString() + `","quantity":2,"price":"50"}]}`
}

func TestSalesRecord_Created(t *testing.T) {
	svc := &stubSaleService{resp: &dto.SaleResponse{ID: "s-1", TotalAmount: decimal.NewFromInt(100)}}
	w := postJSON(t, salesRouter(svc), "/v1/sales", validSaleBody())

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp dto.SaleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "s-1", resp.ID)
	assert.Empty(t, resp.StockWarnings)
}

func TestSalesRecord_PartialStockFailureStill201(t *testing.T) {
	svc := &stubSaleService{
		resp: &dto.SaleResponse{
			ID:            "s-2",
			TotalAmount:   decimal.NewFromInt(190),
			StockWarnings: []string{`stock not adjusted for "P2": lock timeout`},
		},
		err: &service.PartialStockUpdateError{},
	}
	w := postJSON(t, salesRouter(svc), "/v1/sales", validSaleBody())

	assert.Equal(t, http.StatusCreated, w.Code, "partial stock failure keeps the sale committed")
	var resp dto.SaleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.StockWarnings, 1)
	assert.Contains(t, resp.StockWarnings[0], "P2")
}

func TestSalesRecord_ValidationErrorIs400(t *testing.T) {
	svc := &stubSaleService{err: &service.ValidationError{Msg: "product not found"}}
	w := postJSON(t, salesRouter(svc), "/v1/sales", validSaleBody())
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSalesRecord_MissingItemsRejectedByBinding(t *testing.T) {
	svc := &stubSaleService{}
	w := postJSON(t, salesRouter(svc), "/v1/sales", `{"items":[]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestSalesRecord_BadJSONIs400(t *testing.T) {
	svc := &stubSaleService{}
	w := postJSON(t, salesRouter(svc), "/v1/sales", `{`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
