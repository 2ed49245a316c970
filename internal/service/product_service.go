package service

import (
	"context"
	"time"

	"shopstock/internal/dto"
	"shopstock/internal/model"
	"shopstock/internal/repository"

	"github.com/google/uuid"
)

// ProductService defines the business logic contract for catalog management.
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	unit := req.Unit
	if unit == "" {
		unit = "pcs"
	}
	p := &model.Product{
		Name:          req.Name,
		Category:      req.Category,
		Unit:          unit,
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
		Stock:         req.Stock,
		LowStockLimit: req.LowStockLimit,
		UnitsPerBox:   req.UnitsPerBox,
		PricePerBox:   req.PricePerBox,
		PricePerPiece: req.PricePerPiece,
		IsBoxSellable: req.IsBoxSellable,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, &PersistenceError{Stage: "create product", Err: err}
	}
	return productToResponse(p), nil
}

func (s *productService) Get(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, &PersistenceError{Stage: "find product", Err: err}
	}
	return productToResponse(p), nil
}

func (s *productService) List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, &PersistenceError{Stage: "list products", Err: err}
	}
	data := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		data = append(data, *productToResponse(&products[i]))
	}
	return &dto.ProductListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, &PersistenceError{Stage: "find product", Err: err}
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Unit != nil {
		p.Unit = *req.Unit
	}
	if req.PurchasePrice != nil {
		p.PurchasePrice = *req.PurchasePrice
	}
	if req.SellingPrice != nil {
		p.SellingPrice = *req.SellingPrice
	}
	if req.Stock != nil {
		p.Stock = req.Stock
	}
	if req.LowStockLimit != nil {
		p.LowStockLimit = req.LowStockLimit
	}
	if req.UnitsPerBox != nil {
		p.UnitsPerBox = req.UnitsPerBox
	}
	if req.PricePerBox != nil {
		p.PricePerBox = req.PricePerBox
	}
	if req.PricePerPiece != nil {
		p.PricePerPiece = req.PricePerPiece
	}
	if req.IsBoxSellable != nil {
		p.IsBoxSellable = *req.IsBoxSellable
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, &PersistenceError{Stage: "update product", Err: err}
	}
	return productToResponse(p), nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return &PersistenceError{Stage: "delete product", Err: err}
	}
	return nil
}

func productToResponse(p *model.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID.String(),
		Name:          p.Name,
		Category:      p.Category,
		Unit:          p.Unit,
		PurchasePrice: p.PurchasePrice,
		SellingPrice:  p.SellingPrice,
		Stock:         p.Stock,
		LowStockLimit: p.LowStockLimit,
		UnitsPerBox:   p.UnitsPerBox,
		PricePerBox:   p.PricePerBox,
		PricePerPiece: p.PricePerPiece,
		IsBoxSellable: p.IsBoxSellable,
		LowStock:      p.IsLowStock(),
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
}
