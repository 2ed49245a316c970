package repository

import (
	"context"
	"time"

	"shopstock/internal/dto"
	"shopstock/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SaleRepository exposes the row-store operations the transaction recorder
// sequences: parent insert, child insert, and the compensating parent delete.
// Parent and items are written by separate calls on purpose — the recorder
// owns the ordering and the failure handling between them.
type SaleRepository interface {
	Create(ctx context.Context, s *model.Sale) error
	CreateItems(ctx context.Context, items []model.SaleItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error)
	List(ctx context.Context, filter dto.SaleFilter) ([]model.Sale, int64, error)

	// Aggregations for dashboard and reports.
	SumTotalBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	SumTotal(ctx context.Context) (decimal.Decimal, error)
	ListItemsBetween(ctx context.Context, from, to time.Time) ([]model.SaleItem, error)
	ListAllItems(ctx context.Context) ([]model.SaleItem, error)
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) Create(ctx context.Context, s *model.Sale) error {
	return r.db.WithContext(ctx).Omit("Items").Create(s).Error
}

func (r *saleRepo) CreateItems(ctx context.Context, items []model.SaleItem) error {
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *saleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Sale{}, id).Error
}

func (r *saleRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).Preload("Items.Product").First(&s, id).Error
	return &s, err
}

func (r *saleRepo) List(ctx context.Context, filter dto.SaleFilter) ([]model.Sale, int64, error) {
	var sales []model.Sale
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.Sale{})

	if filter.Date != "" {
		q = q.Where("sale_date = ?", filter.Date)
	} else {
		q = q.Where("sale_date = CURRENT_DATE")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Items.Product").
		Order("created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&sales).Error
	return sales, total, err
}

func (r *saleRepo) SumTotalBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.Sale{}).
		Where("created_at BETWEEN ? AND ?", from, to).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error
	return total.Decimal, err
}

func (r *saleRepo) SumTotal(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.Sale{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error
	return total.Decimal, err
}

func (r *saleRepo) ListItemsBetween(ctx context.Context, from, to time.Time) ([]model.SaleItem, error) {
	var items []model.SaleItem
	err := r.db.WithContext(ctx).
		Joins("JOIN sales ON sales.id = sale_items.sale_id").
		Where("sales.created_at BETWEEN ? AND ?", from, to).
		Preload("Product").
		Find(&items).Error
	return items, err
}

func (r *saleRepo) ListAllItems(ctx context.Context) ([]model.SaleItem, error) {
	var items []model.SaleItem
	err := r.db.WithContext(ctx).Preload("Product").Find(&items).Error
	return items, err
}
