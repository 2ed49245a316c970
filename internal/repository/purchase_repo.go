package repository

import (
	"context"

	"shopstock/internal/dto"
	"shopstock/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PurchaseRepository mirrors SaleRepository for the purchase side of the
// recorder workflow.
type PurchaseRepository interface {
	Create(ctx context.Context, p *model.Purchase) error
	CreateItems(ctx context.Context, items []model.PurchaseItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Purchase, error)
	List(ctx context.Context, filter dto.PurchaseFilter) ([]model.Purchase, int64, error)
	SumTotal(ctx context.Context) (decimal.Decimal, error)
}

type purchaseRepo struct{ db *gorm.DB }

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository { return &purchaseRepo{db: db} }

func (r *purchaseRepo) Create(ctx context.Context, p *model.Purchase) error {
	return r.db.WithContext(ctx).Omit("Items").Create(p).Error
}

func (r *purchaseRepo) CreateItems(ctx context.Context, items []model.PurchaseItem) error {
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *purchaseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Purchase{}, id).Error
}

func (r *purchaseRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Purchase, error) {
	var p model.Purchase
	err := r.db.WithContext(ctx).Preload("Items.Product").First(&p, id).Error
	return &p, err
}

func (r *purchaseRepo) List(ctx context.Context, filter dto.PurchaseFilter) ([]model.Purchase, int64, error) {
	var purchases []model.Purchase
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.Purchase{})

	if filter.Date != "" {
		q = q.Where("purchase_date = ?", filter.Date)
	} else {
		q = q.Where("purchase_date = CURRENT_DATE")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Items.Product").
		Order("created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&purchases).Error
	return purchases, total, err
}

func (r *purchaseRepo) SumTotal(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.Purchase{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error
	return total.Decimal, err
}
