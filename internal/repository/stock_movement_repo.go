package repository

import (
	"context"

	"shopstock/internal/dto"
	"shopstock/internal/model"

	"gorm.io/gorm"
)

type StockMovementRepository interface {
	Create(ctx context.Context, m *model.StockMovement) error
	List(ctx context.Context, filter dto.StockMovementFilter) ([]model.StockMovement, int64, error)
}

type stockMovementRepo struct{ db *gorm.DB }

func NewStockMovementRepository(db *gorm.DB) StockMovementRepository {
	return &stockMovementRepo{db: db}
}

func (r *stockMovementRepo) Create(ctx context.Context, m *model.StockMovement) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *stockMovementRepo) List(ctx context.Context, filter dto.StockMovementFilter) ([]model.StockMovement, int64, error) {
	var movements []model.StockMovement
	var total int64

	q := r.db.WithContext(ctx).Model(&model.StockMovement{})

	if filter.ProductID != "" {
		q = q.Where("product_id = ?", filter.ProductID)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Product").
		Order("created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&movements).Error
	return movements, total, err
}
