package repository

import (
	"context"

	"shopstock/internal/model"

	"gorm.io/gorm"
)

type SettingRepository interface {
	Get(ctx context.Context) (*model.Setting, error)
	Upsert(ctx context.Context, s *model.Setting) error
}

type settingRepo struct{ db *gorm.DB }

func NewSettingRepository(db *gorm.DB) SettingRepository { return &settingRepo{db: db} }

// Get returns the singleton settings row, or gorm.ErrRecordNotFound when the
// shop has never been configured.
func (r *settingRepo) Get(ctx context.Context) (*model.Setting, error) {
	var s model.Setting
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&s).Error
	return &s, err
}

func (r *settingRepo) Upsert(ctx context.Context, s *model.Setting) error {
	existing := &model.Setting{}
	err := r.db.WithContext(ctx).Order("created_at ASC").First(existing).Error
	if err == gorm.ErrRecordNotFound {
		return r.db.WithContext(ctx).Create(s).Error
	}
	if err != nil {
		return err
	}
	s.ID = existing.ID
	s.CreatedAt = existing.CreatedAt
	return r.db.WithContext(ctx).Save(s).Error
}
