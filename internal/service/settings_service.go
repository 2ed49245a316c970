package service

import (
	"context"
	"errors"

	"shopstock/internal/config"
	"shopstock/internal/dto"
	"shopstock/internal/model"
	"shopstock/internal/repository"

	"gorm.io/gorm"
)

type SettingsService interface {
	Get(ctx context.Context) (*dto.SettingsResponse, error)
	Update(ctx context.Context, req dto.UpdateSettingsRequest) (*dto.SettingsResponse, error)
}

type settingsService struct {
	repo repository.SettingRepository
	cfg  *config.Config
}

func NewSettingsService(repo repository.SettingRepository, cfg *config.Config) SettingsService {
	return &settingsService{repo: repo, cfg: cfg}
}

// Get falls back to the configured defaults when the shop has never saved
// its settings.
func (s *settingsService) Get(ctx context.Context) (*dto.SettingsResponse, error) {
	setting, err := s.repo.Get(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &dto.SettingsResponse{
			ShopName: s.cfg.ShopName,
			Currency: s.cfg.Currency,
		}, nil
	}
	if err != nil {
		return nil, &PersistenceError{Stage: "load settings", Err: err}
	}
	return settingToResponse(setting), nil
}

func (s *settingsService) Update(ctx context.Context, req dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	setting := &model.Setting{
		ShopName:   req.ShopName,
		LogoURL:    req.LogoURL,
		Address:    req.Address,
		Currency:   req.Currency,
		IncludeTax: req.IncludeTax,
	}
	if err := s.repo.Upsert(ctx, setting); err != nil {
		return nil, &PersistenceError{Stage: "save settings", Err: err}
	}
	return settingToResponse(setting), nil
}

func settingToResponse(m *model.Setting) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		ShopName:   m.ShopName,
		LogoURL:    m.LogoURL,
		Address:    m.Address,
		Currency:   m.Currency,
		IncludeTax: m.IncludeTax,
	}
}
