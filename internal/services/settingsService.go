package services

import (
	"context"

	"github.com/rukundohamza104/radical-design-ltd/internal/models"
	"github.com/rukundohamza104/radical-design-ltd/internal/repositories"
)

// DefaultSettings seeds the singleton before the admin ever saves it.
func DefaultSettings() *models.AdminSettings {
	return &models.AdminSettings{
		Phone:           "0788 470 294",
		Address:         "Chic Building, 2nd Floor, Room F019C",
		Email:           "info@radicaldesign.com",
		MaintenanceMode: false,
	}
}

type SettingsService interface {
	Get(ctx context.Context) (*models.AdminSettings, error)
	Update(ctx context.Context, req models.UpdateSettingsRequest) (*models.AdminSettings, error)
}

type settingsService struct {
	settingsRepo repositories.SettingsRepository
}

func NewSettingsService(settingsRepo repositories.SettingsRepository) SettingsService {
	return &settingsService{settingsRepo: settingsRepo}
}

func (s *settingsService) Get(ctx context.Context) (*models.AdminSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return DefaultSettings(), nil
	}
	return settings, nil
}

// Update merges the provided fields into the current (or default) record and
// persists the result.
func (s *settingsService) Update(ctx context.Context, req models.UpdateSettingsRequest) (*models.AdminSettings, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if req.Phone != nil {
		settings.Phone = *req.Phone
	}
	if req.Address != nil {
		settings.Address = *req.Address
	}
	if req.Email != nil {
		settings.Email = *req.Email
	}
	if req.MaintenanceMode != nil {
		settings.MaintenanceMode = *req.MaintenanceMode
	}

	return s.settingsRepo.Replace(ctx, settings)
}
