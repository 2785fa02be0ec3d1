package service

import (
	"context"
	"fmt"

	"tomado/internal/modules/settings/domain"
	settingsout "tomado/internal/modules/settings/port/out"
)

type SettingsService struct {
	store settingsout.Store
}

func NewSettingsService(store settingsout.Store) *SettingsService {
	return &SettingsService{store: store}
}

// Resolve loads and validates the stored settings.
func (s *SettingsService) Resolve(ctx context.Context) (domain.Pomodoro, error) {
	settings, err := s.store.Load(ctx)
	if err != nil {
		return domain.Pomodoro{}, fmt.Errorf("load settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return domain.Pomodoro{}, fmt.Errorf("validate settings: %w", err)
	}
	return settings, nil
}

func (s *SettingsService) Update(ctx context.Context, apply func(*domain.Pomodoro)) (domain.Pomodoro, error) {
	settings, err := s.store.Load(ctx)
	if err != nil {
		return domain.Pomodoro{}, fmt.Errorf("load settings: %w", err)
	}
	apply(&settings)
	if err := settings.Validate(); err != nil {
		return domain.Pomodoro{}, fmt.Errorf("validate settings: %w", err)
	}
	if err := s.store.Save(ctx, settings); err != nil {
		return domain.Pomodoro{}, fmt.Errorf("save settings: %w", err)
	}
	return settings, nil
}
