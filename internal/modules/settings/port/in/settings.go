package in

import (
	"context"

	"tomado/internal/modules/settings/dto"
)

type Usecase interface {
	Get(ctx context.Context) (dto.SettingsOutput, error)
	Update(ctx context.Context, input dto.UpdateInput) (dto.SettingsOutput, error)
	// Durations resolves the configured minute values into the policy the
	// engine consumes. Unresolvable or invalid settings yield
	// apperrors.ErrSettingsUnavailable.
	Durations(ctx context.Context) (dto.DurationsOutput, error)
}
