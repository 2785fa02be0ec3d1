package out

import (
	"context"

	"tomado/internal/modules/settings/domain"
)

type Store interface {
	Load(ctx context.Context) (domain.Pomodoro, error)
	Save(ctx context.Context, settings domain.Pomodoro) error
}
