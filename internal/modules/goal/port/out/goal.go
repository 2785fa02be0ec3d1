package out

import (
	"context"

	"tomado/internal/modules/goal/domain"
)

// GoalStore persists the full goal collection as one unit. Stores replace
// the collection wholesale on Save so partial writes never leave a mixed
// generation on disk.
type GoalStore interface {
	Load(ctx context.Context) ([]domain.Goal, error)
	Save(ctx context.Context, goals []domain.Goal) error
	Clear(ctx context.Context) error
}
