package out

import (
	"context"

	"tomado/internal/modules/task/domain"
)

// TaskStore persists the full task collection as one unit.
type TaskStore interface {
	Load(ctx context.Context) ([]domain.Task, error)
	Save(ctx context.Context, tasks []domain.Task) error
	Clear(ctx context.Context) error
}
