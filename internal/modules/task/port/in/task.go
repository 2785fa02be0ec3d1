package in

import (
	"context"

	"tomado/internal/modules/task/dto"
)

type Usecase interface {
	Add(ctx context.Context, input dto.AddInput) (dto.TaskOutput, error)
	List(ctx context.Context) ([]dto.TaskOutput, error)
	Get(ctx context.Context, id string) (dto.TaskOutput, error)
	Complete(ctx context.Context, id string) (dto.TaskOutput, error)
	Remove(ctx context.Context, id string) error
	// IncrementPomodorosSpent bumps the task counter and, when the task is
	// linked to a goal, the goal counter as well.
	IncrementPomodorosSpent(ctx context.Context, id string) error
	Replace(ctx context.Context, tasks []dto.TaskOutput) error
	Reset(ctx context.Context) error
}
