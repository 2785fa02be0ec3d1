package in

import (
	"context"

	"tomado/internal/modules/goal/dto"
)

type Usecase interface {
	Add(ctx context.Context, input dto.AddInput) (dto.GoalOutput, error)
	List(ctx context.Context) ([]dto.GoalOutput, error)
	Get(ctx context.Context, id string) (dto.GoalOutput, error)
	UpdateProgress(ctx context.Context, input dto.UpdateProgressInput) (dto.GoalOutput, error)
	IncrementPomodorosSpent(ctx context.Context, id string) error
	Remove(ctx context.Context, id string) error
	Replace(ctx context.Context, goals []dto.GoalOutput) error
	Reset(ctx context.Context) error
}
