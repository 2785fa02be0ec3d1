package in

import (
	"context"

	"tomado/internal/modules/task/dto"
	taskin "tomado/internal/modules/task/port/in"
)

type CLIHandler struct {
	usecase taskin.Usecase
}

func NewCLIHandler(usecase taskin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, title, priority, quadrant, goalID string, tags []string, estimated int) (dto.TaskOutput, error) {
	return h.usecase.Add(ctx, dto.AddInput{
		Title:              title,
		Priority:           priority,
		Quadrant:           quadrant,
		GoalID:             goalID,
		Tags:               tags,
		PomodorosEstimated: estimated,
	})
}

func (h CLIHandler) List(ctx context.Context) ([]dto.TaskOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Complete(ctx context.Context, taskID string) (dto.TaskOutput, error) {
	return h.usecase.Complete(ctx, taskID)
}

func (h CLIHandler) Remove(ctx context.Context, taskID string) error {
	return h.usecase.Remove(ctx, taskID)
}

func (h CLIHandler) Replace(ctx context.Context, tasks []dto.TaskOutput) error {
	return h.usecase.Replace(ctx, tasks)
}

func (h CLIHandler) Reset(ctx context.Context) error {
	return h.usecase.Reset(ctx)
}
