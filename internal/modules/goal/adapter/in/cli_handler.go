package in

import (
	"context"

	"tomado/internal/modules/goal/dto"
	goalin "tomado/internal/modules/goal/port/in"
)

type CLIHandler struct {
	usecase goalin.Usecase
}

func NewCLIHandler(usecase goalin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, title, category, kind string) (dto.GoalOutput, error) {
	return h.usecase.Add(ctx, dto.AddInput{Title: title, Category: category, Kind: kind})
}

func (h CLIHandler) List(ctx context.Context) ([]dto.GoalOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) UpdateProgress(ctx context.Context, goalID string, progress int) (dto.GoalOutput, error) {
	return h.usecase.UpdateProgress(ctx, dto.UpdateProgressInput{GoalID: goalID, Progress: progress})
}

func (h CLIHandler) Remove(ctx context.Context, goalID string) error {
	return h.usecase.Remove(ctx, goalID)
}

func (h CLIHandler) Replace(ctx context.Context, goals []dto.GoalOutput) error {
	return h.usecase.Replace(ctx, goals)
}

func (h CLIHandler) Reset(ctx context.Context) error {
	return h.usecase.Reset(ctx)
}
