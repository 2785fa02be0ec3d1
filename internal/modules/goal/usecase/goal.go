package usecase

import (
	"context"

	"tomado/internal/modules/goal/domain"
	"tomado/internal/modules/goal/dto"
	goalin "tomado/internal/modules/goal/port/in"
	"tomado/internal/modules/goal/service"
)

type Interactor struct {
	svc *service.GoalService
}

func NewInteractor(svc *service.GoalService) goalin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Add(ctx context.Context, input dto.AddInput) (dto.GoalOutput, error) {
	goal, err := i.svc.Add(ctx, input.Title, domain.Category(input.Category), domain.Kind(input.Kind))
	if err != nil {
		return dto.GoalOutput{}, err
	}
	return toOutput(goal), nil
}

func (i *Interactor) List(ctx context.Context) ([]dto.GoalOutput, error) {
	goals, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GoalOutput, 0, len(goals))
	for _, goal := range goals {
		out = append(out, toOutput(goal))
	}
	return out, nil
}

func (i *Interactor) Get(ctx context.Context, id string) (dto.GoalOutput, error) {
	goal, err := i.svc.Get(ctx, id)
	if err != nil {
		return dto.GoalOutput{}, err
	}
	return toOutput(goal), nil
}

func (i *Interactor) UpdateProgress(ctx context.Context, input dto.UpdateProgressInput) (dto.GoalOutput, error) {
	goal, err := i.svc.Mutate(ctx, input.GoalID, func(g *domain.Goal) {
		g.Progress = input.Progress
		if g.Progress >= 100 {
			g.Status = domain.StatusCompleted
		}
	})
	if err != nil {
		return dto.GoalOutput{}, err
	}
	return toOutput(goal), nil
}

func (i *Interactor) IncrementPomodorosSpent(ctx context.Context, id string) error {
	_, err := i.svc.Mutate(ctx, id, func(g *domain.Goal) {
		g.PomodorosSpent++
	})
	return err
}

func (i *Interactor) Remove(ctx context.Context, id string) error {
	return i.svc.Remove(ctx, id)
}

func (i *Interactor) Replace(ctx context.Context, goals []dto.GoalOutput) error {
	converted := make([]domain.Goal, 0, len(goals))
	for _, goal := range goals {
		converted = append(converted, domain.Goal{
			ID:             goal.ID,
			Title:          goal.Title,
			Category:       domain.Category(goal.Category),
			Kind:           domain.Kind(goal.Kind),
			Status:         domain.Status(goal.Status),
			Progress:       goal.Progress,
			PomodorosSpent: goal.PomodorosSpent,
			CreatedAt:      goal.CreatedAt,
			UpdatedAt:      goal.UpdatedAt,
		})
	}
	return i.svc.Replace(ctx, converted)
}

func (i *Interactor) Reset(ctx context.Context) error {
	return i.svc.Reset(ctx)
}

func toOutput(goal domain.Goal) dto.GoalOutput {
	return dto.GoalOutput{
		ID:             goal.ID,
		Title:          goal.Title,
		Category:       string(goal.Category),
		Kind:           string(goal.Kind),
		Status:         string(goal.Status),
		Progress:       goal.Progress,
		PomodorosSpent: goal.PomodorosSpent,
		CreatedAt:      goal.CreatedAt,
		UpdatedAt:      goal.UpdatedAt,
	}
}
