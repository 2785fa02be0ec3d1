package usecase

import (
	"context"

	goalin "tomado/internal/modules/goal/port/in"
	"tomado/internal/modules/task/domain"
	"tomado/internal/modules/task/dto"
	taskin "tomado/internal/modules/task/port/in"
	"tomado/internal/modules/task/service"
)

type Interactor struct {
	svc   *service.TaskService
	goals goalin.Usecase
}

func NewInteractor(svc *service.TaskService, goals goalin.Usecase) taskin.Usecase {
	return &Interactor{svc: svc, goals: goals}
}

func (i *Interactor) Add(ctx context.Context, input dto.AddInput) (dto.TaskOutput, error) {
	if input.GoalID != "" && i.goals != nil {
		if _, err := i.goals.Get(ctx, input.GoalID); err != nil {
			return dto.TaskOutput{}, err
		}
	}
	task, err := i.svc.Add(ctx, domain.Task{
		Title:              input.Title,
		Priority:           domain.Priority(input.Priority),
		Quadrant:           domain.Quadrant(input.Quadrant),
		GoalID:             input.GoalID,
		Tags:               input.Tags,
		PomodorosEstimated: input.PomodorosEstimated,
	})
	if err != nil {
		return dto.TaskOutput{}, err
	}
	return toOutput(task), nil
}

func (i *Interactor) List(ctx context.Context) ([]dto.TaskOutput, error) {
	tasks, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TaskOutput, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, toOutput(task))
	}
	return out, nil
}

func (i *Interactor) Get(ctx context.Context, id string) (dto.TaskOutput, error) {
	task, err := i.svc.Get(ctx, id)
	if err != nil {
		return dto.TaskOutput{}, err
	}
	return toOutput(task), nil
}

func (i *Interactor) Complete(ctx context.Context, id string) (dto.TaskOutput, error) {
	now := i.svc.Now()
	task, err := i.svc.Mutate(ctx, id, func(t *domain.Task) {
		t.Status = domain.StatusDone
		t.CompletedAt = now
	})
	if err != nil {
		return dto.TaskOutput{}, err
	}
	return toOutput(task), nil
}

func (i *Interactor) Remove(ctx context.Context, id string) error {
	return i.svc.Remove(ctx, id)
}

func (i *Interactor) IncrementPomodorosSpent(ctx context.Context, id string) error {
	task, err := i.svc.Mutate(ctx, id, func(t *domain.Task) {
		t.PomodorosSpent++
		if t.Status == domain.StatusPending {
			t.Status = domain.StatusInProgress
		}
	})
	if err != nil {
		return err
	}
	if task.GoalID != "" && i.goals != nil {
		return i.goals.IncrementPomodorosSpent(ctx, task.GoalID)
	}
	return nil
}

func (i *Interactor) Replace(ctx context.Context, tasks []dto.TaskOutput) error {
	converted := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		converted = append(converted, domain.Task{
			ID:                 task.ID,
			Title:              task.Title,
			Status:             domain.Status(task.Status),
			Priority:           domain.Priority(task.Priority),
			Quadrant:           domain.Quadrant(task.Quadrant),
			GoalID:             task.GoalID,
			Tags:               task.Tags,
			PomodorosEstimated: task.PomodorosEstimated,
			PomodorosSpent:     task.PomodorosSpent,
			CreatedAt:          task.CreatedAt,
			UpdatedAt:          task.UpdatedAt,
			CompletedAt:        task.CompletedAt,
		})
	}
	return i.svc.Replace(ctx, converted)
}

func (i *Interactor) Reset(ctx context.Context) error {
	return i.svc.Reset(ctx)
}

func toOutput(task domain.Task) dto.TaskOutput {
	return dto.TaskOutput{
		ID:                 task.ID,
		Title:              task.Title,
		Status:             string(task.Status),
		Priority:           string(task.Priority),
		Quadrant:           string(task.Quadrant),
		GoalID:             task.GoalID,
		Tags:               task.Tags,
		PomodorosEstimated: task.PomodorosEstimated,
		PomodorosSpent:     task.PomodorosSpent,
		CreatedAt:          task.CreatedAt,
		UpdatedAt:          task.UpdatedAt,
		CompletedAt:        task.CompletedAt,
	}
}
