package service

import (
	"context"
	"strings"
	"time"

	"tomado/internal/modules/task/domain"
	taskout "tomado/internal/modules/task/port/out"
	"tomado/internal/platform/clock"
	apperrors "tomado/internal/platform/errors"
	"tomado/internal/platform/id"
)

type TaskService struct {
	clock clock.Clock
	idGen id.Generator
	store taskout.TaskStore
}

func NewTaskService(clock clock.Clock, idGen id.Generator, store taskout.TaskStore) *TaskService {
	return &TaskService{clock: clock, idGen: idGen, store: store}
}

func (s *TaskService) Now() time.Time {
	return s.clock.Now()
}

func (s *TaskService) Add(ctx context.Context, input domain.Task) (domain.Task, error) {
	now := s.clock.Now()
	task := input
	task.ID = s.idGen.New()
	task.Title = strings.TrimSpace(task.Title)
	task.Status = domain.StatusPending
	if task.Priority == "" {
		task.Priority = domain.PriorityMedium
	}
	if task.Quadrant == "" {
		task.Quadrant = domain.QuadrantNotUrgentImportant
	}
	task.CreatedAt = now
	task.UpdatedAt = now
	if err := task.Validate(); err != nil {
		return domain.Task{}, err
	}
	tasks, err := s.store.Load(ctx)
	if err != nil {
		return domain.Task{}, err
	}
	tasks = append(tasks, task)
	if err := s.store.Save(ctx, tasks); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

func (s *TaskService) List(ctx context.Context) ([]domain.Task, error) {
	return s.store.Load(ctx)
}

func (s *TaskService) Get(ctx context.Context, taskID string) (domain.Task, error) {
	tasks, err := s.store.Load(ctx)
	if err != nil {
		return domain.Task{}, err
	}
	for _, task := range tasks {
		if task.ID == taskID {
			return task, nil
		}
	}
	return domain.Task{}, apperrors.ErrTaskNotFound
}

// Mutate applies fn to the task with the given id and saves the collection.
func (s *TaskService) Mutate(ctx context.Context, taskID string, fn func(*domain.Task)) (domain.Task, error) {
	tasks, err := s.store.Load(ctx)
	if err != nil {
		return domain.Task{}, err
	}
	for i := range tasks {
		if tasks[i].ID != taskID {
			continue
		}
		fn(&tasks[i])
		tasks[i].UpdatedAt = s.clock.Now()
		if err := tasks[i].Validate(); err != nil {
			return domain.Task{}, err
		}
		if err := s.store.Save(ctx, tasks); err != nil {
			return domain.Task{}, err
		}
		return tasks[i], nil
	}
	return domain.Task{}, apperrors.ErrTaskNotFound
}

func (s *TaskService) Remove(ctx context.Context, taskID string) error {
	tasks, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	kept := tasks[:0]
	found := false
	for _, task := range tasks {
		if task.ID == taskID {
			found = true
			continue
		}
		kept = append(kept, task)
	}
	if !found {
		return apperrors.ErrTaskNotFound
	}
	return s.store.Save(ctx, kept)
}

func (s *TaskService) Replace(ctx context.Context, tasks []domain.Task) error {
	for _, task := range tasks {
		if err := task.Validate(); err != nil {
			return err
		}
	}
	return s.store.Save(ctx, tasks)
}

func (s *TaskService) Reset(ctx context.Context) error {
	return s.store.Clear(ctx)
}
