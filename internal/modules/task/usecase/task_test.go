package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	goaldto "tomado/internal/modules/goal/dto"
	"tomado/internal/modules/task/domain"
	"tomado/internal/modules/task/dto"
	"tomado/internal/modules/task/service"
	apperrors "tomado/internal/platform/errors"
	"tomado/internal/platform/id"
)

type fakeTaskStore struct {
	tasks []domain.Task
}

func (f *fakeTaskStore) Load(context.Context) ([]domain.Task, error) {
	return append([]domain.Task(nil), f.tasks...), nil
}

func (f *fakeTaskStore) Save(_ context.Context, tasks []domain.Task) error {
	f.tasks = append([]domain.Task(nil), tasks...)
	return nil
}

func (f *fakeTaskStore) Clear(context.Context) error {
	f.tasks = nil
	return nil
}

type fakeGoals struct {
	known      map[string]bool
	increments []string
}

func (f *fakeGoals) Add(context.Context, goaldto.AddInput) (goaldto.GoalOutput, error) {
	return goaldto.GoalOutput{}, nil
}

func (f *fakeGoals) List(context.Context) ([]goaldto.GoalOutput, error) { return nil, nil }

func (f *fakeGoals) Get(_ context.Context, id string) (goaldto.GoalOutput, error) {
	if !f.known[id] {
		return goaldto.GoalOutput{}, apperrors.ErrGoalNotFound
	}
	return goaldto.GoalOutput{ID: id}, nil
}

func (f *fakeGoals) UpdateProgress(context.Context, goaldto.UpdateProgressInput) (goaldto.GoalOutput, error) {
	return goaldto.GoalOutput{}, nil
}

func (f *fakeGoals) IncrementPomodorosSpent(_ context.Context, id string) error {
	f.increments = append(f.increments, id)
	return nil
}

func (f *fakeGoals) Remove(context.Context, string) error                { return nil }
func (f *fakeGoals) Replace(context.Context, []goaldto.GoalOutput) error { return nil }
func (f *fakeGoals) Reset(context.Context) error                         { return nil }

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func newTaskInteractor(store *fakeTaskStore, goals *fakeGoals) *Interactor {
	svc := service.NewTaskService(fixedClock{now: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)}, id.UUID{}, store)
	return &Interactor{svc: svc, goals: goals}
}

func TestIncrementChainsToLinkedGoal(t *testing.T) {
	t.Parallel()
	goals := &fakeGoals{known: map[string]bool{"goal-1": true}}
	interactor := newTaskInteractor(&fakeTaskStore{}, goals)
	ctx := context.Background()

	task, err := interactor.Add(ctx, dto.AddInput{Title: "Write chapter", GoalID: "goal-1"})
	if err != nil {
		t.Fatalf("add task: %v", err)
	}
	if err := interactor.IncrementPomodorosSpent(ctx, task.ID); err != nil {
		t.Fatalf("increment: %v", err)
	}

	got, err := interactor.Get(ctx, task.ID)
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if got.PomodorosSpent != 1 {
		t.Fatalf("expected 1 pomodoro spent, got %d", got.PomodorosSpent)
	}
	if got.Status != string(domain.StatusInProgress) {
		t.Fatalf("expected in_progress after first pomodoro, got %q", got.Status)
	}
	if len(goals.increments) != 1 || goals.increments[0] != "goal-1" {
		t.Fatalf("expected one goal increment for goal-1, got %v", goals.increments)
	}
}

func TestIncrementWithoutGoalLeavesGoalsAlone(t *testing.T) {
	t.Parallel()
	goals := &fakeGoals{}
	interactor := newTaskInteractor(&fakeTaskStore{}, goals)
	ctx := context.Background()

	task, err := interactor.Add(ctx, dto.AddInput{Title: "Inbox zero"})
	if err != nil {
		t.Fatalf("add task: %v", err)
	}
	if err := interactor.IncrementPomodorosSpent(ctx, task.ID); err != nil {
		t.Fatalf("increment: %v", err)
	}
	if len(goals.increments) != 0 {
		t.Fatalf("expected no goal increments, got %v", goals.increments)
	}
}

func TestAddRejectsUnknownGoal(t *testing.T) {
	t.Parallel()
	interactor := newTaskInteractor(&fakeTaskStore{}, &fakeGoals{})

	_, err := interactor.Add(context.Background(), dto.AddInput{Title: "Orphan", GoalID: "missing"})
	if !errors.Is(err, apperrors.ErrGoalNotFound) {
		t.Fatalf("expected ErrGoalNotFound, got %v", err)
	}
}

func TestCompleteStampsTimestamp(t *testing.T) {
	t.Parallel()
	interactor := newTaskInteractor(&fakeTaskStore{}, &fakeGoals{})
	ctx := context.Background()

	task, err := interactor.Add(ctx, dto.AddInput{Title: "Review PR"})
	if err != nil {
		t.Fatalf("add task: %v", err)
	}
	done, err := interactor.Complete(ctx, task.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if done.Status != string(domain.StatusDone) {
		t.Fatalf("expected done status, got %q", done.Status)
	}
	if done.CompletedAt.IsZero() {
		t.Fatal("expected completed timestamp to be set")
	}
}

func TestIncrementUnknownTask(t *testing.T) {
	t.Parallel()
	interactor := newTaskInteractor(&fakeTaskStore{}, &fakeGoals{})

	err := interactor.IncrementPomodorosSpent(context.Background(), "missing")
	if !errors.Is(err, apperrors.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}
