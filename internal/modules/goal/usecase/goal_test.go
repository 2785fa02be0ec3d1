package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"tomado/internal/modules/goal/domain"
	"tomado/internal/modules/goal/dto"
	"tomado/internal/modules/goal/service"
	"tomado/internal/platform/clock"
	apperrors "tomado/internal/platform/errors"
	"tomado/internal/platform/id"
)

type fakeGoalStore struct {
	goals   []domain.Goal
	cleared bool
}

func (f *fakeGoalStore) Load(context.Context) ([]domain.Goal, error) {
	return append([]domain.Goal(nil), f.goals...), nil
}

func (f *fakeGoalStore) Save(_ context.Context, goals []domain.Goal) error {
	f.goals = append([]domain.Goal(nil), goals...)
	return nil
}

func (f *fakeGoalStore) Clear(context.Context) error {
	f.goals = nil
	f.cleared = true
	return nil
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var _ clock.Clock = fixedClock{}

func newGoalInteractor(store *fakeGoalStore) *Interactor {
	svc := service.NewGoalService(fixedClock{now: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)}, id.UUID{}, store)
	return &Interactor{svc: svc}
}

func TestAddAndIncrement(t *testing.T) {
	t.Parallel()
	store := &fakeGoalStore{}
	interactor := newGoalInteractor(store)
	ctx := context.Background()

	goal, err := interactor.Add(ctx, dto.AddInput{Title: "Ship v1", Category: "work", Kind: "short_term"})
	if err != nil {
		t.Fatalf("add goal: %v", err)
	}
	if goal.Status != string(domain.StatusActive) {
		t.Fatalf("expected active status, got %q", goal.Status)
	}

	if err := interactor.IncrementPomodorosSpent(ctx, goal.ID); err != nil {
		t.Fatalf("increment: %v", err)
	}
	if err := interactor.IncrementPomodorosSpent(ctx, goal.ID); err != nil {
		t.Fatalf("increment: %v", err)
	}

	got, err := interactor.Get(ctx, goal.ID)
	if err != nil {
		t.Fatalf("get goal: %v", err)
	}
	if got.PomodorosSpent != 2 {
		t.Fatalf("expected 2 pomodoros spent, got %d", got.PomodorosSpent)
	}
}

func TestUpdateProgressCompletesAtHundred(t *testing.T) {
	t.Parallel()
	store := &fakeGoalStore{}
	interactor := newGoalInteractor(store)
	ctx := context.Background()

	goal, err := interactor.Add(ctx, dto.AddInput{Title: "Read the book", Category: "study", Kind: "long_term"})
	if err != nil {
		t.Fatalf("add goal: %v", err)
	}
	updated, err := interactor.UpdateProgress(ctx, dto.UpdateProgressInput{GoalID: goal.ID, Progress: 100})
	if err != nil {
		t.Fatalf("update progress: %v", err)
	}
	if updated.Status != string(domain.StatusCompleted) {
		t.Fatalf("expected completed status, got %q", updated.Status)
	}
}

func TestIncrementUnknownGoal(t *testing.T) {
	t.Parallel()
	interactor := newGoalInteractor(&fakeGoalStore{})

	err := interactor.IncrementPomodorosSpent(context.Background(), "missing")
	if !errors.Is(err, apperrors.ErrGoalNotFound) {
		t.Fatalf("expected ErrGoalNotFound, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	t.Parallel()
	store := &fakeGoalStore{}
	interactor := newGoalInteractor(store)
	ctx := context.Background()

	goal, err := interactor.Add(ctx, dto.AddInput{Title: "Run weekly", Category: "health", Kind: "short_term"})
	if err != nil {
		t.Fatalf("add goal: %v", err)
	}
	if err := interactor.Remove(ctx, goal.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	goals, err := interactor.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(goals) != 0 {
		t.Fatalf("expected empty list, got %d goals", len(goals))
	}
}
