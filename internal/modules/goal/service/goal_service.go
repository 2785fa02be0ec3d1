package service

import (
	"context"
	"strings"

	"tomado/internal/modules/goal/domain"
	goalout "tomado/internal/modules/goal/port/out"
	"tomado/internal/platform/clock"
	apperrors "tomado/internal/platform/errors"
	"tomado/internal/platform/id"
)

type GoalService struct {
	clock clock.Clock
	idGen id.Generator
	store goalout.GoalStore
}

func NewGoalService(clock clock.Clock, idGen id.Generator, store goalout.GoalStore) *GoalService {
	return &GoalService{clock: clock, idGen: idGen, store: store}
}

func (s *GoalService) Add(ctx context.Context, title string, category domain.Category, kind domain.Kind) (domain.Goal, error) {
	now := s.clock.Now()
	goal := domain.Goal{
		ID:        s.idGen.New(),
		Title:     strings.TrimSpace(title),
		Category:  category,
		Kind:      kind,
		Status:    domain.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := goal.Validate(); err != nil {
		return domain.Goal{}, err
	}
	goals, err := s.store.Load(ctx)
	if err != nil {
		return domain.Goal{}, err
	}
	goals = append(goals, goal)
	if err := s.store.Save(ctx, goals); err != nil {
		return domain.Goal{}, err
	}
	return goal, nil
}

func (s *GoalService) List(ctx context.Context) ([]domain.Goal, error) {
	return s.store.Load(ctx)
}

func (s *GoalService) Get(ctx context.Context, goalID string) (domain.Goal, error) {
	goals, err := s.store.Load(ctx)
	if err != nil {
		return domain.Goal{}, err
	}
	for _, goal := range goals {
		if goal.ID == goalID {
			return goal, nil
		}
	}
	return domain.Goal{}, apperrors.ErrGoalNotFound
}

// Mutate applies fn to the goal with the given id and saves the collection.
func (s *GoalService) Mutate(ctx context.Context, goalID string, fn func(*domain.Goal)) (domain.Goal, error) {
	goals, err := s.store.Load(ctx)
	if err != nil {
		return domain.Goal{}, err
	}
	for i := range goals {
		if goals[i].ID != goalID {
			continue
		}
		fn(&goals[i])
		goals[i].UpdatedAt = s.clock.Now()
		if err := goals[i].Validate(); err != nil {
			return domain.Goal{}, err
		}
		if err := s.store.Save(ctx, goals); err != nil {
			return domain.Goal{}, err
		}
		return goals[i], nil
	}
	return domain.Goal{}, apperrors.ErrGoalNotFound
}

func (s *GoalService) Remove(ctx context.Context, goalID string) error {
	goals, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	kept := goals[:0]
	found := false
	for _, goal := range goals {
		if goal.ID == goalID {
			found = true
			continue
		}
		kept = append(kept, goal)
	}
	if !found {
		return apperrors.ErrGoalNotFound
	}
	return s.store.Save(ctx, kept)
}

func (s *GoalService) Replace(ctx context.Context, goals []domain.Goal) error {
	for _, goal := range goals {
		if err := goal.Validate(); err != nil {
			return err
		}
	}
	return s.store.Save(ctx, goals)
}

func (s *GoalService) Reset(ctx context.Context) error {
	return s.store.Clear(ctx)
}
