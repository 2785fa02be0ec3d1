package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tomado/internal/modules/goal/domain"
	goalout "tomado/internal/modules/goal/port/out"
)

type FileGoalStore struct {
	path string
}

func NewFileGoalStore(homePath string) goalout.GoalStore {
	return &FileGoalStore{path: filepath.Join(homePath, "goals.json")}
}

type storedGoal struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Category       string    `json:"category"`
	Kind           string    `json:"kind"`
	Status         string    `json:"status"`
	Progress       int       `json:"progress"`
	PomodorosSpent int       `json:"pomodorosSpent"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (s *FileGoalStore) Load(_ context.Context) ([]domain.Goal, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read goals: %w", err)
	}
	stored := []storedGoal{}
	if err := json.Unmarshal(payload, &stored); err != nil {
		return nil, fmt.Errorf("decode goals: %w", err)
	}
	goals := make([]domain.Goal, 0, len(stored))
	for _, g := range stored {
		goals = append(goals, domain.Goal{
			ID:             g.ID,
			Title:          g.Title,
			Category:       domain.Category(g.Category),
			Kind:           domain.Kind(g.Kind),
			Status:         domain.Status(g.Status),
			Progress:       g.Progress,
			PomodorosSpent: g.PomodorosSpent,
			CreatedAt:      g.CreatedAt,
			UpdatedAt:      g.UpdatedAt,
		})
	}
	return goals, nil
}

func (s *FileGoalStore) Save(_ context.Context, goals []domain.Goal) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create goals dir: %w", err)
	}
	stored := make([]storedGoal, 0, len(goals))
	for _, g := range goals {
		stored = append(stored, storedGoal{
			ID:             g.ID,
			Title:          g.Title,
			Category:       string(g.Category),
			Kind:           string(g.Kind),
			Status:         string(g.Status),
			Progress:       g.Progress,
			PomodorosSpent: g.PomodorosSpent,
			CreatedAt:      g.CreatedAt,
			UpdatedAt:      g.UpdatedAt,
		})
	}
	payload, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal goals: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write goals: %w", err)
	}
	return nil
}

func (s *FileGoalStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("clear goals: %w", err)
	}
	return nil
}
