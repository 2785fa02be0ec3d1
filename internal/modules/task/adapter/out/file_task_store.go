package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tomado/internal/modules/task/domain"
	taskout "tomado/internal/modules/task/port/out"
)

type FileTaskStore struct {
	path string
}

func NewFileTaskStore(homePath string) taskout.TaskStore {
	return &FileTaskStore{path: filepath.Join(homePath, "tasks.json")}
}

type storedTask struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	Status             string     `json:"status"`
	Priority           string     `json:"priority"`
	Quadrant           string     `json:"quadrant"`
	GoalID             string     `json:"goalId,omitempty"`
	Tags               []string   `json:"tags,omitempty"`
	PomodorosEstimated int        `json:"pomodorosEstimated"`
	PomodorosSpent     int        `json:"pomodorosSpent"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
	CompletedAt        *time.Time `json:"completedAt,omitempty"`
}

func (s *FileTaskStore) Load(_ context.Context) ([]domain.Task, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read tasks: %w", err)
	}
	stored := []storedTask{}
	if err := json.Unmarshal(payload, &stored); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	tasks := make([]domain.Task, 0, len(stored))
	for _, t := range stored {
		task := domain.Task{
			ID:                 t.ID,
			Title:              t.Title,
			Status:             domain.Status(t.Status),
			Priority:           domain.Priority(t.Priority),
			Quadrant:           domain.Quadrant(t.Quadrant),
			GoalID:             t.GoalID,
			Tags:               t.Tags,
			PomodorosEstimated: t.PomodorosEstimated,
			PomodorosSpent:     t.PomodorosSpent,
			CreatedAt:          t.CreatedAt,
			UpdatedAt:          t.UpdatedAt,
		}
		if t.CompletedAt != nil {
			task.CompletedAt = *t.CompletedAt
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (s *FileTaskStore) Save(_ context.Context, tasks []domain.Task) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create tasks dir: %w", err)
	}
	stored := make([]storedTask, 0, len(tasks))
	for _, t := range tasks {
		entry := storedTask{
			ID:                 t.ID,
			Title:              t.Title,
			Status:             string(t.Status),
			Priority:           string(t.Priority),
			Quadrant:           string(t.Quadrant),
			GoalID:             t.GoalID,
			Tags:               t.Tags,
			PomodorosEstimated: t.PomodorosEstimated,
			PomodorosSpent:     t.PomodorosSpent,
			CreatedAt:          t.CreatedAt,
			UpdatedAt:          t.UpdatedAt,
		}
		if !t.CompletedAt.IsZero() {
			completed := t.CompletedAt
			entry.CompletedAt = &completed
		}
		stored = append(stored, entry)
	}
	payload, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write tasks: %w", err)
	}
	return nil
}

func (s *FileTaskStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("clear tasks: %w", err)
	}
	return nil
}
