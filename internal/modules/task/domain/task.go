package domain

import (
	"fmt"
	"strings"
	"time"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Quadrant places a task on the urgency/importance matrix.
type Quadrant string

const (
	QuadrantUrgentImportant       Quadrant = "urgent_important"
	QuadrantNotUrgentImportant    Quadrant = "not_urgent_important"
	QuadrantUrgentNotImportant    Quadrant = "urgent_not_important"
	QuadrantNotUrgentNotImportant Quadrant = "not_urgent_not_important"
)

type Task struct {
	ID                 string
	Title              string
	Status             Status
	Priority           Priority
	Quadrant           Quadrant
	GoalID             string
	Tags               []string
	PomodorosEstimated int
	PomodorosSpent     int
	CreatedAt          time.Time
	UpdatedAt          time.Time
	CompletedAt        time.Time
}

func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusInProgress, StatusDone:
		return nil
	default:
		return fmt.Errorf("unsupported task status %q", string(s))
	}
}

func (p Priority) Validate() error {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return nil
	default:
		return fmt.Errorf("unsupported task priority %q", string(p))
	}
}

func (q Quadrant) Validate() error {
	switch q {
	case QuadrantUrgentImportant, QuadrantNotUrgentImportant,
		QuadrantUrgentNotImportant, QuadrantNotUrgentNotImportant:
		return nil
	default:
		return fmt.Errorf("unsupported task quadrant %q", string(q))
	}
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if err := t.Status.Validate(); err != nil {
		return err
	}
	if err := t.Priority.Validate(); err != nil {
		return err
	}
	if err := t.Quadrant.Validate(); err != nil {
		return err
	}
	if t.PomodorosEstimated < 0 {
		return fmt.Errorf("pomodoros estimated must not be negative")
	}
	if t.PomodorosSpent < 0 {
		return fmt.Errorf("pomodoros spent must not be negative")
	}
	return nil
}
