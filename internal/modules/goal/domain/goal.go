package domain

import (
	"fmt"
	"strings"
	"time"
)

type Category string

const (
	CategoryWork     Category = "work"
	CategoryStudy    Category = "study"
	CategoryHealth   Category = "health"
	CategoryPersonal Category = "personal"
)

type Kind string

const (
	KindShortTerm Kind = "short_term"
	KindLongTerm  Kind = "long_term"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusArchived  Status = "archived"
)

type Goal struct {
	ID             string
	Title          string
	Category       Category
	Kind           Kind
	Status         Status
	Progress       int
	PomodorosSpent int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (c Category) Validate() error {
	switch c {
	case CategoryWork, CategoryStudy, CategoryHealth, CategoryPersonal:
		return nil
	default:
		return fmt.Errorf("unsupported goal category %q", string(c))
	}
}

func (k Kind) Validate() error {
	switch k {
	case KindShortTerm, KindLongTerm:
		return nil
	default:
		return fmt.Errorf("unsupported goal kind %q", string(k))
	}
}

func (s Status) Validate() error {
	switch s {
	case StatusActive, StatusCompleted, StatusArchived:
		return nil
	default:
		return fmt.Errorf("unsupported goal status %q", string(s))
	}
}

func (g Goal) Validate() error {
	if strings.TrimSpace(g.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(g.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if err := g.Category.Validate(); err != nil {
		return err
	}
	if err := g.Kind.Validate(); err != nil {
		return err
	}
	if err := g.Status.Validate(); err != nil {
		return err
	}
	if g.Progress < 0 || g.Progress > 100 {
		return fmt.Errorf("progress must be within 0..100")
	}
	return nil
}
