package dto

import "time"

type AddInput struct {
	Title    string
	Category string
	Kind     string
}

type UpdateProgressInput struct {
	GoalID   string
	Progress int
}

type GoalOutput struct {
	ID             string
	Title          string
	Category       string
	Kind           string
	Status         string
	Progress       int
	PomodorosSpent int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
