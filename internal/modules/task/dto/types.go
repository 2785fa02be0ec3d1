package dto

import "time"

type AddInput struct {
	Title              string
	Priority           string
	Quadrant           string
	GoalID             string
	Tags               []string
	PomodorosEstimated int
}

type TaskOutput struct {
	ID                 string
	Title              string
	Status             string
	Priority           string
	Quadrant           string
	GoalID             string
	Tags               []string
	PomodorosEstimated int
	PomodorosSpent     int
	CreatedAt          time.Time
	UpdatedAt          time.Time
	CompletedAt        time.Time
}
