package apperrors

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrNotFound            = errors.New("not found")
	ErrSettingsUnavailable = errors.New("pomodoro settings are unavailable")
	ErrTaskNotFound        = errors.New("task not found")
	ErrGoalNotFound        = errors.New("goal not found")
	ErrHookNotFound        = errors.New("hook not found")
	ErrNoActiveSession     = errors.New("no active session")
)
