package dto

import "time"

// Event is the payload delivered to subscribed hooks.
type Event struct {
	Kind      string
	SessionID string
	TaskID    string
	TaskTitle string
	At        time.Time
	Completed bool
	IsLong    bool
}

type HookInfo struct {
	Name    string
	Version string
	Enabled bool
	Binary  string
	Events  []string
}

type DoctorResult struct {
	Name            string
	ChecksumValid   bool
	BinaryReachable bool
	LifecycleOK     bool
	Error           string
}
