package domain

import (
	"errors"
	"fmt"
	"regexp"
)

// EventKind names a lifecycle moment hooks can subscribe to.
type EventKind string

const (
	EventSessionStarted   EventKind = "session_started"
	EventSessionCompleted EventKind = "session_completed"
	EventSessionAborted   EventKind = "session_aborted"
	EventBreakStarted     EventKind = "break_started"
	EventBreakEnded       EventKind = "break_ended"
)

var (
	ErrHookDisabled     = errors.New("hook is disabled")
	ErrChecksumMismatch = errors.New("hook checksum mismatch")
	ErrHookTimeout      = errors.New("hook timeout")
)

var sha256Pattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

type Manifest struct {
	Name    string      `json:"name"`
	Version string      `json:"version"`
	Binary  string      `json:"binary"`
	SHA256  string      `json:"sha256"`
	Enabled bool        `json:"enabled"`
	Events  []EventKind `json:"events"`
}

func (k EventKind) Validate() error {
	switch k {
	case EventSessionStarted, EventSessionCompleted, EventSessionAborted,
		EventBreakStarted, EventBreakEnded:
		return nil
	default:
		return fmt.Errorf("unknown event kind: %s", k)
	}
}

func (m Manifest) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("hook name is required")
	}
	if m.Version == "" {
		return fmt.Errorf("hook version is required")
	}
	if m.Binary == "" {
		return fmt.Errorf("hook binary path is required")
	}
	if !sha256Pattern.MatchString(m.SHA256) {
		return fmt.Errorf("hook sha256 must be lowercase 64-char hex")
	}
	if len(m.Events) == 0 {
		return fmt.Errorf("hook events are required")
	}
	seen := map[EventKind]struct{}{}
	for _, kind := range m.Events {
		if err := kind.Validate(); err != nil {
			return err
		}
		if _, ok := seen[kind]; ok {
			return fmt.Errorf("duplicate event kind: %s", kind)
		}
		seen[kind] = struct{}{}
	}
	return nil
}

func (m Manifest) SubscribedTo(kind EventKind) bool {
	for _, k := range m.Events {
		if k == kind {
			return true
		}
	}
	return false
}

type Metadata struct {
	Name    string
	Version string
	Events  []EventKind
}

// Event is the payload a hook binary receives on dispatch.
type Event struct {
	Kind      EventKind
	SessionID string
	TaskID    string
	TaskTitle string
	AtUnix    int64
	Completed bool
	IsLong    bool
}
