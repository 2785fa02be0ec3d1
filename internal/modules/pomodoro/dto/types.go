package dto

import "time"

type StartInput struct {
	TaskID    string
	TaskTitle string
}

type StopInput struct {
	Completed bool
}

type BreakInput struct {
	// IsLong nil falls back to the engine's pending long-break flag.
	IsLong *bool
}

type InterruptionInput struct {
	Reason string
	Kind   string
}

type InterruptionOutput struct {
	ID     string
	At     time.Time
	Reason string
	Kind   string
}

// SessionOutput is the display snapshot of the engine. Applied reports
// whether the operation that produced it changed anything; a silently
// ignored transition returns the unchanged snapshot with Applied=false.
type SessionOutput struct {
	Status           string
	SessionID        string
	TaskID           string
	TaskTitle        string
	TimeLeft         int
	Total            int
	IsLongBreak      bool
	CompletedInCycle int
	Interruptions    []InterruptionOutput
	Notes            string
	Applied          bool
}

type RecordOutput struct {
	ID              string
	TaskID          string
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes int
	Completed       bool
	Notes           string
	Interruptions   []InterruptionOutput
}

type StopOutput struct {
	Record           RecordOutput
	NotePath         string
	AutoBreakStarted bool
	Session          SessionOutput
}

type TickOutput struct {
	// Expired is "", "work" or "break".
	Expired string
	// Stop carries the archived record when a work countdown expired.
	Stop    *StopOutput
	Session SessionOutput
}

type SummaryOutput struct {
	Day          time.Time
	Total        int
	Completed    int
	FocusMinutes float64
}

type RestoreOutput struct {
	Outcome     string
	RecordCount int
}

type TaskTotalOutput struct {
	TaskID       string
	Sessions     int
	FocusMinutes float64
}

type SnapshotOutput struct {
	Records          []RecordOutput
	CompletedInCycle int
}

type SnapshotInput struct {
	Records          []RecordOutput
	CompletedInCycle int
}
