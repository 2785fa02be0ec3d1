package domain

import "time"

type Status string

const (
	StatusIdle    Status = "idle"
	StatusWorking Status = "working"
	StatusPaused  Status = "paused"
	StatusBreak   Status = "break"
)

func (s Status) Active() bool {
	return s == StatusWorking || s == StatusBreak
}

type InterruptionKind string

const (
	InterruptionInternal InterruptionKind = "internal"
	InterruptionExternal InterruptionKind = "external"
)

func (k InterruptionKind) Valid() bool {
	return k == InterruptionInternal || k == InterruptionExternal
}

type Interruption struct {
	ID     string
	At     time.Time
	Reason string
	Kind   InterruptionKind
}

// Outcome reports whether an operation changed the session. Invalid
// transitions are silently ignored, not rejected; callers that need to
// distinguish inspect the outcome.
type Outcome int

const (
	Ignored Outcome = iota
	Applied
)

type TickResult int

const (
	TickIgnored TickResult = iota
	TickCounted
	TickWorkExpired
	TickBreakExpired
)

// Session is the single mutable focus/break timer state. All timing values
// are whole seconds. Transitions go through the methods below; durations are
// resolved by the caller so the state machine stays settings-free.
type Session struct {
	Status           Status
	SessionID        string
	ActiveTaskID     string
	ActiveTaskTitle  string
	TimeLeft         int
	Total            int
	IsLongBreak      bool
	CompletedInCycle int
	Interruptions    []Interruption
	Notes            string

	// LastTaskID survives the stop reset so a break→work auto-start chain
	// can reuse the previously focused task. Kept deliberately: the task
	// reference is "last associated", not strictly session-scoped.
	LastTaskID string
}

func NewSession() Session {
	return Session{Status: StatusIdle}
}

// StartWork begins a fresh work session. Valid from any state: an active
// break is abandoned, and an unfinished work session is abandoned without a
// record.
func (s *Session) StartWork(sessionID, taskID, taskTitle string, seconds int) Outcome {
	s.Status = StatusWorking
	s.SessionID = sessionID
	s.ActiveTaskID = taskID
	s.ActiveTaskTitle = taskTitle
	s.LastTaskID = taskID
	s.TimeLeft = seconds
	s.Total = seconds
	s.Interruptions = nil
	s.Notes = ""
	return Applied
}

func (s *Session) Pause() Outcome {
	if s.Status != StatusWorking {
		return Ignored
	}
	s.Status = StatusPaused
	return Applied
}

func (s *Session) Resume() Outcome {
	if s.Status != StatusPaused {
		return Ignored
	}
	s.Status = StatusWorking
	return Applied
}

// StopWork finalizes the active work session into a Record and resets to
// idle. The record's start time is reconstructed from elapsed seconds so its
// duration reflects captured wall-clock time, not tick counting. A
// non-positive interval skips long-break bookkeeping (used when settings are
// unresolvable at stop time).
func (s *Session) StopWork(completed bool, now time.Time, interval int) (Record, Outcome) {
	if s.Status != StatusWorking && s.Status != StatusPaused {
		return Record{}, Ignored
	}
	if s.SessionID == "" {
		return Record{}, Ignored
	}
	elapsed := s.Total - s.TimeLeft
	start := now.Add(-time.Duration(elapsed) * time.Second)
	record := Record{
		ID:              s.SessionID,
		TaskID:          s.ActiveTaskID,
		StartTime:       start,
		EndTime:         now,
		DurationMinutes: roundMinutes(now.Sub(start)),
		Completed:       completed,
		Notes:           s.Notes,
		Interruptions:   append([]Interruption(nil), s.Interruptions...),
	}

	s.Status = StatusIdle
	s.SessionID = ""
	s.ActiveTaskID = ""
	s.ActiveTaskTitle = ""
	s.TimeLeft = 0
	s.Total = 0
	s.Interruptions = nil
	s.Notes = ""

	if completed && interval > 0 {
		s.CompletedInCycle = (s.CompletedInCycle + 1) % interval
		s.IsLongBreak = s.CompletedInCycle == 0
	}
	return record, Applied
}

// StartBreak is valid from any state. Starting a break over an unfinished
// work session abandons its timing data without archiving a record; the
// session id and ledger are left in place until the next StartWork. isLong
// nil falls back to the session's current long-break flag.
func (s *Session) StartBreak(isLong *bool, seconds int) Outcome {
	long := s.IsLongBreak
	if isLong != nil {
		long = *isLong
	}
	s.Status = StatusBreak
	s.IsLongBreak = long
	s.TimeLeft = seconds
	s.Total = seconds
	return Applied
}

func (s *Session) StopBreak() Outcome {
	if s.Status != StatusBreak {
		return Ignored
	}
	s.Status = StatusIdle
	return Applied
}

// Tick decrements the countdown by one second, floored at zero. Expiry is
// reported, not acted on: the caller routes it through StopWork/StopBreak so
// the whole chain stays in one place.
func (s *Session) Tick() TickResult {
	if !s.Status.Active() {
		return TickIgnored
	}
	if s.TimeLeft > 0 {
		s.TimeLeft--
	}
	if s.TimeLeft > 0 {
		return TickCounted
	}
	if s.Status == StatusWorking {
		return TickWorkExpired
	}
	return TickBreakExpired
}

// AddInterruption appends to the ledger. Allowed in any state; the ledger is
// cleared on the next StartWork either way.
func (s *Session) AddInterruption(i Interruption) {
	s.Interruptions = append(s.Interruptions, i)
}

func (s *Session) SetNotes(text string) {
	s.Notes = text
}

func roundMinutes(d time.Duration) int {
	return int((d + 30*time.Second) / time.Minute)
}
