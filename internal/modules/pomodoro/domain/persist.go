package domain

const SchemaVersion = 1

// StorageKey is the fixed key the engine state lives under in the backing
// key-value store.
const StorageKey = "pomodoro-storage"

// PersistedState is the whitelisted subset of session + archive state that
// survives restarts. Countdown fields (status, time left, totals) are
// deliberately absent: a restart always boots idle, but the ledger, notes
// and long-break bookkeeping of an in-flight session are preserved.
type PersistedState struct {
	Records          []Record
	CompletedInCycle int
	Interruptions    []Interruption
	Notes            string
	ActiveTaskRef    string
	SessionID        string
}

func DefaultPersistedState() PersistedState {
	return PersistedState{Records: []Record{}, Interruptions: []Interruption{}}
}

// RestoreOutcome tags how a boot-time load resolved.
type RestoreOutcome int

const (
	RestoreFirstRun RestoreOutcome = iota
	RestoreOK
	RestoreCorrupted
)

func (o RestoreOutcome) String() string {
	switch o {
	case RestoreFirstRun:
		return "first_run"
	case RestoreOK:
		return "restored"
	case RestoreCorrupted:
		return "corrupted_reset"
	default:
		return "unknown"
	}
}

// CapturePersisted projects the current session + archive onto the
// persisted whitelist.
func CapturePersisted(s Session, a Archive) PersistedState {
	ref := s.ActiveTaskID
	if ref == "" {
		ref = s.LastTaskID
	}
	return PersistedState{
		Records:          a.Records(),
		CompletedInCycle: s.CompletedInCycle,
		Interruptions:    append([]Interruption(nil), s.Interruptions...),
		Notes:            s.Notes,
		ActiveTaskRef:    ref,
		SessionID:        s.SessionID,
	}
}

// RestoreSession rebuilds an idle session from persisted state. The stored
// task reference comes back as LastTaskID only: no session is running after
// a restart, but auto-start chains can still pick the task up.
func RestoreSession(p PersistedState) Session {
	s := NewSession()
	s.CompletedInCycle = p.CompletedInCycle
	s.Interruptions = append([]Interruption(nil), p.Interruptions...)
	s.Notes = p.Notes
	s.LastTaskID = p.ActiveTaskRef
	s.SessionID = p.SessionID
	return s
}
