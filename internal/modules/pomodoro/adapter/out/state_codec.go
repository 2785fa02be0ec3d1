package out

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"tomado/internal/modules/pomodoro/domain"
)

// corruptionSignature is the stringified-object artifact a broken writer
// leaves behind instead of serialized state. It gets special treatment on
// load: the key is removed, not just ignored.
const corruptionSignature = "[object Object]"

// storedTime round-trips a point in time as a tagged wrapper so a reader
// can tell "this string is a timestamp" from an ordinary string. Plain
// RFC 3339 strings are still accepted on the way in for older payloads.
type storedTime struct {
	time.Time
}

func (t storedTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		IsDate bool   `json:"__isDate"`
		ISO    string `json:"iso"`
	}{IsDate: true, ISO: t.Format(time.RFC3339Nano)})
}

func (t *storedTime) UnmarshalJSON(payload []byte) error {
	wrapped := struct {
		IsDate bool   `json:"__isDate"`
		ISO    string `json:"iso"`
	}{}
	if err := json.Unmarshal(payload, &wrapped); err == nil && wrapped.IsDate {
		parsed, parseErr := time.Parse(time.RFC3339Nano, wrapped.ISO)
		if parseErr != nil {
			return fmt.Errorf("parse wrapped timestamp: %w", parseErr)
		}
		t.Time = parsed
		return nil
	}
	plain := ""
	if err := json.Unmarshal(payload, &plain); err != nil {
		return fmt.Errorf("timestamp is neither wrapped nor a string")
	}
	parsed, err := time.Parse(time.RFC3339Nano, plain)
	if err != nil {
		return fmt.Errorf("parse timestamp %q: %w", plain, err)
	}
	t.Time = parsed
	return nil
}

type storedInterruption struct {
	ID     string     `json:"id"`
	At     storedTime `json:"time"`
	Reason string     `json:"reason"`
	Kind   string     `json:"type"`
}

type storedRecord struct {
	ID              string               `json:"id"`
	TaskID          string               `json:"taskId,omitempty"`
	StartTime       storedTime           `json:"startTime"`
	EndTime         storedTime           `json:"endTime"`
	DurationMinutes int                  `json:"duration"`
	Completed       bool                 `json:"completed"`
	Notes           string               `json:"notes,omitempty"`
	Interruptions   []storedInterruption `json:"interruptions,omitempty"`
}

// storedState keeps records as raw JSON so a malformed (non-array) value
// can be replaced with an empty sequence instead of failing the whole load.
type storedState struct {
	Records                 json.RawMessage      `json:"records"`
	CompletedSinceLongBreak int                  `json:"completedSinceLongBreak"`
	Interruptions           []storedInterruption `json:"interruptions"`
	Notes                   string               `json:"notes"`
	ActiveTaskRef           *string              `json:"activeTaskRef"`
	SessionID               *string              `json:"sessionId"`
}

type envelope struct {
	State   storedState `json:"state"`
	Version int         `json:"version"`
}

func EncodeState(state domain.PersistedState) ([]byte, error) {
	records := make([]storedRecord, 0, len(state.Records))
	for _, r := range state.Records {
		records = append(records, toStoredRecord(r))
	}
	rawRecords, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("marshal records: %w", err)
	}
	stored := storedState{
		Records:                 rawRecords,
		CompletedSinceLongBreak: state.CompletedInCycle,
		Interruptions:           toStoredInterruptions(state.Interruptions),
		Notes:                   state.Notes,
	}
	if state.ActiveTaskRef != "" {
		stored.ActiveTaskRef = &state.ActiveTaskRef
	}
	if state.SessionID != "" {
		stored.SessionID = &state.SessionID
	}
	payload, err := json.Marshal(envelope{State: stored, Version: domain.SchemaVersion})
	if err != nil {
		return nil, fmt.Errorf("marshal state envelope: %w", err)
	}
	return payload, nil
}

// DecodeState resolves any stored payload into usable state. Parsed fields
// are merged onto defaults so additions since the payload was written come
// back zeroed instead of poisoning the session. It never fails: unusable
// payloads resolve to defaults tagged RestoreCorrupted.
func DecodeState(payload []byte) (domain.PersistedState, domain.RestoreOutcome) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 {
		return domain.DefaultPersistedState(), domain.RestoreFirstRun
	}
	if string(trimmed) == corruptionSignature {
		return domain.DefaultPersistedState(), domain.RestoreCorrupted
	}
	env := envelope{}
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return domain.DefaultPersistedState(), domain.RestoreCorrupted
	}

	state := domain.DefaultPersistedState()
	stored := env.State
	records := []storedRecord{}
	if len(stored.Records) > 0 {
		// A non-array records value is replaced, not propagated.
		if err := json.Unmarshal(stored.Records, &records); err != nil {
			records = nil
		}
	}
	for _, r := range records {
		state.Records = append(state.Records, fromStoredRecord(r))
	}
	state.CompletedInCycle = stored.CompletedSinceLongBreak
	state.Interruptions = fromStoredInterruptions(stored.Interruptions)
	state.Notes = stored.Notes
	if stored.ActiveTaskRef != nil {
		state.ActiveTaskRef = *stored.ActiveTaskRef
	}
	if stored.SessionID != nil {
		state.SessionID = *stored.SessionID
	}
	return state, domain.RestoreOK
}

// IsCorruptionSignature reports whether the payload is the known
// stringified-object artifact that warrants removing the stored key.
func IsCorruptionSignature(payload []byte) bool {
	return string(bytes.TrimSpace(payload)) == corruptionSignature
}

func toStoredRecord(r domain.Record) storedRecord {
	return storedRecord{
		ID:              r.ID,
		TaskID:          r.TaskID,
		StartTime:       storedTime{r.StartTime},
		EndTime:         storedTime{r.EndTime},
		DurationMinutes: r.DurationMinutes,
		Completed:       r.Completed,
		Notes:           r.Notes,
		Interruptions:   toStoredInterruptions(r.Interruptions),
	}
}

func fromStoredRecord(r storedRecord) domain.Record {
	return domain.Record{
		ID:              r.ID,
		TaskID:          r.TaskID,
		StartTime:       r.StartTime.Time,
		EndTime:         r.EndTime.Time,
		DurationMinutes: r.DurationMinutes,
		Completed:       r.Completed,
		Notes:           r.Notes,
		Interruptions:   fromStoredInterruptions(r.Interruptions),
	}
}

func toStoredInterruptions(interruptions []domain.Interruption) []storedInterruption {
	out := make([]storedInterruption, 0, len(interruptions))
	for _, n := range interruptions {
		out = append(out, storedInterruption{
			ID:     n.ID,
			At:     storedTime{n.At},
			Reason: n.Reason,
			Kind:   string(n.Kind),
		})
	}
	return out
}

func fromStoredInterruptions(interruptions []storedInterruption) []domain.Interruption {
	out := make([]domain.Interruption, 0, len(interruptions))
	for _, n := range interruptions {
		out = append(out, domain.Interruption{
			ID:     n.ID,
			At:     n.At.Time,
			Reason: n.Reason,
			Kind:   domain.InterruptionKind(n.Kind),
		})
	}
	return out
}
