package out

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tomado/internal/modules/pomodoro/domain"
)

func sampleState(t *testing.T) domain.PersistedState {
	t.Helper()
	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	return domain.PersistedState{
		Records: []domain.Record{
			{
				ID:              "rec-1",
				TaskID:          "task-1",
				StartTime:       start,
				EndTime:         start.Add(25 * time.Minute),
				DurationMinutes: 25,
				Completed:       true,
				Notes:           "solid block",
				Interruptions: []domain.Interruption{
					{ID: "int-1", At: start.Add(5 * time.Minute), Reason: "noise", Kind: domain.InterruptionExternal},
				},
			},
			{
				ID:        "rec-2",
				StartTime: start.Add(time.Hour),
				EndTime:   start.Add(time.Hour + 10*time.Minute),
				Completed: false,
			},
		},
		CompletedInCycle: 3,
		Interruptions:    []domain.Interruption{},
		Notes:            "in flight",
		ActiveTaskRef:    "task-1",
		SessionID:        "sess-9",
	}
}

func TestStateRoundTrip(t *testing.T) {
	t.Parallel()
	state := sampleState(t)

	payload, err := EncodeState(state)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, outcome := DecodeState(payload)
	if outcome != domain.RestoreOK {
		t.Fatalf("expected clean restore, got %v", outcome)
	}
	if len(decoded.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(decoded.Records))
	}
	first := decoded.Records[0]
	if !first.StartTime.Equal(state.Records[0].StartTime) || !first.EndTime.Equal(state.Records[0].EndTime) {
		t.Fatalf("timestamps did not round-trip: %+v", first)
	}
	if len(first.Interruptions) != 1 || first.Interruptions[0].Kind != domain.InterruptionExternal {
		t.Fatalf("interruptions did not round-trip: %+v", first.Interruptions)
	}
	if decoded.CompletedInCycle != 3 || decoded.Notes != "in flight" {
		t.Fatalf("scalar fields did not round-trip: %+v", decoded)
	}
	if decoded.ActiveTaskRef != "task-1" || decoded.SessionID != "sess-9" {
		t.Fatalf("refs did not round-trip: %+v", decoded)
	}

	// Serializing the decoded state again yields the same logical state.
	again, err := EncodeState(decoded)
	if err != nil {
		t.Fatalf("re-encode: %v", err)
	}
	redecoded, outcome := DecodeState(again)
	if outcome != domain.RestoreOK || len(redecoded.Records) != 2 {
		t.Fatalf("second round-trip diverged: %v %+v", outcome, redecoded)
	}
}

func TestDecodeAcceptsPlainTimestamps(t *testing.T) {
	t.Parallel()
	payload := []byte(`{"state":{"records":[{"id":"rec-1","startTime":"2026-03-14T09:00:00Z","endTime":"2026-03-14T09:25:00Z","duration":25,"completed":true}],"completedSinceLongBreak":1},"version":1}`)

	decoded, outcome := DecodeState(payload)
	if outcome != domain.RestoreOK {
		t.Fatalf("expected clean restore, got %v", outcome)
	}
	if len(decoded.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(decoded.Records))
	}
	want := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	if !decoded.Records[0].StartTime.Equal(want) {
		t.Fatalf("plain timestamp not parsed, got %v", decoded.Records[0].StartTime)
	}
}

func TestDecodeCorruptionSignature(t *testing.T) {
	t.Parallel()
	decoded, outcome := DecodeState([]byte("[object Object]"))
	if outcome != domain.RestoreCorrupted {
		t.Fatalf("expected corrupted outcome, got %v", outcome)
	}
	if len(decoded.Records) != 0 || decoded.CompletedInCycle != 0 {
		t.Fatalf("expected defaults, got %+v", decoded)
	}
}

func TestDecodeGarbage(t *testing.T) {
	t.Parallel()
	decoded, outcome := DecodeState([]byte("{not json at all"))
	if outcome != domain.RestoreCorrupted {
		t.Fatalf("expected corrupted outcome, got %v", outcome)
	}
	if len(decoded.Records) != 0 {
		t.Fatalf("expected defaults, got %+v", decoded)
	}
}

func TestDecodeRecordsNotAnArray(t *testing.T) {
	t.Parallel()
	payload := []byte(`{"state":{"records":{"oops":true},"completedSinceLongBreak":2,"notes":"kept"},"version":1}`)

	decoded, outcome := DecodeState(payload)
	if outcome != domain.RestoreOK {
		t.Fatalf("expected restore with substituted records, got %v", outcome)
	}
	if len(decoded.Records) != 0 {
		t.Fatalf("malformed records must become empty, got %+v", decoded.Records)
	}
	if decoded.CompletedInCycle != 2 || decoded.Notes != "kept" {
		t.Fatalf("valid fields must survive the substitution, got %+v", decoded)
	}
}

func TestFileStoreFirstRun(t *testing.T) {
	t.Parallel()
	store := NewFileStateStore(filepath.Join(t.TempDir(), "state"))

	state, outcome, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if outcome != domain.RestoreFirstRun {
		t.Fatalf("expected first-run outcome, got %v", outcome)
	}
	if len(state.Records) != 0 {
		t.Fatalf("expected empty defaults, got %+v", state)
	}
}

func TestFileStoreSaveLoadClear(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "state")
	store := NewFileStateStore(path)
	ctx := context.Background()

	if err := store.Save(ctx, sampleState(t)); err != nil {
		t.Fatalf("save: %v", err)
	}
	state, outcome, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if outcome != domain.RestoreOK || len(state.Records) != 2 {
		t.Fatalf("unexpected load result: %v %+v", outcome, state)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	_, outcome, err = store.Load(ctx)
	if err != nil {
		t.Fatalf("load after clear: %v", err)
	}
	if outcome != domain.RestoreFirstRun {
		t.Fatalf("expected first-run after clear, got %v", outcome)
	}
}

func TestFileStoreRemovesCorruptionArtifact(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "state")
	if err := os.WriteFile(path, []byte("[object Object]"), 0o644); err != nil {
		t.Fatalf("seed corrupt state: %v", err)
	}
	store := NewFileStateStore(path)

	state, outcome, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if outcome != domain.RestoreCorrupted {
		t.Fatalf("expected corrupted outcome, got %v", outcome)
	}
	if len(state.Records) != 0 {
		t.Fatalf("expected defaults, got %+v", state)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("corruption artifact must be removed from disk")
	}
}
