package out

import (
	"context"
	"time"

	"tomado/internal/modules/pomodoro/domain"
)

// StateStore persists the whitelisted engine state under a fixed key.
// Load never fails on malformed data: it reports how it resolved instead.
type StateStore interface {
	Save(ctx context.Context, state domain.PersistedState) error
	Load(ctx context.Context) (domain.PersistedState, domain.RestoreOutcome, error)
	Clear(ctx context.Context) error
}

// RecordProjector mirrors archived records into a queryable index for
// statistical consumers. Projection is best-effort; the archive is the
// source of truth.
type RecordProjector interface {
	Reset(ctx context.Context) error
	Project(ctx context.Context, record domain.Record) error
	DailySummary(ctx context.Context, day time.Time) (domain.DaySummary, error)
	TaskTotals(ctx context.Context) ([]TaskTotal, error)
}

type TaskTotal struct {
	TaskID       string
	Sessions     int
	FocusMinutes float64
}

// RecordNoteStore exports an archived record as a human-readable note.
type RecordNoteStore interface {
	Export(ctx context.Context, record domain.Record, taskTitle string) (string, error)
}

// Notifier raises a desktop notification. Fire-and-forget.
type Notifier interface {
	Notify(ctx context.Context, summary, body string) error
}
