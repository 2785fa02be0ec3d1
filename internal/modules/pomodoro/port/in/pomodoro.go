package in

import (
	"context"
	"time"

	"tomado/internal/modules/pomodoro/dto"
)

type Usecase interface {
	// Restore loads persisted state into the engine. Called once at boot;
	// corruption is recovered, never surfaced as an error.
	Restore(ctx context.Context) (dto.RestoreOutput, error)

	Start(ctx context.Context, input dto.StartInput) (dto.SessionOutput, error)
	Pause(ctx context.Context) (dto.SessionOutput, error)
	Resume(ctx context.Context) (dto.SessionOutput, error)
	Stop(ctx context.Context, input dto.StopInput) (dto.StopOutput, error)
	StartBreak(ctx context.Context, input dto.BreakInput) (dto.SessionOutput, error)
	StopBreak(ctx context.Context) (dto.SessionOutput, error)
	Tick(ctx context.Context) (dto.TickOutput, error)
	AddInterruption(ctx context.Context, input dto.InterruptionInput) (dto.SessionOutput, error)
	UpdateNotes(ctx context.Context, notes string) (dto.SessionOutput, error)
	Status(ctx context.Context) (dto.SessionOutput, error)

	RecordsByTask(ctx context.Context, taskID string) ([]dto.RecordOutput, error)
	RecordsByDay(ctx context.Context, day time.Time) ([]dto.RecordOutput, error)
	RecordsByRange(ctx context.Context, from, to time.Time) ([]dto.RecordOutput, error)
	TodaySummary(ctx context.Context) (dto.SummaryOutput, error)
	TaskTotals(ctx context.Context) ([]dto.TaskTotalOutput, error)

	Reindex(ctx context.Context) error
	Reset(ctx context.Context) error
	Snapshot(ctx context.Context) (dto.SnapshotOutput, error)
	RestoreSnapshot(ctx context.Context, input dto.SnapshotInput) error
}
