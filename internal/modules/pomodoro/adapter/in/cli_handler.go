package in

import (
	"context"
	"time"

	"tomado/internal/modules/pomodoro/dto"
	pomodoroin "tomado/internal/modules/pomodoro/port/in"
)

type CLIHandler struct {
	usecase pomodoroin.Usecase
}

func NewCLIHandler(usecase pomodoroin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, taskID string) (dto.SessionOutput, error) {
	return h.usecase.Start(ctx, dto.StartInput{TaskID: taskID})
}

func (h CLIHandler) Pause(ctx context.Context) (dto.SessionOutput, error) {
	return h.usecase.Pause(ctx)
}

func (h CLIHandler) Resume(ctx context.Context) (dto.SessionOutput, error) {
	return h.usecase.Resume(ctx)
}

func (h CLIHandler) Stop(ctx context.Context, completed bool) (dto.StopOutput, error) {
	return h.usecase.Stop(ctx, dto.StopInput{Completed: completed})
}

func (h CLIHandler) StartBreak(ctx context.Context, long *bool) (dto.SessionOutput, error) {
	return h.usecase.StartBreak(ctx, dto.BreakInput{IsLong: long})
}

func (h CLIHandler) StopBreak(ctx context.Context) (dto.SessionOutput, error) {
	return h.usecase.StopBreak(ctx)
}

func (h CLIHandler) Interrupt(ctx context.Context, reason string, external bool) (dto.SessionOutput, error) {
	kind := "internal"
	if external {
		kind = "external"
	}
	return h.usecase.AddInterruption(ctx, dto.InterruptionInput{Reason: reason, Kind: kind})
}

func (h CLIHandler) Note(ctx context.Context, text string) (dto.SessionOutput, error) {
	return h.usecase.UpdateNotes(ctx, text)
}

func (h CLIHandler) Status(ctx context.Context) (dto.SessionOutput, error) {
	return h.usecase.Status(ctx)
}

func (h CLIHandler) RecordsByTask(ctx context.Context, taskID string) ([]dto.RecordOutput, error) {
	return h.usecase.RecordsByTask(ctx, taskID)
}

func (h CLIHandler) RecordsByDay(ctx context.Context, day time.Time) ([]dto.RecordOutput, error) {
	return h.usecase.RecordsByDay(ctx, day)
}

func (h CLIHandler) RecordsByRange(ctx context.Context, from, to time.Time) ([]dto.RecordOutput, error) {
	return h.usecase.RecordsByRange(ctx, from, to)
}

func (h CLIHandler) TodaySummary(ctx context.Context) (dto.SummaryOutput, error) {
	return h.usecase.TodaySummary(ctx)
}

func (h CLIHandler) TaskTotals(ctx context.Context) ([]dto.TaskTotalOutput, error) {
	return h.usecase.TaskTotals(ctx)
}

func (h CLIHandler) Reindex(ctx context.Context) error {
	return h.usecase.Reindex(ctx)
}

func (h CLIHandler) Reset(ctx context.Context) error {
	return h.usecase.Reset(ctx)
}

func (h CLIHandler) Snapshot(ctx context.Context) (dto.SnapshotOutput, error) {
	return h.usecase.Snapshot(ctx)
}

func (h CLIHandler) RestoreSnapshot(ctx context.Context, input dto.SnapshotInput) error {
	return h.usecase.RestoreSnapshot(ctx, input)
}
