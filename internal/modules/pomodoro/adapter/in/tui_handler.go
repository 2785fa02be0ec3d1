package in

import (
	"context"
	"time"

	"tomado/internal/modules/pomodoro/dto"
	pomodoroin "tomado/internal/modules/pomodoro/port/in"
)

// TUIHandler is the engine surface the interactive view drives. It adds
// Tick, which the CLI's one-shot commands never call.
type TUIHandler struct {
	usecase pomodoroin.Usecase
}

func NewTUIHandler(usecase pomodoroin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Tick(ctx context.Context) (dto.TickOutput, error) {
	return h.usecase.Tick(ctx)
}

func (h TUIHandler) Start(ctx context.Context, taskID, taskTitle string) (dto.SessionOutput, error) {
	return h.usecase.Start(ctx, dto.StartInput{TaskID: taskID, TaskTitle: taskTitle})
}

func (h TUIHandler) Pause(ctx context.Context) (dto.SessionOutput, error) {
	return h.usecase.Pause(ctx)
}

func (h TUIHandler) Resume(ctx context.Context) (dto.SessionOutput, error) {
	return h.usecase.Resume(ctx)
}

func (h TUIHandler) Stop(ctx context.Context, completed bool) (dto.StopOutput, error) {
	return h.usecase.Stop(ctx, dto.StopInput{Completed: completed})
}

func (h TUIHandler) StartBreak(ctx context.Context) (dto.SessionOutput, error) {
	return h.usecase.StartBreak(ctx, dto.BreakInput{})
}

func (h TUIHandler) StopBreak(ctx context.Context) (dto.SessionOutput, error) {
	return h.usecase.StopBreak(ctx)
}

func (h TUIHandler) Interrupt(ctx context.Context, reason, kind string) (dto.SessionOutput, error) {
	return h.usecase.AddInterruption(ctx, dto.InterruptionInput{Reason: reason, Kind: kind})
}

func (h TUIHandler) Note(ctx context.Context, text string) (dto.SessionOutput, error) {
	return h.usecase.UpdateNotes(ctx, text)
}

func (h TUIHandler) Status(ctx context.Context) (dto.SessionOutput, error) {
	return h.usecase.Status(ctx)
}

func (h TUIHandler) TodaySummary(ctx context.Context) (dto.SummaryOutput, error) {
	return h.usecase.TodaySummary(ctx)
}

func (h TUIHandler) TodayRecords(ctx context.Context, day time.Time) ([]dto.RecordOutput, error) {
	return h.usecase.RecordsByDay(ctx, day)
}
