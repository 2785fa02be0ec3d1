package usecase

import (
	"context"
	"fmt"
	"time"

	hookdomain "tomado/internal/modules/hook/domain"
	hookdto "tomado/internal/modules/hook/dto"
	hookin "tomado/internal/modules/hook/port/in"
	"tomado/internal/modules/pomodoro/domain"
	"tomado/internal/modules/pomodoro/dto"
	pomodoroin "tomado/internal/modules/pomodoro/port/in"
	pomodoroout "tomado/internal/modules/pomodoro/port/out"
	"tomado/internal/modules/pomodoro/service"
	settingsdto "tomado/internal/modules/settings/dto"
	settingsin "tomado/internal/modules/settings/port/in"
	taskin "tomado/internal/modules/task/port/in"
	apperrors "tomado/internal/platform/errors"
	"tomado/internal/platform/logging"
)

// Interactor holds the live session and archive and orchestrates every
// transition: duration resolution, persistence, record projection, task
// counters, hook dispatch, and the auto-start chains. It is single-owner
// state; callers drive it from one goroutine.
type Interactor struct {
	svc      *service.PomodoroService
	settings settingsin.Usecase
	tasks    taskin.Usecase
	hooks    hookin.Usecase

	stateStore pomodoroout.StateStore
	projector  pomodoroout.RecordProjector
	noteStore  pomodoroout.RecordNoteStore
	notifier   pomodoroout.Notifier
	log        *logging.Logger

	session domain.Session
	archive domain.Archive
}

// NewInteractor wires the engine. tasks, hooks, projector, noteStore and
// notifier may be nil; the engine degrades to timer-only behavior.
func NewInteractor(
	svc *service.PomodoroService,
	settings settingsin.Usecase,
	tasks taskin.Usecase,
	hooks hookin.Usecase,
	stateStore pomodoroout.StateStore,
	projector pomodoroout.RecordProjector,
	noteStore pomodoroout.RecordNoteStore,
	notifier pomodoroout.Notifier,
	log *logging.Logger,
) pomodoroin.Usecase {
	return &Interactor{
		svc:        svc,
		settings:   settings,
		tasks:      tasks,
		hooks:      hooks,
		stateStore: stateStore,
		projector:  projector,
		noteStore:  noteStore,
		notifier:   notifier,
		log:        log,
		session:    domain.NewSession(),
		archive:    domain.NewArchive(nil),
	}
}

func (i *Interactor) Restore(ctx context.Context) (dto.RestoreOutput, error) {
	state, outcome, err := i.stateStore.Load(ctx)
	if err != nil {
		return dto.RestoreOutput{}, fmt.Errorf("load engine state: %w", err)
	}
	if outcome == domain.RestoreCorrupted {
		i.log.Warn(logging.CatPersist, "stored state unusable, starting from defaults")
	}
	i.session = domain.RestoreSession(state)
	i.archive = domain.NewArchive(state.Records)
	return dto.RestoreOutput{Outcome: outcome.String(), RecordCount: i.archive.Len()}, nil
}

func (i *Interactor) Start(ctx context.Context, input dto.StartInput) (dto.SessionOutput, error) {
	durations, err := i.settings.Durations(ctx)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	title := input.TaskTitle
	if input.TaskID != "" && title == "" && i.tasks != nil {
		task, err := i.tasks.Get(ctx, input.TaskID)
		if err != nil {
			return dto.SessionOutput{}, err
		}
		title = task.Title
	}
	i.svc.StartWork(&i.session, input.TaskID, title, durations.WorkSeconds)
	i.dispatch(ctx, hookdomain.EventSessionStarted, hookdto.Event{
		SessionID: i.session.SessionID,
		TaskID:    i.session.ActiveTaskID,
		TaskTitle: i.session.ActiveTaskTitle,
	})
	i.persist(ctx)
	return i.snapshot(true), nil
}

func (i *Interactor) Pause(ctx context.Context) (dto.SessionOutput, error) {
	outcome := i.session.Pause()
	if outcome == domain.Applied {
		i.persist(ctx)
	}
	return i.snapshot(outcome == domain.Applied), nil
}

func (i *Interactor) Resume(ctx context.Context) (dto.SessionOutput, error) {
	outcome := i.session.Resume()
	if outcome == domain.Applied {
		i.persist(ctx)
	}
	return i.snapshot(outcome == domain.Applied), nil
}

func (i *Interactor) Stop(ctx context.Context, input dto.StopInput) (dto.StopOutput, error) {
	return i.stopWork(ctx, input.Completed), nil
}

func (i *Interactor) StartBreak(ctx context.Context, input dto.BreakInput) (dto.SessionOutput, error) {
	durations, err := i.settings.Durations(ctx)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	long := i.session.IsLongBreak
	if input.IsLong != nil {
		long = *input.IsLong
	}
	seconds := durations.ShortBreakSeconds
	if long {
		seconds = durations.LongBreakSeconds
	}
	i.session.StartBreak(input.IsLong, seconds)
	i.dispatch(ctx, hookdomain.EventBreakStarted, hookdto.Event{
		SessionID: i.session.SessionID,
		IsLong:    long,
	})
	i.persist(ctx)
	return i.snapshot(true), nil
}

func (i *Interactor) StopBreak(ctx context.Context) (dto.SessionOutput, error) {
	return i.endBreak(ctx, false), nil
}

func (i *Interactor) Tick(ctx context.Context) (dto.TickOutput, error) {
	switch i.session.Tick() {
	case domain.TickIgnored:
		return dto.TickOutput{Session: i.snapshot(false)}, nil
	case domain.TickCounted:
		i.persist(ctx)
		return dto.TickOutput{Session: i.snapshot(true)}, nil
	case domain.TickWorkExpired:
		stop := i.stopWork(ctx, true)
		return dto.TickOutput{Expired: "work", Stop: &stop, Session: stop.Session}, nil
	default: // break expired
		return i.finishBreak(ctx), nil
	}
}

func (i *Interactor) AddInterruption(ctx context.Context, input dto.InterruptionInput) (dto.SessionOutput, error) {
	kind := domain.InterruptionKind(input.Kind)
	if !kind.Valid() {
		return dto.SessionOutput{}, fmt.Errorf("interruption kind %q: %w", input.Kind, apperrors.ErrInvalidInput)
	}
	i.session.AddInterruption(i.svc.NewInterruption(input.Reason, kind))
	i.persist(ctx)
	return i.snapshot(true), nil
}

// UpdateNotes replaces the session notes. Writing with no session active is
// allowed but reported as not applied: the text would be discarded on the
// next start anyway.
func (i *Interactor) UpdateNotes(ctx context.Context, notes string) (dto.SessionOutput, error) {
	i.session.SetNotes(notes)
	i.persist(ctx)
	return i.snapshot(i.session.SessionID != ""), nil
}

func (i *Interactor) Status(context.Context) (dto.SessionOutput, error) {
	return i.snapshot(true), nil
}

func (i *Interactor) RecordsByTask(_ context.Context, taskID string) ([]dto.RecordOutput, error) {
	return toRecordOutputs(i.archive.ByTask(taskID)), nil
}

func (i *Interactor) RecordsByDay(_ context.Context, day time.Time) ([]dto.RecordOutput, error) {
	return toRecordOutputs(i.archive.ByDay(day)), nil
}

func (i *Interactor) RecordsByRange(_ context.Context, from, to time.Time) ([]dto.RecordOutput, error) {
	return toRecordOutputs(i.archive.ByRange(from, to)), nil
}

func (i *Interactor) TodaySummary(context.Context) (dto.SummaryOutput, error) {
	day := i.svc.Now()
	summary := i.archive.Summary(day)
	return dto.SummaryOutput{
		Day:          day,
		Total:        summary.Total,
		Completed:    summary.Completed,
		FocusMinutes: summary.FocusMinutes,
	}, nil
}

func (i *Interactor) TaskTotals(ctx context.Context) ([]dto.TaskTotalOutput, error) {
	if i.projector == nil {
		return nil, nil
	}
	totals, err := i.projector.TaskTotals(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TaskTotalOutput, 0, len(totals))
	for _, t := range totals {
		out = append(out, dto.TaskTotalOutput{TaskID: t.TaskID, Sessions: t.Sessions, FocusMinutes: t.FocusMinutes})
	}
	return out, nil
}

// Reindex rebuilds the record projection from the archive.
func (i *Interactor) Reindex(ctx context.Context) error {
	if i.projector == nil {
		return nil
	}
	if err := i.projector.Reset(ctx); err != nil {
		return err
	}
	for _, record := range i.archive.Records() {
		if err := i.projector.Project(ctx, record); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interactor) Reset(ctx context.Context) error {
	if err := i.stateStore.Clear(ctx); err != nil {
		return err
	}
	if i.projector != nil {
		if err := i.projector.Reset(ctx); err != nil {
			i.log.Warn(logging.CatProject, "reset projection: %v", err)
		}
	}
	i.session = domain.NewSession()
	i.archive = domain.NewArchive(nil)
	return nil
}

func (i *Interactor) Snapshot(context.Context) (dto.SnapshotOutput, error) {
	return dto.SnapshotOutput{
		Records:          toRecordOutputs(i.archive.Records()),
		CompletedInCycle: i.session.CompletedInCycle,
	}, nil
}

func (i *Interactor) RestoreSnapshot(ctx context.Context, input dto.SnapshotInput) error {
	records := make([]domain.Record, 0, len(input.Records))
	for _, r := range input.Records {
		if r.ID == "" {
			return fmt.Errorf("record without id: %w", apperrors.ErrInvalidInput)
		}
		records = append(records, fromRecordOutput(r))
	}
	if input.CompletedInCycle < 0 {
		return fmt.Errorf("negative cycle counter: %w", apperrors.ErrInvalidInput)
	}
	i.session = domain.NewSession()
	i.session.CompletedInCycle = input.CompletedInCycle
	i.archive = domain.NewArchive(records)
	i.persist(ctx)
	return i.Reindex(ctx)
}

// stopWork finalizes the work session and runs the whole completion chain
// in order: archive, note export, projection, task counter, hooks,
// notification, persistence, auto-break. Failures past the state machine
// are logged and swallowed so a stop never half-applies.
func (i *Interactor) stopWork(ctx context.Context, completed bool) dto.StopOutput {
	taskTitle := i.session.ActiveTaskTitle

	interval := 0
	autoBreak := false
	var durations settingsdto.DurationsOutput
	if d, err := i.settings.Durations(ctx); err == nil {
		durations = d
		interval = d.LongBreakInterval
		autoBreak = d.AutoStartBreaks
	} else {
		i.log.Warn(logging.CatSettings, "stop without duration policy: %v", err)
	}

	record, outcome := i.svc.StopWork(&i.session, completed, interval)
	if outcome == domain.Ignored {
		return dto.StopOutput{Session: i.snapshot(false)}
	}
	i.archive.Append(record)

	notePath := ""
	if i.noteStore != nil {
		path, err := i.noteStore.Export(ctx, record, taskTitle)
		if err != nil {
			i.log.Warn(logging.CatPersist, "export record note: %v", err)
		} else {
			notePath = path
		}
	}
	if i.projector != nil {
		if err := i.projector.Project(ctx, record); err != nil {
			i.log.Warn(logging.CatProject, "project record %s: %v", record.ID, err)
		}
	}
	if completed && record.TaskID != "" && i.tasks != nil {
		if err := i.tasks.IncrementPomodorosSpent(ctx, record.TaskID); err != nil {
			i.log.Warn(logging.CatEngine, "increment task %s: %v", record.TaskID, err)
		}
	}

	kind := hookdomain.EventSessionAborted
	if completed {
		kind = hookdomain.EventSessionCompleted
	}
	i.dispatch(ctx, kind, hookdto.Event{
		SessionID: record.ID,
		TaskID:    record.TaskID,
		TaskTitle: taskTitle,
		Completed: completed,
	})
	if completed && durations.NotifySessionEnd {
		i.notify(ctx, "Pomodoro complete", notifyBody(taskTitle))
	}
	i.persist(ctx)

	out := dto.StopOutput{
		Record:   toRecordOutput(record),
		NotePath: notePath,
		Session:  i.snapshot(true),
	}
	if completed && autoBreak {
		long := i.session.IsLongBreak
		seconds := durations.ShortBreakSeconds
		if long {
			seconds = durations.LongBreakSeconds
		}
		i.session.StartBreak(nil, seconds)
		i.dispatch(ctx, hookdomain.EventBreakStarted, hookdto.Event{
			SessionID: i.session.SessionID,
			IsLong:    long,
		})
		i.persist(ctx)
		out.AutoBreakStarted = true
		out.Session = i.snapshot(true)
	}
	return out
}

// finishBreak handles a break countdown reaching zero.
func (i *Interactor) finishBreak(ctx context.Context) dto.TickOutput {
	return dto.TickOutput{Expired: "break", Session: i.endBreak(ctx, true)}
}

// endBreak runs the whole break-end chain in one place: state machine,
// break_ended hook, optional desktop notification (expiry only), and the
// autoStartPomodoros chain on the last associated task.
func (i *Interactor) endBreak(ctx context.Context, expired bool) dto.SessionOutput {
	wasLong := i.session.IsLongBreak
	if i.session.StopBreak() == domain.Ignored {
		return i.snapshot(false)
	}
	i.dispatch(ctx, hookdomain.EventBreakEnded, hookdto.Event{
		SessionID: i.session.SessionID,
		IsLong:    wasLong,
	})

	durations, err := i.settings.Durations(ctx)
	if err != nil {
		i.log.Warn(logging.CatSettings, "break end without duration policy: %v", err)
		i.persist(ctx)
		return i.snapshot(true)
	}
	if expired && durations.NotifyBreakEnd {
		i.notify(ctx, "Break over", "Time to focus.")
	}
	if durations.AutoStartPomodoros {
		taskID := i.session.LastTaskID
		title := ""
		if taskID != "" && i.tasks != nil {
			if task, lookupErr := i.tasks.Get(ctx, taskID); lookupErr == nil {
				title = task.Title
			}
		}
		i.svc.StartWork(&i.session, taskID, title, durations.WorkSeconds)
		i.dispatch(ctx, hookdomain.EventSessionStarted, hookdto.Event{
			SessionID: i.session.SessionID,
			TaskID:    taskID,
			TaskTitle: title,
		})
	}
	i.persist(ctx)
	return i.snapshot(true)
}

// persist writes the whitelisted state. Failures are logged, never
// propagated: a broken disk must not break a running timer.
func (i *Interactor) persist(ctx context.Context) {
	state := domain.CapturePersisted(i.session, i.archive)
	if err := i.stateStore.Save(ctx, state); err != nil {
		i.log.Warn(logging.CatPersist, "save engine state: %v", err)
	}
}

func (i *Interactor) dispatch(ctx context.Context, kind hookdomain.EventKind, event hookdto.Event) {
	if i.hooks == nil {
		return
	}
	event.Kind = string(kind)
	event.At = i.svc.Now()
	i.hooks.Dispatch(ctx, event)
}

func (i *Interactor) notify(ctx context.Context, summary, body string) {
	if i.notifier == nil {
		return
	}
	if err := i.notifier.Notify(ctx, summary, body); err != nil {
		i.log.Warn(logging.CatNotify, "desktop notification: %v", err)
	}
}

func (i *Interactor) snapshot(applied bool) dto.SessionOutput {
	s := i.session
	return dto.SessionOutput{
		Status:           string(s.Status),
		SessionID:        s.SessionID,
		TaskID:           s.ActiveTaskID,
		TaskTitle:        s.ActiveTaskTitle,
		TimeLeft:         s.TimeLeft,
		Total:            s.Total,
		IsLongBreak:      s.IsLongBreak,
		CompletedInCycle: s.CompletedInCycle,
		Interruptions:    toInterruptionOutputs(s.Interruptions),
		Notes:            s.Notes,
		Applied:          applied,
	}
}

func notifyBody(taskTitle string) string {
	if taskTitle == "" {
		return "Time for a break."
	}
	return fmt.Sprintf("Finished a session on %q. Time for a break.", taskTitle)
}

func toRecordOutput(r domain.Record) dto.RecordOutput {
	return dto.RecordOutput{
		ID:              r.ID,
		TaskID:          r.TaskID,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		DurationMinutes: r.DurationMinutes,
		Completed:       r.Completed,
		Notes:           r.Notes,
		Interruptions:   toInterruptionOutputs(r.Interruptions),
	}
}

func toRecordOutputs(records []domain.Record) []dto.RecordOutput {
	out := make([]dto.RecordOutput, 0, len(records))
	for _, r := range records {
		out = append(out, toRecordOutput(r))
	}
	return out
}

func fromRecordOutput(r dto.RecordOutput) domain.Record {
	interruptions := make([]domain.Interruption, 0, len(r.Interruptions))
	for _, n := range r.Interruptions {
		interruptions = append(interruptions, domain.Interruption{
			ID:     n.ID,
			At:     n.At,
			Reason: n.Reason,
			Kind:   domain.InterruptionKind(n.Kind),
		})
	}
	return domain.Record{
		ID:              r.ID,
		TaskID:          r.TaskID,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		DurationMinutes: r.DurationMinutes,
		Completed:       r.Completed,
		Notes:           r.Notes,
		Interruptions:   interruptions,
	}
}

func toInterruptionOutputs(interruptions []domain.Interruption) []dto.InterruptionOutput {
	out := make([]dto.InterruptionOutput, 0, len(interruptions))
	for _, n := range interruptions {
		out = append(out, dto.InterruptionOutput{
			ID:     n.ID,
			At:     n.At,
			Reason: n.Reason,
			Kind:   string(n.Kind),
		})
	}
	return out
}
