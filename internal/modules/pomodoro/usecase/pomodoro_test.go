package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	hookdto "tomado/internal/modules/hook/dto"
	"tomado/internal/modules/pomodoro/domain"
	"tomado/internal/modules/pomodoro/dto"
	pomodoroout "tomado/internal/modules/pomodoro/port/out"
	"tomado/internal/modules/pomodoro/service"
	settingsdto "tomado/internal/modules/settings/dto"
	taskdto "tomado/internal/modules/task/dto"
	apperrors "tomado/internal/platform/errors"
	"tomado/internal/platform/logging"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type seqID struct {
	n int
}

func (g *seqID) New() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

type fakeSettings struct {
	durations settingsdto.DurationsOutput
	err       error
}

func (f *fakeSettings) Get(context.Context) (settingsdto.SettingsOutput, error) {
	return settingsdto.SettingsOutput{}, nil
}

func (f *fakeSettings) Update(context.Context, settingsdto.UpdateInput) (settingsdto.SettingsOutput, error) {
	return settingsdto.SettingsOutput{}, nil
}

func (f *fakeSettings) Durations(context.Context) (settingsdto.DurationsOutput, error) {
	if f.err != nil {
		return settingsdto.DurationsOutput{}, f.err
	}
	return f.durations, nil
}

type fakeStateStore struct {
	saved   []domain.PersistedState
	load    domain.PersistedState
	outcome domain.RestoreOutcome
	saveErr error
}

func (f *fakeStateStore) Save(_ context.Context, state domain.PersistedState) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, state)
	return nil
}

func (f *fakeStateStore) Load(context.Context) (domain.PersistedState, domain.RestoreOutcome, error) {
	return f.load, f.outcome, nil
}

func (f *fakeStateStore) Clear(context.Context) error {
	f.saved = nil
	return nil
}

type fakeProjector struct {
	projected []domain.Record
	resets    int
}

func (f *fakeProjector) Reset(context.Context) error {
	f.resets++
	f.projected = nil
	return nil
}

func (f *fakeProjector) Project(_ context.Context, record domain.Record) error {
	f.projected = append(f.projected, record)
	return nil
}

func (f *fakeProjector) DailySummary(context.Context, time.Time) (domain.DaySummary, error) {
	return domain.DaySummary{}, nil
}

func (f *fakeProjector) TaskTotals(context.Context) ([]pomodoroout.TaskTotal, error) {
	return nil, nil
}

type fakeTasks struct {
	titles     map[string]string
	increments []string
}

func (f *fakeTasks) Add(context.Context, taskdto.AddInput) (taskdto.TaskOutput, error) {
	return taskdto.TaskOutput{}, nil
}

func (f *fakeTasks) List(context.Context) ([]taskdto.TaskOutput, error) { return nil, nil }

func (f *fakeTasks) Get(_ context.Context, id string) (taskdto.TaskOutput, error) {
	title, ok := f.titles[id]
	if !ok {
		return taskdto.TaskOutput{}, apperrors.ErrTaskNotFound
	}
	return taskdto.TaskOutput{ID: id, Title: title}, nil
}

func (f *fakeTasks) Complete(context.Context, string) (taskdto.TaskOutput, error) {
	return taskdto.TaskOutput{}, nil
}

func (f *fakeTasks) Remove(context.Context, string) error { return nil }

func (f *fakeTasks) IncrementPomodorosSpent(_ context.Context, id string) error {
	f.increments = append(f.increments, id)
	return nil
}

func (f *fakeTasks) Replace(context.Context, []taskdto.TaskOutput) error { return nil }
func (f *fakeTasks) Reset(context.Context) error                         { return nil }

type fakeHooks struct {
	events []hookdto.Event
}

func (f *fakeHooks) List(context.Context) ([]hookdto.HookInfo, error)      { return nil, nil }
func (f *fakeHooks) Doctor(context.Context) ([]hookdto.DoctorResult, error) { return nil, nil }

func (f *fakeHooks) Dispatch(_ context.Context, event hookdto.Event) {
	f.events = append(f.events, event)
}

type fakeNotifier struct {
	sent []string
}

func (f *fakeNotifier) Notify(_ context.Context, summary, _ string) error {
	f.sent = append(f.sent, summary)
	return nil
}

type engineFixture struct {
	interactor *Interactor
	clock      *fakeClock
	settings   *fakeSettings
	state      *fakeStateStore
	projector  *fakeProjector
	tasks      *fakeTasks
	hooks      *fakeHooks
	notifier   *fakeNotifier
}

func defaultDurations() settingsdto.DurationsOutput {
	return settingsdto.DurationsOutput{
		WorkSeconds:       25 * 60,
		ShortBreakSeconds: 5 * 60,
		LongBreakSeconds:  15 * 60,
		LongBreakInterval: 4,
		AutoStartBreaks:   true,
	}
}

func newFixture(durations settingsdto.DurationsOutput) *engineFixture {
	clk := &fakeClock{now: time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local)}
	f := &engineFixture{
		clock:     clk,
		settings:  &fakeSettings{durations: durations},
		state:     &fakeStateStore{},
		projector: &fakeProjector{},
		tasks:     &fakeTasks{titles: map[string]string{"task-1": "Write report"}},
		hooks:     &fakeHooks{},
		notifier:  &fakeNotifier{},
	}
	svc := service.NewPomodoroService(clk, &seqID{})
	f.interactor = NewInteractor(svc, f.settings, f.tasks, f.hooks, f.state, f.projector, nil, f.notifier, logging.Get()).(*Interactor)
	return f
}

// tickSeconds advances wall clock and engine together, one second per tick.
func (f *engineFixture) tickSeconds(t *testing.T, n int) dto.TickOutput {
	t.Helper()
	var last dto.TickOutput
	for range n {
		f.clock.Advance(time.Second)
		out, err := f.interactor.Tick(context.Background())
		if err != nil {
			t.Fatalf("tick: %v", err)
		}
		last = out
	}
	return last
}

func eventKinds(events []hookdto.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.Kind)
	}
	return out
}

func TestWorkSessionRunsToCompletion(t *testing.T) {
	f := newFixture(defaultDurations())
	ctx := context.Background()

	session, err := f.interactor.Start(ctx, dto.StartInput{TaskID: "task-1"})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if session.Status != "working" || session.TimeLeft != 1500 {
		t.Fatalf("unexpected start snapshot: %+v", session)
	}
	if session.TaskTitle != "Write report" {
		t.Fatalf("expected task title resolved from store, got %q", session.TaskTitle)
	}

	last := f.tickSeconds(t, 1500)
	if last.Expired != "work" {
		t.Fatalf("expected work expiry on final tick, got %+v", last)
	}
	if last.Stop == nil {
		t.Fatal("expected archived record on work expiry")
	}
	record := last.Stop.Record
	if !record.Completed {
		t.Fatal("expiry must archive a completed record")
	}
	if got := record.EndTime.Sub(record.StartTime); got != 25*time.Minute {
		t.Fatalf("expected 25m captured duration, got %s", got)
	}
	if record.DurationMinutes != 25 {
		t.Fatalf("expected 25 rounded minutes, got %d", record.DurationMinutes)
	}
	if record.TaskID != "task-1" {
		t.Fatalf("expected record bound to task-1, got %q", record.TaskID)
	}

	if !last.Stop.AutoBreakStarted {
		t.Fatal("expected auto break after completed session")
	}
	if last.Session.Status != "break" || last.Session.TimeLeft != 300 {
		t.Fatalf("expected short break running, got %+v", last.Session)
	}

	if len(f.tasks.increments) != 1 || f.tasks.increments[0] != "task-1" {
		t.Fatalf("expected one task increment, got %v", f.tasks.increments)
	}
	if len(f.projector.projected) != 1 {
		t.Fatalf("expected one projected record, got %d", len(f.projector.projected))
	}
	kinds := eventKinds(f.hooks.events)
	want := []string{"session_started", "session_completed", "break_started"}
	if len(kinds) != len(want) {
		t.Fatalf("expected events %v, got %v", want, kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("expected events %v, got %v", want, kinds)
		}
	}
}

func TestPauseFreezesCountdown(t *testing.T) {
	f := newFixture(defaultDurations())
	ctx := context.Background()

	if _, err := f.interactor.Start(ctx, dto.StartInput{}); err != nil {
		t.Fatalf("start: %v", err)
	}
	f.tickSeconds(t, 100)

	paused, err := f.interactor.Pause(ctx)
	if err != nil {
		t.Fatalf("pause: %v", err)
	}
	if !paused.Applied || paused.Status != "paused" {
		t.Fatalf("unexpected pause snapshot: %+v", paused)
	}

	// Ticks while paused must not consume time.
	out := f.tickSeconds(t, 50)
	if out.Session.Applied {
		t.Fatal("tick while paused must be ignored")
	}
	if out.Session.TimeLeft != 1400 {
		t.Fatalf("expected 1400s left after pause, got %d", out.Session.TimeLeft)
	}

	resumed, err := f.interactor.Resume(ctx)
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if resumed.Status != "working" || resumed.TimeLeft != 1400 {
		t.Fatalf("unexpected resume snapshot: %+v", resumed)
	}
}

func TestInvalidTransitionsAreIgnored(t *testing.T) {
	f := newFixture(defaultDurations())
	ctx := context.Background()

	pause, err := f.interactor.Pause(ctx)
	if err != nil {
		t.Fatalf("pause: %v", err)
	}
	if pause.Applied || pause.Status != "idle" {
		t.Fatalf("pause from idle must be a no-op, got %+v", pause)
	}
	resume, err := f.interactor.Resume(ctx)
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if resume.Applied {
		t.Fatal("resume from idle must be a no-op")
	}
	stop, err := f.interactor.Stop(ctx, dto.StopInput{Completed: true})
	if err != nil {
		t.Fatalf("stop: %v", err)
	}
	if stop.Session.Applied {
		t.Fatal("stop from idle must be a no-op")
	}
	if f.interactor.archive.Len() != 0 {
		t.Fatal("no-op stop must not archive a record")
	}
}

func TestLongBreakCycleWraps(t *testing.T) {
	durations := defaultDurations()
	durations.AutoStartBreaks = false
	f := newFixture(durations)
	ctx := context.Background()

	for n := 1; n <= 4; n++ {
		if _, err := f.interactor.Start(ctx, dto.StartInput{}); err != nil {
			t.Fatalf("start %d: %v", n, err)
		}
		f.clock.Advance(25 * time.Minute)
		stop, err := f.interactor.Stop(ctx, dto.StopInput{Completed: true})
		if err != nil {
			t.Fatalf("stop %d: %v", n, err)
		}
		wantCycle := n % 4
		if stop.Session.CompletedInCycle != wantCycle {
			t.Fatalf("after %d sessions expected cycle %d, got %d", n, wantCycle, stop.Session.CompletedInCycle)
		}
		wantLong := n == 4
		if stop.Session.IsLongBreak != wantLong {
			t.Fatalf("after %d sessions expected long-break=%v", n, wantLong)
		}
	}

	// The pending long break picks the long duration.
	brk, err := f.interactor.StartBreak(ctx, dto.BreakInput{})
	if err != nil {
		t.Fatalf("start break: %v", err)
	}
	if !brk.IsLongBreak || brk.TimeLeft != 15*60 {
		t.Fatalf("expected 15m long break, got %+v", brk)
	}
}

func TestAbortedStopKeepsCycleCounter(t *testing.T) {
	f := newFixture(defaultDurations())
	ctx := context.Background()

	if _, err := f.interactor.Start(ctx, dto.StartInput{}); err != nil {
		t.Fatalf("start: %v", err)
	}
	f.clock.Advance(10 * time.Minute)
	stop, err := f.interactor.Stop(ctx, dto.StopInput{Completed: false})
	if err != nil {
		t.Fatalf("stop: %v", err)
	}
	if stop.Session.CompletedInCycle != 0 {
		t.Fatalf("aborted session must not advance the cycle, got %d", stop.Session.CompletedInCycle)
	}
	if stop.AutoBreakStarted {
		t.Fatal("aborted session must not auto-start a break")
	}
	if stop.Record.Completed {
		t.Fatal("expected aborted record")
	}
	if f.interactor.archive.Len() != 1 {
		t.Fatal("aborted session still archives a record")
	}
	if len(f.tasks.increments) != 0 {
		t.Fatal("aborted session must not bump task counters")
	}
	kinds := eventKinds(f.hooks.events)
	if kinds[len(kinds)-1] != "session_aborted" {
		t.Fatalf("expected session_aborted event, got %v", kinds)
	}
}

func TestBreakExpiryAutoStartsLastTask(t *testing.T) {
	durations := defaultDurations()
	durations.AutoStartPomodoros = true
	f := newFixture(durations)
	ctx := context.Background()

	if _, err := f.interactor.Start(ctx, dto.StartInput{TaskID: "task-1"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	f.clock.Advance(25 * time.Minute)
	stop, err := f.interactor.Stop(ctx, dto.StopInput{Completed: true})
	if err != nil {
		t.Fatalf("stop: %v", err)
	}
	if !stop.AutoBreakStarted {
		t.Fatal("expected auto break")
	}

	last := f.tickSeconds(t, 300)
	if last.Expired != "break" {
		t.Fatalf("expected break expiry, got %+v", last)
	}
	if last.Session.Status != "working" {
		t.Fatalf("expected auto-started session, got %+v", last.Session)
	}
	if last.Session.TaskID != "task-1" || last.Session.TaskTitle != "Write report" {
		t.Fatalf("expected last task carried into the new session, got %+v", last.Session)
	}
}

func TestManualStopBreakRunsSameChain(t *testing.T) {
	durations := defaultDurations()
	durations.AutoStartPomodoros = true
	durations.NotifyBreakEnd = true
	f := newFixture(durations)
	ctx := context.Background()

	if _, err := f.interactor.Start(ctx, dto.StartInput{TaskID: "task-1"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	f.clock.Advance(25 * time.Minute)
	if _, err := f.interactor.Stop(ctx, dto.StopInput{Completed: true}); err != nil {
		t.Fatalf("stop: %v", err)
	}

	session, err := f.interactor.StopBreak(ctx)
	if err != nil {
		t.Fatalf("stop break: %v", err)
	}
	if session.Status != "working" || session.TaskID != "task-1" {
		t.Fatalf("skipping the break should still auto-start the last task, got %+v", session)
	}
	if len(f.notifier.sent) != 0 {
		t.Fatalf("manual break stop should not notify, sent %v", f.notifier.sent)
	}
}

func TestInterruptionsLandInRecord(t *testing.T) {
	f := newFixture(defaultDurations())
	ctx := context.Background()

	if _, err := f.interactor.Start(ctx, dto.StartInput{}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := f.interactor.AddInterruption(ctx, dto.InterruptionInput{Reason: "phone call", Kind: "external"}); err != nil {
		t.Fatalf("interrupt: %v", err)
	}
	if _, err := f.interactor.AddInterruption(ctx, dto.InterruptionInput{Reason: "daydream", Kind: "internal"}); err != nil {
		t.Fatalf("interrupt: %v", err)
	}
	if _, err := f.interactor.UpdateNotes(ctx, "good focus overall"); err != nil {
		t.Fatalf("notes: %v", err)
	}

	f.clock.Advance(25 * time.Minute)
	stop, err := f.interactor.Stop(ctx, dto.StopInput{Completed: true})
	if err != nil {
		t.Fatalf("stop: %v", err)
	}
	if len(stop.Record.Interruptions) != 2 {
		t.Fatalf("expected 2 interruptions in record, got %d", len(stop.Record.Interruptions))
	}
	if stop.Record.Interruptions[0].Kind != "external" || stop.Record.Interruptions[1].Kind != "internal" {
		t.Fatalf("unexpected interruption kinds: %+v", stop.Record.Interruptions)
	}
	if stop.Record.Notes != "good focus overall" {
		t.Fatalf("expected notes in record, got %q", stop.Record.Notes)
	}
	if stop.Session.Interruptions != nil && len(stop.Session.Interruptions) != 0 {
		t.Fatal("ledger must reset after stop")
	}
}

func TestInterruptionRejectsUnknownKind(t *testing.T) {
	f := newFixture(defaultDurations())

	_, err := f.interactor.AddInterruption(context.Background(), dto.InterruptionInput{Reason: "x", Kind: "cosmic"})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestStartAbortsWhenSettingsUnavailable(t *testing.T) {
	f := newFixture(defaultDurations())
	f.settings.err = fmt.Errorf("%w: config unreadable", apperrors.ErrSettingsUnavailable)

	_, err := f.interactor.Start(context.Background(), dto.StartInput{})
	if !errors.Is(err, apperrors.ErrSettingsUnavailable) {
		t.Fatalf("expected ErrSettingsUnavailable, got %v", err)
	}
	status, statusErr := f.interactor.Status(context.Background())
	if statusErr != nil {
		t.Fatalf("status: %v", statusErr)
	}
	if status.Status != "idle" {
		t.Fatalf("failed start must not mutate state, got %q", status.Status)
	}
	if len(f.state.saved) != 0 {
		t.Fatal("failed start must not persist")
	}
}

func TestPersistFailureDoesNotBreakTimer(t *testing.T) {
	f := newFixture(defaultDurations())
	f.state.saveErr = errors.New("disk full")
	ctx := context.Background()

	session, err := f.interactor.Start(ctx, dto.StartInput{})
	if err != nil {
		t.Fatalf("start must survive persist failure: %v", err)
	}
	if session.Status != "working" {
		t.Fatalf("expected running session, got %+v", session)
	}
	out := f.tickSeconds(t, 3)
	if out.Session.TimeLeft != 1497 {
		t.Fatalf("countdown must keep running, got %d", out.Session.TimeLeft)
	}
}

func TestManualBreakOverWorkKeepsLedger(t *testing.T) {
	f := newFixture(defaultDurations())
	ctx := context.Background()

	if _, err := f.interactor.Start(ctx, dto.StartInput{TaskID: "task-1"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := f.interactor.AddInterruption(ctx, dto.InterruptionInput{Reason: "door", Kind: "external"}); err != nil {
		t.Fatalf("interrupt: %v", err)
	}

	brk, err := f.interactor.StartBreak(ctx, dto.BreakInput{})
	if err != nil {
		t.Fatalf("break: %v", err)
	}
	if brk.Status != "break" {
		t.Fatalf("expected break, got %+v", brk)
	}
	if f.interactor.archive.Len() != 0 {
		t.Fatal("break over a work session must not archive a record")
	}
	if len(brk.Interruptions) != 1 {
		t.Fatal("ledger survives until the next work session starts")
	}
	if brk.SessionID == "" {
		t.Fatal("session id survives until the next work session starts")
	}
}

func TestRestoreRoundTrip(t *testing.T) {
	f := newFixture(defaultDurations())
	ctx := context.Background()

	if _, err := f.interactor.Start(ctx, dto.StartInput{TaskID: "task-1"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	f.clock.Advance(25 * time.Minute)
	if _, err := f.interactor.Stop(ctx, dto.StopInput{Completed: true}); err != nil {
		t.Fatalf("stop: %v", err)
	}

	persisted := f.state.saved[len(f.state.saved)-1]
	if persisted.ActiveTaskRef != "task-1" {
		t.Fatalf("expected last task ref persisted, got %q", persisted.ActiveTaskRef)
	}

	// A second engine booting from that state sees the archive and cycle.
	g := newFixture(defaultDurations())
	g.state.load = persisted
	g.state.outcome = domain.RestoreOK
	restored, err := g.interactor.Restore(ctx)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored.Outcome != "restored" || restored.RecordCount != 1 {
		t.Fatalf("unexpected restore output: %+v", restored)
	}
	status, err := g.interactor.Status(ctx)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status.Status != "idle" {
		t.Fatal("restored engine must boot idle")
	}
	if status.CompletedInCycle != 1 {
		t.Fatalf("expected cycle counter restored, got %d", status.CompletedInCycle)
	}
}

func TestRestoreCorruptedFallsBackToDefaults(t *testing.T) {
	f := newFixture(defaultDurations())
	f.state.load = domain.DefaultPersistedState()
	f.state.outcome = domain.RestoreCorrupted

	out, err := f.interactor.Restore(context.Background())
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if out.Outcome != "corrupted_reset" || out.RecordCount != 0 {
		t.Fatalf("unexpected restore output: %+v", out)
	}
}

func TestTodaySummaryCountsLocalDay(t *testing.T) {
	f := newFixture(defaultDurations())
	ctx := context.Background()

	for n := 0; n < 2; n++ {
		if _, err := f.interactor.Start(ctx, dto.StartInput{}); err != nil {
			t.Fatalf("start: %v", err)
		}
		f.clock.Advance(25 * time.Minute)
		completed := n == 0
		if _, err := f.interactor.Stop(ctx, dto.StopInput{Completed: completed}); err != nil {
			t.Fatalf("stop: %v", err)
		}
		f.clock.Advance(5 * time.Minute)
	}

	summary, err := f.interactor.TodaySummary(ctx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.Total != 2 || summary.Completed != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if summary.FocusMinutes != 50 {
		t.Fatalf("expected 50 focus minutes, got %v", summary.FocusMinutes)
	}
}

func TestReindexRebuildsProjection(t *testing.T) {
	f := newFixture(defaultDurations())
	ctx := context.Background()

	for n := 0; n < 3; n++ {
		if _, err := f.interactor.Start(ctx, dto.StartInput{}); err != nil {
			t.Fatalf("start: %v", err)
		}
		f.clock.Advance(25 * time.Minute)
		if _, err := f.interactor.Stop(ctx, dto.StopInput{Completed: true}); err != nil {
			t.Fatalf("stop: %v", err)
		}
	}
	if err := f.interactor.Reindex(ctx); err != nil {
		t.Fatalf("reindex: %v", err)
	}
	if f.projector.resets != 1 {
		t.Fatalf("expected one projector reset, got %d", f.projector.resets)
	}
	if len(f.projector.projected) != 3 {
		t.Fatalf("expected 3 projected records after rebuild, got %d", len(f.projector.projected))
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	f := newFixture(defaultDurations())
	ctx := context.Background()

	if _, err := f.interactor.Start(ctx, dto.StartInput{TaskID: "task-1"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	f.clock.Advance(25 * time.Minute)
	if _, err := f.interactor.Stop(ctx, dto.StopInput{Completed: true}); err != nil {
		t.Fatalf("stop: %v", err)
	}

	snap, err := f.interactor.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}

	g := newFixture(defaultDurations())
	if err := g.interactor.RestoreSnapshot(ctx, dto.SnapshotInput(snap)); err != nil {
		t.Fatalf("restore snapshot: %v", err)
	}
	status, err := g.interactor.Status(ctx)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status.CompletedInCycle != 1 {
		t.Fatalf("expected imported cycle counter, got %d", status.CompletedInCycle)
	}
	if g.interactor.archive.Len() != 1 {
		t.Fatalf("expected imported archive, got %d records", g.interactor.archive.Len())
	}
	if len(g.projector.projected) != 1 {
		t.Fatal("import must rebuild the projection")
	}
}

func TestRestoreSnapshotRejectsBadPayload(t *testing.T) {
	f := newFixture(defaultDurations())

	err := f.interactor.RestoreSnapshot(context.Background(), dto.SnapshotInput{
		Records: []dto.RecordOutput{{}},
	})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
