package domain_test

import (
	"testing"
	"time"

	"tomado/internal/modules/pomodoro/domain"
)

func TestStartWorkResetsLedger(t *testing.T) {
	t.Parallel()
	s := domain.NewSession()
	s.StartWork("s-1", "t-1", "First", 1500)
	s.AddInterruption(domain.Interruption{ID: "i-1", Reason: "phone", Kind: domain.InterruptionExternal})
	s.SetNotes("old notes")

	s.StartWork("s-2", "t-2", "Second", 1500)
	if len(s.Interruptions) != 0 {
		t.Fatalf("ledger should reset on start, got %d entries", len(s.Interruptions))
	}
	if s.Notes != "" {
		t.Fatalf("notes should reset on start, got %q", s.Notes)
	}
	if s.LastTaskID != "t-2" {
		t.Fatalf("last task should follow start, got %q", s.LastTaskID)
	}
}

func TestPauseResumeGuards(t *testing.T) {
	t.Parallel()
	s := domain.NewSession()
	if s.Pause() != domain.Ignored {
		t.Fatalf("pause from idle should be ignored")
	}
	if s.Resume() != domain.Ignored {
		t.Fatalf("resume from idle should be ignored")
	}

	s.StartWork("s-1", "", "", 1500)
	if s.Resume() != domain.Ignored {
		t.Fatalf("resume while working should be ignored")
	}
	if s.Pause() != domain.Applied {
		t.Fatalf("pause while working should apply")
	}
	if s.Pause() != domain.Ignored {
		t.Fatalf("double pause should be ignored")
	}
	if s.Resume() != domain.Applied {
		t.Fatalf("resume from paused should apply")
	}
}

func TestStopWorkReconstructsStartTime(t *testing.T) {
	t.Parallel()
	s := domain.NewSession()
	s.StartWork("s-1", "t-1", "Deep work", 1500)
	for range 600 {
		s.Tick()
	}

	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.Local)
	record, outcome := s.StopWork(true, now, 4)
	if outcome != domain.Applied {
		t.Fatalf("stop while working should apply")
	}
	wantStart := now.Add(-10 * time.Minute)
	if !record.StartTime.Equal(wantStart) {
		t.Fatalf("start time = %v, want %v", record.StartTime, wantStart)
	}
	if record.DurationMinutes != 10 {
		t.Fatalf("duration = %d, want 10", record.DurationMinutes)
	}
	if s.Status != domain.StatusIdle {
		t.Fatalf("status after stop = %s, want idle", s.Status)
	}
	if s.LastTaskID != "t-1" {
		t.Fatalf("last task should survive stop, got %q", s.LastTaskID)
	}
}

func TestStopWorkCycleBookkeeping(t *testing.T) {
	t.Parallel()
	s := domain.NewSession()
	now := time.Now()

	for i := 1; i <= 4; i++ {
		s.StartWork("s", "", "", 1500)
		s.StopWork(true, now, 4)
		wantCycle := i % 4
		if s.CompletedInCycle != wantCycle {
			t.Fatalf("after %d stops cycle = %d, want %d", i, s.CompletedInCycle, wantCycle)
		}
		if s.IsLongBreak != (wantCycle == 0) {
			t.Fatalf("after %d stops long flag = %t", i, s.IsLongBreak)
		}
	}
}

func TestStopWorkAbortedSkipsCycle(t *testing.T) {
	t.Parallel()
	s := domain.NewSession()
	s.StartWork("s", "", "", 1500)
	if _, outcome := s.StopWork(false, time.Now(), 4); outcome != domain.Applied {
		t.Fatalf("aborted stop should still archive")
	}
	if s.CompletedInCycle != 0 {
		t.Fatalf("aborted stop should not advance the cycle")
	}
}

func TestStopWorkWithoutIntervalSkipsBookkeeping(t *testing.T) {
	t.Parallel()
	s := domain.NewSession()
	s.StartWork("s", "", "", 1500)
	s.StopWork(true, time.Now(), 0)
	if s.CompletedInCycle != 0 || s.IsLongBreak {
		t.Fatalf("non-positive interval should leave cycle state untouched")
	}
}

func TestStopWorkIgnoredOutsideWork(t *testing.T) {
	t.Parallel()
	s := domain.NewSession()
	if _, outcome := s.StopWork(true, time.Now(), 4); outcome != domain.Ignored {
		t.Fatalf("stop from idle should be ignored")
	}
	s.StartBreak(nil, 300)
	if _, outcome := s.StopWork(true, time.Now(), 4); outcome != domain.Ignored {
		t.Fatalf("stop during break should be ignored")
	}
}

func TestStartBreakOverWorkKeepsLedger(t *testing.T) {
	t.Parallel()
	s := domain.NewSession()
	s.StartWork("s-1", "t-1", "", 1500)
	s.AddInterruption(domain.Interruption{ID: "i-1", Reason: "door", Kind: domain.InterruptionExternal})

	s.StartBreak(nil, 300)
	if s.Status != domain.StatusBreak {
		t.Fatalf("status = %s, want break", s.Status)
	}
	if s.SessionID != "s-1" {
		t.Fatalf("session id should survive a break over work")
	}
	if len(s.Interruptions) != 1 {
		t.Fatalf("ledger should survive a break over work")
	}
}

func TestStartBreakLongResolution(t *testing.T) {
	t.Parallel()
	s := domain.NewSession()
	s.IsLongBreak = true
	s.StartBreak(nil, 900)
	if !s.IsLongBreak {
		t.Fatalf("nil isLong should fall back to the pending flag")
	}

	short := false
	s.StartBreak(&short, 300)
	if s.IsLongBreak {
		t.Fatalf("explicit isLong should override the pending flag")
	}
}

func TestTickFloorsAndReportsExpiry(t *testing.T) {
	t.Parallel()
	s := domain.NewSession()
	if s.Tick() != domain.TickIgnored {
		t.Fatalf("tick while idle should be ignored")
	}

	s.StartWork("s", "", "", 2)
	if s.Tick() != domain.TickCounted {
		t.Fatalf("first tick should count")
	}
	if s.Tick() != domain.TickWorkExpired {
		t.Fatalf("reaching zero while working should report work expiry")
	}
	if s.Tick() != domain.TickWorkExpired {
		t.Fatalf("tick at zero should keep reporting expiry, not underflow")
	}
	if s.TimeLeft != 0 {
		t.Fatalf("time left went below zero: %d", s.TimeLeft)
	}

	s.StartBreak(nil, 1)
	if s.Tick() != domain.TickBreakExpired {
		t.Fatalf("reaching zero during break should report break expiry")
	}

	s.StopBreak()
	if s.Tick() != domain.TickIgnored {
		t.Fatalf("tick while paused or idle should be ignored")
	}
}

func TestArchiveDayQueriesAndSummary(t *testing.T) {
	t.Parallel()
	day := time.Date(2026, 3, 4, 0, 0, 0, 0, time.Local)
	rec := func(id string, start time.Time, minutes int, completed bool) domain.Record {
		return domain.Record{
			ID:              id,
			StartTime:       start,
			EndTime:         start.Add(time.Duration(minutes) * time.Minute),
			DurationMinutes: minutes,
			Completed:       completed,
		}
	}
	archive := domain.NewArchive([]domain.Record{
		rec("r-1", day.Add(9*time.Hour), 25, true),
		rec("r-2", day.Add(14*time.Hour), 15, false),
		rec("r-3", day.AddDate(0, 0, 1).Add(9*time.Hour), 25, true),
	})

	if got := len(archive.ByDay(day)); got != 2 {
		t.Fatalf("ByDay = %d records, want 2", got)
	}
	if got := len(archive.ByRange(day, day.AddDate(0, 0, 1))); got != 3 {
		t.Fatalf("ByRange = %d records, want 3", got)
	}

	sum := archive.Summary(day)
	if sum.Total != 2 || sum.Completed != 1 {
		t.Fatalf("summary = %+v, want 2 total / 1 completed", sum)
	}
	if sum.FocusMinutes != 40 {
		t.Fatalf("focus minutes = %.1f, want 40", sum.FocusMinutes)
	}
}

func TestArchiveByTask(t *testing.T) {
	t.Parallel()
	start := time.Now()
	archive := domain.NewArchive(nil)
	archive.Append(domain.Record{ID: "r-1", TaskID: "t-1", StartTime: start, EndTime: start})
	archive.Append(domain.Record{ID: "r-2", TaskID: "t-2", StartTime: start, EndTime: start})
	archive.Append(domain.Record{ID: "r-3", TaskID: "t-1", StartTime: start, EndTime: start})

	got := archive.ByTask("t-1")
	if len(got) != 2 || got[0].ID != "r-1" || got[1].ID != "r-3" {
		t.Fatalf("ByTask returned %+v", got)
	}
}
