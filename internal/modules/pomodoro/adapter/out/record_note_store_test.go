package out

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tomado/internal/modules/pomodoro/domain"
)

func TestExportRecordNote(t *testing.T) {
	t.Parallel()
	home := t.TempDir()
	store := NewMarkdownRecordNoteStore(home)
	start := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	record := domain.Record{
		ID:              "rec-1",
		TaskID:          "task-1",
		StartTime:       start,
		EndTime:         start.Add(25 * time.Minute),
		DurationMinutes: 25,
		Completed:       true,
		Notes:           "deep work",
		Interruptions: []domain.Interruption{
			{ID: "int-1", At: start.Add(time.Minute), Reason: "phone", Kind: domain.InterruptionExternal},
		},
	}

	path, err := store.Export(context.Background(), record, "Write Report")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	wantDir := filepath.Join(home, "records", "2026", "03", "14")
	if filepath.Dir(path) != wantDir {
		t.Fatalf("expected note under %s, got %s", wantDir, path)
	}
	if !strings.HasSuffix(path, "093000-write-report.md") {
		t.Fatalf("unexpected note name: %s", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read note: %v", err)
	}
	text := string(content)
	for _, want := range []string{"id: rec-1", "completed: true", "# Write Report", "## Interruptions", "phone (external)", "## Notes", "deep work"} {
		if !strings.Contains(text, want) {
			t.Fatalf("note missing %q:\n%s", want, text)
		}
	}
}

func TestExportUntitledRecord(t *testing.T) {
	t.Parallel()
	store := NewMarkdownRecordNoteStore(t.TempDir())
	start := time.Date(2026, 3, 14, 22, 0, 0, 0, time.UTC)
	record := domain.Record{ID: "rec-2", StartTime: start, EndTime: start.Add(10 * time.Minute)}

	path, err := store.Export(context.Background(), record, "")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.HasSuffix(path, "220000-session.md") {
		t.Fatalf("expected fallback slug, got %s", path)
	}
}
