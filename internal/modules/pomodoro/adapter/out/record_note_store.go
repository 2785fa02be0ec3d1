package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tomado/internal/modules/pomodoro/domain"
	pomodoroout "tomado/internal/modules/pomodoro/port/out"
	"tomado/internal/platform/markdown"
	"tomado/internal/platform/slug"
)

// MarkdownRecordNoteStore exports each archived record as a markdown note
// with YAML frontmatter, one file per record under a yyyy/mm/dd tree.
type MarkdownRecordNoteStore struct {
	homePath string
}

func NewMarkdownRecordNoteStore(homePath string) pomodoroout.RecordNoteStore {
	return &MarkdownRecordNoteStore{homePath: homePath}
}

func (s *MarkdownRecordNoteStore) Export(_ context.Context, record domain.Record, taskTitle string) (string, error) {
	date := record.StartTime
	dir := filepath.Join(s.homePath, "records", date.Format("2006"), date.Format("01"), date.Format("02"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create record dir: %w", err)
	}
	name := fmt.Sprintf("%s-%s.md", date.Format("150405"), slug.Make(taskTitle))
	path := filepath.Join(dir, name)

	meta := map[string]any{
		"schema_version":   domain.SchemaVersion,
		"id":               record.ID,
		"task_id":          record.TaskID,
		"task_title":       taskTitle,
		"started_at":       record.StartTime.Format(time.RFC3339),
		"ended_at":         record.EndTime.Format(time.RFC3339),
		"duration_minutes": record.DurationMinutes,
		"completed":        record.Completed,
		"interruptions":    len(record.Interruptions),
	}
	rendered, err := markdown.RenderFrontmatter(meta, s.body(record, taskTitle))
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write record note: %w", err)
	}
	return path, nil
}

func (s *MarkdownRecordNoteStore) body(record domain.Record, taskTitle string) string {
	b := strings.Builder{}
	title := taskTitle
	if title == "" {
		title = "Untracked session"
	}
	outcome := "aborted"
	if record.Completed {
		outcome = "completed"
	}
	fmt.Fprintf(&b, "# %s\n\n- Outcome: %s\n- Duration: %d minutes\n", title, outcome, record.DurationMinutes)
	if len(record.Interruptions) > 0 {
		b.WriteString("\n## Interruptions\n\n")
		for _, n := range record.Interruptions {
			fmt.Fprintf(&b, "- %s (%s) at %s\n", n.Reason, n.Kind, n.At.Format("15:04:05"))
		}
	}
	if record.Notes != "" {
		fmt.Fprintf(&b, "\n## Notes\n\n%s\n", record.Notes)
	}
	return b.String()
}
