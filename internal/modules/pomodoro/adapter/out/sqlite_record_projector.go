package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tomado/internal/modules/pomodoro/domain"
	pomodoroout "tomado/internal/modules/pomodoro/port/out"

	_ "modernc.org/sqlite"
)

// SQLiteRecordProjector mirrors archived records into sqlite for the stats
// queries. It is a rebuildable index, never the source of truth.
type SQLiteRecordProjector struct {
	db *sql.DB
}

func NewSQLiteRecordProjector(dbPath string) (pomodoroout.RecordProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteRecordProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (s *SQLiteRecordProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS records (
  id TEXT PRIMARY KEY,
  task_id TEXT,
  start_time TEXT NOT NULL,
  end_time TEXT NOT NULL,
  duration_minutes INTEGER NOT NULL,
  focus_minutes REAL NOT NULL,
  completed INTEGER NOT NULL,
  interruption_count INTEGER NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create records table: %w", err)
	}
	return nil
}

func (s *SQLiteRecordProjector) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM records`); err != nil {
		return fmt.Errorf("reset records: %w", err)
	}
	return nil
}

func (s *SQLiteRecordProjector) Project(ctx context.Context, record domain.Record) error {
	const stmt = `
INSERT INTO records (id, task_id, start_time, end_time, duration_minutes, focus_minutes, completed, interruption_count)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  task_id=excluded.task_id,
  start_time=excluded.start_time,
  end_time=excluded.end_time,
  duration_minutes=excluded.duration_minutes,
  focus_minutes=excluded.focus_minutes,
  completed=excluded.completed,
  interruption_count=excluded.interruption_count;
`
	completed := 0
	if record.Completed {
		completed = 1
	}
	_, err := s.db.ExecContext(ctx, stmt,
		record.ID,
		record.TaskID,
		record.StartTime.Format(time.RFC3339Nano),
		record.EndTime.Format(time.RFC3339Nano),
		record.DurationMinutes,
		record.EndTime.Sub(record.StartTime).Minutes(),
		completed,
		len(record.Interruptions),
	)
	if err != nil {
		return fmt.Errorf("project record: %w", err)
	}
	return nil
}

// DailySummary aggregates records whose start falls inside the given local
// calendar day.
func (s *SQLiteRecordProjector) DailySummary(ctx context.Context, day time.Time) (domain.DaySummary, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	to := from.Add(24*time.Hour - time.Millisecond)
	const query = `
SELECT COUNT(*), COALESCE(SUM(completed), 0), COALESCE(SUM(focus_minutes), 0)
FROM records
WHERE start_time >= ? AND start_time <= ?;
`
	row := s.db.QueryRowContext(ctx, query, from.Format(time.RFC3339Nano), to.Format(time.RFC3339Nano))
	summary := domain.DaySummary{}
	if err := row.Scan(&summary.Total, &summary.Completed, &summary.FocusMinutes); err != nil {
		return domain.DaySummary{}, fmt.Errorf("query daily summary: %w", err)
	}
	return summary, nil
}

func (s *SQLiteRecordProjector) TaskTotals(ctx context.Context) ([]pomodoroout.TaskTotal, error) {
	const query = `
SELECT task_id, COUNT(*), COALESCE(SUM(focus_minutes), 0)
FROM records
WHERE task_id != ''
GROUP BY task_id
ORDER BY SUM(focus_minutes) DESC;
`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query task totals: %w", err)
	}
	defer rows.Close()

	out := []pomodoroout.TaskTotal{}
	for rows.Next() {
		total := pomodoroout.TaskTotal{}
		if err := rows.Scan(&total.TaskID, &total.Sessions, &total.FocusMinutes); err != nil {
			return nil, fmt.Errorf("scan task total: %w", err)
		}
		out = append(out, total)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate task totals: %w", err)
	}
	return out, nil
}
