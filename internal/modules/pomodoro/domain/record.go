package domain

import "time"

// Record is the immutable archived outcome of one work session. Its id
// equals the originating session id. DurationMinutes is captured at stop
// time and is not re-derivable afterwards.
type Record struct {
	ID              string
	TaskID          string
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes int
	Completed       bool
	Notes           string
	Interruptions   []Interruption
}

// Archive is the append-only sequence of records. Queries are read-only
// projections; nothing here mutates or deletes.
type Archive struct {
	records []Record
}

func NewArchive(records []Record) Archive {
	return Archive{records: append([]Record(nil), records...)}
}

func (a *Archive) Append(r Record) {
	a.records = append(a.records, r)
}

func (a *Archive) Len() int {
	return len(a.records)
}

func (a *Archive) Records() []Record {
	return append([]Record(nil), a.records...)
}

func (a *Archive) ByTask(taskID string) []Record {
	out := []Record{}
	for _, r := range a.records {
		if r.TaskID == taskID {
			out = append(out, r)
		}
	}
	return out
}

// ByDay returns records started within the given local calendar day.
func (a *Archive) ByDay(day time.Time) []Record {
	from, to := dayWindow(day)
	return a.between(from, to)
}

// ByRange returns records started within the inclusive day range.
func (a *Archive) ByRange(fromDay, toDay time.Time) []Record {
	from, _ := dayWindow(fromDay)
	_, to := dayWindow(toDay)
	return a.between(from, to)
}

type DaySummary struct {
	Total        int
	Completed    int
	FocusMinutes float64
}

// Summary aggregates the given day. Focus minutes are summed from each
// record's captured end−start, not its stored duration field, so records
// written by other schema versions still count correctly.
func (a *Archive) Summary(day time.Time) DaySummary {
	s := DaySummary{}
	for _, r := range a.ByDay(day) {
		s.Total++
		if r.Completed {
			s.Completed++
		}
		s.FocusMinutes += r.EndTime.Sub(r.StartTime).Minutes()
	}
	return s
}

func (a *Archive) between(from, to time.Time) []Record {
	out := []Record{}
	for _, r := range a.records {
		if !r.StartTime.Before(from) && !r.StartTime.After(to) {
			out = append(out, r)
		}
	}
	return out
}

// dayWindow bounds a local calendar day: [00:00:00, 23:59:59.999].
func dayWindow(day time.Time) (time.Time, time.Time) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	to := from.Add(24*time.Hour - time.Millisecond)
	return from, to
}
