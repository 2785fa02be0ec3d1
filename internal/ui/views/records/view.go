package records

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tomado/internal/modules/pomodoro/dto"
	"tomado/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type RecordsPort interface {
	TodayRecords(ctx context.Context, day time.Time) ([]dto.RecordOutput, error)
	TodaySummary(ctx context.Context) (dto.SummaryOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type RecordsLoadedMsg struct {
	Records []dto.RecordOutput
	Summary dto.SummaryOutput
	Err     error
}

// ─── list item ───────────────────────────────────────────────────────────────

type recordItem struct {
	record dto.RecordOutput
}

func (i recordItem) Title() string {
	r := i.record
	window := r.StartTime.Local().Format("15:04") + "–" + r.EndTime.Local().Format("15:04")
	if r.TaskID != "" {
		return window + "  " + r.TaskID
	}
	return window + "  untracked"
}

func (i recordItem) Description() string {
	r := i.record
	outcome := "aborted"
	if r.Completed {
		outcome = "completed"
	}
	desc := fmt.Sprintf("%d min · %s", r.DurationMinutes, outcome)
	if n := len(r.Interruptions); n > 0 {
		desc += fmt.Sprintf(" · %d interruptions", n)
	}
	if r.Notes != "" {
		desc += " · " + r.Notes
	}
	return desc
}

func (i recordItem) FilterValue() string { return i.record.TaskID + " " + i.record.Notes }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    RecordsPort
	list    list.Model
	summary dto.SummaryOutput
	spinner spinner.Model
	loading bool
	width   int
	height  int
}

func New(port RecordsPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Today"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		list:    l,
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Reload(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.width, m.height-1)

	case RecordsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Today — " + msg.Err.Error()
			return m, nil
		}
		m.summary = msg.Summary
		m.list.Title = "Today"
		items := make([]list.Item, len(msg.Records))
		for i, r := range msg.Records {
			items[i] = recordItem{record: r}
		}
		cmds = append(cmds, m.list.SetItems(items))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if !m.Filtering() && msg.String() == "r" {
			cmds = append(cmds, m.Reload())
			return m, tea.Batch(cmds...)
		}
	}

	if !m.loading {
		var lCmd tea.Cmd
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading records…")
	}
	summary := theme.Muted.Render(fmt.Sprintf(
		" %d sessions · %d completed · %.0f focus min",
		m.summary.Total, m.summary.Completed, m.summary.FocusMinutes))
	return lipgloss.JoinVertical(lipgloss.Left, m.list.View(), summary)
}

// Filtering reports whether the list's search filter is currently active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Reload refetches today's records and summary.
func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		recs, err := m.port.TodayRecords(ctx, time.Now())
		if err != nil {
			return RecordsLoadedMsg{Err: err}
		}
		sum, err := m.port.TodaySummary(ctx)
		return RecordsLoadedMsg{Records: recs, Summary: sum, Err: err}
	}
}
