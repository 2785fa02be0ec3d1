package timer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tomado/internal/modules/pomodoro/dto"
	"tomado/internal/ui/theme"
)

// Model renders the live engine snapshot. It holds no port: the app model
// owns the engine and pushes fresh snapshots in after every operation and
// every tick.
type Model struct {
	session dto.SessionOutput
	summary dto.SummaryOutput
	bar     progress.Model
	width   int
	height  int
}

func New() Model {
	bar := progress.New(
		progress.WithGradient(string(theme.Mauve), string(theme.Sapphire)),
		progress.WithoutPercentage(),
	)
	return Model{bar: bar}
}

// SetSession replaces the rendered snapshot.
func (m *Model) SetSession(s dto.SessionOutput) { m.session = s }

// SetSummary replaces the today-so-far line under the countdown.
func (m *Model) SetSummary(s dto.SummaryOutput) { m.summary = s }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if sz, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = sz.Width
		m.height = sz.Height
		w := sz.Width - 8
		if w > 60 {
			w = 60
		}
		if w < 10 {
			w = 10
		}
		m.bar.Width = w
	}
	return m, nil
}

func (m Model) View() string {
	s := m.session

	var sb strings.Builder
	sb.WriteString(m.statusLine() + "\n\n")
	sb.WriteString(theme.Countdown.Render(formatClock(s.TimeLeft)) + "\n\n")
	sb.WriteString(m.bar.ViewAs(m.progress()) + "\n\n")

	if s.TaskTitle != "" {
		sb.WriteString(theme.Muted.Render("task:  ") + s.TaskTitle + "\n")
	} else if s.TaskID != "" {
		sb.WriteString(theme.Muted.Render("task:  ") + s.TaskID + "\n")
	}
	sb.WriteString(theme.Muted.Render("cycle: ") + fmt.Sprintf("%d completed", s.CompletedInCycle))
	if s.IsLongBreak {
		sb.WriteString("  " + theme.Hot.Render("long break next"))
	}
	sb.WriteString("\n")

	if len(s.Interruptions) > 0 {
		sb.WriteString("\n" + theme.Title.Render("Interruptions") + "\n")
		for _, it := range s.Interruptions {
			sb.WriteString(fmt.Sprintf("  %s %s (%s)\n",
				theme.Muted.Render(it.At.Format("15:04")), it.Reason, it.Kind))
		}
	}
	if s.Notes != "" {
		sb.WriteString("\n" + theme.Title.Render("Notes") + "\n  " + s.Notes + "\n")
	}

	sb.WriteString("\n" + theme.Muted.Render(fmt.Sprintf(
		"today: %d sessions · %d completed · %.0f focus min",
		m.summary.Total, m.summary.Completed, m.summary.FocusMinutes)))

	body := theme.Pane.Width(max(m.width-4, 20)).Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m Model) statusLine() string {
	switch m.session.Status {
	case "working":
		return theme.Hot.Render("● focusing")
	case "paused":
		return theme.Muted.Render("◌ paused")
	case "break":
		if m.session.IsLongBreak {
			return theme.Good.Render("● long break")
		}
		return theme.Good.Render("● break")
	default:
		return theme.Muted.Render("○ idle — press s to start")
	}
}

func (m Model) progress() float64 {
	if m.session.Total <= 0 {
		return 0
	}
	done := m.session.Total - m.session.TimeLeft
	return float64(done) / float64(m.session.Total)
}

func formatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
