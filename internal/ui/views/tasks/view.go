package tasks

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	taskdto "tomado/internal/modules/task/dto"
	"tomado/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type TaskPort interface {
	List(ctx context.Context) ([]taskdto.TaskOutput, error)
	Complete(ctx context.Context, taskID string) (taskdto.TaskOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type TasksLoadedMsg struct {
	Tasks []taskdto.TaskOutput
	Err   error
}

type TaskCompletedMsg struct {
	Task taskdto.TaskOutput
	Err  error
}

// ─── list item ───────────────────────────────────────────────────────────────

type taskItem struct {
	task taskdto.TaskOutput
}

func (i taskItem) Title() string {
	if i.task.Status == "done" {
		return "✓ " + i.task.Title
	}
	return i.task.Title
}

func (i taskItem) Description() string {
	desc := fmt.Sprintf("%s · %s · %d", i.task.Status, i.task.Priority, i.task.PomodorosSpent)
	if i.task.PomodorosEstimated > 0 {
		desc += fmt.Sprintf("/%d", i.task.PomodorosEstimated)
	}
	desc += " pomodoros"
	return desc
}

func (i taskItem) FilterValue() string { return i.task.Title }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    TaskPort
	list    list.Model
	spinner spinner.Model
	loading bool
	width   int
	height  int
}

func New(port TaskPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Tasks"
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
		m.list.SetSize(m.width, m.height)

	case TasksLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Tasks — " + msg.Err.Error()
			return m, nil
		}
		m.list.Title = "Tasks"
		items := make([]list.Item, len(msg.Tasks))
		for i, t := range msg.Tasks {
			items[i] = taskItem{task: t}
		}
		cmds = append(cmds, m.list.SetItems(items))

	case TaskCompletedMsg:
		if msg.Err == nil {
			cmds = append(cmds, m.Reload())
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if !m.Filtering() {
			switch msg.String() {
			case "c":
				if id, ok := m.SelectedTaskID(); ok {
					cmds = append(cmds, m.completeCmd(id))
				}
				return m, tea.Batch(cmds...)
			case "r":
				cmds = append(cmds, m.Reload())
				return m, tea.Batch(cmds...)
			}
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
			m.spinner.View()+" Loading tasks…")
	}
	return m.list.View()
}

// SelectedTaskID returns the current selection's task ID, if any.
func (m Model) SelectedTaskID() (string, bool) {
	if item, ok := m.list.SelectedItem().(taskItem); ok {
		return item.task.ID, true
	}
	return "", false
}

// SelectedTaskTitle returns the current selection's title.
func (m Model) SelectedTaskTitle() string {
	if item, ok := m.list.SelectedItem().(taskItem); ok {
		return item.task.Title
	}
	return ""
}

// Filtering reports whether the list's search filter is currently active.
// The app model checks this to avoid consuming global keys during a search.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Reload refetches the task collection.
func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		tasks, err := m.port.List(context.Background())
		return TasksLoadedMsg{Tasks: tasks, Err: err}
	}
}

func (m Model) completeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		task, err := m.port.Complete(context.Background(), id)
		return TaskCompletedMsg{Task: task, Err: err}
	}
}
