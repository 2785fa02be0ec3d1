package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tomado/internal/modules/pomodoro/dto"
	taskdto "tomado/internal/modules/task/dto"
	"tomado/internal/ui/components"
	"tomado/internal/ui/theme"
	recordsview "tomado/internal/ui/views/records"
	tasksview "tomado/internal/ui/views/tasks"
	timerview "tomado/internal/ui/views/timer"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type enginePort interface {
	Tick(ctx context.Context) (dto.TickOutput, error)
	Start(ctx context.Context, taskID, taskTitle string) (dto.SessionOutput, error)
	Pause(ctx context.Context) (dto.SessionOutput, error)
	Resume(ctx context.Context) (dto.SessionOutput, error)
	Stop(ctx context.Context, completed bool) (dto.StopOutput, error)
	StartBreak(ctx context.Context) (dto.SessionOutput, error)
	StopBreak(ctx context.Context) (dto.SessionOutput, error)
	Interrupt(ctx context.Context, reason, kind string) (dto.SessionOutput, error)
	Note(ctx context.Context, text string) (dto.SessionOutput, error)
	Status(ctx context.Context) (dto.SessionOutput, error)
	TodaySummary(ctx context.Context) (dto.SummaryOutput, error)
	TodayRecords(ctx context.Context, day time.Time) ([]dto.RecordOutput, error)
}

type taskPort interface {
	List(ctx context.Context) ([]taskdto.TaskOutput, error)
	Complete(ctx context.Context, taskID string) (taskdto.TaskOutput, error)
	Add(ctx context.Context, title, priority, quadrant, goalID string, tags []string, estimated int) (taskdto.TaskOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabTimer tabID = iota
	tabTasks
	tabRecords
	tabCount
)

var tabLabels = [tabCount]string{
	"Timer", "Tasks", "Records",
}

// ─── async messages ───────────────────────────────────────────────────────────

// clockTickMsg fires once per second while a countdown is live. The loop is
// armed when the engine enters working or break and is not re-armed in any
// other state, so an idle program schedules nothing.
type clockTickMsg time.Time

type engineTickedMsg struct {
	out dto.TickOutput
	err error
}

type sessionMsg struct {
	verb    string
	session dto.SessionOutput
	err     error
}

type stoppedMsg struct {
	out dto.StopOutput
	err error
}

type summaryMsg struct {
	summary dto.SummaryOutput
	err     error
}

type taskAddedMsg struct {
	task taskdto.TaskOutput
	err  error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab       key.Binding
	Help      key.Binding
	Palette   key.Binding
	Quit      key.Binding
	Start     key.Binding
	PauseRes  key.Binding
	StopDone  key.Binding
	StopAbort key.Binding
	Break     key.Binding
	Interrupt key.Binding
	Note      key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette:   key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Start:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start session")),
		PauseRes:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause/resume")),
		StopDone:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "stop (done)")),
		StopAbort: key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "stop (abort)")),
		Break:     key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "break on/off")),
		Interrupt: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "interrupt")),
		Note:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "note")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.PauseRes, k.StopDone, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.PauseRes, k.StopDone, k.StopAbort},
		{k.Break, k.Interrupt, k.Note},
		{k.Tab, k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the engine
// snapshot, the countdown driver, the help overlay, and the command palette.
// All business logic is delegated to port interfaces; timer rendering and
// the task/record lists are delegated to sub-views.
type Model struct {
	engine enginePort
	tasks  taskPort

	// sub-views (one per tab)
	timerView   timerview.Model
	tasksView   tasksview.Model
	recordsView recordsview.Model

	// global UI state
	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	session   dto.SessionOutput
	ticking   bool
	status    string
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(engine enginePort, tasks taskPort) Model {
	return Model{
		engine:      engine,
		tasks:       tasks,
		timerView:   timerview.New(),
		tasksView:   tasksview.New(taskPortBridge{p: tasks}),
		recordsView: recordsview.New(recordsPortBridge{p: engine}),
		activeTab:   tabTimer,
		keys:        defaultKeys(),
		help:        help.New(),
		palette:     components.NewPalette(),
		status:      "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.tasksView.Init(),
		m.recordsView.Init(),
		m.statusCmd(),
		m.summaryCmd(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open. The countdown messages
	// still have to reach us, so only key handling is short-circuited.
	if m.palette.Visible() {
		if _, isKey := msg.(tea.KeyMsg); isKey {
			var cmd tea.Cmd
			m.palette, cmd = m.palette.Update(msg)
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(minInt(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()

	case clockTickMsg:
		return m, m.engineTickCmd()

	case engineTickedMsg:
		if msg.err != nil {
			m.status = "tick: " + msg.err.Error()
			m.ticking = false
			return m, nil
		}
		m.applySession(msg.out.Session)
		switch msg.out.Expired {
		case "work":
			m.status = "session complete"
			if msg.out.Stop != nil && msg.out.Stop.AutoBreakStarted {
				m.status = "session complete — break started"
			}
			cmds = append(cmds, m.summaryCmd(), m.recordsView.Reload(), m.tasksView.Reload())
		case "break":
			m.status = "break over"
			if msg.out.Session.Status == "working" {
				m.status = "break over — back to work"
			}
		}
		// Re-arm only while a countdown is live; otherwise the loop dies here.
		if m.countdownLive() {
			cmds = append(cmds, armClock())
		} else {
			m.ticking = false
		}
		return m, tea.Batch(cmds...)

	case sessionMsg:
		if msg.err != nil {
			m.status = msg.verb + ": " + msg.err.Error()
			return m, nil
		}
		m.applySession(msg.session)
		if msg.session.Applied {
			m.status = msg.verb
		} else {
			m.status = msg.verb + " ignored"
		}
		cmds = append(cmds, m.maybeArmClock())
		return m, tea.Batch(cmds...)

	case stoppedMsg:
		if msg.err != nil {
			m.status = "stop: " + msg.err.Error()
			return m, nil
		}
		m.applySession(msg.out.Session)
		if !msg.out.Session.Applied && msg.out.Record.ID == "" {
			m.status = "stop ignored"
			return m, nil
		}
		m.status = fmt.Sprintf("stopped (%d min)", msg.out.Record.DurationMinutes)
		if msg.out.AutoBreakStarted {
			m.status += " — break started"
		}
		cmds = append(cmds, m.summaryCmd(), m.recordsView.Reload(), m.tasksView.Reload(), m.maybeArmClock())
		return m, tea.Batch(cmds...)

	case summaryMsg:
		if msg.err == nil {
			m.timerView.SetSummary(msg.summary)
		}

	case taskAddedMsg:
		if msg.err != nil {
			m.status = "task add: " + msg.err.Error()
		} else {
			m.status = "task added: " + msg.task.Title
			cmds = append(cmds, m.tasksView.Reload())
		}
		return m, tea.Batch(cmds...)

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to sub-view when its search filter is active.
		if m.subViewFiltering() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		case "?":
			m.showHelp = !m.showHelp
		case ":":
			return m, m.palette.Open()
		case "s":
			if m.activeTab == tabTasks {
				if id, ok := m.tasksView.SelectedTaskID(); ok {
					m.activeTab = tabTimer
					return m, m.startCmd(id, m.tasksView.SelectedTaskTitle())
				}
			}
			if m.activeTab == tabTimer {
				return m, m.startCmd("", "")
			}
		case " ":
			switch m.session.Status {
			case "working":
				return m, m.sessionCmd("paused", m.engine.Pause)
			case "paused":
				return m, m.sessionCmd("resumed", m.engine.Resume)
			}
		case "x":
			if m.stoppable() {
				return m, m.stopCmd(true)
			}
		case "X":
			if m.stoppable() {
				return m, m.stopCmd(false)
			}
		case "b":
			if m.session.Status == "break" {
				return m, m.sessionCmd("break stopped", m.engine.StopBreak)
			}
			return m, m.sessionCmd("break started", m.engine.StartBreak)
		case "i":
			return m, m.palette.OpenWith("interrupt ")
		case "n":
			return m, m.palette.OpenWith("note ")
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabTimer:
		m.timerView, tabCmd = m.timerView.Update(msg)
	case tabTasks:
		m.tasksView, tabCmd = m.tasksView.Update(msg)
	case tabRecords:
		m.recordsView, tabCmd = m.recordsView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabTimer:
		return m.timerView.View()
	case tabTasks:
		return m.tasksView.View()
	case tabRecords:
		return m.recordsView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "tomado  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	switch m.session.Status {
	case "working":
		left = theme.Hot.Render("● "+clock(m.session.TimeLeft)) + "  " + left
	case "paused":
		left = theme.Muted.Render("◌ "+clock(m.session.TimeLeft)) + "  " + left
	case "break":
		left = theme.Good.Render("● "+clock(m.session.TimeLeft)) + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "start":
		taskID := ""
		if len(parts) >= 2 {
			taskID = parts[1]
		} else if id, ok := m.tasksView.SelectedTaskID(); ok && m.activeTab == tabTasks {
			taskID = id
		}
		m.activeTab = tabTimer
		return m, m.startCmd(taskID, "")

	case "pause":
		return m, m.sessionCmd("paused", m.engine.Pause)

	case "resume":
		return m, m.sessionCmd("resumed", m.engine.Resume)

	case "stop:done":
		return m, m.stopCmd(true)

	case "stop:abort":
		return m, m.stopCmd(false)

	case "break":
		return m, m.sessionCmd("break started", m.engine.StartBreak)

	case "stop-break":
		return m, m.sessionCmd("break stopped", m.engine.StopBreak)

	case "interrupt":
		if len(parts) < 3 {
			m.status = "usage: interrupt <external|internal> <reason>"
			return m, nil
		}
		kind := parts[1]
		reason := strings.TrimSpace(strings.TrimPrefix(input, parts[0]+" "+parts[1]))
		return m, m.interruptCmd(reason, kind)

	case "note":
		text := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))
		return m, m.noteCmd(text)

	case "task:add":
		if len(parts) < 2 {
			m.status = "usage: task:add <title>"
			return m, nil
		}
		title := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))
		return m, m.addTaskCmd(title)

	case "task:done":
		if id, ok := m.tasksView.SelectedTaskID(); ok {
			m.activeTab = tabTasks
			return m, func() tea.Msg {
				task, err := m.tasks.Complete(context.Background(), id)
				return tasksview.TaskCompletedMsg{Task: task, Err: err}
			}
		}
		m.status = "no task selected"
		return m, nil

	case "reset-view":
		return m, tea.Batch(m.statusCmd(), m.summaryCmd(), m.tasksView.Reload(), m.recordsView.Reload())

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) applySession(s dto.SessionOutput) {
	m.session = s
	m.timerView.SetSession(s)
}

// countdownLive reports whether the engine is in a state where seconds
// actually elapse.
func (m Model) countdownLive() bool {
	return m.session.Status == "working" || m.session.Status == "break"
}

func (m Model) stoppable() bool {
	return m.session.Status == "working" || m.session.Status == "paused"
}

// maybeArmClock starts the once-per-second driver if a countdown is live and
// no tick is already in flight.
func (m *Model) maybeArmClock() tea.Cmd {
	if !m.countdownLive() || m.ticking {
		return nil
	}
	m.ticking = true
	return armClock()
}

func armClock() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

// subViewFiltering reports whether the active tab's list filter is open,
// in which case global key bindings must yield to allow free typing.
func (m Model) subViewFiltering() bool {
	switch m.activeTab {
	case tabTasks:
		return m.tasksView.Filtering()
	case tabRecords:
		return m.recordsView.Filtering()
	}
	return false
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.timerView, _ = m.timerView.Update(sz)
	m.tasksView, _ = m.tasksView.Update(sz)
	m.recordsView, _ = m.recordsView.Update(sz)
}

func clock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) statusCmd() tea.Cmd {
	return func() tea.Msg {
		s, err := m.engine.Status(context.Background())
		return sessionMsg{verb: "ready", session: s, err: err}
	}
}

func (m Model) summaryCmd() tea.Cmd {
	return func() tea.Msg {
		sum, err := m.engine.TodaySummary(context.Background())
		return summaryMsg{summary: sum, err: err}
	}
}

func (m Model) engineTickCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.engine.Tick(context.Background())
		return engineTickedMsg{out: out, err: err}
	}
}

func (m Model) startCmd(taskID, taskTitle string) tea.Cmd {
	return func() tea.Msg {
		s, err := m.engine.Start(context.Background(), taskID, taskTitle)
		return sessionMsg{verb: "started", session: s, err: err}
	}
}

func (m Model) sessionCmd(verb string, op func(context.Context) (dto.SessionOutput, error)) tea.Cmd {
	return func() tea.Msg {
		s, err := op(context.Background())
		return sessionMsg{verb: verb, session: s, err: err}
	}
}

func (m Model) stopCmd(completed bool) tea.Cmd {
	return func() tea.Msg {
		out, err := m.engine.Stop(context.Background(), completed)
		return stoppedMsg{out: out, err: err}
	}
}

func (m Model) interruptCmd(reason, kind string) tea.Cmd {
	return func() tea.Msg {
		s, err := m.engine.Interrupt(context.Background(), reason, kind)
		return sessionMsg{verb: "interruption noted", session: s, err: err}
	}
}

func (m Model) noteCmd(text string) tea.Cmd {
	return func() tea.Msg {
		s, err := m.engine.Note(context.Background(), text)
		return sessionMsg{verb: "note saved", session: s, err: err}
	}
}

func (m Model) addTaskCmd(title string) tea.Cmd {
	return func() tea.Msg {
		task, err := m.tasks.Add(context.Background(), title, "", "", "", nil, 0)
		return taskAddedMsg{task: task, err: err}
	}
}

// ─── port bridges ─────────────────────────────────────────────────────────────
// Each bridge narrows a broad port interface to the minimal interface needed by
// a specific sub-view, keeping view packages free of knowledge about the wider
// port surface.

type taskPortBridge struct{ p taskPort }

func (b taskPortBridge) List(ctx context.Context) ([]taskdto.TaskOutput, error) {
	return b.p.List(ctx)
}
func (b taskPortBridge) Complete(ctx context.Context, id string) (taskdto.TaskOutput, error) {
	return b.p.Complete(ctx, id)
}

type recordsPortBridge struct{ p enginePort }

func (b recordsPortBridge) TodayRecords(ctx context.Context, day time.Time) ([]dto.RecordOutput, error) {
	return b.p.TodayRecords(ctx, day)
}
func (b recordsPortBridge) TodaySummary(ctx context.Context) (dto.SummaryOutput, error) {
	return b.p.TodaySummary(ctx)
}
