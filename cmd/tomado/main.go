package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tomado/internal/bootstrap"
	goaldto "tomado/internal/modules/goal/dto"
	pomodorodto "tomado/internal/modules/pomodoro/dto"
	settingsdto "tomado/internal/modules/settings/dto"
	taskdto "tomado/internal/modules/task/dto"
	"tomado/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var homePath string

	root := &cobra.Command{
		Use:           "tomado",
		Short:         "Pomodoro session engine for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&homePath, "home", "", "data directory (default ~/.tomado)")

	root.AddCommand(newTUICmd(&homePath))
	root.AddCommand(newStartCmd(&homePath))
	root.AddCommand(newPauseCmd(&homePath))
	root.AddCommand(newResumeCmd(&homePath))
	root.AddCommand(newStopCmd(&homePath))
	root.AddCommand(newBreakCmd(&homePath))
	root.AddCommand(newStopBreakCmd(&homePath))
	root.AddCommand(newInterruptCmd(&homePath))
	root.AddCommand(newNoteCmd(&homePath))
	root.AddCommand(newStatusCmd(&homePath))
	root.AddCommand(newRecordsCmd(&homePath))
	root.AddCommand(newStatsCmd(&homePath))
	root.AddCommand(newTaskCmd(&homePath))
	root.AddCommand(newGoalCmd(&homePath))
	root.AddCommand(newSettingsCmd(&homePath))
	root.AddCommand(newHookCmd(&homePath))
	root.AddCommand(newExportCmd(&homePath))
	root.AddCommand(newImportCmd(&homePath))
	root.AddCommand(newResetCmd(&homePath))
	root.AddCommand(newReindexCmd(&homePath))
	return root
}

func loadApp(homePath string) (*bootstrap.App, error) {
	cfg, err := config.New(homePath)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func printSession(cmd *cobra.Command, s pomodorodto.SessionOutput) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "status=%s left=%02d:%02d cycle=%d",
		s.Status, s.TimeLeft/60, s.TimeLeft%60, s.CompletedInCycle)
	if s.TaskID != "" {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), " task=%s", s.TaskID)
	}
	if s.Status == "break" && s.IsLongBreak {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), " long=true")
	}
	if !s.Applied {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), " (no-op)")
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout())
}

func newTUICmd(homePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run tomado terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func newStartCmd(homePath *string) *cobra.Command {
	var taskID string
	start := &cobra.Command{
		Use:   "start",
		Short: "Start a work session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			out, err := app.PomodoroCLI.Start(context.Background(), taskID)
			if err != nil {
				return err
			}
			printSession(cmd, out)
			return nil
		},
	}
	start.Flags().StringVar(&taskID, "task", "", "task id to track against (optional)")
	return start
}

func newPauseCmd(homePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "pause",
		Short: "Pause the running session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			out, err := app.PomodoroCLI.Pause(context.Background())
			if err != nil {
				return err
			}
			printSession(cmd, out)
			return nil
		},
	}
}

func newResumeCmd(homePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "resume",
		Short: "Resume a paused session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			out, err := app.PomodoroCLI.Resume(context.Background())
			if err != nil {
				return err
			}
			printSession(cmd, out)
			return nil
		},
	}
}

func newStopCmd(homePath *string) *cobra.Command {
	var completed bool
	stop := &cobra.Command{
		Use:   "stop",
		Short: "Stop the session and archive its record",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			out, err := app.PomodoroCLI.Stop(context.Background(), completed)
			if err != nil {
				return err
			}
			if out.Record.ID == "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "nothing to stop")
				return nil
			}
			outcome := "aborted"
			if out.Record.Completed {
				outcome = "completed"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "stopped %s: %d min (%s)\n",
				out.Record.ID, out.Record.DurationMinutes, outcome)
			if out.NotePath != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "note=%s\n", out.NotePath)
			}
			if out.AutoBreakStarted {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "break started (%02d:%02d)\n",
					out.Session.TimeLeft/60, out.Session.TimeLeft%60)
			}
			return nil
		},
	}
	stop.Flags().BoolVar(&completed, "completed", true, "archive the session as completed")
	return stop
}

func newBreakCmd(homePath *string) *cobra.Command {
	var long bool
	brk := &cobra.Command{
		Use:   "break",
		Short: "Start a break",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			var isLong *bool
			if cmd.Flags().Changed("long") {
				isLong = &long
			}
			out, err := app.PomodoroCLI.StartBreak(context.Background(), isLong)
			if err != nil {
				return err
			}
			printSession(cmd, out)
			return nil
		},
	}
	brk.Flags().BoolVar(&long, "long", false, "force a long break")
	return brk
}

func newStopBreakCmd(homePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stop-break",
		Short: "End the break",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			out, err := app.PomodoroCLI.StopBreak(context.Background())
			if err != nil {
				return err
			}
			printSession(cmd, out)
			return nil
		},
	}
}

func newInterruptCmd(homePath *string) *cobra.Command {
	var reason string
	var external bool
	interrupt := &cobra.Command{
		Use:   "interrupt --reason <text>",
		Short: "Log an interruption on the running session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(reason) == "" {
				return fmt.Errorf("--reason is required")
			}
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			out, err := app.PomodoroCLI.Interrupt(context.Background(), reason, external)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "interruptions=%d\n", len(out.Interruptions))
			return nil
		},
	}
	interrupt.Flags().StringVar(&reason, "reason", "", "what pulled you away")
	interrupt.Flags().BoolVar(&external, "external", false, "interruption came from outside")
	return interrupt
}

func newNoteCmd(homePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "note <text>",
		Short: "Set the running session's notes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			out, err := app.PomodoroCLI.Note(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if !out.Applied {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no session running")
				return nil
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "note saved")
			return nil
		},
	}
}

func newStatusCmd(homePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show engine status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			s, err := app.PomodoroCLI.Status(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "status: %s\n", s.Status)
			if s.Status != "idle" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "left: %02d:%02d / %02d:%02d\n",
					s.TimeLeft/60, s.TimeLeft%60, s.Total/60, s.Total%60)
			}
			if s.TaskID != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "task: %s\n", s.TaskID)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "cycle: %d completed\n", s.CompletedInCycle)
			for _, it := range s.Interruptions {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "interruption: %s %s (%s)\n",
					it.At.Format("15:04"), it.Reason, it.Kind)
			}
			if s.Notes != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "notes: %s\n", s.Notes)
			}
			return nil
		},
	}
}

func newRecordsCmd(homePath *string) *cobra.Command {
	var taskID, day, from, to string
	records := &cobra.Command{
		Use:   "records",
		Short: "List archived session records",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			ctx := context.Background()

			var recs []pomodorodto.RecordOutput
			switch {
			case taskID != "":
				recs, err = app.PomodoroCLI.RecordsByTask(ctx, taskID)
			case from != "" || to != "":
				if from == "" || to == "" {
					return fmt.Errorf("--from and --to must be given together")
				}
				var fromT, toT time.Time
				if fromT, err = time.ParseInLocation("2006-01-02", from, time.Local); err != nil {
					return fmt.Errorf("parse --from: %w", err)
				}
				if toT, err = time.ParseInLocation("2006-01-02", to, time.Local); err != nil {
					return fmt.Errorf("parse --to: %w", err)
				}
				recs, err = app.PomodoroCLI.RecordsByRange(ctx, fromT, toT.AddDate(0, 0, 1))
			default:
				dayT := time.Now()
				if day != "" {
					if dayT, err = time.ParseInLocation("2006-01-02", day, time.Local); err != nil {
						return fmt.Errorf("parse --day: %w", err)
					}
				}
				recs, err = app.PomodoroCLI.RecordsByDay(ctx, dayT)
			}
			if err != nil {
				return err
			}
			if len(recs) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no records")
				return nil
			}
			for _, r := range recs {
				outcome := "aborted"
				if r.Completed {
					outcome = "completed"
				}
				task := r.TaskID
				if task == "" {
					task = "-"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%dmin\t%s\t%s\tinterruptions=%d\n",
					r.ID, r.StartTime.Local().Format("2006-01-02 15:04"), r.DurationMinutes,
					outcome, task, len(r.Interruptions))
			}
			return nil
		},
	}
	records.Flags().StringVar(&taskID, "task", "", "filter by task id")
	records.Flags().StringVar(&day, "day", "", "local day (YYYY-MM-DD, default today)")
	records.Flags().StringVar(&from, "from", "", "range start day (YYYY-MM-DD)")
	records.Flags().StringVar(&to, "to", "", "range end day inclusive (YYYY-MM-DD)")
	return records
}

func newStatsCmd(homePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show today's summary and per-task focus totals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			ctx := context.Background()
			sum, err := app.PomodoroCLI.TodaySummary(ctx)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "today: %d sessions, %d completed, %.1f focus min\n",
				sum.Total, sum.Completed, sum.FocusMinutes)
			totals, err := app.PomodoroCLI.TaskTotals(ctx)
			if err != nil {
				return err
			}
			for _, t := range totals {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\tsessions=%d\tfocus=%.1fmin\n",
					t.TaskID, t.Sessions, t.FocusMinutes)
			}
			return nil
		},
	}
}

func newTaskCmd(homePath *string) *cobra.Command {
	task := &cobra.Command{Use: "task", Short: "Manage tasks"}

	var priority, quadrant, goalID string
	var tags []string
	var estimated int
	add := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			out, err := app.TaskCLI.Add(context.Background(), strings.Join(args, " "),
				priority, quadrant, goalID, tags, estimated)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s)\n", out.Title, out.ID)
			return nil
		},
	}
	add.Flags().StringVar(&priority, "priority", "", "low|medium|high")
	add.Flags().StringVar(&quadrant, "quadrant", "", "eisenhower quadrant")
	add.Flags().StringVar(&goalID, "goal", "", "goal id to link")
	add.Flags().StringSliceVar(&tags, "tags", nil, "tags")
	add.Flags().IntVar(&estimated, "estimate", 0, "estimated pomodoros")

	task.AddCommand(add)
	task.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			tasks, err := app.TaskCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no tasks")
				return nil
			}
			for _, t := range tasks {
				spent := fmt.Sprintf("%d", t.PomodorosSpent)
				if t.PomodorosEstimated > 0 {
					spent += fmt.Sprintf("/%d", t.PomodorosEstimated)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\tpomodoros=%s\n",
					t.ID, t.Status, t.Priority, t.Title, spent)
			}
			return nil
		},
	})
	task.AddCommand(&cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a task done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			out, err := app.TaskCLI.Complete(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "completed %s\n", out.Title)
			return nil
		},
	})
	task.AddCommand(&cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			if err := app.TaskCLI.Remove(context.Background(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
			return nil
		},
	})
	return task
}

func newGoalCmd(homePath *string) *cobra.Command {
	goal := &cobra.Command{Use: "goal", Short: "Manage goals"}

	var category, kind string
	add := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a goal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			out, err := app.GoalCLI.Add(context.Background(), strings.Join(args, " "), category, kind)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s)\n", out.Title, out.ID)
			return nil
		},
	}
	add.Flags().StringVar(&category, "category", "", "work|study|health|personal")
	add.Flags().StringVar(&kind, "kind", "", "short_term|long_term")

	goal.AddCommand(add)
	goal.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List goals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			goals, err := app.GoalCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(goals) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no goals")
				return nil
			}
			for _, g := range goals {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d%%\tpomodoros=%d\t%s\n",
					g.ID, g.Status, g.Category, g.Progress, g.PomodorosSpent, g.Title)
			}
			return nil
		},
	})

	var progress int
	progressCmd := &cobra.Command{
		Use:   "progress <id> --value <0..100>",
		Short: "Update goal progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			out, err := app.GoalCLI.UpdateProgress(context.Background(), args[0], progress)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s now %d%% (%s)\n", out.Title, out.Progress, out.Status)
			return nil
		},
	}
	progressCmd.Flags().IntVar(&progress, "value", 0, "progress percentage")

	goal.AddCommand(progressCmd)
	goal.AddCommand(&cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			if err := app.GoalCLI.Remove(context.Background(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
			return nil
		},
	})
	return goal
}

func newSettingsCmd(homePath *string) *cobra.Command {
	settings := &cobra.Command{Use: "settings", Short: "Show and change engine settings"}

	settings.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			s, err := app.SettingsCLI.Get(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "work_minutes: %d\n", s.WorkMinutes)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "short_break_minutes: %d\n", s.ShortBreakMinutes)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "long_break_minutes: %d\n", s.LongBreakMinutes)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "long_break_interval: %d\n", s.LongBreakInterval)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "auto_start_breaks: %t\n", s.AutoStartBreaks)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "auto_start_pomodoros: %t\n", s.AutoStartPomodoros)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "notify_session_end: %t\n", s.NotifySessionEnd)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "notify_break_end: %t\n", s.NotifyBreakEnd)
			return nil
		},
	})

	var work, shortBreak, longBreak, interval int
	var autoBreaks, autoPomodoros, notifySession, notifyBreak bool
	set := &cobra.Command{
		Use:   "set",
		Short: "Change settings (only given flags are applied)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			var input settingsdto.UpdateInput
			if cmd.Flags().Changed("work") {
				input.WorkMinutes = &work
			}
			if cmd.Flags().Changed("short-break") {
				input.ShortBreakMinutes = &shortBreak
			}
			if cmd.Flags().Changed("long-break") {
				input.LongBreakMinutes = &longBreak
			}
			if cmd.Flags().Changed("interval") {
				input.LongBreakInterval = &interval
			}
			if cmd.Flags().Changed("auto-breaks") {
				input.AutoStartBreaks = &autoBreaks
			}
			if cmd.Flags().Changed("auto-pomodoros") {
				input.AutoStartPomodoros = &autoPomodoros
			}
			if cmd.Flags().Changed("notify-session-end") {
				input.NotifySessionEnd = &notifySession
			}
			if cmd.Flags().Changed("notify-break-end") {
				input.NotifyBreakEnd = &notifyBreak
			}
			out, err := app.SettingsCLI.Update(context.Background(), input)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "settings saved: work=%dmin short=%dmin long=%dmin interval=%d\n",
				out.WorkMinutes, out.ShortBreakMinutes, out.LongBreakMinutes, out.LongBreakInterval)
			return nil
		},
	}
	set.Flags().IntVar(&work, "work", 0, "work minutes")
	set.Flags().IntVar(&shortBreak, "short-break", 0, "short break minutes")
	set.Flags().IntVar(&longBreak, "long-break", 0, "long break minutes")
	set.Flags().IntVar(&interval, "interval", 0, "sessions per long break")
	set.Flags().BoolVar(&autoBreaks, "auto-breaks", false, "auto-start breaks after completed sessions")
	set.Flags().BoolVar(&autoPomodoros, "auto-pomodoros", false, "auto-start work after break expiry")
	set.Flags().BoolVar(&notifySession, "notify-session-end", false, "desktop notification at session end")
	set.Flags().BoolVar(&notifyBreak, "notify-break-end", false, "desktop notification at break end")
	settings.AddCommand(set)
	return settings
}

func newHookCmd(homePath *string) *cobra.Command {
	hook := &cobra.Command{Use: "hook", Short: "Hook operations"}

	hook.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List hook manifests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			hooks, err := app.HookCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(hooks) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no hooks configured")
				return nil
			}
			for _, h := range hooks {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s@%s enabled=%t events=%s binary=%s\n",
					h.Name, h.Version, h.Enabled, strings.Join(h.Events, ","), h.Binary)
			}
			return nil
		},
	})

	hook.AddCommand(&cobra.Command{
		Use:   "doctor",
		Short: "Validate hook checksums and lifecycle",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			results, err := app.HookCLI.Doctor(context.Background())
			if err != nil {
				return err
			}
			if len(results) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no hooks configured")
				return nil
			}
			for _, r := range results {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s checksum=%t binary=%t lifecycle=%t",
					r.Name, r.ChecksumValid, r.BinaryReachable, r.LifecycleOK)
				if r.Error != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), " error=%q", r.Error)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	})
	return hook
}

// exportEnvelope is the versioned payload written by export and read by
// import. It carries everything the engine cannot rebuild from scratch.
type exportEnvelope struct {
	Version    int                        `json:"version"`
	ExportedAt time.Time                  `json:"exportedAt"`
	Pomodoro   pomodorodto.SnapshotOutput `json:"pomodoro"`
	Tasks      []taskdto.TaskOutput       `json:"tasks"`
	Goals      []goaldto.GoalOutput       `json:"goals"`
}

func newExportCmd(homePath *string) *cobra.Command {
	var outPath string
	export := &cobra.Command{
		Use:   "export",
		Short: "Export records, tasks, and goals as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			ctx := context.Background()

			snap, err := app.PomodoroCLI.Snapshot(ctx)
			if err != nil {
				return err
			}
			tasks, err := app.TaskCLI.List(ctx)
			if err != nil {
				return err
			}
			goals, err := app.GoalCLI.List(ctx)
			if err != nil {
				return err
			}
			payload, err := json.MarshalIndent(exportEnvelope{
				Version:    1,
				ExportedAt: time.Now(),
				Pomodoro:   snap,
				Tasks:      tasks,
				Goals:      goals,
			}, "", "  ")
			if err != nil {
				return fmt.Errorf("encode export: %w", err)
			}
			if outPath == "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(payload))
				return nil
			}
			if err := os.WriteFile(outPath, payload, 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", outPath)
			return nil
		},
	}
	export.Flags().StringVar(&outPath, "out", "", "output file (default stdout)")
	return export
}

func newImportCmd(homePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a previously exported JSON payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read import: %w", err)
			}
			var envelope exportEnvelope
			if err := json.Unmarshal(payload, &envelope); err != nil {
				return fmt.Errorf("decode import: %w", err)
			}
			if envelope.Version != 1 {
				return fmt.Errorf("unsupported export version %d", envelope.Version)
			}
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			ctx := context.Background()

			if err := app.GoalCLI.Replace(ctx, envelope.Goals); err != nil {
				return fmt.Errorf("import goals: %w", err)
			}
			if err := app.TaskCLI.Replace(ctx, envelope.Tasks); err != nil {
				return fmt.Errorf("import tasks: %w", err)
			}
			if err := app.PomodoroCLI.RestoreSnapshot(ctx, pomodorodto.SnapshotInput(envelope.Pomodoro)); err != nil {
				return fmt.Errorf("import records: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %d records, %d tasks, %d goals\n",
				len(envelope.Pomodoro.Records), len(envelope.Tasks), len(envelope.Goals))
			return nil
		},
	}
}

func newResetCmd(homePath *string) *cobra.Command {
	var yes bool
	reset := &cobra.Command{
		Use:   "reset",
		Short: "Wipe records, tasks, and goals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("refusing to wipe data without --yes")
			}
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			ctx := context.Background()
			if err := app.PomodoroCLI.Reset(ctx); err != nil {
				return err
			}
			if err := app.TaskCLI.Reset(ctx); err != nil {
				return err
			}
			if err := app.GoalCLI.Reset(ctx); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "all data wiped")
			return nil
		},
	}
	reset.Flags().BoolVar(&yes, "yes", false, "confirm the wipe")
	return reset
}

func newReindexCmd(homePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the SQLite record projection from the archive",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			if err := app.PomodoroCLI.Reindex(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "reindex completed")
			return nil
		},
	}
}
