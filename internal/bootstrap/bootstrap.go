package bootstrap

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	goalinadapter "tomado/internal/modules/goal/adapter/in"
	goaloutadapter "tomado/internal/modules/goal/adapter/out"
	goalservice "tomado/internal/modules/goal/service"
	goalusecase "tomado/internal/modules/goal/usecase"
	hookinadapter "tomado/internal/modules/hook/adapter/in"
	hookoutadapter "tomado/internal/modules/hook/adapter/out"
	hookservice "tomado/internal/modules/hook/service"
	hookusecase "tomado/internal/modules/hook/usecase"
	pomodoroinadapter "tomado/internal/modules/pomodoro/adapter/in"
	pomodorooutadapter "tomado/internal/modules/pomodoro/adapter/out"
	pomodoroout "tomado/internal/modules/pomodoro/port/out"
	pomodoroservice "tomado/internal/modules/pomodoro/service"
	pomodorousecase "tomado/internal/modules/pomodoro/usecase"
	settingsinadapter "tomado/internal/modules/settings/adapter/in"
	settingsoutadapter "tomado/internal/modules/settings/adapter/out"
	settingsservice "tomado/internal/modules/settings/service"
	settingsusecase "tomado/internal/modules/settings/usecase"
	taskinadapter "tomado/internal/modules/task/adapter/in"
	taskoutadapter "tomado/internal/modules/task/adapter/out"
	taskservice "tomado/internal/modules/task/service"
	taskusecase "tomado/internal/modules/task/usecase"
	"tomado/internal/platform/clock"
	"tomado/internal/platform/config"
	"tomado/internal/platform/id"
	"tomado/internal/platform/logging"
	uiapp "tomado/internal/ui/app"
)

type App struct {
	PomodoroCLI pomodoroinadapter.CLIHandler
	PomodoroTUI pomodoroinadapter.TUIHandler
	TaskCLI     taskinadapter.CLIHandler
	GoalCLI     goalinadapter.CLIHandler
	SettingsCLI settingsinadapter.CLIHandler
	HookCLI     hookinadapter.CLIHandler
}

func New(cfg config.Config) (*App, error) {
	log := logging.Init(cfg.LogPath)
	clk := clock.SystemClock{}
	ids := id.UUID{}

	settingsUC := settingsusecase.NewInteractor(settingsservice.NewSettingsService(
		settingsoutadapter.NewViperSettingsStore(cfg.SettingsPath),
	))

	goalUC := goalusecase.NewInteractor(goalservice.NewGoalService(
		clk, ids, goaloutadapter.NewFileGoalStore(cfg.HomePath),
	))

	taskUC := taskusecase.NewInteractor(taskservice.NewTaskService(
		clk, ids, taskoutadapter.NewFileTaskStore(cfg.HomePath),
	), goalUC)

	hookUC := hookusecase.NewInteractor(hookservice.NewHookService(
		hookoutadapter.NewFileManifestStore(cfg.HomePath),
		hookoutadapter.NewGRPCHost(),
	), log)

	// Redis takes over engine-state persistence when an address is set;
	// the file store is the default.
	var stateStore pomodoroout.StateStore
	if cfg.RedisAddr != "" {
		stateStore = pomodorooutadapter.NewRedisStateStore(cfg.RedisAddr)
	} else {
		stateStore = pomodorooutadapter.NewFileStateStore(cfg.StatePath)
	}

	projector, err := pomodorooutadapter.NewSQLiteRecordProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new record projector: %w", err)
	}

	pomodoroUC := pomodorousecase.NewInteractor(
		pomodoroservice.NewPomodoroService(clk, ids),
		settingsUC,
		taskUC,
		hookUC,
		stateStore,
		projector,
		pomodorooutadapter.NewMarkdownRecordNoteStore(cfg.HomePath),
		pomodorooutadapter.NewDBusNotifier(),
		log,
	)
	if _, err := pomodoroUC.Restore(context.Background()); err != nil {
		return nil, fmt.Errorf("restore engine state: %w", err)
	}

	return &App{
		PomodoroCLI: pomodoroinadapter.NewCLIHandler(pomodoroUC),
		PomodoroTUI: pomodoroinadapter.NewTUIHandler(pomodoroUC),
		TaskCLI:     taskinadapter.NewCLIHandler(taskUC),
		GoalCLI:     goalinadapter.NewCLIHandler(goalUC),
		SettingsCLI: settingsinadapter.NewCLIHandler(settingsUC),
		HookCLI:     hookinadapter.NewCLIHandler(hookUC),
	}, nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.PomodoroTUI, app.TaskCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
