package out

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"tomado/internal/modules/settings/domain"
	settingsout "tomado/internal/modules/settings/port/out"
)

// ViperSettingsStore keeps user preferences in a YAML file. A missing file
// is the first-run path and resolves to defaults; a present-but-broken file
// is a real error so the engine can refuse to start a session on garbage.
type ViperSettingsStore struct {
	path string
}

func NewViperSettingsStore(path string) settingsout.Store {
	return &ViperSettingsStore{path: path}
}

func (s *ViperSettingsStore) Load(_ context.Context) (domain.Pomodoro, error) {
	v := s.newViper()
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || os.IsNotExist(err) {
			return domain.Default(), nil
		}
		return domain.Pomodoro{}, fmt.Errorf("read settings file: %w", err)
	}
	settings := domain.Pomodoro{}
	if err := v.Unmarshal(&settings); err != nil {
		return domain.Pomodoro{}, fmt.Errorf("decode settings: %w", err)
	}
	return settings, nil
}

func (s *ViperSettingsStore) Save(_ context.Context, settings domain.Pomodoro) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	v := s.newViper()
	v.Set("work_minutes", settings.WorkMinutes)
	v.Set("short_break_minutes", settings.ShortBreakMinutes)
	v.Set("long_break_minutes", settings.LongBreakMinutes)
	v.Set("long_break_interval", settings.LongBreakInterval)
	v.Set("auto_start_breaks", settings.AutoStartBreaks)
	v.Set("auto_start_pomodoros", settings.AutoStartPomodoros)
	v.Set("notify_session_end", settings.NotifySessionEnd)
	v.Set("notify_break_end", settings.NotifyBreakEnd)
	if err := v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

func (s *ViperSettingsStore) newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("yaml")
	defaults := domain.Default()
	v.SetDefault("work_minutes", defaults.WorkMinutes)
	v.SetDefault("short_break_minutes", defaults.ShortBreakMinutes)
	v.SetDefault("long_break_minutes", defaults.LongBreakMinutes)
	v.SetDefault("long_break_interval", defaults.LongBreakInterval)
	v.SetDefault("auto_start_breaks", defaults.AutoStartBreaks)
	v.SetDefault("auto_start_pomodoros", defaults.AutoStartPomodoros)
	v.SetDefault("notify_session_end", defaults.NotifySessionEnd)
	v.SetDefault("notify_break_end", defaults.NotifyBreakEnd)
	return v
}
