package domain

import "fmt"

// Pomodoro holds the user-tunable timer preferences. All durations are
// minutes.
type Pomodoro struct {
	WorkMinutes        int  `mapstructure:"work_minutes"`
	ShortBreakMinutes  int  `mapstructure:"short_break_minutes"`
	LongBreakMinutes   int  `mapstructure:"long_break_minutes"`
	LongBreakInterval  int  `mapstructure:"long_break_interval"`
	AutoStartBreaks    bool `mapstructure:"auto_start_breaks"`
	AutoStartPomodoros bool `mapstructure:"auto_start_pomodoros"`
	NotifySessionEnd   bool `mapstructure:"notify_session_end"`
	NotifyBreakEnd     bool `mapstructure:"notify_break_end"`
}

func Default() Pomodoro {
	return Pomodoro{
		WorkMinutes:        25,
		ShortBreakMinutes:  5,
		LongBreakMinutes:   15,
		LongBreakInterval:  4,
		AutoStartBreaks:    true,
		AutoStartPomodoros: false,
		NotifySessionEnd:   true,
		NotifyBreakEnd:     true,
	}
}

func (p Pomodoro) Validate() error {
	if p.WorkMinutes <= 0 {
		return fmt.Errorf("work duration must be positive, got %d", p.WorkMinutes)
	}
	if p.ShortBreakMinutes <= 0 {
		return fmt.Errorf("short break duration must be positive, got %d", p.ShortBreakMinutes)
	}
	if p.LongBreakMinutes <= 0 {
		return fmt.Errorf("long break duration must be positive, got %d", p.LongBreakMinutes)
	}
	if p.LongBreakInterval < 1 {
		return fmt.Errorf("long break interval must be at least 1, got %d", p.LongBreakInterval)
	}
	return nil
}

// Durations is the resolved policy the engine consumes: seconds, not
// minutes. An interval of 1 makes every completed session a long break.
type Durations struct {
	WorkSeconds        int
	ShortBreakSeconds  int
	LongBreakSeconds   int
	LongBreakInterval  int
	AutoStartBreaks    bool
	AutoStartPomodoros bool
	NotifySessionEnd   bool
	NotifyBreakEnd     bool
}

func (p Pomodoro) Durations() Durations {
	return Durations{
		WorkSeconds:        p.WorkMinutes * 60,
		ShortBreakSeconds:  p.ShortBreakMinutes * 60,
		LongBreakSeconds:   p.LongBreakMinutes * 60,
		LongBreakInterval:  p.LongBreakInterval,
		AutoStartBreaks:    p.AutoStartBreaks,
		AutoStartPomodoros: p.AutoStartPomodoros,
		NotifySessionEnd:   p.NotifySessionEnd,
		NotifyBreakEnd:     p.NotifyBreakEnd,
	}
}
