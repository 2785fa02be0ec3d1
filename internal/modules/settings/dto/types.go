package dto

type SettingsOutput struct {
	WorkMinutes        int
	ShortBreakMinutes  int
	LongBreakMinutes   int
	LongBreakInterval  int
	AutoStartBreaks    bool
	AutoStartPomodoros bool
	NotifySessionEnd   bool
	NotifyBreakEnd     bool
}

// UpdateInput carries partial updates; nil fields are left unchanged.
type UpdateInput struct {
	WorkMinutes        *int
	ShortBreakMinutes  *int
	LongBreakMinutes   *int
	LongBreakInterval  *int
	AutoStartBreaks    *bool
	AutoStartPomodoros *bool
	NotifySessionEnd   *bool
	NotifyBreakEnd     *bool
}

type DurationsOutput struct {
	WorkSeconds        int
	ShortBreakSeconds  int
	LongBreakSeconds   int
	LongBreakInterval  int
	AutoStartBreaks    bool
	AutoStartPomodoros bool
	NotifySessionEnd   bool
	NotifyBreakEnd     bool
}
