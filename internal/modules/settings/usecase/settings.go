package usecase

import (
	"context"
	"fmt"

	"tomado/internal/modules/settings/domain"
	settingsdto "tomado/internal/modules/settings/dto"
	settingsin "tomado/internal/modules/settings/port/in"
	"tomado/internal/modules/settings/service"
	apperrors "tomado/internal/platform/errors"
	"tomado/internal/platform/logging"
)

type Interactor struct {
	svc *service.SettingsService
	log *logging.Logger
}

func NewInteractor(svc *service.SettingsService) settingsin.Usecase {
	return &Interactor{svc: svc, log: logging.Get()}
}

func (i *Interactor) Get(ctx context.Context) (settingsdto.SettingsOutput, error) {
	settings, err := i.svc.Resolve(ctx)
	if err != nil {
		return settingsdto.SettingsOutput{}, err
	}
	return toOutput(settings), nil
}

func (i *Interactor) Update(ctx context.Context, input settingsdto.UpdateInput) (settingsdto.SettingsOutput, error) {
	settings, err := i.svc.Update(ctx, func(s *domain.Pomodoro) {
		if input.WorkMinutes != nil {
			s.WorkMinutes = *input.WorkMinutes
		}
		if input.ShortBreakMinutes != nil {
			s.ShortBreakMinutes = *input.ShortBreakMinutes
		}
		if input.LongBreakMinutes != nil {
			s.LongBreakMinutes = *input.LongBreakMinutes
		}
		if input.LongBreakInterval != nil {
			s.LongBreakInterval = *input.LongBreakInterval
		}
		if input.AutoStartBreaks != nil {
			s.AutoStartBreaks = *input.AutoStartBreaks
		}
		if input.AutoStartPomodoros != nil {
			s.AutoStartPomodoros = *input.AutoStartPomodoros
		}
		if input.NotifySessionEnd != nil {
			s.NotifySessionEnd = *input.NotifySessionEnd
		}
		if input.NotifyBreakEnd != nil {
			s.NotifyBreakEnd = *input.NotifyBreakEnd
		}
	})
	if err != nil {
		return settingsdto.SettingsOutput{}, err
	}
	return toOutput(settings), nil
}

func (i *Interactor) Durations(ctx context.Context) (settingsdto.DurationsOutput, error) {
	settings, err := i.svc.Resolve(ctx)
	if err != nil {
		i.log.Warn(logging.CatSettings, "duration resolution failed: %v", err)
		return settingsdto.DurationsOutput{}, fmt.Errorf("%w: %v", apperrors.ErrSettingsUnavailable, err)
	}
	d := settings.Durations()
	return settingsdto.DurationsOutput{
		WorkSeconds:        d.WorkSeconds,
		ShortBreakSeconds:  d.ShortBreakSeconds,
		LongBreakSeconds:   d.LongBreakSeconds,
		LongBreakInterval:  d.LongBreakInterval,
		AutoStartBreaks:    d.AutoStartBreaks,
		AutoStartPomodoros: d.AutoStartPomodoros,
		NotifySessionEnd:   d.NotifySessionEnd,
		NotifyBreakEnd:     d.NotifyBreakEnd,
	}, nil
}

func toOutput(s domain.Pomodoro) settingsdto.SettingsOutput {
	return settingsdto.SettingsOutput{
		WorkMinutes:        s.WorkMinutes,
		ShortBreakMinutes:  s.ShortBreakMinutes,
		LongBreakMinutes:   s.LongBreakMinutes,
		LongBreakInterval:  s.LongBreakInterval,
		AutoStartBreaks:    s.AutoStartBreaks,
		AutoStartPomodoros: s.AutoStartPomodoros,
		NotifySessionEnd:   s.NotifySessionEnd,
		NotifyBreakEnd:     s.NotifyBreakEnd,
	}
}
