package usecase

import (
	"context"

	"tomado/internal/modules/hook/domain"
	"tomado/internal/modules/hook/dto"
	hookin "tomado/internal/modules/hook/port/in"
	"tomado/internal/modules/hook/service"
	"tomado/internal/platform/logging"
)

type Interactor struct {
	svc *service.HookService
	log *logging.Logger
}

func NewInteractor(svc *service.HookService, log *logging.Logger) hookin.Usecase {
	return &Interactor{svc: svc, log: log}
}

func (i *Interactor) List(ctx context.Context) ([]dto.HookInfo, error) {
	return i.svc.List(ctx)
}

func (i *Interactor) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	return i.svc.Doctor(ctx)
}

func (i *Interactor) Dispatch(ctx context.Context, event dto.Event) {
	kind := domain.EventKind(event.Kind)
	if err := kind.Validate(); err != nil {
		i.log.Warn(logging.CatHook, "dispatch: %v", err)
		return
	}
	subscribers, problems := i.svc.Subscribers(ctx, kind)
	for _, problem := range problems {
		i.log.Warn(logging.CatHook, "skipping subscriber: %v", problem)
	}
	if len(subscribers) == 0 {
		return
	}
	payload := domain.Event{
		Kind:      kind,
		SessionID: event.SessionID,
		TaskID:    event.TaskID,
		TaskTitle: event.TaskTitle,
		AtUnix:    event.At.Unix(),
		Completed: event.Completed,
		IsLong:    event.IsLong,
	}
	for _, manifest := range subscribers {
		if err := i.svc.Notify(ctx, manifest, payload); err != nil {
			i.log.Warn(logging.CatHook, "hook %s on %s: %v", manifest.Name, kind, err)
			continue
		}
		i.log.Debug(logging.CatHook, "hook %s handled %s", manifest.Name, kind)
	}
}
