package in

import (
	"context"

	"tomado/internal/modules/hook/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.HookInfo, error)
	Doctor(ctx context.Context) ([]dto.DoctorResult, error)
	// Dispatch delivers the event to every enabled hook subscribed to its
	// kind. Fire-and-forget: per-hook failures are logged, never returned.
	Dispatch(ctx context.Context, event dto.Event)
}
