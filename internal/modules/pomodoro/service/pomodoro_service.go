package service

import (
	"time"

	"tomado/internal/modules/pomodoro/domain"
	"tomado/internal/platform/clock"
	"tomado/internal/platform/id"
)

// PomodoroService applies the clock and id generator to session
// transitions. Orchestration (settings, persistence, chaining) lives in the
// usecase layer.
type PomodoroService struct {
	clock clock.Clock
	idGen id.Generator
}

func NewPomodoroService(clock clock.Clock, idGen id.Generator) *PomodoroService {
	return &PomodoroService{clock: clock, idGen: idGen}
}

func (s *PomodoroService) Now() time.Time {
	return s.clock.Now()
}

func (s *PomodoroService) StartWork(sess *domain.Session, taskID, taskTitle string, seconds int) domain.Outcome {
	return sess.StartWork(s.idGen.New(), taskID, taskTitle, seconds)
}

func (s *PomodoroService) StopWork(sess *domain.Session, completed bool, interval int) (domain.Record, domain.Outcome) {
	return sess.StopWork(completed, s.clock.Now(), interval)
}

func (s *PomodoroService) NewInterruption(reason string, kind domain.InterruptionKind) domain.Interruption {
	return domain.Interruption{
		ID:     s.idGen.New(),
		At:     s.clock.Now(),
		Reason: reason,
		Kind:   kind,
	}
}
