package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"tomado/internal/modules/pomodoro/domain"
	pomodoroout "tomado/internal/modules/pomodoro/port/out"
)

// FileStateStore keeps the serialized engine state in a single file that
// plays the role of the fixed storage key.
type FileStateStore struct {
	path string
}

func NewFileStateStore(path string) pomodoroout.StateStore {
	return &FileStateStore{path: path}
}

func (s *FileStateStore) Save(_ context.Context, state domain.PersistedState) error {
	payload, err := EncodeState(state)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

func (s *FileStateStore) Load(_ context.Context) (domain.PersistedState, domain.RestoreOutcome, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.DefaultPersistedState(), domain.RestoreFirstRun, nil
		}
		return domain.PersistedState{}, domain.RestoreFirstRun, fmt.Errorf("read state: %w", err)
	}
	state, outcome := DecodeState(payload)
	if IsCorruptionSignature(payload) {
		// The known corruption artifact is removed, not left to be re-read
		// on every boot.
		_ = os.Remove(s.path)
	}
	return state, outcome, nil
}

func (s *FileStateStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("clear state: %w", err)
	}
	return nil
}
