package out

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"tomado/internal/modules/pomodoro/domain"
	pomodoroout "tomado/internal/modules/pomodoro/port/out"
)

// RedisStateStore keeps the serialized engine state under a fixed Redis
// key, for setups where the home directory is not durable (containers,
// shared machines).
type RedisStateStore struct {
	client *redis.Client
	key    string
}

func NewRedisStateStore(addr string) pomodoroout.StateStore {
	return &RedisStateStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		key:    "tomado:" + domain.StorageKey,
	}
}

func (s *RedisStateStore) Save(ctx context.Context, state domain.PersistedState) error {
	payload, err := EncodeState(state)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("write state to redis: %w", err)
	}
	return nil
}

func (s *RedisStateStore) Load(ctx context.Context) (domain.PersistedState, domain.RestoreOutcome, error) {
	payload, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.DefaultPersistedState(), domain.RestoreFirstRun, nil
		}
		return domain.PersistedState{}, domain.RestoreFirstRun, fmt.Errorf("read state from redis: %w", err)
	}
	state, outcome := DecodeState(payload)
	if IsCorruptionSignature(payload) {
		_ = s.client.Del(ctx, s.key).Err()
	}
	return state, outcome, nil
}

func (s *RedisStateStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("clear state in redis: %w", err)
	}
	return nil
}
