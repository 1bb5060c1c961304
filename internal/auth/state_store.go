package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// StateStore issues and validates one-time login state nonces.
type StateStore interface {
	Issue(ctx context.Context) (string, error)
	Validate(ctx context.Context, state string) error
}

const statePrefix = "oauth_state:"

// ErrInvalidState is returned when a state nonce is unknown or already used.
var ErrInvalidState = errors.New("invalid or expired login state")

type redisStateStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStateStore builds a StateStore backed by Redis with expiring keys.
func NewRedisStateStore(client *redis.Client, ttl time.Duration) StateStore {
	return &redisStateStore{client: client, ttl: ttl}
}

func (s *redisStateStore) Issue(ctx context.Context) (string, error) {
	state := uuid.NewString()
	if err := s.client.Set(ctx, statePrefix+state, "1", s.ttl).Err(); err != nil {
		return "", err
	}
	return state, nil
}

// Validate consumes the nonce so a state value can only succeed once.
func (s *redisStateStore) Validate(ctx context.Context, state string) error {
	if state == "" {
		return ErrInvalidState
	}
	deleted, err := s.client.Del(ctx, statePrefix+state).Result()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrInvalidState
	}
	return nil
}
