package redis

import (
	"context"
	"errors"

	"pet-digital-twin/internal/ports/session"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "twin:session:"

type SessionStore struct {
	client *redis.Client
}

var _ session.Store = (*SessionStore)(nil)

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func (s *SessionStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, sessionKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Set sin TTL: la selección activa dura hasta que se cambie.
func (s *SessionStore) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, sessionKeyPrefix+key, value, 0).Err()
}
