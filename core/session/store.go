package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrSessionNotFound is returned when a token has no live session.
var ErrSessionNotFound = errors.New("session not found")

// Store persists sessions keyed by their bearer token.
type Store interface {
	// Save stores the user under token, replacing any previous value.
	Save(ctx context.Context, token string, user User) error
	// Load returns the user for token or ErrSessionNotFound.
	Load(ctx context.Context, token string) (*User, error)
	// Delete removes the session. Deleting a missing session is not an error.
	Delete(ctx context.Context, token string) error
}

// RedisStore is a Store backed by Redis.
type RedisStore struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

// NewClient creates a Redis client from the configuration.
func NewClient(cfg Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// NewRedisStore creates a Redis backed session store.
func NewRedisStore(client redis.Cmdable, cfg Config) *RedisStore {
	ttl := time.Duration(cfg.TTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}
	return &RedisStore{client: client, prefix: cfg.Prefix, ttl: ttl}
}

func (s *RedisStore) key(token string) string {
	return s.prefix + token
}

// Save implements Store.
func (s *RedisStore) Save(ctx context.Context, token string, user User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.client.Set(ctx, s.key(token), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Load implements Store. A successful load extends the session lifetime.
func (s *RedisStore) Load(ctx context.Context, token string) (*User, error) {
	payload, err := s.client.Get(ctx, s.key(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var user User
	if err := json.Unmarshal(payload, &user); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}

	s.client.Expire(ctx, s.key(token), s.ttl)
	return &user, nil
}

// Delete implements Store.
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
