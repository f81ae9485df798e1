package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"seller_panel/internal/models"
)

const (
	authKey = "seller_panel:auth"
	userKey = "seller_panel:user"
)

// ErrNoSession means no authenticated seller is cached. Callers respond by
// forcing a fresh login, they do not treat it as a transport failure.
var ErrNoSession = errors.New("no active session")

// Store mirrors the seller session into Redis: one boolean auth flag and
// one serialized user object, written together on login and cleared
// together on logout. The store is the single writer of both keys.
type Store struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Store, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Store{rdb: rdb}, nil
}

// SaveUser persists the session: auth flag plus user JSON. Sessions have
// no expiry; they live until logout or invalidation.
func (s *Store) SaveUser(ctx context.Context, user *models.SessionUser) error {
	jsonData, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal session user: %w", err)
	}
	if err := s.rdb.Set(ctx, authKey, "true", 0).Err(); err != nil {
		return fmt.Errorf("failed to persist auth flag: %w", err)
	}
	if err := s.rdb.Set(ctx, userKey, jsonData, 0).Err(); err != nil {
		return fmt.Errorf("failed to persist session user: %w", err)
	}
	return nil
}

// LoadUser returns the cached seller. A missing flag, missing user, or
// user JSON that no longer parses all count as "no session"; the broken
// remnants are cleared so the next attempt starts clean.
func (s *Store) LoadUser(ctx context.Context) (*models.SessionUser, error) {
	flag, err := s.rdb.Get(ctx, authKey).Result()
	if err == redis.Nil {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read auth flag: %w", err)
	}
	if flag != "true" {
		s.Clear(ctx)
		return nil, ErrNoSession
	}

	raw, err := s.rdb.Get(ctx, userKey).Result()
	if err == redis.Nil {
		s.Clear(ctx)
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session user: %w", err)
	}

	var user models.SessionUser
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.Clear(ctx)
		return nil, ErrNoSession
	}
	return &user, nil
}

// Clear removes both session keys.
func (s *Store) Clear(ctx context.Context) error {
	return s.rdb.Del(ctx, authKey, userKey).Err()
}

// Close releases the Redis connection.
func (s *Store) Close() error {
	return s.rdb.Close()
}
