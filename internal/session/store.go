package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CookieName is the cookie that carries the session token.
const CookieName = "clipnest_session"

// ErrNotFound is returned when a token does not resolve to a session.
var ErrNotFound = errors.New("session not found")

// Store maps opaque session tokens to user IDs in Redis with a TTL.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStore creates a session store with the given token lifetime.
func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

// Create issues a new session token for the given user ID.
func (s *Store) Create(ctx context.Context, userID uint) (string, error) {
	if s.rdb == nil {
		return "", errors.New("session store unavailable")
	}

	token := uuid.New().String()
	if err := s.rdb.Set(ctx, sessionKey(token), strconv.FormatUint(uint64(userID), 10), s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

// Get resolves a session token to its user ID.
func (s *Store) Get(ctx context.Context, token string) (uint, error) {
	if s.rdb == nil || token == "" {
		return 0, ErrNotFound
	}

	val, err := s.rdb.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("load session: %w", err)
	}

	userID, err := strconv.ParseUint(val, 10, 32)
	if err != nil {
		// Corrupt value: treat the session as gone and drop it.
		s.rdb.Del(ctx, sessionKey(token))
		return 0, ErrNotFound
	}
	return uint(userID), nil
}

// Destroy invalidates a session token. Destroying an unknown token is a no-op.
func (s *Store) Destroy(ctx context.Context, token string) error {
	if s.rdb == nil || token == "" {
		return nil
	}
	return s.rdb.Del(ctx, sessionKey(token)).Err()
}
