package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/demobank/banking-api/internal/core/domain"
)

// SessionStore keeps server-side session records in Redis so that signed
// tokens can be revoked before they expire.
// Key format: session:<session_id> → customer id, expiring with the token.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Create records the session for customerID with the given TTL.
func (s *SessionStore) Create(ctx context.Context, sessionID string, customerID int64, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(sessionID), customerID, ttl).Err(); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// Lookup returns the customer id the session was created for, or
// domain.ErrSessionInvalid when the session is unknown or expired.
func (s *SessionStore) Lookup(ctx context.Context, sessionID string) (int64, error) {
	val, err := s.client.Get(ctx, s.key(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, domain.ErrSessionInvalid
		}
		return 0, fmt.Errorf("lookup session: %w", err)
	}

	id, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("lookup session: corrupt record: %w", err)
	}
	return id, nil
}

// Revoke deletes the session record. Revoking an unknown session is a no-op.
func (s *SessionStore) Revoke(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func (s *SessionStore) key(sessionID string) string {
	return "session:" + sessionID
}
