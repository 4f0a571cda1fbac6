package ports

import (
	"context"
	"time"
)

// SessionStore holds server-side session records so that tokens can be
// revoked before they expire. Lookup returns the customer id the session
// was created for.
type SessionStore interface {
	Create(ctx context.Context, sessionID string, customerID int64, ttl time.Duration) error
	Lookup(ctx context.Context, sessionID string) (int64, error)
	Revoke(ctx context.Context, sessionID string) error
}
