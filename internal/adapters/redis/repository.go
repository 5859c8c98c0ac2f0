package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// SessionKeyPrefix is the prefix for admin session keys in Redis
	SessionKeyPrefix = "admin_session:"
	// DefaultSessionTTL is how long an admin login stays valid
	DefaultSessionTTL = 12 * time.Hour
)

// Repository implements core.SessionStore using Redis. A session exists
// while its key exists; logout deletes the key, revoking the session
// immediately even if the signed cookie has not expired.
type Repository struct {
	client *redis.Client
}

// NewRepository creates a new Redis repository
func NewRepository(client *redis.Client) *Repository {
	return &Repository{client: client}
}

// Create registers a new admin session with the default TTL.
func (r *Repository) Create(ctx context.Context, sessionID string) error {
	key := SessionKeyPrefix + sessionID
	if err := r.client.Set(ctx, key, time.Now().UTC().Format(time.RFC3339), DefaultSessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// Exists reports whether the session is still live.
func (r *Repository) Exists(ctx context.Context, sessionID string) (bool, error) {
	key := SessionKeyPrefix + sessionID
	n, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check session: %w", err)
	}
	return n > 0, nil
}

// Delete removes a session, logging the admin out everywhere.
func (r *Repository) Delete(ctx context.Context, sessionID string) error {
	key := SessionKeyPrefix + sessionID
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
