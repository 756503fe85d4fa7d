package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationStore invalidates outstanding session tokens per user. A password
// change writes the rotation moment under the user's key; the auth middleware
// rejects tokens issued before it. Keys expire after the token TTL, at which
// point any pre-rotation token has expired on its own.
//
// Key format: auth:revoked:<user_id> → unix timestamp
type RevocationStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRevocationStore wraps the given Redis client. ttl should match the
// session token TTL.
func NewRevocationStore(client *redis.Client, ttl time.Duration) *RevocationStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RevocationStore{client: client, ttl: ttl}
}

// RevokeAll marks every token issued to userID before at as invalid.
func (s *RevocationStore) RevokeAll(ctx context.Context, userID string, at time.Time) error {
	if err := s.client.Set(ctx, s.key(userID), at.Unix(), s.ttl).Err(); err != nil {
		return fmt.Errorf("revoke tokens: %w", err)
	}
	return nil
}

// RevokedSince returns the rotation moment for userID, or the zero time when
// no revocation is recorded.
func (s *RevocationStore) RevokedSince(ctx context.Context, userID string) (time.Time, error) {
	val, err := s.client.Get(ctx, s.key(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("revocation check: %w", err)
	}

	ts, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("revocation check: bad timestamp %q", val)
	}
	return time.Unix(ts, 0).UTC(), nil
}

func (s *RevocationStore) key(userID string) string {
	return "auth:revoked:" + userID
}
