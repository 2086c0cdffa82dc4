package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -destination=mocks/mock_revocation_store.go -package=mocks movie-api/internal/cache RevocationStore

// RevocationStore tracks bearer tokens that must no longer be accepted.
type RevocationStore interface {
	// RevokeToken blocks a single token id until ttl elapses.
	RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error
	// IsTokenRevoked reports whether the token id was revoked.
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)
	// RevokeUser blocks every token issued to userID at or before at.
	RevokeUser(ctx context.Context, userID string, at time.Time, ttl time.Duration) error
	// UserRevokedAt returns the cut-off set by RevokeUser, if any.
	UserRevokedAt(ctx context.Context, userID string) (time.Time, bool, error)
}

// RedisClientProvider provides access to the underlying Redis client.
type RedisClientProvider interface {
	Client() *redis.Client
}

type revocationStore struct {
	cache  Cache
	client *redis.Client
}

// NewRevocationStore creates a new RevocationStore.
// When cache implements RedisClientProvider, user cut-offs are written atomically.
func NewRevocationStore(cache Cache) RevocationStore {
	store := &revocationStore{cache: cache}
	if provider, ok := cache.(RedisClientProvider); ok {
		store.client = provider.Client()
	}
	return store
}

// RevokedTokenKey generates the key for a revoked token id.
func RevokedTokenKey(tokenID string) string {
	return fmt.Sprintf("revoked:token:%s", tokenID)
}

// RevokedUserKey generates the key holding a user's revocation cut-off.
func RevokedUserKey(userID string) string {
	return fmt.Sprintf("revoked:user:%s", userID)
}

// RevokeToken blocks a single token id until ttl elapses.
func (s *revocationStore) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.cache.Set(ctx, RevokedTokenKey(tokenID), true, ttl)
}

// IsTokenRevoked reports whether the token id was revoked.
func (s *revocationStore) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	return s.cache.Exists(ctx, RevokedTokenKey(tokenID))
}

// revokeUserScript stores the cut-off (unix millis) only if it moves forward.
var revokeUserScript = redis.NewScript(`
local key = KEYS[1]
local at = tonumber(ARGV[1])
local ttlSeconds = tonumber(ARGV[2])

local current = redis.call('GET', key)
if current and tonumber(current) >= at then
    return 0
end

redis.call('SET', key, ARGV[1], 'EX', ttlSeconds)
return 1
`)

// RevokeUser blocks every token issued to userID at or before at.
func (s *revocationStore) RevokeUser(ctx context.Context, userID string, at time.Time, ttl time.Duration) error {
	seconds := int64(ttl.Seconds())
	if seconds <= 0 {
		return nil
	}
	key := RevokedUserKey(userID)

	if s.client != nil {
		if err := revokeUserScript.Run(ctx, s.client, []string{key}, at.UnixMilli(), seconds).Err(); err != nil {
			return fmt.Errorf("revoke user script failed: %w", err)
		}
		return nil
	}

	// Fallback for non-Redis caches (e.g., mocks in tests)
	current, found, err := s.UserRevokedAt(ctx, userID)
	if err != nil {
		return err
	}
	if found && !at.After(current) {
		return nil
	}
	return s.cache.Set(ctx, key, at.UnixMilli(), ttl)
}

// UserRevokedAt returns the cut-off set by RevokeUser, if any.
func (s *revocationStore) UserRevokedAt(ctx context.Context, userID string) (time.Time, bool, error) {
	var millis int64
	found, err := s.cache.Get(ctx, RevokedUserKey(userID), &millis)
	if err != nil || !found {
		return time.Time{}, false, err
	}
	return time.UnixMilli(millis), true, nil
}
