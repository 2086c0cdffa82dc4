package cache

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mocks/mock_cache.go -package=mocks movie-api/internal/cache Cache

// Cache defines the interface for key/value operations backed by Redis.
type Cache interface {
	// Set stores a value with TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	// Get retrieves a value. Returns false if key doesn't exist.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	// Exists reports whether key is present.
	Exists(ctx context.Context, key string) (bool, error)
	// Delete removes a key.
	Delete(ctx context.Context, key string) error
}

// Ensure Redis implements Cache interface
var _ Cache = (*Redis)(nil)
