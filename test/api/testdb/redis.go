//go:build api

package testdb

import (
	"context"
	"errors"
	"strconv"
	"time"

	"movie-api/internal/cache"

	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// RevocationRedis is the Redis instance backing token and user revocations.
type RevocationRedis struct {
	Container testcontainers.Container
	Addr      string
	Client    *redis.Client
}

// SetupRedis starts a Redis testcontainer and connects a client to it.
func SetupRedis(ctx context.Context) (_ *RevocationRedis, err error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = container.Terminate(context.Background())
		}
	}()

	addr, err := container.Endpoint(ctx, "")
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Join(err, client.Close())
	}

	return &RevocationRedis{Container: container, Addr: addr, Client: client}, nil
}

// Cleanup closes the client and terminates the container.
func (r *RevocationRedis) Cleanup(ctx context.Context) error {
	var errs []error
	if r.Client != nil {
		errs = append(errs, r.Client.Close())
	}
	if r.Container != nil {
		errs = append(errs, r.Container.Terminate(ctx))
	}
	return errors.Join(errs...)
}

// ClearRevocations drops every revocation between tests.
func (r *RevocationRedis) ClearRevocations(ctx context.Context) error {
	return r.Client.FlushDB(ctx).Err()
}

// TokenRevocationTTL returns how long a revoked token id stays blocked, or a
// negative duration when the token was never revoked.
func (r *RevocationRedis) TokenRevocationTTL(ctx context.Context, tokenID string) (time.Duration, error) {
	return r.Client.TTL(ctx, cache.RevokedTokenKey(tokenID)).Result()
}

// UserCutoff returns the revocation cut-off stored for a user id.
func (r *RevocationRedis) UserCutoff(ctx context.Context, userID string) (time.Time, bool, error) {
	raw, err := r.Client.Get(ctx, cache.RevokedUserKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	millis, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, false, err
	}
	return time.UnixMilli(millis), true, nil
}
