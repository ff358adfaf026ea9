package utils

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// AuthCachePrefix namespaces token-hash cache keys.
const AuthCachePrefix = "authcache:"

// NewRedisClient builds a Redis client for the given logical database and
// verifies connectivity. A nil client is returned on failure so callers can
// degrade to cache-less operation.
func NewRedisClient(addr, password string, db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		GetLogger().Sugar().Warnf("redis unavailable at %s: %v", addr, err)
		return nil
	}
	return client
}
