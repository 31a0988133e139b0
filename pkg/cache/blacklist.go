package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenBlacklist invalidates JWTs before their natural expiry. Refresh
// tokens are blacklisted by JTI on rotation and logout.
//
//go:generate mockgen -package mockcache -source=blacklist.go -destination=mock/mockcache.go *
type TokenBlacklist interface {
	// Add puts a token's JTI on the blacklist for ttl, which should be the
	// remaining lifetime of the token.
	Add(ctx context.Context, jti string, ttl time.Duration) error
	// Contains reports whether a token's JTI is blacklisted.
	Contains(ctx context.Context, jti string) (bool, error)
}

// RedisTokenBlacklist implements TokenBlacklist on redis with per-key TTLs.
type RedisTokenBlacklist struct {
	client    *redis.Client
	keyPrefix string
}

// NewTokenBlacklist creates a blacklist backed by the given redis client.
func NewTokenBlacklist(client *redis.Client) *RedisTokenBlacklist {
	return &RedisTokenBlacklist{
		client:    client,
		keyPrefix: "token:blacklist:",
	}
}

func (b *RedisTokenBlacklist) key(jti string) string {
	return b.keyPrefix + jti
}

// Add puts the JTI on the blacklist until ttl elapses.
func (b *RedisTokenBlacklist) Add(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// already expired, nothing to do
		return nil
	}
	if err := b.client.Set(ctx, b.key(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("could not add token to blacklist: %w", err)
	}

	return nil
}

// Contains reports whether the JTI is currently blacklisted.
func (b *RedisTokenBlacklist) Contains(ctx context.Context, jti string) (bool, error) {
	exists, err := b.client.Exists(ctx, b.key(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("could not check token blacklist: %w", err)
	}

	return exists > 0, nil
}

// Ensure RedisTokenBlacklist conforms to TokenBlacklist at compile time.
var _ TokenBlacklist = (*RedisTokenBlacklist)(nil)
