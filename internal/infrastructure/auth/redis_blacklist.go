package auth

import (
	"context"
	"fmt"
	"time"

	"os-service-api/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const blacklistKeyPrefix = "auth:blacklist:"

// RedisBlacklist stores revoked token ids with a TTL equal to the remaining
// token lifetime, so Redis does the eviction.
type RedisBlacklist struct {
	rdb redis.Cmdable
	now func() time.Time
}

var _ interfaces.ITokenBlacklist = (*RedisBlacklist)(nil)

func NewRedisBlacklist(rdb redis.Cmdable) *RedisBlacklist {
	return &RedisBlacklist{rdb: rdb, now: time.Now}
}

func (b *RedisBlacklist) Add(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := remaining(b.now(), expiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := b.rdb.Set(ctx, blacklistKey(tokenID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("blacklist token: %w", err)
	}
	return nil
}

func (b *RedisBlacklist) Contains(ctx context.Context, tokenID string) (bool, error) {
	n, err := b.rdb.Exists(ctx, blacklistKey(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("check blacklist: %w", err)
	}
	return n > 0, nil
}

func blacklistKey(tokenID string) string {
	return blacklistKeyPrefix + tokenID
}

// remaining rounds up to the next whole second; Redis EX has second granularity.
func remaining(now, expiresAt time.Time) time.Duration {
	d := expiresAt.Sub(now)
	if d <= 0 {
		return 0
	}
	return d.Truncate(time.Second) + time.Second
}
