package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sandeepkv93/biometric-attendance-backend/internal/clock"
)

type RedisTokenRevoker struct {
	client redis.UniversalClient
	prefix string
	clock  clock.Clock
}

func NewRedisTokenRevoker(client redis.UniversalClient, prefix string, c clock.Clock) *RedisTokenRevoker {
	if prefix == "" {
		prefix = "attendance"
	}
	return &RedisTokenRevoker{client: client, prefix: prefix, clock: c}
}

func (r *RedisTokenRevoker) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(r.clock.Now())
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, r.key(tokenID), "1", ttl).Err()
}

func (r *RedisTokenRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *RedisTokenRevoker) key(tokenID string) string {
	return r.prefix + ":revoked:" + tokenID
}
