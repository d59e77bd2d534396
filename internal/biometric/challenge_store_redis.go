package biometric

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisChallengeStore struct {
	client redis.UniversalClient
	prefix string
}

func NewRedisChallengeStore(client redis.UniversalClient, prefix string) *RedisChallengeStore {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "attendance"
	}
	return &RedisChallengeStore{client: client, prefix: prefix + ":challenge:"}
}

func (s *RedisChallengeStore) Save(ctx context.Context, c Challenge, ttl time.Duration) error {
	c.ExpiresAt = time.Now().Add(ttl).UTC()
	payload, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode challenge: %w", err)
	}
	if err := s.client.Set(ctx, s.prefix+c.ID, payload, ttl).Err(); err != nil {
		return fmt.Errorf("store challenge: %w", err)
	}
	return nil
}

// Consume uses GETDEL so two concurrent consumers cannot both read the nonce.
func (s *RedisChallengeStore) Consume(ctx context.Context, id string) (Challenge, error) {
	raw, err := s.client.GetDel(ctx, s.prefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return Challenge{}, ErrChallengeNotFound
	}
	if err != nil {
		return Challenge{}, fmt.Errorf("consume challenge: %w", err)
	}
	var c Challenge
	if err := json.Unmarshal(raw, &c); err != nil {
		return Challenge{}, fmt.Errorf("decode challenge: %w", err)
	}
	return c, nil
}
