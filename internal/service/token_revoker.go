package service

import (
	"context"
	"sync"
	"time"

	"github.com/sandeepkv93/biometric-attendance-backend/internal/clock"
)

// TokenRevoker remembers access tokens that were logged out until they would
// have expired anyway.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type InMemoryTokenRevoker struct {
	mu    sync.Mutex
	clock clock.Clock
	data  map[string]time.Time
}

func NewInMemoryTokenRevoker(c clock.Clock) *InMemoryTokenRevoker {
	return &InMemoryTokenRevoker{clock: c, data: make(map[string]time.Time)}
}

func (r *InMemoryTokenRevoker) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	now := r.clock.Now()
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, exp := range r.data {
		if !now.Before(exp) {
			delete(r.data, id)
		}
	}
	if now.Before(expiresAt) {
		r.data[tokenID] = expiresAt
	}
	return nil
}

func (r *InMemoryTokenRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	now := r.clock.Now()
	r.mu.Lock()
	defer r.mu.Unlock()
	exp, ok := r.data[tokenID]
	if !ok {
		return false, nil
	}
	if !now.Before(exp) {
		delete(r.data, tokenID)
		return false, nil
	}
	return true, nil
}
