package biometric

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sandeepkv93/biometric-attendance-backend/internal/clock"
)

var ErrChallengeNotFound = errors.New("challenge not found")

// Challenge is a single-use server nonce the device signs with its enrolled
// marker to prove a fresh biometric prompt.
type Challenge struct {
	ID         string    `json:"id"`
	EmployeeID uint      `json:"employee_id"`
	Purpose    Purpose   `json:"purpose"`
	Nonce      []byte    `json:"nonce"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// ChallengeStore keeps issued challenges until they are consumed or expire.
// Consume must hand a given challenge out at most once.
type ChallengeStore interface {
	Save(ctx context.Context, c Challenge, ttl time.Duration) error
	Consume(ctx context.Context, id string) (Challenge, error)
}

type InMemoryChallengeStore struct {
	mu      sync.Mutex
	clock   clock.Clock
	entries map[string]Challenge
}

func NewInMemoryChallengeStore(c clock.Clock) *InMemoryChallengeStore {
	return &InMemoryChallengeStore{clock: c, entries: map[string]Challenge{}}
}

func (s *InMemoryChallengeStore) Save(_ context.Context, c Challenge, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	for id, e := range s.entries {
		if !now.Before(e.ExpiresAt) {
			delete(s.entries, id)
		}
	}
	c.ExpiresAt = now.Add(ttl)
	s.entries[c.ID] = c
	return nil
}

func (s *InMemoryChallengeStore) Consume(_ context.Context, id string) (Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.entries[id]
	if !ok {
		return Challenge{}, ErrChallengeNotFound
	}
	delete(s.entries, id)
	if !s.clock.Now().Before(c.ExpiresAt) {
		return Challenge{}, ErrChallengeNotFound
	}
	return c, nil
}
