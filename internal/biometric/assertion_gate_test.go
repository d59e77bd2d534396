package biometric

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/sandeepkv93/biometric-attendance-backend/internal/clock"
)

type staticMarkers map[uint][]byte

func (m staticMarkers) Marker(_ context.Context, employeeID uint) ([]byte, error) {
	marker, ok := m[employeeID]
	if !ok {
		return nil, ErrMarkerNotFound
	}
	return marker, nil
}

type assertionFixture struct {
	gate  *AssertionGate
	clock *clock.Manual
}

func newAssertionFixture(t *testing.T, store func(*clock.Manual) ChallengeStore) assertionFixture {
	t.Helper()
	clk := clock.NewManual(time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC))
	markers := staticMarkers{7: []byte("device-marker-7")}
	return assertionFixture{
		gate:  NewAssertionGate(store(clk), markers, clk, time.Minute),
		clock: clk,
	}
}

func memoryStore(c *clock.Manual) ChallengeStore { return NewInMemoryChallengeStore(c) }

func signedRequest(c Challenge, marker []byte) Request {
	return Request{
		EmployeeID:   c.EmployeeID,
		Purpose:      c.Purpose,
		DeviceStatus: DeviceStatusSuccess,
		ChallengeID:  c.ID,
		Signature:    SignChallenge(marker, c),
	}
}

func TestAssertionGateAcceptsValidSignatureOnce(t *testing.T) {
	ctx := context.Background()
	fx := newAssertionFixture(t, memoryStore)

	c, err := fx.gate.Issue(ctx, 7, PurposeCheckIn)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if len(c.ID) != 26 || len(c.Nonce) != nonceSize {
		t.Fatalf("unexpected challenge shape: id=%q nonce=%d", c.ID, len(c.Nonce))
	}

	req := signedRequest(c, []byte("device-marker-7"))
	proof, err := fx.gate.Challenge(ctx, req)
	if err != nil {
		t.Fatalf("expected verification success, got %v", err)
	}
	if !proof.VerifiedAt.Equal(fx.clock.Now()) {
		t.Fatalf("unexpected verified at %v", proof.VerifiedAt)
	}

	_, err = fx.gate.Challenge(ctx, req)
	if reason, _ := ReasonOf(err); reason != ReasonChallengeExpired {
		t.Fatalf("expected replay to fail with challenge_expired, got %v", err)
	}
}

func TestAssertionGateRejectsExpiredChallenge(t *testing.T) {
	ctx := context.Background()
	fx := newAssertionFixture(t, memoryStore)

	c, err := fx.gate.Issue(ctx, 7, PurposeCheckOut)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	fx.clock.Advance(2 * time.Minute)

	_, err = fx.gate.Challenge(ctx, signedRequest(c, []byte("device-marker-7")))
	if reason, _ := ReasonOf(err); reason != ReasonChallengeExpired {
		t.Fatalf("expected challenge_expired, got %v", err)
	}
}

func TestAssertionGateRejectsWrongSignatureAndMismatchedRequest(t *testing.T) {
	ctx := context.Background()
	fx := newAssertionFixture(t, memoryStore)

	c, _ := fx.gate.Issue(ctx, 7, PurposeCheckIn)
	_, err := fx.gate.Challenge(ctx, signedRequest(c, []byte("someone-else")))
	if reason, _ := ReasonOf(err); reason != ReasonVerificationFailed {
		t.Fatalf("expected verification_failed for wrong marker, got %v", err)
	}

	c, _ = fx.gate.Issue(ctx, 7, PurposeCheckIn)
	req := signedRequest(c, []byte("device-marker-7"))
	req.Purpose = PurposeCheckOut
	_, err = fx.gate.Challenge(ctx, req)
	if reason, _ := ReasonOf(err); reason != ReasonVerificationFailed {
		t.Fatalf("expected verification_failed for purpose mismatch, got %v", err)
	}

	_, err = fx.gate.Challenge(ctx, Request{EmployeeID: 7, Purpose: PurposeCheckIn})
	if reason, _ := ReasonOf(err); reason != ReasonVerificationFailed {
		t.Fatalf("expected verification_failed for missing assertion, got %v", err)
	}
}

func TestAssertionGateNotEnrolled(t *testing.T) {
	ctx := context.Background()
	fx := newAssertionFixture(t, memoryStore)

	c, _ := fx.gate.Issue(ctx, 99, PurposeCheckIn)
	_, err := fx.gate.Challenge(ctx, signedRequest(c, []byte("anything")))
	if reason, _ := ReasonOf(err); reason != ReasonNotEnrolled {
		t.Fatalf("expected not_enrolled, got %v", err)
	}
}

func TestAssertionGateHonoursDeviceFailureBeforeConsuming(t *testing.T) {
	ctx := context.Background()
	fx := newAssertionFixture(t, memoryStore)

	c, _ := fx.gate.Issue(ctx, 7, PurposeCheckIn)
	req := signedRequest(c, []byte("device-marker-7"))
	req.DeviceStatus = "user_cancelled"
	if _, err := fx.gate.Challenge(ctx, req); !isReason(err, ReasonUserCancelled) {
		t.Fatalf("expected user_cancelled, got %v", err)
	}

	// The challenge was not burned by the cancelled attempt.
	req.DeviceStatus = DeviceStatusSuccess
	if _, err := fx.gate.Challenge(ctx, req); err != nil {
		t.Fatalf("expected retry with same challenge to succeed, got %v", err)
	}
}

func TestAssertionGateWithRedisStore(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	fx := newAssertionFixture(t, func(*clock.Manual) ChallengeStore {
		return NewRedisChallengeStore(client, "test")
	})

	c, err := fx.gate.Issue(ctx, 7, PurposeCheckIn)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if !mr.Exists("test:challenge:" + c.ID) {
		t.Fatal("expected challenge key in redis")
	}
	if ttl := mr.TTL("test:challenge:" + c.ID); ttl != time.Minute {
		t.Fatalf("unexpected ttl %v", ttl)
	}

	if _, err := fx.gate.Challenge(ctx, signedRequest(c, []byte("device-marker-7"))); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if mr.Exists("test:challenge:" + c.ID) {
		t.Fatal("expected challenge key to be consumed")
	}

	c2, _ := fx.gate.Issue(ctx, 7, PurposeCheckIn)
	mr.FastForward(2 * time.Minute)
	if _, err := fx.gate.Challenge(ctx, signedRequest(c2, []byte("device-marker-7"))); !isReason(err, ReasonChallengeExpired) {
		t.Fatalf("expected challenge_expired after ttl, got %v", err)
	}
}

func TestRedisChallengeStoreUnavailableIsSensorError(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	store := NewRedisChallengeStore(client, "")
	fx := newAssertionFixture(t, func(*clock.Manual) ChallengeStore { return store })

	mr.Close()
	_, err := fx.gate.Challenge(ctx, Request{EmployeeID: 7, Purpose: PurposeCheckIn, ChallengeID: "01J", Signature: []byte("s")})
	if !isReason(err, ReasonSensorError) {
		t.Fatalf("expected sensor_error when store is down, got %v", err)
	}
	if errors.Is(err, ErrChallengeNotFound) {
		t.Fatal("store outage must not look like an expired challenge")
	}
}

func isReason(err error, want Reason) bool {
	got, ok := ReasonOf(err)
	return ok && got == want
}
