package biometric

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/sandeepkv93/biometric-attendance-backend/internal/clock"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/observability"
)

const nonceSize = 32

// MarkerSource returns the enrolled credential marker for an employee, or
// ErrMarkerNotFound.
type MarkerSource interface {
	Marker(ctx context.Context, employeeID uint) ([]byte, error)
}

var ErrMarkerNotFound = errors.New("biometric marker not found")

// AssertionGate verifies that the device signed a fresh server nonce with the
// enrolled marker after its local biometric prompt succeeded.
type AssertionGate struct {
	store   ChallengeStore
	markers MarkerSource
	clock   clock.Clock
	ttl     time.Duration
}

func NewAssertionGate(store ChallengeStore, markers MarkerSource, c clock.Clock, ttl time.Duration) *AssertionGate {
	return &AssertionGate{store: store, markers: markers, clock: c, ttl: ttl}
}

// Issue creates and stores a challenge the device must sign for purpose.
func (g *AssertionGate) Issue(ctx context.Context, employeeID uint, purpose Purpose) (Challenge, error) {
	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		observability.RecordBiometricChallengeEvent(ctx, string(purpose), "error")
		return Challenge{}, fmt.Errorf("generate nonce: %w", err)
	}
	c := Challenge{
		ID:         ulid.Make().String(),
		EmployeeID: employeeID,
		Purpose:    purpose,
		Nonce:      nonce,
	}
	if err := g.store.Save(ctx, c, g.ttl); err != nil {
		observability.RecordBiometricChallengeEvent(ctx, string(purpose), "error")
		return Challenge{}, err
	}
	c.ExpiresAt = g.clock.Now().Add(g.ttl)
	observability.RecordBiometricChallengeEvent(ctx, string(purpose), "issued")
	return c, nil
}

func (g *AssertionGate) Challenge(ctx context.Context, req Request) (Proof, error) {
	proof, ge := g.challenge(ctx, req)
	if ge != nil {
		observability.RecordBiometricGateResult(ctx, "assertion", string(ge.Reason))
		return Proof{}, ge
	}
	observability.RecordBiometricGateResult(ctx, "assertion", "success")
	return proof, nil
}

func (g *AssertionGate) challenge(ctx context.Context, req Request) (Proof, *GateError) {
	if ge := cancelled(ctx); ge != nil {
		return Proof{}, ge
	}
	if ge := deviceFailure(req.DeviceStatus); ge != nil {
		return Proof{}, ge
	}
	if req.ChallengeID == "" || len(req.Signature) == 0 {
		return Proof{}, gateError(ReasonVerificationFailed, errors.New("missing challenge assertion"))
	}

	c, err := g.store.Consume(ctx, req.ChallengeID)
	if errors.Is(err, ErrChallengeNotFound) {
		return Proof{}, gateError(ReasonChallengeExpired, err)
	}
	if err != nil {
		return Proof{}, gateError(ReasonSensorError, err)
	}
	if c.EmployeeID != req.EmployeeID || c.Purpose != req.Purpose {
		return Proof{}, gateError(ReasonVerificationFailed, errors.New("challenge issued for another request"))
	}

	marker, err := g.markers.Marker(ctx, req.EmployeeID)
	if errors.Is(err, ErrMarkerNotFound) {
		return Proof{}, gateError(ReasonNotEnrolled, err)
	}
	if err != nil {
		return Proof{}, gateError(ReasonSensorError, err)
	}
	if !hmac.Equal(SignChallenge(marker, c), req.Signature) {
		return Proof{}, gateError(ReasonVerificationFailed, errors.New("signature mismatch"))
	}
	return Proof{Token: req.Signature, VerifiedAt: g.clock.Now()}, nil
}

// SignChallenge is the assertion a device produces: HMAC-SHA256 keyed by the
// enrolled marker over the challenge id, purpose and nonce.
func SignChallenge(marker []byte, c Challenge) []byte {
	mac := hmac.New(sha256.New, marker)
	mac.Write([]byte(c.ID))
	mac.Write([]byte{0})
	mac.Write([]byte(c.Purpose))
	mac.Write([]byte{0})
	mac.Write(c.Nonce)
	return mac.Sum(nil)
}
