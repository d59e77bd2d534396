package biometric

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

type Purpose string

const (
	PurposeCheckIn  Purpose = "check_in"
	PurposeCheckOut Purpose = "check_out"
)

func ParsePurpose(v string) (Purpose, bool) {
	switch Purpose(strings.ToLower(strings.TrimSpace(v))) {
	case PurposeCheckIn:
		return PurposeCheckIn, true
	case PurposeCheckOut:
		return PurposeCheckOut, true
	default:
		return "", false
	}
}

// Request is one identity challenge. DeviceStatus is what the on-device
// prompt reported; ChallengeID and Signature carry the signed server nonce
// when the gate verifies assertions.
type Request struct {
	EmployeeID   uint
	Purpose      Purpose
	DeviceStatus string
	ChallengeID  string
	Signature    []byte
}

type Proof struct {
	Token      []byte
	VerifiedAt time.Time
}

// Gate presents an identity challenge and resolves to a proof or a
// *GateError. It is single-shot: a Request is never retried internally.
type Gate interface {
	Challenge(ctx context.Context, req Request) (Proof, error)
}

type Reason string

const (
	ReasonUserCancelled      Reason = "user_cancelled"
	ReasonSensorError        Reason = "sensor_error"
	ReasonNotEnrolled        Reason = "not_enrolled"
	ReasonVerificationFailed Reason = "verification_failed"
	ReasonChallengeExpired   Reason = "challenge_expired"
)

type GateError struct {
	Reason Reason
	Err    error
}

func (e *GateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("biometric gate: %s: %v", e.Reason, e.Err)
	}
	return "biometric gate: " + string(e.Reason)
}

func (e *GateError) Unwrap() error { return e.Err }

func gateError(reason Reason, err error) *GateError {
	return &GateError{Reason: reason, Err: err}
}

// ReasonOf extracts the gate failure reason from err.
func ReasonOf(err error) (Reason, bool) {
	var ge *GateError
	if errors.As(err, &ge) {
		return ge.Reason, true
	}
	return "", false
}

const DeviceStatusSuccess = "success"

// deviceFailure maps a reported prompt status to a failure. An empty status
// counts as success so assertion-only clients need not send one.
func deviceFailure(status string) *GateError {
	switch Reason(strings.ToLower(strings.TrimSpace(status))) {
	case "", DeviceStatusSuccess:
		return nil
	case ReasonUserCancelled:
		return gateError(ReasonUserCancelled, nil)
	case ReasonNotEnrolled:
		return gateError(ReasonNotEnrolled, nil)
	case ReasonSensorError:
		return gateError(ReasonSensorError, nil)
	default:
		return gateError(ReasonSensorError, fmt.Errorf("unknown device status %q", status))
	}
}

// cancelled maps an abandoned context to a user cancellation.
func cancelled(ctx context.Context) *GateError {
	if err := ctx.Err(); err != nil {
		return gateError(ReasonUserCancelled, err)
	}
	return nil
}
