package workflow

import "github.com/sandeepkv93/biometric-attendance-backend/internal/domain"

type Intent string

const (
	IntentCheckIn  Intent = "check_in"
	IntentCheckOut Intent = "check_out"
)

func (i Intent) Valid() bool { return i == IntentCheckIn || i == IntentCheckOut }

const (
	ReasonAlreadyCheckedIn = "already checked in today"
	ReasonSessionCompleted = "attendance already completed today"
	ReasonNoOpenSession    = "no open session to check out"
	ReasonActionInFlight   = "another attendance action is already in progress"
)

// Snapshot is everything Decide looks at: the employee's enrollment state,
// the ledger row for today (nil when absent) and the requested intent.
type Snapshot struct {
	BiometricRegistered bool
	Today               *domain.AttendanceRecord
	Intent              Intent
}

type DecisionKind int

const (
	DecisionChallenge DecisionKind = iota
	DecisionRequireEnrollment
	DecisionReject
)

type Decision struct {
	Kind   DecisionKind
	Reason string
}

// Decide evaluates the attendance rules in order; the first match wins.
// DecisionChallenge means the biometric gate must be passed before the
// ledger is mutated.
func Decide(s Snapshot) Decision {
	if !s.BiometricRegistered {
		return Decision{Kind: DecisionRequireEnrollment}
	}
	switch s.Intent {
	case IntentCheckIn:
		if s.Today != nil && s.Today.Open() {
			return Decision{Kind: DecisionReject, Reason: ReasonAlreadyCheckedIn}
		}
		if s.Today != nil {
			return Decision{Kind: DecisionReject, Reason: ReasonSessionCompleted}
		}
	case IntentCheckOut:
		if s.Today == nil || !s.Today.Open() {
			return Decision{Kind: DecisionReject, Reason: ReasonNoOpenSession}
		}
	}
	return Decision{Kind: DecisionChallenge}
}
