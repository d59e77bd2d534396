package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sandeepkv93/biometric-attendance-backend/internal/apperr"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/biometric"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/clock"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/domain"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/observability"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type OutcomeKind string

const (
	OutcomeSuccess                    OutcomeKind = "success"
	OutcomeRequireBiometricEnrollment OutcomeKind = "require_biometric_enrollment"
	OutcomeRejected                   OutcomeKind = "rejected"
)

type Outcome struct {
	Kind   OutcomeKind
	Reason string
	Record *domain.AttendanceRecord
}

type Registrations interface {
	Exists(ctx context.Context, employeeID uint) (bool, error)
	TouchVerified(ctx context.Context, employeeID uint, at time.Time) error
}

type Ledger interface {
	FindToday(ctx context.Context, employeeID uint, ref time.Time) (*domain.AttendanceRecord, error)
	CheckIn(ctx context.Context, employeeID uint, now time.Time) (*domain.AttendanceRecord, error)
	CheckOut(ctx context.Context, employeeID uint, now time.Time) (*domain.AttendanceRecord, error)
}

// Evidence is what the device sent back from its biometric prompt.
type Evidence struct {
	DeviceStatus string
	ChallengeID  string
	Signature    []byte
}

type Command struct {
	EmployeeID uint
	Intent     Intent
	Evidence   Evidence
}

// Workflow runs one attendance action: decide, pass the gate, mutate the
// ledger. Only one action per employee runs at a time in this process; the
// ledger transaction covers other processes.
type Workflow struct {
	registrations Registrations
	ledger        Ledger
	gate          biometric.Gate
	clock         clock.Clock
	logger        *slog.Logger

	mu       sync.Mutex
	inFlight map[uint]struct{}
}

func New(registrations Registrations, ledger Ledger, gate biometric.Gate, c clock.Clock, logger *slog.Logger) *Workflow {
	if logger == nil {
		logger = slog.Default()
	}
	return &Workflow{
		registrations: registrations,
		ledger:        ledger,
		gate:          gate,
		clock:         c,
		logger:        logger,
		inFlight:      map[uint]struct{}{},
	}
}

// Execute returns an Outcome for every business result, rejections included.
// The error is reserved for storage failures and invalid commands.
func (w *Workflow) Execute(ctx context.Context, cmd Command) (Outcome, error) {
	if !cmd.Intent.Valid() {
		return Outcome{}, apperr.Validation("INVALID_INTENT", fmt.Sprintf("unknown intent %q", cmd.Intent))
	}
	ctx, span := observability.StartSpan(ctx, "attendance."+string(cmd.Intent))
	defer span.End()
	start := time.Now()
	out, err := w.execute(ctx, cmd)
	status := string(out.Kind)
	if err != nil {
		status = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, apperr.CodeOf(err))
	}
	span.SetAttributes(attribute.String("attendance.outcome", status))
	observability.RecordAttendanceAction(ctx, string(cmd.Intent), status)
	observability.RecordAttendanceActionDuration(ctx, string(cmd.Intent), status, time.Since(start))
	return out, err
}

func (w *Workflow) execute(ctx context.Context, cmd Command) (Outcome, error) {
	registered, err := w.registrations.Exists(ctx, cmd.EmployeeID)
	if err != nil {
		return Outcome{}, err
	}
	if !registered {
		return Outcome{Kind: OutcomeRequireBiometricEnrollment}, nil
	}
	if !w.acquire(cmd.EmployeeID) {
		return rejected(ReasonActionInFlight), nil
	}
	defer w.release(cmd.EmployeeID)

	today, err := w.ledger.FindToday(ctx, cmd.EmployeeID, w.clock.Now())
	if err != nil {
		return Outcome{}, err
	}

	d := Decide(Snapshot{BiometricRegistered: registered, Today: today, Intent: cmd.Intent})
	switch d.Kind {
	case DecisionRequireEnrollment:
		return Outcome{Kind: OutcomeRequireBiometricEnrollment}, nil
	case DecisionReject:
		return rejected(d.Reason), nil
	}

	proof, err := w.gate.Challenge(ctx, biometric.Request{
		EmployeeID:   cmd.EmployeeID,
		Purpose:      biometric.Purpose(cmd.Intent),
		DeviceStatus: cmd.Evidence.DeviceStatus,
		ChallengeID:  cmd.Evidence.ChallengeID,
		Signature:    cmd.Evidence.Signature,
	})
	if err != nil {
		reason, ok := biometric.ReasonOf(err)
		if !ok {
			return Outcome{}, err
		}
		w.logger.InfoContext(ctx, "biometric gate rejected attendance action",
			"employee_id", cmd.EmployeeID, "intent", cmd.Intent, "reason", reason)
		return rejected(string(reason)), nil
	}

	var rec *domain.AttendanceRecord
	now := w.clock.Now()
	if cmd.Intent == IntentCheckIn {
		rec, err = w.ledger.CheckIn(ctx, cmd.EmployeeID, now)
	} else {
		rec, err = w.ledger.CheckOut(ctx, cmd.EmployeeID, now)
	}
	if err != nil {
		switch apperr.KindOf(err) {
		case apperr.KindConflict, apperr.KindValidation:
			return rejected(apperr.MessageOf(err)), nil
		}
		return Outcome{}, err
	}

	if err := w.registrations.TouchVerified(ctx, cmd.EmployeeID, proof.VerifiedAt); err != nil {
		w.logger.WarnContext(ctx, "record biometric verification time failed",
			"employee_id", cmd.EmployeeID, "error", err)
	}
	return Outcome{Kind: OutcomeSuccess, Record: rec}, nil
}

func (w *Workflow) acquire(employeeID uint) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, busy := w.inFlight[employeeID]; busy {
		return false
	}
	w.inFlight[employeeID] = struct{}{}
	return true
}

func (w *Workflow) release(employeeID uint) {
	w.mu.Lock()
	delete(w.inFlight, employeeID)
	w.mu.Unlock()
}

func rejected(reason string) Outcome {
	return Outcome{Kind: OutcomeRejected, Reason: reason}
}
