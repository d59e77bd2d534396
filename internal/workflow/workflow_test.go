package workflow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sandeepkv93/biometric-attendance-backend/internal/apperr"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/biometric"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/clock"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/domain"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/repository"

	"golang.org/x/sync/errgroup"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type gateFunc func(ctx context.Context, req biometric.Request) (biometric.Proof, error)

func (f gateFunc) Challenge(ctx context.Context, req biometric.Request) (biometric.Proof, error) {
	return f(ctx, req)
}

type countingGate struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (g *countingGate) Challenge(_ context.Context, _ biometric.Request) (biometric.Proof, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	if g.err != nil {
		return biometric.Proof{}, g.err
	}
	return biometric.Proof{VerifiedAt: time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC)}, nil
}

func (g *countingGate) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

type workflowFixture struct {
	db         *gorm.DB
	clock      *clock.Manual
	biometrics repository.BiometricRepository
	ledger     repository.AttendanceRepository
	employee   *domain.Employee
}

func newWorkflowFixture(t *testing.T, registered bool) workflowFixture {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent), TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	if err := db.AutoMigrate(&domain.Employee{}, &domain.BiometricRegistration{}, &domain.AttendanceRecord{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	ctx := context.Background()
	emp := &domain.Employee{Name: "Ana", Email: "ana@example.com", PasswordHash: "hash"}
	if err := repository.NewEmployeeRepository(db).Create(ctx, emp); err != nil {
		t.Fatalf("create employee: %v", err)
	}
	bio := repository.NewBiometricRepository(db)
	if registered {
		if _, err := bio.Register(ctx, emp.ID, []byte("marker"), "2024-05-01"); err != nil {
			t.Fatalf("register biometric: %v", err)
		}
	}
	return workflowFixture{
		db:         db,
		clock:      clock.NewManual(time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC)),
		biometrics: bio,
		ledger:     repository.NewAttendanceRepository(db, time.UTC),
		employee:   emp,
	}
}

func (fx workflowFixture) workflow(gate biometric.Gate) *Workflow {
	return New(fx.biometrics, fx.ledger, gate, fx.clock, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (fx workflowFixture) records(t *testing.T) []domain.AttendanceRecord {
	t.Helper()
	recs, err := fx.ledger.History(context.Background(), fx.employee.ID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	return recs
}

func TestCheckInThenCheckOutSucceeds(t *testing.T) {
	ctx := context.Background()
	fx := newWorkflowFixture(t, true)
	wf := fx.workflow(&countingGate{})

	in, err := wf.Execute(ctx, Command{EmployeeID: fx.employee.ID, Intent: IntentCheckIn})
	if err != nil || in.Kind != OutcomeSuccess || in.Record == nil {
		t.Fatalf("unexpected check-in outcome %+v err=%v", in, err)
	}
	reg, err := fx.biometrics.FindByEmployee(ctx, fx.employee.ID)
	if err != nil {
		t.Fatalf("find registration: %v", err)
	}
	if reg.LastVerifiedAt == nil || !reg.LastVerifiedAt.Equal(time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected last verified time from the gate proof, got %v", reg.LastVerifiedAt)
	}

	fx.clock.Advance(8 * time.Hour)
	out, err := wf.Execute(ctx, Command{EmployeeID: fx.employee.ID, Intent: IntentCheckOut})
	if err != nil || out.Kind != OutcomeSuccess {
		t.Fatalf("unexpected check-out outcome %+v err=%v", out, err)
	}
	if out.Record.CheckOutTime == nil || !out.Record.CheckOutTime.After(out.Record.CheckInTime) {
		t.Fatalf("expected check-out after check-in: %+v", out.Record)
	}
	if recs := fx.records(t); len(recs) != 1 {
		t.Fatalf("expected exactly one record, got %d", len(recs))
	}
}

func TestDoubleCheckInRejectedWithoutGate(t *testing.T) {
	ctx := context.Background()
	fx := newWorkflowFixture(t, true)
	gate := &countingGate{}
	wf := fx.workflow(gate)

	if out, err := wf.Execute(ctx, Command{EmployeeID: fx.employee.ID, Intent: IntentCheckIn}); err != nil || out.Kind != OutcomeSuccess {
		t.Fatalf("first check in: %+v %v", out, err)
	}
	fx.clock.Advance(time.Minute)
	out, err := wf.Execute(ctx, Command{EmployeeID: fx.employee.ID, Intent: IntentCheckIn})
	if err != nil {
		t.Fatalf("second check in: %v", err)
	}
	if out.Kind != OutcomeRejected || out.Reason != ReasonAlreadyCheckedIn {
		t.Fatalf("expected already checked in rejection, got %+v", out)
	}
	if gate.Calls() != 1 {
		t.Fatalf("expected the gate to be skipped for a rejected intent, calls=%d", gate.Calls())
	}
	recs := fx.records(t)
	if len(recs) != 1 || !recs[0].Open() {
		t.Fatalf("expected one open record, got %+v", recs)
	}
}

func TestCheckOutWithoutCheckInRejected(t *testing.T) {
	fx := newWorkflowFixture(t, true)
	out, err := fx.workflow(&countingGate{}).Execute(context.Background(), Command{EmployeeID: fx.employee.ID, Intent: IntentCheckOut})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out.Kind != OutcomeRejected || out.Reason != ReasonNoOpenSession {
		t.Fatalf("expected no open session rejection, got %+v", out)
	}
	if recs := fx.records(t); len(recs) != 0 {
		t.Fatalf("expected ledger unchanged, got %d records", len(recs))
	}
}

func TestUnregisteredEmployeeRequiresEnrollment(t *testing.T) {
	ctx := context.Background()
	fx := newWorkflowFixture(t, false)
	gate := &countingGate{}
	wf := fx.workflow(gate)

	// Seed an open session directly so both intents see non-empty ledger state.
	if _, err := fx.ledger.CheckIn(ctx, fx.employee.ID, fx.clock.Now()); err != nil {
		t.Fatalf("seed ledger: %v", err)
	}
	before := fx.records(t)

	for _, intent := range []Intent{IntentCheckIn, IntentCheckOut} {
		out, err := wf.Execute(ctx, Command{EmployeeID: fx.employee.ID, Intent: intent})
		if err != nil {
			t.Fatalf("%s: %v", intent, err)
		}
		if out.Kind != OutcomeRequireBiometricEnrollment {
			t.Fatalf("%s: expected enrollment requirement, got %+v", intent, out)
		}
	}
	if gate.Calls() != 0 {
		t.Fatalf("expected no gate calls, got %d", gate.Calls())
	}
	after := fx.records(t)
	if len(after) != len(before) || !after[0].Open() {
		t.Fatalf("expected ledger unchanged, before=%+v after=%+v", before, after)
	}
}

func TestGateFailureRejectsWithReason(t *testing.T) {
	fx := newWorkflowFixture(t, true)
	gate := &countingGate{err: &biometric.GateError{Reason: biometric.ReasonUserCancelled}}

	out, err := fx.workflow(gate).Execute(context.Background(), Command{EmployeeID: fx.employee.ID, Intent: IntentCheckIn})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out.Kind != OutcomeRejected || out.Reason != string(biometric.ReasonUserCancelled) {
		t.Fatalf("expected user_cancelled rejection, got %+v", out)
	}
	if recs := fx.records(t); len(recs) != 0 {
		t.Fatalf("expected no ledger mutation, got %d", len(recs))
	}
}

func TestUnclassifiedGateErrorIsReturned(t *testing.T) {
	fx := newWorkflowFixture(t, true)
	boom := errors.New("boom")
	gate := gateFunc(func(context.Context, biometric.Request) (biometric.Proof, error) { return biometric.Proof{}, boom })

	_, err := fx.workflow(gate).Execute(context.Background(), Command{EmployeeID: fx.employee.ID, Intent: IntentCheckIn})
	if !errors.Is(err, boom) {
		t.Fatalf("expected raw gate error, got %v", err)
	}
}

func TestGateReceivesEvidenceAndPurpose(t *testing.T) {
	fx := newWorkflowFixture(t, true)
	var got biometric.Request
	gate := gateFunc(func(_ context.Context, req biometric.Request) (biometric.Proof, error) {
		got = req
		return biometric.Proof{VerifiedAt: time.Now()}, nil
	})

	cmd := Command{
		EmployeeID: fx.employee.ID,
		Intent:     IntentCheckIn,
		Evidence:   Evidence{DeviceStatus: "success", ChallengeID: "01HX", Signature: []byte("sig")},
	}
	if _, err := fx.workflow(gate).Execute(context.Background(), cmd); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got.EmployeeID != fx.employee.ID || got.Purpose != biometric.PurposeCheckIn || got.ChallengeID != "01HX" || string(got.Signature) != "sig" {
		t.Fatalf("unexpected gate request: %+v", got)
	}
}

func TestInvalidIntent(t *testing.T) {
	fx := newWorkflowFixture(t, true)
	_, err := fx.workflow(&countingGate{}).Execute(context.Background(), Command{EmployeeID: fx.employee.ID, Intent: "lunch"})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUnregisteredEmployeeRequiresEnrollmentWhileActionInFlight(t *testing.T) {
	fx := newWorkflowFixture(t, false)
	wf := fx.workflow(&countingGate{})

	if !wf.acquire(fx.employee.ID) {
		t.Fatal("expected to take the in-flight slot")
	}
	defer wf.release(fx.employee.ID)

	out, err := wf.Execute(context.Background(), Command{EmployeeID: fx.employee.ID, Intent: IntentCheckIn})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out.Kind != OutcomeRequireBiometricEnrollment {
		t.Fatalf("expected enrollment requirement while another action runs, got %+v", out)
	}
}

func TestInFlightGuardRejectsConcurrentAction(t *testing.T) {
	ctx := context.Background()
	fx := newWorkflowFixture(t, true)

	entered := make(chan struct{})
	releaseGate := make(chan struct{})
	gate := gateFunc(func(context.Context, biometric.Request) (biometric.Proof, error) {
		close(entered)
		<-releaseGate
		return biometric.Proof{VerifiedAt: time.Now()}, nil
	})
	wf := fx.workflow(gate)

	var g errgroup.Group
	var first Outcome
	g.Go(func() error {
		var err error
		first, err = wf.Execute(ctx, Command{EmployeeID: fx.employee.ID, Intent: IntentCheckIn})
		return err
	})

	<-entered
	second, err := wf.Execute(ctx, Command{EmployeeID: fx.employee.ID, Intent: IntentCheckIn})
	if err != nil {
		t.Fatalf("second execute: %v", err)
	}
	if second.Kind != OutcomeRejected || second.Reason != ReasonActionInFlight {
		t.Fatalf("expected in-flight rejection, got %+v", second)
	}
	close(releaseGate)
	if err := g.Wait(); err != nil {
		t.Fatalf("first execute: %v", err)
	}
	if first.Kind != OutcomeSuccess {
		t.Fatalf("expected first action to succeed, got %+v", first)
	}
}

func TestConcurrentDoubleSubmissionSingleRecord(t *testing.T) {
	ctx := context.Background()
	fx := newWorkflowFixture(t, true)

	// Two workflows model two server instances sharing one ledger, so the
	// in-process guard cannot serialize them.
	a := fx.workflow(&countingGate{})
	b := fx.workflow(&countingGate{})

	outcomes := make([]Outcome, 2)
	var g errgroup.Group
	for i, wf := range []*Workflow{a, b} {
		g.Go(func() error {
			out, err := wf.Execute(ctx, Command{EmployeeID: fx.employee.ID, Intent: IntentCheckIn})
			outcomes[i] = out
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	success := 0
	for _, out := range outcomes {
		switch out.Kind {
		case OutcomeSuccess:
			success++
		case OutcomeRejected:
			if out.Reason != ReasonAlreadyCheckedIn {
				t.Fatalf("unexpected rejection reason %q", out.Reason)
			}
		default:
			t.Fatalf("unexpected outcome %+v", out)
		}
	}
	if success != 1 {
		t.Fatalf("expected exactly one success, got %d", success)
	}
	if recs := fx.records(t); len(recs) != 1 || !recs[0].Open() {
		t.Fatalf("expected one open record, got %+v", recs)
	}
}
