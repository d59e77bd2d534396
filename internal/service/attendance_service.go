package service

import (
	"context"

	"github.com/sandeepkv93/biometric-attendance-backend/internal/biometric"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/clock"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/domain"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/repository"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/workflow"
)

// ChallengeIssuer hands out nonces for the device to sign.
type ChallengeIssuer interface {
	Issue(ctx context.Context, employeeID uint, purpose biometric.Purpose) (biometric.Challenge, error)
}

// AttendanceService fronts the workflow and the ledger's read side.
type AttendanceService struct {
	workflow *workflow.Workflow
	issuer   ChallengeIssuer
	ledger   repository.AttendanceRepository
	clock    clock.Clock
}

func NewAttendanceService(wf *workflow.Workflow, issuer ChallengeIssuer, ledger repository.AttendanceRepository, c clock.Clock) *AttendanceService {
	return &AttendanceService{workflow: wf, issuer: issuer, ledger: ledger, clock: c}
}

func (s *AttendanceService) Execute(ctx context.Context, cmd workflow.Command) (workflow.Outcome, error) {
	return s.workflow.Execute(ctx, cmd)
}

func (s *AttendanceService) IssueChallenge(ctx context.Context, employeeID uint, purpose biometric.Purpose) (biometric.Challenge, error) {
	return s.issuer.Issue(ctx, employeeID, purpose)
}

// Today returns the employee's record for the current work date, or nil.
func (s *AttendanceService) Today(ctx context.Context, employeeID uint) (*domain.AttendanceRecord, error) {
	return s.ledger.FindToday(ctx, employeeID, s.clock.Now())
}

func (s *AttendanceService) History(ctx context.Context, employeeID uint, req repository.PageRequest) (repository.PageResult[domain.AttendanceRecord], error) {
	return s.ledger.HistoryPaged(ctx, employeeID, req)
}
