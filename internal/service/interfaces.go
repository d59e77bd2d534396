package service

import (
	"context"

	"github.com/sandeepkv93/biometric-attendance-backend/internal/biometric"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/domain"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/repository"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/security"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/workflow"
)

type IdentityServiceInterface interface {
	Signup(ctx context.Context, in SignupInput) (*domain.Employee, error)
	Login(ctx context.Context, in LoginInput) (*domain.Employee, error)
	Find(ctx context.Context, employeeID uint) (*domain.Employee, error)
	RegisterBiometric(ctx context.Context, employeeID uint, marker []byte) (*domain.BiometricRegistration, error)
	BiometricStatus(ctx context.Context, employeeID uint) (*BiometricStatus, error)
}

type TokenServiceInterface interface {
	Issue(ctx context.Context, emp *domain.Employee) (*IssuedToken, error)
	Authenticate(ctx context.Context, raw string) (*security.Claims, error)
	Revoke(ctx context.Context, claims *security.Claims) error
}

type AttendanceServiceInterface interface {
	Execute(ctx context.Context, cmd workflow.Command) (workflow.Outcome, error)
	IssueChallenge(ctx context.Context, employeeID uint, purpose biometric.Purpose) (biometric.Challenge, error)
	Today(ctx context.Context, employeeID uint) (*domain.AttendanceRecord, error)
	History(ctx context.Context, employeeID uint, req repository.PageRequest) (repository.PageResult[domain.AttendanceRecord], error)
}

var (
	_ IdentityServiceInterface   = (*IdentityService)(nil)
	_ TokenServiceInterface      = (*TokenService)(nil)
	_ AttendanceServiceInterface = (*AttendanceService)(nil)
	_ biometric.MarkerSource     = (*IdentityService)(nil)
)
