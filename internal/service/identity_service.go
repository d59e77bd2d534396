package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/sandeepkv93/biometric-attendance-backend/internal/apperr"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/biometric"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/clock"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/domain"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/observability"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/repository"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/security"
)

var (
	ErrInvalidCredentials = apperr.Authentication("INVALID_CREDENTIALS", "invalid email or password")
	ErrEmptyMarker        = apperr.Validation("INVALID_BIOMETRIC_MARKER", "biometric marker is required")
)

type SignupInput struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type BiometricStatus struct {
	Registered     bool       `json:"registered"`
	RegisteredDate string     `json:"registered_date,omitempty"`
	LastVerifiedAt *time.Time `json:"last_verified_at,omitempty"`
}

// IdentityService owns employees and their biometric registrations.
type IdentityService struct {
	employees  repository.EmployeeRepository
	biometrics repository.BiometricRepository
	hasher     *security.PasswordHasher
	validate   *validator.Validate
	clock      clock.Clock
	loc        *time.Location
}

func NewIdentityService(
	employees repository.EmployeeRepository,
	biometrics repository.BiometricRepository,
	hasher *security.PasswordHasher,
	c clock.Clock,
	loc *time.Location,
) *IdentityService {
	if loc == nil {
		loc = time.Local
	}
	return &IdentityService{
		employees:  employees,
		biometrics: biometrics,
		hasher:     hasher,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		clock:      c,
		loc:        loc,
	}
}

// Signup creates an employee. It never signs the caller in.
func (s *IdentityService) Signup(ctx context.Context, in SignupInput) (*domain.Employee, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = repository.NormalizeEmail(in.Email)
	if err := s.validate.StructCtx(ctx, in); err != nil {
		observability.RecordAuthSignup(ctx, "invalid")
		return nil, validationError(err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		observability.RecordAuthSignup(ctx, "error")
		return nil, err
	}
	emp := &domain.Employee{Name: in.Name, Email: in.Email, PasswordHash: hash}
	if err := s.employees.Create(ctx, emp); err != nil {
		status := "error"
		if errors.Is(err, repository.ErrDuplicateEmail) {
			status = "duplicate"
		}
		observability.RecordAuthSignup(ctx, status)
		return nil, err
	}
	observability.RecordAuthSignup(ctx, "success")
	return emp, nil
}

// Login returns the employee whose credentials match. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (s *IdentityService) Login(ctx context.Context, in LoginInput) (*domain.Employee, error) {
	in.Email = repository.NormalizeEmail(in.Email)
	if err := s.validate.StructCtx(ctx, in); err != nil {
		observability.RecordAuthLogin(ctx, "invalid")
		return nil, validationError(err)
	}
	emp, err := s.employees.FindByEmail(ctx, in.Email)
	if errors.Is(err, repository.ErrEmployeeNotFound) {
		observability.RecordAuthLogin(ctx, "rejected")
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		observability.RecordAuthLogin(ctx, "error")
		return nil, err
	}
	ok, err := s.hasher.Verify(emp.PasswordHash, in.Password)
	if err != nil {
		observability.RecordAuthLogin(ctx, "error")
		return nil, err
	}
	if !ok {
		observability.RecordAuthLogin(ctx, "rejected")
		return nil, ErrInvalidCredentials
	}
	observability.RecordAuthLogin(ctx, "success")
	return emp, nil
}

func (s *IdentityService) Find(ctx context.Context, employeeID uint) (*domain.Employee, error) {
	return s.employees.FindByID(ctx, employeeID)
}

// RegisterBiometric stores marker as the employee's credential, replacing
// any earlier one.
func (s *IdentityService) RegisterBiometric(ctx context.Context, employeeID uint, marker []byte) (*domain.BiometricRegistration, error) {
	if len(marker) == 0 {
		observability.RecordBiometricRegistration(ctx, "invalid")
		return nil, ErrEmptyMarker
	}
	reg, err := s.biometrics.Register(ctx, employeeID, marker, domain.WorkDateOf(s.clock.Now(), s.loc))
	if err != nil {
		observability.RecordBiometricRegistration(ctx, "error")
		return nil, err
	}
	observability.RecordBiometricRegistration(ctx, "success")
	return reg, nil
}

func (s *IdentityService) HasBiometric(ctx context.Context, employeeID uint) (bool, error) {
	return s.biometrics.Exists(ctx, employeeID)
}

func (s *IdentityService) BiometricStatus(ctx context.Context, employeeID uint) (*BiometricStatus, error) {
	reg, err := s.biometrics.FindByEmployee(ctx, employeeID)
	if errors.Is(err, repository.ErrBiometricNotFound) {
		return &BiometricStatus{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &BiometricStatus{
		Registered:     true,
		RegisteredDate: reg.RegisteredDate,
		LastVerifiedAt: reg.LastVerifiedAt,
	}, nil
}

// Marker serves enrolled markers to the assertion gate.
func (s *IdentityService) Marker(ctx context.Context, employeeID uint) ([]byte, error) {
	reg, err := s.biometrics.FindByEmployee(ctx, employeeID)
	if errors.Is(err, repository.ErrBiometricNotFound) {
		return nil, biometric.ErrMarkerNotFound
	}
	if err != nil {
		return nil, err
	}
	return reg.Marker, nil
}

var fieldMessages = map[string]string{
	"Name.required":            "name is required",
	"Email.required":           "email is required",
	"Email.email":              "email is not a valid address",
	"Password.required":        "password is required",
	"Password.min":             "password must be at least 6 characters",
	"ConfirmPassword.required": "password confirmation is required",
	"ConfirmPassword.eqfield":  "passwords do not match",
}

// validationError reports the first failed rule as a client-facing message.
func validationError(err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return apperr.Validation("INVALID_INPUT", "invalid input")
	}
	fe := ve[0]
	msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]
	if !ok {
		msg = strings.ToLower(fe.Field()) + " is invalid"
	}
	return apperr.Validation("INVALID_INPUT", msg)
}
