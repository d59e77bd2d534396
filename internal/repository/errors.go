package repository

import (
	"context"
	"errors"

	"github.com/sandeepkv93/biometric-attendance-backend/internal/apperr"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/observability"

	"gorm.io/gorm"
)

var (
	ErrEmployeeNotFound      = apperr.NotFound("EMPLOYEE_NOT_FOUND", "employee not found")
	ErrDuplicateEmail        = apperr.Conflict("DUPLICATE_EMAIL", "email is already registered")
	ErrBiometricNotFound     = apperr.NotFound("BIOMETRIC_NOT_REGISTERED", "biometric is not registered")
	ErrAlreadyCheckedIn      = apperr.Conflict("ALREADY_CHECKED_IN", "already checked in today")
	ErrSessionCompleted      = apperr.Conflict("SESSION_COMPLETED", "attendance already completed today")
	ErrNoOpenSession         = apperr.Conflict("NO_OPEN_SESSION", "no open session to check out")
	ErrCheckOutBeforeCheckIn = apperr.Validation("CHECK_OUT_BEFORE_CHECK_IN", "check-out time must be after check-in time")
)

// observe records the outcome of a repository call and returns err with
// unexpected storage failures classified as persistence errors.
func observe(ctx context.Context, repo, op string, err error) error {
	switch {
	case err == nil:
		observability.RecordRepositoryOperation(ctx, repo, op, "success")
		return nil
	case apperr.KindOf(err) == apperr.KindNotFound:
		observability.RecordRepositoryOperation(ctx, repo, op, "not_found")
		return err
	case apperr.KindOf(err) == apperr.KindConflict, apperr.KindOf(err) == apperr.KindValidation:
		observability.RecordRepositoryOperation(ctx, repo, op, "conflict")
		return err
	default:
		observability.RecordRepositoryOperation(ctx, repo, op, "error")
		var classified *apperr.Error
		if errors.As(err, &classified) {
			return err
		}
		return apperr.Persistence(repo+" "+op, err)
	}
}

func isNotFound(err error) bool { return errors.Is(err, gorm.ErrRecordNotFound) }

func isDuplicate(err error) bool { return errors.Is(err, gorm.ErrDuplicatedKey) }

func isForeignKeyViolation(err error) bool { return errors.Is(err, gorm.ErrForeignKeyViolated) }
