package repository

import (
	"context"
	"time"

	"github.com/sandeepkv93/biometric-attendance-backend/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BiometricRepository interface {
	// Register stores marker for the employee. A second registration
	// replaces the first and clears its verification timestamp.
	Register(ctx context.Context, employeeID uint, marker []byte, registeredDate string) (*domain.BiometricRegistration, error)
	FindByEmployee(ctx context.Context, employeeID uint) (*domain.BiometricRegistration, error)
	Exists(ctx context.Context, employeeID uint) (bool, error)
	TouchVerified(ctx context.Context, employeeID uint, at time.Time) error
}

type GormBiometricRepository struct{ db *gorm.DB }

func NewBiometricRepository(db *gorm.DB) BiometricRepository {
	return &GormBiometricRepository{db: db}
}

func (r *GormBiometricRepository) Register(ctx context.Context, employeeID uint, marker []byte, registeredDate string) (*domain.BiometricRegistration, error) {
	row := domain.BiometricRegistration{
		EmployeeID:     employeeID,
		Marker:         marker,
		RegisteredDate: registeredDate,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "emp_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"biometric_data", "date", "last_verified_at", "updated_at"}),
	}).Create(&row).Error
	if isForeignKeyViolation(err) {
		err = ErrEmployeeNotFound
	}
	if err := observe(ctx, "biometric", "register", err); err != nil {
		return nil, err
	}
	return r.FindByEmployee(ctx, employeeID)
}

func (r *GormBiometricRepository) FindByEmployee(ctx context.Context, employeeID uint) (*domain.BiometricRegistration, error) {
	var reg domain.BiometricRegistration
	err := r.db.WithContext(ctx).Where("emp_id = ?", employeeID).First(&reg).Error
	if isNotFound(err) {
		err = ErrBiometricNotFound
	}
	if err := observe(ctx, "biometric", "find_by_employee", err); err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *GormBiometricRepository) Exists(ctx context.Context, employeeID uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.BiometricRegistration{}).Where("emp_id = ?", employeeID).Count(&n).Error
	if err := observe(ctx, "biometric", "exists", err); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *GormBiometricRepository) TouchVerified(ctx context.Context, employeeID uint, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&domain.BiometricRegistration{}).
		Where("emp_id = ?", employeeID).
		Update("last_verified_at", at.UTC())
	err := res.Error
	if err == nil && res.RowsAffected == 0 {
		err = ErrBiometricNotFound
	}
	return observe(ctx, "biometric", "touch_verified", err)
}
