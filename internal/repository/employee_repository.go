package repository

import (
	"context"
	"strings"

	"github.com/sandeepkv93/biometric-attendance-backend/internal/domain"

	"gorm.io/gorm"
)

type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) error
	FindByID(ctx context.Context, id uint) (*domain.Employee, error)
	FindByEmail(ctx context.Context, email string) (*domain.Employee, error)
}

type GormEmployeeRepository struct{ db *gorm.DB }

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository { return &GormEmployeeRepository{db: db} }

// NormalizeEmail is the canonical form emails are stored and looked up in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *GormEmployeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	employee.Email = NormalizeEmail(employee.Email)
	err := r.db.WithContext(ctx).Create(employee).Error
	if isDuplicate(err) {
		err = ErrDuplicateEmail
	}
	return observe(ctx, "employee", "create", err)
}

func (r *GormEmployeeRepository) FindByID(ctx context.Context, id uint) (*domain.Employee, error) {
	var e domain.Employee
	err := r.db.WithContext(ctx).First(&e, id).Error
	if isNotFound(err) {
		err = ErrEmployeeNotFound
	}
	if err := observe(ctx, "employee", "find_by_id", err); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *GormEmployeeRepository) FindByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	var e domain.Employee
	err := r.db.WithContext(ctx).Where("emp_email = ?", NormalizeEmail(email)).First(&e).Error
	if isNotFound(err) {
		err = ErrEmployeeNotFound
	}
	if err := observe(ctx, "employee", "find_by_email", err); err != nil {
		return nil, err
	}
	return &e, nil
}
