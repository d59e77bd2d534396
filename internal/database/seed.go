package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sandeepkv93/biometric-attendance-backend/internal/domain"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/observability"

	"gorm.io/gorm"
)

type SeedReport struct {
	CreatedEmployees  int  `json:"created_employees"`
	ExistingEmployees int  `json:"existing_employees"`
	Noop              bool `json:"noop"`
}

// SeedEmployees inserts employees whose email is not taken yet. Password
// hashes must already be computed by the caller.
func SeedEmployees(ctx context.Context, db *gorm.DB, employees []domain.Employee) (*SeedReport, error) {
	start := time.Now()
	defer func() {
		observability.RecordDatabaseStartupDuration(ctx, "seed", time.Since(start))
	}()

	report := &SeedReport{}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range employees {
			e := employees[i]
			e.Email = strings.ToLower(strings.TrimSpace(e.Email))
			if e.Email == "" || e.PasswordHash == "" {
				return fmt.Errorf("seed employee %d: email and password hash are required", i)
			}
			res := tx.Where("emp_email = ?", e.Email).FirstOrCreate(&e)
			if res.Error != nil {
				return fmt.Errorf("seed employee %s: %w", e.Email, res.Error)
			}
			if res.RowsAffected == 1 {
				report.CreatedEmployees++
			} else {
				report.ExistingEmployees++
			}
		}
		return nil
	})
	if err != nil {
		observability.RecordDatabaseStartupEvent(ctx, "seed", "error")
		return nil, err
	}
	report.Noop = report.CreatedEmployees == 0
	observability.RecordDatabaseStartupEvent(ctx, "seed", "success")
	return report, nil
}
