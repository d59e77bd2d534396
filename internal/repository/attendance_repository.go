package repository

import (
	"context"
	"time"

	"github.com/sandeepkv93/biometric-attendance-backend/internal/domain"

	"gorm.io/gorm"
)

// AttendanceRepository is the attendance ledger. Every method takes the
// reference instant explicitly; the repository turns it into a work date
// using the location it was built with.
type AttendanceRepository interface {
	FindToday(ctx context.Context, employeeID uint, ref time.Time) (*domain.AttendanceRecord, error)
	CheckIn(ctx context.Context, employeeID uint, now time.Time) (*domain.AttendanceRecord, error)
	CheckOut(ctx context.Context, employeeID uint, now time.Time) (*domain.AttendanceRecord, error)
	History(ctx context.Context, employeeID uint) ([]domain.AttendanceRecord, error)
	HistoryPaged(ctx context.Context, employeeID uint, req PageRequest) (PageResult[domain.AttendanceRecord], error)
	Location() *time.Location
}

type GormAttendanceRepository struct {
	db  *gorm.DB
	loc *time.Location
}

func NewAttendanceRepository(db *gorm.DB, loc *time.Location) AttendanceRepository {
	if loc == nil {
		loc = time.Local
	}
	return &GormAttendanceRepository{db: db, loc: loc}
}

func (r *GormAttendanceRepository) Location() *time.Location { return r.loc }

// FindToday returns the employee's record for ref's work date, open or
// closed. It returns nil without error when there is none.
func (r *GormAttendanceRepository) FindToday(ctx context.Context, employeeID uint, ref time.Time) (*domain.AttendanceRecord, error) {
	rec, err := findByDay(r.db.WithContext(ctx), employeeID, domain.WorkDateOf(ref, r.loc))
	if err := observe(ctx, "attendance", "find_today", err); err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *GormAttendanceRepository) CheckIn(ctx context.Context, employeeID uint, now time.Time) (*domain.AttendanceRecord, error) {
	day := domain.WorkDateOf(now, r.loc)
	var out *domain.AttendanceRecord
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		today, err := findByDay(tx, employeeID, day)
		if err != nil {
			return err
		}
		if today != nil {
			if today.Open() {
				return ErrAlreadyCheckedIn
			}
			return ErrSessionCompleted
		}
		rec := &domain.AttendanceRecord{EmployeeID: employeeID, WorkDate: day, CheckInTime: now.UTC()}
		if err := tx.Create(rec).Error; err != nil {
			return err
		}
		out = rec
		return nil
	})
	switch {
	case isDuplicate(err):
		// Lost the race against a concurrent check-in for the same day.
		err = ErrAlreadyCheckedIn
	case isForeignKeyViolation(err):
		err = ErrEmployeeNotFound
	}
	if err := observe(ctx, "attendance", "check_in", err); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GormAttendanceRepository) CheckOut(ctx context.Context, employeeID uint, now time.Time) (*domain.AttendanceRecord, error) {
	day := domain.WorkDateOf(now, r.loc)
	var out *domain.AttendanceRecord
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		today, err := findByDay(tx, employeeID, day)
		if err != nil {
			return err
		}
		if today == nil || !today.Open() {
			return ErrNoOpenSession
		}
		if !now.After(today.CheckInTime) {
			return ErrCheckOutBeforeCheckIn
		}
		at := now.UTC()
		res := tx.Model(&domain.AttendanceRecord{}).
			Where("id = ? AND check_out_time IS NULL", today.ID).
			Update("check_out_time", at)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return ErrNoOpenSession
		}
		today.CheckOutTime = &at
		out = today
		return nil
	})
	if err := observe(ctx, "attendance", "check_out", err); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GormAttendanceRepository) History(ctx context.Context, employeeID uint) ([]domain.AttendanceRecord, error) {
	var records []domain.AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("emp_id = ?", employeeID).
		Order("check_in_time asc, id asc").
		Find(&records).Error
	if err := observe(ctx, "attendance", "history", err); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *GormAttendanceRepository) HistoryPaged(ctx context.Context, employeeID uint, req PageRequest) (PageResult[domain.AttendanceRecord], error) {
	req = req.Normalize()
	base := r.db.WithContext(ctx).Model(&domain.AttendanceRecord{}).Where("emp_id = ?", employeeID).Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return PageResult[domain.AttendanceRecord]{}, observe(ctx, "attendance", "history_paged", err)
	}
	var records []domain.AttendanceRecord
	err := base.Order("check_in_time asc, id asc").Offset(req.Offset()).Limit(req.PageSize).Find(&records).Error
	if err := observe(ctx, "attendance", "history_paged", err); err != nil {
		return PageResult[domain.AttendanceRecord]{}, err
	}
	return newPageResult(req, total, records), nil
}

func findByDay(db *gorm.DB, employeeID uint, day string) (*domain.AttendanceRecord, error) {
	var rec domain.AttendanceRecord
	err := db.Where("emp_id = ? AND work_date = ?", employeeID, day).First(&rec).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
