package service

import (
	"context"
	"testing"
	"time"

	"github.com/sandeepkv93/biometric-attendance-backend/internal/biometric"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/clock"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/domain"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/repository"
	repogomock "github.com/sandeepkv93/biometric-attendance-backend/internal/repository/gomock"
	"go.uber.org/mock/gomock"
)

type issuerFunc func(ctx context.Context, employeeID uint, purpose biometric.Purpose) (biometric.Challenge, error)

func (f issuerFunc) Issue(ctx context.Context, employeeID uint, purpose biometric.Purpose) (biometric.Challenge, error) {
	return f(ctx, employeeID, purpose)
}

func TestAttendanceServiceReads(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := repogomock.NewMockAttendanceRepository(ctrl)
	now := time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC)
	svc := NewAttendanceService(nil, nil, ledger, clock.NewManual(now))

	ledger.EXPECT().FindToday(gomock.Any(), uint(5), now).Return(nil, nil)
	rec, err := svc.Today(context.Background(), 5)
	if err != nil || rec != nil {
		t.Fatalf("expected no record today, got %+v err=%v", rec, err)
	}

	ledger.EXPECT().HistoryPaged(gomock.Any(), uint(5), repository.PageRequest{Page: 2, PageSize: 10}).
		Return(repository.PageResult[domain.AttendanceRecord]{Items: []domain.AttendanceRecord{{ID: 1}}, Page: 2, PageSize: 10, Total: 11, TotalPages: 2}, nil)
	page, err := svc.History(context.Background(), 5, repository.PageRequest{Page: 2, PageSize: 10})
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if page.Total != 11 || len(page.Items) != 1 {
		t.Fatalf("unexpected page %+v", page)
	}
}

func TestAttendanceServiceIssueChallengeDelegates(t *testing.T) {
	var gotPurpose biometric.Purpose
	issuer := issuerFunc(func(_ context.Context, employeeID uint, purpose biometric.Purpose) (biometric.Challenge, error) {
		gotPurpose = purpose
		return biometric.Challenge{ID: "c1", EmployeeID: employeeID, Purpose: purpose}, nil
	})
	svc := NewAttendanceService(nil, issuer, nil, clock.NewSystem())

	c, err := svc.IssueChallenge(context.Background(), 3, biometric.PurposeCheckOut)
	if err != nil {
		t.Fatalf("IssueChallenge: %v", err)
	}
	if c.ID != "c1" || c.EmployeeID != 3 || gotPurpose != biometric.PurposeCheckOut {
		t.Fatalf("unexpected challenge %+v", c)
	}
}
