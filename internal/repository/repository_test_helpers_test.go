package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/sandeepkv93/biometric-attendance-backend/internal/domain"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newRepositoryDBForTest(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&domain.Employee{}, &domain.BiometricRegistration{}, &domain.AttendanceRecord{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createEmployeeForTest(t *testing.T, db *gorm.DB, email string) *domain.Employee {
	t.Helper()
	e := &domain.Employee{Name: "Test " + email, Email: email, PasswordHash: "hash"}
	if err := NewEmployeeRepository(db).Create(context.Background(), e); err != nil {
		t.Fatalf("create employee %s: %v", email, err)
	}
	return e
}
