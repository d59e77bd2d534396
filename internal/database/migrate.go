package database

import (
	"context"
	"time"

	"github.com/sandeepkv93/biometric-attendance-backend/internal/domain"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/observability"

	"gorm.io/gorm"
)

// Models lists the persisted tables in dependency order.
func Models() []any {
	return []any{
		&domain.Employee{},
		&domain.BiometricRegistration{},
		&domain.AttendanceRecord{},
	}
}

func Migrate(db *gorm.DB) error {
	start := time.Now()
	err := db.AutoMigrate(Models()...)
	observability.RecordDatabaseStartupDuration(context.Background(), "migrate", time.Since(start))
	if err != nil {
		observability.RecordDatabaseStartupEvent(context.Background(), "migrate", "error")
		return err
	}
	observability.RecordDatabaseStartupEvent(context.Background(), "migrate", "success")
	return nil
}

// PendingTables returns the tables that do not exist yet.
func PendingTables(db *gorm.DB) []string {
	var pending []string
	for _, m := range Models() {
		if !db.Migrator().HasTable(m) {
			stmt := &gorm.Statement{DB: db}
			if err := stmt.Parse(m); err == nil {
				pending = append(pending, stmt.Schema.Table)
			}
		}
	}
	return pending
}
