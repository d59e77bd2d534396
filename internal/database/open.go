package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sandeepkv93/biometric-attendance-backend/internal/config"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/observability"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

func Open(cfg *config.Config) (*gorm.DB, error) {
	start := time.Now()
	defer func() {
		observability.RecordDatabaseStartupDuration(context.Background(), "connect", time.Since(start))
	}()

	driver, dsn := Resolve(cfg.DatabaseURL)
	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	default:
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		observability.RecordDatabaseStartupEvent(context.Background(), "connect", "error")
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}
	if driver == DriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			observability.RecordDatabaseStartupEvent(context.Background(), "connect", "error")
			return nil, err
		}
		// A single connection serializes writers so the check-in transaction
		// never races another one on the same file.
		sqlDB.SetMaxOpenConns(1)
	}
	observability.RecordDatabaseStartupEvent(context.Background(), "connect", "success")
	return db, nil
}

// Resolve picks the driver for url and normalizes the DSN it needs.
// postgres:// and key=value URLs go to PostgreSQL; anything else is a SQLite
// path or file: URI, which gets foreign keys and a busy timeout switched on.
func Resolve(url string) (driver, dsn string) {
	trimmed := strings.TrimSpace(url)
	lower := strings.ToLower(trimmed)
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"), strings.Contains(lower, "host="):
		return DriverPostgres, trimmed
	case strings.HasPrefix(lower, "sqlite://"):
		trimmed = trimmed[len("sqlite://"):]
	}
	return DriverSQLite, SQLiteDSN(trimmed)
}

func SQLiteDSN(path string) string {
	dsn := path
	for _, param := range []string{"_foreign_keys=on", "_busy_timeout=5000"} {
		key := param[:strings.Index(param, "=")]
		if strings.Contains(dsn, key+"=") {
			continue
		}
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + param
	}
	return dsn
}
