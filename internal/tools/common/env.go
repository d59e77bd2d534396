package common

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/sandeepkv93/biometric-attendance-backend/internal/config"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/database"
)

// LoadEnvFile loads KEY=VALUE pairs from path into the environment. A
// missing file is not an error and variables already set win.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

// LoadConfigDB reads envFile, loads the config and opens the database it
// points at. Callers close the returned handle.
func LoadConfigDB(envFile string) (*config.Config, *gorm.DB, error) {
	if err := LoadEnvFile(envFile); err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	db, err := database.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}

func CloseDB(db *gorm.DB) {
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
