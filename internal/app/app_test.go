package app

import (
	"context"
	"log/slog"
	"net/http"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sandeepkv93/biometric-attendance-backend/internal/config"
)

func TestRunStopsOnContextCancelAndReleasesDependencies(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:app_run?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	m := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: m.Addr()})

	srv := &http.Server{Addr: "127.0.0.1:0", ReadHeaderTimeout: time.Second}
	a := New(&config.Config{ShutdownTimeout: 2 * time.Second}, slog.Default(), srv, nil, db, client)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancel")
	}

	if err := client.Ping(context.Background()).Err(); err == nil {
		t.Fatal("expected redis client to be closed")
	}
	sqlDB, _ := db.DB()
	if err := sqlDB.Ping(); err == nil {
		t.Fatal("expected database to be closed")
	}
}

func TestDurationOr(t *testing.T) {
	if got := durationOr(0, time.Second); got != time.Second {
		t.Fatalf("expected fallback, got %v", got)
	}
	if got := durationOr(3*time.Second, time.Second); got != 3*time.Second {
		t.Fatalf("expected configured value, got %v", got)
	}
}
