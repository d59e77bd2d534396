package session

import (
	"context"
	"testing"
	"time"

	"github.com/sandeepkv93/biometric-attendance-backend/internal/apperr"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/clock"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/config"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/database"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/repository"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/security"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/service"
)

func TestSignupThenLoginAgainstIdentityStore(t *testing.T) {
	db, err := database.Open(&config.Config{DatabaseURL: "file:session_identity?mode=memory&cache=shared"})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	identity := service.NewIdentityService(
		repository.NewEmployeeRepository(db),
		repository.NewBiometricRepository(db),
		security.NewPasswordHasher(security.Argon2Params{Time: 1, Memory: 8 * 1024, Threads: 1, KeyLen: 32, SaltLen: 16}),
		clock.NewManual(time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC)),
		time.UTC,
	)
	ctx := context.Background()

	m := NewMachine(identity)
	if _, err := m.ShowSignup(ctx); err != nil {
		t.Fatalf("ShowSignup: %v", err)
	}
	st, emp, err := m.Signup(ctx, service.SignupInput{Name: "A", Email: "a@b.com", Password: "secret1", ConfirmPassword: "secret1"})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if st.Screen != ScreenLogin || st.SignedIn() {
		t.Fatalf("expected login screen after signup, got %+v", st)
	}

	st, err = m.Login(ctx, "a@b.com", "wrong-password")
	if apperr.KindOf(err) != apperr.KindAuthentication {
		t.Fatalf("expected authentication error, got %v", err)
	}
	if st.SignedIn() || st.Screen != ScreenLogin {
		t.Fatalf("expected to stay signed out, got %+v", st)
	}

	st, err = m.Login(ctx, "a@b.com", "secret1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !st.SignedIn() || st.Employee.ID != emp.ID {
		t.Fatalf("expected signed in as %d, got %+v", emp.ID, st)
	}
}
