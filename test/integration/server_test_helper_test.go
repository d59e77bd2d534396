package integration

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sandeepkv93/biometric-attendance-backend/internal/biometric"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/clock"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/config"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/database"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/health"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/http/handler"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/http/middleware"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/http/router"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/repository"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/security"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/service"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/workflow"
)

type testServerOptions struct {
	// redis switches the challenge store, revocation list and rate limiter to
	// Redis, mirroring REDIS_ENABLED=true.
	redis         redis.UniversalClient
	dsn           string
	authRPM       int
	attendanceRPM int
}

type apiEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func (e apiEnvelope) code() string {
	if e.Error == nil {
		return ""
	}
	return e.Error.Code
}

func newTestServer(t *testing.T, opts testServerOptions) string {
	t.Helper()

	dsn := opts.dsn
	if dsn == "" {
		dsn = "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	}
	db, err := database.Open(&config.Config{DatabaseURL: dsn})
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

	c := clock.NewSystem()
	employees := repository.NewEmployeeRepository(db)
	biometrics := repository.NewBiometricRepository(db)
	ledger := repository.NewAttendanceRepository(db, time.UTC)
	hasher := security.NewPasswordHasher(security.Argon2Params{Time: 1, Memory: 8 * 1024, Threads: 1, KeyLen: 32, SaltLen: 16})
	identity := service.NewIdentityService(employees, biometrics, hasher, c, time.UTC)

	var (
		challenges biometric.ChallengeStore = biometric.NewInMemoryChallengeStore(c)
		revoker    service.TokenRevoker     = service.NewInMemoryTokenRevoker(c)
		limiter                             = middleware.NewLocalFixedWindowLimiter()
		store                               = "memory"
	)
	if opts.redis != nil {
		challenges = biometric.NewRedisChallengeStore(opts.redis, "it")
		revoker = service.NewRedisTokenRevoker(opts.redis, "it", c)
		limiter = middleware.NewRedisFixedWindowLimiter(opts.redis, "it:rl")
		store = "redis"
	}
	gate := biometric.NewAssertionGate(challenges, identity, c, 2*time.Minute)
	wf := workflow.New(biometrics, ledger, gate, c, slog.Default())
	attendance := service.NewAttendanceService(wf, gate, ledger, c)
	tokens := service.NewTokenService(security.NewJWTManager("iss", "aud", "abcdefghijklmnopqrstuvwxyz123456"), revoker, time.Hour, store)

	authRPM := opts.authRPM
	if authRPM == 0 {
		authRPM = 1000
	}
	attendanceRPM := opts.attendanceRPM
	if attendanceRPM == 0 {
		attendanceRPM = 1000
	}
	h := router.NewRouter(router.Dependencies{
		AuthHandler:               handler.NewAuthHandler(identity, tokens),
		EmployeeHandler:           handler.NewEmployeeHandler(identity),
		AttendanceHandler:         handler.NewAttendanceHandler(attendance),
		Tokens:                    tokens,
		CORSOrigins:               []string{"http://localhost:3000"},
		RateLimitBackend:          limiter,
		APIRateLimitPerMin:        10000,
		AuthRateLimitPerMin:       authRPM,
		AttendanceRateLimitPerMin: attendanceRPM,
		Readiness:                 health.NewProbeRunner(c, time.Second, 0, health.NewDBChecker(db), health.NewSchemaChecker(db), health.NewRedisChecker(opts.redis)),
	})
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv.URL
}

func doJSON(t *testing.T, method, url, bearer string, body any) (*http.Response, apiEnvelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()
	var env apiEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("%s %s: decode envelope: %v", method, url, err)
	}
	return resp, env
}

// enroll signs up, logs in and registers marker, returning the access token.
func enroll(t *testing.T, baseURL, email string, marker []byte) string {
	t.Helper()
	resp, env := doJSON(t, http.MethodPost, baseURL+"/api/v1/auth/signup", "", map[string]string{
		"name": "Test Employee", "email": email, "password": "Valid#Pass1234", "confirm_password": "Valid#Pass1234",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("signup: status=%d code=%s", resp.StatusCode, env.code())
	}
	resp, env = doJSON(t, http.MethodPost, baseURL+"/api/v1/auth/login", "", map[string]string{"email": email, "password": "Valid#Pass1234"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: status=%d code=%s", resp.StatusCode, env.code())
	}
	var login struct {
		Token struct {
			AccessToken string `json:"access_token"`
		} `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &login); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	if marker != nil {
		resp, env = doJSON(t, http.MethodPost, baseURL+"/api/v1/biometrics/register", login.Token.AccessToken,
			map[string]string{"marker": base64.StdEncoding.EncodeToString(marker)})
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("register biometric: status=%d code=%s", resp.StatusCode, env.code())
		}
	}
	return login.Token.AccessToken
}

// attend asks for a challenge, signs it and submits the action.
func attend(t *testing.T, baseURL, bearer string, purpose biometric.Purpose, marker []byte) (*http.Response, apiEnvelope) {
	t.Helper()
	resp, env := doJSON(t, http.MethodPost, baseURL+"/api/v1/attendance/challenges", bearer, map[string]string{"purpose": string(purpose)})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("challenge: status=%d code=%s", resp.StatusCode, env.code())
	}
	var ch struct {
		ChallengeID string `json:"challenge_id"`
		Nonce       string `json:"nonce"`
	}
	if err := json.Unmarshal(env.Data, &ch); err != nil {
		t.Fatalf("decode challenge: %v", err)
	}
	nonce, err := base64.StdEncoding.DecodeString(ch.Nonce)
	if err != nil {
		t.Fatalf("decode nonce: %v", err)
	}
	sig := biometric.SignChallenge(marker, biometric.Challenge{ID: ch.ChallengeID, Purpose: purpose, Nonce: nonce})
	path := "/api/v1/attendance/check-in"
	if purpose == biometric.PurposeCheckOut {
		path = "/api/v1/attendance/check-out"
	}
	return doJSON(t, http.MethodPost, baseURL+path, bearer, map[string]string{
		"device_status": "success",
		"challenge_id":  ch.ChallengeID,
		"signature":     base64.StdEncoding.EncodeToString(sig),
	})
}
