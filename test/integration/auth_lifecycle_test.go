package integration

import (
	"net/http"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestLogoutRevocationIsSharedAcrossInstances(t *testing.T) {
	m := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	dsn := "file:shared_revocation?mode=memory&cache=shared"
	first := newTestServer(t, testServerOptions{redis: client, dsn: dsn})
	second := newTestServer(t, testServerOptions{redis: client, dsn: dsn})

	bearer := enroll(t, first, "shared@example.com", nil)
	if resp, env := doJSON(t, http.MethodGet, second+"/api/v1/me", bearer, nil); resp.StatusCode != http.StatusOK {
		t.Fatalf("expected token accepted by second instance, got %d %s", resp.StatusCode, env.code())
	}

	resp, env := doJSON(t, http.MethodPost, first+"/api/v1/auth/logout", bearer, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("logout: status=%d code=%s", resp.StatusCode, env.code())
	}
	resp, env = doJSON(t, http.MethodGet, second+"/api/v1/me", bearer, nil)
	if resp.StatusCode != http.StatusUnauthorized || env.code() != "TOKEN_REVOKED" {
		t.Fatalf("expected revoked token on second instance, got %d %s", resp.StatusCode, env.code())
	}
}

func TestLoginFailuresDoNotLeakWhichFieldWasWrong(t *testing.T) {
	baseURL := newTestServer(t, testServerOptions{})
	enroll(t, baseURL, "leak@example.com", nil)

	_, unknown := doJSON(t, http.MethodPost, baseURL+"/api/v1/auth/login", "", map[string]string{"email": "nobody@example.com", "password": "Valid#Pass1234"})
	_, wrong := doJSON(t, http.MethodPost, baseURL+"/api/v1/auth/login", "", map[string]string{"email": "leak@example.com", "password": "nope-nope"})
	if unknown.code() == "" || unknown.code() != wrong.code() {
		t.Fatalf("expected identical failure codes, got %q and %q", unknown.code(), wrong.code())
	}
	if unknown.Error.Message != wrong.Error.Message {
		t.Fatalf("expected identical failure messages, got %q and %q", unknown.Error.Message, wrong.Error.Message)
	}
}

func TestAuthRateLimitFailsClosedAfterLimit(t *testing.T) {
	baseURL := newTestServer(t, testServerOptions{authRPM: 2})
	body := map[string]string{"email": "nobody@example.com", "password": "whatever"}
	for i := 0; i < 2; i++ {
		if resp, _ := doJSON(t, http.MethodPost, baseURL+"/api/v1/auth/login", "", body); resp.StatusCode == http.StatusTooManyRequests {
			t.Fatalf("request %d should not be limited", i)
		}
	}
	resp, _ := doJSON(t, http.MethodPost, baseURL+"/api/v1/auth/login", "", body)
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after limit, got %d", resp.StatusCode)
	}
	if resp.Header.Get("Retry-After") == "" {
		t.Fatal("expected Retry-After header")
	}
}
