package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/sandeepkv93/biometric-attendance-backend/internal/apperr"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/http/response"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/security"
)

type contextKey string

const (
	ClaimsContextKey contextKey = "claims"
)

// TokenAuthenticator turns a raw bearer token into claims, rejecting
// revoked tokens.
type TokenAuthenticator interface {
	Authenticate(ctx context.Context, raw string) (*security.Claims, error)
}

func AuthMiddleware(tokens TokenAuthenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := BearerToken(r)
			if raw == "" {
				response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing access token", nil)
				return
			}
			claims, err := tokens.Authenticate(r.Context(), raw)
			if err != nil {
				if apperr.KindOf(err) == apperr.KindAuthentication {
					response.Error(w, r, http.StatusUnauthorized, apperr.CodeOf(err), apperr.MessageOf(err), nil)
					return
				}
				response.FromError(w, r, err)
				return
			}
			ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func BearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if len(auth) > 7 && strings.EqualFold(auth[:7], "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}

func ClaimsFromContext(ctx context.Context) (*security.Claims, bool) {
	c, ok := ctx.Value(ClaimsContextKey).(*security.Claims)
	return c, ok
}

// EmployeeIDFromContext returns the authenticated employee's id.
func EmployeeIDFromContext(ctx context.Context) (uint, bool) {
	c, ok := ClaimsFromContext(ctx)
	if !ok {
		return 0, false
	}
	id, err := c.EmployeeID()
	if err != nil {
		return 0, false
	}
	return id, true
}
