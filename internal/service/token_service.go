package service

import (
	"context"
	"errors"
	"time"

	"github.com/sandeepkv93/biometric-attendance-backend/internal/apperr"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/domain"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/observability"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/security"
)

var (
	ErrUnauthenticated = apperr.Authentication("UNAUTHORIZED", "missing or invalid access token")
	ErrTokenRevoked    = apperr.Authentication("TOKEN_REVOKED", "access token has been revoked")
)

type IssuedToken struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type TokenService struct {
	jwtMgr    *security.JWTManager
	revoker   TokenRevoker
	accessTTL time.Duration
	store     string
}

// NewTokenService builds the access token issuer. store names the revocation
// backend in metrics.
func NewTokenService(jwtMgr *security.JWTManager, revoker TokenRevoker, accessTTL time.Duration, store string) *TokenService {
	return &TokenService{jwtMgr: jwtMgr, revoker: revoker, accessTTL: accessTTL, store: store}
}

func (s *TokenService) Issue(_ context.Context, emp *domain.Employee) (*IssuedToken, error) {
	raw, claims, err := s.jwtMgr.SignAccessToken(emp.ID, emp.Email, s.accessTTL)
	if err != nil {
		return nil, err
	}
	return &IssuedToken{AccessToken: raw, TokenType: "Bearer", ExpiresAt: claims.ExpiresAt.Time}, nil
}

// Authenticate parses raw and rejects tokens that were logged out.
func (s *TokenService) Authenticate(ctx context.Context, raw string) (*security.Claims, error) {
	claims, err := s.jwtMgr.ParseAccessToken(raw)
	if err != nil {
		observability.RecordAccessTokenValidation(ctx, "invalid", "bearer")
		return nil, ErrUnauthenticated
	}
	revoked, err := s.revoker.IsRevoked(ctx, claims.ID)
	if err != nil {
		observability.RecordAccessTokenValidation(ctx, "error", "bearer")
		return nil, apperr.Persistence("check token revocation", err)
	}
	if revoked {
		observability.RecordAccessTokenValidation(ctx, "revoked", "bearer")
		return nil, ErrTokenRevoked
	}
	observability.RecordAccessTokenValidation(ctx, "valid", "bearer")
	return claims, nil
}

func (s *TokenService) Revoke(ctx context.Context, claims *security.Claims) error {
	if claims == nil || claims.ID == "" || claims.ExpiresAt == nil {
		observability.RecordTokenRevocation(ctx, s.store, "invalid")
		return errors.New("revoke: token has no id or expiry")
	}
	if err := s.revoker.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		observability.RecordTokenRevocation(ctx, s.store, "error")
		return apperr.Persistence("revoke token", err)
	}
	observability.RecordTokenRevocation(ctx, s.store, "success")
	return nil
}
