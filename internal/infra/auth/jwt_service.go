// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"panel/config"
	"panel/internal/domain/service"
)

// Default token lifetimes. Access and reset tokens are deliberately
// short; a compromised token stays valid until its natural expiry since
// there is no revocation list.
const (
	defaultAccessTTL  = 10 * time.Minute
	defaultRefreshTTL = 30 * time.Minute
	defaultResetTTL   = 10 * time.Minute
)

// Token kinds embedded in the claims so one kind can never be redeemed as
// another, even though all three are HS256 JWTs.
const (
	tokenKindAccess  = "access"
	tokenKindRefresh = "refresh"
	tokenKindReset   = "reset"
)

type sessionTokenClaims struct {
	Kind string `json:"kind"`
	jwt.RegisteredClaims
}

type resetTokenClaims struct {
	Kind    string `json:"kind"`
	Address string `json:"address"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string
	refreshSecret string
	resetSecret   string
	accessTTL     time.Duration
	refreshTTL    time.Duration
	resetTTL      time.Duration
	clock         service.Clock
}

// NewJWTService is the constructor for jwtService.
// Missing signing keys are a constructor error, which makes them fatal at
// startup rather than a per-request failure.
func NewJWTService(cfg *config.Config, clock service.Clock) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" || cfg.SecretKey.Reset == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	svc := &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		resetSecret:   cfg.SecretKey.Reset,
		accessTTL:     defaultAccessTTL,
		refreshTTL:    defaultRefreshTTL,
		resetTTL:      defaultResetTTL,
		clock:         clock,
	}

	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			svc.accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			svc.refreshTTL = cfg.Auth.RefreshTokenTTL
		}
		if cfg.Auth.ResetTokenTTL > 0 {
			svc.resetTTL = cfg.Auth.ResetTokenTTL
		}
	}

	return svc, nil
}

// IssueSession creates a new access/refresh token pair for an administrator.
func (s *jwtService) IssueSession(adminID uuid.UUID) (string, string, error) {
	accessToken, err := s.signSession(adminID, tokenKindAccess, s.accessTTL, s.accessSecret)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := s.signSession(adminID, tokenKindRefresh, s.refreshTTL, s.refreshSecret)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// VerifyAccess validates an access token and extracts its claims.
func (s *jwtService) VerifyAccess(token string) (*service.SessionClaims, error) {
	return s.verifySession(token, tokenKindAccess, s.accessSecret)
}

// VerifyRefresh validates a refresh token and extracts its claims.
func (s *jwtService) VerifyRefresh(token string) (*service.SessionClaims, error) {
	return s.verifySession(token, tokenKindRefresh, s.refreshSecret)
}

// IssueReset mints a single-purpose reset token. The resolved
// notification address travels inside the token so the redeem step knows
// where the link was sent without re-resolving routing.
func (s *jwtService) IssueReset(adminID uuid.UUID, address string) (string, error) {
	now := s.clock.Now()
	claims := &resetTokenClaims{
		Kind:    tokenKindReset,
		Address: address,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.resetTTL)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.resetSecret))
}

// VerifyReset validates a reset token and extracts its claims.
func (s *jwtService) VerifyReset(token string) (*service.ResetClaims, error) {
	claims := &resetTokenClaims{}
	if err := s.parseInto(token, claims, s.resetSecret); err != nil {
		return nil, err
	}
	if claims.Kind != tokenKindReset {
		return nil, service.ErrTokenMalformed
	}

	adminID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, service.ErrTokenMalformed
	}

	return &service.ResetClaims{AdminID: adminID, Address: claims.Address}, nil
}

func (s *jwtService) signSession(adminID uuid.UUID, kind string, ttl time.Duration, secret string) (string, error) {
	now := s.clock.Now()
	claims := &sessionTokenClaims{
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func (s *jwtService) verifySession(token, kind, secret string) (*service.SessionClaims, error) {
	claims := &sessionTokenClaims{}
	if err := s.parseInto(token, claims, secret); err != nil {
		return nil, err
	}
	if claims.Kind != kind {
		return nil, service.ErrTokenMalformed
	}

	adminID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, service.ErrTokenMalformed
	}

	return &service.SessionClaims{AdminID: adminID}, nil
}

// parseInto parses and verifies a token, collapsing every failure into
// the two caller-visible kinds: expired or malformed. No raw library
// error crosses this boundary.
func (s *jwtService) parseInto(token string, claims jwt.Claims, secret string) error {
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	}, jwt.WithTimeFunc(s.clock.Now))

	switch {
	case err == nil && parsed.Valid:
		return nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return service.ErrTokenExpired
	default:
		return service.ErrTokenMalformed
	}
}
