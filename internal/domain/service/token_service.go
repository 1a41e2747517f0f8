package service

import (
	"errors"

	"github.com/google/uuid"
)

// Token verification failure kinds. Expired is distinguished from
// malformed so callers can tell a stale session (prompt re-login) from a
// tampered or garbage token (hard failure).
var (
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("token is malformed or has an invalid signature")
)

// SessionClaims is the verified subject of an access or refresh token.
type SessionClaims struct {
	AdminID uuid.UUID
}

// ResetClaims is the verified subject of a single-purpose reset token.
// It carries the notification address the token was mailed to, resolved
// at issuance time.
type ResetClaims struct {
	AdminID uuid.UUID
	Address string
}

// TokenService defines the interface for issuing and verifying the three
// signed token kinds. Signing keys are process-wide configuration loaded
// once at startup; there is no revocation list, tokens die at their TTL.
type TokenService interface {
	// IssueSession mints a new access/refresh token pair bound to an
	// administrator.
	IssueSession(adminID uuid.UUID) (accessToken string, refreshToken string, err error)

	// VerifyAccess validates an access token and extracts its claims.
	VerifyAccess(token string) (*SessionClaims, error)

	// VerifyRefresh validates a refresh token and extracts its claims.
	VerifyRefresh(token string) (*SessionClaims, error)

	// IssueReset mints a single-purpose password-reset token carrying the
	// resolved notification address.
	IssueReset(adminID uuid.UUID, address string) (string, error)

	// VerifyReset validates a reset token and extracts its claims.
	VerifyReset(token string) (*ResetClaims, error)
}
