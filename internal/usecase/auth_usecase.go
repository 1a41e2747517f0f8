// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// LoginInput defines the data required for an administrator to log in.
type LoginInput struct {
	LoginID  string
	Password string
}

// RefreshInput carries the refresh token presented for session renewal.
type RefreshInput struct {
	RefreshToken string
}

// ChangePasswordInput carries a verified admin identity plus the old and
// new plaintext passwords.
type ChangePasswordInput struct {
	AdminID     uuid.UUID
	OldPassword string
	NewPassword string
}

// ForgotPasswordInput carries the login identity a reset was requested for.
type ForgotPasswordInput struct {
	LoginID string
}

// ResetPasswordInput carries a reset token and the replacement password.
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

// --- Output DTOs ---

// SessionOutput returns a freshly minted access/refresh token pair.
type SessionOutput struct {
	AccessToken  string
	RefreshToken string
}

// AuthUsecase defines the credential and session lifecycle operations.
// This is the contract that the delivery layer depends on.
type AuthUsecase interface {
	// Login authenticates by login identity and password. Unknown identity
	// and wrong password both fail with the same generic error.
	Login(ctx context.Context, input LoginInput) (*SessionOutput, error)

	// Refresh verifies a refresh token and mints a new access/refresh pair.
	Refresh(ctx context.Context, input RefreshInput) (*SessionOutput, error)

	// ChangePassword rotates an administrator's password after verifying
	// the old one and checking the new one against the reuse history.
	ChangePassword(ctx context.Context, input ChangePasswordInput) error

	// ForgotPassword mails a token-bearing reset link. It succeeds silently
	// when the identity is unknown.
	ForgotPassword(ctx context.Context, input ForgotPasswordInput) error

	// ResetPassword redeems a reset token and installs the new password.
	// Reuse history is deliberately not consulted.
	ResetPassword(ctx context.Context, input ResetPasswordInput) error
}
