// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"panel/config"
	domainerrors "panel/internal/domain/errors"
	"panel/internal/domain/service"
)

// Defaults applied when no password strength section is configured.
const (
	defaultMinPasswordLength = 10
	defaultMaxPasswordLength = 72 // bcrypt truncates beyond 72 bytes
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost     int
	strength *config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	var strength *config.PasswordStrengthConfig
	if cfg != nil {
		if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
			cost = cfg.Auth.BcryptCost
		}
		strength = cfg.PasswordStrength
	}

	return &bcryptHasher{cost: cost, strength: strength}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt handles salt generation itself, so equal inputs produce distinct
// hashes while Check still verifies deterministically.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
// bcrypt's comparison is constant-time; a malformed hash simply fails to
// match.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}

// ValidatePasswordStrength enforces the configured length and
// character-class rules.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	minLen := defaultMinPasswordLength
	maxLen := defaultMaxPasswordLength
	requireUpper, requireLower, requireNumbers, requireSpecial := true, true, true, false

	if h.strength != nil {
		if h.strength.MinLength > 0 {
			minLen = h.strength.MinLength
		}
		if h.strength.MaxLength > 0 {
			maxLen = h.strength.MaxLength
		}
		requireUpper = h.strength.RequireUppercase
		requireLower = h.strength.RequireLowercase
		requireNumbers = h.strength.RequireNumbers
		requireSpecial = h.strength.RequireSpecial
	}

	if len(password) < minLen {
		return domainerrors.ErrPasswordStrength.WrapMessage("password is too short")
	}
	if len(password) > maxLen {
		return domainerrors.ErrPasswordStrength.WrapMessage("password is too long")
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	switch {
	case requireUpper && !hasUpper:
		return domainerrors.ErrPasswordStrength.WrapMessage("password requires an uppercase letter")
	case requireLower && !hasLower:
		return domainerrors.ErrPasswordStrength.WrapMessage("password requires a lowercase letter")
	case requireNumbers && !hasNumber:
		return domainerrors.ErrPasswordStrength.WrapMessage("password requires a digit")
	case requireSpecial && !hasSpecial:
		return domainerrors.ErrPasswordStrength.WrapMessage("password requires a special character")
	}

	return nil
}
