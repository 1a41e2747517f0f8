// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"panel/internal/domain/entity"
	"panel/internal/domain/service"
)

// passwordPolicy is the concrete PasswordPolicy implementation. It owns
// no state beyond the hasher it verifies candidates with and the clock
// that anchors age checks.
type passwordPolicy struct {
	hasher service.PasswordHasher
	clock  service.Clock
}

// NewPasswordPolicy is the constructor for passwordPolicy.
func NewPasswordPolicy(hasher service.PasswordHasher, clock service.Clock) service.PasswordPolicy {
	return &passwordPolicy{hasher: hasher, clock: clock}
}

// IsReusedOrCurrent verifies the candidate plaintext against the current
// hash and every history entry. Hash equality would never match because
// each hash carries its own salt, so the cleartext is checked instead.
func (p *passwordPolicy) IsReusedOrCurrent(candidate string, currentHash string, history []string) bool {
	if p.hasher.Check(candidate, currentHash) {
		return true
	}

	for _, priorHash := range history {
		if p.hasher.Check(candidate, priorHash) {
			return true
		}
	}

	return false
}

// RotateHistory prepends the outgoing hash and truncates to the retention
// depth. The oldest retained password becomes usable again once it falls
// off the end.
func (p *passwordPolicy) RotateHistory(currentHash string, history []string) []string {
	rotated := make([]string, 0, entity.PasswordHistoryDepth)
	rotated = append(rotated, currentHash)

	for _, priorHash := range history {
		if len(rotated) == entity.PasswordHistoryDepth {
			break
		}
		rotated = append(rotated, priorHash)
	}

	return rotated
}

// IsExpired is boundary-exact: a password is expired the instant its age
// reaches maxAge.
func (p *passwordPolicy) IsExpired(lastChangedAt time.Time, maxAge time.Duration) bool {
	return !p.clock.Now().Before(lastChangedAt.Add(maxAge))
}
