// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PasswordHistoryDepth bounds how many prior password hashes are retained
// per administrator for reuse checking.
const PasswordHistoryDepth = 3

// Admin represents a single administrator account of the panel.
// LoginID is the unique, email-shaped identity used to authenticate; it is
// immutable after creation.
type Admin struct {
	ID         uuid.UUID // The unique identifier for the administrator, assigned at creation.
	LoginID    string    // Email-shaped login identity, unique and immutable.
	AdminName  string    // Display name shown in the panel.
	EmployeeID string    // Unique employee number, assigned at provisioning.
	AvatarKey  string    // Object-storage key of the uploaded avatar, empty when none.

	PasswordHash string // Current bcrypt hash. Never leaves the persistence boundary.

	// PasswordHistory holds up to PasswordHistoryDepth prior hashes, most
	// recent first. A new password must not verify against the current hash
	// or any entry here.
	PasswordHistory []string

	// LastPasswordChangedAt is updated on every successful password
	// change, including account creation. It is monotonically
	// non-decreasing and drives the password-age gate.
	LastPasswordChangedAt time.Time

	// ContactEmail receives security notifications when UsesLoginEmail is
	// false. It must then be present and distinct from LoginID.
	ContactEmail string

	// UsesLoginEmail routes security notifications to LoginID when true,
	// to ContactEmail otherwise.
	UsesLoginEmail bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NotificationAddress returns the address security mail should go to,
// without validating the routing invariant; callers that need the
// missing-contact check go through the notifier.
func (a *Admin) NotificationAddress() string {
	if a.UsesLoginEmail {
		return a.LoginID
	}

	return a.ContactEmail
}
