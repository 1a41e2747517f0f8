// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ManagedUser is an end-user record administered through the panel.
// These accounts are provisioned by an administrator with a generated
// temporary password that is emailed to the user exactly once.
type ManagedUser struct {
	ID                    uuid.UUID
	Email                 string // Unique contact and login address.
	Name                  string
	PasswordHash          string // Never serialized into listings or responses.
	AvatarURL             string
	LastPasswordChangedAt time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
