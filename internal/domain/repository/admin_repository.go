// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"panel/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAdminNotFound is a domain-specific error returned when an administrator account is not found.
var ErrAdminNotFound = errors.New("admin not found")

// AdminRepository is the only component that touches persisted
// administrator rows. Each operation is atomic on a single row; no
// cross-account transactions are required.
type AdminRepository interface {
	// FindByLoginID retrieves an administrator by the unique login identity.
	FindByLoginID(ctx context.Context, loginID string) (*entity.Admin, error)

	// FindByID retrieves an administrator by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error)

	// Create persists a newly provisioned administrator account.
	Create(ctx context.Context, admin *entity.Admin) error

	// UpdatePassword atomically replaces the password hash, its history
	// and the last-change timestamp for one account.
	UpdatePassword(ctx context.Context, id uuid.UUID, newHash string, newHistory []string, changedAt time.Time) error

	// UpdateProfile persists display name, notification routing flag,
	// contact email and avatar key. Credential columns are untouched.
	UpdateProfile(ctx context.Context, admin *entity.Admin) error
}
