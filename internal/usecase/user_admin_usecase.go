// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"panel/internal/domain/entity"
	"panel/internal/domain/repository"

	"github.com/google/uuid"
)

// ListUsersInput carries pagination, search and ordering for user listings.
type ListUsersInput struct {
	Page      int
	Limit     int
	Search    string
	SortField string
	SortDir   repository.SortDirection
}

// ListUsersOutput is one page of managed users plus the unpaged total.
type ListUsersOutput struct {
	Total int64
	Users []*entity.ManagedUser
}

// CreateUserInput provisions a new managed user. The temporary password
// is generated server-side and emailed, never returned.
type CreateUserInput struct {
	Email string
	Name  string
}

// UpdateUserInput renames an existing managed user.
type UpdateUserInput struct {
	ID   uuid.UUID
	Name string
}

// UserAdminUsecase defines the CRUD operations administrators perform on
// managed end-user accounts.
type UserAdminUsecase interface {
	// ListUsers returns a paginated, searchable, sortable user listing.
	ListUsers(ctx context.Context, input ListUsersInput) (*ListUsersOutput, error)

	// CreateUser provisions an account with a generated temporary password
	// and emails the plaintext to the new user exactly once.
	CreateUser(ctx context.Context, input CreateUserInput) (*entity.ManagedUser, error)

	// UpdateUser applies the whitelisted profile update.
	UpdateUser(ctx context.Context, input UpdateUserInput) (*entity.ManagedUser, error)

	// DeleteUser removes a managed user account.
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
