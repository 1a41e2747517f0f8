// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"panel/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrManagedUserNotFound is returned when a managed user record is not found.
var ErrManagedUserNotFound = errors.New("managed user not found")

// SortDirection is the direction part of a listing sort key.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// ListUsersQuery carries pagination, search and ordering for user listings.
type ListUsersQuery struct {
	Page      int    // 1-based page number.
	Limit     int    // Page size.
	Search    string // Case-insensitive substring match over name and email.
	SortField string // Column to order by; empty means creation time.
	SortDir   SortDirection
}

// ListUsersResult is one page of managed users plus the unpaged total.
type ListUsersResult struct {
	Total int64
	Users []*entity.ManagedUser
}

// ManagedUserRepository defines the standard operations for end-user persistence.
type ManagedUserRepository interface {
	// List returns one page of users matching the query.
	List(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error)

	// ListAll returns every user, ordered by creation time. Used by exports.
	ListAll(ctx context.Context) ([]*entity.ManagedUser, error)

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ManagedUser, error)

	// Create persists a new user record.
	Create(ctx context.Context, user *entity.ManagedUser) error

	// Update modifies an existing user record.
	Update(ctx context.Context, user *entity.ManagedUser) error

	// Delete removes a user record.
	Delete(ctx context.Context, id uuid.UUID) error
}
