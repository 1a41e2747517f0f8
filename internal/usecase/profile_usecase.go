// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"panel/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput is a typed partial update. Nil fields are left
// untouched; the allow-list of mutable fields is fixed here, not decided
// at runtime.
type UpdateProfileInput struct {
	AdminID        uuid.UUID
	AdminName      *string
	UsesLoginEmail *bool
	ContactEmail   *string
}

// AvatarUploadInput describes the object the client intends to upload.
type AvatarUploadInput struct {
	AdminID     uuid.UUID
	ContentType string
}

// AvatarUploadOutput returns the presigned PUT URL and the key the
// profile will reference once the upload completes.
type AvatarUploadOutput struct {
	UploadURL string
	AvatarKey string
}

// ProfileUsecase defines the operations on the authenticated
// administrator's own profile.
type ProfileUsecase interface {
	// GetProfile returns the administrator's own account.
	GetProfile(ctx context.Context, adminID uuid.UUID) (*entity.Admin, error)

	// UpdateProfile applies a typed partial update to display name and
	// notification routing. Routing invariants are validated before any
	// write happens.
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*entity.Admin, error)

	// PresignAvatarUpload issues a presigned PUT URL for a new avatar and
	// records its key on the profile.
	PresignAvatarUpload(ctx context.Context, input AvatarUploadInput) (*AvatarUploadOutput, error)

	// GetAvatarURL returns a presigned GET URL for the stored avatar.
	GetAvatarURL(ctx context.Context, adminID uuid.UUID) (string, error)
}
