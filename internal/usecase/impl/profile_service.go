package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "panel/internal/delivery/context"
	"panel/internal/domain/entity"
	domainerrors "panel/internal/domain/errors"
	"panel/internal/domain/repository"
	"panel/internal/domain/service"
	"panel/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// avatarContentTypes maps the accepted upload content types to the
// object-key extension they produce.
var avatarContentTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

// profileService implements the ProfileUsecase interface.
type profileService struct {
	adminRepo repository.AdminRepository
	storage   service.ObjectStorage
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	AdminRepo repository.AdminRepository
	Storage   service.ObjectStorage
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		adminRepo: params.AdminRepo,
		storage:   params.Storage,
		logger:    params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the administrator's own account.
func (srv *profileService) GetProfile(ctx context.Context, adminID uuid.UUID) (*entity.Admin, error) {
	admin, err := srv.adminRepo.FindByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAdminNotFound, "profile lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find admin by id")
	}

	return admin, nil
}

// UpdateProfile applies a typed partial update. The routing invariant is
// checked against the merged result, not the patch alone: flipping
// usesLoginEmail off requires a contact email distinct from the login
// identity, whether it arrives in this patch or was already stored.
func (srv *profileService) UpdateProfile(ctx context.Context, input usecase.UpdateProfileInput) (*entity.Admin, error) {
	admin, err := srv.adminRepo.FindByID(ctx, input.AdminID)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAdminNotFound, "profile update failed")
		}

		return nil, errors.Wrap(err, "failed to find admin by id")
	}

	if input.AdminName != nil {
		admin.AdminName = strings.TrimSpace(*input.AdminName)
	}
	if input.UsesLoginEmail != nil {
		admin.UsesLoginEmail = *input.UsesLoginEmail
	}
	if input.ContactEmail != nil {
		admin.ContactEmail = strings.TrimSpace(*input.ContactEmail)
	}

	if err := validateRouting(admin); err != nil {
		return nil, err
	}

	if err := srv.adminRepo.UpdateProfile(ctx, admin); err != nil {
		srv.log(ctx).Error("Failed to update profile", slog.Any("adminID", admin.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update admin profile")
	}

	srv.log(ctx).Debug("Profile updated", slog.Any("adminID", admin.ID))

	return admin, nil
}

// validateRouting enforces the notification-routing invariant on the
// merged account state.
func validateRouting(admin *entity.Admin) error {
	if admin.UsesLoginEmail {
		return nil
	}
	if admin.ContactEmail == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "contact email is required when not using the login email")
	}
	if strings.EqualFold(admin.ContactEmail, admin.LoginID) {
		return errors.Wrap(domainerrors.ErrValidationFailed, "contact email must differ from the login email")
	}

	return nil
}

// PresignAvatarUpload issues a presigned PUT URL for a new avatar and
// stores the resulting key on the profile. The client uploads directly
// to object storage; this server never sees the bytes.
func (srv *profileService) PresignAvatarUpload(ctx context.Context, input usecase.AvatarUploadInput) (*usecase.AvatarUploadOutput, error) {
	ext, ok := avatarContentTypes[input.ContentType]
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unsupported avatar content type")
	}

	admin, err := srv.adminRepo.FindByID(ctx, input.AdminID)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAdminNotFound, "avatar upload failed")
		}

		return nil, errors.Wrap(err, "failed to find admin by id")
	}

	key := fmt.Sprintf("avatars/%s/%s.%s", admin.ID, uuid.New(), ext)

	uploadURL, err := srv.storage.PresignUpload(ctx, key, input.ContentType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to presign avatar upload")
	}

	admin.AvatarKey = key
	if err := srv.adminRepo.UpdateProfile(ctx, admin); err != nil {
		return nil, errors.Wrap(err, "failed to record avatar key")
	}

	return &usecase.AvatarUploadOutput{
		UploadURL: uploadURL,
		AvatarKey: key,
	}, nil
}

// GetAvatarURL returns a presigned GET URL for the stored avatar.
func (srv *profileService) GetAvatarURL(ctx context.Context, adminID uuid.UUID) (string, error) {
	admin, err := srv.adminRepo.FindByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return "", errors.Wrap(domainerrors.ErrAdminNotFound, "avatar lookup failed")
		}

		return "", errors.Wrap(err, "failed to find admin by id")
	}

	if admin.AvatarKey == "" {
		return "", errors.Wrap(domainerrors.ErrNotFound, "no avatar uploaded")
	}

	downloadURL, err := srv.storage.PresignDownload(ctx, admin.AvatarKey)
	if err != nil {
		return "", errors.Wrap(err, "failed to presign avatar download")
	}

	return downloadURL, nil
}
