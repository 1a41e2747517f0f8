package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "panel/internal/delivery/context"
	"panel/internal/delivery/http/response"
	"panel/internal/domain/entity"
	domainerrors "panel/internal/domain/errors"
	"panel/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for the admin's own-profile handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

type updateProfileRequest struct {
	AdminName      *string `json:"adminName" validate:"omitempty,min=1,max=100"`
	UsesLoginEmail *bool   `json:"usesLoginEmail"`
	ContactEmail   *string `json:"contactEmail" validate:"omitempty,email"`
}

type avatarUploadRequest struct {
	ContentType string `json:"contentType" validate:"required"`
}

type profileResponse struct {
	ID                    string    `json:"id"`
	LoginID               string    `json:"loginId"`
	AdminName             string    `json:"adminName"`
	EmployeeID            string    `json:"employeeId"`
	ContactEmail          string    `json:"contactEmail,omitempty"`
	UsesLoginEmail        bool      `json:"usesLoginEmail"`
	HasAvatar             bool      `json:"hasAvatar"`
	LastPasswordChangedAt time.Time `json:"lastPasswordChangedAt"`
	CreatedAt             time.Time `json:"createdAt"`
}

// toProfileResponse maps the entity to its wire shape. Credential fields
// never leave this boundary.
func toProfileResponse(admin *entity.Admin) profileResponse {
	return profileResponse{
		ID:                    admin.ID.String(),
		LoginID:               admin.LoginID,
		AdminName:             admin.AdminName,
		EmployeeID:            admin.EmployeeID,
		ContactEmail:          admin.ContactEmail,
		UsesLoginEmail:        admin.UsesLoginEmail,
		HasAvatar:             admin.AvatarKey != "",
		LastPasswordChangedAt: admin.LastPasswordChangedAt,
		CreatedAt:             admin.CreatedAt,
	}
}

// GetProfile returns the authenticated administrator's profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	adminID, ok := deliverycontext.GetAdminID(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrSessionInvalid.ErrorCode(), "Authentication required")
	}

	admin, err := h.uc.GetProfile(c.Request().Context(), adminID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(admin), "")
}

// UpdateProfile applies a typed partial update to the profile.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	adminID, ok := deliverycontext.GetAdminID(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrSessionInvalid.ErrorCode(), "Authentication required")
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	admin, err := h.uc.UpdateProfile(c.Request().Context(), usecase.UpdateProfileInput{
		AdminID:        adminID,
		AdminName:      req.AdminName,
		UsesLoginEmail: req.UsesLoginEmail,
		ContactEmail:   req.ContactEmail,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(admin), "Profile updated")
}

// AvatarUploadURL issues a presigned PUT URL for a new avatar.
func (h *ProfileHandler) AvatarUploadURL(c echo.Context) error {
	adminID, ok := deliverycontext.GetAdminID(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrSessionInvalid.ErrorCode(), "Authentication required")
	}

	var req avatarUploadRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid avatar input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.PresignAvatarUpload(c.Request().Context(), usecase.AvatarUploadInput{
		AdminID:     adminID,
		ContentType: req.ContentType,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"uploadUrl": output.UploadURL,
		"avatarKey": output.AvatarKey,
	}, "")
}

// GetAvatar returns a presigned GET URL for the stored avatar.
func (h *ProfileHandler) GetAvatar(c echo.Context) error {
	adminID, ok := deliverycontext.GetAdminID(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrSessionInvalid.ErrorCode(), "Authentication required")
	}

	downloadURL, err := h.uc.GetAvatarURL(c.Request().Context(), adminID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"downloadUrl": downloadURL}, "")
}
