package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "panel/internal/delivery/context"
	"panel/internal/delivery/http/response"
	domainerrors "panel/internal/domain/errors"
	"panel/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for credential and session handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

type loginRequest struct {
	LoginID  string `json:"loginId" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=10,max=72"`
}

type forgotPasswordRequest struct {
	LoginID string `json:"loginId" validate:"required,email"`
}

type resetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=10,max=72"`
}

type sessionResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Login authenticates by login identity and password and returns a token pair.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		LoginID:  req.LoginID,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sessionResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	}, "Login successful")
}

// Refresh exchanges a refresh token for a new token pair.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid refresh input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Refresh(c.Request().Context(), usecase.RefreshInput{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sessionResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	}, "Session refreshed")
}

// ChangePassword rotates the authenticated administrator's password.
// This route stays reachable when the password-expiry gate is closed.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	adminID, ok := deliverycontext.GetAdminID(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrSessionInvalid.ErrorCode(), "Authentication required")
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid password change input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	err := h.uc.ChangePassword(c.Request().Context(), usecase.ChangePasswordInput{
		AdminID:     adminID,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password changed")
}

// ForgotPassword requests a reset link. The response is identical whether
// or not the identity exists.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ForgotPassword(c.Request().Context(), usecase.ForgotPasswordInput{
		LoginID: req.LoginID,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "If the account exists, a reset link has been sent")
}

// ResetPassword redeems a mailed reset token.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid reset input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ResetPassword(c.Request().Context(), usecase.ResetPasswordInput{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password reset")
}
