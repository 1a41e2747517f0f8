// Package middleware contains the HTTP middleware of the panel API.
package middleware

import (
	"strings"
	"time"

	"panel/config"
	deliverycontext "panel/internal/delivery/context"
	"panel/internal/delivery/http/response"
	domainerrors "panel/internal/domain/errors"
	"panel/internal/domain/repository"
	"panel/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const defaultPasswordMaxAge = 90 * 24 * time.Hour

// AuthMiddleware verifies access tokens and enforces the password-age
// gate on authenticated routes.
type AuthMiddleware struct {
	tokenSvc       service.TokenService
	adminRepo      repository.AdminRepository
	policy         service.PasswordPolicy
	passwordMaxAge time.Duration
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, adminRepo repository.AdminRepository, policy service.PasswordPolicy, cfg *config.Config) *AuthMiddleware {
	maxAge := defaultPasswordMaxAge
	if cfg != nil && cfg.Auth != nil && cfg.Auth.PasswordMaxAge > 0 {
		maxAge = cfg.Auth.PasswordMaxAge
	}

	return &AuthMiddleware{
		tokenSvc:       tokenSvc,
		adminRepo:      adminRepo,
		policy:         policy,
		passwordMaxAge: maxAge,
	}
}

// Authenticate validates the bearer access token and stores the verified
// administrator ID on the context. Downstream code never re-parses the
// token; the ID travels as an explicit value.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, domainerrors.ErrSessionInvalid.ErrorCode(), "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, domainerrors.ErrSessionInvalid.ErrorCode(), "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.VerifyAccess(tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				return response.Unauthorized(c, domainerrors.ErrSessionExpired.ErrorCode(), "Access token has expired")
			}

			return response.Unauthorized(c, domainerrors.ErrSessionInvalid.ErrorCode(), "Access token rejected")
		}

		deliverycontext.SetAdminID(c, claims.AdminID)

		return next(c)
	}
}

// RequirePasswordFresh rejects requests whose account password has
// outlived the policy window. It must run after Authenticate. The
// change-password route is registered without this middleware so an
// expired admin can still rotate the password.
func (m *AuthMiddleware) RequirePasswordFresh(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		adminID, ok := deliverycontext.GetAdminID(c)
		if !ok {
			return response.Unauthorized(c, domainerrors.ErrSessionInvalid.ErrorCode(), "Authentication required")
		}

		admin, err := m.adminRepo.FindByID(c.Request().Context(), adminID)
		if err != nil {
			if errors.Is(err, repository.ErrAdminNotFound) {
				return response.Unauthorized(c, domainerrors.ErrSessionInvalid.ErrorCode(), "Account no longer exists")
			}

			return errors.Wrap(err, "failed to load account for password gate")
		}

		if m.policy.IsExpired(admin.LastPasswordChangedAt, m.passwordMaxAge) {
			// The timestamp tells the caller when the password last changed
			// so the client can explain why access is blocked.
			return domainerrors.ErrPasswordExpired.WithDetails(
				"lastPasswordChange=" + admin.LastPasswordChangedAt.UTC().Format(time.RFC3339),
			)
		}

		return next(c)
	}
}
