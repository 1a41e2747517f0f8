// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"panel/config"
	deliverycontext "panel/internal/delivery/context"
	domainerrors "panel/internal/domain/errors"
	"panel/internal/domain/repository"
	"panel/internal/domain/service"
	"panel/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface. It composes the
// hasher, token service, policy engine and notifier into the credential
// lifecycle operations.
type authService struct {
	txManager    repository.TransactionManager
	adminRepo    repository.AdminRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	policy       service.PasswordPolicy
	notifier     service.SecurityNotifier
	clock        service.Clock
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AdminRepo    repository.AdminRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Policy       service.PasswordPolicy
	Notifier     service.SecurityNotifier
	Clock        service.Clock
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		adminRepo:    params.AdminRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		policy:       params.Policy,
		notifier:     params.Notifier,
		clock:        params.Clock,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login authenticates an administrator by login identity and password.
// Unknown identity and wrong password produce the same error so callers
// cannot enumerate accounts.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.SessionOutput, error) {
	srv.log(ctx).Debug("Starting admin login", slog.String("loginID", input.LoginID))

	admin, err := srv.adminRepo.FindByLoginID(ctx, input.LoginID)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("loginID", input.LoginID), slog.Any("error", domainerrors.ErrInvalidCredentials))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find admin by login id")
	}

	// bcrypt is CPU-bound; it runs outside any transaction.
	if !srv.hasher.Check(input.Password, admin.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("loginID", input.LoginID), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	// Password age is not checked here. The per-request gate enforces it
	// downstream so an expired admin can still log in to change the password.
	accessToken, refreshToken, err := srv.tokenService.IssueSession(admin.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session", slog.Any("adminID", admin.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session tokens")
	}

	srv.log(ctx).Debug("Admin logged in successfully", slog.Any("adminID", admin.ID))

	return &usecase.SessionOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh verifies a refresh token and rotates the whole pair. The old
// refresh token is not revoked; it dies at its short natural expiry.
func (srv *authService) Refresh(ctx context.Context, input usecase.RefreshInput) (*usecase.SessionOutput, error) {
	srv.log(ctx).Debug("Attempting to refresh session")

	claims, err := srv.tokenService.VerifyRefresh(input.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrTokenExpired) {
			return nil, errors.Wrap(domainerrors.ErrSessionExpired, "refresh token expired")
		}

		return nil, errors.Wrap(domainerrors.ErrSessionInvalid, "refresh token rejected")
	}

	// The account must still exist; a deleted admin's tokens stop working here.
	if _, err := srv.adminRepo.FindByID(ctx, claims.AdminID); err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSessionInvalid, "account no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find admin by id")
	}

	accessToken, refreshToken, err := srv.tokenService.IssueSession(claims.AdminID)
	if err != nil {
		srv.log(ctx).Error("Failed to rotate session", slog.Any("adminID", claims.AdminID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session tokens")
	}

	return &usecase.SessionOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// ChangePassword rotates the password after verifying the old one and
// rejecting any password still in the reuse window. On success the
// expiry gate clears because lastPasswordChangedAt moves to now.
func (srv *authService) ChangePassword(ctx context.Context, input usecase.ChangePasswordInput) error {
	srv.log(ctx).Debug("Starting password change", slog.Any("adminID", input.AdminID))

	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return errors.Wrap(domainerrors.ErrPasswordStrength, err.Error())
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		adminRepo := repoFactory.AdminRepo()

		admin, err := adminRepo.FindByID(ctx, input.AdminID)
		if err != nil {
			if errors.Is(err, repository.ErrAdminNotFound) {
				return errors.Wrap(domainerrors.ErrAdminNotFound, "password change failed")
			}

			return errors.Wrap(err, "failed to find admin by id")
		}

		if !srv.hasher.Check(input.OldPassword, admin.PasswordHash) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "old password mismatch")
		}

		if srv.policy.IsReusedOrCurrent(input.NewPassword, admin.PasswordHash, admin.PasswordHistory) {
			return errors.Wrap(domainerrors.ErrPasswordReused, "new password is in the reuse window")
		}

		newHash, err := srv.hasher.Hash(input.NewPassword)
		if err != nil {
			return errors.Wrap(err, "failed to hash new password")
		}

		// History rotates with the outgoing hash before the new one lands.
		newHistory := srv.policy.RotateHistory(admin.PasswordHash, admin.PasswordHistory)

		return adminRepo.UpdatePassword(ctx, admin.ID, newHash, newHistory, srv.clock.Now())
	})
	if err != nil {
		srv.log(ctx).Warn("Password change failed", slog.Any("adminID", input.AdminID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Password changed", slog.Any("adminID", input.AdminID))

	return nil
}

// ForgotPassword mails a token-bearing reset link to the account's
// notification address. It reports success no matter what so callers
// cannot probe which identities exist, and a delivery failure never
// surfaces either.
func (srv *authService) ForgotPassword(ctx context.Context, input usecase.ForgotPasswordInput) error {
	srv.log(ctx).Debug("Password reset requested", slog.String("loginID", input.LoginID))

	admin, err := srv.adminRepo.FindByLoginID(ctx, input.LoginID)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			srv.log(ctx).Debug("Reset requested for unknown identity", slog.String("loginID", input.LoginID))

			return nil
		}

		return errors.Wrap(err, "failed to find admin by login id")
	}

	address, err := srv.notifier.ResolveAddress(admin)
	if err != nil {
		// Unreachable when profile invariants hold; still silent outward.
		srv.log(ctx).Error("Failed to resolve notification address", slog.Any("adminID", admin.ID), slog.Any("error", err))

		return nil
	}

	resetToken, err := srv.tokenService.IssueReset(admin.ID, address)
	if err != nil {
		srv.log(ctx).Error("Failed to issue reset token", slog.Any("adminID", admin.ID), slog.Any("error", err))

		return nil
	}

	if err := srv.notifier.SendResetLink(ctx, admin, resetToken); err != nil {
		// Best-effort delivery. The caller still sees success.
		srv.log(ctx).Warn("Failed to deliver reset link", slog.Any("adminID", admin.ID), slog.Any("error", err))

		return nil
	}

	srv.log(ctx).Info("Reset link dispatched", slog.Any("adminID", admin.ID))

	return nil
}

// ResetPassword redeems a reset token and installs the new password.
// Any verification failure collapses into one invalid-token error. The
// reuse history is intentionally not consulted: a reset is out-of-band
// recovery, unlike ChangePassword.
func (srv *authService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) error {
	claims, err := srv.tokenService.VerifyReset(input.Token)
	if err != nil {
		return errors.Wrap(domainerrors.ErrResetTokenInvalid, "reset token rejected")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return errors.Wrap(domainerrors.ErrPasswordStrength, err.Error())
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		adminRepo := repoFactory.AdminRepo()

		admin, err := adminRepo.FindByID(ctx, claims.AdminID)
		if err != nil {
			if errors.Is(err, repository.ErrAdminNotFound) {
				return errors.Wrap(domainerrors.ErrResetTokenInvalid, "account no longer exists")
			}

			return errors.Wrap(err, "failed to find admin by id")
		}

		newHash, err := srv.hasher.Hash(input.NewPassword)
		if err != nil {
			return errors.Wrap(err, "failed to hash new password")
		}

		newHistory := srv.policy.RotateHistory(admin.PasswordHash, admin.PasswordHistory)

		return adminRepo.UpdatePassword(ctx, admin.ID, newHash, newHistory, srv.clock.Now())
	})
	if err != nil {
		srv.log(ctx).Warn("Password reset failed", slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Password reset completed", slog.Any("adminID", claims.AdminID))

	return nil
}
