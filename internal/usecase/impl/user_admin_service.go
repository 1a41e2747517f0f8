package impl

import (
	"context"
	"crypto/rand"
	"log/slog"
	"math/big"
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

const tempPasswordLength = 16

// tempPasswordClasses guarantees the generated password carries at least
// one character of every class the strength rules require.
var tempPasswordClasses = []string{
	"abcdefghijkmnpqrstuvwxyz",
	"ABCDEFGHJKLMNPQRSTUVWXYZ",
	"23456789",
	"!@#$%^&*",
}

// userAdminService implements the UserAdminUsecase interface.
type userAdminService struct {
	txManager repository.TransactionManager
	userRepo  repository.ManagedUserRepository
	hasher    service.PasswordHasher
	notifier  service.SecurityNotifier
	clock     service.Clock
	logger    *slog.Logger
}

// UserAdminServiceParams holds dependencies for userAdminService, injected by Fx.
type UserAdminServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.ManagedUserRepository
	Hasher    service.PasswordHasher
	Notifier  service.SecurityNotifier
	Clock     service.Clock
	Logger    *slog.Logger
}

// NewUserAdminService is the constructor for userAdminService.
func NewUserAdminService(params UserAdminServiceParams) usecase.UserAdminUsecase {
	return &userAdminService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		notifier:  params.Notifier,
		clock:     params.Clock,
		logger:    params.Logger,
	}
}

func (srv *userAdminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns a paginated, searchable, sortable user listing.
func (srv *userAdminService) ListUsers(ctx context.Context, input usecase.ListUsersInput) (*usecase.ListUsersOutput, error) {
	result, err := srv.userRepo.List(ctx, repository.ListUsersQuery{
		Page:      input.Page,
		Limit:     input.Limit,
		Search:    input.Search,
		SortField: input.SortField,
		SortDir:   input.SortDir,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list managed users")
	}

	return &usecase.ListUsersOutput{
		Total: result.Total,
		Users: result.Users,
	}, nil
}

// CreateUser provisions a managed account with a generated temporary
// password. The plaintext is emailed to the new user and never returned;
// delivery failure does not undo the already-persisted account.
func (srv *userAdminService) CreateUser(ctx context.Context, input usecase.CreateUserInput) (*entity.ManagedUser, error) {
	srv.log(ctx).Debug("Provisioning managed user", slog.String("email", input.Email))

	tempPassword, err := generateTempPassword()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate temporary password")
	}

	passwordHash, err := srv.hasher.Hash(tempPassword)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash temporary password")
	}

	user := &entity.ManagedUser{
		Email:                 strings.TrimSpace(strings.ToLower(input.Email)),
		Name:                  strings.TrimSpace(input.Name),
		PasswordHash:          passwordHash,
		LastPasswordChangedAt: srv.clock.Now(),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Create(ctx, user)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to provision managed user", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	if err := srv.notifier.SendTemporaryPassword(ctx, user.Email, user.Name, tempPassword); err != nil {
		// Account creation already committed; mail is best-effort.
		srv.log(ctx).Warn("Failed to deliver temporary password", slog.Any("userID", user.ID), slog.Any("error", err))
	}

	srv.log(ctx).Info("Managed user provisioned", slog.Any("userID", user.ID))

	return user, nil
}

// UpdateUser applies the whitelisted profile update.
func (srv *userAdminService) UpdateUser(ctx context.Context, input usecase.UpdateUserInput) (*entity.ManagedUser, error) {
	user, err := srv.userRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrManagedUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user update failed")
		}

		return nil, errors.Wrap(err, "failed to find managed user by id")
	}

	user.Name = strings.TrimSpace(input.Name)

	if err := srv.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrManagedUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user update failed")
		}

		return nil, errors.Wrap(err, "failed to update managed user")
	}

	return user, nil
}

// DeleteUser removes a managed user account.
func (srv *userAdminService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := srv.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrManagedUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "user deletion failed")
		}

		return errors.Wrap(err, "failed to delete managed user")
	}

	srv.log(ctx).Info("Managed user deleted", slog.Any("userID", id))

	return nil
}

// generateTempPassword draws a crypto-random password with at least one
// character from every required class, then shuffles so the class
// positions are not predictable.
func generateTempPassword() (string, error) {
	all := strings.Join(tempPasswordClasses, "")

	chars := make([]byte, 0, tempPasswordLength)
	for _, class := range tempPasswordClasses {
		ch, err := randomChar(class)
		if err != nil {
			return "", err
		}
		chars = append(chars, ch)
	}
	for len(chars) < tempPasswordLength {
		ch, err := randomChar(all)
		if err != nil {
			return "", err
		}
		chars = append(chars, ch)
	}

	for i := len(chars) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return "", errors.Wrap(err, "failed to read random source")
		}
		chars[i], chars[j.Int64()] = chars[j.Int64()], chars[i]
	}

	return string(chars), nil
}

func randomChar(charset string) (byte, error) {
	idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, errors.Wrap(err, "failed to read random source")
	}

	return charset[idx.Int64()], nil
}
