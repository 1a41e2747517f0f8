package impl

import (
	"context"
	"testing"
	"time"
	"unicode"

	"panel/internal/domain/entity"
	domainerrors "panel/internal/domain/errors"
	"panel/internal/domain/repository"
	mockRepo "panel/internal/mocks/repository"
	mockSvc "panel/internal/mocks/service"
	"panel/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userAdminFixtures struct {
	service    usecase.UserAdminUsecase
	userRepo   *mockRepo.MockManagedUserRepository
	txUserRepo *mockRepo.MockManagedUserRepository
	hasher     *mockSvc.MockPasswordHasher
	notifier   *mockSvc.MockSecurityNotifier
	clock      *mockSvc.FakeClock
}

func createTestUserAdminService(t *testing.T) userAdminFixtures {
	userRepo := mockRepo.NewMockManagedUserRepository(t)
	txUserRepo := mockRepo.NewMockManagedUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	notifier := mockSvc.NewMockSecurityNotifier(t)
	clock := &mockSvc.FakeClock{Current: time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)}

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("UserRepo").Return(txUserRepo).Maybe()

	service := NewUserAdminService(UserAdminServiceParams{
		TxManager: &mockRepo.FakeTransactionManager{Factory: factory},
		UserRepo:  userRepo,
		Hasher:    hasher,
		Notifier:  notifier,
		Clock:     clock,
		Logger:    newDiscardLogger(),
	})

	return userAdminFixtures{
		service:    service,
		userRepo:   userRepo,
		txUserRepo: txUserRepo,
		hasher:     hasher,
		notifier:   notifier,
		clock:      clock,
	}
}

func TestUserAdminService_ListUsers(t *testing.T) {
	fx := createTestUserAdminService(t)
	ctx := context.Background()

	fx.userRepo.On("List", ctx, repository.ListUsersQuery{
		Page:      2,
		Limit:     10,
		Search:    "alice",
		SortField: "name",
		SortDir:   repository.SortAsc,
	}).Return(&repository.ListUsersResult{
		Total: 11,
		Users: []*entity.ManagedUser{{ID: uuid.New(), Email: "alice@example.com", Name: "Alice"}},
	}, nil)

	output, err := fx.service.ListUsers(ctx, usecase.ListUsersInput{
		Page:      2,
		Limit:     10,
		Search:    "alice",
		SortField: "name",
		SortDir:   repository.SortAsc,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), output.Total)
	require.Len(t, output.Users, 1)
	assert.Equal(t, "alice@example.com", output.Users[0].Email)
}

func TestUserAdminService_CreateUser_EmailsGeneratedPassword(t *testing.T) {
	fx := createTestUserAdminService(t)
	ctx := context.Background()

	var generated string
	fx.hasher.On("Hash", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { generated = args.String(0) }).
		Return("hash-temp", nil)
	fx.txUserRepo.On("Create", ctx, mock.AnythingOfType("*entity.ManagedUser")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.ManagedUser).ID = uuid.New()
		}).
		Return(nil)
	fx.notifier.On("SendTemporaryPassword", ctx, "new.user@example.com", "New User", mock.AnythingOfType("string")).Return(nil)

	user, err := fx.service.CreateUser(ctx, usecase.CreateUserInput{
		Email: "New.User@example.com",
		Name:  "New User",
	})

	require.NoError(t, err)
	assert.Equal(t, "new.user@example.com", user.Email, "email is normalized")
	assert.Equal(t, "hash-temp", user.PasswordHash)
	assert.Equal(t, fx.clock.Current, user.LastPasswordChangedAt)

	// The mailed plaintext is the one that was hashed.
	fx.notifier.AssertCalled(t, "SendTemporaryPassword", ctx, "new.user@example.com", "New User", generated)
}

func TestUserAdminService_CreateUser_DeliveryFailureKeepsAccount(t *testing.T) {
	fx := createTestUserAdminService(t)
	ctx := context.Background()

	fx.hasher.On("Hash", mock.AnythingOfType("string")).Return("hash-temp", nil)
	fx.txUserRepo.On("Create", ctx, mock.AnythingOfType("*entity.ManagedUser")).Return(nil)
	fx.notifier.On("SendTemporaryPassword", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(domainerrors.ErrMailDeliveryFailed)

	user, err := fx.service.CreateUser(ctx, usecase.CreateUserInput{
		Email: "new.user@example.com",
		Name:  "New User",
	})

	// The persisted account wins; the mail failure is logged, not returned.
	require.NoError(t, err)
	require.NotNil(t, user)
}

func TestUserAdminService_UpdateUser_NotFound(t *testing.T) {
	fx := createTestUserAdminService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.userRepo.On("FindByID", ctx, id).Return(nil, repository.ErrManagedUserNotFound)

	_, err := fx.service.UpdateUser(ctx, usecase.UpdateUserInput{ID: id, Name: "Renamed"})

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserAdminService_DeleteUser(t *testing.T) {
	fx := createTestUserAdminService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.userRepo.On("Delete", ctx, id).Return(nil)

	require.NoError(t, fx.service.DeleteUser(ctx, id))
}

func TestGenerateTempPassword(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for range 20 {
		pw, err := generateTempPassword()
		require.NoError(t, err)
		require.Len(t, pw, tempPasswordLength)
		assert.False(t, seen[pw], "passwords must not repeat")
		seen[pw] = true

		var hasUpper, hasLower, hasDigit, hasSpecial bool
		for _, r := range pw {
			switch {
			case unicode.IsUpper(r):
				hasUpper = true
			case unicode.IsLower(r):
				hasLower = true
			case unicode.IsDigit(r):
				hasDigit = true
			default:
				hasSpecial = true
			}
		}
		assert.True(t, hasUpper && hasLower && hasDigit && hasSpecial, "every character class is present")
	}
}
