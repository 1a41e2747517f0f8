// Package usecase provides testify doubles for the application usecase
// interfaces, used by the delivery tests.
package usecase

import (
	"context"
	"testing"

	"panel/internal/domain/entity"
	"panel/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAuthUsecase mocks usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

// NewMockAuthUsecase constructs the mock and asserts expectations on cleanup.
func NewMockAuthUsecase(t *testing.T) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuthUsecase) Login(ctx context.Context, input usecase.LoginInput) (*usecase.SessionOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.SessionOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAuthUsecase) Refresh(ctx context.Context, input usecase.RefreshInput) (*usecase.SessionOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.SessionOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAuthUsecase) ChangePassword(ctx context.Context, input usecase.ChangePasswordInput) error {
	args := m.Called(ctx, input)

	return args.Error(0)
}

func (m *MockAuthUsecase) ForgotPassword(ctx context.Context, input usecase.ForgotPasswordInput) error {
	args := m.Called(ctx, input)

	return args.Error(0)
}

func (m *MockAuthUsecase) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) error {
	args := m.Called(ctx, input)

	return args.Error(0)
}

// MockProfileUsecase mocks usecase.ProfileUsecase.
type MockProfileUsecase struct {
	mock.Mock
}

func NewMockProfileUsecase(t *testing.T) *MockProfileUsecase {
	m := &MockProfileUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProfileUsecase) GetProfile(ctx context.Context, adminID uuid.UUID) (*entity.Admin, error) {
	args := m.Called(ctx, adminID)
	if admin, ok := args.Get(0).(*entity.Admin); ok {
		return admin, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProfileUsecase) UpdateProfile(ctx context.Context, input usecase.UpdateProfileInput) (*entity.Admin, error) {
	args := m.Called(ctx, input)
	if admin, ok := args.Get(0).(*entity.Admin); ok {
		return admin, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProfileUsecase) PresignAvatarUpload(ctx context.Context, input usecase.AvatarUploadInput) (*usecase.AvatarUploadOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.AvatarUploadOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProfileUsecase) GetAvatarURL(ctx context.Context, adminID uuid.UUID) (string, error) {
	args := m.Called(ctx, adminID)

	return args.String(0), args.Error(1)
}

// MockUserAdminUsecase mocks usecase.UserAdminUsecase.
type MockUserAdminUsecase struct {
	mock.Mock
}

func NewMockUserAdminUsecase(t *testing.T) *MockUserAdminUsecase {
	m := &MockUserAdminUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserAdminUsecase) ListUsers(ctx context.Context, input usecase.ListUsersInput) (*usecase.ListUsersOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.ListUsersOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserAdminUsecase) CreateUser(ctx context.Context, input usecase.CreateUserInput) (*entity.ManagedUser, error) {
	args := m.Called(ctx, input)
	if user, ok := args.Get(0).(*entity.ManagedUser); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserAdminUsecase) UpdateUser(ctx context.Context, input usecase.UpdateUserInput) (*entity.ManagedUser, error) {
	args := m.Called(ctx, input)
	if user, ok := args.Get(0).(*entity.ManagedUser); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserAdminUsecase) DeleteUser(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// MockExportUsecase mocks usecase.ExportUsecase.
type MockExportUsecase struct {
	mock.Mock
}

func NewMockExportUsecase(t *testing.T) *MockExportUsecase {
	m := &MockExportUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockExportUsecase) ExportUsers(ctx context.Context) (*usecase.ExportUsersOutput, error) {
	args := m.Called(ctx)
	if output, ok := args.Get(0).(*usecase.ExportUsersOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}
