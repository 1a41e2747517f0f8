// Package repository provides testify doubles for the persistence
// interfaces, used by the usecase and delivery tests.
package repository

import (
	"context"
	"testing"
	"time"

	"panel/internal/domain/entity"
	"panel/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTransactionManager mocks repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

// NewMockTransactionManager constructs the mock and asserts expectations on cleanup.
func NewMockTransactionManager(t *testing.T) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)

	return args.Error(0)
}

// FakeTransactionManager runs the callback against a fixed factory and
// propagates its error, mirroring what the real manager does on commit
// and rollback. Most usecase tests want this instead of a mock.
type FakeTransactionManager struct {
	Factory repository.RepositoryFactory
}

func (f *FakeTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(f.Factory)
}

// MockRepositoryFactory mocks repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

func NewMockRepositoryFactory(t *testing.T) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRepositoryFactory) AdminRepo() repository.AdminRepository {
	args := m.Called()

	return args.Get(0).(repository.AdminRepository)
}

func (m *MockRepositoryFactory) UserRepo() repository.ManagedUserRepository {
	args := m.Called()

	return args.Get(0).(repository.ManagedUserRepository)
}

// MockAdminRepository mocks repository.AdminRepository.
type MockAdminRepository struct {
	mock.Mock
}

func NewMockAdminRepository(t *testing.T) *MockAdminRepository {
	m := &MockAdminRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAdminRepository) FindByLoginID(ctx context.Context, loginID string) (*entity.Admin, error) {
	args := m.Called(ctx, loginID)
	if admin, ok := args.Get(0).(*entity.Admin); ok {
		return admin, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAdminRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	args := m.Called(ctx, id)
	if admin, ok := args.Get(0).(*entity.Admin); ok {
		return admin, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAdminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	args := m.Called(ctx, admin)

	return args.Error(0)
}

func (m *MockAdminRepository) UpdatePassword(ctx context.Context, id uuid.UUID, newHash string, newHistory []string, changedAt time.Time) error {
	args := m.Called(ctx, id, newHash, newHistory, changedAt)

	return args.Error(0)
}

func (m *MockAdminRepository) UpdateProfile(ctx context.Context, admin *entity.Admin) error {
	args := m.Called(ctx, admin)

	return args.Error(0)
}

// MockManagedUserRepository mocks repository.ManagedUserRepository.
type MockManagedUserRepository struct {
	mock.Mock
}

func NewMockManagedUserRepository(t *testing.T) *MockManagedUserRepository {
	m := &MockManagedUserRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockManagedUserRepository) List(ctx context.Context, query repository.ListUsersQuery) (*repository.ListUsersResult, error) {
	args := m.Called(ctx, query)
	if result, ok := args.Get(0).(*repository.ListUsersResult); ok {
		return result, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockManagedUserRepository) ListAll(ctx context.Context) ([]*entity.ManagedUser, error) {
	args := m.Called(ctx)
	if users, ok := args.Get(0).([]*entity.ManagedUser); ok {
		return users, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockManagedUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ManagedUser, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.ManagedUser); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockManagedUserRepository) Create(ctx context.Context, user *entity.ManagedUser) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *MockManagedUserRepository) Update(ctx context.Context, user *entity.ManagedUser) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *MockManagedUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
