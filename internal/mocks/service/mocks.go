// Package service provides testify doubles for the domain service
// interfaces, used by the usecase and delivery tests.
package service

import (
	"context"
	"testing"
	"time"

	"panel/internal/domain/entity"
	"panel/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher mocks service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher constructs the mock and asserts expectations on cleanup.
func NewMockPasswordHasher(t *testing.T) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

func (m *MockPasswordHasher) ValidatePasswordStrength(password string) error {
	args := m.Called(password)

	return args.Error(0)
}

// MockTokenService mocks service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func NewMockTokenService(t *testing.T) *MockTokenService {
	m := &MockTokenService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) IssueSession(adminID uuid.UUID) (string, string, error) {
	args := m.Called(adminID)

	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockTokenService) VerifyAccess(token string) (*service.SessionClaims, error) {
	args := m.Called(token)
	if claims, ok := args.Get(0).(*service.SessionClaims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTokenService) VerifyRefresh(token string) (*service.SessionClaims, error) {
	args := m.Called(token)
	if claims, ok := args.Get(0).(*service.SessionClaims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTokenService) IssueReset(adminID uuid.UUID, address string) (string, error) {
	args := m.Called(adminID, address)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) VerifyReset(token string) (*service.ResetClaims, error) {
	args := m.Called(token)
	if claims, ok := args.Get(0).(*service.ResetClaims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockPasswordPolicy mocks service.PasswordPolicy.
type MockPasswordPolicy struct {
	mock.Mock
}

func NewMockPasswordPolicy(t *testing.T) *MockPasswordPolicy {
	m := &MockPasswordPolicy{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordPolicy) IsReusedOrCurrent(candidate string, currentHash string, history []string) bool {
	args := m.Called(candidate, currentHash, history)

	return args.Bool(0)
}

func (m *MockPasswordPolicy) RotateHistory(currentHash string, history []string) []string {
	args := m.Called(currentHash, history)

	return args.Get(0).([]string)
}

func (m *MockPasswordPolicy) IsExpired(lastChangedAt time.Time, maxAge time.Duration) bool {
	args := m.Called(lastChangedAt, maxAge)

	return args.Bool(0)
}

// MockSecurityNotifier mocks service.SecurityNotifier.
type MockSecurityNotifier struct {
	mock.Mock
}

func NewMockSecurityNotifier(t *testing.T) *MockSecurityNotifier {
	m := &MockSecurityNotifier{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSecurityNotifier) ResolveAddress(admin *entity.Admin) (string, error) {
	args := m.Called(admin)

	return args.String(0), args.Error(1)
}

func (m *MockSecurityNotifier) SendResetLink(ctx context.Context, admin *entity.Admin, resetToken string) error {
	args := m.Called(ctx, admin, resetToken)

	return args.Error(0)
}

func (m *MockSecurityNotifier) SendTemporaryPassword(ctx context.Context, to, name, tempPassword string) error {
	args := m.Called(ctx, to, name, tempPassword)

	return args.Error(0)
}

// MockMailer mocks service.Mailer.
type MockMailer struct {
	mock.Mock
}

func NewMockMailer(t *testing.T) *MockMailer {
	m := &MockMailer{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	args := m.Called(ctx, to, subject, htmlBody)

	return args.Error(0)
}

// MockObjectStorage mocks service.ObjectStorage.
type MockObjectStorage struct {
	mock.Mock
}

func NewMockObjectStorage(t *testing.T) *MockObjectStorage {
	m := &MockObjectStorage{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockObjectStorage) PresignUpload(ctx context.Context, key, contentType string) (string, error) {
	args := m.Called(ctx, key, contentType)

	return args.String(0), args.Error(1)
}

func (m *MockObjectStorage) PresignDownload(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)

	return args.String(0), args.Error(1)
}

func (m *MockObjectStorage) Put(ctx context.Context, key, contentType string, body []byte) error {
	args := m.Called(ctx, key, contentType, body)

	return args.Error(0)
}

// FakeClock is a fixed-time clock for boundary-exact expiry tests.
type FakeClock struct {
	Current time.Time
}

func (f *FakeClock) Now() time.Time {
	return f.Current
}
