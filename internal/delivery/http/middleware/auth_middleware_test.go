package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"panel/config"
	deliverycontext "panel/internal/delivery/context"
	"panel/internal/delivery/http/response"
	"panel/internal/domain/entity"
	domainerrors "panel/internal/domain/errors"
	"panel/internal/domain/repository"
	"panel/internal/domain/service"
	mockRepo "panel/internal/mocks/repository"
	mockSvc "panel/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authMiddlewareFixtures struct {
	middleware *AuthMiddleware
	tokenSvc   *mockSvc.MockTokenService
	adminRepo  *mockRepo.MockAdminRepository
	policy     *mockSvc.MockPasswordPolicy
}

func createTestAuthMiddleware(t *testing.T) authMiddlewareFixtures {
	tokenSvc := mockSvc.NewMockTokenService(t)
	adminRepo := mockRepo.NewMockAdminRepository(t)
	policy := mockSvc.NewMockPasswordPolicy(t)

	cfg := &config.Config{Auth: &config.AuthConfig{PasswordMaxAge: 30 * 24 * time.Hour}}

	return authMiddlewareFixtures{
		middleware: NewAuthMiddleware(tokenSvc, adminRepo, policy, cfg),
		tokenSvc:   tokenSvc,
		adminRepo:  adminRepo,
		policy:     policy,
	}
}

func newEchoContext(t *testing.T, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope
}

func nextRecorder(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true

		return c.NoContent(http.StatusOK)
	}
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	c, rec := newEchoContext(t, "")

	var called bool
	err := fx.middleware.Authenticate(nextRecorder(&called))(c)

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "SESSION_INVALID", decodeEnvelope(t, rec).Error.Code)
}

func TestAuthenticate_NonBearerScheme(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	c, rec := newEchoContext(t, "Basic dXNlcjpwYXNz")

	var called bool
	err := fx.middleware.Authenticate(nextRecorder(&called))(c)

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	c, rec := newEchoContext(t, "Bearer stale-token")

	fx.tokenSvc.On("VerifyAccess", "stale-token").Return(nil, service.ErrTokenExpired)

	var called bool
	err := fx.middleware.Authenticate(nextRecorder(&called))(c)

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "SESSION_EXPIRED", decodeEnvelope(t, rec).Error.Code)
}

func TestAuthenticate_ValidTokenSetsAdminID(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	c, _ := newEchoContext(t, "Bearer good-token")
	adminID := uuid.New()

	fx.tokenSvc.On("VerifyAccess", "good-token").Return(&service.SessionClaims{AdminID: adminID}, nil)

	var seen uuid.UUID
	err := fx.middleware.Authenticate(func(c echo.Context) error {
		id, ok := deliverycontext.GetAdminID(c)
		require.True(t, ok)
		seen = id

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, adminID, seen)
}

func TestRequirePasswordFresh_FreshPasswordPasses(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	c, _ := newEchoContext(t, "")
	admin := &entity.Admin{
		ID:                    uuid.New(),
		LastPasswordChangedAt: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	deliverycontext.SetAdminID(c, admin.ID)

	fx.adminRepo.On("FindByID", mock.Anything, admin.ID).Return(admin, nil)
	fx.policy.On("IsExpired", admin.LastPasswordChangedAt, 30*24*time.Hour).Return(false)

	var called bool
	err := fx.middleware.RequirePasswordFresh(nextRecorder(&called))(c)

	require.NoError(t, err)
	assert.True(t, called)
}

func TestRequirePasswordFresh_ExpiredPasswordBlocks(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	c, _ := newEchoContext(t, "")
	admin := &entity.Admin{
		ID:                    uuid.New(),
		LastPasswordChangedAt: time.Date(2025, 10, 1, 8, 0, 0, 0, time.UTC),
	}
	deliverycontext.SetAdminID(c, admin.ID)

	fx.adminRepo.On("FindByID", mock.Anything, admin.ID).Return(admin, nil)
	fx.policy.On("IsExpired", admin.LastPasswordChangedAt, 30*24*time.Hour).Return(true)

	var called bool
	err := fx.middleware.RequirePasswordFresh(nextRecorder(&called))(c)

	require.Error(t, err)
	assert.False(t, called)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordExpired)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode())
	assert.Equal(t, "lastPasswordChange=2025-10-01T08:00:00Z", appErr.Details())
}

func TestRequirePasswordFresh_DeletedAccount(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	c, rec := newEchoContext(t, "")
	adminID := uuid.New()
	deliverycontext.SetAdminID(c, adminID)

	fx.adminRepo.On("FindByID", mock.Anything, adminID).Return(nil, repository.ErrAdminNotFound)

	var called bool
	err := fx.middleware.RequirePasswordFresh(nextRecorder(&called))(c)

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequirePasswordFresh_MissingAuthentication(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	c, rec := newEchoContext(t, "")

	var called bool
	err := fx.middleware.RequirePasswordFresh(nextRecorder(&called))(c)

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
