package impl

import (
	"context"
	"strings"
	"testing"

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

type profileFixtures struct {
	service   usecase.ProfileUsecase
	adminRepo *mockRepo.MockAdminRepository
	storage   *mockSvc.MockObjectStorage
}

func createTestProfileService(t *testing.T) profileFixtures {
	adminRepo := mockRepo.NewMockAdminRepository(t)
	storage := mockSvc.NewMockObjectStorage(t)

	service := NewProfileService(ProfileServiceParams{
		AdminRepo: adminRepo,
		Storage:   storage,
		Logger:    newDiscardLogger(),
	})

	return profileFixtures{
		service:   service,
		adminRepo: adminRepo,
		storage:   storage,
	}
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.adminRepo.On("FindByID", ctx, id).Return(nil, repository.ErrAdminNotFound)

	_, err := fx.service.GetProfile(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrAdminNotFound)
}

func TestProfileService_UpdateProfile_MergesPatch(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	admin := newTestAdmin()

	fx.adminRepo.On("FindByID", ctx, admin.ID).Return(admin, nil)
	fx.adminRepo.On("UpdateProfile", ctx, mock.AnythingOfType("*entity.Admin")).Return(nil)

	updated, err := fx.service.UpdateProfile(ctx, usecase.UpdateProfileInput{
		AdminID:   admin.ID,
		AdminName: strPtr("  Renamed Admin  "),
	})

	require.NoError(t, err)
	assert.Equal(t, "Renamed Admin", updated.AdminName)
	assert.True(t, updated.UsesLoginEmail, "untouched fields keep their stored value")
}

func TestProfileService_UpdateProfile_RoutingInvariant(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name    string
		prepare func(admin *entity.Admin)
		input   usecase.UpdateProfileInput
		wantErr bool
	}{
		{
			name:    "disable login email without a contact email",
			input:   usecase.UpdateProfileInput{UsesLoginEmail: boolPtr(false)},
			wantErr: true,
		},
		{
			name: "disable login email with a contact email in the same patch",
			input: usecase.UpdateProfileInput{
				UsesLoginEmail: boolPtr(false),
				ContactEmail:   strPtr("alerts@example.com"),
			},
		},
		{
			name: "disable login email with a contact email already stored",
			prepare: func(admin *entity.Admin) {
				admin.ContactEmail = "alerts@example.com"
			},
			input: usecase.UpdateProfileInput{UsesLoginEmail: boolPtr(false)},
		},
		{
			name: "contact email equal to the login identity is rejected",
			input: usecase.UpdateProfileInput{
				UsesLoginEmail: boolPtr(false),
				ContactEmail:   strPtr(strings.ToUpper("admin@example.com")),
			},
			wantErr: true,
		},
		{
			name: "clearing the contact email while using the login email",
			input: usecase.UpdateProfileInput{
				ContactEmail: strPtr(""),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fx := createTestProfileService(t)
			admin := newTestAdmin()
			if tc.prepare != nil {
				tc.prepare(admin)
			}
			tc.input.AdminID = admin.ID

			fx.adminRepo.On("FindByID", ctx, admin.ID).Return(admin, nil)
			if !tc.wantErr {
				fx.adminRepo.On("UpdateProfile", ctx, mock.AnythingOfType("*entity.Admin")).Return(nil)
			}

			_, err := fx.service.UpdateProfile(ctx, tc.input)

			if tc.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
				fx.adminRepo.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProfileService_PresignAvatarUpload_RecordsKey(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	admin := newTestAdmin()

	fx.adminRepo.On("FindByID", ctx, admin.ID).Return(admin, nil)
	fx.storage.On("PresignUpload", ctx, mock.AnythingOfType("string"), "image/png").
		Return("https://storage.example.com/upload", nil)

	var recordedKey string
	fx.adminRepo.On("UpdateProfile", ctx, mock.AnythingOfType("*entity.Admin")).
		Run(func(args mock.Arguments) {
			recordedKey = args.Get(1).(*entity.Admin).AvatarKey
		}).
		Return(nil)

	output, err := fx.service.PresignAvatarUpload(ctx, usecase.AvatarUploadInput{
		AdminID:     admin.ID,
		ContentType: "image/png",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://storage.example.com/upload", output.UploadURL)
	assert.Equal(t, output.AvatarKey, recordedKey, "the presigned key is stored on the profile")
	assert.True(t, strings.HasPrefix(output.AvatarKey, "avatars/"+admin.ID.String()+"/"))
	assert.True(t, strings.HasSuffix(output.AvatarKey, ".png"))
}

func TestProfileService_PresignAvatarUpload_RejectsContentType(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	_, err := fx.service.PresignAvatarUpload(ctx, usecase.AvatarUploadInput{
		AdminID:     uuid.New(),
		ContentType: "application/pdf",
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.storage.AssertNotCalled(t, "PresignUpload", mock.Anything, mock.Anything, mock.Anything)
}

func TestProfileService_GetAvatarURL(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	admin := newTestAdmin()
	admin.AvatarKey = "avatars/" + admin.ID.String() + "/pic.png"

	fx.adminRepo.On("FindByID", ctx, admin.ID).Return(admin, nil)
	fx.storage.On("PresignDownload", ctx, admin.AvatarKey).
		Return("https://storage.example.com/download", nil)

	url, err := fx.service.GetAvatarURL(ctx, admin.ID)

	require.NoError(t, err)
	assert.Equal(t, "https://storage.example.com/download", url)
}

func TestProfileService_GetAvatarURL_NoAvatar(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	admin := newTestAdmin()

	fx.adminRepo.On("FindByID", ctx, admin.ID).Return(admin, nil)

	_, err := fx.service.GetAvatarURL(ctx, admin.ID)

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	fx.storage.AssertNotCalled(t, "PresignDownload", mock.Anything, mock.Anything)
}
