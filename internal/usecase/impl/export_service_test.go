package impl

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"panel/internal/domain/entity"
	mockRepo "panel/internal/mocks/repository"
	mockSvc "panel/internal/mocks/service"
	"panel/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type exportFixtures struct {
	service  usecase.ExportUsecase
	userRepo *mockRepo.MockManagedUserRepository
	storage  *mockSvc.MockObjectStorage
	clock    *mockSvc.FakeClock
}

func createTestExportService(t *testing.T) exportFixtures {
	userRepo := mockRepo.NewMockManagedUserRepository(t)
	storage := mockSvc.NewMockObjectStorage(t)
	clock := &mockSvc.FakeClock{Current: time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)}

	service := NewExportService(ExportServiceParams{
		UserRepo: userRepo,
		Storage:  storage,
		Clock:    clock,
		Logger:   newDiscardLogger(),
	})

	return exportFixtures{
		service:  service,
		userRepo: userRepo,
		storage:  storage,
		clock:    clock,
	}
}

func TestExportService_ExportUsers(t *testing.T) {
	fx := createTestExportService(t)
	ctx := context.Background()

	users := []*entity.ManagedUser{
		{
			ID:        uuid.New(),
			Email:     "alice@example.com",
			Name:      "Alice, A.",
			CreatedAt: time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC),
		},
		{
			ID:        uuid.New(),
			Email:     "bob@example.com",
			Name:      "Bob",
			CreatedAt: time.Date(2025, 7, 2, 9, 0, 0, 0, time.UTC),
		},
	}
	fx.userRepo.On("ListAll", ctx).Return(users, nil)

	var uploaded []byte
	fx.storage.On("Put", ctx, "exports/users-20260201-120000.csv", "text/csv", mock.AnythingOfType("[]uint8")).
		Run(func(args mock.Arguments) { uploaded = args.Get(3).([]byte) }).
		Return(nil)
	fx.storage.On("PresignDownload", ctx, "exports/users-20260201-120000.csv").
		Return("https://storage.example.com/export", nil)

	output, err := fx.service.ExportUsers(ctx)

	require.NoError(t, err)
	assert.Equal(t, "exports/users-20260201-120000.csv", output.ObjectKey)
	assert.Equal(t, "https://storage.example.com/export", output.DownloadURL)

	records, err := csv.NewReader(bytes.NewReader(uploaded)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, exportHeader, records[0])
	assert.Equal(t, []string{users[0].ID.String(), "alice@example.com", "Alice, A.", "2025-06-01T08:30:00Z"}, records[1])
	assert.Equal(t, []string{users[1].ID.String(), "bob@example.com", "Bob", "2025-07-02T09:00:00Z"}, records[2])
}

func TestExportService_ExportUsers_EmptySnapshot(t *testing.T) {
	fx := createTestExportService(t)
	ctx := context.Background()

	fx.userRepo.On("ListAll", ctx).Return([]*entity.ManagedUser{}, nil)
	fx.storage.On("Put", ctx, mock.AnythingOfType("string"), "text/csv", mock.AnythingOfType("[]uint8")).Return(nil)
	fx.storage.On("PresignDownload", ctx, mock.AnythingOfType("string")).
		Return("https://storage.example.com/export", nil)

	output, err := fx.service.ExportUsers(ctx)

	// An empty roster still produces a header-only file.
	require.NoError(t, err)
	assert.NotEmpty(t, output.DownloadURL)
}
