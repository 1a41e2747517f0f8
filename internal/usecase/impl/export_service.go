package impl

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "panel/internal/delivery/context"
	domainerrors "panel/internal/domain/errors"
	"panel/internal/domain/repository"
	"panel/internal/domain/service"
	"panel/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var exportHeader = []string{"id", "email", "name", "createdAt"}

// exportService implements the ExportUsecase interface. Exports are
// generated server-side, written to object storage, and fetched by the
// client through a presigned URL.
type exportService struct {
	userRepo repository.ManagedUserRepository
	storage  service.ObjectStorage
	clock    service.Clock
	logger   *slog.Logger
}

// ExportServiceParams holds dependencies for exportService, injected by Fx.
type ExportServiceParams struct {
	fx.In

	UserRepo repository.ManagedUserRepository
	Storage  service.ObjectStorage
	Clock    service.Clock
	Logger   *slog.Logger
}

// NewExportService is the constructor for exportService.
func NewExportService(params ExportServiceParams) usecase.ExportUsecase {
	return &exportService{
		userRepo: params.UserRepo,
		storage:  params.Storage,
		clock:    params.Clock,
		logger:   params.Logger,
	}
}

func (srv *exportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ExportUsers writes a CSV snapshot of every managed user to object
// storage and returns a presigned download URL. Password hashes never
// appear in the export.
func (srv *exportService) ExportUsers(ctx context.Context) (*usecase.ExportUsersOutput, error) {
	users, err := srv.userRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load users for export")
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(exportHeader); err != nil {
		return nil, errors.Wrap(domainerrors.ErrExportFailed, err.Error())
	}
	for _, user := range users {
		record := []string{
			user.ID.String(),
			user.Email,
			user.Name,
			user.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return nil, errors.Wrap(domainerrors.ErrExportFailed, err.Error())
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, errors.Wrap(domainerrors.ErrExportFailed, err.Error())
	}

	key := fmt.Sprintf("exports/users-%s.csv", srv.clock.Now().UTC().Format("20060102-150405"))

	if err := srv.storage.Put(ctx, key, "text/csv", buf.Bytes()); err != nil {
		return nil, errors.Wrap(err, "failed to upload export")
	}

	downloadURL, err := srv.storage.PresignDownload(ctx, key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to presign export download")
	}

	srv.log(ctx).Info("User export generated", slog.String("key", key), slog.Int("rows", len(users)))

	return &usecase.ExportUsersOutput{
		ObjectKey:   key,
		DownloadURL: downloadURL,
	}, nil
}
