package handler

import (
	"log/slog"
	"net/http"

	"panel/internal/delivery/http/response"
	"panel/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ExportHandler holds dependencies for report-generation handlers.
type ExportHandler struct {
	uc     usecase.ExportUsecase
	logger *slog.Logger
}

// NewExportHandler is the constructor for ExportHandler, injected by Fx.
func NewExportHandler(uc usecase.ExportUsecase, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		uc:     uc,
		logger: logger,
	}
}

// ExportUsers generates a CSV snapshot of managed users and returns a
// presigned download URL.
func (h *ExportHandler) ExportUsers(c echo.Context) error {
	output, err := h.uc.ExportUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"objectKey":   output.ObjectKey,
		"downloadUrl": output.DownloadURL,
	}, "Export generated")
}
