package impl

import (
	"io"
	"log/slog"
	"time"

	"panel/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestAdmin() *entity.Admin {
	return &entity.Admin{
		ID:                    uuid.New(),
		LoginID:               "admin@example.com",
		AdminName:             "Test Admin",
		EmployeeID:            "EMP-001",
		PasswordHash:          "hash-current",
		PasswordHistory:       []string{"hash-prior"},
		LastPasswordChangedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		UsesLoginEmail:        true,
	}
}
