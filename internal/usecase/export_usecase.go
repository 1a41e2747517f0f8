// Package usecase contains the application-specific business rules.
package usecase

import "context"

// ExportUsersOutput returns where the generated export can be fetched.
type ExportUsersOutput struct {
	ObjectKey   string
	DownloadURL string
}

// ExportUsecase defines report-generation operations.
type ExportUsecase interface {
	// ExportUsers writes a CSV snapshot of every managed user to object
	// storage and returns a presigned download URL for it.
	ExportUsers(ctx context.Context) (*ExportUsersOutput, error)
}
