// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"panel/internal/domain/entity"
	domainerrors "panel/internal/domain/errors"
	"panel/internal/domain/repository"
	"panel/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// adminRepository implements the repository.AdminRepository interface using GORM.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository is the constructor for adminRepository.
// It returns the repository as a repository.AdminRepository interface, adhering to dependency inversion.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

// FindByLoginID retrieves an administrator by the unique login identity.
func (repo *adminRepository) FindByLoginID(ctx context.Context, loginID string) (*entity.Admin, error) {
	var adminM model.AdminModel
	err := repo.db.WithContext(ctx).
		Where("login_id = ?", loginID).
		First(&adminM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin by login id")
	}

	return toAdminDomain(&adminM), nil
}

// FindByID retrieves an administrator by their unique ID.
func (repo *adminRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	var adminM model.AdminModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&adminM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin by id")
	}

	return toAdminDomain(&adminM), nil
}

// Create persists a newly provisioned administrator account.
func (repo *adminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	adminM := fromAdminDomain(admin)

	if err := repo.db.WithContext(ctx).Create(adminM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAdminAlreadyExists.WrapMessage("login id or employee id already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required admin information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create admin")
	}

	// Propagate generated ID and timestamps back to the entity.
	admin.ID = adminM.ID
	admin.CreatedAt = adminM.CreatedAt
	admin.UpdatedAt = adminM.UpdatedAt

	return nil
}

// UpdatePassword atomically replaces the credential columns for one account.
// The three columns always move together so a reader never observes a new
// hash with stale history.
func (repo *adminRepository) UpdatePassword(ctx context.Context, id uuid.UUID, newHash string, newHistory []string, changedAt time.Time) error {
	// Struct-based update keeps the JSON serializer on password_history in play.
	result := repo.db.WithContext(ctx).
		Model(&model.AdminModel{ID: id}).
		Select("password_hash", "password_history", "last_password_changed_at").
		Updates(&model.AdminModel{
			PasswordHash:          newHash,
			PasswordHistory:       newHistory,
			LastPasswordChangedAt: changedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update admin password")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAdminNotFound
	}

	return nil
}

// UpdateProfile persists display name, notification routing and avatar key.
// Credential columns are deliberately excluded from the update set.
func (repo *adminRepository) UpdateProfile(ctx context.Context, admin *entity.Admin) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AdminModel{}).
		Where("id = ?", admin.ID).
		Updates(map[string]any{
			"admin_name":       admin.AdminName,
			"contact_email":    admin.ContactEmail,
			"uses_login_email": admin.UsesLoginEmail,
			"avatar_key":       admin.AvatarKey,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update admin profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAdminNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAdminDomain converts a GORM AdminModel to a domain Admin entity.
func toAdminDomain(data *model.AdminModel) *entity.Admin {
	if data == nil {
		return nil
	}

	return &entity.Admin{
		ID:                    data.ID,
		LoginID:               data.LoginID,
		AdminName:             data.AdminName,
		EmployeeID:            data.EmployeeID,
		AvatarKey:             data.AvatarKey,
		PasswordHash:          data.PasswordHash,
		PasswordHistory:       data.PasswordHistory,
		LastPasswordChangedAt: data.LastPasswordChangedAt,
		ContactEmail:          data.ContactEmail,
		UsesLoginEmail:        data.UsesLoginEmail,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

// fromAdminDomain converts a domain Admin entity to a GORM AdminModel for persistence.
func fromAdminDomain(data *entity.Admin) *model.AdminModel {
	if data == nil {
		return nil
	}

	return &model.AdminModel{
		ID:                    data.ID,
		LoginID:               data.LoginID,
		AdminName:             data.AdminName,
		EmployeeID:            data.EmployeeID,
		AvatarKey:             data.AvatarKey,
		PasswordHash:          data.PasswordHash,
		PasswordHistory:       data.PasswordHistory,
		LastPasswordChangedAt: data.LastPasswordChangedAt,
		ContactEmail:          data.ContactEmail,
		UsesLoginEmail:        data.UsesLoginEmail,
	}
}
