package postgres

import (
	"context"
	"fmt"

	"panel/internal/domain/entity"
	domainerrors "panel/internal/domain/errors"
	"panel/internal/domain/repository"
	"panel/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	defaultListPage  = 1
	defaultListLimit = 20
	maxListLimit     = 100
)

// sortableUserColumns whitelists the columns a listing may order by.
// Anything else falls back to creation time to keep user input out of SQL.
var sortableUserColumns = map[string]string{
	"name":      "name",
	"email":     "email",
	"createdAt": "created_at",
}

// managedUserRepository implements repository.ManagedUserRepository using GORM.
type managedUserRepository struct {
	db *gorm.DB
}

// NewManagedUserRepository is the constructor for managedUserRepository.
func NewManagedUserRepository(db *gorm.DB) repository.ManagedUserRepository {
	return &managedUserRepository{db: db}
}

// List returns one page of users matching the query, plus the unpaged total.
func (repo *managedUserRepository) List(ctx context.Context, query repository.ListUsersQuery) (*repository.ListUsersResult, error) {
	page := query.Page
	if page < 1 {
		page = defaultListPage
	}
	limit := query.Limit
	if limit < 1 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	tx := repo.db.WithContext(ctx).Model(&model.ManagedUserModel{})
	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		tx = tx.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count managed users")
	}

	column, ok := sortableUserColumns[query.SortField]
	if !ok {
		column = "created_at"
	}
	direction := "ASC"
	if query.SortDir == repository.SortDesc {
		direction = "DESC"
	}

	var userMs []*model.ManagedUserModel
	err := tx.Order(fmt.Sprintf("%s %s", column, direction)).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&userMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list managed users")
	}

	users := make([]*entity.ManagedUser, 0, len(userMs))
	for _, userM := range userMs {
		users = append(users, toManagedUserDomain(userM))
	}

	return &repository.ListUsersResult{Total: total, Users: users}, nil
}

// ListAll returns every user ordered by creation time. Used by exports.
func (repo *managedUserRepository) ListAll(ctx context.Context) ([]*entity.ManagedUser, error) {
	var userMs []*model.ManagedUserModel
	err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&userMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list all managed users")
	}

	users := make([]*entity.ManagedUser, 0, len(userMs))
	for _, userM := range userMs {
		users = append(users, toManagedUserDomain(userM))
	}

	return users, nil
}

// FindByID retrieves a single user by their unique ID.
func (repo *managedUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ManagedUser, error) {
	var userM model.ManagedUserModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrManagedUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find managed user by id")
	}

	return toManagedUserDomain(&userM), nil
}

// Create persists a new user record.
func (repo *managedUserRepository) Create(ctx context.Context, user *entity.ManagedUser) error {
	userM := fromManagedUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create managed user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies an existing user record.
func (repo *managedUserRepository) Update(ctx context.Context, user *entity.ManagedUser) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ManagedUserModel{ID: user.ID}).
		Select("email", "name", "avatar_url").
		Updates(&model.ManagedUserModel{
			Email:     user.Email,
			Name:      user.Name,
			AvatarURL: user.AvatarURL,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update managed user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrManagedUserNotFound
	}

	return nil
}

// Delete removes a user record.
func (repo *managedUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ManagedUserModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete managed user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrManagedUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toManagedUserDomain(data *model.ManagedUserModel) *entity.ManagedUser {
	if data == nil {
		return nil
	}

	return &entity.ManagedUser{
		ID:                    data.ID,
		Email:                 data.Email,
		Name:                  data.Name,
		PasswordHash:          data.PasswordHash,
		AvatarURL:             data.AvatarURL,
		LastPasswordChangedAt: data.LastPasswordChangedAt,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

func fromManagedUserDomain(data *entity.ManagedUser) *model.ManagedUserModel {
	if data == nil {
		return nil
	}

	return &model.ManagedUserModel{
		ID:                    data.ID,
		Email:                 data.Email,
		Name:                  data.Name,
		PasswordHash:          data.PasswordHash,
		AvatarURL:             data.AvatarURL,
		LastPasswordChangedAt: data.LastPasswordChangedAt,
	}
}
