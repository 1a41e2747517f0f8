package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"panel/internal/delivery/http/response"
	"panel/internal/domain/entity"
	domainerrors "panel/internal/domain/errors"
	"panel/internal/domain/repository"
	"panel/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for managed-user CRUD handlers.
type UserHandler struct {
	uc     usecase.UserAdminUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserAdminUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type createUserRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,min=1,max=100"`
}

type updateUserRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type userListResponse struct {
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
	Users []userResponse `json:"users"`
}

func toUserResponse(user *entity.ManagedUser) userResponse {
	return userResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// parseSortParam splits a "field_dir" sort key such as "name_desc".
func parseSortParam(raw string) (string, repository.SortDirection) {
	if raw == "" {
		return "", repository.SortDesc
	}

	field := raw
	dir := repository.SortAsc
	if idx := strings.LastIndex(raw, "_"); idx > 0 {
		field = raw[:idx]
		if strings.EqualFold(raw[idx+1:], "desc") {
			dir = repository.SortDesc
		}
	}

	return field, dir
}

// ListUsers returns a paginated, searchable user listing.
func (h *UserHandler) ListUsers(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	sortField, sortDir := parseSortParam(c.QueryParam("sort"))

	output, err := h.uc.ListUsers(c.Request().Context(), usecase.ListUsersInput{
		Page:      page,
		Limit:     limit,
		Search:    c.QueryParam("search"),
		SortField: sortField,
		SortDir:   sortDir,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	users := make([]userResponse, 0, len(output.Users))
	for _, user := range output.Users {
		users = append(users, toUserResponse(user))
	}

	return response.Success(c, http.StatusOK, userListResponse{
		Total: output.Total,
		Page:  page,
		Limit: limit,
		Users: users,
	}, "")
}

// CreateUser provisions a managed user; the temporary password is mailed,
// never returned.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid user input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.CreateUser(c.Request().Context(), usecase.CreateUserInput{
		Email: req.Email,
		Name:  req.Name,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(user), "User created")
}

// UpdateUser applies the whitelisted profile update.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid user id")
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid user input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.UpdateUser(c.Request().Context(), usecase.UpdateUserInput{
		ID:   id,
		Name: req.Name,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "User updated")
}

// DeleteUser removes a managed user account.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid user id")
	}

	if err := h.uc.DeleteUser(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User deleted")
}
