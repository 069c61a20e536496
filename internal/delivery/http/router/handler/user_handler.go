// Package handler contains the HTTP handlers of the gateway.
package handler

import (
	"log/slog"
	"net/http"

	"portal/internal/delivery/http/response"
	"portal/internal/domain/entity"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type createUserRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type updateUserRequest struct {
	Email              string `json:"email" validate:"omitempty,email"`
	IsExpired          bool   `json:"is_expired"`
	IsLocked           bool   `json:"is_locked"`
	IsPasswordExpired  bool   `json:"is_password_expired"`
	IsEnabled          bool   `json:"is_enabled"`
	IsPincodeActivated bool   `json:"is_pincode_activated"`
}

// GetUser resolves a user by uuid or email query parameter. Supplying both
// keys, or neither, is rejected by the policy.
func (h *UserHandler) GetUser(c echo.Context) error {
	var query usecase.GetUserQuery
	if raw := c.QueryParam("uuid"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "uuid is not a valid uuid")
		}
		query.UUID = &id
	}
	if email := c.QueryParam("email"); email != "" {
		query.Email = &email
	}

	user, err := h.uc.GetUser(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

// CreateUser registers a new user with the identity service.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.CreateUser(c.Request().Context(), &entity.User{Email: req.Email})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user, "User created successfully")
}

// UpdateUser updates an existing user, targeted by uuid path parameter.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	userUUID, err := pathUUID(c, "userUUID")
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.UpdateUser(c.Request().Context(), &entity.User{
		UUID:               userUUID,
		Email:              req.Email,
		IsExpired:          req.IsExpired,
		IsLocked:           req.IsLocked,
		IsPasswordExpired:  req.IsPasswordExpired,
		IsEnabled:          req.IsEnabled,
		IsPincodeActivated: req.IsPincodeActivated,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User updated successfully")
}
