package handler

import (
	"log/slog"
	"net/http"

	"portal/internal/delivery/http/response"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SubscriptionHandler holds dependencies for subscription handlers.
type SubscriptionHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler.
func NewSubscriptionHandler(uc usecase.UserUsecase, logger *slog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		uc:     uc,
		logger: logger,
	}
}

type createSubscriptionRequest struct {
	SubscriptionID int64     `json:"subscription_id" validate:"required"`
	OrderUUID      uuid.UUID `json:"order_uuid" validate:"required"`
}

type updateSubscriptionRequest struct {
	SubscriptionID int64     `json:"subscription_id" validate:"required"`
	OrderUUID      uuid.UUID `json:"order_uuid" validate:"required"`
	ExpireDate     string    `json:"expire_date"`
	ModifyDate     string    `json:"modify_date"`
	ModifyReason   string    `json:"modify_reason"`
}

// CreateSubscription opens a subscription for a user.
func (h *SubscriptionHandler) CreateSubscription(c echo.Context) error {
	userUUID, err := pathUUID(c, "userUUID")
	if err != nil {
		return errors.WithStack(err)
	}

	var req createSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	sub, err := h.uc.CreateUserSubscription(c.Request().Context(), usecase.CreateSubscriptionInput{
		UserUUID:       userUUID,
		SubscriptionID: req.SubscriptionID,
		OrderUUID:      req.OrderUUID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, sub, "Subscription created successfully")
}

// UpdateSubscription mutates a subscription of a user.
func (h *SubscriptionHandler) UpdateSubscription(c echo.Context) error {
	userUUID, err := pathUUID(c, "userUUID")
	if err != nil {
		return errors.WithStack(err)
	}
	subUUID, err := pathUUID(c, "subscriptionUUID")
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	sub, err := h.uc.UpdateUserSubscription(c.Request().Context(), usecase.UpdateSubscriptionInput{
		UserUUID:         userUUID,
		SubscriptionUUID: subUUID,
		SubscriptionID:   req.SubscriptionID,
		OrderUUID:        req.OrderUUID,
		ExpireDate:       req.ExpireDate,
		ModifyDate:       req.ModifyDate,
		ModifyReason:     req.ModifyReason,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sub, "Subscription updated successfully")
}

// GetSubscription retrieves one subscription with its expiry recomputed.
func (h *SubscriptionHandler) GetSubscription(c echo.Context) error {
	userUUID, err := pathUUID(c, "userUUID")
	if err != nil {
		return errors.WithStack(err)
	}
	subUUID, err := pathUUID(c, "subscriptionUUID")
	if err != nil {
		return errors.WithStack(err)
	}

	sub, err := h.uc.GetUserSubscriptionByUUID(c.Request().Context(), userUUID, subUUID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sub, "")
}

// ListSubscriptions retrieves all subscriptions of a user.
func (h *SubscriptionHandler) ListSubscriptions(c echo.Context) error {
	userUUID, err := pathUUID(c, "userUUID")
	if err != nil {
		return errors.WithStack(err)
	}

	subs, err := h.uc.GetUserSubscriptions(c.Request().Context(), userUUID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, subs, "")
}
