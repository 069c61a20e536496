package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"portal/internal/delivery/http/response"
	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BillingHandler receives payment provider callbacks.
type BillingHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewBillingHandler is the constructor for BillingHandler.
func NewBillingHandler(uc usecase.UserUsecase, logger *slog.Logger) *BillingHandler {
	return &BillingHandler{
		uc:     uc,
		logger: logger,
	}
}

// PaymentNotification records a confirmed provider payment against the order
// identified by its code. The provider payload is forwarded opaque; the
// gateway never parses provider formats.
func (h *BillingHandler) PaymentNotification(c echo.Context) error {
	orderCode := c.Param("orderCode")
	if orderCode == "" {
		return response.BadRequest(c, "INVALID_INPUT", "order code is required")
	}

	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "unreadable request body")
	}
	if len(payload) == 0 || !json.Valid(payload) {
		return response.BadRequest(c, "INVALID_INPUT", "payload must be a JSON document")
	}

	payment, err := h.uc.ProcessPaymentNotification(c.Request().Context(), orderCode, json.RawMessage(payload))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, payment, "Payment recorded successfully")
}
