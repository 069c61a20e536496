package handler

import (
	"log/slog"
	"net/http"

	"portal/internal/delivery/http/response"
	"portal/internal/infra/qrcode"
	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PinCodeHandler serves the TV-app pairing flow: pin code resolution, the
// pin-for-device exchange and QR rendering.
type PinCodeHandler struct {
	uc     usecase.UserUsecase
	qr     *qrcode.Service
	logger *slog.Logger
}

// NewPinCodeHandler is the constructor for PinCodeHandler.
func NewPinCodeHandler(uc usecase.UserUsecase, qr *qrcode.Service, logger *slog.Logger) *PinCodeHandler {
	return &PinCodeHandler{
		uc:     uc,
		qr:     qr,
		logger: logger,
	}
}

// ResolvePinCode resolves an open pairing pin code to the owning user's uuid.
func (h *PinCodeHandler) ResolvePinCode(c echo.Context) error {
	pinCode := c.Param("pinCode")
	if pinCode == "" {
		return response.BadRequest(c, "INVALID_INPUT", "pin code is required")
	}

	userUUID, err := h.uc.GetUserUUIDByPinCode(c.Request().Context(), pinCode)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"user_uuid": userUUID.String()}, "")
}

// ExchangePinCode resolves a pin code and binds the supplied device to the
// resolved user. The two remote steps are not atomic; a bind failure after a
// successful resolve surfaces with the failed step named and nothing rolled
// back.
func (h *PinCodeHandler) ExchangePinCode(c echo.Context) error {
	pinCode := c.Param("pinCode")
	if pinCode == "" {
		return response.BadRequest(c, "INVALID_INPUT", "pin code is required")
	}

	var req deviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}
	input, err := req.toInput(c)
	if err != nil {
		return errors.WithStack(err)
	}

	device, err := h.uc.ExchangePinCode(c.Request().Context(), pinCode, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, device, "Pin code exchanged successfully")
}

// PinCodeQR renders a pin code as a PNG QR image for pairing screens. Pure
// rendering, no upstream call.
func (h *PinCodeHandler) PinCodeQR(c echo.Context) error {
	pinCode := c.Param("pinCode")
	if pinCode == "" {
		return response.BadRequest(c, "INVALID_INPUT", "pin code is required")
	}

	png, err := h.qr.RenderPinCode(pinCode)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
