package handler

import (
	"log/slog"
	"net/http"

	"portal/internal/delivery/http/response"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DeviceHandler holds dependencies for device handlers.
type DeviceHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler.
func NewDeviceHandler(uc usecase.UserUsecase, logger *slog.Logger) *DeviceHandler {
	return &DeviceHandler{
		uc:     uc,
		logger: logger,
	}
}

type deviceRequest struct {
	PlatformID entity.PlatformID `json:"platform_id" validate:"required"`
	VPNTypeID  entity.VPNTypeID  `json:"vpn_type_id" validate:"required"`
	DeviceID   string            `json:"device_id" validate:"required"`
	DeviceIP   string            `json:"device_ip" validate:"omitempty,ip"`
	VirtualIP  string            `json:"virtual_ip" validate:"omitempty,ip"`
}

func (r *deviceRequest) toInput(c echo.Context) (*usecase.DeviceInput, error) {
	if err := c.Validate(r); err != nil {
		return nil, err
	}
	if !r.PlatformID.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown platform_id")
	}
	if !r.VPNTypeID.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown vpn_type_id")
	}

	return &usecase.DeviceInput{
		PlatformID: r.PlatformID,
		VPNTypeID:  r.VPNTypeID,
		DeviceID:   r.DeviceID,
		DeviceIP:   r.DeviceIP,
		VirtualIP:  r.VirtualIP,
	}, nil
}

// CreateDevice registers a device for a user. The device token is generated
// by the policy, never taken from the request.
func (h *DeviceHandler) CreateDevice(c echo.Context) error {
	userUUID, err := pathUUID(c, "userUUID")
	if err != nil {
		return errors.WithStack(err)
	}

	var req deviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}
	input, err := req.toInput(c)
	if err != nil {
		return errors.WithStack(err)
	}

	device, err := h.uc.CreateUserDevice(c.Request().Context(), userUUID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, device, "Device registered successfully")
}

// UpdateDevice mutates a device of a user.
func (h *DeviceHandler) UpdateDevice(c echo.Context) error {
	userUUID, err := pathUUID(c, "userUUID")
	if err != nil {
		return errors.WithStack(err)
	}
	deviceUUID, err := pathUUID(c, "deviceUUID")
	if err != nil {
		return errors.WithStack(err)
	}

	var req deviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}
	input, err := req.toInput(c)
	if err != nil {
		return errors.WithStack(err)
	}

	device, err := h.uc.UpdateUserDevice(c.Request().Context(), userUUID, deviceUUID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, device, "Device updated successfully")
}

// GetDevice retrieves one device of a user.
func (h *DeviceHandler) GetDevice(c echo.Context) error {
	userUUID, err := pathUUID(c, "userUUID")
	if err != nil {
		return errors.WithStack(err)
	}
	deviceUUID, err := pathUUID(c, "deviceUUID")
	if err != nil {
		return errors.WithStack(err)
	}

	device, err := h.uc.GetUserDeviceByUUID(c.Request().Context(), userUUID, deviceUUID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, device, "")
}

// ListDevices retrieves all devices of a user.
func (h *DeviceHandler) ListDevices(c echo.Context) error {
	userUUID, err := pathUUID(c, "userUUID")
	if err != nil {
		return errors.WithStack(err)
	}

	devices, err := h.uc.GetUserDevices(c.Request().Context(), userUUID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, devices, "")
}

// DeleteDevice physically removes a device of a user.
func (h *DeviceHandler) DeleteDevice(c echo.Context) error {
	userUUID, err := pathUUID(c, "userUUID")
	if err != nil {
		return errors.WithStack(err)
	}
	deviceUUID, err := pathUUID(c, "deviceUUID")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteUserDevice(c.Request().Context(), userUUID, deviceUUID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Device deleted successfully")
}
