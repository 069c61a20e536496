package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"portal/internal/delivery/http/response"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VPNServerHandler holds dependencies for VPN server handlers.
type VPNServerHandler struct {
	uc     usecase.VPNServerUsecase
	logger *slog.Logger
}

// NewVPNServerHandler is the constructor for VPNServerHandler.
func NewVPNServerHandler(uc usecase.VPNServerUsecase, logger *slog.Logger) *VPNServerHandler {
	return &VPNServerHandler{
		uc:     uc,
		logger: logger,
	}
}

type serverRequest struct {
	TypeID            entity.VPNTypeID      `json:"type_id" validate:"required"`
	StatusID          entity.ServerStatusID `json:"status_id" validate:"required"`
	Bandwidth         int64                 `json:"bandwidth" validate:"gte=0"`
	Load              float64               `json:"load" validate:"gte=0,lte=1"`
	GeoPositionID     int64                 `json:"geo_position_id" validate:"required"`
	ConfigurationUUID *uuid.UUID            `json:"configuration_uuid"`
}

func (r *serverRequest) toEntity(c echo.Context) (*entity.VPNServer, error) {
	if err := c.Validate(r); err != nil {
		return nil, err
	}
	if !r.TypeID.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown type_id")
	}
	if !r.StatusID.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status_id")
	}

	return &entity.VPNServer{
		TypeID:            r.TypeID,
		StatusID:          r.StatusID,
		Bandwidth:         r.Bandwidth,
		Load:              r.Load,
		GeoPositionID:     r.GeoPositionID,
		ConfigurationUUID: r.ConfigurationUUID,
	}, nil
}

func pathTypeID(c echo.Context) (entity.VPNTypeID, error) {
	raw, err := strconv.ParseInt(c.Param("typeID"), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails("typeID must be an integer")
	}
	typeID := entity.VPNTypeID(raw)
	if !typeID.IsValid() {
		return 0, domainerrors.ErrValidationFailed.WithDetails("unknown vpn type")
	}

	return typeID, nil
}

func pathStatusID(c echo.Context) (entity.ServerStatusID, error) {
	raw, err := strconv.ParseInt(c.Param("statusID"), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails("statusID must be an integer")
	}
	statusID := entity.ServerStatusID(raw)
	if !statusID.IsValid() {
		return 0, domainerrors.ErrValidationFailed.WithDetails("unknown server status")
	}

	return statusID, nil
}

// CreateServer registers a new server with the VPN-config service.
func (h *VPNServerHandler) CreateServer(c echo.Context) error {
	var req serverRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid server input")
	}
	server, err := req.toEntity(c)
	if err != nil {
		return errors.WithStack(err)
	}

	created, err := h.uc.CreateVPNServer(c.Request().Context(), server)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, created, "Server created successfully")
}

// UpdateServer updates an existing server.
func (h *VPNServerHandler) UpdateServer(c echo.Context) error {
	serverUUID, err := pathUUID(c, "serverUUID")
	if err != nil {
		return errors.WithStack(err)
	}

	var req serverRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid server input")
	}
	server, err := req.toEntity(c)
	if err != nil {
		return errors.WithStack(err)
	}
	server.UUID = serverUUID

	updated, err := h.uc.UpdateVPNServer(c.Request().Context(), server)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updated, "Server updated successfully")
}

// RandomServer selects one server uuid, optionally narrowed to a type or a
// status. Supplying both filters is rejected by the policy.
func (h *VPNServerHandler) RandomServer(c echo.Context) error {
	var filter usecase.ServerFilter
	if raw := c.QueryParam("type_id"); raw != "" {
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "type_id must be an integer")
		}
		typeID := entity.VPNTypeID(value)
		if !typeID.IsValid() {
			return response.BadRequest(c, "INVALID_INPUT", "unknown vpn type")
		}
		filter.TypeID = &typeID
	}
	if raw := c.QueryParam("status_id"); raw != "" {
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "status_id must be an integer")
		}
		statusID := entity.ServerStatusID(value)
		if !statusID.IsValid() {
			return response.BadRequest(c, "INVALID_INPUT", "unknown server status")
		}
		filter.StatusID = &statusID
	}

	serverUUID, err := h.uc.GetRandomVPNServer(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"uuid": serverUUID.String()}, "")
}

// NearestServer returns the full view geographically closest to the caller.
func (h *VPNServerHandler) NearestServer(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		return response.BadRequest(c, "INVALID_INPUT", "lat must be a latitude in degrees")
	}
	lon, err := strconv.ParseFloat(c.QueryParam("lon"), 64)
	if err != nil || lon < -180 || lon > 180 {
		return response.BadRequest(c, "INVALID_INPUT", "lon must be a longitude in degrees")
	}

	server, err := h.uc.GetNearestVPNServer(c.Request().Context(), lat, lon)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, server, "")
}

// ListServers retrieves full views, geo embedded where available.
func (h *VPNServerHandler) ListServers(c echo.Context) error {
	page, err := parsePage(c)
	if err != nil {
		return errors.WithStack(err)
	}

	servers, err := h.uc.GetVPNServerList(c.Request().Context(), page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, servers, "")
}

// ListServersByType retrieves full views of one protocol type.
func (h *VPNServerHandler) ListServersByType(c echo.Context) error {
	typeID, err := pathTypeID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	page, err := parsePage(c)
	if err != nil {
		return errors.WithStack(err)
	}

	servers, err := h.uc.GetVPNServerListByType(c.Request().Context(), typeID, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, servers, "")
}

// ListServersByStatus retrieves full views in one operational status.
func (h *VPNServerHandler) ListServersByStatus(c echo.Context) error {
	statusID, err := pathStatusID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	page, err := parsePage(c)
	if err != nil {
		return errors.WithStack(err)
	}

	servers, err := h.uc.GetVPNServerListByStatus(c.Request().Context(), statusID, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, servers, "")
}

// ListConditions retrieves condition views; no geo enrichment happens.
func (h *VPNServerHandler) ListConditions(c echo.Context) error {
	page, err := parsePage(c)
	if err != nil {
		return errors.WithStack(err)
	}

	conditions, err := h.uc.GetVPNServerConditionList(c.Request().Context(), page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, conditions, "")
}

// ListConditionsByType retrieves condition views of one protocol type.
func (h *VPNServerHandler) ListConditionsByType(c echo.Context) error {
	typeID, err := pathTypeID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	page, err := parsePage(c)
	if err != nil {
		return errors.WithStack(err)
	}

	conditions, err := h.uc.GetVPNServerConditionListByType(c.Request().Context(), typeID, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, conditions, "")
}

// ListConditionsByStatus retrieves condition views in one status.
func (h *VPNServerHandler) ListConditionsByStatus(c echo.Context) error {
	statusID, err := pathStatusID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	page, err := parsePage(c)
	if err != nil {
		return errors.WithStack(err)
	}

	conditions, err := h.uc.GetVPNServerConditionListByStatus(c.Request().Context(), statusID, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, conditions, "")
}

// GetServer retrieves one full view by server uuid.
func (h *VPNServerHandler) GetServer(c echo.Context) error {
	serverUUID, err := pathUUID(c, "serverUUID")
	if err != nil {
		return errors.WithStack(err)
	}

	server, err := h.uc.GetVPNServer(c.Request().Context(), serverUUID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, server, "")
}

// GetServerCondition retrieves one condition view by server uuid.
func (h *VPNServerHandler) GetServerCondition(c echo.Context) error {
	serverUUID, err := pathUUID(c, "serverUUID")
	if err != nil {
		return errors.WithStack(err)
	}

	condition, err := h.uc.GetVPNServerCondition(c.Request().Context(), serverUUID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, condition, "")
}

// GetServerConfiguration retrieves the rendered configuration of a server,
// personalized when a user_uuid query parameter is present.
func (h *VPNServerHandler) GetServerConfiguration(c echo.Context) error {
	serverUUID, err := pathUUID(c, "serverUUID")
	if err != nil {
		return errors.WithStack(err)
	}

	var userUUID *uuid.UUID
	if raw := c.QueryParam("user_uuid"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "user_uuid is not a valid uuid")
		}
		userUUID = &id
	}

	configuration, err := h.uc.GetVPNServerConfiguration(c.Request().Context(), serverUUID, userUUID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, configuration, "")
}

// ListTypes reads the protocol type catalog.
func (h *VPNServerHandler) ListTypes(c echo.Context) error {
	types, err := h.uc.GetVPNTypes(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, types, "")
}

// ListStatuses reads the server status catalog.
func (h *VPNServerHandler) ListStatuses(c echo.Context) error {
	statuses, err := h.uc.GetVPNServerStatuses(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, statuses, "")
}
