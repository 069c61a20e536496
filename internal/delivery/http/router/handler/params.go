package handler

import (
	"strconv"

	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/upstream"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// pathUUID parses a uuid path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails(name + " is not a valid uuid")
	}

	return id, nil
}

// parsePage reads the limit/offset query parameters. Both absent means no
// pagination: the remote service's own default applies.
func parsePage(c echo.Context) (*upstream.Page, error) {
	limitRaw := c.QueryParam("limit")
	offsetRaw := c.QueryParam("offset")
	if limitRaw == "" && offsetRaw == "" {
		return nil, nil
	}

	page := &upstream.Page{}
	if limitRaw != "" {
		limit, err := strconv.Atoi(limitRaw)
		if err != nil || limit < 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("limit must be a non-negative integer")
		}
		page.Limit = limit
	}
	if offsetRaw != "" {
		offset, err := strconv.Atoi(offsetRaw)
		if err != nil || offset < 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("offset must be a non-negative integer")
		}
		page.Offset = offset
	}

	return page, nil
}
