package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/upstream"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func callHandler(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/servers", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewErrorMiddleware(slog.Default())
	m.HandleHTTPError(err, c)

	return rec
}

func TestHandleHTTPError_UpstreamErrorKeepsCodeAndList(t *testing.T) {
	err := domainerrors.NewUpstreamError(http.StatusNotFound, []upstream.ErrorItem{
		{Code: "USER_NOT_FOUND", Message: "user does not exist"},
		{Code: "HINT", Message: "check the uuid"},
	})

	rec := callHandler(t, errors.WithStack(err))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"success":false`)
	assert.Contains(t, body, "USER_NOT_FOUND")
	assert.Contains(t, body, "check the uuid")
}

func TestHandleHTTPError_UpstreamErrorBehindStepMarker(t *testing.T) {
	inner := domainerrors.NewUpstreamError(http.StatusConflict, []upstream.ErrorItem{
		{Code: "DEVICE_EXISTS", Message: "device already bound"},
	})
	err := domainerrors.NewStepError("bind-device", inner)

	rec := callHandler(t, err)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "DEVICE_EXISTS")
}

func TestHandleHTTPError_AppError(t *testing.T) {
	rec := callHandler(t, domainerrors.ErrServerNotAvailable)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "SERVER_NOT_AVAILABLE")
}

func TestHandleHTTPError_UnknownErrorIsInternal(t *testing.T) {
	rec := callHandler(t, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
}
