package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"portal/internal/infra/qrcode"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPinCodeHandler_PinCodeQR(t *testing.T) {
	handler := NewPinCodeHandler(nil, qrcode.NewService(256, "M"), slog.Default())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/pincode/123456/qr", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("pinCode")
	c.SetParamValues("123456")

	require.NoError(t, handler.PinCodeQR(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.True(t, rec.Body.Len() > 0)
}

func TestPinCodeHandler_PinCodeQR_MissingCode(t *testing.T) {
	handler := NewPinCodeHandler(nil, qrcode.NewService(256, "M"), slog.Default())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/pincode//qr", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.PinCodeQR(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
