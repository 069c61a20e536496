package qrcode

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RenderPinCode(t *testing.T) {
	service := NewService(256, "M")

	png, err := service.RenderPinCode("123456")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")), "output should be a PNG image")
}

func TestService_RenderPinCode_Empty(t *testing.T) {
	service := NewService(256, "M")

	_, err := service.RenderPinCode("")
	assert.Error(t, err)
}

func TestNewService_UnknownLevelFallsBack(t *testing.T) {
	service := NewService(128, "X")

	png, err := service.RenderPinCode("654321")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
