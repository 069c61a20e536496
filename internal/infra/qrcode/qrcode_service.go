// Package qrcode renders pairing pin codes as QR images for TV and console
// clients.
package qrcode

import (
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

// Service renders pin codes into PNG QR images.
type Service struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewService creates a QR renderer. Unknown correction levels fall back to
// medium.
func NewService(size int, errorCorrectionLevel string) *Service {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &Service{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// RenderPinCode encodes the pin code into a PNG QR image.
func (s *Service) RenderPinCode(pinCode string) ([]byte, error) {
	if pinCode == "" {
		return nil, errors.New("pin code is empty")
	}

	code, err := qrcode.New(pinCode, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	png, err := code.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render PNG")
	}

	return png, nil
}
