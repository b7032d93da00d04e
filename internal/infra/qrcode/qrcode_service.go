package qrcode

import (
	"fmt"

	"mazza/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(errorCorrectionLevel string) service.QRCodeService {
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

	return &qrcodeService{
		errorCorrectionLevel: level,
	}
}

// GeneratePickupQR encodes the pickup code into a PNG image. The payload is
// the bare code string so any scanner app shows something a clerk can type.
func (s *qrcodeService) GeneratePickupQR(code string, size int) ([]byte, error) {
	if code == "" {
		return nil, fmt.Errorf("pickup code must not be empty")
	}

	qrCode, err := qrcode.New(code, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
