package qrcode

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 0x50, 0x4e, 0x47}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "M"},
		{"High error correction", "Q"},
		{"Highest error correction", "H"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.errorCorrectionLevel)
			require.NotNil(t, svc)

			png, err := svc.GeneratePickupQR("XY78WQ2K", 256)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(png, pngHeader), "output should be a PNG")
		})
	}
}

func TestGeneratePickupQR_EmptyCode(t *testing.T) {
	svc := NewQRCodeService("M")

	png, err := svc.GeneratePickupQR("", 256)
	require.Error(t, err)
	assert.Nil(t, png)
}
