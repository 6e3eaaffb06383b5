package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"familytree/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		level string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"medium", qrcode.Medium},
		{"Q", qrcode.High},
		{"highest", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.level))
		})
	}
}

func TestQRCodeService_ProfileURL(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://family.example.com/")

	assert.Equal(t, "https://family.example.com/profile/PAT-240615-001", service.ProfileURL("PAT-240615-001"))
}

func TestQRCodeService_GenerateProfileQR(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M", "https://family.example.com")

			qrBytes, err := service.GenerateProfileQR("PAT-240615-001")
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(qrBytes))
			require.NoError(t, err)
			assert.Equal(t, tt.size, img.Bounds().Dx())
		})
	}
}

func TestQRCodeService_GenerateProfileQR_RequiresID(t *testing.T) {
	service := NewFromConfig(&config.Config{})

	_, err := service.GenerateProfileQR("")
	assert.Error(t, err)
}
