package qrcode

import (
	"net/url"
	"strings"

	"familytree/config"
	"familytree/internal/domain/service"
	"familytree/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256
	profilePath = "/profile/"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// NewFromConfig creates the service from the qrcode section.
func NewFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "", "")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(level) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// ProfileURL returns the public profile URL of a person.
func (s *qrcodeService) ProfileURL(personID string) string {
	return s.baseURL + profilePath + url.PathEscape(personID)
}

// GenerateProfileQR generates a PNG QR code encoding the profile URL.
func (s *qrcodeService) GenerateProfileQR(personID string) ([]byte, error) {
	if personID == "" {
		return nil, errors.New("person id is required")
	}

	qrCode, err := qrcode.New(s.ProfileURL(personID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
