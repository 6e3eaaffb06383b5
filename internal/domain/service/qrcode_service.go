package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateProfileQR generates a PNG QR code linking to the public profile of a person
	GenerateProfileQR(personID string) ([]byte, error)

	// ProfileURL returns the public profile URL encoded in the QR code
	ProfileURL(personID string) string
}
