package service

// QRCodeService renders pickup codes as scannable images.
type QRCodeService interface {
	// GeneratePickupQR encodes the pickup code into a PNG image.
	GeneratePickupQR(code string, size int) ([]byte, error)
}
