package service

// QRCodeService renders share codes for public storefront links
type QRCodeService interface {
	// GenerateLinkQR encodes a URL as a PNG QR code
	GenerateLinkQR(link string) ([]byte, error)
}
