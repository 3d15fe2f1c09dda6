package service

// QRCodeService defines the interface for order tracking QR codes
type QRCodeService interface {
	// GenerateOrderQR renders a PNG QR code that encodes the order's tracking URL
	GenerateOrderQR(orderID uint64) ([]byte, error)
}
