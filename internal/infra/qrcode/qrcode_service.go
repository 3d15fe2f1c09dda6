package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/calvin-79/food-delivery-tracking/config"
	"github.com/calvin-79/food-delivery-tracking/internal/domain/service"
	"github.com/calvin-79/food-delivery-tracking/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize  = 256
	trackingType = "order_tracking"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	OrderID  uint64 `json:"order_id"`
	Type     string `json:"type"`
	Tracking string `json:"tracking,omitempty"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
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

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// NewFromConfig builds the service from the qrcode config section.
func NewFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M", "")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// GenerateOrderQR generates a QR code pointing at the order's tracking resource
func (s *qrcodeService) GenerateOrderQR(orderID uint64) ([]byte, error) {
	jsonData, err := s.payload(orderID)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// payload is the JSON text encoded in the QR image.
func (s *qrcodeService) payload(orderID uint64) ([]byte, error) {
	data := QRCodeData{
		OrderID: orderID,
		Type:    trackingType,
	}
	if s.baseURL != "" {
		data.Tracking = fmt.Sprintf("%s/api/v1/orders/%d", s.baseURL, orderID)
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	return jsonData, nil
}
