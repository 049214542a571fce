package qrcode

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"orderbot/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const (
	orderQRType     = "order"
	defaultChatBase = "https://wa.me/"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	chatBaseURL          string
}

// OrderQRData is the payload printed on receipts
type OrderQRData struct {
	OrderID string `json:"order_id"`
	Type    string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance. baseURL overrides
// the click-to-chat host.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if baseURL == "" {
		baseURL = defaultChatBase
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		chatBaseURL:          baseURL,
	}
}

// ChatLink builds the click-to-chat URL for a phone number.
func ChatLink(baseURL, phoneNumber, greeting string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}

		return -1
	}, phoneNumber)

	link := baseURL + digits
	if greeting != "" {
		link += "?text=" + url.QueryEscape(greeting)
	}

	return link
}

// GenerateChatQR encodes a link that opens a chat with the shop
func (s *qrcodeService) GenerateChatQR(phoneNumber, greeting string) ([]byte, error) {
	if strings.TrimSpace(phoneNumber) == "" {
		return nil, fmt.Errorf("shop phone number is not configured")
	}

	return s.encode(ChatLink(s.chatBaseURL, phoneNumber, greeting))
}

// GenerateOrderQR encodes an order reference for receipts
func (s *qrcodeService) GenerateOrderQR(orderID string) ([]byte, error) {
	jsonData, err := json.Marshal(OrderQRData{OrderID: orderID, Type: orderQRType})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	return s.encode(string(jsonData))
}

func (s *qrcodeService) encode(content string) ([]byte, error) {
	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseOrderQR parses receipt QR data and returns the order id
func (s *qrcodeService) ParseOrderQR(qrData string) (string, error) {
	var data OrderQRData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != orderQRType {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.OrderID == "" {
		return "", fmt.Errorf("QR code has no order id")
	}

	return data.OrderID, nil
}
