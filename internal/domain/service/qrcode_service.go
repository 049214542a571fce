package service

// QRCodeService generates and parses the shop's QR codes.
type QRCodeService interface {
	// GenerateChatQR encodes a WhatsApp click-to-chat link for the shop number,
	// prefilled with the greeting text.
	GenerateChatQR(phoneNumber, greeting string) ([]byte, error)

	// GenerateOrderQR encodes an order reference printed on receipts.
	GenerateOrderQR(orderID string) ([]byte, error)

	// ParseOrderQR extracts the order id from scanned receipt QR data.
	ParseOrderQR(qrData string) (string, error)
}
