package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPNG(t *testing.T, data []byte) {
	t.Helper()
	require.GreaterOrEqual(t, len(data), 4)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, data[:4])
}

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
			assert.NotNil(t, NewQRCodeService(256, tt.errorCorrectionLevel, ""))
		})
	}
}

func TestChatLink(t *testing.T) {
	tests := []struct {
		name     string
		phone    string
		greeting string
		want     string
	}{
		{"strips formatting", "+1 (555) 123-4567", "", "https://wa.me/15551234567"},
		{"escapes greeting", "15551234567", "hi there", "https://wa.me/15551234567?text=hi+there"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ChatLink(defaultChatBase, tt.phone, tt.greeting))
		})
	}
}

func TestQRCodeService_GenerateChatQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	qrBytes, err := service.GenerateChatQR("+15551234567", "menu")
	require.NoError(t, err)
	assertPNG(t, qrBytes)
}

func TestQRCodeService_GenerateChatQR_MissingPhone(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	_, err := service.GenerateChatQR("  ", "menu")
	assert.Error(t, err)
}

func TestQRCodeService_GenerateOrderQR_DifferentSizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		service := NewQRCodeService(size, "M", "")

		qrBytes, err := service.GenerateOrderQR("TP1700000000000")
		require.NoError(t, err)
		assertPNG(t, qrBytes)
	}
}

func TestQRCodeService_ParseOrderQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "")
	jsonData, err := json.Marshal(OrderQRData{OrderID: "TP1700000000000", Type: orderQRType})
	require.NoError(t, err)

	orderID, err := service.ParseOrderQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, "TP1700000000000", orderID)
}

func TestQRCodeService_ParseOrderQR_Errors(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"invalid json", "invalid json", "failed to unmarshal QR code data"},
		{"wrong type", `{"order_id":"TP1","type":"subscription"}`, "invalid QR code type"},
		{"missing order id", `{"type":"order"}`, "no order id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ParseOrderQR(tt.data)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
