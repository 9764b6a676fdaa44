package qrcode

import (
	"encoding/json"
	"testing"

	"vradmin/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPNG(t *testing.T, data []byte) {
	t.Helper()

	require.GreaterOrEqual(t, len(data), 4)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, data[:4])
}

func TestNewQRCodeService(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "h"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			png, err := svc.GenerateActivationQR(1, "CODE")
			require.NoError(t, err)
			assertPNG(t, png)
		})
	}
}

func TestGenerateActivationQR_EmptyCode(t *testing.T) {
	t.Parallel()

	_, err := NewQRCodeService(256, "M").GenerateActivationQR(1, "  ")
	require.Error(t, err)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	svc := NewFromConfig(&config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H"}})
	png, err := svc.GenerateActivationQR(3, "XYZ")
	require.NoError(t, err)
	assertPNG(t, png)

	png, err = NewFromConfig(&config.Config{}).GenerateActivationQR(3, "XYZ")
	require.NoError(t, err)
	assertPNG(t, png)
}

func TestParseActivationQR(t *testing.T) {
	t.Parallel()

	svc := NewQRCodeService(256, "M")

	valid, err := json.Marshal(ActivationData{PurchaseID: 9, ConfirmationCode: "ABC-123", Type: activationType})
	require.NoError(t, err)

	tests := []struct {
		name    string
		data    string
		want    string
		wantErr bool
	}{
		{name: "valid", data: string(valid), want: "ABC-123"},
		{name: "wrong type", data: `{"purchase_id":9,"code":"ABC","type":"subscription"}`, wantErr: true},
		{name: "missing code", data: `{"purchase_id":9,"type":"activation"}`, wantErr: true},
		{name: "not json", data: "ABC-123", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := svc.ParseActivationQR(tt.data)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
