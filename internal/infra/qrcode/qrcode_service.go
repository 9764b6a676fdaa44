// Package qrcode renders activation QR codes for purchases.
package qrcode

import (
	"encoding/json"
	"strings"

	"vradmin/config"
	"vradmin/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	activationType = "activation"
	defaultSize    = 256
)

var recoveryLevels = map[string]qrcode.RecoveryLevel{
	"L": qrcode.Low,
	"M": qrcode.Medium,
	"Q": qrcode.High,
	"H": qrcode.Highest,
}

// ActivationData is the payload encoded in an activation QR code.
type ActivationData struct {
	PurchaseID       int64  `json:"purchase_id"`
	ConfirmationCode string `json:"code"`
	Type             string `json:"type"`
}

type activationRenderer struct {
	size  int
	level qrcode.RecoveryLevel
}

// NewQRCodeService returns a renderer producing PNGs of the given pixel size.
// Unknown correction levels fall back to medium.
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	level, ok := recoveryLevels[strings.ToUpper(strings.TrimSpace(errorCorrectionLevel))]
	if !ok {
		level = qrcode.Medium
	}
	if size <= 0 {
		size = defaultSize
	}

	return &activationRenderer{size: size, level: level}
}

// NewFromConfig creates the QR code service from configuration.
func NewFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func (r *activationRenderer) GenerateActivationQR(purchaseID int64, confirmationCode string) ([]byte, error) {
	if strings.TrimSpace(confirmationCode) == "" {
		return nil, errors.New("confirmation code is empty")
	}

	payload, err := json.Marshal(ActivationData{
		PurchaseID:       purchaseID,
		ConfirmationCode: confirmationCode,
		Type:             activationType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "encode activation payload")
	}

	png, err := qrcode.Encode(string(payload), r.level, r.size)
	if err != nil {
		return nil, errors.Wrapf(err, "render activation QR for purchase %d", purchaseID)
	}

	return png, nil
}

func (r *activationRenderer) ParseActivationQR(qrData string) (string, error) {
	var data ActivationData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", errors.Wrap(err, "decode activation payload")
	}

	switch {
	case data.Type != activationType:
		return "", errors.Errorf("unexpected QR payload type %q", data.Type)
	case data.ConfirmationCode == "":
		return "", errors.New("QR code carries no confirmation code")
	}

	return data.ConfirmationCode, nil
}
