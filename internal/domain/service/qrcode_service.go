package service

// QRCodeService renders and reads the QR codes customers scan to activate a purchase.
type QRCodeService interface {
	GenerateActivationQR(purchaseID int64, confirmationCode string) ([]byte, error)
	// ParseActivationQR returns the confirmation code carried by scanned QR data.
	ParseActivationQR(qrData string) (string, error)
}
