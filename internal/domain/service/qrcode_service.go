// Package service defines interfaces for external collaborators.
package service

// QRCodeService generates QR code images for payment references so the
// checkout screen can show a scannable M-Pesa style code.
type QRCodeService interface {
	// GeneratePaymentQR encodes the payment reference and returns PNG bytes.
	GeneratePaymentQR(reference string) ([]byte, error)

	// ParsePaymentQR decodes QR payload data and returns the payment reference.
	ParsePaymentQR(qrData string) (string, error)
}
