package qrpay

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	db "github.com/PayRipple/PayRipple-Backend/db/sqlc"
	user_service "github.com/PayRipple/PayRipple-Backend/services/user"
	"github.com/shopspring/decimal"
	qrcode "github.com/skip2/go-qrcode"
)

const (
	payloadTypePaymentRequest = "payment_request"
	upiDomain                 = "payripple"

	qrImageSize = 256
)

var (
	ErrInvalidQRData = fmt.Errorf("invalid QR code data")
	ErrInvalidQRType = fmt.Errorf("invalid QR code type")
)

// PaymentPayload is the JSON document encoded into a payment QR code.
type PaymentPayload struct {
	Type        string          `json:"type"`
	UPIID       string          `json:"upiId"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Merchant    string          `json:"merchant"`
	Timestamp   time.Time       `json:"timestamp"`
}

// ReceiverPhone extracts the phone number from the payload's upi-style id.
func (p PaymentPayload) ReceiverPhone() string {
	return strings.SplitN(p.UPIID, "@", 2)[0]
}

// BuildPayload constructs a payment request for the given user. A zero
// amount means the payer chooses the amount at scan time.
func BuildPayload(user db.User, amount decimal.Decimal, description string) PaymentPayload {
	if description == "" {
		description = "Payment Request"
	}
	return PaymentPayload{
		Type:        payloadTypePaymentRequest,
		UPIID:       fmt.Sprintf("%s@%s", user.PhoneNumber, upiDomain),
		Amount:      amount,
		Description: description,
		Merchant:    user_service.DisplayName(user),
		Timestamp:   time.Now().UTC(),
	}
}

// EncodeQR renders the payload as a base64 PNG data URL.
func EncodeQR(payload PaymentPayload) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	png, err := qrcode.Encode(string(data), qrcode.Medium, qrImageSize)
	if err != nil {
		return "", fmt.Errorf("encode qr: %w", err)
	}

	return fmt.Sprintf("data:image/png;base64,%s", base64.StdEncoding.EncodeToString(png)), nil
}

// ParsePayload decodes and validates scanned QR data.
func ParsePayload(raw string) (PaymentPayload, error) {
	var payload PaymentPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return PaymentPayload{}, ErrInvalidQRData
	}
	if payload.Type != payloadTypePaymentRequest {
		return PaymentPayload{}, ErrInvalidQRType
	}
	if payload.ReceiverPhone() == "" {
		return PaymentPayload{}, ErrInvalidQRData
	}
	return payload, nil
}
