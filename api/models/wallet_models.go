package models

import (
	"github.com/shopspring/decimal"
)

type AddMoneyParams struct {
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	BankAccountID string          `json:"bank_account_id" binding:"required,uuid"`
}

type SendMoneyParams struct {
	ReceiverPhone string          `json:"receiver_phone" binding:"required,e164"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Description   string          `json:"description"`
	PIN           string          `json:"pin" binding:"required,pin"`
}

type AddBankAccountParams struct {
	BankName          string `json:"bank_name" binding:"required"`
	AccountNumber     string `json:"account_number" binding:"required,min=6,max=20"`
	IfscCode          string `json:"ifsc_code" binding:"required"`
	AccountHolderName string `json:"account_holder_name" binding:"required"`
}

type GenerateQRParams struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

type PayQRParams struct {
	QRData string          `json:"qr_data" binding:"required"`
	Amount decimal.Decimal `json:"amount"`
	PIN    string          `json:"pin" binding:"required,pin"`
}

// ListResponse wraps a page of items with its pagination envelope. The
// concrete pagination type lives with the history service.
type ListResponse struct {
	Items      interface{} `json:"items"`
	Pagination interface{} `json:"pagination"`
}
