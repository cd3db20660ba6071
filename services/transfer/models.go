package transfer

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sqlc-dev/pqtype"
)

// Transaction type and status values persisted in the ledger.
const (
	TypeCredit = "credit"
	TypeDebit  = "debit"

	StatusSuccess = "success"

	TransferCompleted = "completed"
)

type SendMoneyRequest struct {
	ReceiverPhone string
	Amount        decimal.Decimal
	Description   string
	PIN           string
}

// TransferReceipt is the caller-facing result of a completed transfer. The
// new balance is the value the debit committed with, not a later re-read.
type TransferReceipt struct {
	TransferID   uuid.UUID       `json:"id"`
	ReferenceID  string          `json:"reference_id"`
	Amount       decimal.Decimal `json:"amount"`
	ReceiverName string          `json:"receiver_name"`
	Timestamp    time.Time       `json:"timestamp"`
	NewBalance   decimal.Decimal `json:"new_balance"`
}

// TransactionMetadata correlates a ledger entry with its counterparty and
// the owning transfer or bank reference.
type TransactionMetadata struct {
	SenderPhone   string `json:"sender_phone,omitempty"`
	ReceiverPhone string `json:"receiver_phone,omitempty"`
	BankAccount   string `json:"bank_account,omitempty"`
	TransferRef   string `json:"p2p_transfer_id,omitempty"`
}

func (m TransactionMetadata) Raw() pqtype.NullRawMessage {
	raw, err := json.Marshal(m)
	if err != nil {
		return pqtype.NullRawMessage{}
	}
	return pqtype.NullRawMessage{RawMessage: raw, Valid: true}
}
