package models

import (
	"time"

	db "github.com/PayRipple/PayRipple-Backend/db/sqlc"
	"github.com/PayRipple/PayRipple-Backend/services/transfer"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransferDetail struct {
	ID           uuid.UUID       `json:"id"`
	ReferenceID  string          `json:"reference_id"`
	Amount       decimal.Decimal `json:"amount"`
	ReceiverName string          `json:"receiver_name"`
	Timestamp    time.Time       `json:"timestamp"`
}

// TransferResponse pairs the completed transfer with the sender's balance
// as it committed.
type TransferResponse struct {
	Transfer   TransferDetail  `json:"transfer"`
	NewBalance decimal.Decimal `json:"new_balance"`
}

// TransferRecord is a committed transfer looked up by its reference.
type TransferRecord struct {
	ID          uuid.UUID       `json:"id"`
	ReferenceID string          `json:"reference_id"`
	SenderID    ID              `json:"sender_id"`
	ReceiverID  ID              `json:"receiver_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

func ToTransferRecord(row db.P2pTransfer) TransferRecord {
	return TransferRecord{
		ID:          row.ID,
		ReferenceID: row.ReferenceID,
		SenderID:    ID(row.SenderID),
		ReceiverID:  ID(row.ReceiverID),
		Amount:      row.Amount,
		Description: row.Description.String,
		Status:      row.Status,
		CreatedAt:   row.CreatedAt,
	}
}

func ToTransferResponse(receipt *transfer.TransferReceipt) TransferResponse {
	return TransferResponse{
		Transfer: TransferDetail{
			ID:           receipt.TransferID,
			ReferenceID:  receipt.ReferenceID,
			Amount:       receipt.Amount,
			ReceiverName: receipt.ReceiverName,
			Timestamp:    receipt.Timestamp,
		},
		NewBalance: receipt.NewBalance,
	}
}
