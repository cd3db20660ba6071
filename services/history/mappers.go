package history

import (
	db "github.com/PayRipple/PayRipple-Backend/db/sqlc"
)

func toTransactionItem(row db.Transaction) TransactionItem {
	return TransactionItem{
		ID:          row.ID,
		Type:        row.Type,
		Amount:      row.Amount,
		Status:      row.Status,
		Description: row.Description,
		ReferenceID: row.ReferenceID,
		Timestamp:   row.CreatedAt,
	}
}

func toTransferItem(userID int64, row db.ListP2PTransfersByUserRow) TransferItem {
	item := TransferItem{
		ID:          row.ID,
		Amount:      row.Amount,
		Description: row.Description.String,
		Status:      row.Status,
		ReferenceID: row.ReferenceID,
		Timestamp:   row.CreatedAt,
	}

	if row.SenderID == userID {
		item.Type = DirectionSent
		item.Counterparty = Counterparty{
			Phone: row.ReceiverPhone,
			Name:  row.ReceiverName.String,
		}
	} else {
		item.Type = DirectionReceived
		item.Counterparty = Counterparty{
			Phone: row.SenderPhone,
			Name:  row.SenderName.String,
		}
	}

	return item
}
