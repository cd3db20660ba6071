package transfer

import (
	"context"
	"fmt"
	"time"

	db "github.com/PayRipple/PayRipple-Backend/db/sqlc"
	"github.com/PayRipple/PayRipple-Backend/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TopUpReceipt struct {
	TransactionID uuid.UUID       `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	Status        string          `json:"status"`
	ReferenceID   string          `json:"reference_id"`
	Timestamp     time.Time       `json:"timestamp"`
	NewBalance    decimal.Decimal `json:"new_balance"`
}

// AddMoney credits the user's wallet from a linked bank account. Bank rails
// are treated as instantaneous and trusted, so the credit and its ledger
// entry commit in one transaction with no pending phase.
func (s *TransferService) AddMoney(ctx context.Context, userID int64, amount decimal.Decimal, bankAccount db.BankAccount) (*TopUpReceipt, error) {
	if !amount.IsPositive() {
		return nil, NewTransferError(ErrInvalidAmount, "")
	}

	var receipt *TopUpReceipt

	for attempt := 0; attempt < 2; attempt++ {
		reference := utils.NewReference(utils.RefPrefixTransaction)

		err := s.store.ExecTx(ctx, func(q db.Querier) error {
			wlt, txErr := s.walletClient.GetOrCreateWallet(ctx, q, userID)
			if txErr != nil {
				return txErr
			}

			updated, txErr := s.walletClient.Adjust(ctx, q, wlt.ID, amount)
			if txErr != nil {
				return txErr
			}

			created, txErr := q.CreateTransaction(ctx, db.CreateTransactionParams{
				UserID:      userID,
				WalletID:    wlt.ID,
				Type:        TypeCredit,
				Amount:      amount,
				Status:      StatusSuccess,
				Description: "Wallet top-up via bank transfer",
				ReferenceID: reference,
				Metadata: TransactionMetadata{
					BankAccount: bankAccount.ID.String(),
				}.Raw(),
			})
			if txErr != nil {
				return txErr
			}

			receipt = &TopUpReceipt{
				TransactionID: created.ID,
				Amount:        created.Amount,
				Type:          created.Type,
				Status:        created.Status,
				ReferenceID:   created.ReferenceID,
				Timestamp:     created.CreatedAt,
				NewBalance:    updated.Balance,
			}
			return nil
		})
		if err == nil {
			s.logger.WithField("user_id", userID).
				WithField("reference", receipt.ReferenceID).
				Info(fmt.Sprintf("wallet topped up with %s", amount.String()))
			return receipt, nil
		}

		if db.IsDuplicate(err) {
			continue
		}
		return nil, NewTransferError(ErrTransferFailed, reference, err)
	}

	return nil, NewTransferError(ErrReferenceConflict, "")
}
