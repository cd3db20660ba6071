package wallet

import (
	"context"
	"database/sql"
	"fmt"

	db "github.com/PayRipple/PayRipple-Backend/db/sqlc"
	"github.com/PayRipple/PayRipple-Backend/services/monitoring/logging"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WalletService struct {
	store    db.Store
	logger   *logging.Logger
	currency string
}

func NewWalletService(store db.Store, logger *logging.Logger, currency string) *WalletService {
	return &WalletService{
		store:    store,
		logger:   logger,
		currency: currency,
	}
}

// GetOrCreateWallet returns the user's wallet, lazily creating a zero-balance
// active wallet on first access. Idempotent: a concurrent create losing the
// unique-index race falls back to reading the winner's row.
func (w *WalletService) GetOrCreateWallet(ctx context.Context, q db.Querier, userID int64) (db.Wallet, error) {
	dbWallet, err := q.GetWalletByUserID(ctx, userID)
	if err == nil {
		return dbWallet, nil
	}
	if err != sql.ErrNoRows {
		return db.Wallet{}, err
	}

	dbWallet, err = q.CreateWallet(ctx, db.CreateWalletParams{
		UserID:   userID,
		Balance:  decimal.Zero,
		Currency: w.currency,
	})
	if err != nil {
		if db.IsDuplicate(err) {
			return q.GetWalletByUserID(ctx, userID)
		}
		return db.Wallet{}, NewWalletError(ErrWalletNotPossible, "", err)
	}

	w.logger.WithField("user_id", userID).Info("wallet created on first access")
	return dbWallet, nil
}

// Adjust applies delta to the wallet balance in a single conditional update.
// The statement commits only when the resulting balance stays >= 0, so two
// concurrent debits can never both drain the same funds.
func (w *WalletService) Adjust(ctx context.Context, q db.Querier, walletID uuid.UUID, delta decimal.Decimal) (db.Wallet, error) {
	updated, err := q.AdjustWalletBalance(ctx, db.AdjustWalletBalanceParams{
		ID:    walletID,
		Delta: delta,
	})
	if err == sql.ErrNoRows {
		// No row matched: either the wallet is gone or the guard rejected
		// the debit. Look again to tell the two apart.
		if _, lookupErr := q.GetWallet(ctx, walletID); lookupErr == sql.ErrNoRows {
			return db.Wallet{}, NewWalletError(ErrWalletNotFound, walletID.String())
		}
		return db.Wallet{}, NewWalletError(ErrInsufficientFunds, walletID.String())
	} else if db.IsCheckViolation(err) {
		// The balance CHECK constraint is the backstop behind the guard.
		return db.Wallet{}, NewWalletError(ErrInsufficientFunds, walletID.String())
	} else if err != nil {
		return db.Wallet{}, err
	}
	return updated, nil
}

// GetWallet fetches a wallet by id.
func (w *WalletService) GetWallet(ctx context.Context, q db.Querier, walletID uuid.UUID) (db.Wallet, error) {
	wlt, err := q.GetWallet(ctx, walletID)
	if err == sql.ErrNoRows {
		return db.Wallet{}, NewWalletError(ErrWalletNotFound, walletID.String())
	} else if err != nil {
		return db.Wallet{}, err
	}
	return wlt, nil
}

// GetByUserID fetches the wallet owned by a user.
func (w *WalletService) GetByUserID(ctx context.Context, userID int64) (db.Wallet, error) {
	wlt, err := w.store.GetWalletByUserID(ctx, userID)
	if err == sql.ErrNoRows {
		return db.Wallet{}, NewWalletError(ErrWalletNotFound, fmt.Sprint(userID))
	} else if err != nil {
		return db.Wallet{}, err
	}
	return wlt, nil
}

// Deactivate flags a wallet inactive. Wallets are never deleted.
func (w *WalletService) Deactivate(ctx context.Context, walletID uuid.UUID) (db.Wallet, error) {
	wlt, err := w.store.DeactivateWallet(ctx, walletID)
	if err == sql.ErrNoRows {
		return db.Wallet{}, NewWalletError(ErrWalletNotFound, walletID.String())
	} else if err != nil {
		return db.Wallet{}, err
	}
	return wlt, nil
}
