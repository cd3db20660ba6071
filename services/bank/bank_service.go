package bank

import (
	"context"
	"database/sql"
	"strings"

	db "github.com/PayRipple/PayRipple-Backend/db/sqlc"
	"github.com/PayRipple/PayRipple-Backend/services/monitoring/logging"
	"github.com/google/uuid"
)

type BankService struct {
	store  db.Store
	logger *logging.Logger
}

func NewBankService(store db.Store, logger *logging.Logger) *BankService {
	return &BankService{
		store:  store,
		logger: logger,
	}
}

type AddAccountParams struct {
	BankName          string
	AccountNumber     string
	IfscCode          string
	AccountHolderName string
}

// AddAccount links a bank account to the user. The first linked account
// becomes the default. Linking is treated as instantly verified, matching
// the trusted-rails assumption of the top-up flow.
func (s *BankService) AddAccount(ctx context.Context, userID int64, params AddAccountParams) (db.BankAccount, error) {
	count, err := s.store.CountBankAccountsByUserID(ctx, userID)
	if err != nil {
		return db.BankAccount{}, err
	}

	account, err := s.store.CreateBankAccount(ctx, db.CreateBankAccountParams{
		UserID:            userID,
		BankName:          params.BankName,
		AccountNumber:     strings.ReplaceAll(params.AccountNumber, " ", ""),
		IfscCode:          strings.ToUpper(params.IfscCode),
		AccountHolderName: params.AccountHolderName,
		IsVerified:        true,
		IsDefault:         count == 0,
	})
	if err != nil {
		if db.IsDuplicate(err) {
			return db.BankAccount{}, ErrBankAccountExists
		}
		return db.BankAccount{}, err
	}

	s.logger.WithField("user_id", userID).Info("bank account linked")
	return account, nil
}

func (s *BankService) ListAccounts(ctx context.Context, userID int64) ([]db.BankAccount, error) {
	return s.store.ListBankAccountsByUserID(ctx, userID)
}

// GetOwnedAccount fetches an account and verifies ownership.
func (s *BankService) GetOwnedAccount(ctx context.Context, userID int64, accountID uuid.UUID) (db.BankAccount, error) {
	account, err := s.store.GetBankAccount(ctx, accountID)
	if err == sql.ErrNoRows {
		return db.BankAccount{}, ErrBankAccountNotFound
	} else if err != nil {
		return db.BankAccount{}, err
	}
	if account.UserID != userID {
		return db.BankAccount{}, ErrNotAccountOwner
	}
	return account, nil
}

// SetDefault makes accountID the user's default, clearing any previous
// default in the same transaction.
func (s *BankService) SetDefault(ctx context.Context, userID int64, accountID uuid.UUID) (db.BankAccount, error) {
	var account db.BankAccount
	err := s.store.ExecTx(ctx, func(q db.Querier) error {
		if err := q.ClearDefaultBankAccount(ctx, userID); err != nil {
			return err
		}
		var txErr error
		account, txErr = q.SetDefaultBankAccount(ctx, db.SetDefaultBankAccountParams{
			ID:     accountID,
			UserID: userID,
		})
		if txErr == sql.ErrNoRows {
			return ErrBankAccountNotFound
		}
		return txErr
	})
	return account, err
}

func (s *BankService) DeleteAccount(ctx context.Context, userID int64, accountID uuid.UUID) error {
	if _, err := s.GetOwnedAccount(ctx, userID, accountID); err != nil {
		return err
	}
	return s.store.DeleteBankAccount(ctx, db.DeleteBankAccountParams{
		ID:     accountID,
		UserID: userID,
	})
}
