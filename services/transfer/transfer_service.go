package transfer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	db "github.com/PayRipple/PayRipple-Backend/db/sqlc"
	"github.com/PayRipple/PayRipple-Backend/services/monitoring/logging"
	user_service "github.com/PayRipple/PayRipple-Backend/services/user"
	"github.com/PayRipple/PayRipple-Backend/services/wallet"
	"github.com/PayRipple/PayRipple-Backend/utils"
	"github.com/shopspring/decimal"
)

// maxCommitAttempts bounds retries of the commit loop across reference
// collisions and serialization conflicts.
const maxCommitAttempts = 3

// DailyTracker accumulates per-user transfer volume for the configured
// daily cap. Backed by Redis in production.
type DailyTracker interface {
	TrackDailyTransfer(ctx context.Context, userID int64, amount decimal.Decimal) error
	GetDailyTransferTotal(ctx context.Context, userID int64) (decimal.Decimal, error)
}

// TransferService is the money movement engine. It owns the single atomic
// unit that moves balance between two wallets: two transaction rows, two
// balance adjustments, and the transfer record commit together or not at all.
type TransferService struct {
	store        db.Store
	walletClient *wallet.WalletService
	userClient   *user_service.UserService
	logger       *logging.Logger
	tracker      DailyTracker
	dailyCap     decimal.Decimal
}

func NewTransferService(
	store db.Store,
	walletClient *wallet.WalletService,
	userClient *user_service.UserService,
	logger *logging.Logger,
	tracker DailyTracker,
	dailyCap decimal.Decimal,
) *TransferService {
	return &TransferService{
		store:        store,
		walletClient: walletClient,
		userClient:   userClient,
		logger:       logger,
		tracker:      tracker,
		dailyCap:     dailyCap,
	}
}

// SendMoney executes a peer-to-peer transfer from senderID to the wallet of
// the user owning req.ReceiverPhone.
//
// Validation short-circuits in a fixed order before anything is written:
// input shape, PIN, receiver existence, self-transfer, balance. Failures at
// this stage leave no state behind. The effect phase then commits the five
// writes in one serializable transaction.
func (s *TransferService) SendMoney(ctx context.Context, senderID int64, req SendMoneyRequest) (*TransferReceipt, error) {
	if req.ReceiverPhone == "" || req.PIN == "" {
		return nil, NewTransferError(ErrInvalidInput, "")
	}
	if !req.Amount.IsPositive() {
		return nil, NewTransferError(ErrInvalidAmount, "")
	}

	sender, err := s.userClient.GetByID(ctx, senderID)
	if err != nil {
		if errors.Is(err, user_service.ErrUserNotFound) {
			return nil, NewTransferError(ErrSenderNotFound, "", err)
		}
		return nil, err
	}

	if err := s.userClient.VerifyPIN(sender, req.PIN); err != nil {
		return nil, err
	}

	receiver, err := s.userClient.GetByPhone(ctx, req.ReceiverPhone)
	if err != nil {
		if errors.Is(err, user_service.ErrUserNotFound) {
			return nil, NewTransferError(ErrReceiverNotFound, "", err)
		}
		return nil, err
	}

	if receiver.ID == sender.ID {
		return nil, NewTransferError(ErrSelfTransfer, "")
	}

	senderWallet, err := s.store.GetWalletByUserID(ctx, sender.ID)
	if err == sql.ErrNoRows {
		return nil, NewTransferError(ErrInsufficientFunds, "")
	} else if err != nil {
		return nil, err
	}
	if !senderWallet.IsActive {
		return nil, wallet.NewWalletError(wallet.ErrWalletInactive, senderWallet.ID.String())
	}
	if senderWallet.Balance.LessThan(req.Amount) {
		return nil, NewTransferError(ErrInsufficientFunds, "")
	}

	if err := s.checkDailyCap(ctx, sender.ID, req.Amount); err != nil {
		return nil, err
	}

	receipt, err := s.commitTransfer(ctx, sender, receiver, req)
	if err != nil {
		return nil, err
	}

	if s.tracker != nil {
		// Best effort: a tracking failure must not fail a committed transfer.
		if err := s.tracker.TrackDailyTransfer(ctx, sender.ID, req.Amount); err != nil {
			s.logger.WithField("user_id", sender.ID).Warn("failed to track daily transfer total: ", err)
		}
	}

	s.logger.WithField("reference", receipt.ReferenceID).
		WithField("sender_id", sender.ID).
		WithField("receiver_id", receiver.ID).
		Info("transfer completed")

	return receipt, nil
}

// GetByReference looks up a committed transfer for a receipt view. Only the
// sender and the receiver may see it, anyone else gets not-found.
func (s *TransferService) GetByReference(ctx context.Context, userID int64, reference string) (db.P2pTransfer, error) {
	row, err := s.store.GetP2PTransferByReference(ctx, reference)
	if err == sql.ErrNoRows {
		return db.P2pTransfer{}, NewTransferError(ErrTransferNotFound, reference)
	} else if err != nil {
		return db.P2pTransfer{}, err
	}
	if row.SenderID != userID && row.ReceiverID != userID {
		return db.P2pTransfer{}, NewTransferError(ErrTransferNotFound, reference)
	}
	return row, nil
}

func (s *TransferService) checkDailyCap(ctx context.Context, senderID int64, amount decimal.Decimal) error {
	if s.tracker == nil || !s.dailyCap.IsPositive() {
		return nil
	}
	total, err := s.tracker.GetDailyTransferTotal(ctx, senderID)
	if err != nil {
		return err
	}
	if total.Add(amount).GreaterThan(s.dailyCap) {
		return NewTransferError(ErrDailyLimitExceeded, "")
	}
	return nil
}

// commitTransfer runs the atomic unit. A serialization conflict or a
// duplicate-reference collision is retried with a fresh reference before
// surfacing an error.
func (s *TransferService) commitTransfer(ctx context.Context, sender, receiver db.User, req SendMoneyRequest) (*TransferReceipt, error) {
	var receipt *TransferReceipt
	var lastErr error

	for attempt := 0; attempt < maxCommitAttempts; attempt++ {
		reference := utils.NewReference(utils.RefPrefixTransfer)

		err := s.store.ExecSerializableTx(ctx, func(q db.Querier) error {
			r, txErr := s.executeTransfer(ctx, q, sender, receiver, req, reference)
			if txErr != nil {
				return txErr
			}
			receipt = r
			return nil
		})
		if err == nil {
			return receipt, nil
		}

		if db.IsDuplicate(err) {
			s.logger.WithField("reference", reference).Warn("transfer reference collision, regenerating")
			lastErr = err
			continue
		}
		if db.IsSerializationFailure(err) {
			s.logger.WithField("reference", reference).Warn("transfer serialization conflict, retrying")
			lastErr = err
			continue
		}

		var transferErr *TransferError
		var walletErr *wallet.WalletError
		if errors.As(err, &transferErr) || errors.As(err, &walletErr) {
			return nil, err
		}
		return nil, NewTransferError(ErrTransferFailed, reference, err)
	}

	if db.IsSerializationFailure(lastErr) {
		return nil, NewTransferError(ErrTransferFailed, "", lastErr)
	}
	return nil, NewTransferError(ErrReferenceConflict, "")
}

// executeTransfer performs the five writes against the tx-scoped querier.
func (s *TransferService) executeTransfer(ctx context.Context, q db.Querier, sender, receiver db.User, req SendMoneyRequest, reference string) (*TransferReceipt, error) {
	senderWallet, err := s.walletClient.GetOrCreateWallet(ctx, q, sender.ID)
	if err != nil {
		return nil, err
	}
	receiverWallet, err := s.walletClient.GetOrCreateWallet(ctx, q, receiver.ID)
	if err != nil {
		return nil, err
	}

	debitDescription := req.Description
	if debitDescription == "" {
		debitDescription = fmt.Sprintf("Sent to %s", receiver.PhoneNumber)
	}
	creditDescription := req.Description
	if creditDescription == "" {
		creditDescription = fmt.Sprintf("Received from %s", sender.PhoneNumber)
	}

	debitTx, err := q.CreateTransaction(ctx, db.CreateTransactionParams{
		UserID:      sender.ID,
		WalletID:    senderWallet.ID,
		Type:        TypeDebit,
		Amount:      req.Amount,
		Status:      StatusSuccess,
		Description: debitDescription,
		ReferenceID: fmt.Sprintf("%s-DEBIT", reference),
		Metadata: TransactionMetadata{
			ReceiverPhone: receiver.PhoneNumber,
			TransferRef:   reference,
		}.Raw(),
	})
	if err != nil {
		return nil, err
	}

	_, err = q.CreateTransaction(ctx, db.CreateTransactionParams{
		UserID:      receiver.ID,
		WalletID:    receiverWallet.ID,
		Type:        TypeCredit,
		Amount:      req.Amount,
		Status:      StatusSuccess,
		Description: creditDescription,
		ReferenceID: fmt.Sprintf("%s-CREDIT", reference),
		Metadata: TransactionMetadata{
			SenderPhone: sender.PhoneNumber,
			TransferRef: reference,
		}.Raw(),
	})
	if err != nil {
		return nil, err
	}

	senderAfter, err := s.walletClient.Adjust(ctx, q, senderWallet.ID, req.Amount.Neg())
	if err != nil {
		return nil, err
	}

	if _, err := s.walletClient.Adjust(ctx, q, receiverWallet.ID, req.Amount); err != nil {
		return nil, err
	}

	p2pTransfer, err := q.CreateP2PTransfer(ctx, db.CreateP2PTransferParams{
		SenderID:      sender.ID,
		ReceiverID:    receiver.ID,
		Amount:        req.Amount,
		Description:   sql.NullString{String: req.Description, Valid: req.Description != ""},
		Status:        TransferCompleted,
		ReferenceID:   reference,
		TransactionID: debitTx.ID,
	})
	if err != nil {
		return nil, err
	}

	return &TransferReceipt{
		TransferID:   p2pTransfer.ID,
		ReferenceID:  p2pTransfer.ReferenceID,
		Amount:       p2pTransfer.Amount,
		ReceiverName: user_service.DisplayName(receiver),
		Timestamp:    p2pTransfer.CreatedAt,
		NewBalance:   senderAfter.Balance,
	}, nil
}
