package user_service

import (
	"context"
	"database/sql"
	"fmt"

	db "github.com/PayRipple/PayRipple-Backend/db/sqlc"
	"github.com/PayRipple/PayRipple-Backend/services/monitoring/logging"
	"github.com/PayRipple/PayRipple-Backend/services/security"
	"github.com/PayRipple/PayRipple-Backend/services/wallet"
	"github.com/PayRipple/PayRipple-Backend/utils"
)

type UserService struct {
	store        db.Store
	logger       *logging.Logger
	walletClient *wallet.WalletService
	guard        *security.Cache
}

func NewUserService(store db.Store, logger *logging.Logger, walletClient *wallet.WalletService, guard *security.Cache) *UserService {
	return &UserService{
		store:        store,
		logger:       logger,
		walletClient: walletClient,
		guard:        guard,
	}
}

// CreateUserWithWallet registers a verified user and their zero-balance
// wallet in one transaction.
func (u *UserService) CreateUserWithWallet(ctx context.Context, phone, name, email, pin string) (db.User, error) {
	pinHash, err := utils.GenerateHashValue(pin)
	if err != nil {
		return db.User{}, fmt.Errorf("hash pin: %w", err)
	}

	var newUser db.User
	err = u.store.ExecTx(ctx, func(q db.Querier) error {
		var txErr error
		newUser, txErr = q.CreateUser(ctx, db.CreateUserParams{
			PhoneNumber: phone,
			Name:        sql.NullString{String: name, Valid: name != ""},
			Email:       sql.NullString{String: email, Valid: email != ""},
			PinHash:     pinHash,
			IsVerified:  true,
		})
		if txErr != nil {
			if db.IsDuplicate(txErr) {
				return NewUserError(ErrUserAlreadyExists, phone, txErr)
			}
			return txErr
		}

		_, txErr = u.walletClient.GetOrCreateWallet(ctx, q, newUser.ID)
		return txErr
	})
	if err != nil {
		return db.User{}, err
	}

	u.logger.WithField("user_id", newUser.ID).Info("user registered")
	return newUser, nil
}

func (u *UserService) GetByID(ctx context.Context, id int64) (db.User, error) {
	dbUser, err := u.store.GetUser(ctx, id)
	if err == sql.ErrNoRows {
		return db.User{}, NewUserError(ErrUserNotFound, fmt.Sprint(id))
	} else if err != nil {
		return db.User{}, err
	}
	return dbUser, nil
}

func (u *UserService) GetByPhone(ctx context.Context, phone string) (db.User, error) {
	dbUser, err := u.store.GetUserByPhone(ctx, phone)
	if err == sql.ErrNoRows {
		return db.User{}, NewUserError(ErrUserNotFound, phone)
	} else if err != nil {
		return db.User{}, err
	}
	return dbUser, nil
}

// VerifyPIN compares the candidate PIN against the stored bcrypt hash,
// enforcing the failed-attempt lockout window.
func (u *UserService) VerifyPIN(dbUser db.User, pin string) error {
	if u.guard.PINLocked(dbUser.ID) {
		return NewUserError(ErrPINLocked, fmt.Sprint(dbUser.ID))
	}

	if err := utils.VerifyHashValue(pin, dbUser.PinHash); err != nil {
		attempts := u.guard.RecordFailedPIN(dbUser.ID)
		u.logger.WithField("user_id", dbUser.ID).WithField("attempts", attempts).Warn("PIN verification failed")
		return NewUserError(ErrInvalidPIN, fmt.Sprint(dbUser.ID))
	}

	u.guard.ResetPINAttempts(dbUser.ID)
	return nil
}

// UpdatePIN re-hashes and stores a new transaction PIN.
func (u *UserService) UpdatePIN(ctx context.Context, userID int64, pin string) error {
	pinHash, err := utils.GenerateHashValue(pin)
	if err != nil {
		return fmt.Errorf("hash pin: %w", err)
	}

	_, err = u.store.UpdateUserPin(ctx, db.UpdateUserPinParams{
		ID:      userID,
		PinHash: pinHash,
	})
	if err == sql.ErrNoRows {
		return NewUserError(ErrUserNotFound, fmt.Sprint(userID))
	}
	return err
}

// DisplayName falls back to the phone number when the user never set a name.
func DisplayName(dbUser db.User) string {
	if dbUser.Name.Valid && dbUser.Name.String != "" {
		return dbUser.Name.String
	}
	return dbUser.PhoneNumber
}
