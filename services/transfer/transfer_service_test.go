package transfer

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	db "github.com/PayRipple/PayRipple-Backend/db/sqlc"
	"github.com/PayRipple/PayRipple-Backend/services/monitoring/logging"
	"github.com/PayRipple/PayRipple-Backend/services/security"
	user_service "github.com/PayRipple/PayRipple-Backend/services/user"
	"github.com/PayRipple/PayRipple-Backend/services/wallet"
	"github.com/PayRipple/PayRipple-Backend/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// stubStore is an in-memory Store. Transactions snapshot state up front and
// restore it when fn fails, mirroring a rollback.
type stubStore struct {
	db.Querier

	users     map[int64]db.User
	wallets   map[uuid.UUID]db.Wallet
	txns      map[string]db.Transaction
	transfers map[string]db.P2pTransfer

	transferDuplicates  int
	serializationFaults int
	failCreditTxn       bool
}

func newStubStore() *stubStore {
	return &stubStore{
		users:     make(map[int64]db.User),
		wallets:   make(map[uuid.UUID]db.Wallet),
		txns:      make(map[string]db.Transaction),
		transfers: make(map[string]db.P2pTransfer),
	}
}

func (s *stubStore) ExecTx(ctx context.Context, fn func(q db.Querier) error) error {
	return s.runTx(fn)
}

func (s *stubStore) ExecSerializableTx(ctx context.Context, fn func(q db.Querier) error) error {
	if s.serializationFaults > 0 {
		s.serializationFaults--
		return &pq.Error{Code: db.SerializationFault}
	}
	return s.runTx(fn)
}

func (s *stubStore) runTx(fn func(q db.Querier) error) error {
	wallets := cloneMap(s.wallets)
	txns := cloneMap(s.txns)
	transfers := cloneMap(s.transfers)

	if err := fn(s); err != nil {
		s.wallets = wallets
		s.txns = txns
		s.transfers = transfers
		return err
	}
	return nil
}

func cloneMap[K comparable, V any](in map[K]V) map[K]V {
	out := make(map[K]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func (s *stubStore) GetUser(ctx context.Context, id int64) (db.User, error) {
	u, ok := s.users[id]
	if !ok {
		return db.User{}, sql.ErrNoRows
	}
	return u, nil
}

func (s *stubStore) GetUserByPhone(ctx context.Context, phoneNumber string) (db.User, error) {
	for _, u := range s.users {
		if u.PhoneNumber == phoneNumber {
			return u, nil
		}
	}
	return db.User{}, sql.ErrNoRows
}

func (s *stubStore) GetWallet(ctx context.Context, id uuid.UUID) (db.Wallet, error) {
	w, ok := s.wallets[id]
	if !ok {
		return db.Wallet{}, sql.ErrNoRows
	}
	return w, nil
}

func (s *stubStore) GetWalletByUserID(ctx context.Context, userID int64) (db.Wallet, error) {
	for _, w := range s.wallets {
		if w.UserID == userID {
			return w, nil
		}
	}
	return db.Wallet{}, sql.ErrNoRows
}

func (s *stubStore) CreateWallet(ctx context.Context, arg db.CreateWalletParams) (db.Wallet, error) {
	if _, err := s.GetWalletByUserID(ctx, arg.UserID); err == nil {
		return db.Wallet{}, &pq.Error{Code: db.DuplicateEntry}
	}
	w := db.Wallet{
		ID:       uuid.New(),
		UserID:   arg.UserID,
		Balance:  arg.Balance,
		Currency: arg.Currency,
		IsActive: true,
	}
	s.wallets[w.ID] = w
	return w, nil
}

func (s *stubStore) AdjustWalletBalance(ctx context.Context, arg db.AdjustWalletBalanceParams) (db.Wallet, error) {
	w, ok := s.wallets[arg.ID]
	if !ok {
		return db.Wallet{}, sql.ErrNoRows
	}
	next := w.Balance.Add(arg.Delta)
	if next.IsNegative() {
		return db.Wallet{}, sql.ErrNoRows
	}
	w.Balance = next
	s.wallets[arg.ID] = w
	return w, nil
}

func (s *stubStore) CreateTransaction(ctx context.Context, arg db.CreateTransactionParams) (db.Transaction, error) {
	if s.failCreditTxn && arg.Type == TypeCredit {
		return db.Transaction{}, errors.New("connection reset by peer")
	}
	if _, ok := s.txns[arg.ReferenceID]; ok {
		return db.Transaction{}, &pq.Error{Code: db.DuplicateEntry}
	}
	t := db.Transaction{
		ID:          uuid.New(),
		UserID:      arg.UserID,
		WalletID:    arg.WalletID,
		Type:        arg.Type,
		Amount:      arg.Amount,
		Status:      arg.Status,
		Description: arg.Description,
		ReferenceID: arg.ReferenceID,
		Metadata:    arg.Metadata,
		CreatedAt:   time.Now(),
	}
	s.txns[arg.ReferenceID] = t
	return t, nil
}

func (s *stubStore) CreateP2PTransfer(ctx context.Context, arg db.CreateP2PTransferParams) (db.P2pTransfer, error) {
	if s.transferDuplicates > 0 {
		s.transferDuplicates--
		return db.P2pTransfer{}, &pq.Error{Code: db.DuplicateEntry}
	}
	if _, ok := s.transfers[arg.ReferenceID]; ok {
		return db.P2pTransfer{}, &pq.Error{Code: db.DuplicateEntry}
	}
	t := db.P2pTransfer{
		ID:            uuid.New(),
		SenderID:      arg.SenderID,
		ReceiverID:    arg.ReceiverID,
		Amount:        arg.Amount,
		Description:   arg.Description,
		Status:        arg.Status,
		ReferenceID:   arg.ReferenceID,
		TransactionID: arg.TransactionID,
		CreatedAt:     time.Now(),
	}
	s.transfers[arg.ReferenceID] = t
	return t, nil
}

func (s *stubStore) GetP2PTransferByReference(ctx context.Context, referenceID string) (db.P2pTransfer, error) {
	tr, ok := s.transfers[referenceID]
	if !ok {
		return db.P2pTransfer{}, sql.ErrNoRows
	}
	return tr, nil
}

const testPIN = "1234"

func newTestService(t *testing.T, store *stubStore) *TransferService {
	t.Helper()
	logger := logging.NewLogger()
	walletService := wallet.NewWalletService(store, logger, "INR")
	userService := user_service.NewUserService(store, logger, walletService, security.NewCache())
	return NewTransferService(store, walletService, userService, logger, nil, decimal.Zero)
}

func seedUser(t *testing.T, store *stubStore, id int64, phone, name string, balance decimal.Decimal) db.User {
	t.Helper()
	pinHash, err := utils.GenerateHashValue(testPIN)
	if err != nil {
		t.Fatalf("hash pin: %v", err)
	}
	u := db.User{
		ID:          id,
		PhoneNumber: phone,
		Name:        sql.NullString{String: name, Valid: name != ""},
		PinHash:     pinHash,
		IsVerified:  true,
	}
	store.users[id] = u

	w := db.Wallet{
		ID:       uuid.New(),
		UserID:   id,
		Balance:  balance,
		Currency: "INR",
		IsActive: true,
	}
	store.wallets[w.ID] = w
	return u
}

func walletBalance(t *testing.T, store *stubStore, userID int64) decimal.Decimal {
	t.Helper()
	w, err := store.GetWalletByUserID(context.Background(), userID)
	if err != nil {
		t.Fatalf("wallet for user %d: %v", userID, err)
	}
	return w.Balance
}

func TestSendMoney(t *testing.T) {
	store := newStubStore()
	service := newTestService(t, store)
	seedUser(t, store, 1, "+919800000001", "Asha", decimal.NewFromInt(500))
	seedUser(t, store, 2, "+919800000002", "Ravi", decimal.NewFromInt(100))

	receipt, err := service.SendMoney(context.Background(), 1, SendMoneyRequest{
		ReceiverPhone: "+919800000002",
		Amount:        decimal.NewFromInt(150),
		Description:   "lunch",
		PIN:           testPIN,
	})
	if err != nil {
		t.Fatalf("SendMoney: %v", err)
	}

	if !receipt.Amount.Equal(decimal.NewFromInt(150)) {
		t.Errorf("receipt amount = %s, want 150", receipt.Amount)
	}
	if receipt.ReceiverName != "Ravi" {
		t.Errorf("receiver name = %q, want Ravi", receipt.ReceiverName)
	}
	if !receipt.NewBalance.Equal(decimal.NewFromInt(350)) {
		t.Errorf("new balance = %s, want 350", receipt.NewBalance)
	}

	if got := walletBalance(t, store, 1); !got.Equal(decimal.NewFromInt(350)) {
		t.Errorf("sender balance = %s, want 350", got)
	}
	if got := walletBalance(t, store, 2); !got.Equal(decimal.NewFromInt(250)) {
		t.Errorf("receiver balance = %s, want 250", got)
	}

	debit, ok := store.txns[receipt.ReferenceID+"-DEBIT"]
	if !ok {
		t.Fatal("debit transaction not recorded")
	}
	credit, ok := store.txns[receipt.ReferenceID+"-CREDIT"]
	if !ok {
		t.Fatal("credit transaction not recorded")
	}
	if debit.Type != TypeDebit || credit.Type != TypeCredit {
		t.Errorf("transaction types = %q/%q, want debit/credit", debit.Type, credit.Type)
	}
	if !debit.Amount.Equal(credit.Amount) {
		t.Errorf("debit %s and credit %s amounts differ", debit.Amount, credit.Amount)
	}

	p2p, ok := store.transfers[receipt.ReferenceID]
	if !ok {
		t.Fatal("transfer record not created")
	}
	if p2p.Status != TransferCompleted {
		t.Errorf("transfer status = %q, want %q", p2p.Status, TransferCompleted)
	}
	if p2p.TransactionID != debit.ID {
		t.Error("transfer does not reference the debit transaction")
	}
}

func TestSendMoneyValidation(t *testing.T) {
	store := newStubStore()
	service := newTestService(t, store)
	seedUser(t, store, 1, "+919800000001", "Asha", decimal.NewFromInt(100))
	seedUser(t, store, 2, "+919800000002", "Ravi", decimal.NewFromInt(0))

	tests := []struct {
		name     string
		senderID int64
		req      SendMoneyRequest
		wantErr  error
	}{
		{
			name:     "missing receiver",
			senderID: 1,
			req:      SendMoneyRequest{Amount: decimal.NewFromInt(10), PIN: testPIN},
			wantErr:  ErrInvalidInput,
		},
		{
			name:     "missing pin",
			senderID: 1,
			req:      SendMoneyRequest{ReceiverPhone: "+919800000002", Amount: decimal.NewFromInt(10)},
			wantErr:  ErrInvalidInput,
		},
		{
			name:     "zero amount",
			senderID: 1,
			req:      SendMoneyRequest{ReceiverPhone: "+919800000002", Amount: decimal.Zero, PIN: testPIN},
			wantErr:  ErrInvalidAmount,
		},
		{
			name:     "negative amount",
			senderID: 1,
			req:      SendMoneyRequest{ReceiverPhone: "+919800000002", Amount: decimal.NewFromInt(-5), PIN: testPIN},
			wantErr:  ErrInvalidAmount,
		},
		{
			name:     "unknown sender",
			senderID: 99,
			req:      SendMoneyRequest{ReceiverPhone: "+919800000002", Amount: decimal.NewFromInt(10), PIN: testPIN},
			wantErr:  ErrSenderNotFound,
		},
		{
			name:     "wrong pin",
			senderID: 1,
			req:      SendMoneyRequest{ReceiverPhone: "+919800000002", Amount: decimal.NewFromInt(10), PIN: "0000"},
			wantErr:  user_service.ErrInvalidPIN,
		},
		{
			name:     "unknown receiver",
			senderID: 1,
			req:      SendMoneyRequest{ReceiverPhone: "+919899999999", Amount: decimal.NewFromInt(10), PIN: testPIN},
			wantErr:  ErrReceiverNotFound,
		},
		{
			name:     "self transfer",
			senderID: 1,
			req:      SendMoneyRequest{ReceiverPhone: "+919800000001", Amount: decimal.NewFromInt(10), PIN: testPIN},
			wantErr:  ErrSelfTransfer,
		},
		{
			name:     "insufficient balance",
			senderID: 1,
			req:      SendMoneyRequest{ReceiverPhone: "+919800000002", Amount: decimal.NewFromInt(5000), PIN: testPIN},
			wantErr:  ErrInsufficientFunds,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.SendMoney(context.Background(), tc.senderID, tc.req)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("SendMoney error = %v, want %v", err, tc.wantErr)
			}
		})
	}

	// Nothing may have been written by any failed attempt.
	if len(store.txns) != 0 || len(store.transfers) != 0 {
		t.Errorf("failed attempts left state behind: %d txns, %d transfers", len(store.txns), len(store.transfers))
	}
	if got := walletBalance(t, store, 1); !got.Equal(decimal.NewFromInt(100)) {
		t.Errorf("sender balance changed to %s after failed attempts", got)
	}
}

func TestSendMoneyExactBalance(t *testing.T) {
	store := newStubStore()
	service := newTestService(t, store)
	seedUser(t, store, 1, "+919800000001", "", decimal.NewFromInt(75))
	seedUser(t, store, 2, "+919800000002", "Ravi", decimal.Zero)

	receipt, err := service.SendMoney(context.Background(), 1, SendMoneyRequest{
		ReceiverPhone: "+919800000002",
		Amount:        decimal.NewFromInt(75),
		PIN:           testPIN,
	})
	if err != nil {
		t.Fatalf("SendMoney: %v", err)
	}
	if !receipt.NewBalance.IsZero() {
		t.Errorf("new balance = %s, want 0", receipt.NewBalance)
	}
}

func TestSendMoneyCreatesReceiverWallet(t *testing.T) {
	store := newStubStore()
	service := newTestService(t, store)
	seedUser(t, store, 1, "+919800000001", "Asha", decimal.NewFromInt(200))

	// Receiver exists but never opened a wallet.
	pinHash, _ := utils.GenerateHashValue(testPIN)
	store.users[2] = db.User{ID: 2, PhoneNumber: "+919800000002", PinHash: pinHash, IsVerified: true}

	_, err := service.SendMoney(context.Background(), 1, SendMoneyRequest{
		ReceiverPhone: "+919800000002",
		Amount:        decimal.NewFromInt(60),
		PIN:           testPIN,
	})
	if err != nil {
		t.Fatalf("SendMoney: %v", err)
	}

	if got := walletBalance(t, store, 2); !got.Equal(decimal.NewFromInt(60)) {
		t.Errorf("receiver balance = %s, want 60", got)
	}
}

func TestSendMoneyRetriesReferenceCollision(t *testing.T) {
	store := newStubStore()
	service := newTestService(t, store)
	seedUser(t, store, 1, "+919800000001", "Asha", decimal.NewFromInt(100))
	seedUser(t, store, 2, "+919800000002", "Ravi", decimal.Zero)

	store.transferDuplicates = 1

	receipt, err := service.SendMoney(context.Background(), 1, SendMoneyRequest{
		ReceiverPhone: "+919800000002",
		Amount:        decimal.NewFromInt(10),
		PIN:           testPIN,
	})
	if err != nil {
		t.Fatalf("SendMoney after collision: %v", err)
	}

	if len(store.transfers) != 1 {
		t.Errorf("transfer count = %d, want 1", len(store.transfers))
	}
	if got := walletBalance(t, store, 1); !got.Equal(decimal.NewFromInt(90)) {
		t.Errorf("sender balance = %s, want 90 after single debit", got)
	}
	if receipt.ReferenceID == "" {
		t.Error("receipt missing reference")
	}
}

func TestSendMoneyExhaustedCollisions(t *testing.T) {
	store := newStubStore()
	service := newTestService(t, store)
	seedUser(t, store, 1, "+919800000001", "Asha", decimal.NewFromInt(100))
	seedUser(t, store, 2, "+919800000002", "Ravi", decimal.Zero)

	store.transferDuplicates = 3

	_, err := service.SendMoney(context.Background(), 1, SendMoneyRequest{
		ReceiverPhone: "+919800000002",
		Amount:        decimal.NewFromInt(10),
		PIN:           testPIN,
	})
	if !errors.Is(err, ErrReferenceConflict) {
		t.Fatalf("SendMoney error = %v, want %v", err, ErrReferenceConflict)
	}

	if got := walletBalance(t, store, 1); !got.Equal(decimal.NewFromInt(100)) {
		t.Errorf("sender balance = %s, want unchanged 100", got)
	}
}

func TestSendMoneyRollsBackOnWriteFailure(t *testing.T) {
	store := newStubStore()
	service := newTestService(t, store)
	seedUser(t, store, 1, "+919800000001", "Asha", decimal.NewFromInt(100))
	seedUser(t, store, 2, "+919800000002", "Ravi", decimal.NewFromInt(40))

	store.failCreditTxn = true

	_, err := service.SendMoney(context.Background(), 1, SendMoneyRequest{
		ReceiverPhone: "+919800000002",
		Amount:        decimal.NewFromInt(30),
		PIN:           testPIN,
	})
	if !errors.Is(err, ErrTransferFailed) {
		t.Fatalf("SendMoney error = %v, want %v", err, ErrTransferFailed)
	}

	if got := walletBalance(t, store, 1); !got.Equal(decimal.NewFromInt(100)) {
		t.Errorf("sender balance = %s, want 100 after rollback", got)
	}
	if got := walletBalance(t, store, 2); !got.Equal(decimal.NewFromInt(40)) {
		t.Errorf("receiver balance = %s, want 40 after rollback", got)
	}
	if len(store.txns) != 0 || len(store.transfers) != 0 {
		t.Errorf("rollback left state behind: %d txns, %d transfers", len(store.txns), len(store.transfers))
	}
}

// stubTracker records daily totals in memory.
type stubTracker struct {
	totals map[int64]decimal.Decimal
}

func (s *stubTracker) TrackDailyTransfer(ctx context.Context, userID int64, amount decimal.Decimal) error {
	s.totals[userID] = s.totals[userID].Add(amount)
	return nil
}

func (s *stubTracker) GetDailyTransferTotal(ctx context.Context, userID int64) (decimal.Decimal, error) {
	return s.totals[userID], nil
}

func TestSendMoneyDailyCap(t *testing.T) {
	store := newStubStore()
	logger := logging.NewLogger()
	walletService := wallet.NewWalletService(store, logger, "INR")
	userService := user_service.NewUserService(store, logger, walletService, security.NewCache())
	tracker := &stubTracker{totals: map[int64]decimal.Decimal{1: decimal.NewFromInt(90)}}
	service := NewTransferService(store, walletService, userService, logger, tracker, decimal.NewFromInt(100))

	seedUser(t, store, 1, "+919800000001", "Asha", decimal.NewFromInt(1000))
	seedUser(t, store, 2, "+919800000002", "Ravi", decimal.Zero)

	_, err := service.SendMoney(context.Background(), 1, SendMoneyRequest{
		ReceiverPhone: "+919800000002",
		Amount:        decimal.NewFromInt(20),
		PIN:           testPIN,
	})
	if !errors.Is(err, ErrDailyLimitExceeded) {
		t.Fatalf("SendMoney error = %v, want %v", err, ErrDailyLimitExceeded)
	}

	// Under the cap goes through and is tracked.
	_, err = service.SendMoney(context.Background(), 1, SendMoneyRequest{
		ReceiverPhone: "+919800000002",
		Amount:        decimal.NewFromInt(10),
		PIN:           testPIN,
	})
	if err != nil {
		t.Fatalf("SendMoney under cap: %v", err)
	}
	if !tracker.totals[1].Equal(decimal.NewFromInt(100)) {
		t.Errorf("tracked total = %s, want 100", tracker.totals[1])
	}
}

func TestSendMoneyInactiveWallet(t *testing.T) {
	store := newStubStore()
	service := newTestService(t, store)
	sender := seedUser(t, store, 1, "+919800000001", "Asha", decimal.NewFromInt(100))
	seedUser(t, store, 2, "+919800000002", "Ravi", decimal.Zero)

	w, _ := store.GetWalletByUserID(context.Background(), sender.ID)
	w.IsActive = false
	store.wallets[w.ID] = w

	_, err := service.SendMoney(context.Background(), 1, SendMoneyRequest{
		ReceiverPhone: "+919800000002",
		Amount:        decimal.NewFromInt(10),
		PIN:           testPIN,
	})
	if !errors.Is(err, wallet.ErrWalletInactive) {
		t.Fatalf("SendMoney error = %v, want %v", err, wallet.ErrWalletInactive)
	}
}

func TestAddMoney(t *testing.T) {
	store := newStubStore()
	service := newTestService(t, store)
	seedUser(t, store, 1, "+919800000001", "Asha", decimal.NewFromInt(20))

	account := db.BankAccount{ID: uuid.New(), UserID: 1, BankName: "HDFC"}

	receipt, err := service.AddMoney(context.Background(), 1, decimal.NewFromInt(500), account)
	if err != nil {
		t.Fatalf("AddMoney: %v", err)
	}
	if !receipt.NewBalance.Equal(decimal.NewFromInt(520)) {
		t.Errorf("new balance = %s, want 520", receipt.NewBalance)
	}
	if receipt.Type != TypeCredit || receipt.Status != StatusSuccess {
		t.Errorf("receipt type/status = %q/%q", receipt.Type, receipt.Status)
	}
	if got := walletBalance(t, store, 1); !got.Equal(decimal.NewFromInt(520)) {
		t.Errorf("wallet balance = %s, want 520", got)
	}

	_, err = service.AddMoney(context.Background(), 1, decimal.Zero, account)
	if !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("AddMoney zero amount error = %v, want %v", err, ErrInvalidAmount)
	}
}

func TestSendMoneyRetriesSerializationConflict(t *testing.T) {
	store := newStubStore()
	service := newTestService(t, store)
	seedUser(t, store, 1, "+919800000001", "Asha", decimal.NewFromInt(100))
	seedUser(t, store, 2, "+919800000002", "Ravi", decimal.Zero)

	store.serializationFaults = 1

	receipt, err := service.SendMoney(context.Background(), 1, SendMoneyRequest{
		ReceiverPhone: "+919800000002",
		Amount:        decimal.NewFromInt(10),
		PIN:           testPIN,
	})
	if err != nil {
		t.Fatalf("SendMoney after serialization conflict: %v", err)
	}

	if len(store.transfers) != 1 {
		t.Errorf("transfer count = %d, want 1", len(store.transfers))
	}
	if got := walletBalance(t, store, 1); !got.Equal(decimal.NewFromInt(90)) {
		t.Errorf("sender balance = %s, want 90 after single debit", got)
	}
	if receipt.ReferenceID == "" {
		t.Error("receipt missing reference")
	}
}

func TestSendMoneyExhaustedSerializationConflicts(t *testing.T) {
	store := newStubStore()
	service := newTestService(t, store)
	seedUser(t, store, 1, "+919800000001", "Asha", decimal.NewFromInt(100))
	seedUser(t, store, 2, "+919800000002", "Ravi", decimal.Zero)

	store.serializationFaults = 3

	_, err := service.SendMoney(context.Background(), 1, SendMoneyRequest{
		ReceiverPhone: "+919800000002",
		Amount:        decimal.NewFromInt(10),
		PIN:           testPIN,
	})
	if !errors.Is(err, ErrTransferFailed) {
		t.Fatalf("SendMoney error = %v, want %v", err, ErrTransferFailed)
	}

	if len(store.transfers) != 0 {
		t.Errorf("transfer count = %d, want 0", len(store.transfers))
	}
	if got := walletBalance(t, store, 1); !got.Equal(decimal.NewFromInt(100)) {
		t.Errorf("sender balance = %s, want unchanged 100", got)
	}
}

func TestGetByReference(t *testing.T) {
	store := newStubStore()
	service := newTestService(t, store)
	ctx := context.Background()
	seedUser(t, store, 1, "+919800000001", "Asha", decimal.NewFromInt(100))
	seedUser(t, store, 2, "+919800000002", "Ravi", decimal.Zero)
	seedUser(t, store, 3, "+919800000003", "Meera", decimal.Zero)

	receipt, err := service.SendMoney(ctx, 1, SendMoneyRequest{
		ReceiverPhone: "+919800000002",
		Amount:        decimal.NewFromInt(25),
		PIN:           testPIN,
	})
	if err != nil {
		t.Fatalf("SendMoney: %v", err)
	}

	// Both parties can read the receipt.
	row, err := service.GetByReference(ctx, 1, receipt.ReferenceID)
	if err != nil {
		t.Fatalf("GetByReference as sender: %v", err)
	}
	if row.SenderID != 1 || row.ReceiverID != 2 {
		t.Errorf("transfer parties = %d -> %d, want 1 -> 2", row.SenderID, row.ReceiverID)
	}
	if !row.Amount.Equal(decimal.NewFromInt(25)) {
		t.Errorf("amount = %s, want 25", row.Amount)
	}
	if _, err := service.GetByReference(ctx, 2, receipt.ReferenceID); err != nil {
		t.Errorf("GetByReference as receiver: %v", err)
	}

	// A third party reads not-found, not forbidden.
	if _, err := service.GetByReference(ctx, 3, receipt.ReferenceID); !errors.Is(err, ErrTransferNotFound) {
		t.Errorf("stranger lookup error = %v, want %v", err, ErrTransferNotFound)
	}
	if _, err := service.GetByReference(ctx, 1, "P2PDOESNOTEXIST"); !errors.Is(err, ErrTransferNotFound) {
		t.Errorf("unknown reference error = %v, want %v", err, ErrTransferNotFound)
	}
}
