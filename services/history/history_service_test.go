package history

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	db "github.com/PayRipple/PayRipple-Backend/db/sqlc"
	"github.com/PayRipple/PayRipple-Backend/services/monitoring/logging"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// stubStore serves canned transfer and transaction rows with real
// limit/offset slicing.
type stubStore struct {
	db.Querier

	transactions []db.Transaction
	transfers    []db.ListP2PTransfersByUserRow
}

func (s *stubStore) ExecTx(ctx context.Context, fn func(q db.Querier) error) error {
	return fn(s)
}

func (s *stubStore) ExecSerializableTx(ctx context.Context, fn func(q db.Querier) error) error {
	return fn(s)
}

func slicePage[T any](rows []T, limit, offset int32) []T {
	if int(offset) >= len(rows) {
		return nil
	}
	end := int(offset) + int(limit)
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end]
}

func (s *stubStore) ListTransactionsByUserID(ctx context.Context, arg db.ListTransactionsByUserIDParams) ([]db.Transaction, error) {
	var rows []db.Transaction
	for _, t := range s.transactions {
		if t.UserID == arg.UserID {
			rows = append(rows, t)
		}
	}
	return slicePage(rows, arg.Limit, arg.Offset), nil
}

func (s *stubStore) CountTransactionsByUserID(ctx context.Context, userID int64) (int64, error) {
	var n int64
	for _, t := range s.transactions {
		if t.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (s *stubStore) ListP2PTransfersByUser(ctx context.Context, arg db.ListP2PTransfersByUserParams) ([]db.ListP2PTransfersByUserRow, error) {
	var rows []db.ListP2PTransfersByUserRow
	for _, t := range s.transfers {
		if t.SenderID == arg.UserID || t.ReceiverID == arg.UserID {
			rows = append(rows, t)
		}
	}
	return slicePage(rows, arg.Limit, arg.Offset), nil
}

func (s *stubStore) CountP2PTransfersByUser(ctx context.Context, userID int64) (int64, error) {
	var n int64
	for _, t := range s.transfers {
		if t.SenderID == userID || t.ReceiverID == userID {
			n++
		}
	}
	return n, nil
}

func (s *stubStore) ListP2PTransfersBySender(ctx context.Context, arg db.ListP2PTransfersBySenderParams) ([]db.ListP2PTransfersBySenderRow, error) {
	var rows []db.ListP2PTransfersBySenderRow
	for _, t := range s.transfers {
		if t.SenderID == arg.SenderID {
			rows = append(rows, db.ListP2PTransfersBySenderRow(t))
		}
	}
	return slicePage(rows, arg.Limit, arg.Offset), nil
}

func (s *stubStore) CountP2PTransfersBySender(ctx context.Context, senderID int64) (int64, error) {
	var n int64
	for _, t := range s.transfers {
		if t.SenderID == senderID {
			n++
		}
	}
	return n, nil
}

func (s *stubStore) ListP2PTransfersByReceiver(ctx context.Context, arg db.ListP2PTransfersByReceiverParams) ([]db.ListP2PTransfersByReceiverRow, error) {
	var rows []db.ListP2PTransfersByReceiverRow
	for _, t := range s.transfers {
		if t.ReceiverID == arg.ReceiverID {
			rows = append(rows, db.ListP2PTransfersByReceiverRow(t))
		}
	}
	return slicePage(rows, arg.Limit, arg.Offset), nil
}

func (s *stubStore) CountP2PTransfersByReceiver(ctx context.Context, receiverID int64) (int64, error) {
	var n int64
	for _, t := range s.transfers {
		if t.ReceiverID == receiverID {
			n++
		}
	}
	return n, nil
}

func newTestService(store *stubStore) *HistoryService {
	return NewHistoryService(store, logging.NewLogger())
}

func seedTransfers(store *stubStore, count int, userID int64) {
	for i := 0; i < count; i++ {
		store.transfers = append(store.transfers, db.ListP2PTransfersByUserRow{
			ID:            uuid.New(),
			SenderID:      userID,
			ReceiverID:    userID + 1,
			Amount:        decimal.NewFromInt(int64(i + 1)),
			Status:        "completed",
			ReferenceID:   uuid.NewString(),
			ReceiverPhone: "+919800000002",
			ReceiverName:  sql.NullString{String: "Ravi", Valid: true},
			SenderPhone:   "+919800000001",
			CreatedAt:     time.Now(),
		})
	}
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		total    int64
		want     Pagination
	}{
		{
			name: "first of three", page: 1, pageSize: 10, total: 25,
			want: Pagination{CurrentPage: 1, TotalPages: 3, TotalItems: 25, HasNext: true, HasPrev: false},
		},
		{
			name: "middle page", page: 2, pageSize: 10, total: 25,
			want: Pagination{CurrentPage: 2, TotalPages: 3, TotalItems: 25, HasNext: true, HasPrev: true},
		},
		{
			name: "last page", page: 3, pageSize: 10, total: 25,
			want: Pagination{CurrentPage: 3, TotalPages: 3, TotalItems: 25, HasNext: false, HasPrev: true},
		},
		{
			name: "exact fit", page: 2, pageSize: 5, total: 10,
			want: Pagination{CurrentPage: 2, TotalPages: 2, TotalItems: 10, HasNext: false, HasPrev: true},
		},
		{
			name: "empty", page: 1, pageSize: 20, total: 0,
			want: Pagination{CurrentPage: 1, TotalPages: 0, TotalItems: 0, HasNext: false, HasPrev: false},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewPagination(tc.page, tc.pageSize, tc.total); got != tc.want {
				t.Errorf("NewPagination(%d, %d, %d) = %+v, want %+v", tc.page, tc.pageSize, tc.total, got, tc.want)
			}
		})
	}
}

func TestListTransfersPaging(t *testing.T) {
	store := &stubStore{}
	seedTransfers(store, 7, 1)
	service := newTestService(store)

	items, pagination, err := service.ListTransfers(context.Background(), 1, 2, 3, DirectionAll)
	if err != nil {
		t.Fatalf("ListTransfers: %v", err)
	}
	if len(items) != 3 {
		t.Errorf("page 2 item count = %d, want 3", len(items))
	}
	if pagination.TotalPages != 3 || !pagination.HasNext || !pagination.HasPrev {
		t.Errorf("pagination = %+v", pagination)
	}

	items, pagination, err = service.ListTransfers(context.Background(), 1, 3, 3, DirectionAll)
	if err != nil {
		t.Fatalf("ListTransfers last page: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("last page item count = %d, want 1", len(items))
	}
	if pagination.HasNext {
		t.Error("last page should not have a next page")
	}
}

func TestListTransfersClampsPaging(t *testing.T) {
	store := &stubStore{}
	seedTransfers(store, 2, 1)
	service := newTestService(store)

	_, pagination, err := service.ListTransfers(context.Background(), 1, -3, 0, DirectionAll)
	if err != nil {
		t.Fatalf("ListTransfers: %v", err)
	}
	if pagination.CurrentPage != 1 {
		t.Errorf("current page = %d, want clamped to 1", pagination.CurrentPage)
	}
}

func TestListTransfersDirection(t *testing.T) {
	store := &stubStore{}
	// User 1 sent two, received one.
	seedTransfers(store, 2, 1)
	store.transfers = append(store.transfers, db.ListP2PTransfersByUserRow{
		ID:          uuid.New(),
		SenderID:    5,
		ReceiverID:  1,
		Amount:      decimal.NewFromInt(40),
		Status:      "completed",
		ReferenceID: uuid.NewString(),
		SenderPhone: "+919800000005",
		SenderName:  sql.NullString{String: "Meera", Valid: true},
		CreatedAt:   time.Now(),
	})
	service := newTestService(store)

	sent, _, err := service.ListTransfers(context.Background(), 1, 1, 10, DirectionSent)
	if err != nil {
		t.Fatalf("ListTransfers sent: %v", err)
	}
	if len(sent) != 2 {
		t.Fatalf("sent count = %d, want 2", len(sent))
	}
	for _, item := range sent {
		if item.Type != DirectionSent {
			t.Errorf("item type = %q, want sent", item.Type)
		}
		if item.Counterparty.Phone != "+919800000002" {
			t.Errorf("counterparty phone = %q, want receiver's", item.Counterparty.Phone)
		}
	}

	received, _, err := service.ListTransfers(context.Background(), 1, 1, 10, DirectionReceived)
	if err != nil {
		t.Fatalf("ListTransfers received: %v", err)
	}
	if len(received) != 1 {
		t.Fatalf("received count = %d, want 1", len(received))
	}
	if received[0].Counterparty.Name != "Meera" {
		t.Errorf("counterparty name = %q, want Meera", received[0].Counterparty.Name)
	}

	_, _, err = service.ListTransfers(context.Background(), 1, 1, 10, "sideways")
	if !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("invalid direction error = %v, want %v", err, ErrInvalidDirection)
	}
}

func TestListTransactions(t *testing.T) {
	store := &stubStore{}
	for i := 0; i < 4; i++ {
		store.transactions = append(store.transactions, db.Transaction{
			ID:          uuid.New(),
			UserID:      1,
			Type:        "credit",
			Amount:      decimal.NewFromInt(int64(10 * (i + 1))),
			Status:      "success",
			ReferenceID: uuid.NewString(),
			CreatedAt:   time.Now(),
		})
	}
	// Another user's entry must not leak in.
	store.transactions = append(store.transactions, db.Transaction{
		ID: uuid.New(), UserID: 2, Type: "debit", Amount: decimal.NewFromInt(5), Status: "success",
	})
	service := newTestService(store)

	items, pagination, err := service.ListTransactions(context.Background(), 1, 1, 10)
	if err != nil {
		t.Fatalf("ListTransactions: %v", err)
	}
	if len(items) != 4 {
		t.Errorf("item count = %d, want 4", len(items))
	}
	if pagination.TotalItems != 4 {
		t.Errorf("total items = %d, want 4", pagination.TotalItems)
	}
}

func (s *stubStore) GetTransactionByReference(ctx context.Context, referenceID string) (db.Transaction, error) {
	for _, t := range s.transactions {
		if t.ReferenceID == referenceID {
			return t, nil
		}
	}
	return db.Transaction{}, sql.ErrNoRows
}

func TestGetTransactionByReference(t *testing.T) {
	store := &stubStore{
		transactions: []db.Transaction{
			{
				ID:          uuid.New(),
				UserID:      1,
				Type:        "debit",
				Amount:      decimal.NewFromInt(40),
				Status:      "success",
				ReferenceID: "P2PAAAA11112222-DEBIT",
				CreatedAt:   time.Now(),
			},
			{
				ID:          uuid.New(),
				UserID:      2,
				Type:        "credit",
				Amount:      decimal.NewFromInt(40),
				Status:      "success",
				ReferenceID: "P2PAAAA11112222-CREDIT",
				CreatedAt:   time.Now(),
			},
		},
	}
	service := newTestService(store)
	ctx := context.Background()

	item, err := service.GetTransactionByReference(ctx, 1, "P2PAAAA11112222-DEBIT")
	if err != nil {
		t.Fatalf("GetTransactionByReference: %v", err)
	}
	if item.Type != "debit" || !item.Amount.Equal(decimal.NewFromInt(40)) {
		t.Errorf("item = %+v, want debit of 40", item)
	}

	// Someone else's entry reads as missing.
	if _, err := service.GetTransactionByReference(ctx, 1, "P2PAAAA11112222-CREDIT"); !errors.Is(err, ErrTransactionNotFound) {
		t.Errorf("foreign entry error = %v, want %v", err, ErrTransactionNotFound)
	}
	if _, err := service.GetTransactionByReference(ctx, 1, "TXNMISSING"); !errors.Is(err, ErrTransactionNotFound) {
		t.Errorf("unknown reference error = %v, want %v", err, ErrTransactionNotFound)
	}
}
