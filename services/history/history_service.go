package history

import (
	"context"
	"database/sql"
	"fmt"

	db "github.com/PayRipple/PayRipple-Backend/db/sqlc"
	"github.com/PayRipple/PayRipple-Backend/services/monitoring/logging"
)

var (
	ErrInvalidDirection    = fmt.Errorf("direction must be one of all, sent, received")
	ErrTransactionNotFound = fmt.Errorf("transaction not found")
)

// HistoryService reads committed ledger state. It never mutates anything
// and takes no locks, so callers may hit it concurrently with in-flight
// transfers.
type HistoryService struct {
	store  db.Store
	logger *logging.Logger
}

func NewHistoryService(store db.Store, logger *logging.Logger) *HistoryService {
	return &HistoryService{
		store:  store,
		logger: logger,
	}
}

func clampPaging(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	return page, pageSize
}

// ListTransactions returns the user's ledger entries, newest first.
func (s *HistoryService) ListTransactions(ctx context.Context, userID int64, page, pageSize int) ([]TransactionItem, Pagination, error) {
	page, pageSize = clampPaging(page, pageSize)

	rows, err := s.store.ListTransactionsByUserID(ctx, db.ListTransactionsByUserIDParams{
		UserID: userID,
		Limit:  int32(pageSize),
		Offset: int32((page - 1) * pageSize),
	})
	if err != nil {
		return nil, Pagination{}, err
	}

	total, err := s.store.CountTransactionsByUserID(ctx, userID)
	if err != nil {
		return nil, Pagination{}, err
	}

	items := make([]TransactionItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, toTransactionItem(row))
	}

	return items, NewPagination(page, pageSize, total), nil
}

// GetTransactionByReference fetches one ledger entry by its reference,
// scoped to the owning user. Entries belonging to someone else read as
// not-found.
func (s *HistoryService) GetTransactionByReference(ctx context.Context, userID int64, reference string) (TransactionItem, error) {
	row, err := s.store.GetTransactionByReference(ctx, reference)
	if err == sql.ErrNoRows {
		return TransactionItem{}, ErrTransactionNotFound
	} else if err != nil {
		return TransactionItem{}, err
	}
	if row.UserID != userID {
		return TransactionItem{}, ErrTransactionNotFound
	}
	return toTransactionItem(row), nil
}

// ListTransfers returns the user's peer-to-peer transfer history, annotated
// with the counterparty as seen from the user's side.
func (s *HistoryService) ListTransfers(ctx context.Context, userID int64, page, pageSize int, direction string) ([]TransferItem, Pagination, error) {
	page, pageSize = clampPaging(page, pageSize)
	limit := int32(pageSize)
	offset := int32((page - 1) * pageSize)

	var (
		items []TransferItem
		total int64
		err   error
	)

	switch direction {
	case DirectionSent:
		var rows []db.ListP2PTransfersBySenderRow
		rows, err = s.store.ListP2PTransfersBySender(ctx, db.ListP2PTransfersBySenderParams{
			SenderID: userID,
			Limit:    limit,
			Offset:   offset,
		})
		if err != nil {
			return nil, Pagination{}, err
		}
		total, err = s.store.CountP2PTransfersBySender(ctx, userID)
		items = make([]TransferItem, 0, len(rows))
		for _, row := range rows {
			items = append(items, toTransferItem(userID, db.ListP2PTransfersByUserRow(row)))
		}
	case DirectionReceived:
		var rows []db.ListP2PTransfersByReceiverRow
		rows, err = s.store.ListP2PTransfersByReceiver(ctx, db.ListP2PTransfersByReceiverParams{
			ReceiverID: userID,
			Limit:      limit,
			Offset:     offset,
		})
		if err != nil {
			return nil, Pagination{}, err
		}
		total, err = s.store.CountP2PTransfersByReceiver(ctx, userID)
		items = make([]TransferItem, 0, len(rows))
		for _, row := range rows {
			items = append(items, toTransferItem(userID, db.ListP2PTransfersByUserRow(row)))
		}
	case DirectionAll, "":
		var rows []db.ListP2PTransfersByUserRow
		rows, err = s.store.ListP2PTransfersByUser(ctx, db.ListP2PTransfersByUserParams{
			UserID: userID,
			Limit:  limit,
			Offset: offset,
		})
		if err != nil {
			return nil, Pagination{}, err
		}
		total, err = s.store.CountP2PTransfersByUser(ctx, userID)
		items = make([]TransferItem, 0, len(rows))
		for _, row := range rows {
			items = append(items, toTransferItem(userID, row))
		}
	default:
		return nil, Pagination{}, ErrInvalidDirection
	}

	if err != nil {
		return nil, Pagination{}, err
	}

	return items, NewPagination(page, pageSize, total), nil
}
