package history

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transfer list directions.
const (
	DirectionAll      = "all"
	DirectionSent     = "sent"
	DirectionReceived = "received"
)

type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}

func NewPagination(page, pageSize int, total int64) Pagination {
	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))
	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  total,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
}

type TransactionItem struct {
	ID          uuid.UUID       `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	Description string          `json:"description"`
	ReferenceID string          `json:"referenceId"`
	Timestamp   time.Time       `json:"timestamp"`
}

type Counterparty struct {
	Phone string `json:"phone"`
	Name  string `json:"name,omitempty"`
}

type TransferItem struct {
	ID           uuid.UUID       `json:"id"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description,omitempty"`
	Status       string          `json:"status"`
	ReferenceID  string          `json:"referenceId"`
	Counterparty Counterparty    `json:"counterparty"`
	Timestamp    time.Time       `json:"timestamp"`
}
